package repository

import (
	"context"

	"github.com/vision4soccer-api/internal/database"
	"github.com/vision4soccer-api/internal/models"
)

// ArticleRepository defines the interface for article data operations.
// Lookup methods return (nil, nil) when no row matches; mapping that to a
// not-found condition is the service layer's job.
type ArticleRepository interface {
	List(ctx context.Context, filter models.ArticleFilter) ([]*models.Article, int, error)
	GetByID(ctx context.Context, id string) (*models.Article, error)
	GetBySlug(ctx context.Context, slug, language string) (*models.Article, error)
	Create(ctx context.Context, article *models.Article) (*models.Article, error)
	Update(ctx context.Context, id string, upd *models.UpdateArticleRequest) (*models.Article, error)
	Delete(ctx context.Context, id string) (*models.Article, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	ListPublished(ctx context.Context) ([]*models.SitemapEntry, error)
	Count(ctx context.Context) (int, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	Article ArticleRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		Article: NewArticleRepo(db),
	}
}
