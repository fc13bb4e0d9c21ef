package service

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/vision4soccer-api/internal/config"
	"github.com/vision4soccer-api/internal/models"
	"github.com/vision4soccer-api/internal/repository"
)

// ArticleService defines the interface for article operations
type ArticleService interface {
	List(ctx context.Context, filter models.ArticleFilter) (*models.ArticleList, error)
	Create(ctx context.Context, req *models.CreateArticleRequest) (*models.Article, error)
	Get(ctx context.Context, id string) (*models.Article, error)
	GetBySlug(ctx context.Context, slug, language string) (*models.Article, error)
	Update(ctx context.Context, id string, req *models.UpdateArticleRequest) (*models.Article, error)
	Delete(ctx context.Context, id string) (*models.Article, error)
}

// MigrationService defines the interface for the WordPress dump migration.
// Run never returns an error value: per-row failures are counted in the
// summary and a fatal failure is reported with Success=false.
type MigrationService interface {
	Run(ctx context.Context) *models.MigrationSummary
}

// SitemapService defines the interface for sitemap generation
type SitemapService interface {
	Generate(ctx context.Context) ([]byte, error)
}

// Services holds all service interfaces
type Services struct {
	Article   ArticleService
	Migration MigrationService
	Sitemap   SitemapService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, cfg *config.Config, log zerolog.Logger) *Services {
	return &Services{
		Article:   NewArticleService(repos.Article, log),
		Migration: NewMigrationService(repos.Article, &cfg.Migration, log),
		Sitemap:   NewSitemapService(repos.Article, &cfg.Site, log),
	}
}
