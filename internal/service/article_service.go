package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/vision4soccer-api/internal/apperr"
	"github.com/vision4soccer-api/internal/models"
	"github.com/vision4soccer-api/internal/repository"
	"github.com/vision4soccer-api/internal/validation"
)

// articleService implements ArticleService on top of the article repository
type articleService struct {
	repo repository.ArticleRepository
	log  zerolog.Logger
	now  func() time.Time
}

// NewArticleService creates the article service
func NewArticleService(repo repository.ArticleRepository, log zerolog.Logger) ArticleService {
	return &articleService{
		repo: repo,
		log:  log.With().Str("service", "article").Logger(),
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// List returns the filtered article page. A zero limit is a valid request
// for an empty page, as is an offset past the end.
func (s *articleService) List(ctx context.Context, filter models.ArticleFilter) (*models.ArticleList, error) {
	if filter.Language == "" {
		filter.Language = models.DefaultLanguage
	}

	articles, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, apperr.Upstream("failed to fetch articles", err)
	}

	return &models.ArticleList{Articles: articles, Total: total}, nil
}

// Create validates and inserts a new article. An article created as published
// without an explicit timestamp gets published_at stamped with the current time.
func (s *articleService) Create(ctx context.Context, req *models.CreateArticleRequest) (*models.Article, error) {
	if fieldErrs := validation.ValidateCreate(req); len(fieldErrs) > 0 {
		return nil, apperr.Validation(validation.Message(fieldErrs))
	}

	language := req.Language
	if language == "" {
		language = models.DefaultLanguage
	}

	publishedAt := req.PublishedAt
	if req.Published && publishedAt == nil {
		now := s.now()
		publishedAt = &now
	}

	article := &models.Article{
		ID:               uuid.New().String(),
		Title:            req.Title,
		Slug:             req.Slug,
		Content:          req.Content,
		Excerpt:          req.Excerpt,
		Author:           req.Author,
		FeaturedImageURL: req.FeaturedImageURL,
		Language:         language,
		Published:        req.Published,
		PublishedAt:      publishedAt,
	}

	created, err := s.repo.Create(ctx, article)
	if err != nil {
		if apperr.IsStatus(err, 409) {
			return nil, err
		}
		return nil, apperr.Upstream("failed to create article", err)
	}

	s.log.Info().Str("id", created.ID).Str("slug", created.Slug).Msg("Article created")
	return created, nil
}

// Get returns a single article by id
func (s *articleService) Get(ctx context.Context, id string) (*models.Article, error) {
	article, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.Upstream("failed to fetch article", err)
	}
	if article == nil {
		return nil, apperr.NotFound("article not found")
	}
	return article, nil
}

// GetBySlug returns a single article by slug, optionally filtered by language
func (s *articleService) GetBySlug(ctx context.Context, slug, language string) (*models.Article, error) {
	article, err := s.repo.GetBySlug(ctx, slug, language)
	if err != nil {
		return nil, apperr.Upstream("failed to fetch article", err)
	}
	if article == nil {
		return nil, apperr.NotFound("article not found")
	}
	return article, nil
}

// Update applies a partial update. An update supplying no recognized field
// fails fast before touching storage.
func (s *articleService) Update(ctx context.Context, id string, req *models.UpdateArticleRequest) (*models.Article, error) {
	if req.Empty() {
		return nil, apperr.Validation("no fields to update")
	}
	if fieldErrs := validation.ValidateUpdate(req); len(fieldErrs) > 0 {
		return nil, apperr.Validation(validation.Message(fieldErrs))
	}

	article, err := s.repo.Update(ctx, id, req)
	if err != nil {
		if apperr.IsStatus(err, 409) {
			return nil, err
		}
		return nil, apperr.Upstream("failed to update article", err)
	}
	if article == nil {
		return nil, apperr.NotFound("article not found")
	}

	s.log.Info().Str("id", article.ID).Msg("Article updated")
	return article, nil
}

// Delete removes an article by id, returning the deleted row
func (s *articleService) Delete(ctx context.Context, id string) (*models.Article, error) {
	article, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, apperr.Upstream("failed to delete article", err)
	}
	if article == nil {
		return nil, apperr.NotFound("article not found")
	}

	s.log.Info().Str("id", article.ID).Str("slug", article.Slug).Msg("Article deleted")
	return article, nil
}
