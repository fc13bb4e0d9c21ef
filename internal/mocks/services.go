package mocks

import (
	"context"

	"github.com/vision4soccer-api/internal/apperr"
	"github.com/vision4soccer-api/internal/models"
	"github.com/vision4soccer-api/internal/service"
)

// MockArticleService is a mock implementation of ArticleService
type MockArticleService struct {
	ListFunc      func(ctx context.Context, filter models.ArticleFilter) (*models.ArticleList, error)
	CreateFunc    func(ctx context.Context, req *models.CreateArticleRequest) (*models.Article, error)
	GetFunc       func(ctx context.Context, id string) (*models.Article, error)
	GetBySlugFunc func(ctx context.Context, slug, language string) (*models.Article, error)
	UpdateFunc    func(ctx context.Context, id string, req *models.UpdateArticleRequest) (*models.Article, error)
	DeleteFunc    func(ctx context.Context, id string) (*models.Article, error)

	Created []*models.CreateArticleRequest
}

// Verify interface compliance
var _ service.ArticleService = (*MockArticleService)(nil)

func NewMockArticleService() *MockArticleService {
	return &MockArticleService{
		Created: make([]*models.CreateArticleRequest, 0),
	}
}

func (m *MockArticleService) List(ctx context.Context, filter models.ArticleFilter) (*models.ArticleList, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return &models.ArticleList{Articles: []*models.Article{}}, nil
}

func (m *MockArticleService) Create(ctx context.Context, req *models.CreateArticleRequest) (*models.Article, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, req)
	}
	m.Created = append(m.Created, req)
	return &models.Article{ID: "test-article-id", Title: req.Title, Slug: req.Slug, Content: req.Content}, nil
}

func (m *MockArticleService) Get(ctx context.Context, id string) (*models.Article, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, apperr.NotFound("article not found")
}

func (m *MockArticleService) GetBySlug(ctx context.Context, slug, language string) (*models.Article, error) {
	if m.GetBySlugFunc != nil {
		return m.GetBySlugFunc(ctx, slug, language)
	}
	return nil, apperr.NotFound("article not found")
}

func (m *MockArticleService) Update(ctx context.Context, id string, req *models.UpdateArticleRequest) (*models.Article, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, req)
	}
	return nil, apperr.NotFound("article not found")
}

func (m *MockArticleService) Delete(ctx context.Context, id string) (*models.Article, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil, apperr.NotFound("article not found")
}

// MockMigrationService is a mock implementation of MigrationService
type MockMigrationService struct {
	RunFunc func(ctx context.Context) *models.MigrationSummary
	Runs    int
}

// Verify interface compliance
var _ service.MigrationService = (*MockMigrationService)(nil)

func NewMockMigrationService() *MockMigrationService {
	return &MockMigrationService{}
}

func (m *MockMigrationService) Run(ctx context.Context) *models.MigrationSummary {
	m.Runs++
	if m.RunFunc != nil {
		return m.RunFunc(ctx)
	}
	return &models.MigrationSummary{Success: true}
}

// MockSitemapService is a mock implementation of SitemapService
type MockSitemapService struct {
	GenerateFunc func(ctx context.Context) ([]byte, error)
}

// Verify interface compliance
var _ service.SitemapService = (*MockSitemapService)(nil)

func NewMockSitemapService() *MockSitemapService {
	return &MockSitemapService{}
}

func (m *MockSitemapService) Generate(ctx context.Context) ([]byte, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx)
	}
	return []byte(`<?xml version="1.0" encoding="UTF-8"?><urlset></urlset>`), nil
}
