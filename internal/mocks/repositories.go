package mocks

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/vision4soccer-api/internal/apperr"
	"github.com/vision4soccer-api/internal/models"
	"github.com/vision4soccer-api/internal/repository"
)

// MockArticleRepository is an in-memory implementation of ArticleRepository.
// Behavior can be overridden per-method via the XxxFunc fields.
type MockArticleRepository struct {
	mu       sync.Mutex
	Articles map[string]*models.Article

	ListFunc          func(ctx context.Context, filter models.ArticleFilter) ([]*models.Article, int, error)
	GetByIDFunc       func(ctx context.Context, id string) (*models.Article, error)
	GetBySlugFunc     func(ctx context.Context, slug, language string) (*models.Article, error)
	CreateFunc        func(ctx context.Context, article *models.Article) (*models.Article, error)
	UpdateFunc        func(ctx context.Context, id string, upd *models.UpdateArticleRequest) (*models.Article, error)
	DeleteFunc        func(ctx context.Context, id string) (*models.Article, error)
	SlugExistsFunc    func(ctx context.Context, slug string) (bool, error)
	ListPublishedFunc func(ctx context.Context) ([]*models.SitemapEntry, error)
}

// Verify interface compliance
var _ repository.ArticleRepository = (*MockArticleRepository)(nil)

func NewMockArticleRepository() *MockArticleRepository {
	return &MockArticleRepository{
		Articles: make(map[string]*models.Article),
	}
}

func (m *MockArticleRepository) sorted() []*models.Article {
	ids := make([]string, 0, len(m.Articles))
	for id := range m.Articles {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	articles := make([]*models.Article, 0, len(ids))
	for _, id := range ids {
		articles = append(articles, m.Articles[id])
	}
	return articles
}

func (m *MockArticleRepository) List(ctx context.Context, filter models.ArticleFilter) ([]*models.Article, int, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	matched := make([]*models.Article, 0)
	for _, a := range m.sorted() {
		if filter.Language != "" && a.Language != filter.Language {
			continue
		}
		if filter.Published != nil && a.Published != *filter.Published {
			continue
		}
		matched = append(matched, a)
	}

	total := len(matched)
	if filter.Offset >= len(matched) {
		return []*models.Article{}, total, nil
	}
	matched = matched[filter.Offset:]
	if filter.Limit < len(matched) {
		matched = matched[:filter.Limit]
	}
	return matched, total, nil
}

func (m *MockArticleRepository) GetByID(ctx context.Context, id string) (*models.Article, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Articles[id], nil
}

func (m *MockArticleRepository) GetBySlug(ctx context.Context, slug, language string) (*models.Article, error) {
	if m.GetBySlugFunc != nil {
		return m.GetBySlugFunc(ctx, slug, language)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.sorted() {
		if a.Slug != slug {
			continue
		}
		if language != "" && a.Language != language {
			continue
		}
		return a, nil
	}
	return nil, nil
}

func (m *MockArticleRepository) Create(ctx context.Context, article *models.Article) (*models.Article, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, article)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.Articles {
		if a.Slug == article.Slug {
			return nil, apperr.Conflict("an article with this slug already exists")
		}
	}
	stored := *article
	m.Articles[article.ID] = &stored
	return &stored, nil
}

func (m *MockArticleRepository) Update(ctx context.Context, id string, upd *models.UpdateArticleRequest) (*models.Article, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, upd)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.Articles[id]
	if !ok {
		return nil, nil
	}

	if upd.Slug.Set && upd.Slug.Valid {
		for otherID, other := range m.Articles {
			if otherID != id && other.Slug == upd.Slug.Value {
				return nil, apperr.Conflict("an article with this slug already exists")
			}
		}
		a.Slug = upd.Slug.Value
	}
	if upd.Title.Set && upd.Title.Valid {
		a.Title = upd.Title.Value
	}
	if upd.Content.Set && upd.Content.Valid {
		a.Content = upd.Content.Value
	}
	if upd.Excerpt.Set {
		a.Excerpt = upd.Excerpt.Ptr()
	}
	if upd.Author.Set {
		a.Author = upd.Author.Ptr()
	}
	if upd.FeaturedImageURL.Set {
		a.FeaturedImageURL = upd.FeaturedImageURL.Ptr()
	}
	if upd.Language.Set && upd.Language.Valid {
		a.Language = upd.Language.Value
	}
	if upd.Published.Set {
		a.Published = upd.Published.Valid && upd.Published.Value
		if a.Published && !upd.PublishedAt.Set {
			now := nowUTC()
			a.PublishedAt = &now
		}
	}
	if upd.PublishedAt.Set {
		a.PublishedAt = upd.PublishedAt.Ptr()
	}
	a.UpdatedAt = nowUTC()

	return a, nil
}

func (m *MockArticleRepository) Delete(ctx context.Context, id string) (*models.Article, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.Articles[id]
	if !ok {
		return nil, nil
	}
	delete(m.Articles, id)
	return a, nil
}

func (m *MockArticleRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	if m.SlugExistsFunc != nil {
		return m.SlugExistsFunc(ctx, slug)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.Articles {
		if a.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockArticleRepository) ListPublished(ctx context.Context) ([]*models.SitemapEntry, error) {
	if m.ListPublishedFunc != nil {
		return m.ListPublishedFunc(ctx)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	var entries []*models.SitemapEntry
	for _, a := range m.sorted() {
		if !a.Published {
			continue
		}
		updatedAt := a.UpdatedAt
		entries = append(entries, &models.SitemapEntry{
			Slug:        a.Slug,
			Language:    a.Language,
			UpdatedAt:   &updatedAt,
			PublishedAt: a.PublishedAt,
		})
	}
	return entries, nil
}

func (m *MockArticleRepository) Count(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Articles), nil
}

func nowUTC() time.Time {
	return time.Now().UTC()
}
