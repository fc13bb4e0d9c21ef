package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/vision4soccer-api/internal/api"
	"github.com/vision4soccer-api/internal/config"
	"github.com/vision4soccer-api/internal/mocks"
	"github.com/vision4soccer-api/internal/models"
	"github.com/vision4soccer-api/internal/service"
)

type testEnv struct {
	router    *gin.Engine
	repo      *mocks.MockArticleRepository
	migration *mocks.MockMigrationService
	sitemap   *mocks.MockSitemapService
}

// newTestEnv wires a real article service over the in-memory repository, so
// handler tests exercise the full validation and error mapping path.
func newTestEnv() *testEnv {
	repo := mocks.NewMockArticleRepository()
	migration := mocks.NewMockMigrationService()
	sitemap := mocks.NewMockSitemapService()

	services := &service.Services{
		Article:   service.NewArticleService(repo, zerolog.Nop()),
		Migration: migration,
		Sitemap:   sitemap,
	}

	return &testEnv{
		router:    api.NewRouter(services, &config.Config{}, zerolog.Nop()),
		repo:      repo,
		migration: migration,
		sitemap:   sitemap,
	}
}

func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeArticle(t *testing.T, rec *httptest.ResponseRecorder) *models.Article {
	t.Helper()
	var resp struct {
		Article *models.Article `json:"article"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v\n%s", err, rec.Body.String())
	}
	return resp.Article
}

func createArticle(t *testing.T, env *testEnv, body map[string]any) *models.Article {
	t.Helper()
	rec := env.do(t, http.MethodPost, "/articles", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: status %d: %s", rec.Code, rec.Body.String())
	}
	return decodeArticle(t, rec)
}

func TestCreateArticleEndpoint(t *testing.T) {
	env := newTestEnv()

	article := createArticle(t, env, map[string]any{
		"title":     "Nieuw seizoen",
		"slug":      "nieuw-seizoen",
		"content":   "<p>body</p>",
		"published": true,
	})

	if article.ID == "" {
		t.Error("expected generated id")
	}
	if article.Slug != "nieuw-seizoen" {
		t.Errorf("slug = %q", article.Slug)
	}
	if article.PublishedAt == nil {
		t.Error("expected published_at stamped")
	}
}

func TestCreateArticleValidationError(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodPost, "/articles", map[string]any{"title": "no slug or content"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "error") {
		t.Errorf("expected error body, got %s", rec.Body.String())
	}
}

func TestCreateArticleMalformedJSON(t *testing.T) {
	env := newTestEnv()

	req := httptest.NewRequest(http.MethodPost, "/articles", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestCreateArticleDuplicateSlug(t *testing.T) {
	env := newTestEnv()
	body := map[string]any{"title": "t", "slug": "dup", "content": "c"}

	createArticle(t, env, body)
	rec := env.do(t, http.MethodPost, "/articles", map[string]any{"title": "other", "slug": "dup", "content": "c"})
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409: %s", rec.Code, rec.Body.String())
	}
}

func TestGetArticleEndpoint(t *testing.T) {
	env := newTestEnv()
	created := createArticle(t, env, map[string]any{"title": "t", "slug": "s", "content": "c"})

	rec := env.do(t, http.MethodGet, "/articles/"+created.ID, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	if got := decodeArticle(t, rec); got.ID != created.ID {
		t.Errorf("id = %q, want %q", got.ID, created.ID)
	}

	rec = env.do(t, http.MethodGet, "/articles/nonexistent-id", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("missing id: status = %d, want 404", rec.Code)
	}
}

func TestGetArticleBySlugEndpoint(t *testing.T) {
	env := newTestEnv()
	createArticle(t, env, map[string]any{"title": "t", "slug": "mijn-artikel", "content": "c", "language": "nl"})

	rec := env.do(t, http.MethodGet, "/articles/slug/mijn-artikel", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	// language filter excludes the Dutch article
	rec = env.do(t, http.MethodGet, "/articles/slug/mijn-artikel?language=en", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("wrong language: status = %d, want 404", rec.Code)
	}
}

func TestListArticlesEndpoint(t *testing.T) {
	env := newTestEnv()
	createArticle(t, env, map[string]any{"title": "a", "slug": "a", "content": "c", "published": true})
	createArticle(t, env, map[string]any{"title": "b", "slug": "b", "content": "c"})
	createArticle(t, env, map[string]any{"title": "e", "slug": "e", "content": "c", "language": "en"})

	rec := env.do(t, http.MethodGet, "/articles", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var list models.ArticleList
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if list.Total != 2 {
		t.Errorf("default list total = %d, want 2 Dutch articles", list.Total)
	}

	rec = env.do(t, http.MethodGet, "/articles?language=nl&published=true", nil)
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if list.Total != 1 {
		t.Errorf("published filter total = %d, want 1", list.Total)
	}

	rec = env.do(t, http.MethodGet, "/articles?limit=abc", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad limit: status = %d, want 400", rec.Code)
	}

	rec = env.do(t, http.MethodGet, "/articles?offset=-1", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("negative offset: status = %d, want 400", rec.Code)
	}
}

func TestUpdateArticleEndpoint(t *testing.T) {
	env := newTestEnv()
	created := createArticle(t, env, map[string]any{"title": "old", "slug": "s", "content": "c"})

	rec := env.do(t, http.MethodPut, "/articles/"+created.ID, map[string]any{"title": "new"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	if got := decodeArticle(t, rec); got.Title != "new" {
		t.Errorf("title = %q, want new", got.Title)
	}

	rec = env.do(t, http.MethodPut, "/articles/"+created.ID, map[string]any{})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("empty update: status = %d, want 400", rec.Code)
	}

	rec = env.do(t, http.MethodPut, "/articles/missing-id", map[string]any{"title": "x"})
	if rec.Code != http.StatusNotFound {
		t.Errorf("missing id: status = %d, want 404", rec.Code)
	}
}

func TestUpdateArticleNullClearsField(t *testing.T) {
	env := newTestEnv()
	created := createArticle(t, env, map[string]any{
		"title": "t", "slug": "s", "content": "c", "excerpt": "short",
	})

	rec := env.do(t, http.MethodPut, "/articles/"+created.ID, map[string]any{"excerpt": nil})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	if got := decodeArticle(t, rec); got.Excerpt != nil {
		t.Errorf("excerpt = %q, want cleared", *got.Excerpt)
	}
}

func TestDeleteArticleEndpoint(t *testing.T) {
	env := newTestEnv()
	created := createArticle(t, env, map[string]any{"title": "t", "slug": "s", "content": "c"})

	rec := env.do(t, http.MethodDelete, "/articles/"+created.ID, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	rec = env.do(t, http.MethodDelete, "/articles/"+created.ID, nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("second delete: status = %d, want 404", rec.Code)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	tests := []struct {
		method    string
		path      string
		wantAllow string
	}{
		{http.MethodPatch, "/articles", "GET, POST"},
		{http.MethodPost, "/articles/some-id", "GET, PUT, DELETE"},
		{http.MethodGet, "/migrate", "POST"},
		{http.MethodPost, "/sitemap.xml", "GET"},
	}

	env := newTestEnv()
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := env.do(t, tt.method, tt.path, nil)
			if rec.Code != http.StatusMethodNotAllowed {
				t.Fatalf("status = %d, want 405", rec.Code)
			}
			if got := rec.Header().Get("Allow"); got != tt.wantAllow {
				t.Errorf("Allow = %q, want %q", got, tt.wantAllow)
			}
		})
	}
}

func TestMigrateEndpoint(t *testing.T) {
	env := newTestEnv()
	env.migration.RunFunc = func(ctx context.Context) *models.MigrationSummary {
		return &models.MigrationSummary{Success: true, Migrated: 5, Skipped: 2, Errors: 1}
	}

	rec := env.do(t, http.MethodPost, "/migrate", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp["migrated"] != float64(5) || resp["skipped"] != float64(2) || resp["errors"] != float64(1) {
		t.Errorf("counters = %v", resp)
	}
}

func TestMigrateEndpointFailure(t *testing.T) {
	env := newTestEnv()
	env.migration.RunFunc = func(ctx context.Context) *models.MigrationSummary {
		return &models.MigrationSummary{Success: false, Error: "failed to read dump file"}
	}

	rec := env.do(t, http.MethodPost, "/migrate", nil)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "failed to read dump file") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestSitemapEndpoint(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodGet, "/sitemap.xml", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/xml") {
		t.Errorf("Content-Type = %q", ct)
	}
	if cc := rec.Header().Get("Cache-Control"); !strings.Contains(cc, "s-maxage=3600") {
		t.Errorf("Cache-Control = %q", cc)
	}
	if !strings.Contains(rec.Body.String(), "urlset") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestSitemapEndpointFailure(t *testing.T) {
	env := newTestEnv()
	env.sitemap.GenerateFunc = func(ctx context.Context) ([]byte, error) {
		return nil, errors.New("render failed")
	}

	rec := env.do(t, http.MethodGet, "/sitemap.xml", nil)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
}

func TestHealthEndpoint(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodGet, "/health", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "healthy") {
		t.Errorf("body = %s", rec.Body.String())
	}
}
