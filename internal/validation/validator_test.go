package validation

import (
	"testing"

	"github.com/vision4soccer-api/internal/models"
)

func TestValidateCreate(t *testing.T) {
	tests := []struct {
		name       string
		req        models.CreateArticleRequest
		wantFields []string
	}{
		{
			name: "valid request",
			req:  models.CreateArticleRequest{Title: "t", Slug: "valid-slug", Content: "c"},
		},
		{
			name: "valid with language",
			req:  models.CreateArticleRequest{Title: "t", Slug: "s", Content: "c", Language: "en"},
		},
		{
			name:       "everything missing",
			req:        models.CreateArticleRequest{},
			wantFields: []string{"title", "slug", "content"},
		},
		{
			name:       "uppercase slug",
			req:        models.CreateArticleRequest{Title: "t", Slug: "Not-Valid", Content: "c"},
			wantFields: []string{"slug"},
		},
		{
			name:       "slug with spaces",
			req:        models.CreateArticleRequest{Title: "t", Slug: "two words", Content: "c"},
			wantFields: []string{"slug"},
		},
		{
			name:       "leading hyphen",
			req:        models.CreateArticleRequest{Title: "t", Slug: "-leading", Content: "c"},
			wantFields: []string{"slug"},
		},
		{
			name:       "trailing hyphen",
			req:        models.CreateArticleRequest{Title: "t", Slug: "trailing-", Content: "c"},
			wantFields: []string{"slug"},
		},
		{
			name:       "double hyphen",
			req:        models.CreateArticleRequest{Title: "t", Slug: "a--b", Content: "c"},
			wantFields: []string{"slug"},
		},
		{
			name:       "unsupported language",
			req:        models.CreateArticleRequest{Title: "t", Slug: "s", Content: "c", Language: "de"},
			wantFields: []string{"language"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.req
			errs := ValidateCreate(&req)
			if len(errs) != len(tt.wantFields) {
				t.Fatalf("got %d errors %v, want %d", len(errs), errs, len(tt.wantFields))
			}
			for i, field := range tt.wantFields {
				if errs[i].Field != field {
					t.Errorf("error %d on field %q, want %q", i, errs[i].Field, field)
				}
			}
		})
	}
}

func TestValidateUpdate(t *testing.T) {
	tests := []struct {
		name       string
		req        models.UpdateArticleRequest
		wantFields []string
	}{
		{
			name: "no fields set",
			req:  models.UpdateArticleRequest{},
		},
		{
			name: "valid slug change",
			req: models.UpdateArticleRequest{
				Slug: models.Optional[string]{Set: true, Valid: true, Value: "new-slug"},
			},
		},
		{
			name: "bad slug",
			req: models.UpdateArticleRequest{
				Slug: models.Optional[string]{Set: true, Valid: true, Value: "Bad Slug"},
			},
			wantFields: []string{"slug"},
		},
		{
			name: "bad language",
			req: models.UpdateArticleRequest{
				Language: models.Optional[string]{Set: true, Valid: true, Value: "fr"},
			},
			wantFields: []string{"language"},
		},
		{
			name: "null language is not validated",
			req: models.UpdateArticleRequest{
				Language: models.Optional[string]{Set: true, Valid: false},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.req
			errs := ValidateUpdate(&req)
			if len(errs) != len(tt.wantFields) {
				t.Fatalf("got %d errors %v, want %d", len(errs), errs, len(tt.wantFields))
			}
			for i, field := range tt.wantFields {
				if errs[i].Field != field {
					t.Errorf("error %d on field %q, want %q", i, errs[i].Field, field)
				}
			}
		})
	}
}

func TestMessage(t *testing.T) {
	errs := []FieldError{
		{Field: "title", Message: "title is required"},
		{Field: "slug", Message: "slug is required"},
	}
	want := "title is required; slug is required"
	if got := Message(errs); got != want {
		t.Errorf("Message = %q, want %q", got, want)
	}
	if got := Message(nil); got != "" {
		t.Errorf("Message(nil) = %q, want empty", got)
	}
}
