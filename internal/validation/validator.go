package validation

import (
	"regexp"

	"github.com/vision4soccer-api/internal/models"
)

var slugRegex = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// FieldError represents a single validation error
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidateCreate validates a create-article request: title, slug and content
// are required, the slug must be URL-safe, the language must be known.
func ValidateCreate(req *models.CreateArticleRequest) []FieldError {
	var errors []FieldError

	if req.Title == "" {
		errors = append(errors, FieldError{Field: "title", Message: "title is required"})
	}

	if req.Slug == "" {
		errors = append(errors, FieldError{Field: "slug", Message: "slug is required"})
	} else if !slugRegex.MatchString(req.Slug) {
		errors = append(errors, FieldError{Field: "slug", Message: "slug must be lowercase alphanumeric with hyphens"})
	}

	if req.Content == "" {
		errors = append(errors, FieldError{Field: "content", Message: "content is required"})
	}

	if req.Language != "" && !models.ValidLanguages[req.Language] {
		errors = append(errors, FieldError{Field: "language", Message: "language must be one of: nl, en"})
	}

	return errors
}

// ValidateUpdate validates the supplied subset of update fields. Emptiness of
// the whole set is checked separately by the service.
func ValidateUpdate(req *models.UpdateArticleRequest) []FieldError {
	var errors []FieldError

	if req.Slug.Set && req.Slug.Valid && !slugRegex.MatchString(req.Slug.Value) {
		errors = append(errors, FieldError{Field: "slug", Message: "slug must be lowercase alphanumeric with hyphens"})
	}

	if req.Language.Set && req.Language.Valid && !models.ValidLanguages[req.Language.Value] {
		errors = append(errors, FieldError{Field: "language", Message: "language must be one of: nl, en"})
	}

	return errors
}

// Message joins field errors into one caller-facing string
func Message(errors []FieldError) string {
	msg := ""
	for i, e := range errors {
		if i > 0 {
			msg += "; "
		}
		msg += e.Message
	}
	return msg
}
