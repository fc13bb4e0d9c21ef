package models

import (
	"encoding/json"
	"time"
)

// Optional is a tri-state JSON field: absent from the body, explicitly null,
// or set to a value. Plain pointers cannot tell the first two apart, and the
// update endpoint has to.
type Optional[T any] struct {
	Set   bool
	Valid bool // false when the caller supplied an explicit null
	Value T
}

// UnmarshalJSON is only invoked for keys present in the body, which is what
// makes the Set flag reliable.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		var zero T
		o.Valid = false
		o.Value = zero
		return nil
	}
	o.Valid = true
	return json.Unmarshal(data, &o.Value)
}

// Ptr returns the value as a nullable pointer, nil for unset or explicit null.
func (o Optional[T]) Ptr() *T {
	if !o.Set || !o.Valid {
		return nil
	}
	v := o.Value
	return &v
}

// UpdateArticleRequest is the PUT /articles/:id body. Any subset of the
// create fields may be supplied; omitted fields are left untouched.
type UpdateArticleRequest struct {
	Title            Optional[string]    `json:"title"`
	Slug             Optional[string]    `json:"slug"`
	Content          Optional[string]    `json:"content"`
	Excerpt          Optional[string]    `json:"excerpt"`
	Author           Optional[string]    `json:"author"`
	FeaturedImageURL Optional[string]    `json:"featured_image_url"`
	Language         Optional[string]    `json:"language"`
	Published        Optional[bool]      `json:"published"`
	PublishedAt      Optional[time.Time] `json:"published_at"`
}

// Empty reports whether no recognized field was supplied
func (r *UpdateArticleRequest) Empty() bool {
	return !r.Title.Set &&
		!r.Slug.Set &&
		!r.Content.Set &&
		!r.Excerpt.Set &&
		!r.Author.Set &&
		!r.FeaturedImageURL.Set &&
		!r.Language.Set &&
		!r.Published.Set &&
		!r.PublishedAt.Set
}
