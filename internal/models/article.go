package models

import (
	"time"
)

// Article represents a row in the articles table
type Article struct {
	ID               string     `json:"id" db:"id"`
	Title            string     `json:"title" db:"title"`
	Slug             string     `json:"slug" db:"slug"`
	Content          string     `json:"content" db:"content"`
	Excerpt          *string    `json:"excerpt" db:"excerpt"`
	Author           *string    `json:"author" db:"author"`
	FeaturedImageURL *string    `json:"featured_image_url" db:"featured_image_url"`
	Language         string     `json:"language" db:"language"`
	Published        bool       `json:"published" db:"published"`
	PublishedAt      *time.Time `json:"published_at,omitempty" db:"published_at"`
	CreatedAt        time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at" db:"updated_at"`
}

// ValidLanguages defines allowed article languages
var ValidLanguages = map[string]bool{
	"nl": true,
	"en": true,
}

// DefaultLanguage is applied when the caller supplies no language
const DefaultLanguage = "nl"

// ArticleFilter describes the list query
type ArticleFilter struct {
	Language  string
	Published *bool
	Limit     int
	Offset    int
}

// ArticleList is the list endpoint response body
type ArticleList struct {
	Articles []*Article `json:"articles"`
	Total    int        `json:"total"`
}

// CreateArticleRequest is the POST /articles body
type CreateArticleRequest struct {
	Title            string     `json:"title"`
	Slug             string     `json:"slug"`
	Content          string     `json:"content"`
	Excerpt          *string    `json:"excerpt"`
	Author           *string    `json:"author"`
	FeaturedImageURL *string    `json:"featured_image_url"`
	Language         string     `json:"language"`
	Published        bool       `json:"published"`
	PublishedAt      *time.Time `json:"published_at"`
}

// SitemapEntry is the projection of a published article the sitemap needs
type SitemapEntry struct {
	Slug        string
	Language    string
	UpdatedAt   *time.Time
	PublishedAt *time.Time
}

// MigrationSummary reports the outcome of a WordPress dump migration run
type MigrationSummary struct {
	Success  bool   `json:"success"`
	Migrated int    `json:"migrated"`
	Skipped  int    `json:"skipped"`
	Errors   int    `json:"errors"`
	Error    string `json:"error,omitempty"`
}
