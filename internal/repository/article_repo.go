package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vision4soccer-api/internal/apperr"
	"github.com/vision4soccer-api/internal/database"
	"github.com/vision4soccer-api/internal/models"
)

// psql builds statements with PostgreSQL positional placeholders
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var articleColumns = []string{
	"id", "title", "slug", "content", "excerpt", "author",
	"featured_image_url", "language", "published", "published_at",
	"created_at", "updated_at",
}

const returningArticle = `RETURNING id, title, slug, content, excerpt, author,
	featured_image_url, language, published, published_at, created_at, updated_at`

// articleRepo is the concrete implementation of ArticleRepository
type articleRepo struct {
	db *database.DB
}

// NewArticleRepo creates a new article repository
func NewArticleRepo(db *database.DB) ArticleRepository {
	return &articleRepo{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanArticle(row rowScanner) (*models.Article, error) {
	var a models.Article
	var excerpt, author, image sql.NullString
	var publishedAt sql.NullTime

	err := row.Scan(
		&a.ID, &a.Title, &a.Slug, &a.Content, &excerpt, &author,
		&image, &a.Language, &a.Published, &publishedAt,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if excerpt.Valid {
		a.Excerpt = &excerpt.String
	}
	if author.Valid {
		a.Author = &author.String
	}
	if image.Valid {
		a.FeaturedImageURL = &image.String
	}
	if publishedAt.Valid {
		a.PublishedAt = &publishedAt.Time
	}

	return &a, nil
}

// listPredicates applies the list filter to a statement builder
func listPredicates(q sq.SelectBuilder, filter models.ArticleFilter) sq.SelectBuilder {
	if filter.Language != "" {
		q = q.Where(sq.Eq{"language": filter.Language})
	}
	if filter.Published != nil {
		q = q.Where(sq.Eq{"published": *filter.Published})
	}
	return q
}

// List returns the filtered, paginated article page plus the total matching
// row count
func (r *articleRepo) List(ctx context.Context, filter models.ArticleFilter) ([]*models.Article, int, error) {
	q := listPredicates(psql.Select(articleColumns...).From("articles"), filter).
		OrderBy("published_at DESC NULLS LAST", "created_at DESC").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset))

	query, args, err := q.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	articles := make([]*models.Article, 0)
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, 0, err
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	countQuery, countArgs, err := listPredicates(psql.Select("COUNT(*)").From("articles"), filter).ToSql()
	if err != nil {
		return nil, 0, err
	}

	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	return articles, total, nil
}

// GetByID retrieves an article by ID
func (r *articleRepo) GetByID(ctx context.Context, id string) (*models.Article, error) {
	query, args, err := psql.Select(articleColumns...).From("articles").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}

	a, err := scanArticle(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

// GetBySlug retrieves an article by slug, optionally constrained to a language
func (r *articleRepo) GetBySlug(ctx context.Context, slug, language string) (*models.Article, error) {
	q := psql.Select(articleColumns...).From("articles").Where(sq.Eq{"slug": slug})
	if language != "" {
		q = q.Where(sq.Eq{"language": language})
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	a, err := scanArticle(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

// Create inserts a new article and returns the stored row
func (r *articleRepo) Create(ctx context.Context, article *models.Article) (*models.Article, error) {
	now := time.Now().UTC()

	query, args, err := psql.Insert("articles").
		Columns(articleColumns...).
		Values(
			article.ID, article.Title, article.Slug, article.Content,
			article.Excerpt, article.Author, article.FeaturedImageURL,
			article.Language, article.Published, article.PublishedAt,
			now, now,
		).
		Suffix(returningArticle).
		ToSql()
	if err != nil {
		return nil, err
	}

	a, err := scanArticle(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperr.Conflict("an article with this slug already exists")
		}
		return nil, err
	}
	return a, nil
}

// Update builds a partial UPDATE touching only the supplied fields. If
// published is set truthy and the caller did not also supply published_at,
// the publish timestamp is stamped with the current time.
func (r *articleRepo) Update(ctx context.Context, id string, upd *models.UpdateArticleRequest) (*models.Article, error) {
	now := time.Now().UTC()
	q := psql.Update("articles")

	if upd.Title.Set {
		q = q.Set("title", upd.Title.Ptr())
	}
	if upd.Slug.Set {
		q = q.Set("slug", upd.Slug.Ptr())
	}
	if upd.Content.Set {
		q = q.Set("content", upd.Content.Ptr())
	}
	if upd.Excerpt.Set {
		q = q.Set("excerpt", upd.Excerpt.Ptr())
	}
	if upd.Author.Set {
		q = q.Set("author", upd.Author.Ptr())
	}
	if upd.FeaturedImageURL.Set {
		q = q.Set("featured_image_url", upd.FeaturedImageURL.Ptr())
	}
	if upd.Language.Set {
		q = q.Set("language", upd.Language.Ptr())
	}
	if upd.Published.Set {
		q = q.Set("published", upd.Published.Value && upd.Published.Valid)
		if upd.Published.Valid && upd.Published.Value && !upd.PublishedAt.Set {
			q = q.Set("published_at", now)
		}
	}
	if upd.PublishedAt.Set {
		q = q.Set("published_at", upd.PublishedAt.Ptr())
	}

	query, args, err := q.
		Set("updated_at", now).
		Where(sq.Eq{"id": id}).
		Suffix(returningArticle).
		ToSql()
	if err != nil {
		return nil, err
	}

	a, err := scanArticle(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperr.Conflict("an article with this slug already exists")
		}
		return nil, err
	}
	return a, nil
}

// Delete removes an article by ID, returning the deleted row
func (r *articleRepo) Delete(ctx context.Context, id string) (*models.Article, error) {
	query, args, err := psql.Delete("articles").
		Where(sq.Eq{"id": id}).
		Suffix(returningArticle).
		ToSql()
	if err != nil {
		return nil, err
	}

	a, err := scanArticle(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

// SlugExists checks if an article with the given slug exists
func (r *articleRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM articles WHERE slug = $1)", slug).Scan(&exists)
	return exists, err
}

// ListPublished streams the projection of published articles the sitemap
// needs, most recently published first
func (r *articleRepo) ListPublished(ctx context.Context) ([]*models.SitemapEntry, error) {
	query := `
		SELECT slug, language, updated_at, published_at
		FROM articles WHERE published = true ORDER BY published_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*models.SitemapEntry
	for rows.Next() {
		var e models.SitemapEntry
		var updatedAt, publishedAt sql.NullTime
		if err := rows.Scan(&e.Slug, &e.Language, &updatedAt, &publishedAt); err != nil {
			return nil, err
		}
		if updatedAt.Valid {
			e.UpdatedAt = &updatedAt.Time
		}
		if publishedAt.Valid {
			e.PublishedAt = &publishedAt.Time
		}
		entries = append(entries, &e)
	}
	return entries, rows.Err()
}

// Count returns the total number of articles
func (r *articleRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM articles").Scan(&count)
	return count, err
}

// isUniqueViolation reports whether err is a Postgres unique-constraint error
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
