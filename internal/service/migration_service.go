package service

import (
	"context"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/vision4soccer-api/internal/config"
	"github.com/vision4soccer-api/internal/models"
	"github.com/vision4soccer-api/internal/repository"
	"github.com/vision4soccer-api/internal/wordpress"
)

// migrationService drives the one-shot WordPress dump migration
type migrationService struct {
	repo repository.ArticleRepository
	cfg  *config.MigrationConfig
	log  zerolog.Logger
}

// NewMigrationService creates the migration service
func NewMigrationService(repo repository.ArticleRepository, cfg *config.MigrationConfig, log zerolog.Logger) MigrationService {
	return &migrationService{
		repo: repo,
		cfg:  cfg,
		log:  log.With().Str("service", "migration").Logger(),
	}
}

// Run reads the dump, extracts candidate posts, and converts and inserts each
// one. Rows whose slug already exists are skipped, so a crashed run can be
// re-triggered and picks up where it left off. A failing row increments the
// error counter and the loop continues; only an unreadable dump aborts.
func (s *migrationService) Run(ctx context.Context) *models.MigrationSummary {
	s.log.Info().Str("path", s.cfg.DumpPath).Msg("Starting WordPress migration")

	data, err := os.ReadFile(s.cfg.DumpPath)
	if err != nil {
		s.log.Error().Err(err).Str("path", s.cfg.DumpPath).Msg("Failed to read dump file")
		return &models.MigrationSummary{Success: false, Error: "failed to read dump file"}
	}
	dump := string(data)

	extractor := wordpress.NewExtractor(s.cfg.PostsTable, s.cfg.UsersTable)
	posts := extractor.Posts(dump)
	s.log.Info().Int("candidates", len(posts)).Msg("Extracted published posts from dump")

	if len(posts) == 0 {
		return &models.MigrationSummary{Success: true}
	}

	converter := &wordpress.Converter{
		DefaultAuthor: s.cfg.DefaultAuthor,
		Authors:       extractor.Authors(dump),
	}

	var migrated, skipped, errored int
	for _, post := range posts {
		article := converter.Convert(post)

		exists, err := s.repo.SlugExists(ctx, article.Slug)
		if err != nil {
			errored++
			s.log.Warn().Err(err).Int64("post_id", post.ID).Str("slug", article.Slug).Msg("Duplicate check failed")
			continue
		}
		if exists {
			skipped++
			continue
		}

		article.ID = uuid.New().String()
		if _, err := s.repo.Create(ctx, article); err != nil {
			errored++
			s.log.Warn().Err(err).Int64("post_id", post.ID).Str("slug", article.Slug).Msg("Failed to insert article")
			continue
		}

		migrated++
		if migrated%10 == 0 {
			s.log.Info().
				Int("migrated", migrated).
				Int("skipped", skipped).
				Int("errors", errored).
				Msg("Migration progress")
		}
	}

	s.log.Info().
		Int("migrated", migrated).
		Int("skipped", skipped).
		Int("errors", errored).
		Msg("Migration complete")

	return &models.MigrationSummary{
		Success:  true,
		Migrated: migrated,
		Skipped:  skipped,
		Errors:   errored,
	}
}
