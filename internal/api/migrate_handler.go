package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/vision4soccer-api/internal/service"
)

// MigrateHandler triggers the WordPress dump migration
type MigrateHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewMigrateHandler creates a new MigrateHandler
func NewMigrateHandler(services *service.Services, log zerolog.Logger) *MigrateHandler {
	return &MigrateHandler{
		services: services,
		log:      log.With().Str("handler", "migrate").Logger(),
	}
}

// Run handles POST /migrate. The migration runs synchronously and reports its
// summary inline; per-row failures are counted, not fatal.
func (h *MigrateHandler) Run(c *gin.Context) {
	h.log.Info().Msg("Migration endpoint called")

	summary := h.services.Migration.Run(c.Request.Context())
	if !summary.Success {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Migration failed",
			"message": summary.Error,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Migration completed successfully",
		"migrated": summary.Migrated,
		"skipped":  summary.Skipped,
		"errors":   summary.Errors,
	})
}
