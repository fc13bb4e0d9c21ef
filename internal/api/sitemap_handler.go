package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/vision4soccer-api/internal/service"
)

// SitemapHandler serves the generated sitemap
type SitemapHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewSitemapHandler creates a new SitemapHandler
func NewSitemapHandler(services *service.Services, log zerolog.Logger) *SitemapHandler {
	return &SitemapHandler{
		services: services,
		log:      log.With().Str("handler", "sitemap").Logger(),
	}
}

// Get handles GET /sitemap.xml. Database trouble degrades to the static-only
// sitemap inside the service, so failures here are rendering errors only.
func (h *SitemapHandler) Get(c *gin.Context) {
	body, err := h.services.Sitemap.Generate(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to generate sitemap")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate sitemap"})
		return
	}

	c.Header("Cache-Control", "public, s-maxage=3600, stale-while-revalidate")
	c.Data(http.StatusOK, "application/xml", body)
}
