package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/vision4soccer-api/internal/apperr"
	"github.com/vision4soccer-api/internal/models"
	"github.com/vision4soccer-api/internal/service"
)

const (
	defaultListLimit = 10
)

// ArticleHandler handles the article CRUD endpoints
type ArticleHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewArticleHandler creates a new ArticleHandler
func NewArticleHandler(services *service.Services, log zerolog.Logger) *ArticleHandler {
	return &ArticleHandler{
		services: services,
		log:      log.With().Str("handler", "article").Logger(),
	}
}

// respondError maps an error onto the taxonomy: validation/not-found/conflict
// reasons are reflected verbatim, upstream failures are logged with context
// and reported with a generic message.
func respondError(c *gin.Context, log zerolog.Logger, err error, genericMsg string) {
	appErr := apperr.From(err)
	if appErr.Status >= http.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg(genericMsg)
		c.JSON(appErr.Status, gin.H{"error": genericMsg})
		return
	}
	c.JSON(appErr.Status, gin.H{"error": appErr.Message})
}

// List handles GET /articles?language=&published=&limit=&offset=
func (h *ArticleHandler) List(c *gin.Context) {
	filter := models.ArticleFilter{
		Language: c.DefaultQuery("language", models.DefaultLanguage),
		Limit:    defaultListLimit,
	}

	if p := c.Query("published"); p != "" {
		published := p == "true"
		filter.Published = &published
	}

	if l := c.Query("limit"); l != "" {
		limit, err := strconv.Atoi(l)
		if err != nil || limit < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
			return
		}
		filter.Limit = limit
	}

	if o := c.Query("offset"); o != "" {
		offset, err := strconv.Atoi(o)
		if err != nil || offset < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "offset must be a non-negative integer"})
			return
		}
		filter.Offset = offset
	}

	list, err := h.services.Article.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, h.log, err, "Failed to fetch articles")
		return
	}

	c.JSON(http.StatusOK, list)
}

// Create handles POST /articles
func (h *ArticleHandler) Create(c *gin.Context) {
	var req models.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	article, err := h.services.Article.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.log, err, "Failed to create article")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"article": article})
}

// Get handles GET /articles/:id
func (h *ArticleHandler) Get(c *gin.Context) {
	article, err := h.services.Article.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err, "Failed to fetch article")
		return
	}

	c.JSON(http.StatusOK, gin.H{"article": article})
}

// GetBySlug handles GET /articles/slug/:slug?language=
func (h *ArticleHandler) GetBySlug(c *gin.Context) {
	// no language default here: without the filter the slug lookup spans languages
	article, err := h.services.Article.GetBySlug(c.Request.Context(), c.Param("slug"), c.Query("language"))
	if err != nil {
		respondError(c, h.log, err, "Failed to fetch article")
		return
	}

	c.JSON(http.StatusOK, gin.H{"article": article})
}

// Update handles PUT /articles/:id
func (h *ArticleHandler) Update(c *gin.Context) {
	var req models.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	article, err := h.services.Article.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, h.log, err, "Failed to update article")
		return
	}

	c.JSON(http.StatusOK, gin.H{"article": article})
}

// Delete handles DELETE /articles/:id
func (h *ArticleHandler) Delete(c *gin.Context) {
	if _, err := h.services.Article.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.log, err, "Failed to delete article")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Article deleted successfully"})
}
