package api

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/vision4soccer-api/internal/config"
	"github.com/vision4soccer-api/internal/service"
)

// NewRouter creates and configures the Gin router
func NewRouter(services *service.Services, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware())

	// 405 with an Allow header instead of gin's default 404
	router.HandleMethodNotAllowed = true
	router.NoMethod(methodNotAllowed())

	// Handlers
	articleHandler := NewArticleHandler(services, log)
	migrateHandler := NewMigrateHandler(services, log)
	sitemapHandler := NewSitemapHandler(services, log)

	// Health check
	router.GET("/health", healthCheck)

	// Articles
	articles := router.Group("/articles")
	{
		articles.GET("", articleHandler.List)
		articles.POST("", articleHandler.Create)
		articles.GET("/:id", articleHandler.Get)
		articles.PUT("/:id", articleHandler.Update)
		articles.DELETE("/:id", articleHandler.Delete)
		articles.GET("/slug/:slug", articleHandler.GetBySlug)
	}

	// WordPress migration trigger
	router.POST("/migrate", migrateHandler.Run)

	// Sitemap
	router.GET("/sitemap.xml", sitemapHandler.Get)

	return router
}

// healthCheck returns the health status
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   "vision4soccer-api",
	})
}

// methodNotAllowed answers unrecognized methods with 405 and the list of
// methods the route does support
func methodNotAllowed() gin.HandlerFunc {
	return func(c *gin.Context) {
		if allow := allowedMethods(c.Request.URL.Path); allow != "" {
			c.Header("Allow", allow)
		}
		c.JSON(http.StatusMethodNotAllowed, gin.H{
			"error": fmt.Sprintf("Method %s not allowed", c.Request.Method),
		})
	}
}

func allowedMethods(path string) string {
	switch {
	case path == "/articles" || path == "/articles/":
		return "GET, POST"
	case strings.HasPrefix(path, "/articles/slug/"):
		return "GET"
	case strings.HasPrefix(path, "/articles/"):
		return "GET, PUT, DELETE"
	case path == "/migrate":
		return "POST"
	case path == "/sitemap.xml", path == "/health":
		return "GET"
	}
	return ""
}

// recoveryMiddleware handles panics
func recoveryMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().Interface("error", err).Msg("Panic recovered")
				c.JSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// loggingMiddleware logs requests
func loggingMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		event := log.Info()
		if statusCode >= 400 {
			event = log.Warn()
		}
		if statusCode >= 500 {
			event = log.Error()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", statusCode).
			Dur("duration", duration).
			Str("client_ip", c.ClientIP()).
			Msg("Request completed")
	}
}

// corsMiddleware handles CORS
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
