package api

import (
	"github.com/gin-gonic/gin"

	"stubdns/internal/api/handlers"
	"stubdns/internal/api/middleware"
	"stubdns/internal/config"
)

func RegisterRoutes(r *gin.Engine, h *handlers.Handler, cfg *config.Config) {
	api := r.Group("/api/v1")

	// Optional API key protection.
	if cfg != nil && cfg.API.APIKey != "" {
		api.Use(middleware.RequireAPIKey(cfg.API.APIKey))
	}

	api.GET("/health", h.Health)
	api.GET("/stats", h.Stats)

	api.GET("/records", h.ListRecords)
	api.POST("/records", h.UpsertRecord)
	api.DELETE("/records/:domain", h.DeleteRecord)
}
