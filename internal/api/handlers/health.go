package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stubdns/internal/api/models"
)

// Health returns server health status. When a record database is
// configured, its connectivity is checked too.
func (h *Handler) Health(c *gin.Context) {
	if h.db != nil {
		if err := h.db.Health(); err != nil {
			c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{Error: "database unreachable"})
			return
		}
	}
	c.JSON(http.StatusOK, models.StatusResponse{Status: "ok"})
}
