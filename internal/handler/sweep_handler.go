package handler

import (
	"net/http"

	"community-events/internal/sweep"

	"github.com/gin-gonic/gin"
)

// SweepHandler exposes the sweep triggers for an external scheduler. The
// endpoints are not meant for public users; a shared token guards them when
// configured.
type SweepHandler struct {
	runner *sweep.Runner
	token  string
}

func NewSweepHandler(runner *sweep.Runner, token string) *SweepHandler {
	return &SweepHandler{runner: runner, token: token}
}

func (h *SweepHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/cron", h.requireToken)
	{
		router.POST("/expire", h.Expire)
		router.POST("/expiring", h.Expiring)
		router.POST("/remind", h.Remind)
	}
}

func (h *SweepHandler) requireToken(c *gin.Context) {
	if h.token != "" && c.GetHeader("X-Cron-Token") != h.token {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}
	c.Next()
}

func (h *SweepHandler) Expire(c *gin.Context) {
	if err := h.runner.Expire(c); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Sweep failed"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *SweepHandler) Expiring(c *gin.Context) {
	if err := h.runner.ExpiryWarning(c); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Sweep failed"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *SweepHandler) Remind(c *gin.Context) {
	if err := h.runner.Remind(c); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Sweep failed"})
		return
	}
	c.Status(http.StatusNoContent)
}
