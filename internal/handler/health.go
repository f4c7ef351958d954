package handler

import (
	"net/http"

	"github.com/AbdelwaliNour/Hospital/internal/store"
	"github.com/gin-gonic/gin"
)

// StatsProvider reports record counts of the store
type StatsProvider interface {
	Stats() store.Stats
}

// HealthHandler implements the liveness endpoint
type HealthHandler struct {
	store   StatsProvider
	version string
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(store StatsProvider, version string) *HealthHandler {
	return &HealthHandler{
		store:   store,
		version: version,
	}
}

// GetHealth reports liveness together with the store's record counts
func (h *HealthHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "hospital-dashboard",
		"version": h.version,
		"records": h.store.Stats(),
	})
}
