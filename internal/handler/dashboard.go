package handler

import (
	"net/http"

	"github.com/AbdelwaliNour/Hospital/internal/service"
	"github.com/AbdelwaliNour/Hospital/pkg/api"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DashboardHandler implements dashboard, staff and analytics endpoints
type DashboardHandler struct {
	service *service.DashboardService
	logger  *zap.Logger
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(service *service.DashboardService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		service: service,
		logger:  logger,
	}
}

// GetDashboardStats returns the dashboard counters
func (h *DashboardHandler) GetDashboardStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Stats(c.Request.Context()))
}

// GetDepartmentDistribution returns patient and staff shares per department
func (h *DashboardHandler) GetDepartmentDistribution(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.DepartmentDistribution(c.Request.Context()))
}

// ListStaff returns the doctors matching the department and search filters
func (h *DashboardHandler) ListStaff(c *gin.Context, params api.ListStaffParams) {
	directory := h.service.Staff(c.Request.Context(), derefString(params.Department), derefString(params.Search))

	h.logger.Debug("staff listed",
		zap.String("department", derefString(params.Department)),
		zap.Int("count", len(directory.Doctors)),
	)
	c.JSON(http.StatusOK, directory)
}

// GetAnalytics returns the analytics report
func (h *DashboardHandler) GetAnalytics(c *gin.Context, params api.GetAnalyticsParams) {
	report, err := h.service.Analytics(c.Request.Context(), derefString(params.TimeRange))
	if err != nil {
		respondError(c, h.logger, err, "Failed to build analytics")
		return
	}
	c.JSON(http.StatusOK, report)
}
