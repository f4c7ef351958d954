package handler

import (
	"net/http"

	"github.com/AbdelwaliNour/Hospital/internal/service"
	"github.com/AbdelwaliNour/Hospital/pkg/api"
	"github.com/AbdelwaliNour/Hospital/pkg/model"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HealthMetricHandler implements patient health metric endpoints
type HealthMetricHandler struct {
	service   *service.HealthMetricService
	validator BodyValidator
	logger    *zap.Logger
}

// NewHealthMetricHandler creates a new HealthMetricHandler
func NewHealthMetricHandler(service *service.HealthMetricService, validator BodyValidator, logger *zap.Logger) *HealthMetricHandler {
	return &HealthMetricHandler{
		service:   service,
		validator: validator,
		logger:    logger,
	}
}

func (h *HealthMetricHandler) ListHealthMetrics(c *gin.Context, id int) {
	metrics, err := h.service.List(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err, "Failed to list health metrics")
		return
	}
	c.JSON(http.StatusOK, metrics)
}

// CreateHealthMetric records a health metric sample for a patient
func (h *HealthMetricHandler) CreateHealthMetric(c *gin.Context, id int) {
	var req api.NewHealthMetric
	if !bindBody(c, h.validator, h.logger, api.SchemaNewHealthMetric, &req) {
		return
	}

	draft := model.HealthMetric{
		HeartRate:     req.HeartRate,
		SleepHours:    req.SleepHours,
		BloodPressure: req.BloodPressure,
		Temperature:   req.Temperature,
		Weight:        req.Weight,
	}
	if req.Timestamp != nil {
		draft.Timestamp = *req.Timestamp
	}

	created, err := h.service.Create(c.Request.Context(), id, draft)
	if err != nil {
		respondError(c, h.logger, err, "Failed to record health metric")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetVitals returns the heart-rate and sleep chart series of a patient
func (h *HealthMetricHandler) GetVitals(c *gin.Context, id int) {
	vitals, err := h.service.Vitals(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err, "Failed to get vitals")
		return
	}
	c.JSON(http.StatusOK, vitals)
}
