package handler

import (
	"net/http"

	"github.com/AbdelwaliNour/Hospital/internal/service"
	"github.com/AbdelwaliNour/Hospital/pkg/api"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// VisitHandler implements visit API endpoints
type VisitHandler struct {
	service *service.VisitService
	logger  *zap.Logger
}

// NewVisitHandler creates a new VisitHandler
func NewVisitHandler(service *service.VisitService, logger *zap.Logger) *VisitHandler {
	return &VisitHandler{
		service: service,
		logger:  logger,
	}
}

func (h *VisitHandler) ListVisits(c *gin.Context, params api.ListVisitsParams) {
	c.JSON(http.StatusOK, h.service.List(c.Request.Context(), params.DoctorId, params.PatientId))
}

// GetVisitHistory returns one page of the visit history table
func (h *VisitHandler) GetVisitHistory(c *gin.Context, params api.GetVisitHistoryParams) {
	page, err := h.service.History(c.Request.Context(),
		derefString(params.Window),
		derefInt(params.Page),
		derefInt(params.PageSize),
	)
	if err != nil {
		respondError(c, h.logger, err, "Failed to get visit history")
		return
	}
	c.JSON(http.StatusOK, page)
}
