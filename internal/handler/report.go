package handler

import (
	"fmt"
	"net/http"

	"github.com/AbdelwaliNour/Hospital/internal/service"
	"github.com/AbdelwaliNour/Hospital/pkg/api"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReportHandler implements report API endpoints
type ReportHandler struct {
	service   *service.ReportService
	validator BodyValidator
	logger    *zap.Logger
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(service *service.ReportService, validator BodyValidator, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{
		service:   service,
		validator: validator,
		logger:    logger,
	}
}

// GenerateReport renders and stores an analytics report. The body is optional.
func (h *ReportHandler) GenerateReport(c *gin.Context) {
	var req api.GenerateReportRequest
	if !bindOptionalBody(c, h.validator, h.logger, api.SchemaGenerateReportRequest, &req) {
		return
	}

	generated, err := h.service.GenerateReport(c.Request.Context(), derefString(req.TimeRange))
	if err != nil {
		respondError(c, h.logger, err, "Failed to generate report")
		return
	}

	h.logger.Info("report generated",
		zap.String("report_id", generated.ID),
	)

	c.JSON(http.StatusCreated, api.ReportResponse{
		ReportId:    generated.ID,
		TimeRange:   string(generated.Report.TimeRange),
		GeneratedAt: generated.Report.GeneratedAt,
		DownloadUrl: "/api/reports/" + generated.ID,
	})
}

// GetReport downloads a report
func (h *ReportHandler) GetReport(c *gin.Context, id string) {
	h.logger.Info("downloading report",
		zap.String("report_id", id),
	)

	pdfBytes, err := h.service.GetReport(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err, "Failed to get report")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=analytics_report_%s.pdf", id))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)

	h.logger.Info("report downloaded",
		zap.String("report_id", id),
		zap.Int("size_bytes", len(pdfBytes)),
	)
}
