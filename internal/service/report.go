package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/AbdelwaliNour/Hospital/internal/analytics"
	"github.com/AbdelwaliNour/Hospital/internal/audit"
	"github.com/AbdelwaliNour/Hospital/internal/azure"
	"github.com/AbdelwaliNour/Hospital/internal/pdf"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReportRenderer renders report data to a document
type ReportRenderer interface {
	Generate(data *pdf.ReportData) ([]byte, error)
}

// GeneratedReport describes a stored analytics report
type GeneratedReport struct {
	ID       string
	BlobName string
	Report   analytics.Report
}

// ReportService renders analytics reports to PDF and keeps them in blob storage
type ReportService struct {
	dashboard  *DashboardService
	blobClient azure.BlobStorage
	pdfGen     ReportRenderer
	audit      *audit.Logger
	clinicName string
	logger     *zap.Logger
}

// NewReportService creates a new ReportService
func NewReportService(
	dashboard *DashboardService,
	blobClient azure.BlobStorage,
	pdfGen ReportRenderer,
	auditLogger *audit.Logger,
	clinicName string,
	logger *zap.Logger,
) *ReportService {
	return &ReportService{
		dashboard:  dashboard,
		blobClient: blobClient,
		pdfGen:     pdfGen,
		audit:      auditLogger,
		clinicName: clinicName,
		logger:     logger,
	}
}

// GenerateReport renders the analytics report for timeRange and uploads it.
// The returned id is used to download the document.
func (s *ReportService) GenerateReport(ctx context.Context, timeRange string) (*GeneratedReport, error) {
	report, err := s.dashboard.Analytics(ctx, timeRange)
	if err != nil {
		return nil, err
	}

	reportID := uuid.New().String()
	s.logger.Info("generating analytics report",
		zap.String("report_id", reportID),
		zap.String("time_range", string(report.TimeRange)),
	)

	pdfData, err := s.pdfGen.Generate(&pdf.ReportData{
		ClinicName: s.clinicName,
		Report:     report,
		Stats:      s.dashboard.Stats(ctx),
	})
	if err != nil {
		s.logger.Error("failed to generate PDF",
			zap.Error(err),
			zap.String("report_id", reportID),
		)
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	blobName, err := s.blobClient.UploadPDF(ctx, reportID+".pdf", pdfData)
	if err != nil {
		s.logger.Error("failed to upload report",
			zap.Error(err),
			zap.String("report_id", reportID),
		)
		return nil, fmt.Errorf("failed to upload report: %w", err)
	}

	s.audit.LogCreate(ctx, audit.ResourceReport, reportID)

	s.logger.Info("analytics report generated successfully",
		zap.String("report_id", reportID),
		zap.String("blob_name", blobName),
		zap.Int("size", len(pdfData)),
	)

	return &GeneratedReport{
		ID:       reportID,
		BlobName: blobName,
		Report:   report,
	}, nil
}

// GetReport downloads a previously generated report
func (s *ReportService) GetReport(ctx context.Context, reportID string) ([]byte, error) {
	id, err := uuid.Parse(reportID)
	if err != nil {
		return nil, invalid("reportId", "must be a UUID")
	}

	data, err := s.blobClient.DownloadPDF(ctx, azure.ReportBlobName(id.String()+".pdf"))
	if err != nil {
		if errors.Is(err, azure.ErrBlobNotFound) {
			return nil, fmt.Errorf("%w: report %s", ErrNotFound, id)
		}
		s.logger.Error("failed to download report",
			zap.Error(err),
			zap.String("report_id", reportID),
		)
		return nil, fmt.Errorf("failed to download report: %w", err)
	}
	return data, nil
}
