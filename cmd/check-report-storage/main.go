// Command check-report-storage verifies that the configured report storage
// accepts and returns an analytics PDF. It reads the same environment as the
// server, renders a report from the demo data and round-trips it.
package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/AbdelwaliNour/Hospital/internal/analytics"
	"github.com/AbdelwaliNour/Hospital/internal/azure"
	"github.com/AbdelwaliNour/Hospital/internal/config"
	"github.com/AbdelwaliNour/Hospital/internal/pdf"
	"github.com/AbdelwaliNour/Hospital/internal/seed"
	"github.com/AbdelwaliNour/Hospital/internal/store"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func main() {
	// Initialize logger
	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	logger.Info("=== Checking report storage ===", zap.String("backend", cfg.Reports.Backend))
	if err := checkReportStorage(ctx, cfg, logger); err != nil {
		logger.Fatal("Report storage check failed", zap.Error(err))
	}
	logger.Info("Report storage check passed")
}

func checkReportStorage(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	now := time.Now().In(loc)

	records := store.New()
	if _, err := seed.Load(records, now, logger); err != nil {
		return fmt.Errorf("failed to load demo data: %w", err)
	}

	storage, err := azure.NewReportStorage(cfg.Reports, logger)
	if err != nil {
		return fmt.Errorf("failed to create report storage: %w", err)
	}

	report := analytics.BuildReport(records.Visits(), records.Departments(), analytics.DefaultTimeRange, now)
	data, err := pdf.NewPDFGenerator(logger).Generate(&pdf.ReportData{
		ClinicName: "Storage check",
		Report:     report,
		Stats:      analytics.ComputeDashboardStats(records.Appointments(), records.Visits(), now),
	})
	if err != nil {
		return fmt.Errorf("failed to render PDF: %w", err)
	}

	filename := fmt.Sprintf("storage-check-%s.pdf", uuid.New())
	logger.Info("Testing PDF upload", zap.String("filename", filename), zap.Int("size_bytes", len(data)))

	blobName, err := storage.UploadPDF(ctx, filename, data)
	if err != nil {
		return fmt.Errorf("PDF upload failed: %w", err)
	}

	logger.Info("Testing PDF download", zap.String("blob_name", blobName))

	downloaded, err := storage.DownloadPDF(ctx, blobName)
	if err != nil {
		return fmt.Errorf("PDF download failed: %w", err)
	}
	if !bytes.Equal(downloaded, data) {
		return fmt.Errorf("downloaded PDF doesn't match uploaded PDF")
	}

	logger.Info("PDF downloaded and verified successfully", zap.Int("size_bytes", len(downloaded)))
	return nil
}
