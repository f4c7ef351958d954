package azure

import (
	"github.com/AbdelwaliNour/Hospital/internal/config"
	"go.uber.org/zap"
)

// NewReportStorage returns the blob storage selected by the reports configuration.
// The memory backend keeps reports only for the lifetime of the process.
func NewReportStorage(cfg config.ReportsConfig, logger *zap.Logger) (BlobStorage, error) {
	if cfg.Backend != config.ReportBackendAzure {
		logger.Info("using in-memory report storage")
		return NewMemoryBlobStorage(logger), nil
	}

	storage := cfg.Azure
	logger.Info("using Azure Blob Storage for reports", zap.String("container", storage.Container))
	if storage.ConnectionString != "" {
		return NewBlobStorageClientFromConnectionString(storage.ConnectionString, storage.Container, logger)
	}
	return NewBlobStorageClient(
		storage.AccountName,
		storage.AccountKey,
		storage.BlobEndpoint,
		storage.Container,
		logger,
	)
}
