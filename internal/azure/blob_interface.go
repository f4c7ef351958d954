package azure

import (
	"context"
	"errors"
)

// ErrBlobNotFound is returned when a requested blob does not exist
var ErrBlobNotFound = errors.New("blob not found")

// BlobStorage defines the interface for report blob storage operations.
// BlobStorageClient talks to Azure; MemoryBlobStorage keeps blobs in process.
type BlobStorage interface {
	UploadPDF(ctx context.Context, filename string, data []byte) (string, error)
	DownloadPDF(ctx context.Context, blobName string) ([]byte, error)
}

// ReportBlobName returns the blob name a PDF uploaded as filename is stored under
func ReportBlobName(filename string) string {
	return "reports/" + filename
}

// Ensure both backends implement BlobStorage
var (
	_ BlobStorage = (*BlobStorageClient)(nil)
	_ BlobStorage = (*MemoryBlobStorage)(nil)
)
