package azure

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"
)

// MemoryBlobStorage keeps report blobs in process memory. It backs the
// "memory" report backend and doubles as a test double.
type MemoryBlobStorage struct {
	storage map[string][]byte
	mu      sync.RWMutex
	logger  *zap.Logger
}

// NewMemoryBlobStorage creates an empty in-memory blob store
func NewMemoryBlobStorage(logger *zap.Logger) *MemoryBlobStorage {
	return &MemoryBlobStorage{
		storage: make(map[string][]byte),
		logger:  logger,
	}
}

// UploadPDF stores a copy of data under the report blob name for filename
func (c *MemoryBlobStorage) UploadPDF(ctx context.Context, filename string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("failed to upload PDF: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	blobName := ReportBlobName(filename)
	c.storage[blobName] = bytes.Clone(data)

	if c.logger != nil {
		c.logger.Info("PDF stored in memory",
			zap.String("blob_name", blobName),
			zap.Int("size_bytes", len(data)),
		)
	}

	return blobName, nil
}

// DownloadPDF returns a copy of a stored PDF
func (c *MemoryBlobStorage) DownloadPDF(ctx context.Context, blobName string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("failed to download PDF: %w", err)
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	data, exists := c.storage[blobName]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrBlobNotFound, blobName)
	}

	if c.logger != nil {
		c.logger.Info("PDF read from memory",
			zap.String("blob_name", blobName),
			zap.Int("size_bytes", len(data)),
		)
	}

	return bytes.Clone(data), nil
}

// Clear removes all blobs
func (c *MemoryBlobStorage) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.storage = make(map[string][]byte)
}

// ListBlobs returns all blob names in sorted order
func (c *MemoryBlobStorage) ListBlobs() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	blobs := make([]string, 0, len(c.storage))
	for name := range c.storage {
		blobs = append(blobs, name)
	}
	sort.Strings(blobs)

	return blobs
}
