package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Default expiry duration for presigned URLs
const DefaultPresignedURLExpiry = 15 * time.Minute

// ErrStorageDisabled is returned by services when no bucket is configured.
var ErrStorageDisabled = errors.New("video storage is not configured")

// FileStorage defines the interface for object storage operations.
type FileStorage interface {
	// GeneratePresignedUploadURL creates a temporary URL that allows PUT requests
	// for uploading an object directly to the storage provider.
	GeneratePresignedUploadURL(ctx context.Context, objectKey string, contentType string, expires time.Duration) (string, error)

	// GeneratePresignedDownloadURL creates a temporary URL that allows GET requests
	// for downloading/viewing an object directly from the storage provider.
	GeneratePresignedDownloadURL(ctx context.Context, objectKey string, expires time.Duration) (string, error)
}

// VideoObjectKey builds the object key of an exercise demo video.
func VideoObjectKey(exerciseID, objectID, extension string) string {
	extension = strings.TrimPrefix(strings.ToLower(extension), ".")
	if extension == "" {
		extension = "mp4"
	}
	return fmt.Sprintf("videos/exercises/%s/%s.%s", exerciseID, objectID, extension)
}

// IsExternalURL reports whether a stored video reference is already a full
// URL rather than an object key in the bucket.
func IsExternalURL(ref string) bool {
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://")
}
