// Package storage provides S3-compatible object storage for the portfolio
// project images shown on the marketing site. Uploads happen directly from
// the admin dashboard against presigned URLs; the API never proxies image
// bytes.
package storage

import (
	"context"
	"time"
)

// PresignedURL is the result of a presign operation.
type PresignedURL struct {
	URL       string    `json:"url"`
	FileKey   string    `json:"fileKey"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// ImageStore is the object storage interface the projects module depends on.
type ImageStore interface {
	// PresignUpload creates a presigned PUT URL for an image upload. The
	// content type must be an allowed image type and the size within limits.
	PresignUpload(ctx context.Context, fileName, contentType string, sizeBytes int64) (*PresignedURL, error)

	// PresignDownload creates a presigned GET URL for a stored image.
	PresignDownload(ctx context.Context, fileKey string) (*PresignedURL, error)

	// Delete removes a stored image. Deleting a missing key is not an error.
	Delete(ctx context.Context, fileKey string) error

	// EnsureBucket creates the image bucket if it does not exist yet.
	EnsureBucket(ctx context.Context) error
}

// Config is the configuration surface the MinIO client needs.
type Config interface {
	GetMinIOEndpoint() string
	GetMinIOAccessKey() string
	GetMinIOSecretKey() string
	GetMinIOUseSSL() bool
	GetMinIOMaxFileSize() int64
	GetMinioBucketProjectImages() string
	IsMinIOEnabled() bool
}
