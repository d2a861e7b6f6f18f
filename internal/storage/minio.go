package storage

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"
	"time"

	"kynetic_backend/platform/apperr"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// presignTTL is how long presigned upload and download URLs stay valid.
const presignTTL = 15 * time.Minute

// allowedImageTypes lists the MIME types accepted for project images.
var allowedImageTypes = map[string]bool{
	"image/jpeg":    true,
	"image/png":     true,
	"image/gif":     true,
	"image/webp":    true,
	"image/svg+xml": true,
}

// MinIOStore implements ImageStore against a MinIO or S3-compatible endpoint.
type MinIOStore struct {
	client      *minio.Client
	bucket      string
	maxFileSize int64
}

// NewMinIOStore creates a MinIO-backed image store.
func NewMinIOStore(cfg Config) (*MinIOStore, error) {
	if !cfg.IsMinIOEnabled() {
		return nil, fmt.Errorf("MinIO is not configured")
	}

	client, err := minio.New(cfg.GetMinIOEndpoint(), &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.GetMinIOAccessKey(), cfg.GetMinIOSecretKey(), ""),
		Secure: cfg.GetMinIOUseSSL(),
	})
	if err != nil {
		return nil, fmt.Errorf("create MinIO client: %w", err)
	}

	return &MinIOStore{
		client:      client,
		bucket:      cfg.GetMinioBucketProjectImages(),
		maxFileSize: cfg.GetMinIOMaxFileSize(),
	}, nil
}

// EnsureBucket creates the image bucket if it does not exist yet.
func (s *MinIOStore) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("check bucket %s: %w", s.bucket, err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("create bucket %s: %w", s.bucket, err)
		}
	}
	return nil
}

// PresignUpload creates a presigned PUT URL for an image upload.
func (s *MinIOStore) PresignUpload(ctx context.Context, fileName, contentType string, sizeBytes int64) (*PresignedURL, error) {
	if err := validateImageType(contentType); err != nil {
		return nil, err
	}
	if sizeBytes <= 0 || sizeBytes > s.maxFileSize {
		return nil, apperr.Validation(fmt.Sprintf("file size must be between 1 and %d bytes", s.maxFileSize))
	}

	// Suffix with a short uuid so re-uploads of the same file name never
	// overwrite each other.
	ext := path.Ext(fileName)
	base := strings.TrimSuffix(fileName, ext)
	fileKey := fmt.Sprintf("projects/%s_%s%s", base, uuid.New().String()[:8], ext)

	expiresAt := time.Now().Add(presignTTL)
	presigned, err := s.client.PresignedPutObject(ctx, s.bucket, fileKey, presignTTL)
	if err != nil {
		return nil, fmt.Errorf("presign upload: %w", err)
	}

	return &PresignedURL{URL: presigned.String(), FileKey: fileKey, ExpiresAt: expiresAt}, nil
}

// PresignDownload creates a presigned GET URL for a stored image.
func (s *MinIOStore) PresignDownload(ctx context.Context, fileKey string) (*PresignedURL, error) {
	expiresAt := time.Now().Add(presignTTL)
	presigned, err := s.client.PresignedGetObject(ctx, s.bucket, fileKey, presignTTL, url.Values{})
	if err != nil {
		return nil, fmt.Errorf("presign download: %w", err)
	}
	return &PresignedURL{URL: presigned.String(), FileKey: fileKey, ExpiresAt: expiresAt}, nil
}

// Delete removes a stored image.
func (s *MinIOStore) Delete(ctx context.Context, fileKey string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, fileKey, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("delete object %s: %w", fileKey, err)
	}
	return nil
}

func validateImageType(contentType string) error {
	normalized := strings.TrimSpace(strings.ToLower(strings.Split(contentType, ";")[0]))
	if !allowedImageTypes[normalized] {
		return apperr.Validation(fmt.Sprintf("content type %q is not allowed for project images", contentType))
	}
	return nil
}

// Compile-time check that MinIOStore implements ImageStore.
var _ ImageStore = (*MinIOStore)(nil)
