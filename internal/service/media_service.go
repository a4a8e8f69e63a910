package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"

	"kreartif/internal/config"
)

var (
	ErrNotAnImage   = errors.New("only image uploads are allowed")
	ErrFileTooLarge = errors.New("file exceeds the upload size limit")
)

type MediaService interface {
	UploadImage(ctx context.Context, userID uuid.UUID, fileName string, fileSize int64, mimeType string, reader io.Reader) (string, error)
	RemoveByURL(ctx context.Context, publicURL string) error
}

type mediaService struct {
	minioClient *minio.Client
	cfg         *config.Config
}

func NewMediaService(minioClient *minio.Client, cfg *config.Config) MediaService {
	return &mediaService{
		minioClient: minioClient,
		cfg:         cfg,
	}
}

func (s *mediaService) UploadImage(ctx context.Context, userID uuid.UUID, fileName string, fileSize int64, mimeType string, reader io.Reader) (string, error) {
	if !strings.HasPrefix(mimeType, "image/") {
		return "", ErrNotAnImage
	}
	if fileSize > s.cfg.MaxUploadBytes {
		return "", ErrFileTooLarge
	}

	storagePath := fmt.Sprintf("artworks/%s/%s", time.Now().Format("2006/01"), uuid.New().String())

	_, err := s.minioClient.PutObject(ctx, s.cfg.MinIOBucket, storagePath, reader, fileSize, minio.PutObjectOptions{
		ContentType: mimeType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to MinIO: %w", err)
	}

	return s.getPublicURL(storagePath), nil
}

// RemoveByURL deletes the stored object behind a public URL. URLs pointing
// outside our bucket are ignored.
func (s *mediaService) RemoveByURL(ctx context.Context, publicURL string) error {
	storagePath, ok := s.storagePathFromURL(publicURL)
	if !ok {
		return nil
	}
	return s.minioClient.RemoveObject(ctx, s.cfg.MinIOBucket, storagePath, minio.RemoveObjectOptions{})
}

func (s *mediaService) getPublicURL(storagePath string) string {
	scheme := "http"
	if s.cfg.MinIOPublicUseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.cfg.MinIOPublicEndpoint, s.cfg.MinIOBucket, url.PathEscape(storagePath))
}

func (s *mediaService) storagePathFromURL(publicURL string) (string, bool) {
	parsed, err := url.Parse(publicURL)
	if err != nil {
		return "", false
	}
	if parsed.Host != s.cfg.MinIOPublicEndpoint {
		return "", false
	}

	prefix := "/" + s.cfg.MinIOBucket + "/"
	if !strings.HasPrefix(parsed.Path, prefix) {
		return "", false
	}

	storagePath, err := url.PathUnescape(strings.TrimPrefix(parsed.Path, prefix))
	if err != nil {
		return "", false
	}
	return storagePath, true
}
