package media

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Config holds object storage connection settings.
type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	// PublicBaseURL is the externally reachable prefix for stored objects,
	// e.g. "https://cdn.example.com/snapgram". Defaults to the endpoint.
	PublicBaseURL string
	UseSSL        bool
}

// Storage is a MinIO/S3 backed Store.
type Storage struct {
	cfg    Config
	client *minio.Client
	logger *slog.Logger
}

// NewStorage connects to the object store. Call EnsureBucket before
// serving uploads.
func NewStorage(cfg Config, logger *slog.Logger) (*Storage, error) {
	if logger == nil {
		logger = slog.Default()
	}
	endpoint := strings.TrimPrefix(strings.TrimPrefix(cfg.Endpoint, "https://"), "http://")
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to object storage: %w", err)
	}
	return &Storage{cfg: cfg, client: client, logger: logger}, nil
}

// EnsureBucket creates the configured bucket if it doesn't exist yet.
func (s *Storage) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.cfg.Bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", s.cfg.Bucket, err)
		}
	}
	return nil
}

// Upload stores the blob under a fresh UUID key, keeping the original
// extension, and returns the public URL.
func (s *Storage) Upload(ctx context.Context, filename, contentType string, data []byte) (string, error) {
	key := uuid.NewString() + strings.ToLower(path.Ext(filename))

	_, err := s.client.PutObject(ctx, s.cfg.Bucket, key,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("failed to store object %s: %w", key, err)
	}

	s.logger.Debug("image stored", "key", key, "bytes", len(data))
	return s.publicURL(key), nil
}

func (s *Storage) publicURL(key string) string {
	base := s.cfg.PublicBaseURL
	if base == "" {
		scheme := "http"
		if s.cfg.UseSSL {
			scheme = "https"
		}
		endpoint := strings.TrimPrefix(strings.TrimPrefix(s.cfg.Endpoint, "https://"), "http://")
		base = fmt.Sprintf("%s://%s/%s", scheme, endpoint, s.cfg.Bucket)
	}
	return strings.TrimSuffix(base, "/") + "/" + key
}
