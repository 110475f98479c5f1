package storage

import (
	"context"
	"fmt"

	"github.com/BerylCAtieno/pdf-extraction-service/internal/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type s3Storage struct {
	client *minio.Client
}

// NewS3Storage reads s3://bucket/key paths from an S3 compatible endpoint.
func NewS3Storage(cfg *config.Config) (Storage, error) {
	client, err := minio.New(cfg.S3Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.S3AccessKeyID, cfg.S3SecretAccessKey, ""),
		Secure: cfg.S3UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 client: %w", err)
	}

	return &s3Storage{client: client}, nil
}

func (s *s3Storage) Read(ctx context.Context, path string, maxSize int64) ([]byte, error) {
	bucket, key, err := ParseS3Path(path)
	if err != nil {
		return nil, err
	}

	object, err := s.client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get object from S3: %w", err)
	}
	defer object.Close()

	info, err := object.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat object %s: %w", path, err)
	}

	data, err := readLimited(object, info.Size, maxSize)
	if err != nil {
		return nil, fmt.Errorf("failed to read object %s: %w", path, err)
	}

	return data, nil
}
