// Package adapters provides file storage implementations for the upload feature.
package adapters

import (
	"bytes"
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"fypet_backend/internal/feature/upload/usecase"
)

// MinioStore wraps a MinIO client for photo storage.
type MinioStore struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

// Compile-time check to ensure MinioStore implements FileStore.
var _ usecase.FileStore = (*MinioStore)(nil)

// NewMinioStore connects to MinIO and ensures the bucket exists.
// publicURL is the base under which stored objects are served, e.g.
// "https://cdn.example.com/photos".
func NewMinioStore(ctx context.Context, endpoint, accessKey, secretKey, bucket, publicURL string, useSSL bool) (*MinioStore, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio client: %w", err)
	}

	// Ensure bucket exists
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("minio bucket check: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("minio make bucket: %w", err)
		}
	}

	return &MinioStore{client: client, bucket: bucket, publicURL: publicURL}, nil
}

// Upload stores bytes under the given object key and returns the public URL.
func (s *MinioStore) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	reader := bytes.NewReader(data)
	_, err := s.client.PutObject(ctx, s.bucket, key, reader, int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%s", s.publicURL, key), nil
}
