package di

import (
	"context"
	"log/slog"
	"os"

	uploadadapters "fypet_backend/internal/feature/upload/adapters"
	"fypet_backend/internal/feature/upload/usecase"
)

// NewFileStore creates a FileStore implementation.
// With MINIO_ENDPOINT set, photos go to MinIO; otherwise they land on the
// local disk under UPLOAD_DIR (default ./uploads).
func NewFileStore(ctx context.Context) usecase.FileStore {
	publicURL := os.Getenv("PHOTO_BASE_URL")
	if publicURL == "" {
		publicURL = "http://localhost:8080/uploads"
	}

	endpoint := os.Getenv("MINIO_ENDPOINT")
	if endpoint == "" {
		dir := os.Getenv("UPLOAD_DIR")
		if dir == "" {
			dir = "./uploads"
		}
		return uploadadapters.NewLocalStore(dir, publicURL)
	}

	bucket := os.Getenv("MINIO_BUCKET")
	if bucket == "" {
		bucket = "fypet-photos"
	}
	store, err := uploadadapters.NewMinioStore(ctx,
		endpoint,
		os.Getenv("MINIO_ACCESS_KEY"),
		os.Getenv("MINIO_SECRET_KEY"),
		bucket,
		publicURL,
		os.Getenv("MINIO_USE_SSL") == "true",
	)
	if err != nil {
		slog.Warn("MinIO unavailable, falling back to local storage", "error", err)
		dir := os.Getenv("UPLOAD_DIR")
		if dir == "" {
			dir = "./uploads"
		}
		return uploadadapters.NewLocalStore(dir, publicURL)
	}
	return store
}
