package adapters

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"fypet_backend/internal/feature/upload/usecase"
)

// LocalStore writes uploads to the local filesystem.
// Development fallback for running without MinIO.
type LocalStore struct {
	root      string
	publicURL string
}

// Compile-time check to ensure LocalStore implements FileStore.
var _ usecase.FileStore = (*LocalStore)(nil)

// NewLocalStore creates a store rooted at dir.
func NewLocalStore(dir, publicURL string) *LocalStore {
	return &LocalStore{root: dir, publicURL: publicURL}
}

// Upload writes the bytes under root/key and returns the public URL.
func (s *LocalStore) Upload(_ context.Context, key string, data []byte, _ string) (string, error) {
	dst := filepath.Join(s.root, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}
	return fmt.Sprintf("%s/%s", s.publicURL, key), nil
}
