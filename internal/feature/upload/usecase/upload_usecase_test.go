package usecase

import (
	"context"
	"encoding/base64"
	"errors"
	"regexp"
	"strings"
	"testing"
)

// mockFileStore records the last upload it received.
type mockFileStore struct {
	UploadFunc func(ctx context.Context, key string, data []byte, contentType string) (string, error)

	lastKey  string
	lastData []byte
}

func (m *mockFileStore) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	m.lastKey = key
	m.lastData = data
	if m.UploadFunc != nil {
		return m.UploadFunc(ctx, key, data, contentType)
	}
	return "https://cdn.example.com/" + key, nil
}

func validUpload() UploadInput {
	return UploadInput{
		Filename:    "thor.jpg",
		ContentType: "image/jpeg",
		DataBase64:  base64.StdEncoding.EncodeToString([]byte("fake-jpeg-bytes")),
	}
}

func TestUploadUsecase_Upload(t *testing.T) {
	t.Run("successful upload returns key and url", func(t *testing.T) {
		store := &mockFileStore{}
		uc := NewUploadUsecase(store)

		result, err := uc.Upload(context.Background(), 7, validUpload())

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(store.lastData) != "fake-jpeg-bytes" {
			t.Errorf("payload not decoded correctly: %q", store.lastData)
		}
		// users/<userID>/uploads/<uuid>-<filename>
		keyPattern := regexp.MustCompile(`^users/7/uploads/[0-9a-f-]{36}-thor\.jpg$`)
		if !keyPattern.MatchString(result.Key) {
			t.Errorf("unexpected object key %q", result.Key)
		}
		if !strings.HasSuffix(result.URL, result.Key) {
			t.Errorf("url %q does not reference key %q", result.URL, result.Key)
		}
	})

	t.Run("keys are unique per upload", func(t *testing.T) {
		store := &mockFileStore{}
		uc := NewUploadUsecase(store)

		first, err := uc.Upload(context.Background(), 7, validUpload())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := uc.Upload(context.Background(), 7, validUpload())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if first.Key == second.Key {
			t.Errorf("expected distinct keys, both were %q", first.Key)
		}
	})

	t.Run("data uri prefix is stripped", func(t *testing.T) {
		store := &mockFileStore{}
		uc := NewUploadUsecase(store)

		in := validUpload()
		in.DataBase64 = "data:image/jpeg;base64," + in.DataBase64

		if _, err := uc.Upload(context.Background(), 7, in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(store.lastData) != "fake-jpeg-bytes" {
			t.Errorf("payload not decoded correctly: %q", store.lastData)
		}
	})

	t.Run("non-image content type is rejected", func(t *testing.T) {
		uc := NewUploadUsecase(&mockFileStore{})

		in := validUpload()
		in.ContentType = "application/pdf"

		_, err := uc.Upload(context.Background(), 7, in)
		if !errors.Is(err, ErrInvalidFile) {
			t.Fatalf("expected ErrInvalidFile, got %v", err)
		}
	})

	t.Run("malformed base64 is rejected", func(t *testing.T) {
		uc := NewUploadUsecase(&mockFileStore{})

		in := validUpload()
		in.DataBase64 = "%%%not-base64%%%"

		_, err := uc.Upload(context.Background(), 7, in)
		if !errors.Is(err, ErrInvalidFile) {
			t.Fatalf("expected ErrInvalidFile, got %v", err)
		}
	})

	t.Run("oversized payload is rejected", func(t *testing.T) {
		uc := NewUploadUsecase(&mockFileStore{})

		in := validUpload()
		in.DataBase64 = base64.StdEncoding.EncodeToString(make([]byte, maxFileSize+1))

		_, err := uc.Upload(context.Background(), 7, in)
		if !errors.Is(err, ErrFileTooLarge) {
			t.Fatalf("expected ErrFileTooLarge, got %v", err)
		}
	})

	t.Run("path traversal in filename is neutralized", func(t *testing.T) {
		store := &mockFileStore{}
		uc := NewUploadUsecase(store)

		in := validUpload()
		in.Filename = "../../etc/passwd"

		result, err := uc.Upload(context.Background(), 7, in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.Contains(result.Key, "..") {
			t.Errorf("object key leaks traversal: %q", result.Key)
		}
		if !strings.HasPrefix(result.Key, "users/7/uploads/") {
			t.Errorf("object key escaped the user prefix: %q", result.Key)
		}
	})

	t.Run("store failure propagates", func(t *testing.T) {
		wantErr := errors.New("bucket unavailable")
		store := &mockFileStore{
			UploadFunc: func(ctx context.Context, key string, data []byte, contentType string) (string, error) {
				return "", wantErr
			},
		}
		uc := NewUploadUsecase(store)

		_, err := uc.Upload(context.Background(), 7, validUpload())
		if !errors.Is(err, wantErr) {
			t.Fatalf("expected store error, got %v", err)
		}
	})
}
