// Package usecase はuploadフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
)

const (
	// maxFileSize は写真1枚の上限サイズです。
	maxFileSize = 5 * 1024 * 1024
)

var (
	// ErrInvalidFile wraps all upload validation failures.
	ErrInvalidFile = errors.New("invalid file")

	// ErrFileTooLarge is returned when the decoded payload exceeds maxFileSize.
	ErrFileTooLarge = fmt.Errorf("%w: file exceeds 5MB", ErrInvalidFile)
)

// allowedContentTypes は受け付ける画像形式です。
var allowedContentTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// FileStore abstracts the object storage backend.
// Production uses MinIO; development can use the local disk.
type FileStore interface {
	// Upload stores the bytes under the given object key and returns a public URL.
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

// UploadInput はアップロードの入力データです。
// DataBase64 はdata URIプレフィックスなしのbase64文字列です。
type UploadInput struct {
	Filename    string
	ContentType string
	DataBase64  string
}

// UploadResult はアップロード成功時の結果です。
type UploadResult struct {
	Key string
	URL string
}

// uploadUsecase はファイルアップロードのビジネスロジックを実装します。
type uploadUsecase struct {
	store FileStore
}

// NewUploadUsecase はuploadUsecaseの新しいインスタンスを生成します。
func NewUploadUsecase(store FileStore) *uploadUsecase {
	return &uploadUsecase{store: store}
}

// Upload はbase64ペイロードを検証・デコードしてストレージに保存します。
// オブジェクトキーは users/<userID>/uploads/<uuid>-<filename> 形式で、
// 推測不能かつユーザー単位で分離されます。
func (u *uploadUsecase) Upload(ctx context.Context, userID uint, in UploadInput) (*UploadResult, error) {
	if _, ok := allowedContentTypes[in.ContentType]; !ok {
		return nil, fmt.Errorf("%w: unsupported content type %q", ErrInvalidFile, in.ContentType)
	}
	if in.DataBase64 == "" {
		return nil, fmt.Errorf("%w: empty payload", ErrInvalidFile)
	}

	// data URIで送られてきた場合はプレフィックスを剥がす
	if i := strings.Index(in.DataBase64, ","); i >= 0 && strings.HasPrefix(in.DataBase64, "data:") {
		in.DataBase64 = in.DataBase64[i+1:]
	}

	data, err := base64.StdEncoding.DecodeString(in.DataBase64)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed base64 payload", ErrInvalidFile)
	}
	if len(data) > maxFileSize {
		return nil, ErrFileTooLarge
	}

	key := objectKey(userID, in.Filename, in.ContentType)
	url, err := u.store.Upload(ctx, key, data, in.ContentType)
	if err != nil {
		return nil, fmt.Errorf("failed to store file: %w", err)
	}
	return &UploadResult{Key: key, URL: url}, nil
}

// objectKey は衝突しないオブジェクトキーを生成します。
// ファイル名はベース名のみ使用し、パストラバーサルを防ぎます。
func objectKey(userID uint, filename, contentType string) string {
	name := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	if name == "." || name == "/" || name == "" {
		name = "file" + allowedContentTypes[contentType]
	}
	return fmt.Sprintf("users/%d/uploads/%s-%s", userID, uuid.NewString(), name)
}
