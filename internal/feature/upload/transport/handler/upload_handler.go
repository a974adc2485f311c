// Package handler はuploadフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"fypet_backend/internal/feature/upload/usecase"
	jwtmw "fypet_backend/internal/platform/jwt"
)

// UploadUsecase はファイルアップロードのユースケースを定義します。
type UploadUsecase interface {
	Upload(ctx context.Context, userID uint, in usecase.UploadInput) (*usecase.UploadResult, error)
}

// UploadHandler はアップロードのHTTPリクエストを処理します。
type UploadHandler struct {
	uc UploadUsecase
}

// NewUploadHandler はUploadHandlerの新しいインスタンスを生成します。
func NewUploadHandler(uc UploadUsecase) *UploadHandler {
	return &UploadHandler{uc: uc}
}

// uploadReq represents the request body for a file upload.
type uploadReq struct {
	Filename    string `json:"filename" binding:"required"`
	ContentType string `json:"contentType" binding:"required"`
	Data        string `json:"data" binding:"required"`
}

// File はファイルアップロードAPIを処理します。認証必須です。
// - 画像以外や5MB超は400
// - 成功時はオブジェクトキーと公開URLを返却
func (h *UploadHandler) File(c *gin.Context) {
	userID, ok := jwtmw.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req uploadReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	result, err := h.uc.Upload(c.Request.Context(), userID, usecase.UploadInput{
		Filename:    req.Filename,
		ContentType: req.ContentType,
		DataBase64:  req.Data,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidFile) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		slog.Error("file upload failed", "user_id", userID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload file"})
		return
	}
	slog.Info("file uploaded", "user_id", userID, "key", result.Key)
	c.JSON(http.StatusCreated, gin.H{"key": result.Key, "url": result.URL})
}
