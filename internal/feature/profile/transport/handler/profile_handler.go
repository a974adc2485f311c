// Package handler はprofileフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"fypet_backend/internal/feature/profile/domain/entity"
	"fypet_backend/internal/feature/profile/transport/http/dto"
	"fypet_backend/internal/feature/profile/usecase"
	jwtmw "fypet_backend/internal/platform/jwt"
)

// ProfileUsecase はプロフィール操作のユースケースを定義します。
type ProfileUsecase interface {
	Get(ctx context.Context, userID uint) (*entity.Profile, error)
	Update(ctx context.Context, userID uint, in usecase.UpdateProfileInput) (*entity.Profile, error)
}

// ProfileHandler はプロフィール操作のHTTPリクエストを処理します。
type ProfileHandler struct {
	uc ProfileUsecase
}

// NewProfileHandler はProfileHandlerの新しいインスタンスを生成します。
func NewProfileHandler(uc ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

// Get は認証ユーザー自身のプロフィール取得APIを処理します。
// 未保存のユーザーには空のプロフィールを返します。
func (h *ProfileHandler) Get(c *gin.Context) {
	userID, ok := jwtmw.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	profile, err := h.uc.Get(c.Request.Context(), userID)
	if err != nil {
		slog.Error("get profile failed", "user_id", userID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get profile"})
		return
	}
	c.JSON(http.StatusOK, dto.ProfileRespFromEntity(profile))
}

// Update はプロフィール更新APIを処理します。部分更新に対応します。
func (h *ProfileHandler) Update(c *gin.Context) {
	userID, ok := jwtmw.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req dto.UpdateProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	profile, err := h.uc.Update(c.Request.Context(), userID, usecase.UpdateProfileInput{
		Phone:     req.Phone,
		Address:   req.Address,
		City:      req.City,
		State:     req.State,
		ZipCode:   req.ZipCode,
		Bio:       req.Bio,
		AvatarURL: req.AvatarURL,
		UserType:  req.UserType,
	})
	if errors.Is(err, usecase.ErrInvalidUserType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		slog.Error("update profile failed", "user_id", userID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update profile"})
		return
	}
	c.JSON(http.StatusOK, dto.ProfileRespFromEntity(profile))
}
