// Package handler はfavoritesフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"fypet_backend/internal/feature/animals/domain/entity"
	animaldto "fypet_backend/internal/feature/animals/transport/http/dto"
	animaluc "fypet_backend/internal/feature/animals/usecase"
	jwtmw "fypet_backend/internal/platform/jwt"
)

// FavoriteUsecase はお気に入り操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type FavoriteUsecase interface {
	Add(ctx context.Context, userID, animalID uint) error
	Remove(ctx context.Context, userID, animalID uint) error
	IsFavorite(ctx context.Context, userID, animalID uint) (bool, error)
	List(ctx context.Context, userID uint) ([]entity.Animal, error)
}

// FavoriteHandler はお気に入り操作のHTTPリクエストを処理します。
type FavoriteHandler struct {
	uc FavoriteUsecase
}

// NewFavoriteHandler はFavoriteHandlerの新しいインスタンスを生成します。
func NewFavoriteHandler(uc FavoriteUsecase) *FavoriteHandler {
	return &FavoriteHandler{uc: uc}
}

// animalIDParam はパスパラメータから掲載IDを取り出します。
func animalIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("animalId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid animal id"})
		return 0, false
	}
	return uint(id), true
}

// Add はお気に入り追加APIを処理します。追加済みでも200を返します（冪等）。
func (h *FavoriteHandler) Add(c *gin.Context) {
	userID, ok := jwtmw.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	animalID, ok := animalIDParam(c)
	if !ok {
		return
	}
	if err := h.uc.Add(c.Request.Context(), userID, animalID); err != nil {
		if errors.Is(err, animaluc.ErrAnimalNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "animal not found"})
			return
		}
		slog.Error("add favorite failed", "user_id", userID, "animal_id", animalID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add favorite"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorited": true})
}

// Remove はお気に入り削除APIを処理します。未追加でも200を返します（冪等）。
func (h *FavoriteHandler) Remove(c *gin.Context) {
	userID, ok := jwtmw.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	animalID, ok := animalIDParam(c)
	if !ok {
		return
	}
	if err := h.uc.Remove(c.Request.Context(), userID, animalID); err != nil {
		slog.Error("remove favorite failed", "user_id", userID, "animal_id", animalID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove favorite"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorited": false})
}

// Check は掲載がお気に入り済みかを返すAPIを処理します。
func (h *FavoriteHandler) Check(c *gin.Context) {
	userID, ok := jwtmw.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	animalID, ok := animalIDParam(c)
	if !ok {
		return
	}
	favorited, err := h.uc.IsFavorite(c.Request.Context(), userID, animalID)
	if err != nil {
		slog.Error("check favorite failed", "user_id", userID, "animal_id", animalID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to check favorite"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorited": favorited})
}

// List はお気に入り掲載一覧APIを処理します。
func (h *FavoriteHandler) List(c *gin.Context) {
	userID, ok := jwtmw.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	animals, err := h.uc.List(c.Request.Context(), userID)
	if err != nil {
		slog.Error("list favorites failed", "user_id", userID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list favorites"})
		return
	}
	out := make([]animaldto.AnimalItem, 0, len(animals))
	for i := range animals {
		out = append(out, animaldto.AnimalItemFromEntity(&animals[i]))
	}
	c.JSON(http.StatusOK, out)
}
