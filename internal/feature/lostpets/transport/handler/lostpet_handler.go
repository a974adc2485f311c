// Package handler はlostpetsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"fypet_backend/internal/feature/lostpets/domain/entity"
	"fypet_backend/internal/feature/lostpets/transport/http/dto"
	"fypet_backend/internal/feature/lostpets/usecase"
	jwtmw "fypet_backend/internal/platform/jwt"
)

// LostPetUsecase は迷子ペット通報のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type LostPetUsecase interface {
	Create(ctx context.Context, userID uint, in usecase.CreateLostPetInput) (*entity.LostPet, error)
	GetReport(ctx context.Context, id uint) (*entity.LostPet, error)
	ListLost(ctx context.Context) ([]entity.LostPet, error)
	ListByOwner(ctx context.Context, userID uint) ([]entity.LostPet, error)
	UpdateStatus(ctx context.Context, userID, id uint, status string) (*entity.LostPet, error)
}

// LostPetHandler は迷子ペット通報のHTTPリクエストを処理します。
type LostPetHandler struct {
	uc LostPetUsecase
}

// NewLostPetHandler はLostPetHandlerの新しいインスタンスを生成します。
func NewLostPetHandler(uc LostPetUsecase) *LostPetHandler {
	return &LostPetHandler{uc: uc}
}

// List は「迷子中」の通報一覧APIを処理します。
func (h *LostPetHandler) List(c *gin.Context) {
	pets, err := h.uc.ListLost(c.Request.Context())
	if err != nil {
		slog.Error("list lost pets failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list lost pets"})
		return
	}
	out := make([]dto.LostPetItem, 0, len(pets))
	for i := range pets {
		out = append(out, dto.LostPetItemFromEntity(&pets[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Get は通報1件を取得するAPIを処理します。
func (h *LostPetHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	pet, err := h.uc.GetReport(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, usecase.ErrReportNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "lost pet report not found"})
			return
		}
		slog.Error("get lost pet failed", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get lost pet"})
		return
	}
	c.JSON(http.StatusOK, dto.LostPetItemFromEntity(pet))
}

// Create は通報作成APIを処理します。認証必須です。
// - バリデーション失敗時は最初に不足したフィールドのメッセージと共に400を返却
// - 成功時は201と作成された通報を返却
func (h *LostPetHandler) Create(c *gin.Context) {
	userID, ok := jwtmw.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req dto.CreateLostPetReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	pet, err := h.uc.Create(c.Request.Context(), userID, usecase.CreateLostPetInput{
		Name:         req.Name,
		Species:      req.Species,
		Breed:        req.Breed,
		Color:        req.Color,
		Description:  req.Description,
		PhotoURLs:    req.PhotoURLs,
		LostLocation: req.LostLocation,
		City:         req.City,
		State:        req.State,
		LostDate:     req.LostDate,
		ContactName:  req.ContactName,
		ContactPhone: req.ContactPhone,
		ContactEmail: req.ContactEmail,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidReport) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		slog.Error("create lost pet failed", "user_id", userID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create lost pet report"})
		return
	}
	slog.Info("lost pet report created", "id", pet.ID, "user_id", userID)
	c.JSON(http.StatusCreated, dto.LostPetItemFromEntity(pet))
}

// ListMine は認証ユーザー自身の通報一覧APIを処理します。
func (h *LostPetHandler) ListMine(c *gin.Context) {
	userID, ok := jwtmw.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	pets, err := h.uc.ListByOwner(c.Request.Context(), userID)
	if err != nil {
		slog.Error("list own lost pets failed", "user_id", userID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list lost pets"})
		return
	}
	out := make([]dto.LostPetItem, 0, len(pets))
	for i := range pets {
		out = append(out, dto.LostPetItemFromEntity(&pets[i]))
	}
	c.JSON(http.StatusOK, out)
}

// UpdateStatus はステータス遷移API（lost→found→returned）を処理します。
// 通報者以外からの更新は403で拒否します。
func (h *LostPetHandler) UpdateStatus(c *gin.Context) {
	userID, ok := jwtmw.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req dto.UpdateLostPetStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
		return
	}

	pet, err := h.uc.UpdateStatus(c.Request.Context(), userID, uint(id), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrReportNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "lost pet report not found"})
		case errors.Is(err, usecase.ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": "not the owner of this report"})
		case errors.Is(err, usecase.ErrInvalidReport):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			slog.Error("update lost pet status failed", "id", id, "user_id", userID, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update status"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.LostPetItemFromEntity(pet))
}
