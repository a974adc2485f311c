// Package handler はanimalsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"fypet_backend/internal/feature/animals/domain/entity"
	"fypet_backend/internal/feature/animals/transport/http/dto"
	"fypet_backend/internal/feature/animals/usecase"
	jwtmw "fypet_backend/internal/platform/jwt"
)

// AnimalUsecase は掲載操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AnimalUsecase interface {
	Create(ctx context.Context, userID uint, in usecase.CreateAnimalInput) (*entity.Animal, error)
	GetAnimal(ctx context.Context, id uint) (*entity.Animal, error)
	Search(ctx context.Context, filter usecase.Filter) ([]entity.Animal, error)
	ListByOwner(ctx context.Context, userID uint) ([]entity.Animal, error)
	Update(ctx context.Context, userID, id uint, in usecase.UpdateAnimalInput) (*entity.Animal, error)
}

// AnimalHandler は掲載操作のHTTPリクエストを処理します。
type AnimalHandler struct {
	uc AnimalUsecase
}

// NewAnimalHandler はAnimalHandlerの新しいインスタンスを生成します。
func NewAnimalHandler(uc AnimalUsecase) *AnimalHandler {
	return &AnimalHandler{uc: uc}
}

// filterFromQuery はクエリパラメータからFilterを組み立てます。
// パラメータが存在しない次元は制約なし（nil）になります。
func filterFromQuery(c *gin.Context) usecase.Filter {
	f := usecase.Filter{SearchText: c.Query("search")}
	if v, ok := c.GetQuery("species"); ok {
		f.Species = &v
	}
	if v, ok := c.GetQuery("breed"); ok {
		f.Breed = &v
	}
	if v, ok := c.GetQuery("size"); ok {
		f.Size = &v
	}
	if v, ok := c.GetQuery("status"); ok {
		f.Status = &v
	}
	if v, ok := c.GetQuery("location"); ok {
		f.Location = &v
	}
	return f
}

// List はカタログ検索APIを処理します。
// クエリパラメータ（search, species, breed, size, status, location）で絞り込みます。
// 絞り込み結果が空でも200と空配列を返します（エラーではありません）。
func (h *AnimalHandler) List(c *gin.Context) {
	animals, err := h.uc.Search(c.Request.Context(), filterFromQuery(c))
	if err != nil {
		slog.Error("catalog search failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list animals"})
		return
	}
	out := make([]dto.AnimalItem, 0, len(animals))
	for i := range animals {
		out = append(out, dto.AnimalItemFromEntity(&animals[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Get は掲載1件を取得するAPIを処理します。
func (h *AnimalHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	animal, err := h.uc.GetAnimal(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, usecase.ErrAnimalNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "animal not found"})
			return
		}
		slog.Error("get animal failed", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get animal"})
		return
	}
	c.JSON(http.StatusOK, dto.AnimalItemFromEntity(animal))
}

// Create は掲載作成APIを処理します。認証必須です。
// - バリデーション失敗時は最初に不足したフィールドのメッセージと共に400を返却
// - 成功時は201と作成された掲載を返却
func (h *AnimalHandler) Create(c *gin.Context) {
	userID, ok := jwtmw.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req dto.CreateAnimalReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	animal, err := h.uc.Create(c.Request.Context(), userID, usecase.CreateAnimalInput{
		Name:         req.Name,
		Species:      req.Species,
		Breed:        req.Breed,
		Age:          req.Age,
		Gender:       req.Gender,
		Size:         req.Size,
		Location:     req.Location,
		City:         req.City,
		State:        req.State,
		Description:  req.Description,
		PhotoURLs:    req.PhotoURLs,
		Vaccinated:   req.Vaccinated,
		Neutered:     req.Neutered,
		ContactName:  req.ContactName,
		ContactPhone: req.ContactPhone,
		ContactEmail: req.ContactEmail,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidAnimal) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		slog.Error("create animal failed", "user_id", userID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create animal"})
		return
	}
	slog.Info("animal listing created", "id", animal.ID, "user_id", userID)
	c.JSON(http.StatusCreated, dto.AnimalItemFromEntity(animal))
}

// ListMine は認証ユーザー自身の掲載一覧APIを処理します。
func (h *AnimalHandler) ListMine(c *gin.Context) {
	userID, ok := jwtmw.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	animals, err := h.uc.ListByOwner(c.Request.Context(), userID)
	if err != nil {
		slog.Error("list own animals failed", "user_id", userID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list animals"})
		return
	}
	out := make([]dto.AnimalItem, 0, len(animals))
	for i := range animals {
		out = append(out, dto.AnimalItemFromEntity(&animals[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Update は掲載更新API（ステータス遷移を含む）を処理します。
// 所有者以外からの更新は403で拒否します。
func (h *AnimalHandler) Update(c *gin.Context) {
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

	var req dto.UpdateAnimalReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	animal, err := h.uc.Update(c.Request.Context(), userID, uint(id), usecase.UpdateAnimalInput{
		Name:        req.Name,
		Breed:       req.Breed,
		Age:         req.Age,
		Location:    req.Location,
		Description: req.Description,
		PhotoURLs:   req.PhotoURLs,
		Status:      req.Status,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrAnimalNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "animal not found"})
		case errors.Is(err, usecase.ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": "not the owner of this listing"})
		case errors.Is(err, usecase.ErrInvalidAnimal):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			slog.Error("update animal failed", "id", id, "user_id", userID, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update animal"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.AnimalItemFromEntity(animal))
}
