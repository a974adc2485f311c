// Package adapters はfavoritesフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"fypet_backend/internal/feature/favorites/usecase"
)

// favoriteGorm はFavoriteRepositoryインターフェースのGORM実装です。
type favoriteGorm struct {
	db *gorm.DB
}

// Compile-time check to ensure favoriteGorm implements FavoriteRepository.
var _ usecase.FavoriteRepository = (*favoriteGorm)(nil)

// NewFavoriteGorm はfavoriteGormの新しいインスタンスを生成します。
func NewFavoriteGorm(db *gorm.DB) *favoriteGorm {
	return &favoriteGorm{db: db}
}

// Add はお気に入りを追加します。重複キーは成功扱いにします（冪等）。
func (r *favoriteGorm) Add(ctx context.Context, userID, animalID uint) error {
	err := r.db.WithContext(ctx).Create(&FavoriteModel{
		UserID:   userID,
		AnimalID: animalID,
	}).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil
	}
	return err
}

// Remove はお気に入りを削除します。対象が無くてもエラーにしません（冪等）。
func (r *favoriteGorm) Remove(ctx context.Context, userID, animalID uint) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND animal_id = ?", userID, animalID).
		Delete(&FavoriteModel{}).Error
}

// Exists はお気に入り済みかを返します。
func (r *favoriteGorm) Exists(ctx context.Context, userID, animalID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&FavoriteModel{}).
		Where("user_id = ? AND animal_id = ?", userID, animalID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListAnimalIDs はお気に入り登録順（新しい順）の掲載ID一覧を返します。
func (r *favoriteGorm) ListAnimalIDs(ctx context.Context, userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&FavoriteModel{}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Pluck("animal_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
