// Package adapters はanimalsフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"fypet_backend/internal/feature/animals/domain/entity"
	"fypet_backend/internal/feature/animals/usecase"
)

// animalGorm はAnimalRepositoryインターフェースのGORM実装です。
type animalGorm struct {
	db *gorm.DB
}

var _ usecase.AnimalRepository = (*animalGorm)(nil)

// NewAnimalGorm は指定されたDB接続でanimalGormリポジトリの新しいインスタンスを生成します。
func NewAnimalGorm(db *gorm.DB) *animalGorm {
	return &animalGorm{db: db}
}

// Create は掲載をデータベースに追加します。
func (r *animalGorm) Create(ctx context.Context, animal *entity.Animal) error {
	return r.db.WithContext(ctx).Create(animal).Error
}

// FindByID はIDで掲載を取得します。
// 存在しない場合、usecase.ErrAnimalNotFoundを返します。
func (r *animalGorm) FindByID(ctx context.Context, id uint) (*entity.Animal, error) {
	var a entity.Animal
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrAnimalNotFound
		}
		return nil, err
	}
	return &a, nil
}

// ListAvailable は掲載中（available）の動物を新しい順に返します。
func (r *animalGorm) ListAvailable(ctx context.Context, limit int) ([]entity.Animal, error) {
	var animals []entity.Animal
	if err := r.db.WithContext(ctx).
		Where("status = ?", entity.StatusAvailable).
		Order("created_at DESC").
		Limit(limit).
		Find(&animals).Error; err != nil {
		return nil, err
	}
	return animals, nil
}

// ListByUser は指定ユーザーが所有するすべての掲載を新しい順に返します。
func (r *animalGorm) ListByUser(ctx context.Context, userID uint) ([]entity.Animal, error) {
	var animals []entity.Animal
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&animals).Error; err != nil {
		return nil, err
	}
	return animals, nil
}

// Save は既存の掲載への変更を永続化します。
func (r *animalGorm) Save(ctx context.Context, animal *entity.Animal) error {
	return r.db.WithContext(ctx).Save(animal).Error
}
