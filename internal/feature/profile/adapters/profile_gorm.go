// Package adapters はprofileフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fypet_backend/internal/feature/profile/domain/entity"
	"fypet_backend/internal/feature/profile/usecase"
)

// profileGorm はProfileRepositoryインターフェースのGORM実装です。
type profileGorm struct {
	db *gorm.DB
}

// Compile-time check to ensure profileGorm implements ProfileRepository.
var _ usecase.ProfileRepository = (*profileGorm)(nil)

// NewProfileGorm はprofileGormの新しいインスタンスを生成します。
func NewProfileGorm(db *gorm.DB) *profileGorm {
	return &profileGorm{db: db}
}

// FindByUserID はユーザーのプロフィールを取得します。
func (r *profileGorm) FindByUserID(ctx context.Context, userID uint) (*entity.Profile, error) {
	var profile entity.Profile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// Upsert はuser_idの一意制約に基づいてプロフィールを作成または更新します。
func (r *profileGorm) Upsert(ctx context.Context, profile *entity.Profile) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"phone", "address", "city", "state", "zip_code",
			"bio", "avatar_url", "user_type", "updated_at",
		}),
	}).Create(profile).Error
}
