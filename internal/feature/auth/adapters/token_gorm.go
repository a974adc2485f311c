package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"fypet_backend/internal/feature/auth/domain/entity"
	"fypet_backend/internal/feature/auth/usecase"
)

// tokenGorm is a GORM implementation of the TokenRepository interface.
type tokenGorm struct {
	db *gorm.DB
}

// Compile-time check to ensure tokenGorm implements TokenRepository.
var _ usecase.TokenRepository = (*tokenGorm)(nil)

// NewTokenGorm creates a new instance of tokenGorm.
func NewTokenGorm(db *gorm.DB) *tokenGorm {
	return &tokenGorm{db: db}
}

// Create persists a new verification token to the database.
func (r *tokenGorm) Create(ctx context.Context, token *entity.VerificationToken) error {
	model := TokenModelFromEntity(token)
	return r.db.WithContext(ctx).Create(model).Error
}

// FindByToken retrieves a verification token by its value.
func (r *tokenGorm) FindByToken(ctx context.Context, token string) (*entity.VerificationToken, error) {
	var model TokenModel
	if err := r.db.WithContext(ctx).Where("token = ?", token).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrTokenNotFound
		}
		return nil, err
	}
	return model.ToEntity(), nil
}

// Delete removes a verification token. Deleting an absent token is not an error.
func (r *tokenGorm) Delete(ctx context.Context, token string) error {
	return r.db.WithContext(ctx).Where("token = ?", token).Delete(&TokenModel{}).Error
}

// DeleteExpired removes all expired verification tokens from storage.
func (r *tokenGorm) DeleteExpired(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("expires_at < ?", time.Now()).
		Delete(&TokenModel{})
	return result.RowsAffected, result.Error
}
