// Package adapters provides repository implementations for the lostpets feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"fypet_backend/internal/feature/lostpets/domain/entity"
	"fypet_backend/internal/feature/lostpets/usecase"
)

// lostPetGorm is a GORM implementation of the LostPetRepository interface.
type lostPetGorm struct {
	db *gorm.DB
}

// Compile-time check to ensure lostPetGorm implements LostPetRepository.
var _ usecase.LostPetRepository = (*lostPetGorm)(nil)

// NewLostPetGorm creates a new instance of lostPetGorm.
func NewLostPetGorm(db *gorm.DB) *lostPetGorm {
	return &lostPetGorm{db: db}
}

// Create persists a new report to the database.
func (r *lostPetGorm) Create(ctx context.Context, pet *entity.LostPet) error {
	return r.db.WithContext(ctx).Create(pet).Error
}

// FindByID retrieves a report by its ID.
func (r *lostPetGorm) FindByID(ctx context.Context, id uint) (*entity.LostPet, error) {
	var pet entity.LostPet
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&pet).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrReportNotFound
		}
		return nil, err
	}
	return &pet, nil
}

// ListLost returns reports still in "lost" status, newest first.
func (r *lostPetGorm) ListLost(ctx context.Context, limit int) ([]entity.LostPet, error) {
	var pets []entity.LostPet
	if err := r.db.WithContext(ctx).
		Where("status = ?", entity.StatusLost).
		Order("created_at DESC").
		Limit(limit).
		Find(&pets).Error; err != nil {
		return nil, err
	}
	return pets, nil
}

// ListByUser returns every report created by the user, newest first.
func (r *lostPetGorm) ListByUser(ctx context.Context, userID uint) ([]entity.LostPet, error) {
	var pets []entity.LostPet
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&pets).Error; err != nil {
		return nil, err
	}
	return pets, nil
}

// UpdateStatus changes the status of a report.
func (r *lostPetGorm) UpdateStatus(ctx context.Context, id uint, status string) error {
	result := r.db.WithContext(ctx).
		Model(&entity.LostPet{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrReportNotFound
	}
	return nil
}
