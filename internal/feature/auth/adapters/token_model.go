package adapters

import (
	"time"

	"fypet_backend/internal/feature/auth/domain/entity"
)

// TokenModel is the GORM model for the email_verification_tokens table.
type TokenModel struct {
	ID        uint      `gorm:"primaryKey"`
	Token     string    `gorm:"uniqueIndex;size:255;not null"`
	UserID    uint      `gorm:"index;not null"`
	Email     string    `gorm:"size:320;not null"`
	ExpiresAt time.Time `gorm:"index;not null"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM.
func (TokenModel) TableName() string {
	return "email_verification_tokens"
}

// ToEntity converts the GORM model to a domain entity.
func (m *TokenModel) ToEntity() *entity.VerificationToken {
	return &entity.VerificationToken{
		Token:     m.Token,
		UserID:    m.UserID,
		Email:     m.Email,
		ExpiresAt: m.ExpiresAt,
		CreatedAt: m.CreatedAt,
	}
}

// TokenModelFromEntity converts a domain entity to a GORM model.
func TokenModelFromEntity(t *entity.VerificationToken) *TokenModel {
	return &TokenModel{
		Token:     t.Token,
		UserID:    t.UserID,
		Email:     t.Email,
		ExpiresAt: t.ExpiresAt,
		CreatedAt: t.CreatedAt,
	}
}
