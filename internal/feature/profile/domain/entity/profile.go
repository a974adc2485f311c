// Package entity defines the domain entities for the profile feature.
package entity

import "time"

// User types a profile can declare.
const (
	UserTypeIndividual = "individual"
	UserTypeOng        = "ong"
)

// Profile holds the editable public profile of a user.
// It is separate from the auth user record so profile edits never touch
// credentials. One profile per user, created lazily on first save.
type Profile struct {
	ID      uint   `gorm:"primaryKey"`
	UserID  uint   `gorm:"uniqueIndex;not null"`
	Phone   string `gorm:"size:20"`
	Address string `gorm:"type:text"`
	City    string `gorm:"size:100"`
	State   string `gorm:"size:2"`
	ZipCode string `gorm:"size:10"`

	Bio       string `gorm:"type:text"`
	AvatarURL string `gorm:"size:500"`

	// UserType is either UserTypeIndividual or UserTypeOng.
	UserType string `gorm:"size:20;not null;default:individual"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name.
func (Profile) TableName() string {
	return "user_profiles"
}

// ValidUserType reports whether s is a known profile user type.
func ValidUserType(s string) bool {
	return s == UserTypeIndividual || s == UserTypeOng
}
