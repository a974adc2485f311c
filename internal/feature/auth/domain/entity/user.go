// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// Account types distinguish private individuals from rescue organizations (ONGs).
const (
	AccountTypeIndividual = "individual"
	AccountTypeOng        = "ong"
)

// Roles supported by the platform.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a registered user in the system.
// It contains authentication credentials and metadata for user management.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Name is the display name shown on listings and reports.
	Name string `gorm:"size:100;not null"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:320;not null"`

	// Password is the hashed password for the user.
	// This should never store plaintext passwords.
	Password string `gorm:"size:255;not null"`

	// Phone is an optional contact phone number.
	Phone string `gorm:"size:20"`

	// AccountType is either "individual" or "ong".
	AccountType string `gorm:"size:20;not null;default:individual"`

	// EmailVerified reports whether the user completed email verification.
	EmailVerified bool `gorm:"not null;default:false"`

	// Role is either "user" or "admin".
	Role string `gorm:"size:20;not null;default:user"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}
