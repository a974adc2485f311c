// Package entity defines the domain entities for the lostpets feature.
package entity

import "time"

// Statuses a lost-pet report moves through.
const (
	StatusLost     = "lost"
	StatusFound    = "found"
	StatusReturned = "returned"
)

// LostPet represents a lost-pet report.
// It is created once by the reporting user; only the status changes afterwards.
type LostPet struct {
	// ID is the unique identifier for the report.
	ID uint `gorm:"primaryKey"`

	// UserID is the reporting user. Every report has exactly one owner.
	UserID uint `gorm:"index;not null"`

	Name        string `gorm:"size:100"` // optional, the pet may be unnamed
	Species     string `gorm:"size:50;not null"`
	Breed       string `gorm:"size:100"`
	Color       string `gorm:"size:100"`
	Description string `gorm:"type:text"`

	PhotoURLs []string `gorm:"serializer:json"`

	// Where and when the pet was last seen.
	LostLocation string    `gorm:"size:200;not null"`
	City         string    `gorm:"size:100"`
	State        string    `gorm:"size:2"`
	LostDate     time.Time `gorm:"not null"`

	// Status is one of StatusLost, StatusFound, StatusReturned.
	Status string `gorm:"size:20;not null;default:lost"`

	// Reporter contact information.
	ContactName  string `gorm:"size:100;not null"`
	ContactPhone string `gorm:"size:20;not null"`
	ContactEmail string `gorm:"size:320"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidStatus reports whether s is a known report status.
func ValidStatus(s string) bool {
	return s == StatusLost || s == StatusFound || s == StatusReturned
}
