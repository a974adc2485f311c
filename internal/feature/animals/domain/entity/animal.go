// Package entity defines the domain entities for the animals feature.
package entity

import "time"

// Statuses an adoption listing moves through.
// A listing starts "available", becomes "pending" while an adoption is in
// process and ends "adopted". Only the listing owner performs transitions.
const (
	StatusAvailable = "available"
	StatusPending   = "pending"
	StatusAdopted   = "adopted"
)

// Genders recognized for animals.
const (
	GenderMale   = "male"
	GenderFemale = "female"
)

// Sizes recognized for animals.
const (
	SizeSmall  = "small"
	SizeMedium = "medium"
	SizeLarge  = "large"
)

// MaxPhotos is the maximum number of photos per listing.
const MaxPhotos = 5

// Animal represents an adoption listing in the catalog.
// It is immutable after creation except for owner-performed updates.
type Animal struct {
	// ID is the unique identifier for the listing.
	ID uint `gorm:"primaryKey"`

	// UserID is the owning user. Every listing has exactly one owner.
	UserID uint `gorm:"index;not null"`

	Name        string `gorm:"size:100;not null"`
	Species     string `gorm:"size:50;not null"`
	Breed       string `gorm:"size:100"`
	Age         string `gorm:"size:50"` // free text, e.g. "3 anos"
	Gender      string `gorm:"size:10"`
	Size        string `gorm:"size:10"`
	Location    string `gorm:"size:200"`
	City        string `gorm:"size:100"`
	State       string `gorm:"size:2"`
	Description string `gorm:"type:text"`

	// PhotoURLs holds up to MaxPhotos stored object URLs.
	PhotoURLs []string `gorm:"serializer:json"`

	// Status is one of StatusAvailable, StatusPending, StatusAdopted.
	Status string `gorm:"size:20;not null;default:available"`

	Vaccinated bool
	Neutered   bool

	// Contact information shown on the listing. At least one of
	// ContactName (organization) or ContactPhone must be present.
	ContactName  string `gorm:"size:100"`
	ContactPhone string `gorm:"size:20"`
	ContactEmail string `gorm:"size:320"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidStatus reports whether s is a known listing status.
func ValidStatus(s string) bool {
	return s == StatusAvailable || s == StatusPending || s == StatusAdopted
}
