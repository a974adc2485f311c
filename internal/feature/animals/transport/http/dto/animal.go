// Package dto defines data transfer objects for the animals feature's HTTP transport layer.
package dto

import (
	"time"

	"fypet_backend/internal/feature/animals/domain/entity"
)

// CreateAnimalReq represents the request body for creating a listing.
// Business validation (mandatory fields, photo cap) lives in the usecase so
// the user sees the first missing field, not a binding error.
type CreateAnimalReq struct {
	Name         string   `json:"name"`
	Species      string   `json:"species"`
	Breed        string   `json:"breed"`
	Age          string   `json:"age"`
	Gender       string   `json:"gender"`
	Size         string   `json:"size"`
	Location     string   `json:"location"`
	City         string   `json:"city"`
	State        string   `json:"state"`
	Description  string   `json:"description"`
	PhotoURLs    []string `json:"photoUrls"`
	Vaccinated   bool     `json:"vaccinated"`
	Neutered     bool     `json:"neutered"`
	ContactName  string   `json:"contactName"`
	ContactPhone string   `json:"contactPhone"`
	ContactEmail string   `json:"contactEmail"`
}

// UpdateAnimalReq represents the request body for updating a listing.
// Nil fields are left unchanged.
type UpdateAnimalReq struct {
	Name        *string  `json:"name"`
	Breed       *string  `json:"breed"`
	Age         *string  `json:"age"`
	Location    *string  `json:"location"`
	Description *string  `json:"description"`
	PhotoURLs   []string `json:"photoUrls"`
	Status      *string  `json:"status"`
}

// AnimalItem is the JSON representation of a listing.
type AnimalItem struct {
	ID           uint      `json:"id"`
	UserID       uint      `json:"userId"`
	Name         string    `json:"name"`
	Species      string    `json:"species"`
	Breed        string    `json:"breed"`
	Age          string    `json:"age"`
	Gender       string    `json:"gender"`
	Size         string    `json:"size"`
	Location     string    `json:"location"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	Description  string    `json:"description"`
	PhotoURLs    []string  `json:"photoUrls"`
	Status       string    `json:"status"`
	Vaccinated   bool      `json:"vaccinated"`
	Neutered     bool      `json:"neutered"`
	ContactName  string    `json:"contactName"`
	ContactPhone string    `json:"contactPhone"`
	ContactEmail string    `json:"contactEmail"`
	CreatedAt    time.Time `json:"createdAt"`
}

// AnimalItemFromEntity converts a domain entity to its JSON representation.
func AnimalItemFromEntity(a *entity.Animal) AnimalItem {
	return AnimalItem{
		ID:           a.ID,
		UserID:       a.UserID,
		Name:         a.Name,
		Species:      a.Species,
		Breed:        a.Breed,
		Age:          a.Age,
		Gender:       a.Gender,
		Size:         a.Size,
		Location:     a.Location,
		City:         a.City,
		State:        a.State,
		Description:  a.Description,
		PhotoURLs:    a.PhotoURLs,
		Status:       a.Status,
		Vaccinated:   a.Vaccinated,
		Neutered:     a.Neutered,
		ContactName:  a.ContactName,
		ContactPhone: a.ContactPhone,
		ContactEmail: a.ContactEmail,
		CreatedAt:    a.CreatedAt,
	}
}
