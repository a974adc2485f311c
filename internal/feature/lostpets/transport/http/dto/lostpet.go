// Package dto defines data transfer objects for the lostpets feature's HTTP transport layer.
package dto

import (
	"time"

	"fypet_backend/internal/feature/lostpets/domain/entity"
)

// CreateLostPetReq represents the request body for filing a report.
// Business validation (mandatory fields) lives in the usecase so the
// user sees the first missing field, not a binding error.
type CreateLostPetReq struct {
	Name         string    `json:"name"`
	Species      string    `json:"species"`
	Breed        string    `json:"breed"`
	Color        string    `json:"color"`
	Description  string    `json:"description"`
	PhotoURLs    []string  `json:"photoUrls"`
	LostLocation string    `json:"lostLocation"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	LostDate     time.Time `json:"lostDate"`
	ContactName  string    `json:"contactName"`
	ContactPhone string    `json:"contactPhone"`
	ContactEmail string    `json:"contactEmail"`
}

// UpdateLostPetStatusReq represents the request body for a status transition.
type UpdateLostPetStatusReq struct {
	Status string `json:"status" binding:"required"`
}

// LostPetItem is the JSON representation of a report.
type LostPetItem struct {
	ID           uint      `json:"id"`
	UserID       uint      `json:"userId"`
	Name         string    `json:"name"`
	Species      string    `json:"species"`
	Breed        string    `json:"breed"`
	Color        string    `json:"color"`
	Description  string    `json:"description"`
	PhotoURLs    []string  `json:"photoUrls"`
	LostLocation string    `json:"lostLocation"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	LostDate     time.Time `json:"lostDate"`
	Status       string    `json:"status"`
	ContactName  string    `json:"contactName"`
	ContactPhone string    `json:"contactPhone"`
	ContactEmail string    `json:"contactEmail"`
	CreatedAt    time.Time `json:"createdAt"`
}

// LostPetItemFromEntity converts a domain entity to its JSON representation.
func LostPetItemFromEntity(p *entity.LostPet) LostPetItem {
	return LostPetItem{
		ID:           p.ID,
		UserID:       p.UserID,
		Name:         p.Name,
		Species:      p.Species,
		Breed:        p.Breed,
		Color:        p.Color,
		Description:  p.Description,
		PhotoURLs:    p.PhotoURLs,
		LostLocation: p.LostLocation,
		City:         p.City,
		State:        p.State,
		LostDate:     p.LostDate,
		Status:       p.Status,
		ContactName:  p.ContactName,
		ContactPhone: p.ContactPhone,
		ContactEmail: p.ContactEmail,
		CreatedAt:    p.CreatedAt,
	}
}
