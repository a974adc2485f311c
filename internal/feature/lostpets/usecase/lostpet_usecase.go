// Package usecase implements the business logic for the lostpets feature.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fypet_backend/internal/feature/lostpets/domain/entity"
)

// DefaultListLimit is the number of reports returned by a listing query.
const DefaultListLimit = 50

var (
	// ErrReportNotFound is returned when no report exists for the given ID.
	ErrReportNotFound = errors.New("lost pet report not found")

	// ErrNotOwner is returned when the acting user did not create the report.
	ErrNotOwner = errors.New("not the owner of this report")

	// ErrInvalidReport wraps all report validation failures.
	// The wrapped message names the first missing field.
	ErrInvalidReport = errors.New("invalid lost pet report")
)

// LostPetRepository abstracts the persistence layer for lost-pet reports.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type LostPetRepository interface {
	// Create persists a new report.
	Create(ctx context.Context, pet *entity.LostPet) error

	// FindByID retrieves a report by ID.
	// It returns ErrReportNotFound when no report exists.
	FindByID(ctx context.Context, id uint) (*entity.LostPet, error)

	// ListLost returns up to limit reports still in "lost" status, newest first.
	ListLost(ctx context.Context, limit int) ([]entity.LostPet, error)

	// ListByUser returns every report created by the user, newest first.
	ListByUser(ctx context.Context, userID uint) ([]entity.LostPet, error)

	// UpdateStatus changes the status of a report.
	UpdateStatus(ctx context.Context, id uint, status string) error
}

// CreateLostPetInput carries the fields of a new lost-pet report.
type CreateLostPetInput struct {
	Name         string
	Species      string
	Breed        string
	Color        string
	Description  string
	PhotoURLs    []string
	LostLocation string
	City         string
	State        string
	LostDate     time.Time
	ContactName  string
	ContactPhone string
	ContactEmail string
}

// lostPetUsecase implements the business logic for lost-pet reports.
type lostPetUsecase struct {
	reports LostPetRepository
}

// NewLostPetUsecase creates a new instance of lostPetUsecase.
func NewLostPetUsecase(reports LostPetRepository) *lostPetUsecase {
	return &lostPetUsecase{reports: reports}
}

// validateCreate checks the mandatory fields of a new report and reports
// the first missing one. No partial submission happens on failure.
func validateCreate(in CreateLostPetInput) error {
	switch {
	case in.Species == "":
		return fmt.Errorf("%w: species is required", ErrInvalidReport)
	case in.Color == "":
		return fmt.Errorf("%w: color is required", ErrInvalidReport)
	case in.LostLocation == "":
		return fmt.Errorf("%w: last seen location is required", ErrInvalidReport)
	case in.LostDate.IsZero():
		return fmt.Errorf("%w: last seen date is required", ErrInvalidReport)
	case in.ContactName == "":
		return fmt.Errorf("%w: contact name is required", ErrInvalidReport)
	case in.ContactPhone == "":
		return fmt.Errorf("%w: contact phone is required", ErrInvalidReport)
	}
	return nil
}

// Create validates and persists a new report.
// The report is attributed to userID and starts in "lost" status.
func (u *lostPetUsecase) Create(ctx context.Context, userID uint, in CreateLostPetInput) (*entity.LostPet, error) {
	if err := validateCreate(in); err != nil {
		return nil, err
	}

	pet := &entity.LostPet{
		UserID:       userID,
		Name:         in.Name,
		Species:      in.Species,
		Breed:        in.Breed,
		Color:        in.Color,
		Description:  in.Description,
		PhotoURLs:    in.PhotoURLs,
		LostLocation: in.LostLocation,
		City:         in.City,
		State:        in.State,
		LostDate:     in.LostDate,
		Status:       entity.StatusLost,
		ContactName:  in.ContactName,
		ContactPhone: in.ContactPhone,
		ContactEmail: in.ContactEmail,
	}
	if err := u.reports.Create(ctx, pet); err != nil {
		return nil, err
	}
	return pet, nil
}

// GetReport retrieves a single report by ID.
func (u *lostPetUsecase) GetReport(ctx context.Context, id uint) (*entity.LostPet, error) {
	return u.reports.FindByID(ctx, id)
}

// ListLost returns the reports still marked lost.
func (u *lostPetUsecase) ListLost(ctx context.Context) ([]entity.LostPet, error) {
	return u.reports.ListLost(ctx, DefaultListLimit)
}

// ListByOwner returns every report created by the user.
func (u *lostPetUsecase) ListByOwner(ctx context.Context, userID uint) ([]entity.LostPet, error) {
	return u.reports.ListByUser(ctx, userID)
}

// UpdateStatus performs an owner-checked status transition.
func (u *lostPetUsecase) UpdateStatus(ctx context.Context, userID, id uint, status string) (*entity.LostPet, error) {
	if !entity.ValidStatus(status) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidReport, status)
	}

	pet, err := u.reports.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if pet.UserID != userID {
		return nil, ErrNotOwner
	}

	if err := u.reports.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	pet.Status = status
	return pet, nil
}
