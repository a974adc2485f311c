package usecase

import (
	"context"
	"fmt"

	"fypet_backend/internal/feature/animals/domain/entity"
)

const (
	// DefaultCatalogLimit is the number of listings returned by a catalog query.
	DefaultCatalogLimit = 50
)

// AnimalRepository abstracts the persistence layer for adoption listings.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type AnimalRepository interface {
	// Create persists a new listing.
	Create(ctx context.Context, animal *entity.Animal) error

	// FindByID retrieves a listing by ID.
	// It returns ErrAnimalNotFound when no listing exists.
	FindByID(ctx context.Context, id uint) (*entity.Animal, error)

	// ListAvailable returns up to limit available listings, newest first.
	ListAvailable(ctx context.Context, limit int) ([]entity.Animal, error)

	// ListByUser returns every listing owned by the user, newest first.
	ListByUser(ctx context.Context, userID uint) ([]entity.Animal, error)

	// Save persists changes to an existing listing.
	Save(ctx context.Context, animal *entity.Animal) error
}

// CreateAnimalInput carries the fields of a new adoption listing.
type CreateAnimalInput struct {
	Name         string
	Species      string
	Breed        string
	Age          string
	Gender       string
	Size         string
	Location     string
	City         string
	State        string
	Description  string
	PhotoURLs    []string
	Vaccinated   bool
	Neutered     bool
	ContactName  string
	ContactPhone string
	ContactEmail string
}

// UpdateAnimalInput carries the mutable fields of a listing.
// Nil fields are left unchanged.
type UpdateAnimalInput struct {
	Name        *string
	Breed       *string
	Age         *string
	Location    *string
	Description *string
	PhotoURLs   []string
	Status      *string
}

// animalUsecase implements the business logic for adoption listings.
type animalUsecase struct {
	animals AnimalRepository
}

// NewAnimalUsecase creates a new instance of animalUsecase.
func NewAnimalUsecase(animals AnimalRepository) *animalUsecase {
	return &animalUsecase{animals: animals}
}

// validateCreate checks the mandatory fields of a new listing and reports
// the first missing one. No partial submission happens on failure.
func validateCreate(in CreateAnimalInput) error {
	switch {
	case in.Name == "":
		return fmt.Errorf("%w: name is required", ErrInvalidAnimal)
	case in.Species == "":
		return fmt.Errorf("%w: species is required", ErrInvalidAnimal)
	case in.Breed == "":
		return fmt.Errorf("%w: breed is required", ErrInvalidAnimal)
	case in.Age == "":
		return fmt.Errorf("%w: age is required", ErrInvalidAnimal)
	case in.Location == "":
		return fmt.Errorf("%w: location is required", ErrInvalidAnimal)
	case in.Description == "":
		return fmt.Errorf("%w: description is required", ErrInvalidAnimal)
	case len(in.PhotoURLs) == 0:
		return fmt.Errorf("%w: at least one photo is required", ErrInvalidAnimal)
	case len(in.PhotoURLs) > entity.MaxPhotos:
		// Extra files are rejected, never silently truncated.
		return fmt.Errorf("%w: at most %d photos are allowed", ErrInvalidAnimal, entity.MaxPhotos)
	case in.ContactName == "" && in.ContactPhone == "":
		return fmt.Errorf("%w: contact information is required", ErrInvalidAnimal)
	}
	return nil
}

// Create validates and persists a new adoption listing.
// The listing is attributed to userID and enters the catalog as "available".
func (u *animalUsecase) Create(ctx context.Context, userID uint, in CreateAnimalInput) (*entity.Animal, error) {
	if err := validateCreate(in); err != nil {
		return nil, err
	}

	animal := &entity.Animal{
		UserID:       userID,
		Name:         in.Name,
		Species:      in.Species,
		Breed:        in.Breed,
		Age:          in.Age,
		Gender:       in.Gender,
		Size:         in.Size,
		Location:     in.Location,
		City:         in.City,
		State:        in.State,
		Description:  in.Description,
		PhotoURLs:    in.PhotoURLs,
		Status:       entity.StatusAvailable,
		Vaccinated:   in.Vaccinated,
		Neutered:     in.Neutered,
		ContactName:  in.ContactName,
		ContactPhone: in.ContactPhone,
		ContactEmail: in.ContactEmail,
	}
	if err := u.animals.Create(ctx, animal); err != nil {
		return nil, err
	}
	return animal, nil
}

// GetAnimal retrieves a single listing by ID.
func (u *animalUsecase) GetAnimal(ctx context.Context, id uint) (*entity.Animal, error) {
	return u.animals.FindByID(ctx, id)
}

// ListCatalog returns the available listings (the catalog).
func (u *animalUsecase) ListCatalog(ctx context.Context) ([]entity.Animal, error) {
	return u.animals.ListAvailable(ctx, DefaultCatalogLimit)
}

// Search returns the catalog narrowed by the given filter.
// Output preserves catalog order; an empty result is valid.
func (u *animalUsecase) Search(ctx context.Context, filter Filter) ([]entity.Animal, error) {
	catalog, err := u.animals.ListAvailable(ctx, DefaultCatalogLimit)
	if err != nil {
		return nil, err
	}
	return filter.Apply(catalog), nil
}

// ListByOwner returns every listing owned by the user.
func (u *animalUsecase) ListByOwner(ctx context.Context, userID uint) ([]entity.Animal, error) {
	return u.animals.ListByUser(ctx, userID)
}

// Update applies owner-performed changes to a listing, including status
// transitions. The ownership check happens before any mutation.
func (u *animalUsecase) Update(ctx context.Context, userID, id uint, in UpdateAnimalInput) (*entity.Animal, error) {
	animal, err := u.animals.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if animal.UserID != userID {
		return nil, ErrNotOwner
	}

	if in.Name != nil {
		animal.Name = *in.Name
	}
	if in.Breed != nil {
		animal.Breed = *in.Breed
	}
	if in.Age != nil {
		animal.Age = *in.Age
	}
	if in.Location != nil {
		animal.Location = *in.Location
	}
	if in.Description != nil {
		animal.Description = *in.Description
	}
	if in.PhotoURLs != nil {
		if len(in.PhotoURLs) > entity.MaxPhotos {
			return nil, fmt.Errorf("%w: at most %d photos are allowed", ErrInvalidAnimal, entity.MaxPhotos)
		}
		animal.PhotoURLs = in.PhotoURLs
	}
	if in.Status != nil {
		if !entity.ValidStatus(*in.Status) {
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidAnimal, *in.Status)
		}
		animal.Status = *in.Status
	}

	if err := u.animals.Save(ctx, animal); err != nil {
		return nil, err
	}
	return animal, nil
}
