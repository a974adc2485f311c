// Package usecase implements the business logic for the animals feature.
package usecase

import "errors"

var (
	// ErrAnimalNotFound is returned when no listing exists for the given ID.
	ErrAnimalNotFound = errors.New("animal not found")

	// ErrNotOwner is returned when the acting user does not own the listing.
	ErrNotOwner = errors.New("not the owner of this listing")

	// ErrInvalidAnimal wraps all listing validation failures.
	// Handlers match it with errors.Is to map failures to 400 responses;
	// the wrapped message names the first missing field.
	ErrInvalidAnimal = errors.New("invalid animal")
)
