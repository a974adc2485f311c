package usecase

import (
	"strings"

	"fypet_backend/internal/feature/animals/domain/entity"
)

// Filter narrows the catalog to listings matching all active predicates.
// A nil predicate means "no constraint" for that dimension; there is no
// "all" sentinel value, so a species literally named "all" cannot collide.
type Filter struct {
	// SearchText matches case-insensitively as a substring against
	// name, breed and description (OR across the three fields).
	// Empty means no text constraint.
	SearchText string

	Species  *string // exact match
	Breed    *string // exact match
	Size     *string // exact match
	Status   *string // exact match
	Location *string // case-insensitive substring (locations are free text)
}

// IsZero reports whether no predicate is active.
func (f Filter) IsZero() bool {
	return f.SearchText == "" && f.Species == nil && f.Breed == nil &&
		f.Size == nil && f.Status == nil && f.Location == nil
}

// Matches reports whether the listing satisfies every active predicate.
func (f Filter) Matches(a *entity.Animal) bool {
	if f.SearchText != "" {
		q := strings.ToLower(f.SearchText)
		if !strings.Contains(strings.ToLower(a.Name), q) &&
			!strings.Contains(strings.ToLower(a.Breed), q) &&
			!strings.Contains(strings.ToLower(a.Description), q) {
			return false
		}
	}
	if f.Species != nil && a.Species != *f.Species {
		return false
	}
	if f.Breed != nil && a.Breed != *f.Breed {
		return false
	}
	if f.Size != nil && a.Size != *f.Size {
		return false
	}
	if f.Status != nil && a.Status != *f.Status {
		return false
	}
	if f.Location != nil &&
		!strings.Contains(strings.ToLower(a.Location), strings.ToLower(*f.Location)) {
		return false
	}
	return true
}

// Apply returns the subsequence of catalog for which all active predicates
// hold. Relative catalog order is preserved and no entry is duplicated; an
// empty result is a valid state, not an error. Apply is a pure function of
// its inputs.
func (f Filter) Apply(catalog []entity.Animal) []entity.Animal {
	if f.IsZero() {
		return catalog
	}
	out := make([]entity.Animal, 0, len(catalog))
	for i := range catalog {
		if f.Matches(&catalog[i]) {
			out = append(out, catalog[i])
		}
	}
	return out
}
