package usecase

import (
	"sync"
	"time"

	"fypet_backend/internal/feature/animals/domain/entity"
	"fypet_backend/internal/shared/debounce"
)

// SearchQuietPeriod is how long search-text input must be stable before the
// result set is recomputed. This is the only timing-sensitive behavior in
// the catalog search.
const SearchQuietPeriod = 300 * time.Millisecond

// SearchSession holds the live filter state of one catalog search.
// Categorical predicate changes recompute synchronously; search-text changes
// are debounced so that typing does not trigger a recompute per keystroke.
// Results are delivered through the onResults callback.
type SearchSession struct {
	debouncer *debounce.Debouncer
	onResults func([]entity.Animal)

	mu      sync.Mutex
	catalog []entity.Animal
	filter  Filter
}

// NewSearchSession creates a search session over the given catalog snapshot.
// onResults is invoked after every recomputation, including the initial one.
func NewSearchSession(catalog []entity.Animal, onResults func([]entity.Animal)) *SearchSession {
	s := &SearchSession{
		debouncer: debounce.NewDebouncer(SearchQuietPeriod),
		onResults: onResults,
		catalog:   catalog,
	}
	s.recompute()
	return s
}

// SetCatalog replaces the catalog snapshot and recomputes synchronously.
func (s *SearchSession) SetCatalog(catalog []entity.Animal) {
	s.mu.Lock()
	s.catalog = catalog
	s.mu.Unlock()
	s.recompute()
}

// SetFilter replaces the categorical predicates and recomputes synchronously.
// The search text is carried over unchanged.
func (s *SearchSession) SetFilter(f Filter) {
	s.mu.Lock()
	f.SearchText = s.filter.SearchText
	s.filter = f
	s.mu.Unlock()
	s.recompute()
}

// SetSearchText updates the free-text predicate. Recomputation is deferred
// until the text has been stable for SearchQuietPeriod.
func (s *SearchSession) SetSearchText(text string) {
	s.mu.Lock()
	s.filter.SearchText = text
	s.mu.Unlock()
	s.debouncer.Do(s.recompute)
}

// Close cancels any pending recomputation.
func (s *SearchSession) Close() {
	s.debouncer.Stop()
}

func (s *SearchSession) recompute() {
	s.mu.Lock()
	results := s.filter.Apply(s.catalog)
	s.mu.Unlock()
	s.onResults(results)
}
