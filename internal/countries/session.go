package countries

import (
	"context"
	"coursework/internal/engine"
	"coursework/internal/models"
	"errors"
	"sync"
	"sync/atomic"
)

var (
	// ErrNotLoaded is returned while no load has committed yet.
	ErrNotLoaded = errors.New("countries are still loading")
	// ErrStale is returned by a load that finished after a newer one committed.
	ErrStale = errors.New("countries load superseded by a newer one")
)

// Session holds the fetched collection and the selected filter of one
// countries page. Each Refresh takes a generation ticket and commits only
// when its ticket is newer than the committed one, so a slow earlier fetch
// cannot overwrite a newer collection.
type Session struct {
	source   Source
	collator *engine.Collator
	opts     []engine.Option

	gen atomic.Uint64

	mu        sync.RWMutex
	countries []models.Country
	loadedGen uint64
	filter    Filter
}

func NewSession(source Source, collator *engine.Collator, opts ...engine.Option) *Session {
	return &Session{source: source, collator: collator, opts: opts, filter: FilterRegion}
}

// Refresh fetches the collection and commits it unless a newer Refresh
// committed in the meantime. It returns the number of countries committed.
func (s *Session) Refresh(ctx context.Context) (int, error) {
	gen := s.gen.Add(1)

	countries, err := s.source.Fetch(ctx)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen <= s.loadedGen {
		return 0, ErrStale
	}
	s.countries = countries
	s.loadedGen = gen
	return len(countries), nil
}

// Loaded reports whether a collection has been committed.
func (s *Session) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedGen != 0
}

// Filter returns the selected filter. The initial filter is region.
func (s *Session) Filter() Filter {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter
}

// Select switches the selected filter and rebuilds the view from the full
// collection, discarding whatever the previous filter produced.
func (s *Session) Select(f Filter) (models.CountryView, error) {
	s.mu.Lock()
	s.filter = f
	s.mu.Unlock()
	return s.View(f)
}

// View builds a view for f without touching the selected filter, for
// request-scoped use.
func (s *Session) View(f Filter) (models.CountryView, error) {
	s.mu.RLock()
	countries, gen := s.countries, s.loadedGen
	s.mu.RUnlock()

	if gen == 0 {
		return models.CountryView{}, ErrNotLoaded
	}
	view := Build(countries, f, s.collator, s.opts...)
	view.Generation = gen
	return view, nil
}

// Current reports whether view was built from the latest committed load.
func (s *Session) Current(view models.CountryView) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return view.Generation != 0 && view.Generation == s.loadedGen
}

// Countries returns the committed collection.
func (s *Session) Countries() []models.Country {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.countries
}
