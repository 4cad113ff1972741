package draft

import (
	"context"
	"strings"
	"sync"

	"github.com/invoiceapp/invoice-api/internal/domain/entity"
)

const (
	// MinQueryLength is the shortest product-name fragment that triggers
	// a lookup; anything shorter just clears the list.
	MinQueryLength = 2
	// SuggestionLimit caps how many products a lookup returns
	SuggestionLimit = 10
)

// ProductSearcher looks up catalog products matching a name fragment.
type ProductSearcher interface {
	Search(ctx context.Context, query string, limit int) ([]entity.Product, error)
}

// SuggestionSession holds the autocomplete state for one draft. Lookups
// are keyed by item index and tagged with a per-index generation
// counter; a response is applied only if it belongs to the most
// recently issued query for that index, so late responses to
// superseded keystrokes never overwrite newer results.
type SuggestionSession struct {
	searcher ProductSearcher

	mu    sync.Mutex
	gens  map[int]uint64
	lists map[int][]entity.Product
}

// NewSuggestionSession creates a session backed by the given searcher.
func NewSuggestionSession(searcher ProductSearcher) *SuggestionSession {
	return &SuggestionSession{
		searcher: searcher,
		gens:     make(map[int]uint64),
		lists:    make(map[int][]entity.Product),
	}
}

// Begin registers a new query for an item index and returns the
// generation to deliver results under. If the query is too short, the
// index's suggestions are cleared and ok is false: no lookup should be
// made.
func (s *SuggestionSession) Begin(index int, query string) (gen uint64, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gens[index]++
	if len(strings.TrimSpace(query)) < MinQueryLength {
		delete(s.lists, index)
		return s.gens[index], false
	}
	return s.gens[index], true
}

// Deliver applies a resolved result set for an index if its generation
// is still the latest one issued. It reports whether the results were
// accepted or discarded as stale.
func (s *SuggestionSession) Deliver(index int, gen uint64, products []entity.Product) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.gens[index] != gen {
		return false
	}
	s.lists[index] = products
	return true
}

// Suggestions returns the current list for an item index.
func (s *SuggestionSession) Suggestions(index int) []entity.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lists[index]
}

// Clear drops the suggestions for an index and invalidates any
// in-flight lookup for it, e.g. after a product has been selected.
func (s *SuggestionSession) Clear(index int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gens[index]++
	delete(s.lists, index)
}

// Lookup runs the query asynchronously and delivers the results under
// the generation issued for it. Errors just leave the previous list in
// place; a failed suggestion lookup is not worth surfacing.
func (s *SuggestionSession) Lookup(ctx context.Context, index int, query string) {
	gen, ok := s.Begin(index, query)
	if !ok {
		return
	}
	go func() {
		products, err := s.searcher.Search(ctx, query, SuggestionLimit)
		if err != nil {
			return
		}
		s.Deliver(index, gen, products)
	}()
}
