package draft

import (
	"context"
	"sync"
	"testing"

	"github.com/invoiceapp/invoice-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSearcher struct {
	mu      sync.Mutex
	queries []string
	results map[string][]entity.Product
}

func (s *stubSearcher) Search(_ context.Context, query string, _ int) ([]entity.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queries = append(s.queries, query)
	return s.results[query], nil
}

func named(names ...string) []entity.Product {
	out := make([]entity.Product, 0, len(names))
	for _, n := range names {
		out = append(out, entity.Product{Name: n})
	}
	return out
}

func TestShortQueryClearsWithoutSearching(t *testing.T) {
	s := NewSuggestionSession(&stubSearcher{})

	gen, ok := s.Begin(0, "ap")
	require.True(t, ok)
	require.True(t, s.Deliver(0, gen, named("apple")))
	require.Len(t, s.Suggestions(0), 1)

	_, ok = s.Begin(0, "a")
	assert.False(t, ok)
	assert.Empty(t, s.Suggestions(0))
}

func TestStaleResponseIsDiscarded(t *testing.T) {
	s := NewSuggestionSession(&stubSearcher{})

	// three keystrokes, three queries in flight for the same item
	gen1, ok := s.Begin(0, "ap")
	require.True(t, ok)
	gen2, ok := s.Begin(0, "app")
	require.True(t, ok)
	gen3, ok := s.Begin(0, "appl")
	require.True(t, ok)

	// responses resolve out of order: "ap", "appl", then "app" last
	assert.False(t, s.Deliver(0, gen1, named("apricot", "apple")))
	assert.True(t, s.Deliver(0, gen3, named("apple")))
	assert.False(t, s.Deliver(0, gen2, named("apple", "applet")))

	got := s.Suggestions(0)
	require.Len(t, got, 1)
	assert.Equal(t, "apple", got[0].Name)
}

func TestGenerationsAreTrackedPerIndex(t *testing.T) {
	s := NewSuggestionSession(&stubSearcher{})

	genA, _ := s.Begin(0, "ap")
	genB, _ := s.Begin(1, "ba")

	assert.True(t, s.Deliver(0, genA, named("apple")))
	assert.True(t, s.Deliver(1, genB, named("banana")))

	assert.Equal(t, "apple", s.Suggestions(0)[0].Name)
	assert.Equal(t, "banana", s.Suggestions(1)[0].Name)
}

func TestClearInvalidatesInFlightLookup(t *testing.T) {
	s := NewSuggestionSession(&stubSearcher{})

	gen, ok := s.Begin(0, "ap")
	require.True(t, ok)

	s.Clear(0)

	assert.False(t, s.Deliver(0, gen, named("apple")), "response issued before Clear must be dropped")
	assert.Empty(t, s.Suggestions(0))
}

func TestLookupDeliversThroughSearcher(t *testing.T) {
	searcher := &stubSearcher{results: map[string][]entity.Product{
		"app": named("apple", "applet"),
	}}
	s := NewSuggestionSession(searcher)

	gen, ok := s.Begin(0, "app")
	require.True(t, ok)
	products, err := searcher.Search(context.Background(), "app", SuggestionLimit)
	require.NoError(t, err)
	require.True(t, s.Deliver(0, gen, products))

	assert.Len(t, s.Suggestions(0), 2)
}
