// Package search implements the ticker lookup widget's client-side
// behavior: a debounced free-text query against the search route, with a
// result panel the caller renders.
package search

import (
	"sync"
	"time"

	"traderdash/internal/domain"
)

// Lookup is the search route. repository.MarketDataRepository satisfies it.
type Lookup interface {
	Search(query string) ([]domain.SearchResult, error)
}

const DefaultDebounce = 300 * time.Millisecond

// Searcher debounces keystrokes and issues at most one lookup per settled
// query. Every query is assigned a monotonically increasing tag; a response
// only lands while its tag is still the newest, so a slow early response can
// never overwrite a newer query's panel, even before that query fires.
type Searcher struct {
	lookup        Lookup
	debounce      time.Duration
	onSelect      func(symbol string)
	clearOnSelect bool

	mu        sync.Mutex
	timer     *time.Timer
	seq       uint64
	query     string
	selected  map[string]bool
	results   []domain.SearchResult
	open      bool
	searching bool
}

func NewSearcher(lookup Lookup, debounce time.Duration, onSelect func(symbol string)) *Searcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Searcher{
		lookup:        lookup,
		debounce:      debounce,
		onSelect:      onSelect,
		clearOnSelect: true,
		selected:      map[string]bool{},
	}
}

// SetSelected replaces the already-chosen symbols; they are filtered out
// of every result list.
func (s *Searcher) SetSelected(symbols []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = map[string]bool{}
	for _, symbol := range symbols {
		s.selected[symbol] = true
	}
}

// SetQuery records a keystroke. The pending debounce timer is dropped, so
// only the last query in a burst fires a request.
func (s *Searcher) SetQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.query = query
	s.open = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}

	// every keystroke advances the tag, so a response still in flight for
	// an older query is dropped even before the new request fires
	s.seq++
	tag := s.seq

	if len(query) < 1 {
		s.results = nil
		s.searching = false
		return
	}

	s.searching = true
	s.timer = time.AfterFunc(s.debounce, func() {
		s.fire(query, tag)
	})
}

func (s *Searcher) fire(query string, tag uint64) {
	results, err := s.lookup.Search(query)

	s.mu.Lock()
	defer s.mu.Unlock()
	if tag != s.seq {
		// a newer request was issued while this one was in flight
		return
	}
	s.searching = false
	if err != nil {
		// lookup failure is silent - the panel just shows no results
		s.results = []domain.SearchResult{}
		return
	}

	filtered := []domain.SearchResult{}
	for _, r := range results {
		if !s.selected[r.Symbol] {
			filtered = append(filtered, r)
		}
	}
	s.results = filtered
}

// Results returns a copy of the current result list.
func (s *Searcher) Results() []domain.SearchResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.SearchResult, len(s.results))
	copy(out, s.results)
	return out
}

// Open reports whether the result panel is showing.
func (s *Searcher) Open() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open && len(s.query) > 0
}

// Searching reports whether a lookup is pending or in flight.
func (s *Searcher) Searching() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.searching
}

// Select picks a symbol: the caller's callback fires, the query clears,
// and the panel closes.
func (s *Searcher) Select(symbol string) {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if s.clearOnSelect {
		s.query = ""
		s.results = nil
	}
	s.open = false
	s.searching = false
	s.seq++
	onSelect := s.onSelect
	s.mu.Unlock()

	if onSelect != nil {
		onSelect(symbol)
	}
}

// SelectFirst handles the activation key: the first result wins, if any.
func (s *Searcher) SelectFirst() bool {
	s.mu.Lock()
	if len(s.results) == 0 {
		s.mu.Unlock()
		return false
	}
	first := s.results[0].Symbol
	s.mu.Unlock()

	s.Select(first)
	return true
}

// Dismiss handles the cancel key and outside clicks: the panel closes but
// the query stays.
func (s *Searcher) Dismiss() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = false
}
