package search

import (
	"errors"
	"log"

	"scribe/internal/document"
	"scribe/internal/domain"
	"scribe/internal/eventbus"
)

// ErrNoMatches is returned when cycling through an empty match list
var ErrNoMatches = errors.New("no matches")

// State holds the active query and its matches
type State struct {
	Query        string
	Matches      []domain.Coordinates
	CurrentMatch int
}

// Service runs a search over a document and cycles through the results
type Service struct {
	state      State
	opts       Options
	bus        eventbus.EventBus
	navigateFn func(domain.Coordinates) // called on every index change
}

// NewService creates a new search service. bus may be nil.
func NewService(bus eventbus.EventBus, opts Options) *Service {
	return &Service{bus: bus, opts: opts}
}

// SetNavigateFunction sets the function that moves the cursor to a match
func (s *Service) SetNavigateFunction(fn func(domain.Coordinates)) {
	s.navigateFn = fn
}

// Start searches doc for query and moves to the first match, if any.
// It returns the number of matches.
func (s *Service) Start(query string, doc *document.Document) int {
	s.state = State{
		Query:   query,
		Matches: Find(query, doc, s.opts),
	}

	log.Printf("Search completed for '%s': found %d matches", query, len(s.state.Matches))

	first := domain.Coordinates{}
	if len(s.state.Matches) > 0 {
		first = s.state.Matches[0]
		s.navigate()
	}
	s.publish(domain.SearchCompletedEvent{
		Query:      query,
		MatchCount: len(s.state.Matches),
		FirstMatch: first,
	})
	return len(s.state.Matches)
}

// Clear forgets the current query and matches
func (s *Service) Clear() {
	s.state = State{}
	s.publish(domain.SearchClearedEvent{})
}

// Next moves to the following match, wrapping to the first one
func (s *Service) Next() (domain.Coordinates, error) {
	return s.step(1)
}

// Previous moves to the preceding match, wrapping to the last one
func (s *Service) Previous() (domain.Coordinates, error) {
	return s.step(-1)
}

// Current returns the selected match
func (s *Service) Current() (domain.Coordinates, error) {
	if len(s.state.Matches) == 0 {
		return domain.Coordinates{}, ErrNoMatches
	}
	return s.state.Matches[s.state.CurrentMatch], nil
}

// Query returns the active query
func (s *Service) Query() string {
	return s.state.Query
}

// MatchCount returns the number of matches
func (s *Service) MatchCount() int {
	return len(s.state.Matches)
}

// CurrentIndex returns the selected match index, or -1 without matches
func (s *Service) CurrentIndex() int {
	if len(s.state.Matches) == 0 {
		return -1
	}
	return s.state.CurrentMatch
}

func (s *Service) step(delta int) (domain.Coordinates, error) {
	n := len(s.state.Matches)
	if n == 0 {
		return domain.Coordinates{}, ErrNoMatches
	}

	old := s.state.Matches[s.state.CurrentMatch]
	s.state.CurrentMatch = ((s.state.CurrentMatch+delta)%n + n) % n
	s.navigate()

	cur := s.state.Matches[s.state.CurrentMatch]
	s.publish(domain.SearchNavigatedEvent{From: old, To: cur})
	return cur, nil
}

func (s *Service) navigate() {
	if s.navigateFn == nil || len(s.state.Matches) == 0 {
		return
	}
	s.navigateFn(s.state.Matches[s.state.CurrentMatch])
}

func (s *Service) publish(event domain.DomainEvent) {
	if s.bus != nil {
		s.bus.Publish(event)
	}
}
