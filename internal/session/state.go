package session

import (
	"sync"

	"github.com/google/uuid"

	"cinebot/internal/catalog"
)

// Entry is one row of a browsable result set. Positions are 1-based,
// contiguous, and unique within a set.
type Entry struct {
	Position    int
	Ref         catalog.ContentRef
	DisplayName string
	Year        string
}

// WatchlistItem is one saved movie. Deduplicated by ref.
type WatchlistItem struct {
	Ref        catalog.ContentRef
	Title      string
	PosterPath string
}

// State is the per-conversation store. Conversations are single-turn
// sequential, but the mutex keeps accidental cross-goroutine use safe.
type State struct {
	mu sync.Mutex

	id              string
	resultSet       []Entry
	personResultSet []Entry
	activeMovie     catalog.ContentRef
	activeTVShow    catalog.ContentRef
	activePerson    catalog.ContentRef
	watchlist       []WatchlistItem
}

// New creates an empty conversation state with a fresh session ID.
func New() *State {
	return &State{id: uuid.NewString()}
}

// ID returns the session identifier.
func (s *State) ID() string {
	return s.id
}

// ReplaceResultSet atomically swaps the current browsable result set. The
// previous set is discarded wholesale; positions are never merged.
func (s *State) ReplaceResultSet(entries []Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resultSet = append([]Entry(nil), entries...)
}

// ReplacePersonResultSet atomically swaps the person result set.
func (s *State) ReplacePersonResultSet(entries []Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.personResultSet = append([]Entry(nil), entries...)
}

// ResolvePosition looks up a 1-based position in the current result set.
// A miss means "ambiguous reference, ask for clarification", not a fault.
func (s *State) ResolvePosition(position int) (Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return lookupPosition(s.resultSet, position)
}

// ResolvePersonPosition looks up a 1-based position in the person result set.
func (s *State) ResolvePersonPosition(position int) (Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return lookupPosition(s.personResultSet, position)
}

func lookupPosition(entries []Entry, position int) (Entry, bool) {
	if position < 1 || position > len(entries) {
		return Entry{}, false
	}
	return entries[position-1], true
}

// ResultSet returns a copy of the current result set.
func (s *State) ResultSet() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Entry(nil), s.resultSet...)
}

// PersonResultSet returns a copy of the current person result set.
func (s *State) PersonResultSet() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Entry(nil), s.personResultSet...)
}

// SetActive updates the active pointer for the ref's kind. The other kinds'
// pointers are left alone: the last selected entity of each kind stays
// addressable so a user can hop back to a movie while browsing a show.
func (s *State) SetActive(ref catalog.ContentRef) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch ref.Kind {
	case catalog.KindMovie:
		s.activeMovie = ref
	case catalog.KindTV:
		s.activeTVShow = ref
	case catalog.KindPerson:
		s.activePerson = ref
	}
}

// Active returns the active pointer for the given kind, if set.
func (s *State) Active(kind catalog.Kind) (catalog.ContentRef, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var ref catalog.ContentRef
	switch kind {
	case catalog.KindMovie:
		ref = s.activeMovie
	case catalog.KindTV:
		ref = s.activeTVShow
	case catalog.KindPerson:
		ref = s.activePerson
	}
	return ref, !ref.IsZero()
}

// Clear empties both result sets and all active pointers. The watchlist is
// deliberately untouched.
func (s *State) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resultSet = nil
	s.personResultSet = nil
	s.activeMovie = catalog.ContentRef{}
	s.activeTVShow = catalog.ContentRef{}
	s.activePerson = catalog.ContentRef{}
}

// AddToWatchlist appends an item unless its ref is already present.
// It reports whether the item was added.
func (s *State) AddToWatchlist(item WatchlistItem) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.watchlist {
		if existing.Ref == item.Ref {
			return false
		}
	}
	s.watchlist = append(s.watchlist, item)
	return true
}

// Watchlist returns a copy of the saved items in insertion order.
func (s *State) Watchlist() []WatchlistItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]WatchlistItem(nil), s.watchlist...)
}
