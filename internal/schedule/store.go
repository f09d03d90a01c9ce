package schedule

import (
	"sort"
	"sync"
	"time"

	"confsched/internal/models"
)

// Store holds the current Index and lets a refresher swap in a new one
// while handlers keep reading. The Index itself is immutable; the lock
// only guards the swap.
type Store struct {
	mu        sync.RWMutex
	index     *Index
	fetchedAt time.Time
}

func NewStore() *Store {
	return &Store{}
}

// Swap replaces the current index. fetchedAt records when the backing
// document was retrieved.
func (s *Store) Swap(ix *Index, fetchedAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.index = ix
	s.fetchedAt = fetchedAt
}

// Ready reports whether a schedule has been loaded yet.
func (s *Store) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.index != nil
}

// Index returns the current index, or nil before the first load.
func (s *Store) Index() *Index {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.index
}

// Rooms returns the raw room labels, sorted for stable JSON output.
func (s *Store) Rooms() []string {
	ix := s.Index()
	if ix == nil {
		return nil
	}
	return sortedKeys(ix.Rooms())
}

// RoomsCanonical returns the canonical room names, sorted.
func (s *Store) RoomsCanonical() []string {
	ix := s.Index()
	if ix == nil {
		return nil
	}
	return sortedKeys(ix.RoomsCanonical())
}

func (s *Store) EventsInRoom(name string) []models.Event {
	ix := s.Index()
	if ix == nil {
		return nil
	}
	return ix.EventsInRoom(name)
}

func (s *Store) CurrentByRoom(asOf string) map[string]models.Event {
	ix := s.Index()
	if ix == nil {
		return map[string]models.Event{}
	}
	return ix.CurrentByRoom(asOf)
}

func (s *Store) NextByRoom(asOf string) map[string]models.Event {
	ix := s.Index()
	if ix == nil {
		return map[string]models.Event{}
	}
	return ix.NextByRoom(asOf)
}

// Status describes the loaded schedule for the status endpoint.
type Status struct {
	Loaded     bool      `json:"loaded"`
	FetchedAt  time.Time `json:"fetched_at,omitempty"`
	EventCount int       `json:"event_count"`
	RoomCount  int       `json:"room_count"`
}

func (s *Store) Status() Status {
	s.mu.RLock()
	ix := s.index
	fetchedAt := s.fetchedAt
	s.mu.RUnlock()

	if ix == nil {
		return Status{}
	}
	return Status{
		Loaded:     true,
		FetchedAt:  fetchedAt,
		EventCount: len(ix.Events()),
		RoomCount:  len(ix.RoomsCanonical()),
	}
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
