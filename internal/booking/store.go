package booking

import (
	"context"
	"log"
	"sync"
	"time"
)

// Store keeps one coordinator per authenticated user for the lifetime
// of their booking attempt.  Coordinators are created lazily and
// evicted after sitting idle, since an abandoned browser tab should not
// pin memory forever.
type Store struct {
	api API

	mu    sync.Mutex
	items map[string]*storeEntry
}

type storeEntry struct {
	coord    *Coordinator
	lastSeen time.Time
}

// NewStore constructs an empty store whose coordinators talk to the
// given API.
func NewStore(api API) *Store {
	if api == nil {
		panic("nil API passed to NewStore")
	}
	return &Store{api: api, items: make(map[string]*storeEntry)}
}

// Get returns the user's coordinator, creating it on first use.
func (s *Store) Get(userID string) *Coordinator {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.items[userID]
	if !ok {
		e = &storeEntry{coord: NewCoordinator(s.api)}
		s.items[userID] = e
	}
	e.lastSeen = time.Now()
	return e.coord
}

// Remove drops the user's coordinator, abandoning any attempt in
// progress.
func (s *Store) Remove(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, userID)
}

// RunEviction drops coordinators that have been idle longer than
// maxIdle, checking every interval.  It blocks until ctx is cancelled.
func (s *Store) RunEviction(ctx context.Context, interval, maxIdle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.evictIdle(maxIdle)
		}
	}
}

func (s *Store) evictIdle(maxIdle time.Duration) {
	cutoff := time.Now().Add(-maxIdle)
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, e := range s.items {
		if e.lastSeen.Before(cutoff) {
			delete(s.items, id)
			log.Printf("booking: evicted idle coordinator for user %s", id)
		}
	}
}
