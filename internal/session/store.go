package session

import (
	"context"
	"sync"
	"time"

	"go-dreamjob/internal/domain"
)

// Store keeps the logged-in user for each active session id. A session
// disappears when Delete is called or the TTL expires.
type Store interface {
	Get(ctx context.Context, sid string) (*domain.User, error)
	Set(ctx context.Context, sid string, user *domain.User, ttl time.Duration) error
	Delete(ctx context.Context, sid string) error
}

type memoryEntry struct {
	user      domain.User
	expiresAt time.Time
}

type memoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

// NewMemoryStore is the fallback for deployments without Redis. Sessions
// do not survive a restart and are not shared across replicas.
func NewMemoryStore() Store {
	return &memoryStore{entries: make(map[string]memoryEntry)}
}

func (s *memoryStore) Get(ctx context.Context, sid string) (*domain.User, error) {
	s.mu.RLock()
	entry, ok := s.entries[sid]
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	if time.Now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.entries, sid)
		s.mu.Unlock()
		return nil, nil
	}
	user := entry.user
	return &user, nil
}

func (s *memoryStore) Set(ctx context.Context, sid string, user *domain.User, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[sid] = memoryEntry{user: *user, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (s *memoryStore) Delete(ctx context.Context, sid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, sid)
	return nil
}
