package store

import (
	"context"
	"sync"
	"time"

	"github.com/gamenight/server/internal/modules/session/domain"
)

// MemoryStore keeps sessions in-process. Used for development and tests;
// expiry is anchored at each session's creation timestamp, same as the
// backing stores.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]domain.Session
	ttl      time.Duration
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]domain.Session),
		ttl:      ttl,
	}
}

func (s *MemoryStore) Put(_ context.Context, session domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[session.ID] = session
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok || s.expired(session) {
		return domain.Session{}, ErrNotFound
	}

	return session, nil
}

func (s *MemoryStore) Update(
	_ context.Context,
	id string,
	mutate func(*domain.Session) error,
) (domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok || s.expired(session) {
		return domain.Session{}, ErrNotFound
	}

	if err := mutate(&session); err != nil {
		return domain.Session{}, err
	}

	s.sessions[id] = session
	return session, nil
}

func (s *MemoryStore) List(_ context.Context) ([]domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := make([]domain.Session, 0, len(s.sessions))
	for _, session := range s.sessions {
		if s.expired(session) {
			continue
		}
		sessions = append(sessions, session)
	}

	return sessions, nil
}

func (s *MemoryStore) Ping(_ context.Context) error {
	return nil
}

func (s *MemoryStore) expired(session domain.Session) bool {
	return time.Now().After(session.CreatedAt.Add(s.ttl))
}
