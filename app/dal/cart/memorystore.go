package cart

import (
	"context"
	"sync"

	corecart "ElectroMart/app/core/cart"
)

var _ Store = (*memoryStore)(nil)

type memoryStore struct {
	mu    sync.RWMutex
	carts map[string][]corecart.Line
}

// NewMemoryStore returns a process-local Store for tests and redis-less dev
// runs.
func NewMemoryStore() Store {
	return &memoryStore{
		carts: make(map[string][]corecart.Line),
	}
}

func (s *memoryStore) Get(_ context.Context, sessionId string) ([]corecart.Line, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	lines, ok := s.carts[sessionId]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]corecart.Line, len(lines))
	copy(out, lines)
	return out, nil
}

func (s *memoryStore) Put(_ context.Context, sessionId string, lines []corecart.Line) error {
	stored := make([]corecart.Line, len(lines))
	copy(stored, lines)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[sessionId] = stored
	return nil
}

func (s *memoryStore) Clear(_ context.Context, sessionId string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionId)
	return nil
}
