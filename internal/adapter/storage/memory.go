package storage

import (
	"context"
	"sync"

	"github.com/niksmo/storefront/internal/core/port"
)

var _ port.CartIDStore = (*MemoryCartSessions)(nil)

// MemoryCartSessions is used when no SQL database is configured.
// Cart ids are lost on restart.
type MemoryCartSessions struct {
	mu      sync.RWMutex
	cartIDs map[string]string
}

func NewMemoryCartSessions() *MemoryCartSessions {
	return &MemoryCartSessions{cartIDs: make(map[string]string)}
}

func (s *MemoryCartSessions) LoadCartID(ctx context.Context, sessionID string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cartIDs[sessionID], nil
}

func (s *MemoryCartSessions) SaveCartID(ctx context.Context, sessionID, cartID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cartIDs[sessionID] = cartID
	return nil
}

func (s *MemoryCartSessions) DeleteCartID(ctx context.Context, sessionID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.cartIDs, sessionID)
	return nil
}
