package cartsession

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/niksmo/storefront/internal/core/port"
)

type entry struct {
	ctrl     *Controller
	lastSeen time.Time
}

// A Registry hands out one initialized [Controller] per session id.
//
// Idle controllers are evicted by RunEviction. Their carts survive
// in the cart id store and are loaded again on the next access.
type Registry struct {
	gateway port.CartGateway
	store   port.CartIDStore

	mu       sync.Mutex
	sessions map[string]*entry
	now      func() time.Time
}

func NewRegistry(gateway port.CartGateway, store port.CartIDStore) *Registry {
	return &Registry{
		gateway:  gateway,
		store:    store,
		sessions: make(map[string]*entry),
		now:      time.Now,
	}
}

// Controller returns the session's controller, loading its cart on first use.
func (r *Registry) Controller(ctx context.Context, sessionID string) *Controller {
	r.mu.Lock()
	e, ok := r.sessions[sessionID]
	if !ok {
		e = &entry{ctrl: NewController(sessionID, r.gateway, r.store)}
		r.sessions[sessionID] = e
	}
	e.lastSeen = r.now()
	r.mu.Unlock()

	e.ctrl.Init(ctx)
	return e.ctrl
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Evict drops controllers not accessed within idle and reports how many.
func (r *Registry) Evict(idle time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	deadline := r.now().Add(-idle)
	var n int
	for id, e := range r.sessions {
		if e.lastSeen.Before(deadline) {
			delete(r.sessions, id)
			n++
		}
	}
	return n
}

// RunEviction evicts idle controllers every interval until ctx is done.
func (r *Registry) RunEviction(ctx context.Context, interval, idle time.Duration) {
	const op = "Registry.RunEviction"
	log := slog.With("op", op)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := r.Evict(idle); n > 0 {
				log.Debug("evicted idle sessions", "count", n)
			}
		}
	}
}
