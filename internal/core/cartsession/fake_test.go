package cartsession_test

import (
	"context"
	"fmt"
	"sync"

	"github.com/niksmo/storefront/internal/core/domain"
)

// fakeGateway is an in-memory commerce cart API.
type fakeGateway struct {
	mu      sync.Mutex
	carts   map[string]*domain.Cart
	nextID  int
	creates int
	calls   []string
	failAll error
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{carts: make(map[string]*domain.Cart)}
}

func (g *fakeGateway) record(call string) error {
	g.calls = append(g.calls, call)
	return g.failAll
}

func (g *fakeGateway) Cart(_ context.Context, cartID string) (domain.Cart, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.record("Cart"); err != nil {
		return domain.Cart{}, err
	}
	c, ok := g.carts[cartID]
	if !ok {
		return domain.Cart{}, domain.ErrCartNotFound
	}
	return snapshot(c), nil
}

func (g *fakeGateway) CreateCart(_ context.Context, lines []domain.CartLineInput) (domain.Cart, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.record("CreateCart"); err != nil {
		return domain.Cart{}, err
	}
	g.nextID++
	g.creates++
	c := &domain.Cart{
		ID:          fmt.Sprintf("gid://shopify/Cart/%d", g.nextID),
		CheckoutURL: "https://shop.example/checkout",
	}
	g.carts[c.ID] = c
	g.addLocked(c, lines)
	return snapshot(c), nil
}

func (g *fakeGateway) AddLines(
	_ context.Context, cartID string, lines []domain.CartLineInput,
) (domain.Cart, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.record("AddLines"); err != nil {
		return domain.Cart{}, err
	}
	c, ok := g.carts[cartID]
	if !ok {
		return domain.Cart{}, domain.ErrCartNotFound
	}
	g.addLocked(c, lines)
	return snapshot(c), nil
}

func (g *fakeGateway) UpdateLines(
	_ context.Context, cartID string, lines []domain.CartLineUpdate,
) (domain.Cart, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.record("UpdateLines"); err != nil {
		return domain.Cart{}, err
	}
	c, ok := g.carts[cartID]
	if !ok {
		return domain.Cart{}, domain.ErrCartNotFound
	}
	for _, u := range lines {
		for i := range c.Lines {
			if c.Lines[i].ID == u.ID {
				c.Lines[i].Quantity = u.Quantity
			}
		}
	}
	recount(c)
	return snapshot(c), nil
}

func (g *fakeGateway) RemoveLines(
	_ context.Context, cartID string, lineIDs []string,
) (domain.Cart, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.record("RemoveLines"); err != nil {
		return domain.Cart{}, err
	}
	c, ok := g.carts[cartID]
	if !ok {
		return domain.Cart{}, domain.ErrCartNotFound
	}
	kept := c.Lines[:0]
	for _, l := range c.Lines {
		remove := false
		for _, id := range lineIDs {
			if l.ID == id {
				remove = true
			}
		}
		if !remove {
			kept = append(kept, l)
		}
	}
	c.Lines = kept
	recount(c)
	return snapshot(c), nil
}

func (g *fakeGateway) addLocked(c *domain.Cart, lines []domain.CartLineInput) {
	for _, in := range lines {
		merged := false
		for i := range c.Lines {
			if c.Lines[i].Merchandise.ID == in.MerchandiseID {
				c.Lines[i].Quantity += in.Quantity
				merged = true
			}
		}
		if !merged {
			c.Lines = append(c.Lines, domain.CartLine{
				ID:          fmt.Sprintf("%s/line/%d", c.ID, len(c.Lines)+1),
				Quantity:    in.Quantity,
				Merchandise: domain.Merchandise{ID: in.MerchandiseID},
			})
		}
	}
	recount(c)
}

func (g *fakeGateway) deleteCart(id string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.carts, id)
}

func (g *fakeGateway) fail(err error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.failAll = err
}

func (g *fakeGateway) createCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.creates
}

func (g *fakeGateway) callLog() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]string(nil), g.calls...)
}

func recount(c *domain.Cart) {
	c.TotalQuantity = 0
	for _, l := range c.Lines {
		c.TotalQuantity += l.Quantity
	}
}

func snapshot(c *domain.Cart) domain.Cart {
	out := *c
	out.Lines = append([]domain.CartLine(nil), c.Lines...)
	return out
}

type fakeStore struct {
	mu  sync.Mutex
	ids map[string]string
}

func newFakeStore() *fakeStore {
	return &fakeStore{ids: make(map[string]string)}
}

func (s *fakeStore) LoadCartID(_ context.Context, sessionID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ids[sessionID], nil
}

func (s *fakeStore) SaveCartID(_ context.Context, sessionID, cartID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids[sessionID] = cartID
	return nil
}

func (s *fakeStore) DeleteCartID(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.ids, sessionID)
	return nil
}

func (s *fakeStore) get(sessionID string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.ids[sessionID]
	return id, ok
}
