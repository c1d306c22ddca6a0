// Package cartsession holds the cart state of browser sessions.
//
// A [Controller] owns the cart snapshot and the persisted cart id of one
// session. The snapshot is only replaced after the commerce API confirms
// a change, and mutations of one session run one at a time.
package cartsession

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

type State struct {
	Cart         *domain.Cart `json:"cart"`
	CartID       string       `json:"cartId,omitempty"`
	IsLoading    bool         `json:"isLoading"`
	IsMutating   bool         `json:"isMutating"`
	IsDrawerOpen bool         `json:"isDrawerOpen"`
}

type Controller struct {
	sessionID string
	gateway   port.CartGateway
	store     port.CartIDStore

	initOnce sync.Once

	// opMu serializes loading and mutations.
	opMu sync.Mutex

	mu    sync.RWMutex
	state State
}

func NewController(
	sessionID string, gateway port.CartGateway, store port.CartIDStore,
) *Controller {
	return &Controller{
		sessionID: sessionID,
		gateway:   gateway,
		store:     store,
	}
}

func (c *Controller) SessionID() string {
	return c.sessionID
}

// State returns a copy of the current state.
// The cart snapshot it points to is never modified in place.
func (c *Controller) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Init loads the persisted cart once. Later calls do nothing.
//
// Load failures are not returned: a cart that cannot be fetched
// is forgotten and the session continues without one.
func (c *Controller) Init(ctx context.Context) {
	c.initOnce.Do(func() {
		c.opMu.Lock()
		defer c.opMu.Unlock()
		c.load(ctx)
	})
}

func (c *Controller) load(ctx context.Context) {
	const op = "Controller.Init"
	log := slog.With("op", op, "session", c.sessionID)

	c.update(func(s *State) { s.IsLoading = true })
	defer c.update(func(s *State) { s.IsLoading = false })

	cartID, err := c.store.LoadCartID(ctx, c.sessionID)
	if err != nil {
		log.Error("failed to load cart id", "err", err)
		return
	}
	if cartID == "" {
		return
	}

	cart, err := c.gateway.Cart(ctx, cartID)
	if err != nil {
		if errors.Is(err, domain.ErrCartNotFound) {
			log.Info("stored cart is gone", "cartID", cartID)
		} else {
			log.Warn("failed to fetch stored cart", "cartID", cartID, "err", err)
		}
		c.forget(ctx)
		return
	}

	c.update(func(s *State) {
		s.Cart = &cart
		s.CartID = cart.ID
	})
}

// AddItem adds quantity of the variant to the held cart,
// creating the cart when none is held. The drawer opens on success.
func (c *Controller) AddItem(ctx context.Context, variantID string, quantity int) error {
	const op = "Controller.AddItem"
	log := slog.With("op", op, "session", c.sessionID)

	if variantID == "" {
		return domain.NewValidationError("variantId", "variant id is required")
	}
	if quantity <= 0 {
		return domain.NewValidationError("quantity", "quantity must be positive")
	}

	c.opMu.Lock()
	defer c.opMu.Unlock()
	c.update(func(s *State) { s.IsMutating = true })
	defer c.update(func(s *State) { s.IsMutating = false })

	lines := []domain.CartLineInput{{MerchandiseID: variantID, Quantity: quantity}}

	var (
		cart domain.Cart
		err  error
	)

	cartID := c.State().CartID
	if cartID != "" {
		cart, err = c.gateway.AddLines(ctx, cartID, lines)
		if errors.Is(err, domain.ErrCartNotFound) {
			log.Info("held cart is gone, creating a new one", "cartID", cartID)
			c.forget(ctx)
			cartID = ""
		}
	}
	if cartID == "" {
		cart, err = c.gateway.CreateCart(ctx, lines)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := c.store.SaveCartID(ctx, c.sessionID, cart.ID); err != nil {
		log.Error("failed to persist cart id", "cartID", cart.ID, "err", err)
	}

	c.update(func(s *State) {
		s.Cart = &cart
		s.CartID = cart.ID
		s.IsDrawerOpen = true
	})
	return nil
}

// UpdateItem sets the quantity of a line. Zero removes the line.
// Without a held cart it does nothing.
func (c *Controller) UpdateItem(ctx context.Context, lineID string, quantity int) error {
	const op = "Controller.UpdateItem"

	if quantity < 0 {
		return domain.NewValidationError("quantity", "quantity must not be negative")
	}

	c.opMu.Lock()
	defer c.opMu.Unlock()

	if err := c.setQuantity(ctx, lineID, quantity); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// RemoveItem removes a line. Without a held cart it does nothing.
func (c *Controller) RemoveItem(ctx context.Context, lineID string) error {
	const op = "Controller.RemoveItem"

	c.opMu.Lock()
	defer c.opMu.Unlock()

	if err := c.remove(ctx, lineID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// DecrementItem lowers the quantity of a line by one.
// A line at quantity one is removed, never updated to zero.
func (c *Controller) DecrementItem(ctx context.Context, lineID string) error {
	const op = "Controller.DecrementItem"

	c.opMu.Lock()
	defer c.opMu.Unlock()

	cart := c.State().Cart
	if cart == nil {
		return nil
	}

	line, ok := cart.Line(lineID)
	if !ok {
		return domain.NewValidationError("lineId", "cart line not found")
	}

	var err error
	if line.Quantity <= 1 {
		err = c.remove(ctx, lineID)
	} else {
		err = c.setQuantity(ctx, lineID, line.Quantity-1)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (c *Controller) OpenCart() {
	c.update(func(s *State) { s.IsDrawerOpen = true })
}

func (c *Controller) CloseCart() {
	c.update(func(s *State) { s.IsDrawerOpen = false })
}

// setQuantity and remove expect opMu to be held.
func (c *Controller) setQuantity(ctx context.Context, lineID string, quantity int) error {
	if quantity == 0 {
		return c.remove(ctx, lineID)
	}

	cartID := c.State().CartID
	if cartID == "" {
		return nil
	}

	return c.mutate(func() (domain.Cart, error) {
		return c.gateway.UpdateLines(ctx, cartID, []domain.CartLineUpdate{
			{ID: lineID, Quantity: quantity},
		})
	})
}

func (c *Controller) remove(ctx context.Context, lineID string) error {
	cartID := c.State().CartID
	if cartID == "" {
		return nil
	}

	return c.mutate(func() (domain.Cart, error) {
		return c.gateway.RemoveLines(ctx, cartID, []string{lineID})
	})
}

func (c *Controller) mutate(call func() (domain.Cart, error)) error {
	c.update(func(s *State) { s.IsMutating = true })
	defer c.update(func(s *State) { s.IsMutating = false })

	cart, err := call()
	if err != nil {
		return err
	}

	c.update(func(s *State) { s.Cart = &cart })
	return nil
}

// forget drops the held cart and its persisted id.
func (c *Controller) forget(ctx context.Context) {
	const op = "Controller.forget"

	c.update(func(s *State) {
		s.Cart = nil
		s.CartID = ""
	})

	if err := c.store.DeleteCartID(ctx, c.sessionID); err != nil {
		slog.With("op", op, "session", c.sessionID).Error(
			"failed to delete cart id", "err", err,
		)
	}
}

func (c *Controller) update(fn func(*State)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn(&c.state)
}
