package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

var (
	_ port.CartGateway = (*Cart)(nil)
	_ port.CartFacade  = (*Cart)(nil)
)

// Cart is the cart gateway seen by the rest of the core.
// It forwards to the commerce API and publishes a storefront event
// for every successful mutation.
type Cart struct {
	gateway port.CartGateway
	events  port.EventsProducer
}

func NewCart(gateway port.CartGateway, events port.EventsProducer) *Cart {
	return &Cart{gateway, events}
}

// Get returns nil when the cart does not exist anymore.
func (s *Cart) Get(ctx context.Context, cartID string) (*domain.Cart, error) {
	const op = "Cart.Get"

	if cartID == "" {
		return nil, domain.NewValidationError("cartId", "Cart ID is required")
	}

	cart, err := s.gateway.Cart(ctx, cartID)
	if err != nil {
		if errors.Is(err, domain.ErrCartNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &cart, nil
}

// Do performs one cart facade action. An add without a cart id creates a cart.
func (s *Cart) Do(ctx context.Context, req domain.CartRequest) (domain.Cart, error) {
	const op = "Cart.Do"

	var (
		cart domain.Cart
		err  error
	)

	switch req.Action {
	case domain.CartActionCreate:
		cart, err = s.CreateCart(ctx, lineInputs(req.Lines))
	case domain.CartActionAdd:
		if req.CartID == "" {
			cart, err = s.CreateCart(ctx, lineInputs(req.Lines))
			break
		}
		cart, err = s.AddLines(ctx, req.CartID, lineInputs(req.Lines))
	case domain.CartActionUpdate:
		if req.CartID == "" {
			return domain.Cart{}, domain.NewValidationError(
				"cartId", "Cart ID is required for update",
			)
		}
		cart, err = s.UpdateLines(ctx, req.CartID, lineUpdates(req.Lines))
	case domain.CartActionRemove:
		if req.CartID == "" || len(req.LineIDs) == 0 {
			return domain.Cart{}, domain.NewValidationError(
				"lineIds", "Cart ID and line IDs are required for remove",
			)
		}
		cart, err = s.RemoveLines(ctx, req.CartID, req.LineIDs)
	default:
		return domain.Cart{}, domain.NewValidationError("action", "Invalid action")
	}

	if err != nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
	}
	return cart, nil
}

func (s *Cart) Cart(ctx context.Context, cartID string) (domain.Cart, error) {
	return s.gateway.Cart(ctx, cartID)
}

func (s *Cart) CreateCart(
	ctx context.Context, lines []domain.CartLineInput,
) (domain.Cart, error) {
	cart, err := s.gateway.CreateCart(ctx, lines)
	if err != nil {
		return domain.Cart{}, err
	}
	s.produce(ctx, cartEvent(
		ctx, domain.EventCartCreate, cart.ID, merchandiseIDs(lines), lineQuantity(lines),
	))
	return cart, nil
}

func (s *Cart) AddLines(
	ctx context.Context, cartID string, lines []domain.CartLineInput,
) (domain.Cart, error) {
	cart, err := s.gateway.AddLines(ctx, cartID, lines)
	if err != nil {
		return domain.Cart{}, err
	}
	s.produce(ctx, cartEvent(
		ctx, domain.EventCartAdd, cart.ID, merchandiseIDs(lines), lineQuantity(lines),
	))
	return cart, nil
}

func (s *Cart) UpdateLines(
	ctx context.Context, cartID string, lines []domain.CartLineUpdate,
) (domain.Cart, error) {
	cart, err := s.gateway.UpdateLines(ctx, cartID, lines)
	if err != nil {
		return domain.Cart{}, err
	}

	var quantity int
	for _, l := range lines {
		quantity += l.Quantity
	}
	s.produce(ctx, cartEvent(ctx, domain.EventCartUpdate, cart.ID, nil, quantity))
	return cart, nil
}

func (s *Cart) RemoveLines(
	ctx context.Context, cartID string, lineIDs []string,
) (domain.Cart, error) {
	cart, err := s.gateway.RemoveLines(ctx, cartID, lineIDs)
	if err != nil {
		return domain.Cart{}, err
	}
	s.produce(ctx, cartEvent(ctx, domain.EventCartRemove, cart.ID, nil, 0))
	return cart, nil
}

// produce never fails the cart operation that already succeeded upstream.
func (s *Cart) produce(ctx context.Context, e domain.StorefrontEvent) {
	const op = "Cart.produce"

	if err := s.events.ProduceEvents(ctx, []domain.StorefrontEvent{e}); err != nil {
		slog.With("op", op).Error(
			"failed to produce cart event", "kind", e.Kind, "err", err,
		)
	}
}

func cartEvent(
	ctx context.Context, kind domain.EventKind, cartID string, ids []string, quantity int,
) domain.StorefrontEvent {
	return domain.StorefrontEvent{
		Kind:           kind,
		SessionID:      domain.SessionID(ctx),
		CartID:         cartID,
		MerchandiseIDs: ids,
		Quantity:       quantity,
		OccurredAt:     time.Now(),
	}
}

func lineInputs(lines []domain.CartRequestLine) []domain.CartLineInput {
	out := make([]domain.CartLineInput, len(lines))
	for i, l := range lines {
		out[i] = domain.CartLineInput{MerchandiseID: l.MerchandiseID, Quantity: l.Quantity}
	}
	return out
}

func lineUpdates(lines []domain.CartRequestLine) []domain.CartLineUpdate {
	out := make([]domain.CartLineUpdate, len(lines))
	for i, l := range lines {
		out[i] = domain.CartLineUpdate{ID: l.ID, Quantity: l.Quantity}
	}
	return out
}

func merchandiseIDs(lines []domain.CartLineInput) []string {
	ids := make([]string, len(lines))
	for i, l := range lines {
		ids[i] = l.MerchandiseID
	}
	return ids
}

func lineQuantity(lines []domain.CartLineInput) int {
	var n int
	for _, l := range lines {
		n += l.Quantity
	}
	return n
}
