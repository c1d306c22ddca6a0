package shopify

import (
	"context"
	"fmt"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

var _ port.CartGateway = (*Carts)(nil)

// Carts manages remote carts. Nothing here is cached.
type Carts struct {
	client *Client
}

func NewCarts(client *Client) *Carts {
	return &Carts{client}
}

func (c *Carts) Cart(ctx context.Context, cartID string) (domain.Cart, error) {
	const op = "Carts.Cart"

	var data struct {
		Cart *cartNode `json:"cart"`
	}
	err := c.client.Execute(
		ctx, cartQuery, map[string]any{"cartId": cartID}, NoCache, nil, &data,
	)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
	}
	if data.Cart == nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", op, domain.ErrCartNotFound)
	}
	return data.Cart.toDomain(), nil
}

func (c *Carts) CreateCart(
	ctx context.Context, lines []domain.CartLineInput,
) (domain.Cart, error) {
	const op = "Carts.CreateCart"

	var vars map[string]any
	if len(lines) > 0 {
		vars = map[string]any{"lines": lines}
	}

	var data struct {
		Payload cartPayload `json:"cartCreate"`
	}
	return c.mutate(ctx, op, cartCreateMutation, vars, &data, &data.Payload)
}

func (c *Carts) AddLines(
	ctx context.Context, cartID string, lines []domain.CartLineInput,
) (domain.Cart, error) {
	const op = "Carts.AddLines"

	var data struct {
		Payload cartPayload `json:"cartLinesAdd"`
	}
	vars := map[string]any{"cartId": cartID, "lines": lines}
	return c.mutate(ctx, op, cartLinesAddMutation, vars, &data, &data.Payload)
}

func (c *Carts) UpdateLines(
	ctx context.Context, cartID string, lines []domain.CartLineUpdate,
) (domain.Cart, error) {
	const op = "Carts.UpdateLines"

	var data struct {
		Payload cartPayload `json:"cartLinesUpdate"`
	}
	vars := map[string]any{"cartId": cartID, "lines": lines}
	return c.mutate(ctx, op, cartLinesUpdateMutation, vars, &data, &data.Payload)
}

func (c *Carts) RemoveLines(
	ctx context.Context, cartID string, lineIDs []string,
) (domain.Cart, error) {
	const op = "Carts.RemoveLines"

	var data struct {
		Payload cartPayload `json:"cartLinesRemove"`
	}
	vars := map[string]any{"cartId": cartID, "lineIds": lineIDs}
	return c.mutate(ctx, op, cartLinesRemoveMutation, vars, &data, &data.Payload)
}

// mutate executes a cart mutation decoding into out, whose payload is p.
//
// The first user error fails the call. A user error on the cart id
// means the cart is gone and is reported as [domain.ErrCartNotFound].
func (c *Carts) mutate(
	ctx context.Context,
	op string,
	document string,
	vars map[string]any,
	out any,
	p *cartPayload,
) (domain.Cart, error) {
	if err := c.client.Execute(ctx, document, vars, NoCache, nil, out); err != nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
	}

	if len(p.UserErrors) > 0 {
		ue := p.UserErrors[0]
		if ue.onCartID() {
			return domain.Cart{}, fmt.Errorf("%s: %w: %w", op, domain.ErrCartNotFound, &ue)
		}
		return domain.Cart{}, fmt.Errorf("%s: %w", op, &ue)
	}

	if p.Cart == nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", op, domain.ErrCartNotFound)
	}
	return p.Cart.toDomain(), nil
}
