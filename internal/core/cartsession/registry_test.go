package cartsession

import (
	"context"
	"testing"
	"time"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopGateway struct{}

func (nopGateway) Cart(context.Context, string) (domain.Cart, error) {
	return domain.Cart{}, domain.ErrCartNotFound
}

func (nopGateway) CreateCart(context.Context, []domain.CartLineInput) (domain.Cart, error) {
	return domain.Cart{ID: "cart"}, nil
}

func (nopGateway) AddLines(context.Context, string, []domain.CartLineInput) (domain.Cart, error) {
	return domain.Cart{ID: "cart"}, nil
}

func (nopGateway) UpdateLines(context.Context, string, []domain.CartLineUpdate) (domain.Cart, error) {
	return domain.Cart{ID: "cart"}, nil
}

func (nopGateway) RemoveLines(context.Context, string, []string) (domain.Cart, error) {
	return domain.Cart{ID: "cart"}, nil
}

type nopStore struct{}

func (nopStore) LoadCartID(context.Context, string) (string, error) { return "", nil }
func (nopStore) SaveCartID(context.Context, string, string) error   { return nil }
func (nopStore) DeleteCartID(context.Context, string) error         { return nil }

func TestRegistry(t *testing.T) {
	r := NewRegistry(nopGateway{}, nopStore{})
	clock := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return clock }

	a := r.Controller(t.Context(), "a")
	require.Same(t, a, r.Controller(t.Context(), "a"))
	assert.Equal(t, "a", a.SessionID())

	clock = clock.Add(20 * time.Minute)
	r.Controller(t.Context(), "b")
	require.Equal(t, 2, r.Len())

	assert.Equal(t, 1, r.Evict(10*time.Minute))
	assert.Equal(t, 1, r.Len())
	assert.NotSame(t, a, r.Controller(t.Context(), "a"))
}
