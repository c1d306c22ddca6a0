package domain

import (
	"context"
	"time"
)

type EventKind string

const (
	EventSearch     EventKind = "search"
	EventCartCreate EventKind = "cart_create"
	EventCartAdd    EventKind = "cart_add"
	EventCartUpdate EventKind = "cart_update"
	EventCartRemove EventKind = "cart_remove"
)

// A StorefrontEvent records a shopper action for analytics.
type StorefrontEvent struct {
	Kind           EventKind
	SessionID      string
	Query          string
	CartID         string
	MerchandiseIDs []string
	Quantity       int
	ResultCount    int
	OccurredAt     time.Time
}

// Key returns the partition key: the normalized query for searches,
// the cart id otherwise.
func (e StorefrontEvent) Key() string {
	if e.Kind == EventSearch {
		return NormalizeSearchQuery(e.Query)
	}
	return e.CartID
}

type sessionKey struct{}

// WithSessionID attaches the browser session id to ctx.
func WithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionKey{}, id)
}

func SessionID(ctx context.Context) string {
	id, _ := ctx.Value(sessionKey{}).(string)
	return id
}
