package port

import (
	"context"
	"sync"

	"github.com/niksmo/storefront/internal/core/domain"
)

type (
	runnerContextWg interface {
		Run(context.Context, context.CancelFunc, *sync.WaitGroup)
	}

	closer interface {
		Close()
	}
)

// CatalogReader fetches catalog snapshots from the commerce API.
// Missing products and collections are reported with domain.ErrNotFound.
type CatalogReader interface {
	Products(ctx context.Context, first int) ([]domain.Product, error)
	ProductByHandle(ctx context.Context, handle string) (domain.Product, error)
	Collections(ctx context.Context, first int) ([]domain.Collection, error)
	CollectionByHandle(ctx context.Context, handle string, first int) (domain.Collection, error)
	SearchProducts(ctx context.Context, query string, first int) ([]domain.Product, error)
}

// CartGateway manages remote carts.
// A cart the API no longer knows is reported with domain.ErrCartNotFound.
type CartGateway interface {
	Cart(ctx context.Context, cartID string) (domain.Cart, error)
	CreateCart(ctx context.Context, lines []domain.CartLineInput) (domain.Cart, error)
	AddLines(ctx context.Context, cartID string, lines []domain.CartLineInput) (domain.Cart, error)
	UpdateLines(ctx context.Context, cartID string, lines []domain.CartLineUpdate) (domain.Cart, error)
	RemoveLines(ctx context.Context, cartID string, lineIDs []string) (domain.Cart, error)
}

type CacheRevalidator interface {
	Revalidate(tag string) int
}

// CartIDStore persists the active cart id of a browser session.
// LoadCartID returns an empty string when nothing is stored.
type CartIDStore interface {
	LoadCartID(ctx context.Context, sessionID string) (string, error)
	SaveCartID(ctx context.Context, sessionID, cartID string) error
	DeleteCartID(ctx context.Context, sessionID string) error
}

type EventsProducer interface {
	ProduceEvents(context.Context, []domain.StorefrontEvent) error
}

type SearchStatsReader interface {
	SearchCount(ctx context.Context, query string) (int64, error)
}

type SearchStatsProcessor interface {
	runnerContextWg
	closer
}

// CatalogService serves catalog pages.
type CatalogService interface {
	Home(ctx context.Context) (domain.Home, error)
	ListProducts(ctx context.Context, params domain.ListingParams) (domain.Listing, error)
	Product(ctx context.Context, handle string) (domain.Product, error)
	Collections(ctx context.Context) ([]domain.Collection, error)
	CollectionListing(
		ctx context.Context, handle string, params domain.ListingParams,
	) (domain.CollectionListing, error)
	Search(ctx context.Context, query string, params domain.ListingParams) domain.SearchResult
}

// CartFacade serves the stateless cart API.
// Get returns a nil cart when it does not exist.
type CartFacade interface {
	Get(ctx context.Context, cartID string) (*domain.Cart, error)
	Do(ctx context.Context, req domain.CartRequest) (domain.Cart, error)
}
