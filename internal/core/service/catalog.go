package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

const (
	HomeProductsFirst       = 8
	HomeCollectionsFirst    = 4
	ListingProductsFirst    = 50
	CollectionsFirst        = 20
	CollectionProductsFirst = 100
	SearchProductsFirst     = 50
)

var _ port.CatalogService = Catalog{}

// Catalog runs the fetch, filter and sort pipeline over catalog reads.
type Catalog struct {
	reader port.CatalogReader
	events port.EventsProducer
}

func NewCatalog(reader port.CatalogReader, events port.EventsProducer) Catalog {
	return Catalog{reader, events}
}

func (c Catalog) Home(ctx context.Context) (domain.Home, error) {
	const op = "Catalog.Home"

	products, err := c.reader.Products(ctx, HomeProductsFirst)
	if err != nil {
		return domain.Home{}, fmt.Errorf("%s: %w", op, err)
	}

	collections, err := c.reader.Collections(ctx, HomeCollectionsFirst)
	if err != nil {
		return domain.Home{}, fmt.Errorf("%s: %w", op, err)
	}

	return domain.Home{Products: products, Collections: collections}, nil
}

func (c Catalog) ListProducts(
	ctx context.Context, params domain.ListingParams,
) (domain.Listing, error) {
	const op = "Catalog.ListProducts"

	products, err := c.reader.Products(ctx, ListingProductsFirst)
	if err != nil {
		return domain.Listing{}, fmt.Errorf("%s: %w", op, err)
	}
	return buildListing(products, params), nil
}

func (c Catalog) Product(ctx context.Context, handle string) (domain.Product, error) {
	const op = "Catalog.Product"

	p, err := c.reader.ProductByHandle(ctx, handle)
	if err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

func (c Catalog) Collections(ctx context.Context) ([]domain.Collection, error) {
	const op = "Catalog.Collections"

	cs, err := c.reader.Collections(ctx, CollectionsFirst)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return cs, nil
}

func (c Catalog) CollectionListing(
	ctx context.Context, handle string, params domain.ListingParams,
) (domain.CollectionListing, error) {
	const op = "Catalog.CollectionListing"

	col, err := c.reader.CollectionByHandle(ctx, handle, CollectionProductsFirst)
	if err != nil {
		return domain.CollectionListing{}, fmt.Errorf("%s: %w", op, err)
	}

	listing := buildListing(col.Products, params)
	col.Products = nil
	return domain.CollectionListing{Collection: col, Listing: listing}, nil
}

// Search never fails: upstream errors degrade to an empty result.
// A blank query is not sent upstream.
func (c Catalog) Search(
	ctx context.Context, query string, params domain.ListingParams,
) domain.SearchResult {
	const op = "Catalog.Search"
	log := slog.With("op", op)

	query = strings.TrimSpace(query)
	res := domain.SearchResult{Query: query}
	if query == "" {
		res.Listing = buildListing(nil, params)
		return res
	}
	res.Searched = true

	products, err := c.reader.SearchProducts(ctx, query, SearchProductsFirst)
	if err != nil {
		log.Warn("search failed, showing no results", "query", query, "err", err)
		products = nil
	}
	res.Listing = buildListing(products, params)

	event := domain.StorefrontEvent{
		Kind:        domain.EventSearch,
		SessionID:   domain.SessionID(ctx),
		Query:       query,
		ResultCount: res.Count,
		OccurredAt:  time.Now(),
	}
	if err := c.events.ProduceEvents(ctx, []domain.StorefrontEvent{event}); err != nil {
		log.Error("failed to produce search event", "err", err)
	}
	return res
}

func buildListing(products []domain.Product, params domain.ListingParams) domain.Listing {
	filtered := domain.ApplyFilters(products, params.Filters)
	return domain.Listing{
		Products: domain.SortProducts(filtered, params.Sort),
		Facets:   domain.ExtractFacets(products),
		Count:    len(filtered),
		Sort:     params.Sort,
		Filters:  params.Filters,
	}
}
