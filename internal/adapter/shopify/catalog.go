package shopify

import (
	"context"
	"fmt"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

const (
	TagProducts    = "products"
	TagCollections = "collections"
)

func ProductTag(handle string) string {
	return "product-" + handle
}

func CollectionTag(handle string) string {
	return "collection-" + handle
}

var _ port.CatalogReader = (*Catalog)(nil)

// Catalog reads products and collections. Reads are cacheable and
// tagged by entity, search is never cached.
type Catalog struct {
	client *Client
}

func NewCatalog(client *Client) *Catalog {
	return &Catalog{client}
}

func (c *Catalog) Products(ctx context.Context, first int) ([]domain.Product, error) {
	const op = "Catalog.Products"

	var data struct {
		Products connection[productNode] `json:"products"`
	}
	err := c.client.Execute(
		ctx, productsQuery, map[string]any{"first": first},
		CacheLongLived, []string{TagProducts}, &data,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return productsToDomain(data.Products), nil
}

func (c *Catalog) ProductByHandle(ctx context.Context, handle string) (domain.Product, error) {
	const op = "Catalog.ProductByHandle"

	var data struct {
		Product *productNode `json:"product"`
	}
	err := c.client.Execute(
		ctx, productByHandleQuery, map[string]any{"handle": handle},
		CacheLongLived, []string{TagProducts, ProductTag(handle)}, &data,
	)
	if err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}
	if data.Product == nil {
		return domain.Product{}, fmt.Errorf("%s: product %q: %w", op, handle, domain.ErrNotFound)
	}
	return data.Product.toDomain(), nil
}

func (c *Catalog) Collections(ctx context.Context, first int) ([]domain.Collection, error) {
	const op = "Catalog.Collections"

	var data struct {
		Collections connection[collectionNode] `json:"collections"`
	}
	err := c.client.Execute(
		ctx, collectionsQuery, map[string]any{"first": first},
		CacheLongLived, []string{TagCollections}, &data,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	nodes := data.Collections.nodes()
	out := make([]domain.Collection, len(nodes))
	for i, n := range nodes {
		out[i] = n.toDomain()
	}
	return out, nil
}

func (c *Catalog) CollectionByHandle(
	ctx context.Context, handle string, first int,
) (domain.Collection, error) {
	const op = "Catalog.CollectionByHandle"

	var data struct {
		Collection *collectionNode `json:"collection"`
	}
	err := c.client.Execute(
		ctx, collectionByHandleQuery,
		map[string]any{"handle": handle, "first": first},
		CacheLongLived, []string{TagCollections, CollectionTag(handle)}, &data,
	)
	if err != nil {
		return domain.Collection{}, fmt.Errorf("%s: %w", op, err)
	}
	if data.Collection == nil {
		return domain.Collection{}, fmt.Errorf(
			"%s: collection %q: %w", op, handle, domain.ErrNotFound,
		)
	}
	return data.Collection.toDomain(), nil
}

func (c *Catalog) SearchProducts(
	ctx context.Context, query string, first int,
) ([]domain.Product, error) {
	const op = "Catalog.SearchProducts"

	var data struct {
		Search connection[productNode] `json:"search"`
	}
	err := c.client.Execute(
		ctx, searchProductsQuery, map[string]any{"query": query, "first": first},
		NoCache, nil, &data,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return productsToDomain(data.Search), nil
}
