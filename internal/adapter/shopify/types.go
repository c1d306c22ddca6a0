package shopify

import (
	"time"

	"github.com/niksmo/storefront/internal/core/domain"
)

type connection[T any] struct {
	Edges []struct {
		Node T `json:"node"`
	} `json:"edges"`
}

func (c connection[T]) nodes() []T {
	out := make([]T, len(c.Edges))
	for i, e := range c.Edges {
		out[i] = e.Node
	}
	return out
}

type seoNode struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

type productNode struct {
	ID               string                     `json:"id"`
	Handle           string                     `json:"handle"`
	Title            string                     `json:"title"`
	Description      string                     `json:"description"`
	DescriptionHTML  string                     `json:"descriptionHtml"`
	AvailableForSale bool                       `json:"availableForSale"`
	FeaturedImage    *domain.Image              `json:"featuredImage"`
	Images           connection[domain.Image]   `json:"images"`
	Options          []domain.ProductOption     `json:"options"`
	PriceRange       domain.PriceRange          `json:"priceRange"`
	Variants         connection[domain.Variant] `json:"variants"`
	SEO              seoNode                    `json:"seo"`
	Tags             []string                   `json:"tags"`
	Vendor           string                     `json:"vendor"`
	ProductType      string                     `json:"productType"`
	CreatedAt        time.Time                  `json:"createdAt"`
	UpdatedAt        time.Time                  `json:"updatedAt"`
}

func (n productNode) toDomain() domain.Product {
	p := domain.Product{
		ID:               n.ID,
		Handle:           n.Handle,
		Title:            n.Title,
		Description:      n.Description,
		DescriptionHTML:  n.DescriptionHTML,
		AvailableForSale: n.AvailableForSale,
		FeaturedImage:    n.FeaturedImage,
		Images:           n.Images.nodes(),
		Options:          n.Options,
		PriceRange:       n.PriceRange,
		Variants:         n.Variants.nodes(),
		Tags:             n.Tags,
		Vendor:           n.Vendor,
		ProductType:      n.ProductType,
		CreatedAt:        n.CreatedAt,
		UpdatedAt:        n.UpdatedAt,
	}
	if n.SEO.Title != nil {
		p.SEO.Title = *n.SEO.Title
	}
	if n.SEO.Description != nil {
		p.SEO.Description = *n.SEO.Description
	}
	return p
}

// productsToDomain skips nodes of other types returned by mixed connections.
func productsToDomain(c connection[productNode]) []domain.Product {
	out := make([]domain.Product, 0, len(c.Edges))
	for _, n := range c.nodes() {
		if n.ID == "" {
			continue
		}
		out = append(out, n.toDomain())
	}
	return out
}

type collectionNode struct {
	ID          string                  `json:"id"`
	Handle      string                  `json:"handle"`
	Title       string                  `json:"title"`
	Description string                  `json:"description"`
	Image       *domain.Image           `json:"image"`
	Products    connection[productNode] `json:"products"`
}

func (n collectionNode) toDomain() domain.Collection {
	c := domain.Collection{
		ID:          n.ID,
		Handle:      n.Handle,
		Title:       n.Title,
		Description: n.Description,
		Image:       n.Image,
	}
	if len(n.Products.Edges) > 0 {
		c.Products = productsToDomain(n.Products)
	}
	return c
}

type cartNode struct {
	ID            string                      `json:"id"`
	CheckoutURL   string                      `json:"checkoutUrl"`
	TotalQuantity int                         `json:"totalQuantity"`
	Cost          domain.CartCost             `json:"cost"`
	Lines         connection[domain.CartLine] `json:"lines"`
}

func (n cartNode) toDomain() domain.Cart {
	return domain.Cart{
		ID:            n.ID,
		CheckoutURL:   n.CheckoutURL,
		TotalQuantity: n.TotalQuantity,
		Cost:          n.Cost,
		Lines:         n.Lines.nodes(),
	}
}

type cartPayload struct {
	Cart       *cartNode   `json:"cart"`
	UserErrors []UserError `json:"userErrors"`
}
