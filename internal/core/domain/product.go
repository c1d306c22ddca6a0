package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type (
	Image struct {
		URL     string `json:"url"`
		AltText string `json:"altText,omitempty"`
		Width   int    `json:"width,omitempty"`
		Height  int    `json:"height,omitempty"`
	}

	ProductOption struct {
		ID     string   `json:"id"`
		Name   string   `json:"name"`
		Values []string `json:"values"`
	}

	SelectedOption struct {
		Name  string `json:"name"`
		Value string `json:"value"`
	}

	Variant struct {
		ID               string           `json:"id"`
		Title            string           `json:"title"`
		AvailableForSale bool             `json:"availableForSale"`
		SelectedOptions  []SelectedOption `json:"selectedOptions"`
		Price            Money            `json:"price"`
		CompareAtPrice   *Money           `json:"compareAtPrice,omitempty"`
		Image            *Image           `json:"image,omitempty"`
	}

	PriceRange struct {
		MinVariantPrice Money `json:"minVariantPrice"`
		MaxVariantPrice Money `json:"maxVariantPrice"`
	}

	SEO struct {
		Title       string `json:"title,omitempty"`
		Description string `json:"description,omitempty"`
	}
)

// A Product is an immutable snapshot of a catalog product
// as returned by the storefront API.
type Product struct {
	ID               string          `json:"id"`
	Handle           string          `json:"handle"`
	Title            string          `json:"title"`
	Description      string          `json:"description"`
	DescriptionHTML  string          `json:"descriptionHtml"`
	AvailableForSale bool            `json:"availableForSale"`
	FeaturedImage    *Image          `json:"featuredImage,omitempty"`
	Images           []Image         `json:"images"`
	Options          []ProductOption `json:"options"`
	PriceRange       PriceRange      `json:"priceRange"`
	Variants         []Variant       `json:"variants"`
	SEO              SEO             `json:"seo"`
	Tags             []string        `json:"tags"`
	Vendor           string          `json:"vendor"`
	ProductType      string          `json:"productType"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

// MinPrice returns the minimum variant price amount.
func (p Product) MinPrice() decimal.Decimal {
	return p.PriceRange.MinVariantPrice.Amount
}

func (p Product) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// A Collection is a curated group of products with an embedded first page of them.
type Collection struct {
	ID          string    `json:"id"`
	Handle      string    `json:"handle"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Image       *Image    `json:"image,omitempty"`
	Products    []Product `json:"products,omitempty"`
}
