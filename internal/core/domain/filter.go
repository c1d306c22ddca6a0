package domain

import (
	"fmt"
	"slices"

	"github.com/shopspring/decimal"
)

// A StockFilter narrows products by availability.
type StockFilter int

const (
	StockAny StockFilter = iota
	StockInStockOnly
	StockOutOfStockOnly
)

func (s StockFilter) String() string {
	switch s {
	case StockInStockOnly:
		return "in_stock"
	case StockOutOfStockOnly:
		return "out_of_stock"
	default:
		return "any"
	}
}

func (s StockFilter) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *StockFilter) UnmarshalText(text []byte) error {
	switch string(text) {
	case "", "any":
		*s = StockAny
	case "in_stock":
		*s = StockInStockOnly
	case "out_of_stock":
		*s = StockOutOfStockOnly
	default:
		return fmt.Errorf("unknown stock filter %q", text)
	}
	return nil
}

// A PriceFilter bounds the minimum variant price. Nil bounds are absent.
type PriceFilter struct {
	Min *decimal.Decimal `json:"min,omitempty"`
	Max *decimal.Decimal `json:"max,omitempty"`
}

func (f PriceFilter) IsZero() bool {
	return f.Min == nil && f.Max == nil
}

// FilterOptions are conjunctive across facets.
// Within Tags a product matches when it carries any of them.
type FilterOptions struct {
	Price        PriceFilter `json:"priceRange"`
	Vendors      []string    `json:"vendors,omitempty"`
	ProductTypes []string    `json:"productTypes,omitempty"`
	Tags         []string    `json:"tags,omitempty"`
	Stock        StockFilter `json:"stock"`
}

type FacetPriceRange struct {
	Min decimal.Decimal `json:"min"`
	Max decimal.Decimal `json:"max"`
}

// Facets are the distinct filterable values present in a product list.
type Facets struct {
	Vendors      []string        `json:"vendors"`
	ProductTypes []string        `json:"productTypes"`
	Tags         []string        `json:"tags"`
	PriceRange   FacetPriceRange `json:"priceRange"`
}

// ExtractFacets collects sorted unique vendors, product types and tags
// and the bounds of the minimum variant prices. An empty list yields 0..0.
func ExtractFacets(ps []Product) Facets {
	vendors := make(map[string]struct{})
	types := make(map[string]struct{})
	tags := make(map[string]struct{})

	var minPrice, maxPrice decimal.Decimal
	for i, p := range ps {
		if p.Vendor != "" {
			vendors[p.Vendor] = struct{}{}
		}
		if p.ProductType != "" {
			types[p.ProductType] = struct{}{}
		}
		for _, t := range p.Tags {
			tags[t] = struct{}{}
		}

		price := p.MinPrice()
		if i == 0 {
			minPrice, maxPrice = price, price
			continue
		}
		minPrice = decimal.Min(minPrice, price)
		maxPrice = decimal.Max(maxPrice, price)
	}

	return Facets{
		Vendors:      sortedKeys(vendors),
		ProductTypes: sortedKeys(types),
		Tags:         sortedKeys(tags),
		PriceRange:   FacetPriceRange{Min: minPrice, Max: maxPrice},
	}
}

// ApplyFilters returns the products passing every filter, in input order.
func ApplyFilters(ps []Product, f FilterOptions) []Product {
	out := make([]Product, 0, len(ps))
	for _, p := range ps {
		if f.match(p) {
			out = append(out, p)
		}
	}
	return out
}

func (f FilterOptions) match(p Product) bool {
	price := p.MinPrice()
	if f.Price.Min != nil && price.LessThan(*f.Price.Min) {
		return false
	}
	if f.Price.Max != nil && price.GreaterThan(*f.Price.Max) {
		return false
	}

	if len(f.Vendors) > 0 && !containsValue(f.Vendors, p.Vendor) {
		return false
	}

	if len(f.ProductTypes) > 0 && !containsValue(f.ProductTypes, p.ProductType) {
		return false
	}

	if len(f.Tags) > 0 && !slices.ContainsFunc(f.Tags, p.HasTag) {
		return false
	}

	switch f.Stock {
	case StockInStockOnly:
		return p.AvailableForSale
	case StockOutOfStockOnly:
		return !p.AvailableForSale
	}
	return true
}

// containsValue never matches an absent (empty) value.
func containsValue(set []string, v string) bool {
	return v != "" && slices.Contains(set, v)
}

func sortedKeys(m map[string]struct{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
