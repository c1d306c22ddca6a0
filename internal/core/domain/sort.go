package domain

import (
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type SortOption string

const (
	SortFeatured    SortOption = "featured"
	SortPriceAsc    SortOption = "price-asc"
	SortPriceDesc   SortOption = "price-desc"
	SortTitleAsc    SortOption = "title-asc"
	SortTitleDesc   SortOption = "title-desc"
	SortCreatedDesc SortOption = "created-desc"
	SortCreatedAsc  SortOption = "created-asc"
)

type SortConfig struct {
	Value SortOption `json:"value"`
	Label string     `json:"label"`
}

// SortOptions lists every option in display order.
var SortOptions = []SortConfig{
	{Value: SortFeatured, Label: "Featured"},
	{Value: SortPriceAsc, Label: "Price: Low to High"},
	{Value: SortPriceDesc, Label: "Price: High to Low"},
	{Value: SortTitleAsc, Label: "Name: A to Z"},
	{Value: SortTitleDesc, Label: "Name: Z to A"},
	{Value: SortCreatedDesc, Label: "Newest"},
	{Value: SortCreatedAsc, Label: "Oldest"},
}

func (o SortOption) Valid() bool {
	for _, c := range SortOptions {
		if c.Value == o {
			return true
		}
	}
	return false
}

// ParseSortOption never fails: unknown values fall back to featured.
func ParseSortOption(s string) SortOption {
	o := SortOption(s)
	if !o.Valid() {
		return SortFeatured
	}
	return o
}

// SortProducts returns a new, stably ordered slice. The input is not modified.
func SortProducts(ps []Product, o SortOption) []Product {
	out := slices.Clone(ps)

	var cmp func(a, b Product) int
	switch o {
	case SortPriceAsc:
		cmp = func(a, b Product) int { return a.MinPrice().Cmp(b.MinPrice()) }
	case SortPriceDesc:
		cmp = func(a, b Product) int { return b.MinPrice().Cmp(a.MinPrice()) }
	case SortTitleAsc:
		c := collate.New(language.English)
		cmp = func(a, b Product) int { return c.CompareString(a.Title, b.Title) }
	case SortTitleDesc:
		c := collate.New(language.English)
		cmp = func(a, b Product) int { return c.CompareString(b.Title, a.Title) }
	case SortCreatedDesc:
		cmp = func(a, b Product) int { return b.CreatedAt.Compare(a.CreatedAt) }
	case SortCreatedAsc:
		cmp = func(a, b Product) int { return a.CreatedAt.Compare(b.CreatedAt) }
	default:
		return out
	}

	slices.SortStableFunc(out, cmp)
	return out
}
