// Package urlquery maps catalog query strings to listing parameters and back.
package urlquery

import (
	"net/url"
	"strings"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/shopspring/decimal"
)

const (
	ParamQuery    = "q"
	ParamSort     = "sort"
	ParamMinPrice = "min_price"
	ParamMaxPrice = "max_price"
	ParamVendors  = "vendors"
	ParamTypes    = "types"
	ParamTags     = "tags"
	ParamInStock  = "in_stock"
)

// Decode never fails. Unknown sort values fall back to featured,
// unparsable price bounds stay absent and empty list segments are dropped.
func Decode(v url.Values) domain.ListingParams {
	var p domain.ListingParams
	p.Sort = domain.ParseSortOption(v.Get(ParamSort))

	p.Filters.Price.Min = parseDecimal(v.Get(ParamMinPrice))
	p.Filters.Price.Max = parseDecimal(v.Get(ParamMaxPrice))

	p.Filters.Vendors = splitList(v.Get(ParamVendors))
	p.Filters.ProductTypes = splitList(v.Get(ParamTypes))
	p.Filters.Tags = splitList(v.Get(ParamTags))

	switch inStock := v.Get(ParamInStock); {
	case inStock == "":
		p.Filters.Stock = domain.StockAny
	case inStock == "true":
		p.Filters.Stock = domain.StockInStockOnly
	default:
		p.Filters.Stock = domain.StockOutOfStockOnly
	}
	return p
}

// Encode omits featured sort, empty lists and absent bounds.
func Encode(p domain.ListingParams) url.Values {
	v := make(url.Values)

	if p.Sort != domain.SortFeatured && p.Sort.Valid() {
		v.Set(ParamSort, string(p.Sort))
	}

	if p.Filters.Price.Min != nil {
		v.Set(ParamMinPrice, p.Filters.Price.Min.String())
	}
	if p.Filters.Price.Max != nil {
		v.Set(ParamMaxPrice, p.Filters.Price.Max.String())
	}

	setList(v, ParamVendors, p.Filters.Vendors)
	setList(v, ParamTypes, p.Filters.ProductTypes)
	setList(v, ParamTags, p.Filters.Tags)

	switch p.Filters.Stock {
	case domain.StockInStockOnly:
		v.Set(ParamInStock, "true")
	case domain.StockOutOfStockOnly:
		v.Set(ParamInStock, "false")
	}
	return v
}

// EncodeString is Encode rendered as a query string without the leading '?'.
func EncodeString(p domain.ListingParams) string {
	return Encode(p).Encode()
}

func parseDecimal(s string) *decimal.Decimal {
	if s == "" {
		return nil
	}
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	return &d
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}

	var out []string
	for _, part := range strings.Split(s, ",") {
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func setList(v url.Values, key string, list []string) {
	var kept []string
	for _, item := range list {
		if item != "" {
			kept = append(kept, item)
		}
	}
	if len(kept) > 0 {
		v.Set(key, strings.Join(kept, ","))
	}
}
