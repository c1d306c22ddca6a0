package domain_test

import (
	"testing"
	"time"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProduct(handle, vendor, typ string, price string, available bool, tags ...string) domain.Product {
	amount := decimal.RequireFromString(price)
	return domain.Product{
		ID:               "gid://shopify/Product/" + handle,
		Handle:           handle,
		Title:            handle,
		AvailableForSale: available,
		Vendor:           vendor,
		ProductType:      typ,
		Tags:             tags,
		PriceRange: domain.PriceRange{
			MinVariantPrice: domain.Money{Amount: amount, CurrencyCode: "USD"},
			MaxVariantPrice: domain.Money{Amount: amount, CurrencyCode: "USD"},
		},
		CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func handles(ps []domain.Product) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.Handle
	}
	return out
}

func decimalPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestApplyFilters(t *testing.T) {
	products := []domain.Product{
		newProduct("a", "A", "Shirt", "10", true, "x"),
		newProduct("b", "B", "Hat", "20", false, "y"),
		newProduct("c", "", "", "0", true),
	}

	t.Run("EmptyFiltersKeepInput", func(t *testing.T) {
		got := domain.ApplyFilters(products, domain.FilterOptions{})
		assert.Equal(t, products, got)
	})

	t.Run("VendorAndMaxPrice", func(t *testing.T) {
		got := domain.ApplyFilters(products[:2], domain.FilterOptions{
			Vendors: []string{"A"},
			Price:   domain.PriceFilter{Max: decimalPtr("15")},
		})
		assert.Equal(t, []string{"a"}, handles(got))
	})

	t.Run("TagsAreDisjunctive", func(t *testing.T) {
		got := domain.ApplyFilters(products[:2], domain.FilterOptions{
			Tags: []string{"x", "y"},
		})
		assert.Equal(t, []string{"a", "b"}, handles(got))
	})

	t.Run("AbsentVendorNeverMatches", func(t *testing.T) {
		got := domain.ApplyFilters(products, domain.FilterOptions{
			Vendors: []string{"A", ""},
		})
		assert.Equal(t, []string{"a"}, handles(got))
	})

	t.Run("ProductType", func(t *testing.T) {
		got := domain.ApplyFilters(products, domain.FilterOptions{
			ProductTypes: []string{"Hat"},
		})
		assert.Equal(t, []string{"b"}, handles(got))
	})

	t.Run("ZeroMinPriceIsHonored", func(t *testing.T) {
		got := domain.ApplyFilters(products, domain.FilterOptions{
			Price: domain.PriceFilter{Min: decimalPtr("0"), Max: decimalPtr("0")},
		})
		assert.Equal(t, []string{"c"}, handles(got))
	})

	t.Run("MinPriceInclusive", func(t *testing.T) {
		got := domain.ApplyFilters(products, domain.FilterOptions{
			Price: domain.PriceFilter{Min: decimalPtr("10.00")},
		})
		assert.Equal(t, []string{"a", "b"}, handles(got))
	})

	t.Run("Stock", func(t *testing.T) {
		for _, p := range products {
			got := domain.ApplyFilters([]domain.Product{p}, domain.FilterOptions{
				Stock: domain.StockInStockOnly,
			})
			assert.Equal(t, !p.AvailableForSale, len(got) == 0, p.Handle)
		}

		got := domain.ApplyFilters(products, domain.FilterOptions{
			Stock: domain.StockOutOfStockOnly,
		})
		assert.Equal(t, []string{"b"}, handles(got))
	})

	t.Run("InputNotModified", func(t *testing.T) {
		before := handles(products)
		domain.ApplyFilters(products, domain.FilterOptions{Vendors: []string{"B"}})
		assert.Equal(t, before, handles(products))
	})
}

func TestExtractFacets(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		f := domain.ExtractFacets(nil)
		assert.Empty(t, f.Vendors)
		assert.Empty(t, f.ProductTypes)
		assert.Empty(t, f.Tags)
		assert.True(t, f.PriceRange.Min.IsZero())
		assert.True(t, f.PriceRange.Max.IsZero())
	})

	t.Run("SortedUnique", func(t *testing.T) {
		f := domain.ExtractFacets([]domain.Product{
			newProduct("a", "Zeta", "Shirt", "15.50", true, "summer", "cotton"),
			newProduct("b", "Alpha", "Hat", "7.25", true, "cotton"),
			newProduct("c", "Zeta", "", "99", false, "sale"),
		})
		assert.Equal(t, []string{"Alpha", "Zeta"}, f.Vendors)
		assert.Equal(t, []string{"Hat", "Shirt"}, f.ProductTypes)
		assert.Equal(t, []string{"cotton", "sale", "summer"}, f.Tags)
		assert.True(t, decimal.RequireFromString("7.25").Equal(f.PriceRange.Min))
		assert.True(t, decimal.RequireFromString("99").Equal(f.PriceRange.Max))
	})
}

func TestStockFilterText(t *testing.T) {
	for _, s := range []domain.StockFilter{
		domain.StockAny, domain.StockInStockOnly, domain.StockOutOfStockOnly,
	} {
		text, err := s.MarshalText()
		require.NoError(t, err)

		var got domain.StockFilter
		require.NoError(t, got.UnmarshalText(text))
		assert.Equal(t, s, got)
	}

	var s domain.StockFilter
	assert.Error(t, s.UnmarshalText([]byte("maybe")))
}
