package domain_test

import (
	"slices"
	"testing"
	"time"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestParseSortOption(t *testing.T) {
	assert.Equal(t, domain.SortPriceDesc, domain.ParseSortOption("price-desc"))
	assert.Equal(t, domain.SortFeatured, domain.ParseSortOption(""))
	assert.Equal(t, domain.SortFeatured, domain.ParseSortOption("best-selling"))
}

func TestSortProducts(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2025, 3, d, 0, 0, 0, 0, time.UTC) }

	cheap := newProduct("cheap", "A", "", "5", true)
	cheap.Title = "banana"
	cheap.CreatedAt = day(2)

	mid := newProduct("mid", "A", "", "12.5", true)
	mid.Title = "Apple"
	mid.CreatedAt = day(3)

	pricey := newProduct("pricey", "A", "", "100", true)
	pricey.Title = "Éclair"
	pricey.CreatedAt = day(1)

	input := []domain.Product{mid, pricey, cheap}

	t.Run("FeaturedKeepsOrder", func(t *testing.T) {
		got := domain.SortProducts(input, domain.SortFeatured)
		assert.Equal(t, handles(input), handles(got))
	})

	t.Run("Price", func(t *testing.T) {
		asc := domain.SortProducts(input, domain.SortPriceAsc)
		assert.Equal(t, []string{"cheap", "mid", "pricey"}, handles(asc))

		desc := domain.SortProducts(asc, domain.SortPriceDesc)
		reversed := handles(asc)
		slices.Reverse(reversed)
		assert.Equal(t, reversed, handles(desc))
	})

	t.Run("TitleIsLocaleAware", func(t *testing.T) {
		asc := domain.SortProducts(input, domain.SortTitleAsc)
		assert.Equal(t, []string{"mid", "cheap", "pricey"}, handles(asc))

		desc := domain.SortProducts(input, domain.SortTitleDesc)
		assert.Equal(t, []string{"pricey", "cheap", "mid"}, handles(desc))
	})

	t.Run("Created", func(t *testing.T) {
		newest := domain.SortProducts(input, domain.SortCreatedDesc)
		assert.Equal(t, []string{"mid", "cheap", "pricey"}, handles(newest))

		oldest := domain.SortProducts(input, domain.SortCreatedAsc)
		assert.Equal(t, []string{"pricey", "cheap", "mid"}, handles(oldest))
	})

	t.Run("TiesAreStable", func(t *testing.T) {
		a := newProduct("a", "", "", "10", true)
		b := newProduct("b", "", "", "10", true)
		c := newProduct("c", "", "", "1", true)
		got := domain.SortProducts([]domain.Product{a, b, c}, domain.SortPriceDesc)
		assert.Equal(t, []string{"a", "b", "c"}, handles(got))
	})

	t.Run("InputNotModified", func(t *testing.T) {
		before := handles(input)
		domain.SortProducts(input, domain.SortPriceAsc)
		assert.Equal(t, before, handles(input))
	})
}
