package domain

import "strings"

// ListingParams is the structured form of the catalog query-string.
type ListingParams struct {
	Sort    SortOption
	Filters FilterOptions
}

// A Listing is a filtered and sorted page of products.
// Facets always describe the unfiltered set.
type Listing struct {
	Products []Product     `json:"products"`
	Facets   Facets        `json:"facets"`
	Count    int           `json:"count"`
	Sort     SortOption    `json:"sort"`
	Filters  FilterOptions `json:"filters"`
}

type CollectionListing struct {
	Collection Collection `json:"collection"`
	Listing
}

type SearchResult struct {
	Query    string `json:"query"`
	Searched bool   `json:"searched"`
	Listing
}

// NormalizeSearchQuery lowercases q and collapses its whitespace.
func NormalizeSearchQuery(q string) string {
	return strings.Join(strings.Fields(strings.ToLower(q)), " ")
}

type Home struct {
	Products    []Product    `json:"products"`
	Collections []Collection `json:"collections"`
}
