package httphandler

import (
	"github.com/niksmo/storefront/internal/core/domain"
)

type (
	listingResponse struct {
		domain.Listing
		CanonicalQuery string `json:"canonicalQuery"`
	}

	collectionListingResponse struct {
		domain.CollectionListing
		CanonicalQuery string `json:"canonicalQuery"`
	}

	searchResponse struct {
		domain.SearchResult
		CanonicalQuery string `json:"canonicalQuery"`
	}

	optionValueView struct {
		Value     string `json:"value"`
		Available bool   `json:"available"`
		Selected  bool   `json:"selected"`
	}

	optionView struct {
		Name   string            `json:"name"`
		Values []optionValueView `json:"values"`
	}

	priceView struct {
		Price          string `json:"price"`
		CompareAtPrice string `json:"compareAtPrice,omitempty"`
	}

	productView struct {
		Product         domain.Product   `json:"product"`
		Selection       domain.Selection `json:"selection"`
		SelectedVariant *domain.Variant  `json:"selectedVariant"`
		HasSelector     bool             `json:"hasSelector"`
		Options         []optionView     `json:"options"`
		Display         *priceView       `json:"display,omitempty"`
	}
)

// newProductView resolves the shopper's option choice. Options absent
// from chosen fall back to the default selection.
func newProductView(p domain.Product, chosen map[string]string) productView {
	s := p.DefaultSelection()
	for _, o := range p.Options {
		if v, ok := chosen[o.Name]; ok && v != "" {
			s[o.Name] = v
		}
	}

	view := productView{
		Product:     p,
		Selection:   s,
		HasSelector: p.HasSelector(),
		Options:     make([]optionView, 0, len(p.Options)),
	}

	for _, o := range p.Options {
		ov := optionView{Name: o.Name, Values: make([]optionValueView, 0, len(o.Values))}
		for _, v := range o.Values {
			ov.Values = append(ov.Values, optionValueView{
				Value:     v,
				Available: p.OptionAvailable(o.Name, v, s),
				Selected:  s[o.Name] == v,
			})
		}
		view.Options = append(view.Options, ov)
	}

	if v, ok := p.ResolveVariant(s); ok {
		view.SelectedVariant = &v
		display := priceView{Price: domain.FormatPrice(v.Price)}
		if v.CompareAtPrice != nil {
			display.CompareAtPrice = domain.FormatPrice(*v.CompareAtPrice)
		}
		view.Display = &display
	}
	return view
}

type (
	cartResponse struct {
		Cart *domain.Cart `json:"cart"`
	}

	sessionCartResponse struct {
		Cart         *domain.Cart `json:"cart"`
		CartID       string       `json:"cartId"`
		IsLoading    bool         `json:"isLoading"`
		IsMutating   bool         `json:"isMutating"`
		IsDrawerOpen bool         `json:"isDrawerOpen"`
	}

	addItemRequest struct {
		VariantID string `json:"variantId"`
		Quantity  *int   `json:"quantity"`
	}

	updateItemRequest struct {
		Quantity *int `json:"quantity"`
	}

	searchStatsResponse struct {
		Query string `json:"query"`
		Count int64  `json:"count"`
	}
)
