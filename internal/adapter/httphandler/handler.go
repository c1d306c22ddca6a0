package httphandler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/niksmo/storefront/internal/adapter/urlquery"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

// GET /healthz (200 OK)
// GET v1/home, v1/products, v1/products/{handle}, v1/collections,
// v1/collections/{handle}, v1/search?q=, v1/sort-options
// POST v1/revalidate?tag= (200 OK, 400 Bad request)

func RegisterHealth(mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
}

type CatalogHandler struct {
	catalog     port.CatalogService
	revalidator port.CacheRevalidator
}

func RegisterCatalog(
	mux *http.ServeMux,
	catalog port.CatalogService,
	revalidator port.CacheRevalidator,
) {
	h := CatalogHandler{catalog, revalidator}
	mux.HandleFunc("GET /v1/home", h.GetHome)
	mux.HandleFunc("GET /v1/products", h.GetProducts)
	mux.HandleFunc("GET /v1/products/{handle}", h.GetProduct)
	mux.HandleFunc("GET /v1/collections", h.GetCollections)
	mux.HandleFunc("GET /v1/collections/{handle}", h.GetCollection)
	mux.HandleFunc("GET /v1/search", h.GetSearch)
	mux.HandleFunc("GET /v1/sort-options", h.GetSortOptions)
	mux.HandleFunc("POST /v1/revalidate", h.PostRevalidate)
}

func (h CatalogHandler) GetHome(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.GetHome"
	log := slog.With("op", op)

	home, err := h.catalog.Home(r.Context())
	if err != nil {
		writeFailure(w, log, err, "failed to load home page")
		return
	}
	writeJSON(w, http.StatusOK, home)
}

func (h CatalogHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.GetProducts"
	log := slog.With("op", op)

	params := urlquery.Decode(r.URL.Query())
	listing, err := h.catalog.ListProducts(r.Context(), params)
	if err != nil {
		writeFailure(w, log, err, "failed to load products")
		return
	}
	writeJSON(w, http.StatusOK, listingResponse{
		Listing:        listing,
		CanonicalQuery: urlquery.EncodeString(params),
	})
}

func (h CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.GetProduct"
	log := slog.With("op", op)

	product, err := h.catalog.Product(r.Context(), r.PathValue("handle"))
	if err != nil {
		writeFailure(w, log, err, "failed to load product")
		return
	}

	query := r.URL.Query()
	chosen := make(map[string]string, len(product.Options))
	for _, o := range product.Options {
		v := query.Get(o.Name)
		if v == "" {
			v = query.Get(strings.ToLower(o.Name))
		}
		chosen[o.Name] = v
	}
	writeJSON(w, http.StatusOK, newProductView(product, chosen))
}

func (h CatalogHandler) GetCollections(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.GetCollections"
	log := slog.With("op", op)

	cols, err := h.catalog.Collections(r.Context())
	if err != nil {
		writeFailure(w, log, err, "failed to load collections")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"collections": cols})
}

func (h CatalogHandler) GetCollection(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.GetCollection"
	log := slog.With("op", op)

	params := urlquery.Decode(r.URL.Query())
	listing, err := h.catalog.CollectionListing(
		r.Context(), r.PathValue("handle"), params,
	)
	if err != nil {
		writeFailure(w, log, err, "failed to load collection")
		return
	}
	writeJSON(w, http.StatusOK, collectionListingResponse{
		CollectionListing: listing,
		CanonicalQuery:    urlquery.EncodeString(params),
	})
}

// GetSearch never fails: an unreachable API yields an empty result.
func (h CatalogHandler) GetSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	params := urlquery.Decode(query)
	result := h.catalog.Search(r.Context(), query.Get(urlquery.ParamQuery), params)

	canonical := urlquery.Encode(params)
	if result.Searched {
		canonical.Set(urlquery.ParamQuery, result.Query)
	}
	writeJSON(w, http.StatusOK, searchResponse{
		SearchResult:   result,
		CanonicalQuery: canonical.Encode(),
	})
}

func (h CatalogHandler) GetSortOptions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"default": domain.SortFeatured,
		"options": domain.SortOptions,
	})
}

func (h CatalogHandler) PostRevalidate(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.PostRevalidate"
	log := slog.With("op", op)

	tag := strings.TrimSpace(r.URL.Query().Get("tag"))
	if tag == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error: "tag is required", Field: "tag",
		})
		return
	}

	n := h.revalidator.Revalidate(tag)
	log.Info("revalidated", "tag", tag, "nEntries", n)
	writeJSON(w, http.StatusOK, map[string]any{
		"revalidated": true, "tag": tag, "entries": n,
	})
}
