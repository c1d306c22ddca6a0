package httphandler

import (
	"log/slog"
	"net/http"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

// GET v1/search/stats?q=query (200 OK, 400 Bad request, 500)

type SearchStatsHandler struct {
	stats port.SearchStatsReader
}

func RegisterSearchStats(mux *http.ServeMux, stats port.SearchStatsReader) {
	h := SearchStatsHandler{stats}
	mux.HandleFunc("GET /v1/search/stats", h.GetStats)
}

func (h SearchStatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	const op = "SearchStatsHandler.GetStats"
	log := slog.With("op", op)

	query := domain.NormalizeSearchQuery(r.URL.Query().Get("q"))
	if query == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error: "q is required", Field: "q",
		})
		return
	}

	n, err := h.stats.SearchCount(r.Context(), query)
	if err != nil {
		writeFailure(w, log, err, "failed to read search statistics")
		return
	}
	writeJSON(w, http.StatusOK, searchStatsResponse{Query: query, Count: n})
}
