package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/okian/rinkrank/internal/adapters/repository"
	"github.com/okian/rinkrank/internal/domain/model"
)

// RankingsDependencies defines the read surface for standings queries.
type RankingsDependencies interface {
	TopN(ctx context.Context, year, n int) ([]model.RankingEntry, error)
}

// RankingsHandler handles yearly standings requests.
type RankingsHandler struct {
	deps     RankingsDependencies
	maxLimit int
}

// NewRankingsHandler creates a new standings handler.
func NewRankingsHandler(deps RankingsDependencies, maxLimit int) *RankingsHandler {
	if maxLimit < 1 {
		maxLimit = defaultMaxLimit
	}
	return &RankingsHandler{deps: deps, maxLimit: maxLimit}
}

// HandleGetRankings handles GET /api/rankings?year=YYYY&limit=N
// requests. The year is required; limit defaults to the configured
// maximum. An evaluated year with no ranked teams answers with an
// empty list, an unevaluated one with 404.
func (h *RankingsHandler) HandleGetRankings(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	q := r.URL.Query()

	year, err := strconv.Atoi(q.Get("year"))
	if err != nil || year < 1 {
		writeError(w, http.StatusBadRequest, fmt.Errorf("year %q: %w", q.Get("year"), ErrBadRequest))
		return
	}

	limit := h.maxLimit
	if s := q.Get("limit"); s != "" {
		limit, err = strconv.Atoi(s)
		if err != nil || limit < 1 {
			writeError(w, http.StatusBadRequest, fmt.Errorf("limit %q: %w", s, ErrBadRequest))
			return
		}
		if limit > h.maxLimit {
			writeError(w, http.StatusBadRequest, fmt.Errorf("limit %d exceeds maximum %d: %w", limit, h.maxLimit, ErrBadRequest))
			return
		}
	}

	entries, err := h.deps.TopN(r.Context(), year, limit)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, entries)
	case isNotFound(err):
		writeError(w, http.StatusNotFound, err)
	case errors.Is(err, repository.ErrInvalidLimit):
		writeError(w, http.StatusBadRequest, err)
	default:
		writeError(w, http.StatusInternalServerError, err)
	}
}
