package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/okian/rinkrank/internal/domain/model"
)

// RankDependencies defines the read surface for single-team lookups.
type RankDependencies interface {
	Rank(ctx context.Context, year int, team string) (model.RankingEntry, error)
}

// RankHandler handles per-team rank requests.
type RankHandler struct {
	deps RankDependencies
}

// NewRankHandler creates a new rank handler.
func NewRankHandler(deps RankDependencies) *RankHandler {
	return &RankHandler{deps: deps}
}

// HandleGetRank handles GET /api/rank/{year}/{team} requests. Team
// codes are matched case-insensitively; a team without an entry for
// the year answers with 404, never a zero-point row.
func (h *RankHandler) HandleGetRank(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	path := strings.TrimPrefix(r.URL.Path, "/api/rank/")
	parts := strings.Split(path, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		writeError(w, http.StatusBadRequest, fmt.Errorf("want /api/rank/{year}/{team}: %w", ErrBadRequest))
		return
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil || year < 1 {
		writeError(w, http.StatusBadRequest, fmt.Errorf("year %q: %w", parts[0], ErrBadRequest))
		return
	}
	team := strings.ToUpper(parts[1])

	entry, err := h.deps.Rank(r.Context(), year, team)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, entry)
	case isNotFound(err):
		writeError(w, http.StatusNotFound, err)
	default:
		writeError(w, http.StatusInternalServerError, err)
	}
}
