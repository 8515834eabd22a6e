package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/okian/rinkrank/internal/domain/model"
)

// MetadataDependencies defines the read surface for series metadata:
// the evaluated years, the team registry, the scored superevents and
// the problem report of the last run.
type MetadataDependencies interface {
	Years(ctx context.Context) []int
	Teams(ctx context.Context) []model.Team
	Superevents(ctx context.Context, year int) []model.ScoredSuperevent
	Problems(ctx context.Context) []model.Problem
}

// MetadataHandler handles the read-only metadata endpoints.
type MetadataHandler struct {
	deps MetadataDependencies
}

// NewMetadataHandler creates a new metadata handler.
func NewMetadataHandler(deps MetadataDependencies) *MetadataHandler {
	return &MetadataHandler{deps: deps}
}

// HandleGetYears handles GET /api/years requests.
func (h *MetadataHandler) HandleGetYears(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	years := h.deps.Years(r.Context())
	if years == nil {
		years = []int{}
	}
	writeJSON(w, http.StatusOK, years)
}

// HandleGetTeams handles GET /api/teams requests.
func (h *MetadataHandler) HandleGetTeams(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	teams := h.deps.Teams(r.Context())
	if teams == nil {
		teams = []model.Team{}
	}
	writeJSON(w, http.StatusOK, teams)
}

// HandleGetSuperevents handles GET /api/superevents?year=YYYY requests.
// Without a year it returns the whole scored record.
func (h *MetadataHandler) HandleGetSuperevents(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	year := 0
	if s := r.URL.Query().Get("year"); s != "" {
		var err error
		year, err = strconv.Atoi(s)
		if err != nil || year < 1 {
			writeError(w, http.StatusBadRequest, fmt.Errorf("year %q: %w", s, ErrBadRequest))
			return
		}
	}
	sups := h.deps.Superevents(r.Context(), year)
	if sups == nil {
		sups = []model.ScoredSuperevent{}
	}
	writeJSON(w, http.StatusOK, sups)
}

// HandleGetProblems handles GET /api/problems requests.
func (h *MetadataHandler) HandleGetProblems(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	problems := h.deps.Problems(r.Context())
	if problems == nil {
		problems = []model.Problem{}
	}
	writeJSON(w, http.StatusOK, problems)
}
