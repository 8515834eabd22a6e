// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/okian/rinkrank/internal/adapters/repository"
	"github.com/okian/rinkrank/internal/domain/model"
)

// Dependencies required by the HTTP handlers. An interface bundle keeps
// the handler layer loosely coupled to the service wiring behind it.
type Dependencies interface {
	TopN(ctx context.Context, year, n int) ([]model.RankingEntry, error)
	Rank(ctx context.Context, year int, team string) (model.RankingEntry, error)
	Years(ctx context.Context) []int
	Teams(ctx context.Context) []model.Team
	Superevents(ctx context.Context, year int) []model.ScoredSuperevent
	Problems(ctx context.Context) []model.Problem
}

const defaultMaxLimit = 100

// Server wires HTTP routes for the ranking API.
type Server struct {
	rankingsHandler *RankingsHandler
	rankHandler     *RankHandler
	metadataHandler *MetadataHandler
	statsHandler    *StatsHandler
	healthHandler   *HealthHandler
}

// NewServer creates an API server with all handlers attached to deps.
func NewServer(deps Dependencies, stats StatsProvider, opts ...Option) *Server {
	cfg := serverConfig{maxLimit: defaultMaxLimit}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Server{
		rankingsHandler: NewRankingsHandler(deps, cfg.maxLimit),
		rankHandler:     NewRankHandler(deps),
		metadataHandler: NewMetadataHandler(deps),
		statsHandler:    NewStatsHandler(stats),
		healthHandler:   NewHealthHandler(),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/api/rankings", MetricsMiddleware(s.rankingsHandler.HandleGetRankings, "rankings"))
	mux.HandleFunc("/api/rank/", MetricsMiddleware(s.rankHandler.HandleGetRank, "rank"))
	mux.HandleFunc("/api/years", MetricsMiddleware(s.metadataHandler.HandleGetYears, "years"))
	mux.HandleFunc("/api/teams", MetricsMiddleware(s.metadataHandler.HandleGetTeams, "teams"))
	mux.HandleFunc("/api/superevents", MetricsMiddleware(s.metadataHandler.HandleGetSuperevents, "superevents"))
	mux.HandleFunc("/api/problems", MetricsMiddleware(s.metadataHandler.HandleGetProblems, "problems"))
	mux.HandleFunc("/api/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
}

type serverConfig struct {
	maxLimit int
}

// Option configures the Server.
type Option func(*serverConfig)

// WithMaxLimit caps the limit parameter of standings queries.
func WithMaxLimit(n int) Option {
	return func(c *serverConfig) {
		if n > 0 {
			c.maxLimit = n
		}
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Error: msg})
}

// isNotFound reports whether err means the requested year or team has
// no entry, as opposed to the query itself failing.
func isNotFound(err error) bool {
	return errors.Is(err, repository.ErrUnknownYear) ||
		errors.Is(err, repository.ErrNotRanked)
}
