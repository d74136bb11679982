// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/medalpool/podium/internal/adapters/repository"
	"github.com/medalpool/podium/internal/domain/medals"
	"github.com/medalpool/podium/internal/domain/schedule"
	"github.com/medalpool/podium/internal/domain/scoring"
	"github.com/medalpool/podium/internal/domain/types"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Snapshot read operations.
	MedalTable(ctx context.Context) []medals.TableRow
	Medalists(ctx context.Context) []medals.Medalist

	// Category and standings read operations.
	Categories(ctx context.Context) []schedule.Category
	StandingFor(ctx context.Context, categoryID string) (types.Standing, error)
	RemainingEventsFor(ctx context.Context, categoryID string) ([]schedule.Event, error)

	// Rooting and scoring.
	RootingInfoForSet(ctx context.Context, setID string) ([]types.RootingInfo, error)
	ScorePool(ctx context.Context, poolCode string) ([]types.UserScore, error)
	ScoreDetails(ctx context.Context, setID string) ([]scoring.Detail, error)

	// Authoritative results.
	Results(ctx context.Context) (map[string][]string, error)
	SaveResult(ctx context.Context, categoryID string, winners []string) error
	DeleteResult(ctx context.Context, categoryID string) error

	// Predictions and pools.
	CreatePredictionSet(ctx context.Context, owner, name string) (string, error)
	SavePrediction(ctx context.Context, setID, categoryID, answer string) error
	CreatePool(ctx context.Context, name, createdBy string) (repository.Pool, error)
	PoolByCode(ctx context.Context, code string) (repository.Pool, error)
	AddPoolMember(ctx context.Context, code, username, setID string) error
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler      *HealthHandler
	statsHandler       *StatsHandler
	medalsHandler      *MedalsHandler
	standingsHandler   *StandingsHandler
	rootingHandler     *RootingHandler
	leaderboardHandler *LeaderboardHandler
	resultsHandler     *ResultsHandler
	predictionsHandler *PredictionsHandler
	poolsHandler       *PoolsHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, maxLeaderboardLimit int) *Server {
	return &Server{
		healthHandler:      NewHealthHandler(),
		statsHandler:       NewStatsHandler(statsProvider),
		medalsHandler:      NewMedalsHandler(deps),
		standingsHandler:   NewStandingsHandler(deps),
		rootingHandler:     NewRootingHandler(deps),
		leaderboardHandler: NewLeaderboardHandler(deps, maxLeaderboardLimit),
		resultsHandler:     NewResultsHandler(deps),
		predictionsHandler: NewPredictionsHandler(deps),
		poolsHandler:       NewPoolsHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/medals", MetricsMiddleware(s.medalsHandler.HandleGetMedals, "medals"))
	mux.HandleFunc("/medalists", MetricsMiddleware(s.medalsHandler.HandleGetMedalists, "medalists"))
	mux.HandleFunc("/categories", MetricsMiddleware(s.standingsHandler.HandleGetCategories, "categories"))
	mux.HandleFunc("/standings/", MetricsMiddleware(s.standingsHandler.HandleGetStanding, "standings"))
	mux.HandleFunc("/rooting/", MetricsMiddleware(s.rootingHandler.HandleGetRooting, "rooting"))
	mux.HandleFunc("/leaderboard", MetricsMiddleware(s.leaderboardHandler.HandleGetLeaderboard, "leaderboard"))
	mux.HandleFunc("/results", MetricsMiddleware(s.resultsHandler.HandleResults, "results"))
	mux.HandleFunc("/results/", MetricsMiddleware(s.resultsHandler.HandleResultByID, "results"))
	mux.HandleFunc("/predictions", MetricsMiddleware(s.predictionsHandler.HandleCreateSet, "predictions"))
	mux.HandleFunc("/predictions/", MetricsMiddleware(s.predictionsHandler.HandleSet, "predictions"))
	mux.HandleFunc("/pools", MetricsMiddleware(s.poolsHandler.HandleCreatePool, "pools"))
	mux.HandleFunc("/pools/", MetricsMiddleware(s.poolsHandler.HandlePool, "pools"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// isNotFound translates downstream not-found conditions to 404.
func isNotFound(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, repository.ErrNotFound) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "not found") || strings.Contains(msg, "unknown category")
}

// pathParam extracts the single path segment after prefix, or "".
func pathParam(r *http.Request, prefix string) string {
	p := strings.TrimPrefix(r.URL.Path, prefix)
	if p == "" || strings.Contains(p, "/") {
		return ""
	}
	return p
}
