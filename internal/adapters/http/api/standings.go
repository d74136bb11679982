package api

import (
	"context"
	"net/http"
	"time"

	"github.com/medalpool/podium/internal/domain/schedule"
	"github.com/medalpool/podium/internal/domain/types"
)

// StandingsDependencies defines the interface for standings operations.
type StandingsDependencies interface {
	Categories(ctx context.Context) []schedule.Category
	StandingFor(ctx context.Context, categoryID string) (types.Standing, error)
	RemainingEventsFor(ctx context.Context, categoryID string) ([]schedule.Event, error)
}

// StandingsHandler handles category and standings requests.
type StandingsHandler struct {
	deps StandingsDependencies
}

// NewStandingsHandler creates a new standings handler.
func NewStandingsHandler(deps StandingsDependencies) *StandingsHandler {
	return &StandingsHandler{deps: deps}
}

type categoryResponse struct {
	ID          string    `json:"id"`
	Sport       string    `json:"sport"`
	DisplayName string    `json:"display_name"`
	Kind        string    `json:"kind"`
	AnswerType  string    `json:"answer_type"`
	EventCount  int       `json:"event_count"`
	FirstEvent  time.Time `json:"first_event"`
	LastEvent   time.Time `json:"last_event"`
}

type standingResponse struct {
	types.Standing
	Remaining []types.RemainingEvent `json:"remaining_events"`
}

// HandleGetCategories handles GET /categories requests.
func (h *StandingsHandler) HandleGetCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	cats := h.deps.Categories(r.Context())
	out := make([]categoryResponse, 0, len(cats))
	for _, c := range cats {
		out = append(out, categoryResponse{
			ID:          c.ID,
			Sport:       c.Sport,
			DisplayName: c.DisplayName,
			Kind:        kindString(c.Kind),
			AnswerType:  answerTypeString(c.AnswerType),
			EventCount:  c.EventCount,
			FirstEvent:  c.FirstEvent,
			LastEvent:   c.LastEvent,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// HandleGetStanding handles GET /standings/{categoryID} requests.
func (h *StandingsHandler) HandleGetStanding(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	categoryID := pathParam(r, "/standings/")
	if categoryID == "" {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	standing, err := h.deps.StandingFor(r.Context(), categoryID)
	if err != nil {
		if isNotFound(err) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	remaining, err := h.deps.RemainingEventsFor(r.Context(), categoryID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}

	resp := standingResponse{Standing: standing, Remaining: []types.RemainingEvent{}}
	for _, ev := range remaining {
		resp.Remaining = append(resp.Remaining, types.RemainingEvent{
			Sport:     ev.Sport,
			Name:      ev.Name,
			GoldMedal: ev.GoldMedal,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func kindString(k schedule.Kind) string {
	switch k {
	case schedule.KindOverall:
		return "overall"
	case schedule.KindFeatured:
		return "featured"
	default:
		return "sport"
	}
}

func answerTypeString(a schedule.AnswerType) string {
	switch a {
	case schedule.AnswerYesNo:
		return "yes_no"
	case schedule.AnswerNumber:
		return "number"
	default:
		return "country"
	}
}
