package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/medalpool/podium/internal/domain/scoring"
)

// PredictionsDependencies defines the interface for prediction operations.
type PredictionsDependencies interface {
	CreatePredictionSet(ctx context.Context, owner, name string) (string, error)
	SavePrediction(ctx context.Context, setID, categoryID, answer string) error
	ScoreDetails(ctx context.Context, setID string) ([]scoring.Detail, error)
}

// PredictionsHandler handles prediction set requests.
type PredictionsHandler struct {
	deps PredictionsDependencies
}

// NewPredictionsHandler creates a new predictions handler.
func NewPredictionsHandler(deps PredictionsDependencies) *PredictionsHandler {
	return &PredictionsHandler{deps: deps}
}

// createSetRequest mirrors the POST /predictions body.
type createSetRequest struct {
	Owner string `json:"owner"`
	Name  string `json:"name"`
}

// predictionRequest mirrors the POST /predictions/{setID} body.
type predictionRequest struct {
	CategoryID string `json:"category_id"`
	Answer     string `json:"answer"`
}

// HandleCreateSet handles POST /predictions requests.
func (h *PredictionsHandler) HandleCreateSet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req createSetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	if req.Owner == "" {
		writeError(w, http.StatusBadRequest, "bad_request", errors.New("missing owner"))
		return
	}
	setID, err := h.deps.CreatePredictionSet(r.Context(), req.Owner, req.Name)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"set_id": setID})
}

// HandleSet handles POST /predictions/{setID} (record a prediction) and
// GET /predictions/{setID} (per-category score breakdown) requests.
func (h *PredictionsHandler) HandleSet(w http.ResponseWriter, r *http.Request) {
	setID := pathParam(r, "/predictions/")
	if setID == "" {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}

	switch r.Method {
	case http.MethodPost:
		var req predictionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", err)
			return
		}
		if req.CategoryID == "" || req.Answer == "" {
			writeError(w, http.StatusBadRequest, "bad_request", errors.New("missing category_id or answer"))
			return
		}
		if err := h.deps.SavePrediction(r.Context(), setID, req.CategoryID, req.Answer); err != nil {
			if isNotFound(err) {
				writeError(w, http.StatusNotFound, "not_found", err)
				return
			}
			writeError(w, http.StatusInternalServerError, "internal_error", err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "saved"})
	case http.MethodGet:
		details, err := h.deps.ScoreDetails(r.Context(), setID)
		if err != nil {
			if isNotFound(err) {
				writeError(w, http.StatusNotFound, "not_found", err)
				return
			}
			writeError(w, http.StatusInternalServerError, "internal_error", err)
			return
		}
		if details == nil {
			details = []scoring.Detail{}
		}
		writeJSON(w, http.StatusOK, details)
	default:
		http.NotFound(w, r)
	}
}
