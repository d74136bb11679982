package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
)

// ResultsDependencies defines the interface for authoritative results.
type ResultsDependencies interface {
	Results(ctx context.Context) (map[string][]string, error)
	SaveResult(ctx context.Context, categoryID string, winners []string) error
	DeleteResult(ctx context.Context, categoryID string) error
}

// ResultsHandler handles authoritative result requests.
type ResultsHandler struct {
	deps ResultsDependencies
}

// NewResultsHandler creates a new results handler.
func NewResultsHandler(deps ResultsDependencies) *ResultsHandler {
	return &ResultsHandler{deps: deps}
}

// resultRequest mirrors the POST /results body.
type resultRequest struct {
	CategoryID string   `json:"category_id"`
	Winners    []string `json:"winners"`
}

func (rr resultRequest) validate() error {
	if rr.CategoryID == "" {
		return errors.New("missing category_id")
	}
	if len(rr.Winners) == 0 {
		return errors.New("missing winners")
	}
	return nil
}

// HandleResults handles GET /results and POST /results requests.
func (h *ResultsHandler) HandleResults(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		results, err := h.deps.Results(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal_error", err)
			return
		}
		writeJSON(w, http.StatusOK, results)
	case http.MethodPost:
		var req resultRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", err)
			return
		}
		if err := req.validate(); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", err)
			return
		}
		if err := h.deps.SaveResult(r.Context(), req.CategoryID, req.Winners); err != nil {
			if isNotFound(err) {
				writeError(w, http.StatusNotFound, "not_found", err)
				return
			}
			writeError(w, http.StatusInternalServerError, "internal_error", err)
			return
		}
		writeJSON(w, http.StatusCreated, map[string]string{"status": "saved"})
	default:
		http.NotFound(w, r)
	}
}

// HandleResultByID handles DELETE /results/{categoryID} requests.
func (h *ResultsHandler) HandleResultByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		http.NotFound(w, r)
		return
	}
	categoryID := pathParam(r, "/results/")
	if categoryID == "" {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	if err := h.deps.DeleteResult(r.Context(), categoryID); err != nil {
		if isNotFound(err) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "retracted"})
}
