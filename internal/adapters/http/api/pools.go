package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/medalpool/podium/internal/adapters/repository"
)

// PoolsDependencies defines the interface for pool operations.
type PoolsDependencies interface {
	CreatePool(ctx context.Context, name, createdBy string) (repository.Pool, error)
	PoolByCode(ctx context.Context, code string) (repository.Pool, error)
	AddPoolMember(ctx context.Context, code, username, setID string) error
}

// PoolsHandler handles pool requests.
type PoolsHandler struct {
	deps PoolsDependencies
}

// NewPoolsHandler creates a new pools handler.
func NewPoolsHandler(deps PoolsDependencies) *PoolsHandler {
	return &PoolsHandler{deps: deps}
}

// createPoolRequest mirrors the POST /pools body.
type createPoolRequest struct {
	Name      string `json:"name"`
	CreatedBy string `json:"created_by"`
}

// memberRequest mirrors the POST /pools/{code}/members body.
type memberRequest struct {
	Username string `json:"username"`
	SetID    string `json:"set_id"`
}

type poolResponse struct {
	Code    string           `json:"code"`
	Name    string           `json:"name"`
	Members []memberResponse `json:"members"`
}

type memberResponse struct {
	Username string `json:"username"`
	SetID    string `json:"set_id"`
}

// HandleCreatePool handles POST /pools requests.
func (h *PoolsHandler) HandleCreatePool(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req createPoolRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "bad_request", errors.New("missing name"))
		return
	}
	pool, err := h.deps.CreatePool(r.Context(), req.Name, req.CreatedBy)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusCreated, toPoolResponse(pool))
}

// HandlePool handles GET /pools/{code} and POST /pools/{code}/members.
func (h *PoolsHandler) HandlePool(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/pools/")

	if code, ok := strings.CutSuffix(rest, "/members"); ok {
		h.handleAddMember(w, r, code)
		return
	}
	if rest == "" || strings.Contains(rest, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	pool, err := h.deps.PoolByCode(r.Context(), rest)
	if err != nil {
		if isNotFound(err) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, toPoolResponse(pool))
}

func (h *PoolsHandler) handleAddMember(w http.ResponseWriter, r *http.Request, code string) {
	if r.Method != http.MethodPost || code == "" || strings.Contains(code, "/") {
		http.NotFound(w, r)
		return
	}
	var req memberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	if req.Username == "" || req.SetID == "" {
		writeError(w, http.StatusBadRequest, "bad_request", errors.New("missing username or set_id"))
		return
	}
	if err := h.deps.AddPoolMember(r.Context(), code, req.Username, req.SetID); err != nil {
		if isNotFound(err) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"status": "joined"})
}

func toPoolResponse(p repository.Pool) poolResponse {
	out := poolResponse{Code: p.Code, Name: p.Name, Members: []memberResponse{}}
	for _, m := range p.Members {
		out.Members = append(out.Members, memberResponse{Username: m.Username, SetID: m.SetID})
	}
	return out
}
