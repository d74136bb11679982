package api

import (
	"context"
	"net/http"

	"github.com/medalpool/podium/internal/domain/types"
)

// RootingDependencies defines the interface for rooting operations.
type RootingDependencies interface {
	RootingInfoForSet(ctx context.Context, setID string) ([]types.RootingInfo, error)
}

// RootingHandler handles rooting info requests.
type RootingHandler struct {
	deps RootingDependencies
}

// NewRootingHandler creates a new rooting handler.
func NewRootingHandler(deps RootingDependencies) *RootingHandler {
	return &RootingHandler{deps: deps}
}

// HandleGetRooting handles GET /rooting/{setID} requests.
func (h *RootingHandler) HandleGetRooting(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	setID := pathParam(r, "/rooting/")
	if setID == "" {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	infos, err := h.deps.RootingInfoForSet(r.Context(), setID)
	if err != nil {
		if isNotFound(err) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	if infos == nil {
		infos = []types.RootingInfo{}
	}
	writeJSON(w, http.StatusOK, infos)
}
