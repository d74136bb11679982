package api

import (
	"context"
	"net/http"

	"github.com/medalpool/podium/internal/domain/medals"
)

// MedalsDependencies defines the interface for medal table reads.
type MedalsDependencies interface {
	MedalTable(ctx context.Context) []medals.TableRow
	Medalists(ctx context.Context) []medals.Medalist
}

// MedalsHandler handles medal table and medalist requests.
type MedalsHandler struct {
	deps MedalsDependencies
}

// NewMedalsHandler creates a new medals handler.
func NewMedalsHandler(deps MedalsDependencies) *MedalsHandler {
	return &MedalsHandler{deps: deps}
}

// HandleGetMedals handles GET /medals requests. An empty table means no
// upstream data yet, which is served as an empty list, not an error.
func (h *MedalsHandler) HandleGetMedals(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	table := h.deps.MedalTable(r.Context())
	if table == nil {
		table = []medals.TableRow{}
	}
	writeJSON(w, http.StatusOK, table)
}

// HandleGetMedalists handles GET /medalists requests.
func (h *MedalsHandler) HandleGetMedalists(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	medalists := h.deps.Medalists(r.Context())
	if medalists == nil {
		medalists = []medals.Medalist{}
	}
	writeJSON(w, http.StatusOK, medalists)
}
