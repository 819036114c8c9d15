package repair

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pndiaye/xaalis/internal/record"
)

type Handler struct {
	svc *record.Service
}

func NewHandler(svc *record.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.repair)
}

type repairResponse struct {
	Scanned int `json:"scanned"`
	Updated int `json:"updated"`
}

func (h *Handler) repair(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.Repair(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(repairResponse{
		Scanned: result.Scanned,
		Updated: result.Updated,
	}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
