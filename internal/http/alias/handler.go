package alias

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pndiaye/xaalis/internal/alias"
)

type Handler struct {
	svc *alias.Service
}

func NewHandler(svc *alias.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.learn)
	r.Get("/suggest", h.suggest)
}

type learnRequest struct {
	Pattern string `json:"pattern"`
	Label   string `json:"label"`
}

func (h *Handler) learn(w http.ResponseWriter, r *http.Request) {
	var req learnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Pattern == "" || req.Label == "" {
		http.Error(w, "pattern and label fields are required", http.StatusBadRequest)
		return
	}

	if err := h.svc.Learn(r.Context(), req.Pattern, req.Label); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

type suggestResponse struct {
	Label string `json:"label"`
}

func (h *Handler) suggest(w http.ResponseWriter, r *http.Request) {
	counterparty := r.URL.Query().Get("counterparty")
	if counterparty == "" {
		http.Error(w, "counterparty parameter is required", http.StatusBadRequest)
		return
	}

	label, err := h.svc.Suggest(r.Context(), counterparty)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(suggestResponse{Label: label}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
