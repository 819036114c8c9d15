package export

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pndiaye/xaalis/internal/engine"
	"github.com/pndiaye/xaalis/internal/export"
	"github.com/pndiaye/xaalis/internal/record"
)

type Handler struct {
	svc *export.Service
}

func NewHandler(svc *export.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.exportCSV)
}

func (h *Handler) exportCSV(w http.ResponseWriter, r *http.Request) {
	filter := record.ListFilter{}

	if s := r.URL.Query().Get("provider"); s != "" {
		filter.Provider = new(engine.Provider(s))
	}

	if s := r.URL.Query().Get("start_date"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.StartDate = new(t)
		}
	}

	if s := r.URL.Query().Get("end_date"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.EndDate = new(t)
		}
	}

	filename := fmt.Sprintf("xaalis-%s.csv", time.Now().Format("2006-01-02"))

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := h.svc.WriteCSV(r.Context(), w, filter); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}
