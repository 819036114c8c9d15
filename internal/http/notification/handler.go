package notification

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pndiaye/xaalis/internal/engine"
	"github.com/pndiaye/xaalis/internal/importer"
	"github.com/pndiaye/xaalis/internal/record"
)

type Handler struct {
	records   *record.Service
	importSvc *importer.Service
}

func NewHandler(records *record.Service, importSvc *importer.Service) *Handler {
	return &Handler{records: records, importSvc: importSvc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.ingest)
	r.Post("/import", h.importBackup)
}

type ingestRequest struct {
	SenderID   string    `json:"sender_id"`
	Title      string    `json:"title"`
	Body       string    `json:"body"`
	ReceivedAt time.Time `json:"received_at"`
}

type ingestResponse struct {
	ID        uuid.UUID `json:"id"`
	Duplicate bool      `json:"duplicate"`
}

func (h *Handler) ingest(w http.ResponseWriter, r *http.Request) {
	var req ingestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Body == "" {
		http.Error(w, "body field is required", http.StatusBadRequest)
		return
	}

	if req.ReceivedAt.IsZero() {
		req.ReceivedAt = time.Now()
	}

	result, err := h.records.Ingest(r.Context(), engine.RawNotification{
		SenderID:   req.SenderID,
		Title:      req.Title,
		Body:       req.Body,
		ReceivedAt: req.ReceivedAt,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	status := http.StatusCreated
	if result.Duplicate {
		status = http.StatusOK
	}

	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(ingestResponse{
		ID:        result.Record.ID,
		Duplicate: result.Duplicate,
	}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type importResponse struct {
	Imported   int `json:"imported"`
	Duplicates int `json:"duplicates"`
}

func (h *Handler) importBackup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	format := importer.Format(r.FormValue("format"))
	if format == "" {
		format = importer.FormatCSV
	}

	notifs, err := h.importSvc.Import(format, file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.records.IngestBatch(r.Context(), notifs)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(importResponse{
		Imported:   len(result.Created),
		Duplicates: result.Duplicates,
	}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
