package attendancehandler

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"aprendiz/internal/domain/attendance"
	"aprendiz/internal/domain/reports"
	"aprendiz/internal/platform/metrics"
	"aprendiz/internal/transport/http/api"
	"aprendiz/internal/transport/http/middleware"
	"aprendiz/internal/transport/http/shared"
	"aprendiz/internal/transport/ws"
)

type Handler struct {
	Store     *attendance.Store
	Hub       *ws.Hub
	Collector *metrics.Collector
}

func NewHandler(store *attendance.Store, hub *ws.Hub, collector *metrics.Collector) *Handler {
	return &Handler{Store: store, Hub: hub, Collector: collector}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/attendance", func(r chi.Router) {
		r.Post("/clock", h.handleClock)
		r.Get("/logs", h.handleLogs)
		r.Get("/export.csv", h.handleExportCSV)
		r.Get("/export.pdf", h.handleExportPDF)
		r.Get("/findings", h.handleFindings)
	})
}

type clockRequest struct {
	Registration string `json:"matricula"`
	Name         string `json:"nome"`
	Sector       string `json:"setor"`
}

func (h *Handler) handleClock(w http.ResponseWriter, r *http.Request) {
	var payload clockRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	payload.Registration = strings.TrimSpace(payload.Registration)
	if payload.Registration == "" {
		api.Fail(w, http.StatusBadRequest, "registration_required", "matricula is required", middleware.GetRequestID(r.Context()))
		return
	}

	entry, err := h.Store.Append(r.Context(), payload.Registration, payload.Name, payload.Sector, time.Now())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "clock_failed", "failed to register clock event", middleware.GetRequestID(r.Context()))
		return
	}

	if h.Collector != nil {
		h.Collector.RecordClockEvent()
	}
	if h.Hub != nil {
		h.Hub.Broadcast(entry)
	}
	api.Created(w, entry, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleLogs(w http.ResponseWriter, r *http.Request) {
	entries, err := h.list(r)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "logs_failed", "failed to list attendance logs", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, entries, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	entries, err := h.list(r)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "export_failed", "failed to export attendance logs", middleware.GetRequestID(r.Context()))
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="ponto.csv"`)
	if err := attendance.WriteCSV(w, entries); err != nil {
		api.Fail(w, http.StatusInternalServerError, "export_failed", "failed to write csv", middleware.GetRequestID(r.Context()))
	}
}

func (h *Handler) handleExportPDF(w http.ResponseWriter, r *http.Request) {
	entries, err := h.list(r)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "export_failed", "failed to export attendance logs", middleware.GetRequestID(r.Context()))
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="ponto.pdf"`)
	if err := reports.WriteAttendancePDF(w, entries, r.URL.Query().Get("from"), r.URL.Query().Get("to")); err != nil {
		api.Fail(w, http.StatusInternalServerError, "export_failed", "failed to write pdf", middleware.GetRequestID(r.Context()))
	}
}

func (h *Handler) handleFindings(w http.ResponseWriter, r *http.Request) {
	page := shared.ParsePagination(r, 100, 500)
	findings, err := h.Store.Findings(r.Context(), page.Limit)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "findings_failed", "failed to list attendance findings", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, findings, middleware.GetRequestID(r.Context()))
}

func (h *Handler) list(r *http.Request) ([]attendance.LogEntry, error) {
	query := r.URL.Query()
	return h.Store.List(r.Context(), query.Get("from"), query.Get("to"), query.Get("matricula"))
}
