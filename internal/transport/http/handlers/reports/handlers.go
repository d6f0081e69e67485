package reportshandler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"aprendiz/internal/domain/reports"
	"aprendiz/internal/transport/http/api"
	"aprendiz/internal/transport/http/middleware"
)

type Handler struct {
	Service *reports.Service
}

func NewHandler(service *reports.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/reports", func(r chi.Router) {
		r.Get("/apprentices", h.handleApprenticeSummary)
		r.Get("/hr", h.handleEmployeeSummary)
		r.Get("/roster.pdf", h.handleRosterPDF)
	})
}

func (h *Handler) handleApprenticeSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Service.ApprenticeSummary(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "report_failed", "failed to build apprentice summary", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, summary, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleEmployeeSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Service.EmployeeSummary(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "report_failed", "failed to build hr summary", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, summary, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleRosterPDF(w http.ResponseWriter, r *http.Request) {
	records, err := h.Service.Apprentices.List(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "report_failed", "failed to load apprentices", middleware.GetRequestID(r.Context()))
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="aprendizes.pdf"`)
	if err := reports.WriteRosterPDF(w, records, time.Now()); err != nil {
		api.Fail(w, http.StatusInternalServerError, "report_failed", "failed to write pdf", middleware.GetRequestID(r.Context()))
	}
}
