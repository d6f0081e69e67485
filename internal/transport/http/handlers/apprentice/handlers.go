package apprenticehandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"aprendiz/internal/domain/apprentice"
	"aprendiz/internal/domain/normalize"
	"aprendiz/internal/transport/http/api"
	"aprendiz/internal/transport/http/middleware"
)

type Handler struct {
	Service *apprentice.Service
}

func NewHandler(service *apprentice.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/apprentices", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleSave)
		r.Get("/board", h.handleBoard)
		r.Get("/{registration}", h.handleGet)
		r.Delete("/{registration}", h.handleDelete)
		r.Post("/{registration}/status", h.handleSetStatus)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	records, err := h.Service.List(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "apprentice_list_failed", "failed to list apprentices", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, records, middleware.GetRequestID(r.Context()))
}

// handleSave accepts a raw spreadsheet-shaped row (any of the known header
// variants) and runs it through the normalizer before persisting.
func (h *Handler) handleSave(w http.ResponseWriter, r *http.Request) {
	var row normalize.Row
	if err := json.NewDecoder(r.Body).Decode(&row); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	record, err := h.Service.Save(r.Context(), normalize.Apprentice(row))
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "apprentice_save_failed", err.Error(), middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, record, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleBoard(w http.ResponseWriter, r *http.Request) {
	records, err := h.Service.List(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "apprentice_list_failed", "failed to list apprentices", middleware.GetRequestID(r.Context()))
		return
	}

	board := map[string][]apprentice.Apprentice{
		apprentice.StatusNotEvaluated: {},
		apprentice.StatusDismiss:      {},
		apprentice.StatusRecover:      {},
		apprentice.StatusFit:          {},
	}
	for _, record := range records {
		board[record.Status] = append(board[record.Status], record)
	}
	api.Success(w, board, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	record, err := h.Service.ByRegistration(r.Context(), chi.URLParam(r, "registration"))
	if errors.Is(err, apprentice.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "apprentice not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "apprentice_get_failed", "failed to load apprentice", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, record, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	err := h.Service.Delete(r.Context(), chi.URLParam(r, "registration"))
	if errors.Is(err, apprentice.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "apprentice not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "apprentice_delete_failed", "failed to delete apprentice", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleSetStatus(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	status := normalize.Status(payload.Status)
	err := h.Service.SetStatus(r.Context(), chi.URLParam(r, "registration"), status)
	if errors.Is(err, apprentice.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "apprentice not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "status_invalid", err.Error(), middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"matricula": chi.URLParam(r, "registration"), "status": status}, middleware.GetRequestID(r.Context()))
}
