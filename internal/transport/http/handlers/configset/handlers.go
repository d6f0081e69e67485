package configsethandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"aprendiz/internal/domain/configset"
	"aprendiz/internal/transport/http/api"
	"aprendiz/internal/transport/http/middleware"
)

type Handler struct {
	Store *configset.Store
}

func NewHandler(store *configset.Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/config/{list}", func(r chi.Router) {
		r.Get("/", h.handleItems)
		r.Post("/", h.handleAdd)
		r.Put("/", h.handleReplace)
		r.Delete("/{name}", h.handleRemove)
	})
}

func (h *Handler) handleItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.Store.Items(r.Context(), chi.URLParam(r, "list"))
	if errors.Is(err, configset.ErrUnknownList) {
		api.Fail(w, http.StatusNotFound, "unknown_list", err.Error(), middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "config_failed", "failed to list configuration items", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, items, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleAdd(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	err := h.Store.Add(r.Context(), chi.URLParam(r, "list"), payload.Name)
	switch {
	case errors.Is(err, configset.ErrUnknownList):
		api.Fail(w, http.StatusNotFound, "unknown_list", err.Error(), middleware.GetRequestID(r.Context()))
		return
	case errors.Is(err, configset.ErrDuplicate):
		api.Fail(w, http.StatusConflict, "duplicate_name", err.Error(), middleware.GetRequestID(r.Context()))
		return
	case errors.Is(err, configset.ErrEmptyName):
		api.Fail(w, http.StatusBadRequest, "empty_name", err.Error(), middleware.GetRequestID(r.Context()))
		return
	case err != nil:
		api.Fail(w, http.StatusInternalServerError, "config_failed", "failed to add configuration item", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, map[string]string{"name": payload.Name}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleReplace(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Names []string `json:"names"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	err := h.Store.Replace(r.Context(), chi.URLParam(r, "list"), payload.Names)
	if errors.Is(err, configset.ErrUnknownList) {
		api.Fail(w, http.StatusNotFound, "unknown_list", err.Error(), middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "config_failed", "failed to replace configuration list", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, payload.Names, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleRemove(w http.ResponseWriter, r *http.Request) {
	err := h.Store.Remove(r.Context(), chi.URLParam(r, "list"), chi.URLParam(r, "name"))
	if errors.Is(err, configset.ErrUnknownList) {
		api.Fail(w, http.StatusNotFound, "unknown_list", err.Error(), middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "config_failed", "failed to remove configuration item", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"status": "removed"}, middleware.GetRequestID(r.Context()))
}
