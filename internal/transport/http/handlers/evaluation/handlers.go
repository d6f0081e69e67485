package evaluationhandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"aprendiz/internal/domain/evaluation"
	"aprendiz/internal/transport/http/api"
	"aprendiz/internal/transport/http/middleware"
)

type Handler struct {
	Service *evaluation.Service
}

func NewHandler(service *evaluation.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/evaluations", func(r chi.Router) {
		r.Get("/questionnaire", h.handleActive)
		r.Get("/questionnaires", h.handleRevisions)
		r.Put("/questionnaire", h.handleUpsert)
		r.Post("/{registration}", h.handleSubmit)
		r.Get("/{registration}/history", h.handleHistory)
	})
}

func (h *Handler) handleActive(w http.ResponseWriter, r *http.Request) {
	q, err := h.Service.Active(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "questionnaire_failed", "failed to load active questionnaire", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, q, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleRevisions(w http.ResponseWriter, r *http.Request) {
	revisions, err := h.Service.Store.Revisions(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "questionnaire_failed", "failed to list questionnaire revisions", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, revisions, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpsert(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Questionnaire evaluation.Questionnaire `json:"questionnaire"`
		Active        bool                     `json:"active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	if err := payload.Questionnaire.Validate(); err != nil {
		api.Fail(w, http.StatusBadRequest, "questionnaire_invalid", err.Error(), middleware.GetRequestID(r.Context()))
		return
	}
	if err := h.Service.Store.Upsert(r.Context(), payload.Questionnaire, payload.Active); err != nil {
		api.Fail(w, http.StatusInternalServerError, "questionnaire_failed", "failed to save questionnaire", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, payload.Questionnaire, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Answers evaluation.Answers `json:"answers"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	sub, err := h.Service.Submit(r.Context(), chi.URLParam(r, "registration"), payload.Answers, time.Now())
	switch {
	case errors.Is(err, evaluation.ErrIncomplete):
		api.Fail(w, http.StatusBadRequest, "evaluation_incomplete", err.Error(), middleware.GetRequestID(r.Context()))
		return
	case errors.Is(err, evaluation.ErrApprenticeNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "apprentice not found", middleware.GetRequestID(r.Context()))
		return
	case err != nil:
		api.Fail(w, http.StatusBadRequest, "evaluation_failed", err.Error(), middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, sub, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	history, err := h.Service.History(r.Context(), chi.URLParam(r, "registration"))
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "history_failed", "failed to load evaluation history", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, history, middleware.GetRequestID(r.Context()))
}
