package recognitionhandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"aprendiz/internal/domain/recognition"
	"aprendiz/internal/platform/metrics"
	"aprendiz/internal/transport/http/api"
	"aprendiz/internal/transport/http/middleware"
)

type Handler struct {
	Service   *recognition.Service
	Collector *metrics.Collector
}

func NewHandler(service *recognition.Service, collector *metrics.Collector) *Handler {
	return &Handler{Service: service, Collector: collector}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/recognition", func(r chi.Router) {
		r.Post("/enroll", h.handleEnroll)
		r.Get("/enrollments", h.handleEnrollments)
		r.Post("/identify", h.handleIdentify)
		r.Post("/identify-image", h.handleIdentifyImage)
		r.Post("/badge/register", h.handleRegisterBadge)
		r.Post("/badge/identify", h.handleIdentifyBadge)
	})
}

type enrollRequest struct {
	Registration string    `json:"matricula"`
	Name         string    `json:"nome"`
	Embedding    []float32 `json:"embedding"`
}

func (h *Handler) handleEnroll(w http.ResponseWriter, r *http.Request) {
	var payload enrollRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	err := h.Service.Enroll(r.Context(), payload.Registration, payload.Name, payload.Embedding)
	if errors.Is(err, recognition.ErrBadEmbedding) {
		api.Fail(w, http.StatusBadRequest, "bad_embedding", err.Error(), middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "enroll_failed", err.Error(), middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, map[string]string{"matricula": payload.Registration}, middleware.GetRequestID(r.Context()))
}

// handleEnrollments lists who has a face on file. Embeddings themselves
// never leave the store through this endpoint.
func (h *Handler) handleEnrollments(w http.ResponseWriter, r *http.Request) {
	registrations, err := h.Service.Registrations(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "enrollments_failed", "failed to list enrollments", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, registrations, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleIdentify(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Embedding []float32 `json:"embedding"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	result, err := h.Service.IdentifyEmbedding(r.Context(), payload.Embedding)
	if errors.Is(err, recognition.ErrBadEmbedding) {
		api.Fail(w, http.StatusBadRequest, "bad_embedding", err.Error(), middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "identify_failed", "failed to run identification", middleware.GetRequestID(r.Context()))
		return
	}
	h.countMiss(result)
	api.Success(w, result, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleIdentifyImage(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Image string `json:"image"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	result, err := h.Service.IdentifyImage(r.Context(), payload.Image)
	if err != nil {
		api.Fail(w, http.StatusBadGateway, "cloud_identify_failed", err.Error(), middleware.GetRequestID(r.Context()))
		return
	}
	h.countMiss(result)
	api.Success(w, result, middleware.GetRequestID(r.Context()))
}

type badgeRequest struct {
	UID          string `json:"uid"`
	Registration string `json:"matricula"`
	Name         string `json:"nome"`
}

func (h *Handler) handleRegisterBadge(w http.ResponseWriter, r *http.Request) {
	var payload badgeRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	if err := h.Service.RegisterBadge(r.Context(), payload.UID, payload.Registration, payload.Name); err != nil {
		api.Fail(w, http.StatusBadRequest, "badge_register_failed", err.Error(), middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, map[string]string{"uid": payload.UID, "matricula": payload.Registration}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleIdentifyBadge(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		UID string `json:"uid"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	result, err := h.Service.IdentifyBadge(r.Context(), payload.UID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "badge_identify_failed", "failed to look up badge", middleware.GetRequestID(r.Context()))
		return
	}
	h.countMiss(result)
	api.Success(w, result, middleware.GetRequestID(r.Context()))
}

func (h *Handler) countMiss(result recognition.MatchResult) {
	if h.Collector != nil && !result.Matched {
		h.Collector.RecordNotRecognized()
	}
}
