package employeehandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"aprendiz/internal/domain/employee"
	"aprendiz/internal/transport/http/api"
	"aprendiz/internal/transport/http/middleware"
	"aprendiz/internal/transport/http/shared"
)

type Handler struct {
	Service *employee.Service
}

func NewHandler(service *employee.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/employees", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleSave)
		r.Get("/{registration}", h.handleGet)
		r.Put("/{registration}", h.handleUpdate)
		r.Delete("/{registration}", h.handleDelete)
	})
	r.Route("/payroll/components", func(r chi.Router) {
		r.Get("/", h.handleComponents)
		r.Post("/", h.handleAddComponent)
		r.Delete("/{kind}/{name}", h.handleRemoveComponent)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	employees, err := h.Service.List(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "employee_list_failed", "failed to list employees", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, employees, middleware.GetRequestID(r.Context()))
}

type employeeRequest struct {
	Registration    string   `json:"matricula"`
	Name            string   `json:"nome"`
	Sector          string   `json:"setor"`
	Company         string   `json:"empresa"`
	BaseSalary      float64  `json:"salario"`
	Additions       []string `json:"adicionais"`
	Discounts       []string `json:"descontos"`
	AdmissionDate   string   `json:"admissao"`
	TerminationDate string   `json:"demissao"`
}

func (req employeeRequest) toEmployee(v *shared.Validator) employee.Employee {
	v.Required("matricula", req.Registration, "matricula is required")
	v.Required("nome", req.Name, "nome is required")
	if req.BaseSalary < 0 {
		v.Add("salario", "must not be negative")
	}

	emp := employee.Employee{
		Registration: req.Registration,
		Name:         req.Name,
		Sector:       req.Sector,
		Company:      req.Company,
		BaseSalary:   req.BaseSalary,
		Additions:    req.Additions,
		Discounts:    req.Discounts,
	}
	if req.AdmissionDate != "" {
		if parsed, ok := v.Date("admissao", req.AdmissionDate); ok {
			emp.AdmissionDate = parsed
		}
	}
	if req.TerminationDate != "" {
		if parsed, ok := v.Date("demissao", req.TerminationDate); ok {
			emp.TerminationDate = parsed
		}
	}
	v.DateOrder("admissao", emp.AdmissionDate, "demissao", emp.TerminationDate)
	return emp
}

func (h *Handler) handleSave(w http.ResponseWriter, r *http.Request) {
	var payload employeeRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	emp := payload.toEmployee(v)
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	saved, err := h.Service.Save(r.Context(), emp)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "employee_save_failed", err.Error(), middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, saved, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	emp, err := h.Service.ByRegistration(r.Context(), chi.URLParam(r, "registration"))
	if errors.Is(err, employee.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "employee_get_failed", "failed to load employee", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, emp, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var payload employeeRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	payload.Registration = chi.URLParam(r, "registration")

	v := shared.NewValidator()
	emp := payload.toEmployee(v)
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	err := h.Service.Update(r.Context(), emp)
	if errors.Is(err, employee.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "employee_update_failed", err.Error(), middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"matricula": emp.Registration, "status": "updated"}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	err := h.Service.Delete(r.Context(), chi.URLParam(r, "registration"))
	if errors.Is(err, employee.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "employee_delete_failed", "failed to delete employee", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleComponents(w http.ResponseWriter, r *http.Request) {
	components, err := h.Service.Components(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "components_failed", "failed to list pay components", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, components, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleAddComponent(w http.ResponseWriter, r *http.Request) {
	var component employee.PayComponent
	if err := json.NewDecoder(r.Body).Decode(&component); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	if err := h.Service.AddComponent(r.Context(), component); err != nil {
		api.Fail(w, http.StatusBadRequest, "component_add_failed", err.Error(), middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, component, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleRemoveComponent(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.RemoveComponent(r.Context(), chi.URLParam(r, "kind"), chi.URLParam(r, "name")); err != nil {
		api.Fail(w, http.StatusInternalServerError, "component_remove_failed", "failed to remove pay component", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"status": "removed"}, middleware.GetRequestID(r.Context()))
}
