package webhookhandler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"aprendiz/internal/domain/apprentice"
	"aprendiz/internal/domain/attendance"
	"aprendiz/internal/domain/configset"
	"aprendiz/internal/domain/employee"
	"aprendiz/internal/domain/evaluation"
	"aprendiz/internal/domain/normalize"
	"aprendiz/internal/domain/recognition"
	"aprendiz/internal/platform/metrics"
	"aprendiz/internal/transport/ws"
)

// Handler keeps the original SPA working unchanged: it speaks the old
// webhook dialect (GET ?action=name, POST {action, data}) and answers with
// the bare {success, ...} objects the client already parses.
type Handler struct {
	Apprentices *apprentice.Service
	Evaluations *evaluation.Service
	Employees   *employee.Service
	Attendance  *attendance.Store
	Recognition *recognition.Service
	Configs     *configset.Store
	Hub         *ws.Hub
	Collector   *metrics.Collector
}

type request struct {
	Action string          `json:"action"`
	Data   json.RawMessage `json:"data"`
}

func (h *Handler) HandleExec(w http.ResponseWriter, r *http.Request) {
	var req request
	switch r.Method {
	case http.MethodGet:
		req.Action = r.URL.Query().Get("action")
	case http.MethodPost:
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, map[string]any{"success": false, "error": "invalid payload"})
			return
		}
	default:
		http.NotFound(w, r)
		return
	}

	result, err := h.dispatch(r.Context(), req)
	if err != nil {
		slog.Warn("webhook action failed", "action", req.Action, "err", err)
		writeJSON(w, map[string]any{"success": false, "error": err.Error()})
		return
	}
	writeJSON(w, result)
}

func (h *Handler) dispatch(ctx context.Context, req request) (map[string]any, error) {
	switch req.Action {
	case "getApprentices":
		records, err := h.Apprentices.List(ctx)
		if err != nil {
			return nil, err
		}
		return map[string]any{"success": true, "aprendizes": records}, nil

	case "addApprentice":
		var row normalize.Row
		if err := json.Unmarshal(req.Data, &row); err != nil {
			return nil, err
		}
		record, err := h.Apprentices.Save(ctx, normalize.Apprentice(row))
		if err != nil {
			return nil, err
		}
		return map[string]any{"success": true, "aprendiz": record}, nil

	case "saveEvaluation":
		var data struct {
			Registration string             `json:"matricula"`
			Answers      evaluation.Answers `json:"respostas"`
		}
		if err := json.Unmarshal(req.Data, &data); err != nil {
			return nil, err
		}
		sub, err := h.Evaluations.Submit(ctx, data.Registration, data.Answers, time.Now())
		if err != nil {
			return nil, err
		}
		return map[string]any{"success": true, "nota": sub.Score, "ciclo": sub.CycleFinished}, nil

	case "getEmployees":
		employees, err := h.Employees.List(ctx)
		if err != nil {
			return nil, err
		}
		return map[string]any{"success": true, "funcionarios": employees}, nil

	case "addEmployee", "updateEmployee":
		var emp employee.Employee
		if err := json.Unmarshal(req.Data, &emp); err != nil {
			return nil, err
		}
		saved, err := h.Employees.Save(ctx, emp)
		if err != nil {
			return nil, err
		}
		return map[string]any{"success": true, "funcionario": saved}, nil

	case "deleteEmployee":
		var data struct {
			Registration string `json:"matricula"`
		}
		if err := json.Unmarshal(req.Data, &data); err != nil {
			return nil, err
		}
		if err := h.Employees.Delete(ctx, data.Registration); err != nil {
			return nil, err
		}
		return map[string]any{"success": true}, nil

	case "getRHConfigs":
		return h.rhConfigs(ctx)

	case "saveRHConfigs":
		return h.saveRHConfigs(ctx, req.Data)

	case "registerClockIn":
		var data struct {
			Registration string `json:"matricula"`
			Name         string `json:"nome"`
			Sector       string `json:"setor"`
		}
		if err := json.Unmarshal(req.Data, &data); err != nil {
			return nil, err
		}
		if data.Registration == "" {
			return nil, errors.New("matricula is required")
		}
		entry, err := h.Attendance.Append(ctx, data.Registration, data.Name, data.Sector, time.Now())
		if err != nil {
			return nil, err
		}
		if h.Collector != nil {
			h.Collector.RecordClockEvent()
		}
		if h.Hub != nil {
			h.Hub.Broadcast(entry)
		}
		return map[string]any{"success": true, "tipo": entry.Type, "hora": entry.LoggedAt.Format("15:04:05")}, nil

	case "registerFace":
		var data struct {
			Registration string    `json:"matricula"`
			Name         string    `json:"nome"`
			Embedding    []float32 `json:"embedding"`
		}
		if err := json.Unmarshal(req.Data, &data); err != nil {
			return nil, err
		}
		if err := h.Recognition.Enroll(ctx, data.Registration, data.Name, data.Embedding); err != nil {
			return nil, err
		}
		return map[string]any{"success": true}, nil

	case "identifyFace":
		return h.identifyFace(ctx, req.Data)

	case "registerBadge":
		var data struct {
			UID          string `json:"uid"`
			Registration string `json:"matricula"`
			Name         string `json:"nome"`
		}
		if err := json.Unmarshal(req.Data, &data); err != nil {
			return nil, err
		}
		if err := h.Recognition.RegisterBadge(ctx, data.UID, data.Registration, data.Name); err != nil {
			return nil, err
		}
		return map[string]any{"success": true}, nil

	case "identifyBadge":
		var data struct {
			UID string `json:"uid"`
		}
		if err := json.Unmarshal(req.Data, &data); err != nil {
			return nil, err
		}
		result, err := h.Recognition.IdentifyBadge(ctx, data.UID)
		if err != nil {
			return nil, err
		}
		return matchPayload(result, h.Collector), nil

	case "getAttendanceLogs":
		var data struct {
			From         string `json:"de"`
			To           string `json:"ate"`
			Registration string `json:"matricula"`
		}
		if len(req.Data) > 0 {
			if err := json.Unmarshal(req.Data, &data); err != nil {
				return nil, err
			}
		}
		entries, err := h.Attendance.List(ctx, data.From, data.To, data.Registration)
		if err != nil {
			return nil, err
		}
		return map[string]any{"success": true, "registros": entries}, nil

	case "getFaceRegistrations":
		registrations, err := h.Recognition.Registrations(ctx)
		if err != nil {
			return nil, err
		}
		return map[string]any{"success": true, "matriculas": registrations}, nil

	case "getFaceEmbeddings":
		// the kiosk matches locally, so this is the one path that ships
		// embeddings to a client; it sits behind the kiosk/admin role gate
		enrollments, err := h.Recognition.Enrollments(ctx)
		if err != nil {
			return nil, err
		}
		return map[string]any{"success": true, "faces": enrollments}, nil
	}

	return nil, errors.New("unknown action: " + req.Action)
}

func (h *Handler) rhConfigs(ctx context.Context) (map[string]any, error) {
	sectors, err := h.Configs.Items(ctx, configset.ListSectors)
	if err != nil {
		return nil, err
	}
	supervisors, err := h.Configs.Items(ctx, configset.ListSupervisors)
	if err != nil {
		return nil, err
	}
	companies, err := h.Configs.Items(ctx, configset.ListCompanies)
	if err != nil {
		return nil, err
	}
	components, err := h.Employees.Components(ctx)
	if err != nil {
		return nil, err
	}

	additions := []employee.PayComponent{}
	discounts := []employee.PayComponent{}
	for _, component := range components {
		if component.Kind == employee.ComponentAddition {
			additions = append(additions, component)
		} else {
			discounts = append(discounts, component)
		}
	}
	return map[string]any{
		"success":      true,
		"setores":      sectors,
		"supervisores": supervisors,
		"empresas":     companies,
		"adicionais":   additions,
		"descontos":    discounts,
	}, nil
}

func (h *Handler) saveRHConfigs(ctx context.Context, raw json.RawMessage) (map[string]any, error) {
	var data struct {
		Sectors     []string `json:"setores"`
		Supervisors []string `json:"supervisores"`
		Companies   []string `json:"empresas"`
	}
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, err
	}

	lists := map[string][]string{
		configset.ListSectors:     data.Sectors,
		configset.ListSupervisors: data.Supervisors,
		configset.ListCompanies:   data.Companies,
	}
	for list, names := range lists {
		if names == nil {
			continue
		}
		if err := h.Configs.Replace(ctx, list, names); err != nil {
			return nil, err
		}
	}
	return map[string]any{"success": true}, nil
}

func (h *Handler) identifyFace(ctx context.Context, raw json.RawMessage) (map[string]any, error) {
	var data struct {
		Embedding []float32 `json:"embedding"`
		Image     string    `json:"image"`
	}
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, err
	}

	var result recognition.MatchResult
	var err error
	if len(data.Embedding) > 0 {
		result, err = h.Recognition.IdentifyEmbedding(ctx, data.Embedding)
	} else {
		result, err = h.Recognition.IdentifyImage(ctx, data.Image)
	}
	if err != nil {
		return nil, err
	}
	return matchPayload(result, h.Collector), nil
}

func matchPayload(result recognition.MatchResult, collector *metrics.Collector) map[string]any {
	if !result.Matched {
		if collector != nil {
			collector.RecordNotRecognized()
		}
		return map[string]any{"success": true, "employee": nil, "distance": result.Distance}
	}
	return map[string]any{"success": true, "employee": result.Employee, "distance": result.Distance}
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Warn("webhook write failed", "err", err)
	}
}
