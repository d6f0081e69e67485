package webhookhandler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func execRequest(t *testing.T, h *Handler, body string) map[string]any {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/exec", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.HandleExec(rec, req)

	var payload map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("response is not json: %v", err)
	}
	return payload
}

func TestExecUnknownAction(t *testing.T) {
	payload := execRequest(t, &Handler{}, `{"action":"launchMissiles"}`)
	if payload["success"] != false {
		t.Fatalf("expected success=false, got %+v", payload)
	}
	msg, _ := payload["error"].(string)
	if !strings.Contains(msg, "unknown action") {
		t.Fatalf("unexpected error message: %q", msg)
	}
}

func TestExecClockInRequiresRegistration(t *testing.T) {
	payload := execRequest(t, &Handler{}, `{"action":"registerClockIn","data":{"nome":"João"}}`)
	if payload["success"] != false {
		t.Fatalf("expected success=false, got %+v", payload)
	}
}

func TestExecInvalidJSON(t *testing.T) {
	payload := execRequest(t, &Handler{}, `{"action":`)
	if payload["success"] != false {
		t.Fatalf("expected success=false, got %+v", payload)
	}
}

func TestExecRejectsOtherMethods(t *testing.T) {
	req := httptest.NewRequest(http.MethodDelete, "/exec", nil)
	rec := httptest.NewRecorder()
	(&Handler{}).HandleExec(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
