package attendance

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestWriteCSV(t *testing.T) {
	entries := []LogEntry{
		{
			Registration: "1001",
			Name:         "Ana Silva",
			Sector:       "Logística",
			Day:          "2025-06-15",
			LoggedAt:     time.Date(2025, 6, 15, 8, 2, 30, 0, time.UTC),
			Type:         TypeIn,
		},
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, entries); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "matricula,nome,setor,data,hora,tipo") {
		t.Fatalf("unexpected header: %q", out)
	}
	if !strings.Contains(out, "1001,Ana Silva,Logística,2025-06-15,08:02:30,Entrada") {
		t.Fatalf("row missing: %q", out)
	}
}
