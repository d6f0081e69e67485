package normalize

import (
	"testing"
	"time"

	"aprendiz/internal/domain/apprentice"
)

func TestApprenticeDefaults(t *testing.T) {
	record := Apprentice(Row{})

	if record.Status != apprentice.StatusNotEvaluated {
		t.Fatalf("expected default status, got %q", record.Status)
	}
	if record.Cycle != 1 {
		t.Fatalf("expected default cycle 1, got %d", record.Cycle)
	}
	if record.LastScore != 0 {
		t.Fatalf("expected default score 0, got %v", record.LastScore)
	}
	if !record.BirthDate.IsZero() {
		t.Fatalf("expected unknown birth date, got %v", record.BirthDate)
	}
}

func TestApprenticeAccentedHeaders(t *testing.T) {
	record := Apprentice(Row{
		"Matrícula":  "2024001",
		"Nome":       " Ana Silva ",
		"Cargo":      "Auxiliar Administrativo",
		"Sexo":       "Feminino",
		"Admissão":   "2024-02-01",
		"Nascimento": "15/03/2006",
		"Ciclo":      "2",
		"Nota":       "7,5",
	})

	if record.Registration != "2024001" {
		t.Fatalf("registration not mapped: %q", record.Registration)
	}
	if record.Name != "Ana Silva" {
		t.Fatalf("name not trimmed: %q", record.Name)
	}
	if record.Cycle != 2 {
		t.Fatalf("cycle not parsed: %d", record.Cycle)
	}
	if record.LastScore != 7.5 {
		t.Fatalf("comma decimal not parsed: %v", record.LastScore)
	}
	want := time.Date(2006, 3, 15, 0, 0, 0, 0, time.UTC)
	if !record.BirthDate.Equal(want) {
		t.Fatalf("birth date mismatch: %v", record.BirthDate)
	}
}

func TestApprenticeLegacyStatus(t *testing.T) {
	cases := map[string]string{
		"nao-avaliado": apprentice.StatusNotEvaluated,
		"Desligar":     apprentice.StatusDismiss,
		"recuperar":    apprentice.StatusRecover,
		"Apto":         apprentice.StatusFit,
		"fit":          apprentice.StatusFit,
		"???":          apprentice.StatusNotEvaluated,
	}
	for raw, want := range cases {
		if got := Status(raw); got != want {
			t.Fatalf("status %q: expected %q, got %q", raw, want, got)
		}
	}
}

func TestParseDecimal(t *testing.T) {
	cases := map[string]float64{
		"8.5":     8.5,
		"8,5":     8.5,
		"1.234,5": 1234.5,
		" 10 ":    10,
		"abc":     0,
		"":        0,
	}
	for raw, want := range cases {
		if got := ParseDecimal(raw); got != want {
			t.Fatalf("ParseDecimal(%q): expected %v, got %v", raw, want, got)
		}
	}
}

func TestParseDateRejectsAncientYears(t *testing.T) {
	if got := ParseDate("1899-12-30"); !got.IsZero() {
		t.Fatalf("expected sentinel for pre-2000 date, got %v", got)
	}
	if got := ParseDate("not a date"); !got.IsZero() {
		t.Fatalf("expected sentinel for junk, got %v", got)
	}
	if got := ParseDate("2024-02-01"); got.IsZero() {
		t.Fatal("expected valid date to parse")
	}
}

func TestApprenticeCycleClamped(t *testing.T) {
	record := Apprentice(Row{"Ciclo": "9"})
	if record.Cycle != 4 {
		t.Fatalf("expected cycle clamped to 4, got %d", record.Cycle)
	}
}
