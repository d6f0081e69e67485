package reports

import (
	"bytes"
	"testing"
	"time"

	"aprendiz/internal/domain/apprentice"
	"aprendiz/internal/domain/attendance"
	"aprendiz/internal/domain/employee"
)

func TestSummarizeEmployees(t *testing.T) {
	records := []employee.Employee{
		{Registration: "100", Company: "Acme", Sector: "Produção", BaseSalary: 2000, TotalPay: 2200},
		{Registration: "101", Company: "Acme", Sector: "Logística", BaseSalary: 3000, TotalPay: 3000},
		{Registration: "102", Company: "Beta", Sector: "Produção", BaseSalary: 9999, TotalPay: 9999, TerminationDate: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
	}

	summary := SummarizeEmployees(records)

	if summary.Headcount != 3 || summary.Active != 2 || summary.Terminated != 1 {
		t.Fatalf("headcount = %d/%d/%d", summary.Headcount, summary.Active, summary.Terminated)
	}
	if summary.SalaryTotal != 5000 {
		t.Fatalf("salary total = %v, want 5000 (terminated excluded)", summary.SalaryTotal)
	}
	if summary.SalaryAverage != 2500 {
		t.Fatalf("salary average = %v, want 2500", summary.SalaryAverage)
	}
	if summary.PayTotal != 5200 {
		t.Fatalf("pay total = %v, want 5200", summary.PayTotal)
	}
	if len(summary.ByCompany) != 2 || summary.ByCompany[0].Name != "Acme" || summary.ByCompany[0].Count != 2 {
		t.Fatalf("companies = %+v", summary.ByCompany)
	}
	if len(summary.BySector) != 2 || summary.BySector[0].Name != "Produção" || summary.BySector[0].Count != 2 {
		t.Fatalf("sectors = %+v", summary.BySector)
	}
}

func TestSummarizeEmployeesEmpty(t *testing.T) {
	summary := SummarizeEmployees(nil)
	if summary.Headcount != 0 || summary.SalaryAverage != 0 {
		t.Fatalf("empty summary = %+v", summary)
	}
}

func TestWriteRosterPDF(t *testing.T) {
	records := []apprentice.Apprentice{
		{Registration: "100", Name: "João da Conceição", Role: "Produção", Cycle: 2, LastScore: 8.0, Status: apprentice.StatusFit},
		{Registration: "101", Name: "Maria", Role: "Logística", Cycle: 1, Status: apprentice.StatusNotEvaluated},
	}

	var buf bytes.Buffer
	if err := WriteRosterPDF(&buf, records, time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("WriteRosterPDF: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Fatalf("output does not look like a PDF")
	}
}

func TestWriteAttendancePDF(t *testing.T) {
	entries := []attendance.LogEntry{
		{Registration: "100", Name: "João", Sector: "Produção", Day: "2024-06-01", LoggedAt: time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC), Type: attendance.TypeIn},
	}

	var buf bytes.Buffer
	if err := WriteAttendancePDF(&buf, entries, "2024-06-01", "2024-06-30"); err != nil {
		t.Fatalf("WriteAttendancePDF: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatalf("empty PDF output")
	}
}
