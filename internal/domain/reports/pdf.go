package reports

import (
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"

	"aprendiz/internal/domain/apprentice"
	"aprendiz/internal/domain/attendance"
)

// WriteRosterPDF renders the apprentice roster as a landscape table. The
// unicode translator keeps accented pt-BR names intact in the core fonts.
func WriteRosterPDF(w io.Writer, records []apprentice.Apprentice, generatedAt time.Time) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(tr("Relatório de Aprendizes"), true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, tr("Relatório de Aprendizes"), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Gerado em %s", generatedAt.Format("02/01/2006 15:04"))), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	headers := []string{"Matrícula", "Nome", "Setor", "Supervisor", "Ciclo", "Nota", "Status"}
	widths := []float64{28, 78, 48, 48, 16, 18, 34}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for i, header := range headers {
		pdf.CellFormat(widths[i], 7, tr(header), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, record := range records {
		score := ""
		if record.LastScore > 0 {
			score = fmt.Sprintf("%.1f", record.LastScore)
		}
		cells := []string{
			record.Registration,
			record.Name,
			record.Role,
			record.Supervisor,
			fmt.Sprintf("%d", record.Cycle),
			score,
			record.Status,
		}
		for i, cell := range cells {
			align := "L"
			if i >= 4 && i <= 5 {
				align = "C"
			}
			pdf.CellFormat(widths[i], 6, tr(cell), "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	return pdf.Output(w)
}

// WriteAttendancePDF renders a clock sheet for a date range, one row per
// logged event in chronological order.
func WriteAttendancePDF(w io.Writer, entries []attendance.LogEntry, from, to string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(tr("Folha de Ponto"), true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, tr("Folha de Ponto"), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	period := "todo o período"
	if from != "" || to != "" {
		period = fmt.Sprintf("%s a %s", orDash(from), orDash(to))
	}
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Período: %s", period)), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	headers := []string{"Matrícula", "Nome", "Setor", "Data", "Hora", "Tipo"}
	widths := []float64{25, 62, 38, 24, 20, 21}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for i, header := range headers {
		pdf.CellFormat(widths[i], 7, tr(header), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, entry := range entries {
		cells := []string{
			entry.Registration,
			entry.Name,
			entry.Sector,
			entry.Day,
			entry.LoggedAt.Format("15:04:05"),
			entry.Type,
		}
		for i, cell := range cells {
			pdf.CellFormat(widths[i], 6, tr(cell), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	return pdf.Output(w)
}

func orDash(value string) string {
	if value == "" {
		return "..."
	}
	return value
}
