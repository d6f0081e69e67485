package attendance

import (
	"io"

	"github.com/gocarina/gocsv"
)

type csvRow struct {
	Registration string `csv:"matricula"`
	Name         string `csv:"nome"`
	Sector       string `csv:"setor"`
	Day          string `csv:"data"`
	Time         string `csv:"hora"`
	Type         string `csv:"tipo"`
}

// WriteCSV renders the log entries in the column layout the spreadsheet
// used, so exports stay drop-in compatible with the old sheet.
func WriteCSV(w io.Writer, entries []LogEntry) error {
	rows := make([]csvRow, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, csvRow{
			Registration: entry.Registration,
			Name:         entry.Name,
			Sector:       entry.Sector,
			Day:          entry.Day,
			Time:         entry.LoggedAt.Format("15:04:05"),
			Type:         entry.Type,
		})
	}
	return gocsv.Marshal(rows, w)
}
