package apprentice

import "time"

// Apprentice is the canonical record every view derives from. Dates use the
// zero time.Time as the "unknown" sentinel; JSON keys follow the spreadsheet
// vocabulary the SPA already speaks.
type Apprentice struct {
	Registration    string    `json:"matricula"`
	Name            string    `json:"nome"`
	Role            string    `json:"cargo"`
	Supervisor      string    `json:"supervisor"`
	Gender          string    `json:"sexo"`
	BirthDate       time.Time `json:"nascimento"`
	AdmissionDate   time.Time `json:"admissao"`
	TerminationDate time.Time `json:"termino"`
	Photo           string    `json:"foto,omitempty"`
	Status          string    `json:"status"`
	Cycle           int       `json:"ciclo"`
	LastScore       float64   `json:"nota"`
}
