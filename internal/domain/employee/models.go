package employee

import "time"

type Employee struct {
	ID              string    `json:"id"`
	Registration    string    `json:"matricula"`
	Name            string    `json:"nome"`
	Sector          string    `json:"setor"`
	Company         string    `json:"empresa"`
	BaseSalary      float64   `json:"salario"`
	Additions       []string  `json:"adicionais"`
	Discounts       []string  `json:"descontos"`
	AdmissionDate   time.Time `json:"admissao"`
	TerminationDate time.Time `json:"demissao"`
	// TotalPay is derived (base + configured additions), never stored.
	TotalPay float64 `json:"totalPay"`
}
