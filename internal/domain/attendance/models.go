package attendance

import "time"

type LogEntry struct {
	ID           string    `json:"id"`
	Registration string    `json:"matricula"`
	Name         string    `json:"nome"`
	Sector       string    `json:"setor"`
	Day          string    `json:"data"`
	LoggedAt     time.Time `json:"hora"`
	Type         string    `json:"tipo"`
}

// Finding is one (person, day) pair left with an odd entry count: an Entrada
// that never got its Saída. Produced by the nightly audit.
type Finding struct {
	ID           string    `json:"id"`
	Registration string    `json:"matricula"`
	Day          string    `json:"data"`
	Entries      int       `json:"entries"`
	NotedAt      time.Time `json:"notedAt"`
}
