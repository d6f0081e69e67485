package evaluation

import "time"

// MaxCycle is the number of evaluation periods per apprentice. Once reached,
// submitting again never wraps or decrements.
const MaxCycle = 4

type Option struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

type Question struct {
	ID          string   `json:"id"`
	Text        string   `json:"text"`
	Description string   `json:"description,omitempty"`
	Weight      float64  `json:"weight"`
	Options     []Option `json:"options"`
}

// Questionnaire is data, not code: the question set is revised over the
// product's life, so weights and option scales load from storage.
type Questionnaire struct {
	Revision  int        `json:"revision"`
	Questions []Question `json:"questions"`
}

// Answers maps question id to the selected option value.
type Answers map[string]float64

type Submission struct {
	ID            string    `json:"id"`
	Registration  string    `json:"matricula"`
	CycleFinished int       `json:"cycleFinished"`
	Score         float64   `json:"score"`
	Answers       Answers   `json:"answers"`
	SubmittedAt   time.Time `json:"date"`
}
