package evaluation

import (
	"errors"
	"fmt"
	"math"
)

var ErrIncomplete = errors.New("evaluation incomplete: every question needs an answer")

// Score computes the weighted average over the answered questions, rounded to
// one decimal place. Unanswered questions contribute neither value nor weight;
// with no answers at all the score is 0.
func (q Questionnaire) Score(answers Answers) float64 {
	var weightedSum, weightSum float64
	for _, question := range q.Questions {
		value, ok := answers[question.ID]
		if !ok {
			continue
		}
		weightedSum += value * question.Weight
		weightSum += question.Weight
	}
	if weightSum == 0 {
		return 0
	}
	return math.Round(weightedSum/weightSum*10) / 10
}

// Complete reports whether every question has an answer. Submission is only
// allowed on complete answer sets; nothing partial ever leaves the client.
func (q Questionnaire) Complete(answers Answers) bool {
	for _, question := range q.Questions {
		if _, ok := answers[question.ID]; !ok {
			return false
		}
	}
	return true
}

// ValidateAnswers rejects incomplete sets and values that are not one of the
// question's selectable options.
func (q Questionnaire) ValidateAnswers(answers Answers) error {
	if !q.Complete(answers) {
		return ErrIncomplete
	}
	for _, question := range q.Questions {
		value := answers[question.ID]
		if !question.hasOption(value) {
			return fmt.Errorf("question %s: %v is not a selectable option", question.ID, value)
		}
	}
	return nil
}

func (q Question) hasOption(value float64) bool {
	for _, option := range q.Options {
		if option.Value == value {
			return true
		}
	}
	return false
}

// NextCycle advances an apprentice's cycle after a submission, capped at
// MaxCycle.
func NextCycle(cycle int) int {
	if cycle >= MaxCycle {
		return MaxCycle
	}
	if cycle < 1 {
		return 1
	}
	return cycle + 1
}

// Validate checks a stored questionnaire definition before it is activated.
func (q Questionnaire) Validate() error {
	if len(q.Questions) == 0 {
		return errors.New("questionnaire has no questions")
	}
	seen := make(map[string]bool, len(q.Questions))
	for _, question := range q.Questions {
		if question.ID == "" {
			return errors.New("question id is required")
		}
		if seen[question.ID] {
			return fmt.Errorf("duplicate question id %s", question.ID)
		}
		seen[question.ID] = true
		if question.Weight <= 0 {
			return fmt.Errorf("question %s: weight must be positive", question.ID)
		}
		if len(question.Options) == 0 {
			return fmt.Errorf("question %s: at least one option is required", question.ID)
		}
	}
	return nil
}
