package evaluation

import "testing"

func TestScoreAllAnswered(t *testing.T) {
	q := RevisionOne()
	answers := Answers{"q1": 8, "q2": 8, "q3": 8, "q4": 8}

	if got := q.Score(answers); got != 8.0 {
		t.Fatalf("expected 8.0, got %v", got)
	}
}

func TestScorePartialUsesAnsweredWeightsOnly(t *testing.T) {
	q := RevisionOne()
	// weight-3 question at 10 and weight-2 question at 5: (10*3+5*2)/5 = 8.0
	answers := Answers{"q1": 10, "q3": 5}

	if got := q.Score(answers); got != 8.0 {
		t.Fatalf("expected 8.0, got %v", got)
	}
}

func TestScoreEmpty(t *testing.T) {
	if got := RevisionOne().Score(Answers{}); got != 0 {
		t.Fatalf("expected 0 for empty answers, got %v", got)
	}
}

func TestScoreRounding(t *testing.T) {
	q := RevisionOne()
	// (0*3+5*3+8*2+10*2)/10 = 5.1
	answers := Answers{"q1": 0, "q2": 5, "q3": 8, "q4": 10}

	if got := q.Score(answers); got != 5.1 {
		t.Fatalf("expected 5.1, got %v", got)
	}
}

func TestScoreWithinOptionBounds(t *testing.T) {
	for _, q := range BuiltinRevisions() {
		low := Answers{}
		high := Answers{}
		for _, question := range q.Questions {
			low[question.ID] = question.Options[0].Value
			high[question.ID] = question.Options[len(question.Options)-1].Value
		}
		min := q.Questions[0].Options[0].Value
		max := q.Questions[0].Options[len(q.Questions[0].Options)-1].Value

		if got := q.Score(low); got != min {
			t.Fatalf("revision %d: expected floor %v, got %v", q.Revision, min, got)
		}
		if got := q.Score(high); got != max {
			t.Fatalf("revision %d: expected ceiling %v, got %v", q.Revision, max, got)
		}
	}
}

func TestCompleteAndValidate(t *testing.T) {
	q := RevisionOne()

	partial := Answers{"q1": 8}
	if q.Complete(partial) {
		t.Fatal("partial answers reported complete")
	}
	if err := q.ValidateAnswers(partial); err != ErrIncomplete {
		t.Fatalf("expected ErrIncomplete, got %v", err)
	}

	full := Answers{"q1": 8, "q2": 8, "q3": 8, "q4": 8}
	if !q.Complete(full) {
		t.Fatal("full answers reported incomplete")
	}
	if err := q.ValidateAnswers(full); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	offScale := Answers{"q1": 7, "q2": 8, "q3": 8, "q4": 8}
	if err := q.ValidateAnswers(offScale); err == nil {
		t.Fatal("expected rejection of non-option value")
	}
}

func TestNextCycleCapped(t *testing.T) {
	cases := map[int]int{1: 2, 2: 3, 3: 4, 4: 4}
	for current, want := range cases {
		if got := NextCycle(current); got != want {
			t.Fatalf("NextCycle(%d): expected %d, got %d", current, want, got)
		}
	}
}

func TestBuiltinRevisionsValid(t *testing.T) {
	for _, q := range BuiltinRevisions() {
		if err := q.Validate(); err != nil {
			t.Fatalf("revision %d invalid: %v", q.Revision, err)
		}
	}
}
