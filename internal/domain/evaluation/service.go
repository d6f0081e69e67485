package evaluation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrApprenticeNotFound = errors.New("apprentice not found")

type Service struct {
	Store *Store
}

func NewService(store *Store) *Service {
	return &Service{Store: store}
}

func (s *Service) Active(ctx context.Context) (Questionnaire, error) {
	return s.Store.Active(ctx)
}

func (s *Service) History(ctx context.Context, registration string) ([]Submission, error) {
	return s.Store.History(ctx, registration)
}

// Submit scores a complete answer set against the active questionnaire,
// records the evaluation and advances the apprentice's cycle (capped at
// MaxCycle) in a single transaction. Incomplete or off-scale answers are
// rejected before any side effect.
func (s *Service) Submit(ctx context.Context, registration string, answers Answers, now time.Time) (Submission, error) {
	q, err := s.Store.Active(ctx)
	if err != nil {
		return Submission{}, err
	}
	if err := q.ValidateAnswers(answers); err != nil {
		return Submission{}, err
	}
	score := q.Score(answers)

	tx, err := s.Store.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return Submission{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var cycle int
	err = tx.QueryRow(ctx, "SELECT cycle FROM apprentices WHERE registration = $1 FOR UPDATE", registration).Scan(&cycle)
	if errors.Is(err, pgx.ErrNoRows) {
		return Submission{}, ErrApprenticeNotFound
	}
	if err != nil {
		return Submission{}, fmt.Errorf("lock apprentice: %w", err)
	}

	sub := Submission{
		ID:            uuid.NewString(),
		Registration:  registration,
		CycleFinished: cycle,
		Score:         score,
		Answers:       answers,
		SubmittedAt:   now,
	}

	encoded, err := json.Marshal(answers)
	if err != nil {
		return Submission{}, err
	}
	if _, err := tx.Exec(ctx, `
		INSERT INTO evaluations (id, registration, cycle_finished, score, answers, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, sub.ID, sub.Registration, sub.CycleFinished, sub.Score, encoded, sub.SubmittedAt); err != nil {
		return Submission{}, fmt.Errorf("insert evaluation: %w", err)
	}

	if _, err := tx.Exec(ctx, `
		UPDATE apprentices SET cycle = $2, last_score = $3, updated_at = now()
		WHERE registration = $1
	`, registration, NextCycle(cycle), score); err != nil {
		return Submission{}, fmt.Errorf("advance cycle: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return Submission{}, err
	}
	return sub, nil
}
