package evaluation

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) Active(ctx context.Context) (Questionnaire, error) {
	var raw []byte
	err := s.DB.QueryRow(ctx, "SELECT definition FROM questionnaires WHERE active").Scan(&raw)
	if err != nil {
		return Questionnaire{}, fmt.Errorf("load active questionnaire: %w", err)
	}
	var q Questionnaire
	if err := json.Unmarshal(raw, &q); err != nil {
		return Questionnaire{}, fmt.Errorf("decode questionnaire: %w", err)
	}
	return q, nil
}

func (s *Store) Revisions(ctx context.Context) ([]Questionnaire, error) {
	rows, err := s.DB.Query(ctx, "SELECT definition FROM questionnaires ORDER BY revision")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var revisions []Questionnaire
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		var q Questionnaire
		if err := json.Unmarshal(raw, &q); err != nil {
			return nil, err
		}
		revisions = append(revisions, q)
	}
	return revisions, rows.Err()
}

func (s *Store) Upsert(ctx context.Context, q Questionnaire, active bool) error {
	definition, err := json.Marshal(q)
	if err != nil {
		return err
	}
	tx, err := s.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if active {
		if _, err := tx.Exec(ctx, "UPDATE questionnaires SET active = false WHERE active"); err != nil {
			return err
		}
	}
	_, err = tx.Exec(ctx, `
		INSERT INTO questionnaires (revision, active, definition)
		VALUES ($1, $2, $3)
		ON CONFLICT (revision) DO UPDATE SET active = EXCLUDED.active, definition = EXCLUDED.definition
	`, q.Revision, active, definition)
	if err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (s *Store) History(ctx context.Context, registration string) ([]Submission, error) {
	rows, err := s.DB.Query(ctx, `
		SELECT id, registration, cycle_finished, score, answers, submitted_at
		FROM evaluations
		WHERE registration = $1
		ORDER BY submitted_at DESC
	`, registration)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var history []Submission
	for rows.Next() {
		var sub Submission
		var answers []byte
		if err := rows.Scan(&sub.ID, &sub.Registration, &sub.CycleFinished, &sub.Score, &answers, &sub.SubmittedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(answers, &sub.Answers); err != nil {
			return nil, err
		}
		history = append(history, sub)
	}
	return history, rows.Err()
}
