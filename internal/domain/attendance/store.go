package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

// Append counts the person's prior entries for the day and inserts the next
// log row in one transaction. An advisory lock on (registration, day)
// serializes concurrent devices, so the server is the authoritative counter
// and two simultaneous recognitions cannot both produce Entrada.
func (s *Store) Append(ctx context.Context, registration, name, sector string, now time.Time) (LogEntry, error) {
	day := now.Format("2006-01-02")

	tx, err := s.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return LogEntry{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, "SELECT pg_advisory_xact_lock(hashtext($1))", registration+"@"+day); err != nil {
		return LogEntry{}, fmt.Errorf("lock attendance counter: %w", err)
	}

	var count int
	if err := tx.QueryRow(ctx,
		"SELECT COUNT(1) FROM attendance_logs WHERE registration = $1 AND day = $2",
		registration, day,
	).Scan(&count); err != nil {
		return LogEntry{}, fmt.Errorf("count day entries: %w", err)
	}

	entry := LogEntry{
		ID:           uuid.NewString(),
		Registration: registration,
		Name:         name,
		Sector:       sector,
		Day:          day,
		LoggedAt:     now,
		Type:         TypeForCount(count),
	}

	if _, err := tx.Exec(ctx, `
		INSERT INTO attendance_logs (id, registration, name, sector, day, logged_at, entry_type)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, entry.ID, entry.Registration, entry.Name, entry.Sector, entry.Day, entry.LoggedAt, entry.Type); err != nil {
		return LogEntry{}, fmt.Errorf("append attendance log: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return LogEntry{}, err
	}
	return entry, nil
}

func (s *Store) List(ctx context.Context, from, to string, registration string) ([]LogEntry, error) {
	query := `
		SELECT id, registration, name, sector, day::text, logged_at, entry_type
		FROM attendance_logs
		WHERE 1=1
	`
	args := []any{}
	if from != "" {
		args = append(args, from)
		query += fmt.Sprintf(" AND day >= $%d", len(args))
	}
	if to != "" {
		args = append(args, to)
		query += fmt.Sprintf(" AND day <= $%d", len(args))
	}
	if registration != "" {
		args = append(args, registration)
		query += fmt.Sprintf(" AND registration = $%d", len(args))
	}
	query += " ORDER BY logged_at DESC"

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []LogEntry
	for rows.Next() {
		var entry LogEntry
		if err := rows.Scan(&entry.ID, &entry.Registration, &entry.Name, &entry.Sector, &entry.Day, &entry.LoggedAt, &entry.Type); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// OddCountDays returns the (registration, day) pairs on the given day whose
// entry count is odd.
func (s *Store) OddCountDays(ctx context.Context, day string) ([]Finding, error) {
	rows, err := s.DB.Query(ctx, `
		SELECT registration, day::text, COUNT(1) AS entries
		FROM attendance_logs
		WHERE day = $1
		GROUP BY registration, day
		HAVING COUNT(1) % 2 = 1
	`, day)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var findings []Finding
	for rows.Next() {
		var finding Finding
		if err := rows.Scan(&finding.Registration, &finding.Day, &finding.Entries); err != nil {
			return nil, err
		}
		findings = append(findings, finding)
	}
	return findings, rows.Err()
}

func (s *Store) RecordFinding(ctx context.Context, finding Finding) error {
	_, err := s.DB.Exec(ctx, `
		INSERT INTO attendance_findings (id, registration, day, entries)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (registration, day) DO UPDATE SET entries = EXCLUDED.entries, noted_at = now()
	`, uuid.NewString(), finding.Registration, finding.Day, finding.Entries)
	return err
}

func (s *Store) Findings(ctx context.Context, limit int) ([]Finding, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := s.DB.Query(ctx, `
		SELECT id, registration, day::text, entries, noted_at
		FROM attendance_findings
		ORDER BY day DESC, registration
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var findings []Finding
	for rows.Next() {
		var finding Finding
		if err := rows.Scan(&finding.ID, &finding.Registration, &finding.Day, &finding.Entries, &finding.NotedAt); err != nil {
			return nil, err
		}
		findings = append(findings, finding)
	}
	return findings, rows.Err()
}
