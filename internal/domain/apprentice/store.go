package apprentice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound  = errors.New("apprentice not found")
	ErrDuplicate = errors.New("registration already exists")
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

const selectColumns = `
	registration, name, role, supervisor, gender,
	COALESCE(birth_date, '0001-01-01'), COALESCE(admission_date, '0001-01-01'), COALESCE(termination_date, '0001-01-01'),
	photo, status, cycle, last_score
`

func (s *Store) Create(ctx context.Context, record Apprentice) error {
	_, err := s.DB.Exec(ctx, `
		INSERT INTO apprentices (registration, name, role, supervisor, gender, birth_date, admission_date, termination_date, photo, status, cycle, last_score)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`, record.Registration, record.Name, record.Role, record.Supervisor, record.Gender,
		nullableDate(record.BirthDate), nullableDate(record.AdmissionDate), nullableDate(record.TerminationDate),
		record.Photo, record.Status, record.Cycle, record.LastScore)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("create apprentice: %w", err)
	}
	return nil
}

func (s *Store) List(ctx context.Context) ([]Apprentice, error) {
	rows, err := s.DB.Query(ctx, "SELECT "+selectColumns+" FROM apprentices ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Apprentice
	for rows.Next() {
		record, err := scan(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

func (s *Store) ByRegistration(ctx context.Context, registration string) (Apprentice, error) {
	record, err := scan(s.DB.QueryRow(ctx, "SELECT "+selectColumns+" FROM apprentices WHERE registration = $1", registration))
	if errors.Is(err, pgx.ErrNoRows) {
		return Apprentice{}, ErrNotFound
	}
	return record, err
}

// SetStatus moves an apprentice between board columns. The column is a human
// decision, so nothing else on the record changes.
func (s *Store) SetStatus(ctx context.Context, registration, status string) error {
	if !ValidStatus(status) {
		return fmt.Errorf("invalid status %q", status)
	}
	tag, err := s.DB.Exec(ctx, "UPDATE apprentices SET status = $2, updated_at = now() WHERE registration = $1", registration, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) Update(ctx context.Context, record Apprentice) error {
	tag, err := s.DB.Exec(ctx, `
		UPDATE apprentices
		SET name = $2, role = $3, supervisor = $4, gender = $5, birth_date = $6,
		    admission_date = $7, termination_date = $8, photo = $9, updated_at = now()
		WHERE registration = $1
	`, record.Registration, record.Name, record.Role, record.Supervisor, record.Gender,
		nullableDate(record.BirthDate), nullableDate(record.AdmissionDate), nullableDate(record.TerminationDate), record.Photo)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, registration string) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM apprentices WHERE registration = $1", registration)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scan(row pgx.Row) (Apprentice, error) {
	var record Apprentice
	err := row.Scan(&record.Registration, &record.Name, &record.Role, &record.Supervisor, &record.Gender,
		&record.BirthDate, &record.AdmissionDate, &record.TerminationDate,
		&record.Photo, &record.Status, &record.Cycle, &record.LastScore)
	return record, err
}

func nullableDate(value time.Time) any {
	if value.IsZero() {
		return nil
	}
	return value
}
