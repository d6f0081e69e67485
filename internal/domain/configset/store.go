package configset

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) Items(ctx context.Context, list string) ([]string, error) {
	if !ValidList(list) {
		return nil, ErrUnknownList
	}
	rows, err := s.DB.Query(ctx, "SELECT name FROM config_items WHERE list = $1 ORDER BY name", list)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// Add inserts a new entry, rejecting duplicates case-insensitively via the
// unique index.
func (s *Store) Add(ctx context.Context, list, name string) error {
	if !ValidList(list) {
		return ErrUnknownList
	}
	normalized, err := Normalize(name)
	if err != nil {
		return err
	}
	_, err = s.DB.Exec(ctx, "INSERT INTO config_items (list, name) VALUES ($1, $2)", list, normalized)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrDuplicate
	}
	return err
}

func (s *Store) Remove(ctx context.Context, list, name string) error {
	if !ValidList(list) {
		return ErrUnknownList
	}
	_, err := s.DB.Exec(ctx, "DELETE FROM config_items WHERE list = $1 AND lower(name) = lower($2)", list, name)
	return err
}

func (s *Store) Rename(ctx context.Context, list, from, to string) error {
	if !ValidList(list) {
		return ErrUnknownList
	}
	normalized, err := Normalize(to)
	if err != nil {
		return err
	}
	_, err = s.DB.Exec(ctx, "UPDATE config_items SET name = $3 WHERE list = $1 AND lower(name) = lower($2)", list, from, normalized)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrDuplicate
	}
	return err
}

// Replace swaps a whole list in one transaction, the shape the settings
// screen saves in (it posts the full list back).
func (s *Store) Replace(ctx context.Context, list string, names []string) error {
	if !ValidList(list) {
		return ErrUnknownList
	}
	tx, err := s.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, "DELETE FROM config_items WHERE list = $1", list); err != nil {
		return err
	}
	seen := map[string]bool{}
	for _, name := range names {
		normalized, err := Normalize(name)
		if err != nil {
			continue
		}
		folded := strings.ToLower(normalized)
		if seen[folded] {
			continue
		}
		seen[folded] = true
		if _, err := tx.Exec(ctx, "INSERT INTO config_items (list, name) VALUES ($1, $2)", list, normalized); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}
