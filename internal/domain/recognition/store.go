package recognition

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"aprendiz/internal/platform/crypto"
)

type Store struct {
	DB     *pgxpool.Pool
	Crypto *crypto.Service
}

func NewStore(db *pgxpool.Pool, cryptoSvc *crypto.Service) *Store {
	return &Store{DB: db, Crypto: cryptoSvc}
}

// Enroll upserts a face enrollment. Embeddings are sealed before storage:
// they are biometric data and never land in the database as plaintext when a
// key is configured.
func (s *Store) Enroll(ctx context.Context, enrollment Enrollment) error {
	plain, err := json.Marshal(enrollment.Embedding)
	if err != nil {
		return err
	}
	sealed, err := s.Crypto.Seal(plain)
	if err != nil {
		return fmt.Errorf("seal embedding: %w", err)
	}
	_, err = s.DB.Exec(ctx, `
		INSERT INTO face_enrollments (registration, name, embedding)
		VALUES ($1, $2, $3)
		ON CONFLICT (registration) DO UPDATE SET name = EXCLUDED.name, embedding = EXCLUDED.embedding, enrolled_at = now()
	`, enrollment.Registration, enrollment.Name, sealed)
	return err
}

func (s *Store) Enrollments(ctx context.Context) ([]Enrollment, error) {
	rows, err := s.DB.Query(ctx, "SELECT registration, name, embedding FROM face_enrollments")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var enrollments []Enrollment
	for rows.Next() {
		var enrollment Enrollment
		var sealed []byte
		if err := rows.Scan(&enrollment.Registration, &enrollment.Name, &sealed); err != nil {
			return nil, err
		}
		plain, err := s.Crypto.Open(sealed)
		if err != nil {
			return nil, fmt.Errorf("open embedding for %s: %w", enrollment.Registration, err)
		}
		if err := json.Unmarshal(plain, &enrollment.Embedding); err != nil {
			return nil, err
		}
		enrollments = append(enrollments, enrollment)
	}
	return enrollments, rows.Err()
}

// Registrations lists only who is enrolled, without decrypting anything.
func (s *Store) Registrations(ctx context.Context) ([]string, error) {
	rows, err := s.DB.Query(ctx, "SELECT registration FROM face_enrollments ORDER BY registration")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var registrations []string
	for rows.Next() {
		var registration string
		if err := rows.Scan(&registration); err != nil {
			return nil, err
		}
		registrations = append(registrations, registration)
	}
	return registrations, rows.Err()
}

func (s *Store) BindBadge(ctx context.Context, uid, registration, name string) error {
	_, err := s.DB.Exec(ctx, `
		INSERT INTO badges (uid, registration, name)
		VALUES ($1, $2, $3)
		ON CONFLICT (uid) DO UPDATE SET registration = EXCLUDED.registration, name = EXCLUDED.name, bound_at = now()
	`, uid, registration, name)
	return err
}

// BadgeHolder resolves an NFC tag uid. ok=false is the not-recognized
// outcome, not an error.
func (s *Store) BadgeHolder(ctx context.Context, uid string) (Enrollment, bool, error) {
	var holder Enrollment
	err := s.DB.QueryRow(ctx, "SELECT registration, name FROM badges WHERE uid = $1", uid).
		Scan(&holder.Registration, &holder.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return Enrollment{}, false, nil
	}
	if err != nil {
		return Enrollment{}, false, err
	}
	return holder, true, nil
}
