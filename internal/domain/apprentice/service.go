package apprentice

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

type Service struct {
	Store *Store
}

func NewService(store *Store) *Service {
	return &Service{Store: store}
}

func (s *Service) List(ctx context.Context) ([]Apprentice, error) {
	return s.Store.List(ctx)
}

func (s *Service) ByRegistration(ctx context.Context, registration string) (Apprentice, error) {
	registration = strings.TrimSpace(registration)
	if registration == "" {
		return Apprentice{}, ErrNotFound
	}
	return s.Store.ByRegistration(ctx, registration)
}

// Save creates the record, falling back to an update when the registration is
// already present. Spreadsheet re-imports hit the update path constantly.
func (s *Service) Save(ctx context.Context, record Apprentice) (Apprentice, error) {
	record.Registration = strings.TrimSpace(record.Registration)
	if record.Registration == "" {
		return Apprentice{}, fmt.Errorf("registration is required")
	}
	if record.Name == "" {
		return Apprentice{}, fmt.Errorf("name is required")
	}
	if record.Status == "" {
		record.Status = StatusNotEvaluated
	}
	if record.Cycle < 1 {
		record.Cycle = 1
	}
	if record.Cycle > 4 {
		record.Cycle = 4
	}

	err := s.Store.Create(ctx, record)
	if errors.Is(err, ErrDuplicate) {
		err = s.Store.Update(ctx, record)
	}
	if err != nil {
		return Apprentice{}, err
	}
	return s.Store.ByRegistration(ctx, record.Registration)
}

func (s *Service) SetStatus(ctx context.Context, registration, status string) error {
	return s.Store.SetStatus(ctx, strings.TrimSpace(registration), status)
}

func (s *Service) Delete(ctx context.Context, registration string) error {
	return s.Store.Delete(ctx, strings.TrimSpace(registration))
}
