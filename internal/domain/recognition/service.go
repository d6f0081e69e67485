package recognition

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
)

var ErrBadEmbedding = fmt.Errorf("embedding must have %d dimensions", EmbeddingDim)

type Service struct {
	Store     *Store
	Cloud     *CloudClient
	Threshold float64
}

func NewService(store *Store, cloud *CloudClient, threshold float64) *Service {
	return &Service{Store: store, Cloud: cloud, Threshold: threshold}
}

// IdentifyEmbedding matches a locally computed descriptor against every
// enrollment. A miss is a plain not-recognized result, not an error.
func (s *Service) IdentifyEmbedding(ctx context.Context, query []float32) (MatchResult, error) {
	if len(query) != EmbeddingDim {
		return MatchResult{}, ErrBadEmbedding
	}
	enrolled, err := s.Store.Enrollments(ctx)
	if err != nil {
		return MatchResult{}, err
	}
	result := FindClosest(query, enrolled, s.Threshold)
	if result.Employee != nil {
		// never leak the stored embedding back out
		result.Employee = &Enrollment{
			Registration: result.Employee.Registration,
			Name:         result.Employee.Name,
		}
	}
	if math.IsInf(result.Distance, 1) {
		// nothing enrolled; Inf is not representable in JSON
		result.Distance = -1
	}
	return result, nil
}

// IdentifyImage delegates to the cloud recognition endpoint when one is
// configured.
func (s *Service) IdentifyImage(ctx context.Context, imageBase64 string) (MatchResult, error) {
	if s.Cloud == nil {
		return MatchResult{}, errors.New("cloud recognition is not configured")
	}
	return s.Cloud.Identify(ctx, imageBase64)
}

func (s *Service) Enroll(ctx context.Context, registration, name string, embedding []float32) error {
	registration = strings.TrimSpace(registration)
	if registration == "" {
		return errors.New("registration is required")
	}
	if len(embedding) != EmbeddingDim {
		return ErrBadEmbedding
	}
	return s.Store.Enroll(ctx, Enrollment{Registration: registration, Name: name, Embedding: embedding})
}

func (s *Service) RegisterBadge(ctx context.Context, uid, registration, name string) error {
	uid = strings.TrimSpace(uid)
	if uid == "" {
		return errors.New("badge uid is required")
	}
	if strings.TrimSpace(registration) == "" {
		return errors.New("registration is required")
	}
	return s.Store.BindBadge(ctx, uid, registration, name)
}

func (s *Service) IdentifyBadge(ctx context.Context, uid string) (MatchResult, error) {
	holder, ok, err := s.Store.BadgeHolder(ctx, uid)
	if err != nil {
		return MatchResult{}, err
	}
	if !ok {
		return MatchResult{Matched: false}, nil
	}
	return MatchResult{Matched: true, Employee: &holder}, nil
}

func (s *Service) Registrations(ctx context.Context) ([]string, error) {
	return s.Store.Registrations(ctx)
}

func (s *Service) Enrollments(ctx context.Context) ([]Enrollment, error) {
	return s.Store.Enrollments(ctx)
}
