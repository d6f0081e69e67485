package jobs

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"aprendiz/internal/domain/attendance"
)

const JobAttendanceAudit = "attendance_audit"

// Service runs background work on a single queue and records every run in
// job_runs. The only scheduled job today is the attendance audit: flag the
// previous day's odd-count (matricula, day) pairs, an Entrada that never got
// its Saída.
type Service struct {
	DB         *pgxpool.Pool
	Attendance *attendance.Store
	queue      chan job
}

type job struct {
	Type string
	Run  func(context.Context) (any, error)
}

func New(db *pgxpool.Pool, store *attendance.Store) *Service {
	return &Service{
		DB:         db,
		Attendance: store,
		queue:      make(chan job, 64),
	}
}

func (s *Service) Start(ctx context.Context, auditEvery time.Duration) {
	go s.worker(ctx)
	if auditEvery > 0 {
		go s.scheduleAudit(ctx, auditEvery)
	}
}

func (s *Service) Enqueue(jobType string, run func(context.Context) (any, error)) {
	select {
	case s.queue <- job{Type: jobType, Run: run}:
	default:
		slog.Warn("job queue full", "jobType", jobType)
	}
}

// RunNow executes a job inline, bypassing the queue. The findings report
// endpoint uses it for on-demand audits.
func (s *Service) RunNow(ctx context.Context, jobType string, run func(context.Context) (any, error)) (any, error) {
	return s.runJob(ctx, job{Type: jobType, Run: run})
}

// AuditDay records a finding for every odd-count pair on the given day and
// reports how many were flagged.
func (s *Service) AuditDay(ctx context.Context, day string) (any, error) {
	findings, err := s.Attendance.OddCountDays(ctx, day)
	if err != nil {
		return nil, err
	}
	for _, finding := range findings {
		if err := s.Attendance.RecordFinding(ctx, finding); err != nil {
			return nil, err
		}
	}
	return map[string]any{"day": day, "flagged": len(findings)}, nil
}

func (s *Service) worker(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case j := <-s.queue:
			if _, err := s.runJob(ctx, j); err != nil {
				slog.Warn("job run failed", "jobType", j.Type, "err", err)
			}
		}
	}
}

func (s *Service) runJob(ctx context.Context, j job) (any, error) {
	runID := ""
	if err := s.DB.QueryRow(ctx, `
		INSERT INTO job_runs (job_type, status)
		VALUES ($1, $2)
		RETURNING id
	`, j.Type, "running").Scan(&runID); err != nil {
		slog.Warn("job run insert failed", "err", err)
	}

	details, err := j.Run(ctx)
	status := "completed"
	if err != nil {
		status = "failed"
	}
	detailsJSON, marshalErr := json.Marshal(details)
	if marshalErr != nil {
		slog.Warn("job details marshal failed", "err", marshalErr)
		detailsJSON = []byte("{}")
	}
	if runID != "" {
		if _, updErr := s.DB.Exec(ctx, `
			UPDATE job_runs
			SET status = $1, details_json = $2, completed_at = now()
			WHERE id = $3
		`, status, detailsJSON, runID); updErr != nil {
			slog.Warn("job run update failed", "err", updErr)
		}
	}
	return details, err
}

func (s *Service) scheduleAudit(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
			s.Enqueue(JobAttendanceAudit, func(ctx context.Context) (any, error) {
				return s.AuditDay(ctx, yesterday)
			})
		}
	}
}
