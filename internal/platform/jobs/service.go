package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"osgb/internal/domain/document"
	"osgb/internal/domain/notifications"
	"osgb/internal/domain/screening"
	"osgb/internal/platform/config"
)

const (
	JobExpirySweep        = "document_expiry_sweep"
	JobScreeningReminders = "screening_reminders"
)

type Service struct {
	DB         *pgxpool.Pool
	Cfg        config.Config
	Documents  *document.Service
	Screenings screening.StoreAPI
	Notifier   *notifications.Service
	queue      chan job
}

type job struct {
	Type string
	Run  func(context.Context) (any, error)
}

func New(db *pgxpool.Pool, cfg config.Config, docs *document.Service, screenings screening.StoreAPI, notifier *notifications.Service) *Service {
	return &Service{
		DB:         db,
		Cfg:        cfg,
		Documents:  docs,
		Screenings: screenings,
		Notifier:   notifier,
		queue:      make(chan job, 128),
	}
}

func (s *Service) Start(ctx context.Context) {
	go s.worker(ctx)
	if s.Cfg.ExpirySweepInterval > 0 {
		go s.scheduleExpirySweep(ctx, s.Cfg.ExpirySweepInterval)
	}
	if s.Cfg.ReminderInterval > 0 {
		go s.scheduleReminders(ctx, s.Cfg.ReminderInterval)
	}
}

func (s *Service) Enqueue(jobType string, run func(context.Context) (any, error)) {
	select {
	case s.queue <- job{Type: jobType, Run: run}:
	default:
		slog.Warn("job queue full", "jobType", jobType)
	}
}

func (s *Service) RunNow(ctx context.Context, jobType string, run func(context.Context) (any, error)) (any, error) {
	return s.runJob(ctx, job{Type: jobType, Run: run})
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
	var runID int64
	if err := s.DB.QueryRow(ctx, `
    INSERT INTO job_runs (job_type, status)
    VALUES ($1,$2)
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
	if runID != 0 {
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

func (s *Service) scheduleExpirySweep(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Enqueue(JobExpirySweep, func(ctx context.Context) (any, error) {
				return s.SweepExpiredDocuments(ctx, time.Now().UTC())
			})
		}
	}
}

// SweepExpiredDocuments flips documents past their expiry date and notifies
// staff about each one. Exposed so the admin API can trigger a sweep on
// demand.
func (s *Service) SweepExpiredDocuments(ctx context.Context, now time.Time) (map[string]any, error) {
	flipped, err := s.Documents.SweepExpired(ctx, now)
	if err != nil {
		return nil, err
	}
	if len(flipped) > 0 {
		staff, err := s.staffUserIDs(ctx)
		if err != nil {
			slog.Warn("expiry sweep staff lookup failed", "err", err)
		} else {
			for _, doc := range flipped {
				title := fmt.Sprintf("Document expired: %s", doc.Title)
				body := fmt.Sprintf("The document %q (category %s) passed its expiry date and was marked expired.", doc.Title, doc.Category)
				s.Notifier.NotifyAll(ctx, staff, notifications.TypeDocumentExpired, title, body)
			}
		}
	}
	return map[string]any{"expired": len(flipped)}, nil
}

func (s *Service) scheduleReminders(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Enqueue(JobScreeningReminders, func(ctx context.Context) (any, error) {
				return s.SendScreeningReminders(ctx, time.Now().UTC())
			})
		}
	}
}

// SendScreeningReminders notifies assigned staff about screenings scheduled
// for the next day. A screening is only reminded about once; delivery is
// tracked in reminder_log keyed by screening id.
func (s *Service) SendScreeningReminders(ctx context.Context, now time.Time) (map[string]any, error) {
	tomorrow := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
	items, err := s.Screenings.ListByDate(ctx, tomorrow)
	if err != nil {
		return nil, err
	}

	sent := 0
	for _, item := range items {
		if item.Status != screening.StatusScheduled {
			continue
		}
		fresh, err := s.markReminded(ctx, item.ID)
		if err != nil {
			slog.Warn("reminder log update failed", "screeningId", item.ID, "err", err)
			continue
		}
		if !fresh {
			continue
		}
		assignments, err := s.Screenings.ListStaff(ctx, item.ID)
		if err != nil {
			slog.Warn("reminder staff lookup failed", "screeningId", item.ID, "err", err)
			continue
		}
		title := fmt.Sprintf("Screening tomorrow: %s", item.CompanyName)
		body := fmt.Sprintf("Screening for %s is scheduled tomorrow from %s to %s.", item.CompanyName, item.TimeStart, item.TimeEnd)
		for _, a := range assignments {
			if err := s.Notifier.Notify(ctx, a.UserID, notifications.TypeScreeningReminder, title, body); err != nil {
				slog.Warn("reminder notification failed", "screeningId", item.ID, "userId", a.UserID, "err", err)
				continue
			}
			sent++
		}
	}
	return map[string]any{"screenings": len(items), "remindersSent": sent}, nil
}

func (s *Service) markReminded(ctx context.Context, screeningID int64) (bool, error) {
	tag, err := s.DB.Exec(ctx, `
    INSERT INTO reminder_log (screening_id)
    VALUES ($1)
    ON CONFLICT (screening_id) DO NOTHING
  `, screeningID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (s *Service) staffUserIDs(ctx context.Context) ([]int64, error) {
	rows, err := s.DB.Query(ctx, `SELECT id FROM users WHERE disabled_at IS NULL`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
