package screening

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"osgb/internal/platform/querier"
)

type Store struct {
	DB querier.Querier
}

func NewStore(db querier.Querier) *Store {
	return &Store{DB: db}
}

const selectColumns = `
    s.id, s.company_id, c.name, s.participant_name, s.date,
    s.time_start, s.time_end, s.employee_count, s.type, s.status,
    COALESCE(s.notes, ''), s.created_at`

func (s *Store) List(ctx context.Context, limit, offset int) ([]Screening, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+selectColumns+`
    FROM screenings s
    JOIN companies c ON s.company_id = c.id
    ORDER BY s.date DESC, s.time_start DESC
    LIMIT $1 OFFSET $2
  `, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanScreenings(rows)
}

func (s *Store) ListAll(ctx context.Context) ([]Screening, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+selectColumns+`
    FROM screenings s
    JOIN companies c ON s.company_id = c.id
    ORDER BY s.date, s.time_start, s.id
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanScreenings(rows)
}

func (s *Store) ListByDateRange(ctx context.Context, start, end time.Time) ([]Screening, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+selectColumns+`
    FROM screenings s
    JOIN companies c ON s.company_id = c.id
    WHERE s.date >= $1 AND s.date <= $2
    ORDER BY s.date, s.time_start, s.id
  `, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanScreenings(rows)
}

func (s *Store) ListByDate(ctx context.Context, date time.Time) ([]Screening, error) {
	return s.ListByDateRange(ctx, date, date)
}

func (s *Store) Get(ctx context.Context, id int64) (Screening, error) {
	var out Screening
	err := s.DB.QueryRow(ctx, `
    SELECT `+selectColumns+`
    FROM screenings s
    JOIN companies c ON s.company_id = c.id
    WHERE s.id = $1
  `, id).Scan(
		&out.ID, &out.CompanyID, &out.CompanyName, &out.ParticipantName, &out.Date,
		&out.TimeStart, &out.TimeEnd, &out.EmployeeCount, &out.Type, &out.Status,
		&out.Notes, &out.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return Screening{}, ErrNotFound
	}
	return out, err
}

func (s *Store) Create(ctx context.Context, payload Screening) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO screenings (company_id, participant_name, date, time_start, time_end, employee_count, type, status, notes)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
    RETURNING id
  `, payload.CompanyID, payload.ParticipantName, payload.Date, payload.TimeStart, payload.TimeEnd,
		payload.EmployeeCount, payload.Type, payload.Status, nullIfEmpty(payload.Notes)).Scan(&id)
	return id, err
}

func (s *Store) Update(ctx context.Context, payload Screening) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE screenings
    SET participant_name = $2, date = $3, time_start = $4, time_end = $5,
        employee_count = $6, type = $7, notes = $8
    WHERE id = $1
  `, payload.ID, payload.ParticipantName, payload.Date, payload.TimeStart, payload.TimeEnd,
		payload.EmployeeCount, payload.Type, nullIfEmpty(payload.Notes))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) UpdateStatus(ctx context.Context, id int64, status Status) error {
	tag, err := s.DB.Exec(ctx, "UPDATE screenings SET status = $2 WHERE id = $1", id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) AssignStaff(ctx context.Context, screeningID, userID int64) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO screening_staff (screening_id, user_id)
    VALUES ($1,$2)
    RETURNING id
  `, screeningID, userID).Scan(&id)
	return id, err
}

func (s *Store) UnassignStaff(ctx context.Context, assignmentID int64) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM screening_staff WHERE id = $1", assignmentID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) ListStaff(ctx context.Context, screeningID int64) ([]StaffAssignment, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT a.id, a.screening_id, a.user_id, u.full_name, a.assigned_at
    FROM screening_staff a
    JOIN users u ON a.user_id = u.id
    WHERE a.screening_id = $1
    ORDER BY a.assigned_at
  `, screeningID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []StaffAssignment
	for rows.Next() {
		var a StaffAssignment
		if err := rows.Scan(&a.ID, &a.ScreeningID, &a.UserID, &a.UserName, &a.AssignedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

func (s *Store) AssignTest(ctx context.Context, screeningID, healthTestID int64) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO screening_tests (screening_id, health_test_id)
    VALUES ($1,$2)
    RETURNING id
  `, screeningID, healthTestID).Scan(&id)
	return id, err
}

func (s *Store) UnassignTest(ctx context.Context, assignmentID int64) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM screening_tests WHERE id = $1", assignmentID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) ListTests(ctx context.Context, screeningID int64) ([]TestAssignment, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT a.id, a.screening_id, a.health_test_id, t.name, a.assigned_at
    FROM screening_tests a
    JOIN health_tests t ON a.health_test_id = t.id
    WHERE a.screening_id = $1
    ORDER BY a.assigned_at
  `, screeningID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []TestAssignment
	for rows.Next() {
		var a TestAssignment
		if err := rows.Scan(&a.ID, &a.ScreeningID, &a.HealthTestID, &a.TestName, &a.AssignedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

func scanScreenings(rows pgx.Rows) ([]Screening, error) {
	var out []Screening
	for rows.Next() {
		var record Screening
		if err := rows.Scan(
			&record.ID, &record.CompanyID, &record.CompanyName, &record.ParticipantName, &record.Date,
			&record.TimeStart, &record.TimeEnd, &record.EmployeeCount, &record.Type, &record.Status,
			&record.Notes, &record.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, record)
	}
	return out, rows.Err()
}

func nullIfEmpty(value string) any {
	if value == "" {
		return nil
	}
	return value
}
