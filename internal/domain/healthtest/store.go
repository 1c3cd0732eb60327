package healthtest

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"osgb/internal/platform/querier"
)

var ErrNotFound = errors.New("health test not found")

type Store struct {
	DB querier.Querier
}

func NewStore(db querier.Querier) *Store {
	return &Store{DB: db}
}

func (s *Store) List(ctx context.Context) ([]HealthTest, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, name, code, category, price, created_at
    FROM health_tests
    ORDER BY name
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []HealthTest
	for rows.Next() {
		var t HealthTest
		if err := rows.Scan(&t.ID, &t.Name, &t.Code, &t.Category, &t.Price, &t.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (s *Store) Get(ctx context.Context, id int64) (HealthTest, error) {
	var t HealthTest
	err := s.DB.QueryRow(ctx, `
    SELECT id, name, code, category, price, created_at
    FROM health_tests
    WHERE id = $1
  `, id).Scan(&t.ID, &t.Name, &t.Code, &t.Category, &t.Price, &t.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return HealthTest{}, ErrNotFound
	}
	return t, err
}

func (s *Store) Create(ctx context.Context, payload HealthTest) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO health_tests (name, code, category, price)
    VALUES ($1,$2,$3,$4)
    RETURNING id
  `, payload.Name, payload.Code, payload.Category, payload.Price).Scan(&id)
	return id, err
}

func (s *Store) Update(ctx context.Context, payload HealthTest) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE health_tests
    SET name = $2, code = $3, category = $4, price = $5
    WHERE id = $1
  `, payload.ID, payload.Name, payload.Code, payload.Category, payload.Price)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) AssignToCompany(ctx context.Context, companyID, healthTestID int64) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO company_tests (company_id, health_test_id)
    VALUES ($1,$2)
    ON CONFLICT (company_id, health_test_id) DO UPDATE SET assigned_at = company_tests.assigned_at
    RETURNING id
  `, companyID, healthTestID).Scan(&id)
	return id, err
}

func (s *Store) UnassignFromCompany(ctx context.Context, assignmentID int64) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM company_tests WHERE id = $1", assignmentID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) ListForCompany(ctx context.Context, companyID int64) ([]CompanyAssignment, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT a.id, a.company_id, a.health_test_id, t.name, a.assigned_at
    FROM company_tests a
    JOIN health_tests t ON a.health_test_id = t.id
    WHERE a.company_id = $1
    ORDER BY a.assigned_at
  `, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []CompanyAssignment
	for rows.Next() {
		var a CompanyAssignment
		if err := rows.Scan(&a.ID, &a.CompanyID, &a.HealthTestID, &a.TestName, &a.AssignedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
