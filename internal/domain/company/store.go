package company

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"

	"osgb/internal/platform/querier"
)

type Store struct {
	DB querier.Querier
}

func NewStore(db querier.Querier) *Store {
	return &Store{DB: db}
}

func (s *Store) List(ctx context.Context, search string, limit, offset int) ([]Company, error) {
	query := `
    SELECT c.id, c.name, c.address, c.contact_person, c.phone, c.email, c.active, c.created_at,
           (SELECT COUNT(1) FROM workers w WHERE w.company_id = c.id AND w.active) AS worker_count
    FROM companies c
  `
	args := []any{}
	if search = strings.TrimSpace(search); search != "" {
		query += " WHERE c.name ILIKE $1 OR c.contact_person ILIKE $1"
		args = append(args, "%"+search+"%")
	}
	query += " ORDER BY c.name LIMIT $" + strconv.Itoa(len(args)+1) + " OFFSET $" + strconv.Itoa(len(args)+2)
	args = append(args, limit, offset)

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Company
	for rows.Next() {
		var c Company
		if err := rows.Scan(&c.ID, &c.Name, &c.Address, &c.ContactPerson, &c.Phone, &c.Email, &c.Active, &c.CreatedAt, &c.WorkerCount); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *Store) Get(ctx context.Context, id int64) (Company, error) {
	var c Company
	err := s.DB.QueryRow(ctx, `
    SELECT id, name, address, contact_person, phone, email, active, created_at
    FROM companies
    WHERE id = $1
  `, id).Scan(&c.ID, &c.Name, &c.Address, &c.ContactPerson, &c.Phone, &c.Email, &c.Active, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Company{}, ErrNotFound
	}
	return c, err
}

func (s *Store) Create(ctx context.Context, payload Company) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO companies (name, address, contact_person, phone, email)
    VALUES ($1,$2,$3,$4,$5)
    RETURNING id
  `, payload.Name, payload.Address, payload.ContactPerson, payload.Phone, payload.Email).Scan(&id)
	return id, err
}

func (s *Store) Update(ctx context.Context, payload Company) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE companies
    SET name = $2, address = $3, contact_person = $4, phone = $5, email = $6
    WHERE id = $1
  `, payload.ID, payload.Name, payload.Address, payload.ContactPerson, payload.Phone, payload.Email)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) SetActive(ctx context.Context, id int64, active bool) error {
	tag, err := s.DB.Exec(ctx, "UPDATE companies SET active = $2 WHERE id = $1", id, active)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) ListWorkers(ctx context.Context, companyID int64, limit, offset int) ([]Worker, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, company_id, first_name, last_name, COALESCE(national_id, ''), position, department,
           birth_date, hire_date, active, created_at
    FROM workers
    WHERE company_id = $1
    ORDER BY last_name, first_name
    LIMIT $2 OFFSET $3
  `, companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Worker
	for rows.Next() {
		var w Worker
		if err := rows.Scan(&w.ID, &w.CompanyID, &w.FirstName, &w.LastName, &w.NationalID, &w.Position, &w.Department,
			&w.BirthDate, &w.HireDate, &w.Active, &w.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

func (s *Store) CreateWorker(ctx context.Context, payload Worker) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO workers (company_id, first_name, last_name, national_id, position, department, birth_date, hire_date)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
    RETURNING id
  `, payload.CompanyID, payload.FirstName, payload.LastName, nullIfEmpty(payload.NationalID),
		payload.Position, payload.Department, payload.BirthDate, payload.HireDate).Scan(&id)
	return id, err
}

func (s *Store) UpdateWorker(ctx context.Context, payload Worker) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE workers
    SET first_name = $2, last_name = $3, national_id = $4, position = $5, department = $6,
        birth_date = $7, hire_date = $8
    WHERE id = $1
  `, payload.ID, payload.FirstName, payload.LastName, nullIfEmpty(payload.NationalID),
		payload.Position, payload.Department, payload.BirthDate, payload.HireDate)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) SetWorkerActive(ctx context.Context, id int64, active bool) error {
	tag, err := s.DB.Exec(ctx, "UPDATE workers SET active = $2 WHERE id = $1", id, active)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func nullIfEmpty(value string) any {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return value
}
