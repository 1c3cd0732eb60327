package document

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"osgb/internal/platform/querier"
)

type StoreAPI interface {
	List(ctx context.Context, limit, offset int) ([]Document, error)
	ListAll(ctx context.Context) ([]Document, error)
	Get(ctx context.Context, id int64) (Document, error)
	Create(ctx context.Context, payload Document) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status Status) error
	ListWithExpiry(ctx context.Context) ([]Document, error)
	MarkExpired(ctx context.Context, id int64) error
}

type Store struct {
	DB querier.Querier
}

func NewStore(db querier.Querier) *Store {
	return &Store{DB: db}
}

const selectColumns = `
    d.id, d.title, d.file_name, d.file_url, d.file_size, d.file_type,
    d.category, d.status, d.company_id, COALESCE(c.name, ''), d.worker_id,
    d.screening_id, d.expiry_date, d.upload_date`

func (s *Store) List(ctx context.Context, limit, offset int) ([]Document, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+selectColumns+`
    FROM documents d
    LEFT JOIN companies c ON d.company_id = c.id
    ORDER BY d.upload_date DESC
    LIMIT $1 OFFSET $2
  `, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanDocuments(rows)
}

func (s *Store) ListAll(ctx context.Context) ([]Document, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+selectColumns+`
    FROM documents d
    LEFT JOIN companies c ON d.company_id = c.id
    ORDER BY d.upload_date, d.id
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanDocuments(rows)
}

func (s *Store) Get(ctx context.Context, id int64) (Document, error) {
	var out Document
	err := s.DB.QueryRow(ctx, `
    SELECT `+selectColumns+`
    FROM documents d
    LEFT JOIN companies c ON d.company_id = c.id
    WHERE d.id = $1
  `, id).Scan(
		&out.ID, &out.Title, &out.FileName, &out.FileURL, &out.FileSize, &out.FileType,
		&out.Category, &out.Status, &out.CompanyID, &out.CompanyName, &out.WorkerID,
		&out.ScreeningID, &out.ExpiryDate, &out.UploadDate,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return Document{}, ErrNotFound
	}
	return out, err
}

func (s *Store) Create(ctx context.Context, payload Document) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO documents (title, file_name, file_url, file_size, file_type, category, status, company_id, worker_id, screening_id, expiry_date)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
    RETURNING id
  `, payload.Title, payload.FileName, payload.FileURL, payload.FileSize, payload.FileType,
		payload.Category, payload.Status, payload.CompanyID, payload.WorkerID, payload.ScreeningID, payload.ExpiryDate).Scan(&id)
	return id, err
}

func (s *Store) UpdateStatus(ctx context.Context, id int64, status Status) error {
	tag, err := s.DB.Exec(ctx, "UPDATE documents SET status = $2 WHERE id = $1", id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ListWithExpiry returns the active documents that have an expiry date, for
// the sweep job.
func (s *Store) ListWithExpiry(ctx context.Context) ([]Document, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+selectColumns+`
    FROM documents d
    LEFT JOIN companies c ON d.company_id = c.id
    WHERE d.expiry_date IS NOT NULL AND d.status = $1
    ORDER BY d.expiry_date
  `, StatusActive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanDocuments(rows)
}

func (s *Store) MarkExpired(ctx context.Context, id int64) error {
	_, err := s.DB.Exec(ctx, "UPDATE documents SET status = $2 WHERE id = $1 AND status = $3", id, StatusExpired, StatusActive)
	return err
}

func scanDocuments(rows pgx.Rows) ([]Document, error) {
	var out []Document
	for rows.Next() {
		var record Document
		if err := rows.Scan(
			&record.ID, &record.Title, &record.FileName, &record.FileURL, &record.FileSize, &record.FileType,
			&record.Category, &record.Status, &record.CompanyID, &record.CompanyName, &record.WorkerID,
			&record.ScreeningID, &record.ExpiryDate, &record.UploadDate,
		); err != nil {
			return nil, err
		}
		out = append(out, record)
	}
	return out, rows.Err()
}
