package quote

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"osgb/internal/platform/querier"
)

var (
	ErrNotFound          = errors.New("quote not found")
	ErrInvalidTransition = errors.New("invalid quote status transition")
)

type Store struct {
	DB querier.Querier
}

func NewStore(db querier.Querier) *Store {
	return &Store{DB: db}
}

func (s *Store) List(ctx context.Context, companyID int64, limit, offset int) ([]Quote, error) {
	query := `
    SELECT q.id, q.company_id, c.name, q.status, q.discount_percent, q.vat_percent,
           q.subtotal, q.discount, q.vat, q.grand_total, q.valid_until, q.created_at
    FROM quotes q
    JOIN companies c ON q.company_id = c.id
  `
	args := []any{limit, offset}
	if companyID != 0 {
		query += " WHERE q.company_id = $3"
		args = append(args, companyID)
	}
	query += " ORDER BY q.created_at DESC LIMIT $1 OFFSET $2"

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Quote
	for rows.Next() {
		var q Quote
		if err := rows.Scan(&q.ID, &q.CompanyID, &q.CompanyName, &q.Status, &q.DiscountPercent, &q.VATPercent,
			&q.Totals.Subtotal, &q.Totals.Discount, &q.Totals.VAT, &q.Totals.GrandTotal, &q.ValidUntil, &q.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

func (s *Store) Get(ctx context.Context, id int64) (Quote, error) {
	var q Quote
	err := s.DB.QueryRow(ctx, `
    SELECT q.id, q.company_id, c.name, q.status, q.discount_percent, q.vat_percent,
           q.subtotal, q.discount, q.vat, q.grand_total, q.valid_until, q.created_at
    FROM quotes q
    JOIN companies c ON q.company_id = c.id
    WHERE q.id = $1
  `, id).Scan(&q.ID, &q.CompanyID, &q.CompanyName, &q.Status, &q.DiscountPercent, &q.VATPercent,
		&q.Totals.Subtotal, &q.Totals.Discount, &q.Totals.VAT, &q.Totals.GrandTotal, &q.ValidUntil, &q.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Quote{}, ErrNotFound
	}
	if err != nil {
		return Quote{}, err
	}

	lines, err := s.listLines(ctx, id)
	if err != nil {
		return Quote{}, err
	}
	q.Lines = lines
	return q, nil
}

func (s *Store) listLines(ctx context.Context, quoteID int64) ([]Line, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, quote_id, service, quantity, unit_price
    FROM quote_lines
    WHERE quote_id = $1
    ORDER BY id
  `, quoteID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Line
	for rows.Next() {
		var line Line
		if err := rows.Scan(&line.ID, &line.QuoteID, &line.Service, &line.Quantity, &line.UnitPrice); err != nil {
			return nil, err
		}
		out = append(out, line)
	}
	return out, rows.Err()
}

func (s *Store) Create(ctx context.Context, payload Quote) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO quotes (company_id, status, discount_percent, vat_percent, subtotal, discount, vat, grand_total, valid_until)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
    RETURNING id
  `, payload.CompanyID, payload.Status, payload.DiscountPercent, payload.VATPercent,
		payload.Totals.Subtotal, payload.Totals.Discount, payload.Totals.VAT, payload.Totals.GrandTotal,
		payload.ValidUntil).Scan(&id)
	if err != nil {
		return 0, err
	}

	for _, line := range payload.Lines {
		if _, err := s.DB.Exec(ctx, `
      INSERT INTO quote_lines (quote_id, service, quantity, unit_price)
      VALUES ($1,$2,$3,$4)
    `, id, line.Service, line.Quantity, line.UnitPrice); err != nil {
			return 0, err
		}
	}
	return id, nil
}

func (s *Store) UpdateStatus(ctx context.Context, id int64, status Status) error {
	tag, err := s.DB.Exec(ctx, "UPDATE quotes SET status = $2 WHERE id = $1", id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
