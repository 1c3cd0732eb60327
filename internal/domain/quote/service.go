package quote

import (
	"context"
	"errors"
	"fmt"
)

type Service struct {
	Store *Store
}

func NewService(store *Store) *Service {
	return &Service{Store: store}
}

func (s *Service) List(ctx context.Context, companyID int64, limit, offset int) ([]Quote, error) {
	return s.Store.List(ctx, companyID, limit, offset)
}

func (s *Service) Get(ctx context.Context, id int64) (Quote, error) {
	return s.Store.Get(ctx, id)
}

// Create computes totals server-side; client-sent totals are ignored.
func (s *Service) Create(ctx context.Context, payload Quote) (int64, error) {
	if len(payload.Lines) == 0 {
		return 0, errors.New("quote requires at least one line")
	}
	for _, line := range payload.Lines {
		if line.Quantity <= 0 {
			return 0, fmt.Errorf("line %q: quantity must be positive", line.Service)
		}
		if line.UnitPrice < 0 {
			return 0, fmt.Errorf("line %q: unit price must not be negative", line.Service)
		}
	}

	payload.Status = StatusDraft
	payload.Totals = ComputeTotals(payload.Lines, payload.DiscountPercent, payload.VATPercent)
	return s.Store.Create(ctx, payload)
}

var transitions = map[Status][]Status{
	StatusDraft: {StatusSent},
	StatusSent:  {StatusAccepted, StatusRejected},
}

func (s *Service) Transition(ctx context.Context, id int64, to Status) (Quote, error) {
	current, err := s.Store.Get(ctx, id)
	if err != nil {
		return Quote{}, err
	}

	allowed := false
	for _, candidate := range transitions[current.Status] {
		if candidate == to {
			allowed = true
			break
		}
	}
	if !allowed {
		return Quote{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, to)
	}

	if err := s.Store.UpdateStatus(ctx, id, to); err != nil {
		return Quote{}, err
	}
	current.Status = to
	return current, nil
}
