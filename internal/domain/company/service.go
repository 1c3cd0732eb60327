package company

import (
	"context"
	"errors"
	"strings"
)

type Service struct {
	Store *Store
}

func NewService(store *Store) *Service {
	return &Service{Store: store}
}

func (s *Service) List(ctx context.Context, search string, limit, offset int) ([]Company, error) {
	return s.Store.List(ctx, search, limit, offset)
}

func (s *Service) Get(ctx context.Context, id int64) (Company, error) {
	return s.Store.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, payload Company) (int64, error) {
	if strings.TrimSpace(payload.Name) == "" {
		return 0, errors.New("company name is required")
	}
	return s.Store.Create(ctx, payload)
}

func (s *Service) Update(ctx context.Context, payload Company) error {
	if strings.TrimSpace(payload.Name) == "" {
		return errors.New("company name is required")
	}
	return s.Store.Update(ctx, payload)
}

// Deactivate is the delete operation; companies keep their history.
func (s *Service) Deactivate(ctx context.Context, id int64) error {
	return s.Store.SetActive(ctx, id, false)
}

func (s *Service) Reactivate(ctx context.Context, id int64) error {
	return s.Store.SetActive(ctx, id, true)
}

func (s *Service) ListWorkers(ctx context.Context, companyID int64, limit, offset int) ([]Worker, error) {
	return s.Store.ListWorkers(ctx, companyID, limit, offset)
}

func (s *Service) CreateWorker(ctx context.Context, payload Worker) (int64, error) {
	if strings.TrimSpace(payload.FirstName) == "" || strings.TrimSpace(payload.LastName) == "" {
		return 0, errors.New("worker name is required")
	}
	if _, err := s.Store.Get(ctx, payload.CompanyID); err != nil {
		return 0, err
	}
	return s.Store.CreateWorker(ctx, payload)
}

func (s *Service) UpdateWorker(ctx context.Context, payload Worker) error {
	if strings.TrimSpace(payload.FirstName) == "" || strings.TrimSpace(payload.LastName) == "" {
		return errors.New("worker name is required")
	}
	return s.Store.UpdateWorker(ctx, payload)
}

func (s *Service) DeactivateWorker(ctx context.Context, id int64) error {
	return s.Store.SetWorkerActive(ctx, id, false)
}
