package document

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	cryptoutil "osgb/internal/platform/crypto"
)

type Service struct {
	Store      StoreAPI
	Crypto     *cryptoutil.Service
	StorageDir string
}

func NewService(store StoreAPI, crypto *cryptoutil.Service, storageDir string) *Service {
	return &Service{Store: store, Crypto: crypto, StorageDir: storageDir}
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]Document, error) {
	return s.Store.List(ctx, limit, offset)
}

func (s *Service) Get(ctx context.Context, id int64) (Document, error) {
	return s.Store.Get(ctx, id)
}

// Filtered loads all documents and applies the in-memory criteria; the
// derived statistics endpoints share the same snapshot.
func (s *Service) Filtered(ctx context.Context, criteria Criteria) ([]Document, error) {
	records, err := s.Store.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return FilterDocuments(records, criteria), nil
}

func (s *Service) Stats(ctx context.Context, criteria Criteria, now time.Time) (Summary, error) {
	records, err := s.Filtered(ctx, criteria)
	if err != nil {
		return Summary{}, err
	}
	return AggregateDocuments(records, now), nil
}

// Upload persists the file under a generated name, encrypted when a data key
// is configured, and records the metadata row.
func (s *Service) Upload(ctx context.Context, payload Upload) (int64, error) {
	if !payload.Category.Valid() {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCategory, payload.Category)
	}

	dir := filepath.Join(s.StorageDir, "documents")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, err
	}

	data := payload.Data
	if s.Crypto != nil {
		encrypted, err := s.Crypto.Encrypt(data)
		if err != nil {
			return 0, err
		}
		data = encrypted
	}

	storedName := uuid.NewString() + filepath.Ext(payload.FileName)
	path := filepath.Join(dir, storedName)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return 0, err
	}

	id, err := s.Store.Create(ctx, Document{
		Title:       payload.Title,
		FileName:    payload.FileName,
		FileURL:     path,
		FileSize:    int64(len(payload.Data)),
		FileType:    payload.FileType,
		Category:    payload.Category,
		Status:      StatusActive,
		CompanyID:   payload.CompanyID,
		WorkerID:    payload.WorkerID,
		ScreeningID: payload.ScreeningID,
		ExpiryDate:  payload.ExpiryDate,
	})
	if err != nil {
		_ = os.Remove(path)
		return 0, err
	}
	return id, nil
}

// Download returns the decrypted file contents and the metadata row.
func (s *Service) Download(ctx context.Context, id int64) (Document, []byte, error) {
	record, err := s.Store.Get(ctx, id)
	if err != nil {
		return Document{}, nil, err
	}
	data, err := os.ReadFile(record.FileURL)
	if err != nil {
		return Document{}, nil, err
	}
	if s.Crypto != nil {
		data, err = s.Crypto.Decrypt(data)
		if err != nil {
			return Document{}, nil, err
		}
	}
	return record, data, nil
}

// Archive is the delete operation: documents are never purged, only moved to
// archived status.
func (s *Service) Archive(ctx context.Context, id int64) error {
	return s.Store.UpdateStatus(ctx, id, StatusArchived)
}

// Expiring returns documents the classifier flags, paired with their derived
// state; the persisted status is reported alongside, never reconciled here.
func (s *Service) Expiring(ctx context.Context, now time.Time) ([]ExpiringDocument, error) {
	records, err := s.Store.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	var out []ExpiringDocument
	for _, record := range records {
		info := ClassifyExpiry(record.ExpiryDate, now)
		if info.IsExpired || info.IsExpiringSoon {
			out = append(out, ExpiringDocument{Document: record, Expiry: info})
		}
	}
	return out, nil
}

type ExpiringDocument struct {
	Document Document   `json:"document"`
	Expiry   ExpiryInfo `json:"expiry"`
}

// SweepExpired flips active documents whose derived classification says
// expired. Run by the background job; returns what it flipped so the caller
// can notify.
func (s *Service) SweepExpired(ctx context.Context, now time.Time) ([]Document, error) {
	records, err := s.Store.ListWithExpiry(ctx)
	if err != nil {
		return nil, err
	}

	var flipped []Document
	for _, record := range records {
		info := ClassifyExpiry(record.ExpiryDate, now)
		if !info.IsExpired {
			continue
		}
		if err := s.Store.MarkExpired(ctx, record.ID); err != nil {
			return flipped, err
		}
		record.Status = StatusExpired
		flipped = append(flipped, record)
	}
	return flipped, nil
}
