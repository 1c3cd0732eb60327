package screening

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeStore struct {
	StoreAPI
	records map[int64]Screening
}

func newFakeStore(records ...Screening) *fakeStore {
	store := &fakeStore{records: make(map[int64]Screening)}
	for _, record := range records {
		store.records[record.ID] = record
	}
	return store
}

func (f *fakeStore) Get(ctx context.Context, id int64) (Screening, error) {
	record, ok := f.records[id]
	if !ok {
		return Screening{}, ErrNotFound
	}
	return record, nil
}

func (f *fakeStore) UpdateStatus(ctx context.Context, id int64, status Status) error {
	record, ok := f.records[id]
	if !ok {
		return ErrNotFound
	}
	record.Status = status
	f.records[id] = record
	return nil
}

func (f *fakeStore) ListByDate(ctx context.Context, date time.Time) ([]Screening, error) {
	var out []Screening
	for _, record := range f.records {
		if sameDay(record.Date, date) {
			out = append(out, record)
		}
	}
	return out, nil
}

func (f *fakeStore) Create(ctx context.Context, payload Screening) (int64, error) {
	id := int64(len(f.records) + 1)
	payload.ID = id
	f.records[id] = payload
	return id, nil
}

func (f *fakeStore) stored() []Screening {
	out := make([]Screening, 0, len(f.records))
	for _, record := range f.records {
		out = append(out, record)
	}
	return out
}

func (f *fakeStore) ListAll(ctx context.Context) ([]Screening, error) {
	out := make([]Screening, 0, len(f.records))
	for _, record := range f.records {
		out = append(out, record)
	}
	return out, nil
}

func TestServiceTransition(t *testing.T) {
	store := newFakeStore(Screening{ID: 1, Status: StatusScheduled, Date: day(2024, 1, 10)})
	service := NewService(store)

	updated, err := service.Transition(context.Background(), 1, StatusCompleted)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != StatusCompleted {
		t.Fatalf("expected completed, got %q", updated.Status)
	}

	_, err = service.Transition(context.Background(), 1, StatusCancelled)
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}

	_, err = service.Transition(context.Background(), 99, StatusCompleted)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestServiceConflicts(t *testing.T) {
	store := newFakeStore(
		Screening{ID: 1, Date: day(2024, 1, 10), TimeStart: "09:00", TimeEnd: "10:00", Status: StatusScheduled},
		Screening{ID: 2, Date: day(2024, 1, 10), TimeStart: "09:30", TimeEnd: "10:30", Status: StatusScheduled},
		Screening{ID: 3, Date: day(2024, 1, 11), TimeStart: "09:00", TimeEnd: "10:00", Status: StatusScheduled},
	)
	service := NewService(store)

	conflicts, err := service.Conflicts(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(conflicts) != 1 || conflicts[0].ID != 2 {
		t.Fatalf("expected [2], got %+v", conflicts)
	}
}

func TestServiceBookRejectsBadInput(t *testing.T) {
	service := NewService(newFakeStore())

	_, err := service.Book(context.Background(), Screening{TimeStart: "10:00", TimeEnd: "09:00", Type: TypePeriodic})
	if !errors.Is(err, ErrInvalidTimeRange) {
		t.Fatalf("expected ErrInvalidTimeRange, got %v", err)
	}

	_, err = service.Book(context.Background(), Screening{TimeStart: "09:00", TimeEnd: "10:00", Type: "quarterly"})
	if err == nil {
		t.Fatal("expected error for unknown type")
	}
}

func TestServiceBookRejectsNonPositiveEmployeeCount(t *testing.T) {
	store := newFakeStore()
	service := NewService(store)

	for _, count := range []int{0, -50} {
		_, err := service.Book(context.Background(), Screening{
			CompanyID: 1, TimeStart: "09:00", TimeEnd: "10:00",
			Type: TypePeriodic, EmployeeCount: count,
		})
		if !errors.Is(err, ErrInvalidEmployeeCount) {
			t.Fatalf("count %d: expected ErrInvalidEmployeeCount, got %v", count, err)
		}
	}

	err := service.Update(context.Background(), Screening{
		ID: 1, CompanyID: 1, TimeStart: "09:00", TimeEnd: "10:00",
		Type: TypePeriodic, EmployeeCount: -50,
	})
	if !errors.Is(err, ErrInvalidEmployeeCount) {
		t.Fatalf("update: expected ErrInvalidEmployeeCount, got %v", err)
	}

	// A well-formed booking still goes through, so only conforming counts
	// ever reach the aggregates.
	id, err := service.Book(context.Background(), Screening{
		CompanyID: 1, TimeStart: "09:00", TimeEnd: "10:00",
		Type: TypePeriodic, EmployeeCount: 10,
	})
	if err != nil {
		t.Fatalf("valid booking rejected: %v", err)
	}
	if id != 1 {
		t.Fatalf("expected id 1, got %d", id)
	}
	summary := AggregateScreenings(store.stored())
	if summary.TotalParticipants != 10 {
		t.Fatalf("totalParticipants = %d, want 10", summary.TotalParticipants)
	}
}
