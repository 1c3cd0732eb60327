package screening

import (
	"context"
	"fmt"
	"time"
)

type Service struct {
	Store StoreAPI
}

func NewService(store StoreAPI) *Service {
	return &Service{Store: store}
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]Screening, error) {
	return s.Store.List(ctx, limit, offset)
}

func (s *Service) Get(ctx context.Context, id int64) (Screening, error) {
	return s.Store.Get(ctx, id)
}

// Filtered loads the full set and applies the in-memory criteria, preserving
// store order.
func (s *Service) Filtered(ctx context.Context, criteria Criteria) ([]Screening, error) {
	records, err := s.Store.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return FilterScreenings(records, criteria), nil
}

// Book validates and creates a screening in scheduled state.
func (s *Service) Book(ctx context.Context, payload Screening) (int64, error) {
	if err := ValidateTimeRange(payload.TimeStart, payload.TimeEnd); err != nil {
		return 0, err
	}
	if !payload.Type.Valid() {
		return 0, fmt.Errorf("unknown screening type %q", payload.Type)
	}
	if payload.EmployeeCount <= 0 {
		return 0, ErrInvalidEmployeeCount
	}
	payload.Status = StatusScheduled
	return s.Store.Create(ctx, payload)
}

func (s *Service) Update(ctx context.Context, payload Screening) error {
	if err := ValidateTimeRange(payload.TimeStart, payload.TimeEnd); err != nil {
		return err
	}
	if !payload.Type.Valid() {
		return fmt.Errorf("unknown screening type %q", payload.Type)
	}
	if payload.EmployeeCount <= 0 {
		return ErrInvalidEmployeeCount
	}
	return s.Store.Update(ctx, payload)
}

// Transition moves a screening out of scheduled state. No transition ever
// deletes; a cancelled screening stays on record.
func (s *Service) Transition(ctx context.Context, id int64, to Status) (Screening, error) {
	current, err := s.Store.Get(ctx, id)
	if err != nil {
		return Screening{}, err
	}
	if !ValidTransition(current.Status, to) {
		return Screening{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, to)
	}
	if err := s.Store.UpdateStatus(ctx, id, to); err != nil {
		return Screening{}, err
	}
	current.Status = to
	return current, nil
}

// Conflicts loads the same-day pool and runs the overlap detector against it.
func (s *Service) Conflicts(ctx context.Context, id int64) ([]Screening, error) {
	target, err := s.Store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	pool, err := s.Store.ListByDate(ctx, target.Date)
	if err != nil {
		return nil, err
	}
	return DetectConflicts(target, pool), nil
}

// CheckSlot runs conflict detection for a booking that does not exist yet.
func (s *Service) CheckSlot(ctx context.Context, candidate Screening) ([]Screening, error) {
	if err := ValidateTimeRange(candidate.TimeStart, candidate.TimeEnd); err != nil {
		return nil, err
	}
	pool, err := s.Store.ListByDate(ctx, candidate.Date)
	if err != nil {
		return nil, err
	}
	return DetectConflicts(candidate, pool), nil
}

func (s *Service) Calendar(ctx context.Context, start, end time.Time) ([]Screening, error) {
	return s.Store.ListByDateRange(ctx, start, end)
}

// Stats filters in memory and aggregates; derived values are recomputed from
// source rows on every call, nothing is cached.
func (s *Service) Stats(ctx context.Context, criteria Criteria) (Summary, error) {
	records, err := s.Store.ListAll(ctx)
	if err != nil {
		return Summary{}, err
	}
	return AggregateScreenings(FilterScreenings(records, criteria)), nil
}

// Trend compares the current window against the preceding window of equal width.
func (s *Service) Trend(ctx context.Context, current, previous Window) (Trend, error) {
	currentRecords, err := s.Store.ListByDateRange(ctx, current.Start, current.End)
	if err != nil {
		return Trend{}, err
	}
	previousRecords, err := s.Store.ListByDateRange(ctx, previous.Start, previous.End)
	if err != nil {
		return Trend{}, err
	}
	return CompareTrend(currentRecords, previousRecords), nil
}

func (s *Service) AssignStaff(ctx context.Context, screeningID, userID int64) (int64, error) {
	if _, err := s.Store.Get(ctx, screeningID); err != nil {
		return 0, err
	}
	return s.Store.AssignStaff(ctx, screeningID, userID)
}

func (s *Service) UnassignStaff(ctx context.Context, assignmentID int64) error {
	return s.Store.UnassignStaff(ctx, assignmentID)
}

func (s *Service) ListStaff(ctx context.Context, screeningID int64) ([]StaffAssignment, error) {
	return s.Store.ListStaff(ctx, screeningID)
}

func (s *Service) AssignTest(ctx context.Context, screeningID, healthTestID int64) (int64, error) {
	if _, err := s.Store.Get(ctx, screeningID); err != nil {
		return 0, err
	}
	return s.Store.AssignTest(ctx, screeningID, healthTestID)
}

func (s *Service) UnassignTest(ctx context.Context, assignmentID int64) error {
	return s.Store.UnassignTest(ctx, assignmentID)
}

func (s *Service) ListTests(ctx context.Context, screeningID int64) ([]TestAssignment, error) {
	return s.Store.ListTests(ctx, screeningID)
}
