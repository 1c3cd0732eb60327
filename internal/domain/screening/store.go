package screening

import (
	"context"
	"time"
)

type StoreAPI interface {
	List(ctx context.Context, limit, offset int) ([]Screening, error)
	ListAll(ctx context.Context) ([]Screening, error)
	ListByDateRange(ctx context.Context, start, end time.Time) ([]Screening, error)
	ListByDate(ctx context.Context, date time.Time) ([]Screening, error)
	Get(ctx context.Context, id int64) (Screening, error)
	Create(ctx context.Context, payload Screening) (int64, error)
	Update(ctx context.Context, payload Screening) error
	UpdateStatus(ctx context.Context, id int64, status Status) error
	AssignStaff(ctx context.Context, screeningID, userID int64) (int64, error)
	UnassignStaff(ctx context.Context, assignmentID int64) error
	ListStaff(ctx context.Context, screeningID int64) ([]StaffAssignment, error)
	AssignTest(ctx context.Context, screeningID, healthTestID int64) (int64, error)
	UnassignTest(ctx context.Context, assignmentID int64) error
	ListTests(ctx context.Context, screeningID int64) ([]TestAssignment, error)
}
