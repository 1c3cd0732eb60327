package screening

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"

	"osgb/internal/platform/querier"
)

type execQuerier struct {
	querier.Querier
	tag pgconn.CommandTag
	err error
}

func (q *execQuerier) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return q.tag, q.err
}

func TestUnassignMissingAssignmentReturnsNotFound(t *testing.T) {
	store := NewStore(&execQuerier{tag: pgconn.NewCommandTag("DELETE 0")})

	if err := store.UnassignStaff(context.Background(), 99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("UnassignStaff: expected ErrNotFound, got %v", err)
	}
	if err := store.UnassignTest(context.Background(), 99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("UnassignTest: expected ErrNotFound, got %v", err)
	}
}

func TestUnassignExistingAssignment(t *testing.T) {
	store := NewStore(&execQuerier{tag: pgconn.NewCommandTag("DELETE 1")})

	if err := store.UnassignStaff(context.Background(), 1); err != nil {
		t.Fatalf("UnassignStaff: unexpected error: %v", err)
	}
	if err := store.UnassignTest(context.Background(), 1); err != nil {
		t.Fatalf("UnassignTest: unexpected error: %v", err)
	}
}
