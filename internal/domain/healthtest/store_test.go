package healthtest

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
}

func (q *execQuerier) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return q.tag, nil
}

func TestUnassignFromCompanyMissingReturnsNotFound(t *testing.T) {
	store := NewStore(&execQuerier{tag: pgconn.NewCommandTag("DELETE 0")})
	if err := store.UnassignFromCompany(context.Background(), 99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	store = NewStore(&execQuerier{tag: pgconn.NewCommandTag("DELETE 1")})
	if err := store.UnassignFromCompany(context.Background(), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
