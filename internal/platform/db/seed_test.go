package db

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"osgb/internal/platform/querier"
)

type fakeRow struct{ err error }

func (r fakeRow) Scan(dest ...any) error { return r.err }

type seedQuerier struct {
	querier.Querier
	rowErr error
	execs  int
}

func (q *seedQuerier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return fakeRow{err: q.rowErr}
}

func (q *seedQuerier) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	q.execs++
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func TestEnsureAdminUserCreatesWhenMissing(t *testing.T) {
	q := &seedQuerier{rowErr: pgx.ErrNoRows}
	if err := ensureAdminUser(context.Background(), q, "admin@clinic.example", "changeme123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.execs != 1 {
		t.Fatalf("execs = %d, want 1 insert", q.execs)
	}
}

func TestEnsureAdminUserSkipsExisting(t *testing.T) {
	q := &seedQuerier{}
	if err := ensureAdminUser(context.Background(), q, "admin@clinic.example", "changeme123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.execs != 0 {
		t.Fatalf("execs = %d, want no insert for existing user", q.execs)
	}
}

func TestEnsureAdminUserPropagatesLookupFailure(t *testing.T) {
	lookupErr := errors.New("connection reset")
	q := &seedQuerier{rowErr: lookupErr}
	err := ensureAdminUser(context.Background(), q, "admin@clinic.example", "changeme123")
	if !errors.Is(err, lookupErr) {
		t.Fatalf("expected lookup error surfaced, got %v", err)
	}
	if q.execs != 0 {
		t.Fatalf("execs = %d, a failed lookup must not fall through to insert", q.execs)
	}
}

func TestEnsureAdminUserNoopWithoutCredentials(t *testing.T) {
	q := &seedQuerier{rowErr: pgx.ErrNoRows}
	if err := ensureAdminUser(context.Background(), q, "", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.execs != 0 {
		t.Fatalf("execs = %d, want 0 without seed credentials", q.execs)
	}
}
