package db

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"osgb/internal/domain/auth"
	"osgb/internal/platform/config"
	"osgb/internal/platform/querier"
)

func Seed(ctx context.Context, pool *pgxpool.Pool, cfg config.Config) error {
	if err := ensureAdminUser(ctx, pool, cfg.SeedAdminEmail, cfg.SeedAdminPassword); err != nil {
		return err
	}
	return ensureHealthTestCatalog(ctx, pool)
}

func ensureAdminUser(ctx context.Context, db querier.Querier, email, password string) error {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil
	}

	var existing int64
	err := db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&existing)
	if err == nil {
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	_, err = db.Exec(ctx, `
    INSERT INTO users (email, password_hash, full_name, role)
    VALUES ($1, $2, $3, $4)
  `, email, hash, "System Administrator", auth.RoleAdmin)
	return err
}

// Default catalog so a fresh install can assign tests to companies immediately.
var defaultHealthTests = []struct {
	Name     string
	Code     string
	Category string
	Price    float64
}{
	{"Audiometry", "AUDIO", "hearing", 150},
	{"Spirometry", "SPIRO", "respiratory", 175},
	{"Chest X-Ray", "CXR", "imaging", 300},
	{"Complete Blood Count", "CBC", "laboratory", 120},
	{"Visual Acuity", "VISION", "vision", 100},
	{"Electrocardiogram", "ECG", "cardiac", 250},
}

func ensureHealthTestCatalog(ctx context.Context, pool *pgxpool.Pool) error {
	for _, test := range defaultHealthTests {
		_, err := pool.Exec(ctx, `
      INSERT INTO health_tests (name, code, category, price)
      VALUES ($1, $2, $3, $4)
      ON CONFLICT (code) DO NOTHING
    `, test.Name, test.Code, test.Category, test.Price)
		if err != nil {
			return err
		}
	}
	return nil
}
