package auth

import (
	"context"
	"time"

	"osgb/internal/platform/querier"
)

type Store struct {
	DB querier.Querier
}

func NewStore(db querier.Querier) *Store {
	return &Store{DB: db}
}

type AuthUser struct {
	ID           int64
	Email        string
	FullName     string
	Role         string
	PasswordHash string
}

func (s *Store) FindUserByEmail(ctx context.Context, email string) (AuthUser, error) {
	var out AuthUser
	err := s.DB.QueryRow(ctx, `
    SELECT id, email, full_name, role, password_hash
    FROM users
    WHERE email = $1 AND disabled_at IS NULL
  `, email).Scan(&out.ID, &out.Email, &out.FullName, &out.Role, &out.PasswordHash)
	return out, err
}

func (s *Store) UpdateLastLogin(ctx context.Context, userID int64) error {
	_, err := s.DB.Exec(ctx, "UPDATE users SET last_login = now() WHERE id = $1", userID)
	return err
}

func (s *Store) CreateResetToken(ctx context.Context, userID int64, tokenHash string, expires time.Time) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO password_reset_tokens (user_id, token_hash, expires_at)
    VALUES ($1, $2, $3)
  `, userID, tokenHash, expires)
	return err
}

func (s *Store) ConsumeResetToken(ctx context.Context, tokenHash string) (int64, error) {
	var userID int64
	err := s.DB.QueryRow(ctx, `
    UPDATE password_reset_tokens
    SET used_at = now()
    WHERE token_hash = $1 AND used_at IS NULL AND expires_at > now()
    RETURNING user_id
  `, tokenHash).Scan(&userID)
	return userID, err
}

func (s *Store) UpdatePassword(ctx context.Context, userID int64, passwordHash string) error {
	_, err := s.DB.Exec(ctx, "UPDATE users SET password_hash = $1 WHERE id = $2", passwordHash, userID)
	return err
}

func (s *Store) UserEmail(ctx context.Context, userID int64) (string, error) {
	var email string
	err := s.DB.QueryRow(ctx, "SELECT email FROM users WHERE id = $1", userID).Scan(&email)
	return email, err
}

func (s *Store) StaffUserIDs(ctx context.Context) ([]int64, error) {
	rows, err := s.DB.Query(ctx, "SELECT id FROM users WHERE role IN ($1, $2) AND disabled_at IS NULL", RoleAdmin, RoleStaff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
