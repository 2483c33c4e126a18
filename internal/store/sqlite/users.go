package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/moviethruster/thruster-server/internal/domain"
	"github.com/moviethruster/thruster-server/internal/store"
)

const userColumns = `id, username, email, password_hash, created_at, last_login_at`

func scanUser(scanner interface{ Scan(dest ...any) error }) (*domain.User, error) {
	var (
		u         domain.User
		createdAt string
		lastLogin sql.NullString
	)

	err := scanner.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &createdAt, &lastLogin)
	if err != nil {
		return nil, err
	}

	u.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}
	u.LastLoginAt, err = parseNullableTime(lastLogin)
	if err != nil {
		return nil, fmt.Errorf("parse last_login_at: %w", err)
	}

	return &u, nil
}

// CreateUser inserts a new user.
// Returns store.ErrAlreadyExists when the username or email is taken.
func (s *Store) CreateUser(ctx context.Context, user *domain.User) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO users (id, username, email, password_hash, created_at, last_login_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		user.ID, user.Username, user.Email, user.PasswordHash,
		formatTime(user.CreatedAt), nullTimeString(user.LastLoginAt),
	)
	if err != nil {
		// modernc.org/sqlite reports constraint violations as plain errors.
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return store.ErrAlreadyExists.WithMessage("username or email already in use")
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetUser returns a user by id.
func (s *Store) GetUser(ctx context.Context, id string) (*domain.User, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id)

	user, err := scanUser(row)
	if err == sql.ErrNoRows {
		return nil, store.ErrNotFound.WithMessage("user not found")
	}
	if err != nil {
		return nil, fmt.Errorf("query user: %w", err)
	}
	return user, nil
}

// GetUserByUsername returns a user by username.
func (s *Store) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = ?`, username)

	user, err := scanUser(row)
	if err == sql.ErrNoRows {
		return nil, store.ErrNotFound.WithMessage("user not found")
	}
	if err != nil {
		return nil, fmt.Errorf("query user by username: %w", err)
	}
	return user, nil
}

// TouchLastLogin updates the user's last login timestamp.
func (s *Store) TouchLastLogin(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx,
		`UPDATE users SET last_login_at = ? WHERE id = ?`,
		formatTime(nowUTC()), id,
	)
	if err != nil {
		return fmt.Errorf("update last login: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return store.ErrNotFound.WithMessage("user not found")
	}
	return nil
}
