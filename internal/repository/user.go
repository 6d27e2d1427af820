package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/Suriyaprakashm14/BPTracker-Backend-Project/internal/model"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrDuplicateUsername = errors.New("username already exists")
)

// UserRepository handles user persistence operations.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user and sets the generated ID on the user struct.
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	query := `INSERT INTO users (username, password_hash) VALUES (?, ?)`

	result, err := r.db.ExecContext(ctx, query, user.Username, user.PasswordHash)
	if err != nil {
		if isDuplicateEntryError(err) {
			return ErrDuplicateUsername
		}
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	user.ID = id
	return nil
}

// GetByUsername retrieves a user by their username. The match is
// case-sensitive by contract.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	query := `SELECT id, username, password_hash, token FROM users WHERE username = ?`
	return r.getOne(ctx, query, username)
}

// GetByToken retrieves the user holding the given session token.
func (r *UserRepository) GetByToken(ctx context.Context, token string) (*model.User, error) {
	query := `SELECT id, username, password_hash, token FROM users WHERE token = ?`
	return r.getOne(ctx, query, token)
}

// UpdateToken replaces the user's session token. The previous token stops
// authenticating as soon as this commits, since lookups are by exact match.
func (r *UserRepository) UpdateToken(ctx context.Context, userID int64, token string) error {
	query := `UPDATE users SET token = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, token, userID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrUserNotFound
	}

	return nil
}

func (r *UserRepository) getOne(ctx context.Context, query string, arg any) (*model.User, error) {
	user := &model.User{}
	var token sql.NullString
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&user.ID, &user.Username, &user.PasswordHash, &token,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	user.Token = token.String
	return user, nil
}

// isDuplicateEntryError checks whether an error is a unique constraint
// violation. MySQL reports "Duplicate entry" (code 1062); SQLite, used by the
// test suite, reports "UNIQUE constraint failed".
func isDuplicateEntryError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") || strings.Contains(msg, "UNIQUE constraint failed")
}
