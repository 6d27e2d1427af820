package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Suriyaprakashm14/BPTracker-Backend-Project/internal/model"
)

var ErrReadingNotFound = errors.New("reading not found")

// ReadingRepository handles blood-pressure reading persistence operations.
// Every lookup carries the owner's user id alongside the reading id, so a
// miss never reveals whether the row exists for somebody else.
type ReadingRepository struct {
	db *sql.DB
}

// NewReadingRepository creates a new ReadingRepository.
func NewReadingRepository(db *sql.DB) *ReadingRepository {
	return &ReadingRepository{db: db}
}

// Create inserts a new reading and sets the generated ID on the struct.
func (r *ReadingRepository) Create(ctx context.Context, reading *model.Reading) error {
	query := `INSERT INTO bp_readings (user_id, systolic, diastolic, created_at) VALUES (?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query,
		reading.UserID, reading.Systolic, reading.Diastolic, reading.CreatedAt,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	reading.ID = id
	return nil
}

// Update changes the measurement values of a reading owned by userID.
// created_at is deliberately left out of the SET clause. Returns
// ErrReadingNotFound when no owned row matches, whether the id is unknown or
// belongs to another user. The single statement keeps the ownership check and
// the write atomic; the pool's DSN sets clientFoundRows so a matched row
// counts even when the new values equal the old ones.
func (r *ReadingRepository) Update(ctx context.Context, userID, readingID int64, systolic, diastolic int) error {
	query := `UPDATE bp_readings SET systolic = ?, diastolic = ? WHERE id = ? AND user_id = ?`

	result, err := r.db.ExecContext(ctx, query, systolic, diastolic, readingID, userID)
	if err != nil {
		return err
	}

	return requireRow(result)
}

// Delete removes a reading owned by userID, with the same ownership-scoped
// miss semantics as Update.
func (r *ReadingRepository) Delete(ctx context.Context, userID, readingID int64) error {
	query := `DELETE FROM bp_readings WHERE id = ? AND user_id = ?`

	result, err := r.db.ExecContext(ctx, query, readingID, userID)
	if err != nil {
		return err
	}

	return requireRow(result)
}

// ListByUser retrieves all readings owned by userID, newest insertion first.
func (r *ReadingRepository) ListByUser(ctx context.Context, userID int64) ([]model.Reading, error) {
	query := `SELECT id, user_id, systolic, diastolic, created_at
		FROM bp_readings WHERE user_id = ? ORDER BY id DESC`

	return r.list(ctx, query, userID)
}

// ListByUserBetween retrieves readings owned by userID whose created_at falls
// in [from, to), newest insertion first.
func (r *ReadingRepository) ListByUserBetween(ctx context.Context, userID int64, from, to time.Time) ([]model.Reading, error) {
	query := `SELECT id, user_id, systolic, diastolic, created_at
		FROM bp_readings WHERE user_id = ? AND created_at >= ? AND created_at < ? ORDER BY id DESC`

	return r.list(ctx, query, userID, from, to)
}

func (r *ReadingRepository) list(ctx context.Context, query string, args ...any) ([]model.Reading, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var readings []model.Reading
	for rows.Next() {
		var reading model.Reading
		if err := rows.Scan(
			&reading.ID, &reading.UserID, &reading.Systolic, &reading.Diastolic, &reading.CreatedAt,
		); err != nil {
			return nil, err
		}
		readings = append(readings, reading)
	}

	return readings, rows.Err()
}

func requireRow(result sql.Result) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrReadingNotFound
	}

	return nil
}
