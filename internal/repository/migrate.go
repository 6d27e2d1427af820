package repository

import (
	"context"
	"database/sql"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id INT AUTO_INCREMENT PRIMARY KEY,
		username VARCHAR(255) NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		token VARCHAR(64) NULL
	)`,
	`CREATE TABLE IF NOT EXISTS bp_readings (
		id INT AUTO_INCREMENT PRIMARY KEY,
		user_id INT NOT NULL,
		systolic INT NOT NULL,
		diastolic INT NOT NULL,
		created_at DATETIME NOT NULL,
		CONSTRAINT fk_bp_readings_user FOREIGN KEY (user_id)
			REFERENCES users (id) ON DELETE CASCADE
	)`,
}

// EnsureSchema creates the users and bp_readings tables if they do not exist.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
