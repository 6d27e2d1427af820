package repository

import (
	"database/sql"
	"time"

	"github.com/go-sql-driver/mysql"
)

// NewDB creates a new MySQL database connection pool with the given DSN.
// The DSN is normalized before opening: scanning DATETIME columns into
// time.Time requires parseTime, and the affected-row checks on updates
// require clientFoundRows, so neither can be left to the caller's DSN.
func NewDB(dsn string) (*sql.DB, error) {
	normalized, err := normalizeDSN(dsn)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("mysql", normalized)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// normalizeDSN forces the driver flags this package's queries depend on.
// Without parseTime the driver hands DATETIME values back as []byte; without
// clientFoundRows an UPDATE that writes unchanged values reports zero
// affected rows, which is indistinguishable from an ownership miss.
func normalizeDSN(dsn string) (string, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return "", err
	}

	cfg.ParseTime = true
	cfg.ClientFoundRows = true

	return cfg.FormatDSN(), nil
}
