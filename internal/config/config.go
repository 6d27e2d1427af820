package config

import (
	"log/slog"
	"os"
)

type Config struct {
	Port        string
	Env         string
	DatabaseDSN string
}

func Load() Config {
	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		Env:         getEnv("ENV", "development"),
		DatabaseDSN: os.Getenv("DATABASE_DSN"),
	}

	// No fallback DSN: database credentials never live in source.
	if cfg.DatabaseDSN == "" {
		slog.Error("DATABASE_DSN must be set")
		os.Exit(1)
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
