package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

func Connect(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		return nil, err
	}

	return db, nil
}

func runMigrations(db *sqlx.DB) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS relationships (
			id BIGSERIAL PRIMARY KEY,
			requester_id BIGINT NOT NULL,
			recipient_id BIGINT NOT NULL,
			status TEXT NOT NULL CHECK (status IN ('pending','accepted','rejected','blocked')),
			since TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			CHECK (requester_id <> recipient_id)
			)`,
		// One record per unordered pair, whichever side requested.
		`CREATE UNIQUE INDEX IF NOT EXISTS relationships_pair_key
			ON relationships (LEAST(requester_id, recipient_id), GREATEST(requester_id, recipient_id))`,
		`CREATE INDEX IF NOT EXISTS relationships_requester_status ON relationships (requester_id, status)`,
		`CREATE INDEX IF NOT EXISTS relationships_recipient_status ON relationships (recipient_id, status)`,
	}

	for _, q := range queries {
		if _, err := db.Exec(q); err != nil {
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}

	return nil
}
