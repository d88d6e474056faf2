// Package db provides PostgreSQL persistence for analysis runs. Persistence
// is best-effort: the engine's result is returned to the caller whether or
// not these writes succeed.
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// EnsureSchema creates the analyzer tables if they do not exist
func (db *DB) EnsureSchema(ctx context.Context) error {
	_, err := db.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS resumes (
			id UUID PRIMARY KEY,
			candidate_name TEXT NOT NULL DEFAULT '',
			email TEXT NOT NULL DEFAULT '',
			language TEXT NOT NULL DEFAULT 'en',
			raw_text TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE TABLE IF NOT EXISTS job_descriptions (
			id UUID PRIMARY KEY,
			title TEXT NOT NULL DEFAULT '',
			description_text TEXT NOT NULL DEFAULT '',
			language TEXT NOT NULL DEFAULT 'en',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE TABLE IF NOT EXISTS analysis_results (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			resume_id UUID NOT NULL REFERENCES resumes(id) ON DELETE CASCADE,
			job_id UUID NOT NULL REFERENCES job_descriptions(id) ON DELETE CASCADE,
			result JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}
