// Package store persists completed analysis sessions and a rolling per-resume
// history in PostgreSQL, keyed by a resume-content fingerprint. The scoring
// engine never touches this package; callers persist the result objects it
// returns.
package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store wraps a PostgreSQL connection pool.
type Store struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool and verifies it.
func Connect(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return &Store{pool: pool}, nil
}

// Close closes the connection pool.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// EnsureSchema creates the tables the store needs if they do not exist.
func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS analysis_sessions (
			id UUID PRIMARY KEY,
			resume_fingerprint TEXT NOT NULL,
			job_url TEXT,
			job_title TEXT,
			scores JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_fingerprint
			ON analysis_sessions (resume_fingerprint, created_at DESC);

		CREATE TABLE IF NOT EXISTS cached_postings (
			url TEXT PRIMARY KEY,
			platform TEXT NOT NULL,
			text_content TEXT NOT NULL,
			fetched_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
	`)
	if err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}
