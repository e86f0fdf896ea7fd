package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-analyzer/internal/fetch"
	"github.com/jonathan/resume-analyzer/internal/ingestion"
)

// DefaultPostingTTL is how long a cached job posting stays fresh. Postings
// change rarely; a week keeps repeat analyses off the job boards.
const DefaultPostingTTL = 7 * 24 * time.Hour

// SavePosting caches a fetched job posting's cleaned text by URL.
func (s *Store) SavePosting(ctx context.Context, posting *ingestion.JobPosting) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO cached_postings (url, platform, text_content, fetched_at)
		 VALUES ($1, $2, $3, NOW())
		 ON CONFLICT (url) DO UPDATE SET platform = $2, text_content = $3, fetched_at = NOW()`,
		posting.URL, string(posting.Platform), posting.Text,
	)
	if err != nil {
		return fmt.Errorf("failed to cache posting: %w", err)
	}
	return nil
}

// GetPosting returns a cached posting no older than ttl, or nil on a miss.
func (s *Store) GetPosting(ctx context.Context, url string, ttl time.Duration) (*ingestion.JobPosting, error) {
	var posting ingestion.JobPosting
	var platform string
	err := s.pool.QueryRow(ctx,
		`SELECT url, platform, text_content FROM cached_postings
		 WHERE url = $1 AND fetched_at > NOW() - $2::interval`,
		url, fmt.Sprintf("%d seconds", int(ttl.Seconds())),
	).Scan(&posting.URL, &platform, &posting.Text)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read cached posting: %w", err)
	}
	posting.Platform = fetch.Platform(platform)
	return &posting, nil
}
