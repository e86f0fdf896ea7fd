package store

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// AnalysisSession is one completed analysis of a resume against a posting.
type AnalysisSession struct {
	ID                uuid.UUID     `json:"id"`
	ResumeFingerprint string        `json:"resume_fingerprint"`
	JobURL            string        `json:"job_url,omitempty"`
	JobTitle          string        `json:"job_title,omitempty"`
	Scores            *types.Scores `json:"scores"`
	CreatedAt         time.Time     `json:"created_at"`
}

// Fingerprint derives the history key for a resume from its text content,
// so re-uploads of the same document share one history.
func Fingerprint(resumeText string) string {
	sum := sha256.Sum256([]byte(resumeText))
	return hex.EncodeToString(sum[:])
}

// SaveSession stores a completed analysis session.
func (s *Store) SaveSession(ctx context.Context, session *AnalysisSession) error {
	scoresJSON, err := json.Marshal(session.Scores)
	if err != nil {
		return fmt.Errorf("failed to marshal scores: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO analysis_sessions (id, resume_fingerprint, job_url, job_title, scores, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		session.ID, session.ResumeFingerprint, session.JobURL, session.JobTitle, scoresJSON, session.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// GetSession retrieves a session by ID, or nil when it does not exist.
func (s *Store) GetSession(ctx context.Context, id uuid.UUID) (*AnalysisSession, error) {
	var session AnalysisSession
	var scoresJSON []byte
	err := s.pool.QueryRow(ctx,
		`SELECT id, resume_fingerprint, COALESCE(job_url, ''), COALESCE(job_title, ''), scores, created_at
		 FROM analysis_sessions WHERE id = $1`,
		id,
	).Scan(&session.ID, &session.ResumeFingerprint, &session.JobURL, &session.JobTitle, &scoresJSON, &session.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	if err := json.Unmarshal(scoresJSON, &session.Scores); err != nil {
		return nil, fmt.Errorf("failed to unmarshal scores: %w", err)
	}
	return &session, nil
}

// History retrieves the most recent sessions for a resume fingerprint,
// newest first.
func (s *Store) History(ctx context.Context, fingerprint string, limit int) ([]AnalysisSession, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, resume_fingerprint, COALESCE(job_url, ''), COALESCE(job_title, ''), scores, created_at
		 FROM analysis_sessions
		 WHERE resume_fingerprint = $1
		 ORDER BY created_at DESC LIMIT $2`,
		fingerprint, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var sessions []AnalysisSession
	for rows.Next() {
		var session AnalysisSession
		var scoresJSON []byte
		if err := rows.Scan(&session.ID, &session.ResumeFingerprint, &session.JobURL, &session.JobTitle, &scoresJSON, &session.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		if err := json.Unmarshal(scoresJSON, &session.Scores); err != nil {
			return nil, fmt.Errorf("failed to unmarshal scores: %w", err)
		}
		sessions = append(sessions, session)
	}
	return sessions, rows.Err()
}
