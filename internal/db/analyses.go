package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// SaveResume stores the resume inputs of one analysis run
func (db *DB) SaveResume(ctx context.Context, p *types.CandidateProfile) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO resumes (id, candidate_name, email, language, raw_text)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (id) DO NOTHING`,
		p.ID, p.Name, p.Email, p.Language, p.RawText,
	)
	if err != nil {
		return fmt.Errorf("failed to save resume: %w", err)
	}
	return nil
}

// SaveJob stores the job description of one analysis run
func (db *DB) SaveJob(ctx context.Context, j *types.JobDescription) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO job_descriptions (id, title, description_text, language)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (id) DO NOTHING`,
		j.ID, j.Title, j.DescriptionText, j.Language,
	)
	if err != nil {
		return fmt.Errorf("failed to save job description: %w", err)
	}
	return nil
}

// SaveAnalysis stores a completed result as JSONB and returns the row ID
func (db *DB) SaveAnalysis(ctx context.Context, result *types.AnalysisResult) (uuid.UUID, error) {
	payload, err := json.Marshal(result)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO analysis_results (resume_id, job_id, result)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		result.ResumeID, result.JobID, payload,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save analysis: %w", err)
	}
	return id, nil
}

// StoredAnalysis is one persisted analysis row
type StoredAnalysis struct {
	ID        uuid.UUID            `json:"id"`
	Result    types.AnalysisResult `json:"result"`
	CreatedAt time.Time            `json:"created_at"`
}

// GetAnalysis retrieves a stored analysis by row ID. Returns nil when no row
// exists.
func (db *DB) GetAnalysis(ctx context.Context, id uuid.UUID) (*StoredAnalysis, error) {
	var stored StoredAnalysis
	var payload []byte
	err := db.pool.QueryRow(ctx,
		`SELECT id, result, created_at FROM analysis_results WHERE id = $1`,
		id,
	).Scan(&stored.ID, &payload, &stored.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}

	if err := json.Unmarshal(payload, &stored.Result); err != nil {
		return nil, fmt.Errorf("failed to decode stored result: %w", err)
	}
	return &stored, nil
}

// ListAnalyses retrieves recent analyses for a resume
func (db *DB) ListAnalyses(ctx context.Context, resumeID uuid.UUID, limit int) ([]StoredAnalysis, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.pool.Query(ctx,
		`SELECT id, result, created_at FROM analysis_results
		 WHERE resume_id = $1 ORDER BY created_at DESC LIMIT $2`,
		resumeID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	var out []StoredAnalysis
	for rows.Next() {
		var stored StoredAnalysis
		var payload []byte
		if err := rows.Scan(&stored.ID, &payload, &stored.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan analysis: %w", err)
		}
		if err := json.Unmarshal(payload, &stored.Result); err != nil {
			return nil, fmt.Errorf("failed to decode stored result: %w", err)
		}
		out = append(out, stored)
	}
	return out, nil
}
