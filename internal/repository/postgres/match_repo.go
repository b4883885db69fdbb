package postgres

import (
	"context"
	"errors"
	"time"

	"go-jobswipe-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type matchRepo struct {
	db            *pgxpool.Pool
	retryAttempts int
}

// NewMatchRepository creates a new match store repository
func NewMatchRepository(db *pgxpool.Pool, retryAttempts int) domain.MatchRepository {
	return &matchRepo{db: db, retryAttempts: retryAttempts}
}

// CreateIfAbsent creates the match unless one already exists for the
// (candidate_id, job_id) pair. The unique index is the sole arbiter of the
// at-most-one-match invariant: when two detections race, the database lets
// exactly one insert through and the loser reads back the winner's row.
// Application-level check-then-insert is deliberately not relied on.
func (r *matchRepo) CreateIfAbsent(ctx context.Context, match *domain.MatchRecord) (*domain.MatchRecord, bool, error) {
	query := `
		INSERT INTO matches (id, candidate_id, job_id, company_id, candidate_user_id, company_user_id, match_score, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
		ON CONFLICT (candidate_id, job_id) DO NOTHING
		RETURNING id, created_at, updated_at`

	if match.ID == "" {
		match.ID = uuid.NewString()
	}
	if match.Status == "" {
		match.Status = domain.MatchStatusMatched
	}
	now := time.Now()

	var created bool
	err := withRetry(ctx, r.retryAttempts, func() error {
		err := r.db.QueryRow(ctx, query,
			match.ID,
			match.CandidateID,
			match.JobID,
			match.CompanyID,
			match.CandidateUserID,
			match.CompanyUserID,
			match.MatchScore,
			match.Status,
			now,
		).Scan(&match.ID, &match.CreatedAt, &match.UpdatedAt)

		if errors.Is(err, pgx.ErrNoRows) || isUniqueViolation(err) {
			// Lost the race: the pair already has its match.
			created = false
			return nil
		}
		if err != nil {
			return err
		}
		created = true
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	if created {
		return match, true, nil
	}

	existing, err := r.FindByPair(ctx, match.CandidateID, match.JobID)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

// FindByPair retrieves the match for a (candidate, job) pair
func (r *matchRepo) FindByPair(ctx context.Context, candidateID string, jobID int64) (*domain.MatchRecord, error) {
	query := selectMatch + ` WHERE m.candidate_id = $1 AND m.job_id = $2`
	return r.scanOne(r.db.QueryRow(ctx, query, candidateID, jobID))
}

// GetByID retrieves a match by id
func (r *matchRepo) GetByID(ctx context.Context, id string) (*domain.MatchRecord, error) {
	query := selectMatch + ` WHERE m.id = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

// UpdateStatus advances the status with a compare-and-set so concurrent
// transitions cannot leapfrog the state machine. Returns false when the
// stored status no longer equals expected.
func (r *matchRepo) UpdateStatus(ctx context.Context, id, expected, next string) (bool, error) {
	query := `UPDATE matches SET status = $3, updated_at = $4 WHERE id = $1 AND status = $2`

	var updated bool
	err := withRetry(ctx, r.retryAttempts, func() error {
		result, err := r.db.Exec(ctx, query, id, expected, next, time.Now())
		if err != nil {
			return err
		}
		updated = result.RowsAffected() > 0
		return nil
	})
	return updated, err
}

// FindByCandidate lists a candidate's matches with joined job data
func (r *matchRepo) FindByCandidate(ctx context.Context, candidateID string) ([]domain.MatchRecord, error) {
	query := selectMatch + ` WHERE m.candidate_id = $1 ORDER BY m.created_at DESC`
	rows, err := r.db.Query(ctx, query, candidateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.scanAll(rows)
}

// FindByJob lists a job's matches, newest first
func (r *matchRepo) FindByJob(ctx context.Context, jobID int64) ([]domain.MatchRecord, error) {
	query := selectMatch + ` WHERE m.job_id = $1 ORDER BY m.created_at DESC`
	rows, err := r.db.Query(ctx, query, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.scanAll(rows)
}

const selectMatch = `
	SELECT
		m.id, m.candidate_id, m.job_id, m.company_id, m.candidate_user_id, m.company_user_id,
		m.match_score, m.status, m.created_at, m.updated_at,
		j.title as job_title,
		cp.name as company_name
	FROM matches m
	LEFT JOIN jobs j ON m.job_id = j.id
	LEFT JOIN company_profiles cp ON m.company_id = cp.id`

func (r *matchRepo) scanOne(row pgx.Row) (*domain.MatchRecord, error) {
	var m domain.MatchRecord
	err := row.Scan(
		&m.ID, &m.CandidateID, &m.JobID, &m.CompanyID, &m.CandidateUserID, &m.CompanyUserID,
		&m.MatchScore, &m.Status, &m.CreatedAt, &m.UpdatedAt,
		&m.JobTitle, &m.CompanyName,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *matchRepo) scanAll(rows pgx.Rows) ([]domain.MatchRecord, error) {
	var matches []domain.MatchRecord
	for rows.Next() {
		var m domain.MatchRecord
		if err := rows.Scan(
			&m.ID, &m.CandidateID, &m.JobID, &m.CompanyID, &m.CandidateUserID, &m.CompanyUserID,
			&m.MatchScore, &m.Status, &m.CreatedAt, &m.UpdatedAt,
			&m.JobTitle, &m.CompanyName,
		); err != nil {
			return nil, err
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}
