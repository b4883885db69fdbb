package postgres

import (
	"context"
	"errors"
	"time"

	"go-jobswipe-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type swipeRepo struct {
	db *pgxpool.Pool
}

// NewSwipeRepository creates a new swipe ledger repository
func NewSwipeRepository(db *pgxpool.Pool) domain.SwipeRepository {
	return &swipeRepo{db: db}
}

// UpsertActive inserts the swipe or overwrites the existing row for the same
// (actor_id, subject_id, job_context_id) tuple. The unique index makes the
// overwrite atomic: a repeat swipe never appends a duplicate, and any prior
// retraction is cleared.
func (r *swipeRepo) UpsertActive(ctx context.Context, swipe *domain.SwipeRecord) error {
	query := `
		INSERT INTO swipes (actor_id, actor_role, subject_id, subject_type, job_context_id, direction, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		ON CONFLICT (actor_id, subject_id, job_context_id)
		DO UPDATE SET direction = EXCLUDED.direction, updated_at = EXCLUDED.updated_at, retracted_at = NULL
		RETURNING id, created_at, updated_at`

	now := time.Now()
	swipe.RetractedAt = nil

	return r.db.QueryRow(ctx, query,
		swipe.ActorID,
		swipe.ActorRole,
		swipe.SubjectID,
		swipe.SubjectType,
		swipe.JobContextID,
		swipe.Direction,
		now,
	).Scan(&swipe.ID, &swipe.CreatedAt, &swipe.UpdatedAt)
}

// FindActiveSwipe retrieves the non-retracted swipe for the tuple
func (r *swipeRepo) FindActiveSwipe(ctx context.Context, actorID, subjectID string, jobContextID int64) (*domain.SwipeRecord, error) {
	query := `
		SELECT id, actor_id, actor_role, subject_id, subject_type, job_context_id, direction, created_at, updated_at, retracted_at
		FROM swipes
		WHERE actor_id = $1 AND subject_id = $2 AND job_context_id = $3 AND retracted_at IS NULL`

	return r.scanOne(r.db.QueryRow(ctx, query, actorID, subjectID, jobContextID))
}

// FindCounterpartInterest looks for the opposing side's active right/super
// swipe on the same (candidate, job) pair. A candidate appears as actor on
// their own swipes and as subject on employer swipes.
func (r *swipeRepo) FindCounterpartInterest(ctx context.Context, candidateID string, jobID int64, counterpartRole string) (*domain.SwipeRecord, error) {
	query := `
		SELECT id, actor_id, actor_role, subject_id, subject_type, job_context_id, direction, created_at, updated_at, retracted_at
		FROM swipes
		WHERE actor_role = $3
		  AND job_context_id = $2
		  AND retracted_at IS NULL
		  AND direction IN ('right', 'super')
		  AND (
		    (actor_role = 'candidate' AND actor_id = $1)
		    OR (actor_role = 'employer' AND subject_id = $1)
		  )
		LIMIT 1`

	return r.scanOne(r.db.QueryRow(ctx, query, candidateID, jobID, counterpartRole))
}

// FindLatestByActor retrieves the actor's most recent swipe, retracted or not
func (r *swipeRepo) FindLatestByActor(ctx context.Context, actorID string) (*domain.SwipeRecord, error) {
	query := `
		SELECT id, actor_id, actor_role, subject_id, subject_type, job_context_id, direction, created_at, updated_at, retracted_at
		FROM swipes
		WHERE actor_id = $1
		ORDER BY updated_at DESC
		LIMIT 1`

	return r.scanOne(r.db.QueryRow(ctx, query, actorID))
}

// Retract soft-deletes a swipe; already-retracted rows are left untouched
func (r *swipeRepo) Retract(ctx context.Context, id int64, at time.Time) error {
	query := `UPDATE swipes SET retracted_at = $2, updated_at = $2 WHERE id = $1 AND retracted_at IS NULL`
	result, err := r.db.Exec(ctx, query, id, at)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *swipeRepo) scanOne(row pgx.Row) (*domain.SwipeRecord, error) {
	var s domain.SwipeRecord
	err := row.Scan(
		&s.ID, &s.ActorID, &s.ActorRole, &s.SubjectID, &s.SubjectType,
		&s.JobContextID, &s.Direction, &s.CreatedAt, &s.UpdatedAt, &s.RetractedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}
