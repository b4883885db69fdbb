package usecase

import (
	"context"
	"errors"
	"strconv"
	"time"

	"go-jobswipe-backend/internal/domain"
	"go-jobswipe-backend/internal/matching"
	"go-jobswipe-backend/pkg/apperror"
	"go-jobswipe-backend/pkg/logger"

	"github.com/go-playground/validator/v10"
)

// ScoreCache memoizes compatibility scores. Safe because the scorer is
// deterministic; a miss or an unavailable cache simply recomputes.
type ScoreCache interface {
	Get(ctx context.Context, candidateID string, jobID int64) (int, bool)
	Set(ctx context.Context, candidateID string, jobID int64, score int)
}

type swipeUsecase struct {
	swipeRepo  domain.SwipeRepository
	matchRepo  domain.MatchRepository
	snapshots  domain.SnapshotProvider
	dispatcher domain.EventDispatcher
	scoreCache ScoreCache
	validate   *validator.Validate
}

// NewSwipeUsecase creates the swipe ledger / mutual match detector usecase.
// scoreCache may be nil.
func NewSwipeUsecase(
	swipeRepo domain.SwipeRepository,
	matchRepo domain.MatchRepository,
	snapshots domain.SnapshotProvider,
	dispatcher domain.EventDispatcher,
	scoreCache ScoreCache,
	validate *validator.Validate,
) domain.SwipeUsecase {
	return &swipeUsecase{
		swipeRepo:  swipeRepo,
		matchRepo:  matchRepo,
		snapshots:  snapshots,
		dispatcher: dispatcher,
		scoreCache: scoreCache,
		validate:   validate,
	}
}

// RecordSwipe records one directional decision and detects mutual interest.
// It returns only after the swipe (and, when applicable, the match) is
// durably committed; the match-created event is dispatched strictly after
// that commit, fire-and-forget.
func (uc *swipeUsecase) RecordSwipe(ctx context.Context, cmd domain.SwipeCommand) (*domain.SwipeResult, error) {
	// 1. Validate direction, role and subject shape before any write
	if err := uc.validate.Struct(cmd); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}
	candidateID, jobID, err := resolvePair(cmd)
	if err != nil {
		return nil, err
	}

	// 2. Read-only snapshots, fetched before any ledger write
	candidate, err := uc.snapshots.GetCandidateSnapshot(ctx, candidateID)
	if err != nil {
		return nil, snapshotError("Candidate profile", err)
	}
	job, err := uc.snapshots.GetJobSnapshot(ctx, jobID)
	if err != nil {
		return nil, snapshotError("Job", err)
	}
	company, err := uc.snapshots.GetCompanySnapshot(ctx, job.CompanyID)
	if err != nil {
		return nil, snapshotError("Company", err)
	}

	// 3. Deal-breaker gate: advisory, but interested swipes need an explicit
	// override while violations exist. No write has happened yet.
	violations := matching.EvaluateDealBreakers(candidate.DealBreakers, job, company)
	if domain.IsInterested(cmd.Direction) && len(violations) > 0 && !cmd.Override {
		logger.Log.Info("swipe blocked by deal-breakers",
			"actor_id", cmd.ActorID,
			"job_id", jobID,
			"violations", matching.DescribeViolations(violations),
		)
		return nil, apperror.DealBreaker("Job violates your deal-breakers; resubmit with override to proceed", violations)
	}

	score := uc.score(ctx, candidate, job, company)

	// 4. Upsert the ledger row; a repeat swipe overwrites in place
	swipe := &domain.SwipeRecord{
		ActorID:      cmd.ActorID,
		ActorRole:    cmd.ActorRole,
		SubjectID:    cmd.SubjectID,
		SubjectType:  cmd.SubjectType,
		JobContextID: cmd.JobContextID,
		Direction:    cmd.Direction,
	}
	if err := uc.swipeRepo.UpsertActive(ctx, swipe); err != nil {
		// The upsert did not commit: the swipe is guaranteed unrecorded.
		return nil, storageError(err)
	}

	result := &domain.SwipeResult{
		Score:      score,
		Violations: violationsOrEmpty(violations),
	}
	if !domain.IsInterested(cmd.Direction) {
		return result, nil
	}

	// 5. Counterpart lookup for the same (candidate, job) pair
	counterpartRole := domain.RoleEmployer
	if cmd.ActorRole == domain.RoleEmployer {
		counterpartRole = domain.RoleCandidate
	}
	counterpart, err := uc.swipeRepo.FindCounterpartInterest(ctx, candidateID, jobID, counterpartRole)
	if errors.Is(err, domain.ErrNotFound) {
		return result, nil
	}
	if err != nil {
		return nil, storageError(err)
	}

	// 6. Exactly-once creation: the store's unique constraint arbitrates
	// concurrent detections, and losing the race idempotently returns the
	// winning record.
	match, created, err := uc.matchRepo.CreateIfAbsent(ctx, &domain.MatchRecord{
		CandidateID:     candidateID,
		JobID:           jobID,
		CompanyID:       job.CompanyID,
		CandidateUserID: candidateID,
		CompanyUserID:   job.OwnerUserID,
		MatchScore:      score,
		Status:          domain.MatchStatusMatched,
	})
	if err != nil {
		return nil, storageError(err)
	}

	result.MatchCreated = created
	result.MatchID = &match.ID

	// 7. Event only after the durable commit, never before
	if created {
		logger.Log.Info("mutual match created",
			"match_id", match.ID,
			"candidate_id", candidateID,
			"job_id", jobID,
			"score", score,
			"second_swipe_by", cmd.ActorRole,
			"first_swipe_at", counterpart.CreatedAt,
		)
		uc.dispatcher.MatchCreated(ctx, domain.MatchCreatedEvent{
			MatchID:     match.ID,
			CandidateID: candidateID,
			JobID:       jobID,
			Score:       score,
		})
	}

	return result, nil
}

// UndoLastSwipe retracts the actor's single most recent swipe. A swipe that
// already produced a match cannot be taken back.
func (uc *swipeUsecase) UndoLastSwipe(ctx context.Context, actorID string) error {
	swipe, err := uc.swipeRepo.FindLatestByActor(ctx, actorID)
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.Conflict(apperror.CodeNoActiveSwipe, "No swipe to undo")
	}
	if err != nil {
		return storageError(err)
	}
	if swipe.RetractedAt != nil {
		// Single-level undo: the latest swipe was already taken back.
		return apperror.Conflict(apperror.CodeNoActiveSwipe, "No swipe to undo")
	}

	if domain.IsInterested(swipe.Direction) {
		_, err := uc.matchRepo.FindByPair(ctx, swipe.CandidateID(), swipe.JobContextID)
		if err == nil {
			return apperror.Conflict(apperror.CodeInvalidOperation, "Swipe already produced a match and cannot be undone")
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return storageError(err)
		}
	}

	if err := uc.swipeRepo.Retract(ctx, swipe.ID, time.Now()); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.Conflict(apperror.CodeNoActiveSwipe, "No swipe to undo")
		}
		return storageError(err)
	}
	return nil
}

// score consults the cache first; determinism makes stale entries impossible
// as long as snapshots are keyed consistently.
func (uc *swipeUsecase) score(ctx context.Context, candidate *domain.CandidateSnapshot, job *domain.JobSnapshot, company *domain.CompanySnapshot) int {
	if uc.scoreCache != nil {
		if cached, ok := uc.scoreCache.Get(ctx, candidate.UserID, job.ID); ok {
			return cached
		}
	}
	score := matching.Score(candidate, job, company)
	if uc.scoreCache != nil {
		uc.scoreCache.Set(ctx, candidate.UserID, job.ID, score)
	}
	return score
}

// resolvePair derives the (candidate, job) pair a swipe concerns and rejects
// shape mismatches between role, subject type and job context.
func resolvePair(cmd domain.SwipeCommand) (string, int64, error) {
	switch cmd.ActorRole {
	case domain.RoleCandidate:
		if cmd.SubjectType != domain.SubjectTypeJob {
			return "", 0, apperror.BadRequest("Candidates can only swipe on jobs")
		}
		subjectJobID, err := strconv.ParseInt(cmd.SubjectID, 10, 64)
		if err != nil || subjectJobID != cmd.JobContextID {
			return "", 0, apperror.BadRequest("Subject must be the job named by job_context_id")
		}
		return cmd.ActorID, cmd.JobContextID, nil
	case domain.RoleEmployer:
		if cmd.SubjectType != domain.SubjectTypeCandidate {
			return "", 0, apperror.BadRequest("Employers can only swipe on candidates")
		}
		return cmd.SubjectID, cmd.JobContextID, nil
	default:
		return "", 0, apperror.BadRequest("Unknown actor role")
	}
}

func snapshotError(entity string, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound(entity + " not found")
	}
	return storageError(err)
}

// storageError maps ledger failures to the retryable taxonomy. Either way
// the caller knows the operation did not take effect.
func storageError(err error) error {
	if errors.Is(err, domain.ErrStorageConflict) {
		return apperror.StorageConflict(err)
	}
	return apperror.StorageUnavailable(err)
}

func violationsOrEmpty(violations []domain.Violation) []domain.Violation {
	if violations == nil {
		return []domain.Violation{}
	}
	return violations
}
