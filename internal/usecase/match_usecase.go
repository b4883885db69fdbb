package usecase

import (
	"context"
	"errors"

	"go-jobswipe-backend/internal/domain"
	"go-jobswipe-backend/pkg/apperror"
	"go-jobswipe-backend/pkg/logger"
)

type matchUsecase struct {
	matchRepo  domain.MatchRepository
	dispatcher domain.EventDispatcher
}

// NewMatchUsecase creates the match lifecycle usecase
func NewMatchUsecase(matchRepo domain.MatchRepository, dispatcher domain.EventDispatcher) domain.MatchUsecase {
	return &matchUsecase{matchRepo: matchRepo, dispatcher: dispatcher}
}

// GetMatch returns the match for a (candidate, job) pair
func (uc *matchUsecase) GetMatch(ctx context.Context, candidateID string, jobID int64) (*domain.MatchRecord, error) {
	match, err := uc.matchRepo.FindByPair(ctx, candidateID, jobID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("Match not found")
	}
	if err != nil {
		return nil, storageError(err)
	}
	return match, nil
}

// TransitionStatus advances a match through the status state machine.
// Transitions are driven by external actors; the engine only guarantees the
// machine is honored and terminal states stay terminal.
func (uc *matchUsecase) TransitionStatus(ctx context.Context, matchID, newStatus string) (*domain.MatchRecord, error) {
	if !domain.ValidMatchStatus(newStatus) {
		return nil, apperror.BadRequest("Unknown match status: " + newStatus)
	}

	match, err := uc.matchRepo.GetByID(ctx, matchID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("Match not found")
	}
	if err != nil {
		return nil, storageError(err)
	}

	oldStatus := match.Status
	if !domain.CanTransition(oldStatus, newStatus) {
		return nil, apperror.Conflict(apperror.CodeInvalidTransition,
			"Cannot transition match from "+oldStatus+" to "+newStatus)
	}

	updated, err := uc.matchRepo.UpdateStatus(ctx, matchID, oldStatus, newStatus)
	if err != nil {
		return nil, storageError(err)
	}
	if !updated {
		// Compare-and-set lost to a concurrent transition.
		return nil, apperror.Conflict(apperror.CodeInvalidTransition,
			"Match status changed concurrently, re-read and retry")
	}

	match.Status = newStatus
	logger.Log.Info("match status advanced",
		"match_id", matchID,
		"old_status", oldStatus,
		"new_status", newStatus,
	)
	uc.dispatcher.MatchStatusChanged(ctx, domain.MatchStatusChangedEvent{
		MatchID:   matchID,
		OldStatus: oldStatus,
		NewStatus: newStatus,
	})
	return match, nil
}

// ListByCandidate returns a candidate's matches, newest first
func (uc *matchUsecase) ListByCandidate(ctx context.Context, candidateID string) ([]domain.MatchRecord, error) {
	matches, err := uc.matchRepo.FindByCandidate(ctx, candidateID)
	if err != nil {
		return nil, storageError(err)
	}
	return matches, nil
}

// ListByJob returns a job's matches, newest first
func (uc *matchUsecase) ListByJob(ctx context.Context, jobID int64) ([]domain.MatchRecord, error) {
	matches, err := uc.matchRepo.FindByJob(ctx, jobID)
	if err != nil {
		return nil, storageError(err)
	}
	return matches, nil
}
