package domain

import (
	"context"
	"time"
)

// Swipe directions
const (
	DirectionLeft  = "left"
	DirectionRight = "right"
	DirectionSuper = "super"
)

// Actor roles
const (
	RoleCandidate = "candidate"
	RoleEmployer  = "employer"
)

// Subject types
const (
	SubjectTypeJob       = "job"
	SubjectTypeCandidate = "candidate"
)

// ValidDirection reports whether d is a known swipe direction.
func ValidDirection(d string) bool {
	return d == DirectionLeft || d == DirectionRight || d == DirectionSuper
}

// IsInterested reports whether d expresses positive interest.
func IsInterested(d string) bool {
	return d == DirectionRight || d == DirectionSuper
}

// SwipeRecord is one directional preference signal. A candidate swipes on a
// job (SubjectID is the job id), an employer swipes on a candidate for a job
// (SubjectID is the candidate user id); JobContextID carries the job either
// way. At most one active (non-retracted) row exists per
// (ActorID, SubjectID, JobContextID); a repeat swipe on the same tuple
// overwrites Direction in place.
type SwipeRecord struct {
	ID           int64      `json:"id"`
	ActorID      string     `json:"actor_id"`
	ActorRole    string     `json:"actor_role"`
	SubjectID    string     `json:"subject_id"`
	SubjectType  string     `json:"subject_type"`
	JobContextID int64      `json:"job_context_id"`
	Direction    string     `json:"direction"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	RetractedAt  *time.Time `json:"retracted_at,omitempty"`
}

// CandidateID resolves the candidate side of the (candidate, job) pair this
// swipe concerns: the actor for a candidate-side swipe, the subject for an
// employer-side one.
func (s *SwipeRecord) CandidateID() string {
	if s.ActorRole == RoleCandidate {
		return s.ActorID
	}
	return s.SubjectID
}

// SwipeCommand is the input to RecordSwipe.
type SwipeCommand struct {
	ActorID      string `json:"actor_id" validate:"required"`
	ActorRole    string `json:"actor_role" validate:"required,oneof=candidate employer"`
	SubjectID    string `json:"subject_id" validate:"required"`
	SubjectType  string `json:"subject_type" validate:"required,oneof=job candidate"`
	JobContextID int64  `json:"job_context_id" validate:"required,gt=0"`
	Direction    string `json:"direction" validate:"required,oneof=left right super"`
	Override     bool   `json:"override"`
}

// SwipeResult is what RecordSwipe returns once the write is durable.
type SwipeResult struct {
	Score        int         `json:"score"`
	Violations   []Violation `json:"violations"`
	MatchCreated bool        `json:"match_created"`
	MatchID      *string     `json:"match_id,omitempty"`
}

// Violation is one deal-breaker constraint the job/company fails.
type Violation struct {
	Type     string `json:"type"`
	Expected string `json:"expected"`
	Actual   string `json:"actual"`
}

// SwipeRepository defines data access for the swipe ledger.
type SwipeRepository interface {
	// UpsertActive inserts the swipe or, when a row already exists for
	// (ActorID, SubjectID, JobContextID), overwrites its direction and
	// clears any retraction. The record's ID and timestamps are populated
	// on return.
	UpsertActive(ctx context.Context, swipe *SwipeRecord) error
	// FindActiveSwipe returns the active swipe for the tuple, or ErrNotFound.
	FindActiveSwipe(ctx context.Context, actorID, subjectID string, jobContextID int64) (*SwipeRecord, error)
	// FindCounterpartInterest returns the opposing side's active right/super
	// swipe for the same (candidate, job) pair, or ErrNotFound.
	FindCounterpartInterest(ctx context.Context, candidateID string, jobID int64, counterpartRole string) (*SwipeRecord, error)
	// FindLatestByActor returns the actor's most recent swipe regardless of
	// retraction state, or ErrNotFound.
	FindLatestByActor(ctx context.Context, actorID string) (*SwipeRecord, error)
	// Retract soft-deletes a swipe by id.
	Retract(ctx context.Context, id int64, at time.Time) error
}

// SwipeUsecase defines the swipe-side business contract.
type SwipeUsecase interface {
	RecordSwipe(ctx context.Context, cmd SwipeCommand) (*SwipeResult, error)
	UndoLastSwipe(ctx context.Context, actorID string) error
}
