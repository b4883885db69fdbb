package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var (
	ErrNotFound = errors.New("resource not found")
	// ErrStorageConflict marks a transient storage race that survived the
	// bounded internal retries; the whole operation may be retried.
	ErrStorageConflict = errors.New("storage conflict")
)

// Match status constants. A match starts in matched and only ever advances;
// hired and rejected are terminal.
const (
	MatchStatusMatched      = "matched"
	MatchStatusInterviewing = "interviewing"
	MatchStatusOffered      = "offered"
	MatchStatusHired        = "hired"
	MatchStatusRejected     = "rejected"
)

// matchTransitions is the full status state machine.
var matchTransitions = map[string][]string{
	MatchStatusMatched:      {MatchStatusInterviewing, MatchStatusRejected},
	MatchStatusInterviewing: {MatchStatusOffered, MatchStatusRejected},
	MatchStatusOffered:      {MatchStatusHired, MatchStatusRejected},
	MatchStatusHired:        {},
	MatchStatusRejected:     {},
}

// ValidMatchStatus reports whether s is a known match status.
func ValidMatchStatus(s string) bool {
	_, ok := matchTransitions[s]
	return ok
}

// CanTransition reports whether a match may move from one status to another.
func CanTransition(from, to string) bool {
	for _, next := range matchTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// MatchRecord is the single durable record of mutual interest for a
// (candidate, job) pair. MatchScore is captured at creation time and never
// recomputed.
type MatchRecord struct {
	ID              string    `json:"id"`
	CandidateID     string    `json:"candidate_id"`
	JobID           int64     `json:"job_id"`
	CompanyID       int64     `json:"company_id"`
	CandidateUserID string    `json:"candidate_user_id"`
	CompanyUserID   string    `json:"company_user_id"`
	MatchScore      int       `json:"match_score"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	// Joined data for list responses
	JobTitle    *string `json:"job_title,omitempty"`
	CompanyName *string `json:"company_name,omitempty"`
}

// MatchRepository defines data access for the match store. The store owns
// the (candidate_id, job_id) uniqueness guarantee.
type MatchRepository interface {
	// CreateIfAbsent inserts the match unless one already exists for its
	// (CandidateID, JobID) pair. It returns the stored record and whether
	// this call created it; losing a concurrent race is not an error.
	CreateIfAbsent(ctx context.Context, match *MatchRecord) (*MatchRecord, bool, error)
	// FindByPair returns the match for (candidateID, jobID), or ErrNotFound.
	FindByPair(ctx context.Context, candidateID string, jobID int64) (*MatchRecord, error)
	// GetByID returns the match by id, or ErrNotFound.
	GetByID(ctx context.Context, id string) (*MatchRecord, error)
	// UpdateStatus advances status only when the stored status still equals
	// expected; it reports whether the row was updated.
	UpdateStatus(ctx context.Context, id, expected, next string) (bool, error)
	// FindByCandidate lists matches for a candidate, newest first.
	FindByCandidate(ctx context.Context, candidateID string) ([]MatchRecord, error)
	// FindByJob lists matches for a job, newest first.
	FindByJob(ctx context.Context, jobID int64) ([]MatchRecord, error)
}

// MatchUsecase defines the match-side business contract. Status transitions
// are driven by external actors; the engine only enforces the state machine.
type MatchUsecase interface {
	GetMatch(ctx context.Context, candidateID string, jobID int64) (*MatchRecord, error)
	TransitionStatus(ctx context.Context, matchID, newStatus string) (*MatchRecord, error)
	ListByCandidate(ctx context.Context, candidateID string) ([]MatchRecord, error)
	ListByJob(ctx context.Context, jobID int64) ([]MatchRecord, error)
}
