package domain

import "context"

// MatchCreatedEvent is emitted exactly once, strictly after the MatchRecord
// write has committed.
type MatchCreatedEvent struct {
	MatchID     string `json:"match_id"`
	CandidateID string `json:"candidate_id"`
	JobID       int64  `json:"job_id"`
	Score       int    `json:"score"`
}

// MatchStatusChangedEvent is emitted after a successful status transition.
type MatchStatusChangedEvent struct {
	MatchID   string `json:"match_id"`
	OldStatus string `json:"old_status"`
	NewStatus string `json:"new_status"`
}

// EventDispatcher hands engine events to the external notification system.
// Implementations must be fire-and-forget: a slow or failing dispatcher never
// blocks or fails the swipe path.
type EventDispatcher interface {
	MatchCreated(ctx context.Context, event MatchCreatedEvent)
	MatchStatusChanged(ctx context.Context, event MatchStatusChangedEvent)
}
