package domain_test

import (
	"testing"

	"go-jobswipe-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	allowed := []struct{ from, to string }{
		{domain.MatchStatusMatched, domain.MatchStatusInterviewing},
		{domain.MatchStatusMatched, domain.MatchStatusRejected},
		{domain.MatchStatusInterviewing, domain.MatchStatusOffered},
		{domain.MatchStatusInterviewing, domain.MatchStatusRejected},
		{domain.MatchStatusOffered, domain.MatchStatusHired},
		{domain.MatchStatusOffered, domain.MatchStatusRejected},
	}
	for _, tc := range allowed {
		assert.True(t, domain.CanTransition(tc.from, tc.to), "%s -> %s should be allowed", tc.from, tc.to)
	}

	denied := []struct{ from, to string }{
		{domain.MatchStatusMatched, domain.MatchStatusOffered},
		{domain.MatchStatusMatched, domain.MatchStatusHired},
		{domain.MatchStatusMatched, domain.MatchStatusMatched},
		{domain.MatchStatusInterviewing, domain.MatchStatusHired},
		{domain.MatchStatusInterviewing, domain.MatchStatusMatched},
		{domain.MatchStatusOffered, domain.MatchStatusInterviewing},
		// Terminal states never move again
		{domain.MatchStatusHired, domain.MatchStatusRejected},
		{domain.MatchStatusHired, domain.MatchStatusMatched},
		{domain.MatchStatusRejected, domain.MatchStatusMatched},
		{domain.MatchStatusRejected, domain.MatchStatusInterviewing},
	}
	for _, tc := range denied {
		assert.False(t, domain.CanTransition(tc.from, tc.to), "%s -> %s should be denied", tc.from, tc.to)
	}
}

func TestValidMatchStatus(t *testing.T) {
	for _, s := range []string{"matched", "interviewing", "offered", "hired", "rejected"} {
		assert.True(t, domain.ValidMatchStatus(s))
	}
	assert.False(t, domain.ValidMatchStatus("ghosted"))
	assert.False(t, domain.ValidMatchStatus(""))
}

func TestSwipeHelpers(t *testing.T) {
	assert.True(t, domain.ValidDirection(domain.DirectionLeft))
	assert.True(t, domain.ValidDirection(domain.DirectionRight))
	assert.True(t, domain.ValidDirection(domain.DirectionSuper))
	assert.False(t, domain.ValidDirection("up"))

	assert.False(t, domain.IsInterested(domain.DirectionLeft))
	assert.True(t, domain.IsInterested(domain.DirectionRight))
	assert.True(t, domain.IsInterested(domain.DirectionSuper))

	candidateSwipe := &domain.SwipeRecord{ActorRole: domain.RoleCandidate, ActorID: "cand-1", SubjectID: "42"}
	assert.Equal(t, "cand-1", candidateSwipe.CandidateID())

	employerSwipe := &domain.SwipeRecord{ActorRole: domain.RoleEmployer, ActorID: "emp-1", SubjectID: "cand-1"}
	assert.Equal(t, "cand-1", employerSwipe.CandidateID())
}
