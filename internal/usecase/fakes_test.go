package usecase_test

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go-jobswipe-backend/internal/domain"

	"github.com/google/uuid"
)

// In-memory fakes mirroring the storage-level guarantees of the postgres
// repositories (upsert uniqueness, insert-or-ignore). All methods are safe
// for concurrent use, which the invariant tests rely on.

type fakeSwipeRepo struct {
	mu     sync.Mutex
	swipes map[string]*domain.SwipeRecord
	nextID int64
	seq    int64 // monotonic stand-in for updated_at ordering
	order  map[int64]int64
}

func newFakeSwipeRepo() *fakeSwipeRepo {
	return &fakeSwipeRepo{
		swipes: make(map[string]*domain.SwipeRecord),
		order:  make(map[int64]int64),
	}
}

func swipeKey(actorID, subjectID string, jobContextID int64) string {
	return fmt.Sprintf("%s|%s|%d", actorID, subjectID, jobContextID)
}

func (r *fakeSwipeRepo) UpsertActive(_ context.Context, swipe *domain.SwipeRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	r.seq++
	key := swipeKey(swipe.ActorID, swipe.SubjectID, swipe.JobContextID)
	if existing, ok := r.swipes[key]; ok {
		existing.Direction = swipe.Direction
		existing.UpdatedAt = now
		existing.RetractedAt = nil
		r.order[existing.ID] = r.seq
		*swipe = *existing
		return nil
	}

	r.nextID++
	swipe.ID = r.nextID
	swipe.CreatedAt = now
	swipe.UpdatedAt = now
	swipe.RetractedAt = nil
	stored := *swipe
	r.swipes[key] = &stored
	r.order[swipe.ID] = r.seq
	return nil
}

func (r *fakeSwipeRepo) FindActiveSwipe(_ context.Context, actorID, subjectID string, jobContextID int64) (*domain.SwipeRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.swipes[swipeKey(actorID, subjectID, jobContextID)]; ok && s.RetractedAt == nil {
		copied := *s
		return &copied, nil
	}
	return nil, domain.ErrNotFound
}

func (r *fakeSwipeRepo) FindCounterpartInterest(_ context.Context, candidateID string, jobID int64, counterpartRole string) (*domain.SwipeRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range r.swipes {
		if s.ActorRole != counterpartRole || s.JobContextID != jobID ||
			s.RetractedAt != nil || !domain.IsInterested(s.Direction) {
			continue
		}
		if s.CandidateID() == candidateID {
			copied := *s
			return &copied, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeSwipeRepo) FindLatestByActor(_ context.Context, actorID string) (*domain.SwipeRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var latest *domain.SwipeRecord
	for _, s := range r.swipes {
		if s.ActorID != actorID {
			continue
		}
		if latest == nil || r.order[s.ID] > r.order[latest.ID] {
			latest = s
		}
	}
	if latest == nil {
		return nil, domain.ErrNotFound
	}
	copied := *latest
	return &copied, nil
}

func (r *fakeSwipeRepo) Retract(_ context.Context, id int64, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range r.swipes {
		if s.ID == id && s.RetractedAt == nil {
			retracted := at
			s.RetractedAt = &retracted
			s.UpdatedAt = at
			r.seq++
			r.order[s.ID] = r.seq
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeSwipeRepo) activeCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	count := 0
	for _, s := range r.swipes {
		if s.RetractedAt == nil {
			count++
		}
	}
	return count
}

type fakeMatchRepo struct {
	mu     sync.Mutex
	byPair map[string]*domain.MatchRecord
}

func newFakeMatchRepo() *fakeMatchRepo {
	return &fakeMatchRepo{byPair: make(map[string]*domain.MatchRecord)}
}

func pairKey(candidateID string, jobID int64) string {
	return fmt.Sprintf("%s|%d", candidateID, jobID)
}

func (r *fakeMatchRepo) CreateIfAbsent(_ context.Context, match *domain.MatchRecord) (*domain.MatchRecord, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := pairKey(match.CandidateID, match.JobID)
	if existing, ok := r.byPair[key]; ok {
		copied := *existing
		return &copied, false, nil
	}

	match.ID = uuid.NewString()
	match.CreatedAt = time.Now()
	match.UpdatedAt = match.CreatedAt
	stored := *match
	r.byPair[key] = &stored
	copied := stored
	return &copied, true, nil
}

func (r *fakeMatchRepo) FindByPair(_ context.Context, candidateID string, jobID int64) (*domain.MatchRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if m, ok := r.byPair[pairKey(candidateID, jobID)]; ok {
		copied := *m
		return &copied, nil
	}
	return nil, domain.ErrNotFound
}

func (r *fakeMatchRepo) GetByID(_ context.Context, id string) (*domain.MatchRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, m := range r.byPair {
		if m.ID == id {
			copied := *m
			return &copied, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeMatchRepo) UpdateStatus(_ context.Context, id, expected, next string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, m := range r.byPair {
		if m.ID == id {
			if m.Status != expected {
				return false, nil
			}
			m.Status = next
			m.UpdatedAt = time.Now()
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeMatchRepo) FindByCandidate(_ context.Context, candidateID string) ([]domain.MatchRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matches []domain.MatchRecord
	for _, m := range r.byPair {
		if m.CandidateID == candidateID {
			matches = append(matches, *m)
		}
	}
	return matches, nil
}

func (r *fakeMatchRepo) FindByJob(_ context.Context, jobID int64) ([]domain.MatchRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matches []domain.MatchRecord
	for _, m := range r.byPair {
		if m.JobID == jobID {
			matches = append(matches, *m)
		}
	}
	return matches, nil
}

func (r *fakeMatchRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.byPair)
}

type fakeSnapshots struct {
	candidates map[string]*domain.CandidateSnapshot
	jobs       map[int64]*domain.JobSnapshot
	companies  map[int64]*domain.CompanySnapshot
}

func (p *fakeSnapshots) GetCandidateSnapshot(_ context.Context, userID string) (*domain.CandidateSnapshot, error) {
	if c, ok := p.candidates[userID]; ok {
		return c, nil
	}
	return nil, domain.ErrNotFound
}

func (p *fakeSnapshots) GetJobSnapshot(_ context.Context, jobID int64) (*domain.JobSnapshot, error) {
	if j, ok := p.jobs[jobID]; ok {
		return j, nil
	}
	return nil, domain.ErrNotFound
}

func (p *fakeSnapshots) GetCompanySnapshot(_ context.Context, companyID int64) (*domain.CompanySnapshot, error) {
	if c, ok := p.companies[companyID]; ok {
		return c, nil
	}
	return nil, domain.ErrNotFound
}

type fakeDispatcher struct {
	mu      sync.Mutex
	created []domain.MatchCreatedEvent
	changed []domain.MatchStatusChangedEvent
}

func (d *fakeDispatcher) MatchCreated(_ context.Context, event domain.MatchCreatedEvent) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.created = append(d.created, event)
}

func (d *fakeDispatcher) MatchStatusChanged(_ context.Context, event domain.MatchStatusChangedEvent) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.changed = append(d.changed, event)
}

func (d *fakeDispatcher) createdCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.created)
}
