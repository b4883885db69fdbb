package usecase_test

import (
	"context"
	"errors"
	"testing"

	"go-jobswipe-backend/internal/domain"
	"go-jobswipe-backend/internal/usecase"
	"go-jobswipe-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockMatchRepo struct {
	mock.Mock
}

func (m *mockMatchRepo) CreateIfAbsent(ctx context.Context, match *domain.MatchRecord) (*domain.MatchRecord, bool, error) {
	args := m.Called(ctx, match)
	var rec *domain.MatchRecord
	if args.Get(0) != nil {
		rec = args.Get(0).(*domain.MatchRecord)
	}
	return rec, args.Bool(1), args.Error(2)
}

func (m *mockMatchRepo) FindByPair(ctx context.Context, candidateID string, jobID int64) (*domain.MatchRecord, error) {
	args := m.Called(ctx, candidateID, jobID)
	var rec *domain.MatchRecord
	if args.Get(0) != nil {
		rec = args.Get(0).(*domain.MatchRecord)
	}
	return rec, args.Error(1)
}

func (m *mockMatchRepo) GetByID(ctx context.Context, id string) (*domain.MatchRecord, error) {
	args := m.Called(ctx, id)
	var rec *domain.MatchRecord
	if args.Get(0) != nil {
		rec = args.Get(0).(*domain.MatchRecord)
	}
	return rec, args.Error(1)
}

func (m *mockMatchRepo) UpdateStatus(ctx context.Context, id, expected, next string) (bool, error) {
	args := m.Called(ctx, id, expected, next)
	return args.Bool(0), args.Error(1)
}

func (m *mockMatchRepo) FindByCandidate(ctx context.Context, candidateID string) ([]domain.MatchRecord, error) {
	args := m.Called(ctx, candidateID)
	var recs []domain.MatchRecord
	if args.Get(0) != nil {
		recs = args.Get(0).([]domain.MatchRecord)
	}
	return recs, args.Error(1)
}

func (m *mockMatchRepo) FindByJob(ctx context.Context, jobID int64) ([]domain.MatchRecord, error) {
	args := m.Called(ctx, jobID)
	var recs []domain.MatchRecord
	if args.Get(0) != nil {
		recs = args.Get(0).([]domain.MatchRecord)
	}
	return recs, args.Error(1)
}

func storedMatch(status string) *domain.MatchRecord {
	return &domain.MatchRecord{
		ID:          "match-1",
		CandidateID: testCandidateID,
		JobID:       testJobID,
		CompanyID:   testCompanyID,
		MatchScore:  75,
		Status:      status,
	}
}

func TestGetMatch(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo := new(mockMatchRepo)
		repo.On("FindByPair", mock.Anything, testCandidateID, testJobID).
			Return(storedMatch(domain.MatchStatusMatched), nil)

		uc := usecase.NewMatchUsecase(repo, &fakeDispatcher{})
		match, err := uc.GetMatch(context.Background(), testCandidateID, testJobID)
		require.NoError(t, err)
		assert.Equal(t, "match-1", match.ID)
	})

	t.Run("not found", func(t *testing.T) {
		repo := new(mockMatchRepo)
		repo.On("FindByPair", mock.Anything, testCandidateID, testJobID).
			Return(nil, domain.ErrNotFound)

		uc := usecase.NewMatchUsecase(repo, &fakeDispatcher{})
		_, err := uc.GetMatch(context.Background(), testCandidateID, testJobID)
		assert.Equal(t, apperror.CodeNotFound, appErr(t, err).Code)
	})
}

func TestTransitionStatus_Valid(t *testing.T) {
	cases := []struct{ from, to string }{
		{domain.MatchStatusMatched, domain.MatchStatusInterviewing},
		{domain.MatchStatusMatched, domain.MatchStatusRejected},
		{domain.MatchStatusInterviewing, domain.MatchStatusOffered},
		{domain.MatchStatusInterviewing, domain.MatchStatusRejected},
		{domain.MatchStatusOffered, domain.MatchStatusHired},
		{domain.MatchStatusOffered, domain.MatchStatusRejected},
	}
	for _, tc := range cases {
		t.Run(tc.from+"_to_"+tc.to, func(t *testing.T) {
			repo := new(mockMatchRepo)
			repo.On("GetByID", mock.Anything, "match-1").Return(storedMatch(tc.from), nil)
			repo.On("UpdateStatus", mock.Anything, "match-1", tc.from, tc.to).Return(true, nil)

			dispatcher := &fakeDispatcher{}
			uc := usecase.NewMatchUsecase(repo, dispatcher)
			match, err := uc.TransitionStatus(context.Background(), "match-1", tc.to)
			require.NoError(t, err)
			assert.Equal(t, tc.to, match.Status)
			require.Len(t, dispatcher.changed, 1)
			assert.Equal(t, tc.from, dispatcher.changed[0].OldStatus)
			assert.Equal(t, tc.to, dispatcher.changed[0].NewStatus)
			repo.AssertExpectations(t)
		})
	}
}

func TestTransitionStatus_Invalid(t *testing.T) {
	cases := []struct{ from, to string }{
		{domain.MatchStatusMatched, domain.MatchStatusOffered},
		{domain.MatchStatusMatched, domain.MatchStatusHired},
		{domain.MatchStatusInterviewing, domain.MatchStatusHired},
		{domain.MatchStatusInterviewing, domain.MatchStatusMatched},
		{domain.MatchStatusHired, domain.MatchStatusRejected},
		{domain.MatchStatusRejected, domain.MatchStatusMatched},
		{domain.MatchStatusRejected, domain.MatchStatusInterviewing},
	}
	for _, tc := range cases {
		t.Run(tc.from+"_to_"+tc.to, func(t *testing.T) {
			repo := new(mockMatchRepo)
			repo.On("GetByID", mock.Anything, "match-1").Return(storedMatch(tc.from), nil)

			dispatcher := &fakeDispatcher{}
			uc := usecase.NewMatchUsecase(repo, dispatcher)
			_, err := uc.TransitionStatus(context.Background(), "match-1", tc.to)
			assert.Equal(t, apperror.CodeInvalidTransition, appErr(t, err).Code)
			assert.Empty(t, dispatcher.changed)
			repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestTransitionStatus_UnknownStatus(t *testing.T) {
	repo := new(mockMatchRepo)
	uc := usecase.NewMatchUsecase(repo, &fakeDispatcher{})
	_, err := uc.TransitionStatus(context.Background(), "match-1", "ghosted")
	assert.Equal(t, apperror.CodeValidation, appErr(t, err).Code)
	repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestTransitionStatus_NotFound(t *testing.T) {
	repo := new(mockMatchRepo)
	repo.On("GetByID", mock.Anything, "missing").Return(nil, domain.ErrNotFound)

	uc := usecase.NewMatchUsecase(repo, &fakeDispatcher{})
	_, err := uc.TransitionStatus(context.Background(), "missing", domain.MatchStatusInterviewing)
	assert.Equal(t, apperror.CodeNotFound, appErr(t, err).Code)
}

func TestTransitionStatus_LostRace(t *testing.T) {
	repo := new(mockMatchRepo)
	repo.On("GetByID", mock.Anything, "match-1").Return(storedMatch(domain.MatchStatusMatched), nil)
	repo.On("UpdateStatus", mock.Anything, "match-1", domain.MatchStatusMatched, domain.MatchStatusInterviewing).
		Return(false, nil)

	dispatcher := &fakeDispatcher{}
	uc := usecase.NewMatchUsecase(repo, dispatcher)
	_, err := uc.TransitionStatus(context.Background(), "match-1", domain.MatchStatusInterviewing)
	assert.Equal(t, apperror.CodeInvalidTransition, appErr(t, err).Code)
	assert.Empty(t, dispatcher.changed, "no event when the compare-and-set lost")
}

func TestTransitionStatus_StorageErrors(t *testing.T) {
	repo := new(mockMatchRepo)
	repo.On("GetByID", mock.Anything, "match-1").Return(storedMatch(domain.MatchStatusMatched), nil)
	repo.On("UpdateStatus", mock.Anything, "match-1", domain.MatchStatusMatched, domain.MatchStatusRejected).
		Return(false, domain.ErrStorageConflict)

	uc := usecase.NewMatchUsecase(repo, &fakeDispatcher{})
	_, err := uc.TransitionStatus(context.Background(), "match-1", domain.MatchStatusRejected)
	ae := appErr(t, err)
	assert.Equal(t, apperror.CodeStorageConflict, ae.Code)
	assert.True(t, ae.Retryable)
}

func TestListMatches(t *testing.T) {
	t.Run("by candidate", func(t *testing.T) {
		repo := new(mockMatchRepo)
		repo.On("FindByCandidate", mock.Anything, testCandidateID).
			Return([]domain.MatchRecord{*storedMatch(domain.MatchStatusMatched)}, nil)

		uc := usecase.NewMatchUsecase(repo, &fakeDispatcher{})
		matches, err := uc.ListByCandidate(context.Background(), testCandidateID)
		require.NoError(t, err)
		assert.Len(t, matches, 1)
	})

	t.Run("by job storage failure", func(t *testing.T) {
		repo := new(mockMatchRepo)
		repo.On("FindByJob", mock.Anything, testJobID).Return(nil, errors.New("connection refused"))

		uc := usecase.NewMatchUsecase(repo, &fakeDispatcher{})
		_, err := uc.ListByJob(context.Background(), testJobID)
		assert.Equal(t, apperror.CodeStorageUnavailable, appErr(t, err).Code)
	})
}
