package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"careernav/internal/bank"
	"careernav/internal/model"
)

// MockProgressRepo is a mock type for the ProgressRepo interface
type MockProgressRepo struct {
	mock.Mock
}

func (m *MockProgressRepo) Load(ctx context.Context, userID string) (*model.TestProgress, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TestProgress), args.Error(1)
}

func (m *MockProgressRepo) Save(ctx context.Context, progress *model.TestProgress) error {
	args := m.Called(ctx, progress)
	return args.Error(0)
}

func (m *MockProgressRepo) Clear(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockResultRepo is a mock type for the ResultRepo interface
type MockResultRepo struct {
	mock.Mock
}

func (m *MockResultRepo) Create(ctx context.Context, result *model.TestResult) error {
	args := m.Called(ctx, result)
	return args.Error(0)
}

func (m *MockResultRepo) GetByUserID(ctx context.Context, userID string) ([]*model.TestResult, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.TestResult), args.Error(1)
}

func (m *MockResultRepo) List(ctx context.Context, limit int64) ([]*model.TestResult, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.TestResult), args.Error(1)
}

// MockProgressCache is a mock type for the ProgressCache interface
type MockProgressCache struct {
	mock.Mock
}

func (m *MockProgressCache) Set(ctx context.Context, progress *model.TestProgress) error {
	args := m.Called(ctx, progress)
	return args.Error(0)
}

func (m *MockProgressCache) Get(ctx context.Context, userID string) (*model.TestProgress, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TestProgress), args.Error(1)
}

func (m *MockProgressCache) Delete(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func newTestService() (*TestService, *MockProgressRepo, *MockResultRepo, *MockProgressCache) {
	progressRepo := new(MockProgressRepo)
	resultRepo := new(MockResultRepo)
	progressCache := new(MockProgressCache)
	return NewTestService(progressRepo, resultRepo, progressCache), progressRepo, resultRepo, progressCache
}

func answerAll(ctx context.Context, svc *TestService, userID string) *AnswerOutcome {
	var outcome *AnswerOutcome
	for _, q := range bank.Questions {
		switch q.Kind {
		case model.QuestionKindTraitScale:
			outcome = svc.Answer(ctx, userID, q.ID, model.AnswerValue{Score: 4})
		case model.QuestionKindArchetype:
			outcome = svc.Answer(ctx, userID, q.ID, model.AnswerValue{Archetype: q.Options[0].Archetype})
		}
	}
	return outcome
}

func TestStartClearsStoredProgress(t *testing.T) {
	svc, progressRepo, _, progressCache := newTestService()
	ctx := context.Background()

	progressCache.On("Get", ctx, "user_1").Return(nil, nil)
	progressRepo.On("Load", ctx, "user_1").Return(nil, nil)
	progressCache.On("Delete", ctx, "user_1").Return(nil)
	progressRepo.On("Clear", ctx, "user_1").Return(nil)

	first := svc.Start(ctx, "user_1")
	require.NotNil(t, first)
	assert.Equal(t, bank.Questions[0].ID, first.ID)
	assert.Equal(t, 0.0, svc.Progress(ctx, "user_1"))

	progressRepo.AssertCalled(t, "Clear", ctx, "user_1")
	progressCache.AssertCalled(t, "Delete", ctx, "user_1")
}

func TestAnswerPersistsSnapshot(t *testing.T) {
	svc, progressRepo, _, progressCache := newTestService()
	ctx := context.Background()

	progressCache.On("Get", ctx, "user_1").Return(nil, nil)
	progressRepo.On("Load", ctx, "user_1").Return(nil, nil)
	progressCache.On("Set", ctx, mock.Anything).Return(nil)
	progressRepo.On("Save", ctx, mock.Anything).Return(nil)

	outcome := svc.Answer(ctx, "user_1", "o1", model.AnswerValue{Score: 5})
	require.NotNil(t, outcome)
	assert.False(t, outcome.Finished)
	assert.Greater(t, outcome.Progress, 0.0)
	require.NotNil(t, outcome.NextQuestion)
	assert.Equal(t, bank.Questions[1].ID, outcome.NextQuestion.ID)

	progressRepo.AssertCalled(t, "Save", ctx, mock.MatchedBy(func(p *model.TestProgress) bool {
		return p.UserID == "user_1" && p.CurrentIndex == 1 && !p.Completed
	}))
	progressCache.AssertCalled(t, "Set", ctx, mock.Anything)
}

func TestAnswerSurvivesPersistenceFailure(t *testing.T) {
	svc, progressRepo, _, progressCache := newTestService()
	ctx := context.Background()

	progressCache.On("Get", ctx, "user_1").Return(nil, nil)
	progressRepo.On("Load", ctx, "user_1").Return(nil, nil)
	progressCache.On("Set", ctx, mock.Anything).Return(errors.New("redis down"))
	progressRepo.On("Save", ctx, mock.Anything).Return(errors.New("mongo down"))

	// Losing persistence must not lose the in-memory session
	outcome := svc.Answer(ctx, "user_1", "o1", model.AnswerValue{Score: 5})
	require.NotNil(t, outcome)
	assert.Greater(t, outcome.Progress, 0.0)
	assert.Equal(t, outcome.Progress, svc.Progress(ctx, "user_1"))
}

func TestResultsBeforeFinishReturnsError(t *testing.T) {
	svc, progressRepo, _, progressCache := newTestService()
	ctx := context.Background()

	progressCache.On("Get", ctx, "user_1").Return(nil, nil)
	progressRepo.On("Load", ctx, "user_1").Return(nil, nil)

	result, err := svc.Results(ctx, "user_1")
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrTestNotFinished)
}

func TestFullRunProducesAndStoresResult(t *testing.T) {
	svc, progressRepo, resultRepo, progressCache := newTestService()
	ctx := context.Background()

	progressCache.On("Get", ctx, "user_1").Return(nil, nil)
	progressRepo.On("Load", ctx, "user_1").Return(nil, nil)
	progressCache.On("Set", ctx, mock.Anything).Return(nil)
	progressRepo.On("Save", ctx, mock.Anything).Return(nil)
	progressCache.On("Delete", ctx, "user_1").Return(nil)
	resultRepo.On("Create", ctx, mock.Anything).Return(nil)

	outcome := answerAll(ctx, svc, "user_1")
	require.NotNil(t, outcome)
	assert.True(t, outcome.Finished)
	assert.Equal(t, 100.0, outcome.Progress)
	assert.Nil(t, outcome.NextQuestion)

	result, err := svc.Results(ctx, "user_1")
	require.NoError(t, err)
	require.NotNil(t, result)
	require.NotNil(t, result.Personality)
	assert.NotEmpty(t, result.Personality.Archetype.Dominant)

	resultRepo.AssertCalled(t, "Create", ctx, mock.Anything)
	progressRepo.AssertCalled(t, "Save", ctx, mock.MatchedBy(func(p *model.TestProgress) bool {
		return p.UserID == "user_1" && p.Completed
	}))
}

func TestSessionRehydratesFromCache(t *testing.T) {
	svc, progressRepo, _, progressCache := newTestService()
	ctx := context.Background()

	saved := &model.TestProgress{
		UserID:       "user_1",
		CurrentIndex: 2,
		Answers: map[string]model.AnswerValue{
			"o1": {Score: 4},
			"o2": {Score: 4},
		},
	}
	progressCache.On("Get", ctx, "user_1").Return(saved, nil)

	progress := svc.Progress(ctx, "user_1")
	assert.InDelta(t, 4.0, progress, 0.0001) // 2 of 50

	// Cache hit means storage is never consulted
	progressRepo.AssertNotCalled(t, "Load", ctx, "user_1")
}

func TestSessionFallsBackToRepoOnCacheMiss(t *testing.T) {
	svc, progressRepo, _, progressCache := newTestService()
	ctx := context.Background()

	saved := &model.TestProgress{
		UserID:       "user_1",
		CurrentIndex: 1,
		Answers:      map[string]model.AnswerValue{"o1": {Score: 3}},
	}
	progressCache.On("Get", ctx, "user_1").Return(nil, errors.New("redis down"))
	progressRepo.On("Load", ctx, "user_1").Return(saved, nil)

	progress := svc.Progress(ctx, "user_1")
	assert.InDelta(t, 2.0, progress, 0.0001) // 1 of 50
}
