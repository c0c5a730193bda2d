package service

import (
	"context"
	"errors"
	"log"
	"sync"

	"careernav/internal/cache"
	"careernav/internal/engine"
	"careernav/internal/model"
	"careernav/internal/repository"
)

var ErrTestNotFinished = errors.New("test is not finished")

// TestService orchestrates one personality engine per user: rehydrating
// saved sessions, persisting after every answer, and storing the final
// result. Engines are single-threaded; the service serializes access to the
// session map, not to individual engines.
type TestService struct {
	progressRepo  repository.ProgressRepo
	resultRepo    repository.ResultRepo
	progressCache cache.ProgressCache
	broadcaster   Broadcaster

	mu       sync.Mutex
	sessions map[string]*engine.Engine
}

// AnswerOutcome is what the UI needs after recording an answer
type AnswerOutcome struct {
	Progress     float64         `json:"progress"`
	Finished     bool            `json:"finished"`
	NextQuestion *model.Question `json:"nextQuestion,omitempty"`
}

// NewTestService creates a new test service
func NewTestService(progressRepo repository.ProgressRepo, resultRepo repository.ResultRepo, progressCache cache.ProgressCache) *TestService {
	return &TestService{
		progressRepo:  progressRepo,
		resultRepo:    resultRepo,
		progressCache: progressCache,
		sessions:      make(map[string]*engine.Engine),
	}
}

// SetBroadcaster sets the broadcaster for WebSocket events
func (s *TestService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// session returns the user's engine, rehydrating from cache or storage when
// this process has not seen the user yet
func (s *TestService) session(ctx context.Context, userID string) *engine.Engine {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.sessions[userID]; ok {
		return e
	}

	e := engine.NewDefault()
	e.Start()

	progress, err := s.progressCache.Get(ctx, userID)
	if err != nil {
		log.Printf("test: progress cache read failed for %s: %v", userID, err)
	}
	if progress == nil {
		progress, err = s.progressRepo.Load(ctx, userID)
		if err != nil {
			log.Printf("test: progress load failed for %s: %v", userID, err)
		}
	}
	if progress != nil && !progress.Completed {
		e.Resume(progress.CurrentIndex, progress.Answers)
	}

	s.sessions[userID] = e
	return e
}

// Start begins a fresh test for the user, clearing any saved progress, and
// returns the first question
func (s *TestService) Start(ctx context.Context, userID string) *model.Question {
	e := s.session(ctx, userID)
	e.Start()

	// Losing saved progress must not abort the fresh in-memory session
	if err := s.progressCache.Delete(ctx, userID); err != nil {
		log.Printf("test: progress cache clear failed for %s: %v", userID, err)
	}
	if err := s.progressRepo.Clear(ctx, userID); err != nil {
		log.Printf("test: progress clear failed for %s: %v", userID, err)
	}

	return e.Current()
}

// Answer records one response, persists the session best-effort, and reports
// progress plus the next question
func (s *TestService) Answer(ctx context.Context, userID, questionID string, value model.AnswerValue) *AnswerOutcome {
	e := s.session(ctx, userID)
	e.Answer(questionID, value)

	s.persist(ctx, userID, e)

	outcome := &AnswerOutcome{
		Progress:     e.Progress(),
		Finished:     e.IsFinished(),
		NextQuestion: e.Current(),
	}

	if s.broadcaster != nil {
		s.broadcaster.BroadcastToAdmins("progress_update", map[string]interface{}{
			"userId":   userID,
			"progress": outcome.Progress,
			"finished": outcome.Finished,
		})
	}

	return outcome
}

// Progress returns the user's completion percentage
func (s *TestService) Progress(ctx context.Context, userID string) float64 {
	return s.session(ctx, userID).Progress()
}

// CurrentQuestion returns the next unanswered question, or nil when finished
func (s *TestService) CurrentQuestion(ctx context.Context, userID string) *model.Question {
	return s.session(ctx, userID).Current()
}

// Results computes and stores the personality result. Returns
// ErrTestNotFinished until every question is answered.
func (s *TestService) Results(ctx context.Context, userID string) (*model.TestResult, error) {
	e := s.session(ctx, userID)
	personality := e.Results()
	if personality == nil {
		return nil, ErrTestNotFinished
	}

	result := &model.TestResult{
		UserID:      userID,
		Personality: personality,
	}
	if err := s.resultRepo.Create(ctx, result); err != nil {
		log.Printf("test: result store failed for %s: %v", userID, err)
	}

	// Mark the stored session completed so a later visit starts clean
	index, answers := e.Snapshot()
	progress := &model.TestProgress{
		UserID:       userID,
		CurrentIndex: index,
		Answers:      answers,
		Completed:    true,
	}
	if err := s.progressRepo.Save(ctx, progress); err != nil {
		log.Printf("test: progress save failed for %s: %v", userID, err)
	}
	if err := s.progressCache.Delete(ctx, userID); err != nil {
		log.Printf("test: progress cache clear failed for %s: %v", userID, err)
	}

	if s.broadcaster != nil {
		s.broadcaster.BroadcastToAdmins("test_completed", map[string]interface{}{
			"userId":   userID,
			"dominant": personality.Archetype.Dominant,
		})
	}

	return result, nil
}

// persist writes the session snapshot to cache and storage, logging failures
// instead of surfacing them: the in-memory session is the source of truth
// while the test is running
func (s *TestService) persist(ctx context.Context, userID string, e *engine.Engine) {
	index, answers := e.Snapshot()
	progress := &model.TestProgress{
		UserID:       userID,
		CurrentIndex: index,
		Answers:      answers,
		Completed:    e.IsFinished(),
	}

	if err := s.progressCache.Set(ctx, progress); err != nil {
		log.Printf("test: progress cache write failed for %s: %v", userID, err)
	}
	if err := s.progressRepo.Save(ctx, progress); err != nil {
		log.Printf("test: progress save failed for %s: %v", userID, err)
	}
}
