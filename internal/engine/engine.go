// Package engine implements the deterministic personality scoring engine:
// Big Five trait aggregation plus Jungian archetype voting over a fixed
// question bank. One Engine holds one user's session; instances are not safe
// for concurrent use, callers keep one per session.
package engine

import (
	"log"
	"math"

	"careernav/internal/bank"
	"careernav/internal/model"
)

// ArchetypeFallback is returned as dominant when a finished session somehow
// contains no archetype answers.
const ArchetypeFallback = model.ArchetypeSage

// Engine is a resumable, restartable scoring session over an ordered
// question list.
type Engine struct {
	questions    []model.Question
	byID         map[string]*model.Question
	currentIndex int
	answers      []model.Answer
}

// New creates an engine over the given ordered question list
func New(questions []model.Question) *Engine {
	byID := make(map[string]*model.Question, len(questions))
	for i := range questions {
		byID[questions[i].ID] = &questions[i]
	}
	return &Engine{questions: questions, byID: byID}
}

// NewDefault creates an engine over the built-in question bank
func NewDefault() *Engine {
	return New(bank.Questions)
}

// Start resets the session: index to zero, answers cleared
func (e *Engine) Start() {
	e.currentIndex = 0
	e.answers = nil
}

// Answer records a response and advances the session. Answering an unknown
// question or a finished session is a logged no-op, never an error: the UI
// may race ahead of state and must not lose the session over it.
func (e *Engine) Answer(questionID string, value model.AnswerValue) {
	if e.IsFinished() {
		log.Printf("engine: answer %q ignored, session already finished", questionID)
		return
	}
	q := e.byID[questionID]
	if q == nil {
		log.Printf("engine: answer for unknown question %q ignored", questionID)
		return
	}
	e.answers = append(e.answers, model.Answer{
		QuestionID: questionID,
		Kind:       q.Kind,
		Value:      value,
	})
	e.currentIndex++
}

// Progress returns completion as a percentage in [0,100]
func (e *Engine) Progress() float64 {
	if len(e.questions) == 0 {
		return 0
	}
	p := float64(e.currentIndex) / float64(len(e.questions)) * 100
	if p > 100 {
		return 100
	}
	return p
}

// IsFinished reports whether every question has been answered
func (e *Engine) IsFinished() bool {
	return e.currentIndex >= len(e.questions)
}

// Current returns the next unanswered question, or nil when finished
func (e *Engine) Current() *model.Question {
	if e.currentIndex < 0 || e.currentIndex >= len(e.questions) {
		return nil
	}
	return &e.questions[e.currentIndex]
}

// Results computes the personality result. Returns nil until the session is
// finished; callers must check IsFinished first. The computation is a pure
// function of the recorded answers, so repeated calls return equal values.
func (e *Engine) Results() *model.PersonalityResult {
	if !e.IsFinished() {
		return nil
	}

	sums := make(map[model.TraitCategory]int)
	counts := make(map[model.TraitCategory]int)
	tally := make(map[model.Archetype]int)

	for _, a := range e.answers {
		q := e.byID[a.QuestionID]
		if q == nil {
			continue
		}
		switch a.Kind {
		case model.QuestionKindTraitScale:
			sums[q.Category] += a.Value.Score
			counts[q.Category]++
		case model.QuestionKindArchetype:
			tally[a.Value.Archetype]++
		}
	}

	var bigFive model.BigFiveResult
	for _, cat := range model.TraitCategories {
		n := counts[cat]
		if n == 0 {
			// Unanswered trait stays at the midpoint, not zero
			bigFive.Set(cat, 50)
			continue
		}
		pct := math.Round(float64(sums[cat]) / float64(n*5) * 100)
		bigFive.Set(cat, int(pct))
	}

	// Ties break on the canonical archetype order, first maximum wins
	dominant := ArchetypeFallback
	best := 0
	for _, a := range model.Archetypes {
		if tally[a] > best {
			best = tally[a]
			dominant = a
		}
	}

	return &model.PersonalityResult{
		BigFive: bigFive,
		Archetype: model.ArchetypeResult{
			Tally:    tally,
			Dominant: dominant,
		},
	}
}

// Resume rebuilds the session from persisted state: a saved index and a
// questionId -> value map. Saved answers referencing questions no longer in
// the bank are skipped. The map form loses the original answering order;
// scoring does not depend on it.
func (e *Engine) Resume(savedIndex int, saved map[string]model.AnswerValue) {
	e.answers = nil
	// Walk the bank in order so the rebuilt sequence is deterministic
	for i := range e.questions {
		q := &e.questions[i]
		v, ok := saved[q.ID]
		if !ok {
			continue
		}
		e.answers = append(e.answers, model.Answer{
			QuestionID: q.ID,
			Kind:       q.Kind,
			Value:      v,
		})
	}
	if savedIndex < 0 {
		savedIndex = 0
	}
	e.currentIndex = savedIndex
}

// Snapshot returns the persistable session state: the current index and the
// answers keyed by question id.
func (e *Engine) Snapshot() (int, map[string]model.AnswerValue) {
	saved := make(map[string]model.AnswerValue, len(e.answers))
	for _, a := range e.answers {
		saved[a.QuestionID] = a.Value
	}
	return e.currentIndex, saved
}
