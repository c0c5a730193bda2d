package service

import (
	"context"
	"log"

	"careernav/internal/model"
	"careernav/internal/repository"
	"careernav/internal/scoring"
)

// SkillsService runs the linear scoring model over a submitted record and
// stores the outcome for the dashboard
type SkillsService struct {
	resultRepo  repository.ResultRepo
	broadcaster Broadcaster
}

// NewSkillsService creates a new skills service
func NewSkillsService(resultRepo repository.ResultRepo) *SkillsService {
	return &SkillsService{resultRepo: resultRepo}
}

// SetBroadcaster sets the broadcaster for WebSocket events
func (s *SkillsService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// Evaluate scores one record: digital skill index plus employment
// probability. The scoring itself cannot fail; storage failures are logged
// and the computed result is still returned.
func (s *SkillsService) Evaluate(ctx context.Context, userID string, rec *model.SkillRecord) *model.TestResult {
	result := &model.TestResult{
		UserID:     userID,
		SkillIndex: scoring.EvaluateSkills(rec),
		Employment: scoring.EvaluateEmployment(rec),
	}

	if err := s.resultRepo.Create(ctx, result); err != nil {
		log.Printf("skills: result store failed for %s: %v", userID, err)
	}

	if s.broadcaster != nil {
		s.broadcaster.BroadcastToAdmins("skills_evaluated", map[string]interface{}{
			"userId":     userID,
			"skillIndex": result.SkillIndex.Total,
			"percentile": result.SkillIndex.Percentile,
		})
	}

	return result
}
