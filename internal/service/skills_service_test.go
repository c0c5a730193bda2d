package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"careernav/internal/model"
)

func TestSkillsEvaluateStoresResult(t *testing.T) {
	resultRepo := new(MockResultRepo)
	svc := NewSkillsService(resultRepo)
	ctx := context.Background()

	resultRepo.On("Create", ctx, mock.Anything).Return(nil)

	result := svc.Evaluate(ctx, "user_1", &model.SkillRecord{
		Skills: map[string]bool{"skill_1": true},
		Region: "moscow",
	})

	require.NotNil(t, result)
	require.NotNil(t, result.SkillIndex)
	require.NotNil(t, result.Employment)
	assert.Equal(t, "user_1", result.UserID)

	resultRepo.AssertCalled(t, "Create", ctx, mock.MatchedBy(func(r *model.TestResult) bool {
		return r.UserID == "user_1" && r.SkillIndex != nil && r.Employment != nil
	}))
}

func TestSkillsEvaluateReturnsResultDespiteStorageFailure(t *testing.T) {
	resultRepo := new(MockResultRepo)
	svc := NewSkillsService(resultRepo)
	ctx := context.Background()

	resultRepo.On("Create", ctx, mock.Anything).Return(errors.New("mongo down"))

	result := svc.Evaluate(ctx, "user_1", &model.SkillRecord{Region: "moscow"})
	require.NotNil(t, result)
	assert.NotNil(t, result.SkillIndex)
}
