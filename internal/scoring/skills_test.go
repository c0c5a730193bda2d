package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careernav/internal/model"
)

func TestSkillIndexAllFalseIsZero(t *testing.T) {
	res := EvaluateSkills(&model.SkillRecord{Region: "moscow"})
	assert.Equal(t, 0.0, res.Total)
	assert.Equal(t, -RegionalAverages["moscow"], res.Difference)
}

func TestSkillIndexAllTrueIsWeightSum(t *testing.T) {
	skills := make(map[string]bool, len(SkillIDs))
	for _, id := range SkillIDs {
		skills[id] = true
	}

	want := 0.0
	for _, w := range SkillWeights {
		want += w
	}

	res := EvaluateSkills(&model.SkillRecord{Skills: skills, Region: "moscow"})
	assert.InDelta(t, want, res.Total, 1e-9)
	assert.Equal(t, 100.0, res.Percentile)
}

func TestSkillIndexTwoSkillsScenario(t *testing.T) {
	res := EvaluateSkills(&model.SkillRecord{
		Skills: map[string]bool{"skill_1": true, "skill_9": true},
		Region: "moscow",
	})

	want := SkillWeights["skill_1"] + SkillWeights["skill_9"]
	assert.InDelta(t, want, res.Total, 1e-9)
	assert.InDelta(t, want-RegionalAverages["moscow"], res.Difference, 1e-9)
	assert.Equal(t, "moscow", res.Region)
}

func TestSkillIndexUnknownRegionFallsBackToMoscow(t *testing.T) {
	res := EvaluateSkills(&model.SkillRecord{Region: "atlantis"})
	assert.Equal(t, DefaultRegion, res.Region)
	assert.Equal(t, RegionalAverages[DefaultRegion], res.RegionalAverage)
}

func TestSkillIndexBreakdownOrderAndContribution(t *testing.T) {
	res := EvaluateSkills(&model.SkillRecord{
		Skills: map[string]bool{"skill_3": true},
		Region: "moscow",
	})

	require.Len(t, res.Breakdown, len(SkillIDs))
	for i, row := range res.Breakdown {
		assert.Equal(t, SkillIDs[i], row.SkillID)
		assert.Equal(t, SkillWeights[row.SkillID], row.Weight)
		if row.SkillID == "skill_3" {
			assert.True(t, row.HasSkill)
			assert.Equal(t, row.Weight, row.Contribution)
		} else {
			assert.False(t, row.HasSkill)
			assert.Equal(t, 0.0, row.Contribution)
		}
	}
}

func TestSkillIndexPercentileBounds(t *testing.T) {
	res := EvaluateSkills(&model.SkillRecord{Region: "moscow"})
	assert.GreaterOrEqual(t, res.Percentile, 0.0)
	assert.LessOrEqual(t, res.Percentile, 100.0)
	// A zero index sits below every regional mean
	assert.Equal(t, 0.0, res.Percentile)
}

func TestRegionalTableSize(t *testing.T) {
	assert.Equal(t, 85, len(RegionalAverages))
	assert.Equal(t, 15, len(SkillWeights))
	_, ok := RegionalAverages[DefaultRegion]
	assert.True(t, ok)
}
