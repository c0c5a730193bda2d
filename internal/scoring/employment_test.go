package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careernav/internal/model"
)

func TestEmploymentScenarioUnknownRegion(t *testing.T) {
	res := EvaluateEmployment(&model.SkillRecord{
		Gender:         "female",
		SettlementType: "village",
		Region:         "unknown_region",
		FamilySize:     "2",
		Age:            "25_29",
		Education:      "bachelor",
	})

	want := BaseRate *
		GenderWeights["female"] *
		SettlementWeights["village"] *
		UnknownRegionWeight *
		FamilySizeWeights["2"] *
		AgeWeights["25_29"] *
		EducationWeights["bachelor"]
	assert.InDelta(t, want, res.RawScore, 1e-9)

	// Fixed factor order, no professional_skills entry for an empty set
	require.Len(t, res.Factors, 6)
	order := []string{"gender", "settlement_type", "region", "family_size", "age", "education"}
	for i, f := range res.Factors {
		assert.Equal(t, order[i], f.Factor)
	}
	assert.Equal(t, UnknownRegionWeight, res.Factors[2].Weight)
}

func TestEmploymentMissingFieldsDefaultToNeutralExceptRegion(t *testing.T) {
	res := EvaluateEmployment(&model.SkillRecord{})

	assert.InDelta(t, BaseRate*UnknownRegionWeight, res.RawScore, 1e-9)
	for _, f := range res.Factors {
		if f.Factor == "region" {
			assert.Equal(t, UnknownRegionWeight, f.Weight)
		} else {
			assert.Equal(t, 1.0, f.Weight)
		}
	}
}

func TestEmploymentKnownRegionUsesTableWeight(t *testing.T) {
	res := EvaluateEmployment(&model.SkillRecord{Region: "moscow"})
	assert.InDelta(t, BaseRate*RegionWeights["moscow"], res.RawScore, 1e-9)
}

func TestEmploymentProfessionalSkillsMultiply(t *testing.T) {
	base := EvaluateEmployment(&model.SkillRecord{Region: "moscow"})
	withSkills := EvaluateEmployment(&model.SkillRecord{
		Region:             "moscow",
		ProfessionalSkills: []string{"programming", "design"},
	})

	want := base.RawScore * ProfessionalSkillWeights["programming"] * ProfessionalSkillWeights["design"]
	assert.InDelta(t, want, withSkills.RawScore, 1e-9)

	require.Len(t, withSkills.Factors, 8)
	assert.Equal(t, "professional_skills", withSkills.Factors[6].Factor)
	assert.Equal(t, "programming", withSkills.Factors[6].Value)
	assert.Equal(t, "professional_skills", withSkills.Factors[7].Factor)
	assert.Equal(t, "design", withSkills.Factors[7].Value)
}

func TestEmploymentUnknownSkillTagIsNeutral(t *testing.T) {
	base := EvaluateEmployment(&model.SkillRecord{Region: "moscow"})
	res := EvaluateEmployment(&model.SkillRecord{
		Region:             "moscow",
		ProfessionalSkills: []string{"juggling"},
	})
	assert.InDelta(t, base.RawScore, res.RawScore, 1e-9)
}

func TestEmploymentProbabilityBoundsAndMonotonicity(t *testing.T) {
	low := EvaluateEmployment(&model.SkillRecord{
		Gender: "female", SettlementType: "village", Region: "tuva",
		FamilySize: "5_plus", Age: "50_plus", Education: "secondary",
	})
	high := EvaluateEmployment(&model.SkillRecord{
		Gender: "male", SettlementType: "city", Region: "moscow",
		FamilySize: "2", Age: "25_29", Education: "master",
		ProfessionalSkills: []string{"programming"},
	})

	for _, res := range []*model.EmploymentResult{low, high} {
		assert.Greater(t, res.Probability, 0.0)
		assert.Less(t, res.Probability, 1.0)
		assert.Greater(t, res.ProbabilityPercent, 0.0)
		assert.Less(t, res.ProbabilityPercent, 100.0)
	}

	assert.Greater(t, high.RawScore, low.RawScore)
	assert.Greater(t, high.Probability, low.Probability)
}
