package scoring

import "careernav/internal/model"

// EvaluateEmployment computes the employment probability estimate: a product
// of category weights starting from BaseRate, squashed into (0,1) with
// raw/(raw+1). Every lookup defaults to the neutral 1.0 when the value is
// missing or unknown, except region which defaults to UnknownRegionWeight.
// Never fails.
func EvaluateEmployment(rec *model.SkillRecord) *model.EmploymentResult {
	raw := BaseRate
	factors := make([]model.EmploymentFactor, 0, 7)

	apply := func(factor, value string, weights map[string]float64, fallback float64) {
		weight, ok := weights[value]
		if !ok {
			weight = fallback
		}
		raw *= weight
		factors = append(factors, model.EmploymentFactor{
			Factor: factor,
			Value:  value,
			Weight: weight,
		})
	}

	apply("gender", rec.Gender, GenderWeights, 1.0)
	apply("settlement_type", rec.SettlementType, SettlementWeights, 1.0)
	apply("region", rec.Region, RegionWeights, UnknownRegionWeight)
	apply("family_size", rec.FamilySize, FamilySizeWeights, 1.0)
	apply("age", rec.Age, AgeWeights, 1.0)
	apply("education", rec.Education, EducationWeights, 1.0)

	// Every reported professional skill multiplies in; an empty set
	// contributes nothing and emits no factor entries
	for _, tag := range rec.ProfessionalSkills {
		apply("professional_skills", tag, ProfessionalSkillWeights, 1.0)
	}

	probability := raw / (raw + 1)
	return &model.EmploymentResult{
		RawScore:           raw,
		Probability:        probability,
		ProbabilityPercent: probability * 100,
		Factors:            factors,
	}
}
