package scoring

import "careernav/internal/model"

// EvaluateSkills computes the digital skill index for one answer record: the
// sum of the weights of the skills the respondent has, compared against the
// regional baseline. Missing flags count as absent, unrecognized regions fall
// back to DefaultRegion. Never fails.
func EvaluateSkills(rec *model.SkillRecord) *model.SkillIndexResult {
	total := 0.0
	breakdown := make([]model.SkillContribution, 0, len(SkillIDs))
	for _, id := range SkillIDs {
		weight := SkillWeights[id]
		has := rec.HasSkill(id)
		contribution := 0.0
		if has {
			contribution = weight
			total += weight
		}
		breakdown = append(breakdown, model.SkillContribution{
			SkillID:      id,
			HasSkill:     has,
			Weight:       weight,
			Contribution: contribution,
		})
	}

	region := rec.Region
	avg, ok := RegionalAverages[region]
	if !ok {
		region = DefaultRegion
		avg = RegionalAverages[DefaultRegion]
	}

	return &model.SkillIndexResult{
		Total:           total,
		Region:          region,
		RegionalAverage: avg,
		Difference:      total - avg,
		Percentile:      percentile(total),
		Breakdown:       breakdown,
	}
}

// percentile ranks a total against the distribution of regional means: the
// share of regional averages at or below it, times 100.
func percentile(total float64) float64 {
	if len(RegionalAverages) == 0 {
		return 0
	}
	atOrBelow := 0
	for _, avg := range RegionalAverages {
		if avg <= total {
			atOrBelow++
		}
	}
	return float64(atOrBelow) / float64(len(RegionalAverages)) * 100
}
