package model

import "time"

// BigFiveResult holds normalized trait percentages, integers in [0,100].
// An unanswered category defaults to the 50 midpoint rather than 0 so it does
// not read as "low".
type BigFiveResult struct {
	Openness          int `json:"openness" bson:"openness"`
	Conscientiousness int `json:"conscientiousness" bson:"conscientiousness"`
	Extraversion      int `json:"extraversion" bson:"extraversion"`
	Agreeableness     int `json:"agreeableness" bson:"agreeableness"`
	Neuroticism       int `json:"neuroticism" bson:"neuroticism"`
}

// Get returns the percentage for a trait category
func (r BigFiveResult) Get(cat TraitCategory) int {
	switch cat {
	case TraitOpenness:
		return r.Openness
	case TraitConscientiousness:
		return r.Conscientiousness
	case TraitExtraversion:
		return r.Extraversion
	case TraitAgreeableness:
		return r.Agreeableness
	case TraitNeuroticism:
		return r.Neuroticism
	}
	return 0
}

// Set assigns the percentage for a trait category
func (r *BigFiveResult) Set(cat TraitCategory, v int) {
	switch cat {
	case TraitOpenness:
		r.Openness = v
	case TraitConscientiousness:
		r.Conscientiousness = v
	case TraitExtraversion:
		r.Extraversion = v
	case TraitAgreeableness:
		r.Agreeableness = v
	case TraitNeuroticism:
		r.Neuroticism = v
	}
}

// ArchetypeResult is the archetype frequency tally plus the dominant label
type ArchetypeResult struct {
	Tally    map[Archetype]int `json:"tally" bson:"tally"`
	Dominant Archetype         `json:"dominant" bson:"dominant"`
}

// PersonalityResult is what the engine returns once a session is finished
type PersonalityResult struct {
	BigFive   BigFiveResult   `json:"bigFive" bson:"bigFive"`
	Archetype ArchetypeResult `json:"archetype" bson:"archetype"`
}

// SkillContribution is one row of the skill-index breakdown, in fixed
// skill-id order for UI display
type SkillContribution struct {
	SkillID      string  `json:"skillId" bson:"skillId"`
	HasSkill     bool    `json:"hasSkill" bson:"hasSkill"`
	Weight       float64 `json:"weight" bson:"weight"`
	Contribution float64 `json:"contribution" bson:"contribution"`
}

// SkillIndexResult is the digital skill index compared against the regional
// baseline distribution
type SkillIndexResult struct {
	Total           float64             `json:"total" bson:"total"`
	Region          string              `json:"region" bson:"region"`
	RegionalAverage float64             `json:"regionalAverage" bson:"regionalAverage"`
	Difference      float64             `json:"difference" bson:"difference"`
	Percentile      float64             `json:"percentile" bson:"percentile"`
	Breakdown       []SkillContribution `json:"breakdown" bson:"breakdown"`
}

// EmploymentFactor is one multiplicative factor applied to the employment
// model, kept for UI transparency
type EmploymentFactor struct {
	Factor string  `json:"factor" bson:"factor"`
	Value  string  `json:"value" bson:"value"`
	Weight float64 `json:"weight" bson:"weight"`
}

// EmploymentResult is the log-linear employment probability estimate
type EmploymentResult struct {
	RawScore           float64            `json:"rawScore" bson:"rawScore"`
	Probability        float64            `json:"probability" bson:"probability"`
	ProbabilityPercent float64            `json:"probabilityPercent" bson:"probabilityPercent"`
	Factors            []EmploymentFactor `json:"factorsBreakdown" bson:"factorsBreakdown"`
}

// TestResult is a finished assessment as stored for the dashboard
type TestResult struct {
	ID          string             `json:"id" bson:"_id,omitempty"`
	UserID      string             `json:"userId" bson:"userId"`
	Personality *PersonalityResult `json:"personality,omitempty" bson:"personality,omitempty"`
	SkillIndex  *SkillIndexResult  `json:"skillIndex,omitempty" bson:"skillIndex,omitempty"`
	Employment  *EmploymentResult  `json:"employment,omitempty" bson:"employment,omitempty"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
}
