package model

// SkillRecord is the flat answer record consumed by the linear scoring model:
// fifteen boolean skill flags plus the categorical demographic fields. Missing
// skills count as absent; unknown categorical values fall back to the model's
// documented defaults, never to an error.
type SkillRecord struct {
	Skills             map[string]bool `json:"skills"`
	Gender             string          `json:"gender"`
	SettlementType     string          `json:"settlementType"`
	Region             string          `json:"region"`
	FamilySize         string          `json:"familySize"`
	Age                string          `json:"age"`
	Education          string          `json:"education"`
	ProfessionalSkills []string        `json:"professionalSkills"`
}

// HasSkill reports whether a skill flag is set; missing means false
func (r *SkillRecord) HasSkill(id string) bool {
	return r.Skills[id]
}
