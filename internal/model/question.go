package model

// QuestionKind determines how a question's options are interpreted
type QuestionKind string

const (
	QuestionKindTraitScale QuestionKind = "trait_scale"      // Likert item, options carry 1-5 scores
	QuestionKindArchetype  QuestionKind = "archetype_choice" // options carry archetype labels
)

// TraitCategory is a Big Five trait or the archetype pseudo-category
type TraitCategory string

const (
	TraitOpenness          TraitCategory = "openness"
	TraitConscientiousness TraitCategory = "conscientiousness"
	TraitExtraversion      TraitCategory = "extraversion"
	TraitAgreeableness     TraitCategory = "agreeableness"
	TraitNeuroticism       TraitCategory = "neuroticism"
	CategoryArchetype      TraitCategory = "archetype"
)

// TraitCategories lists the five Big Five categories in canonical order
var TraitCategories = []TraitCategory{
	TraitOpenness,
	TraitConscientiousness,
	TraitExtraversion,
	TraitAgreeableness,
	TraitNeuroticism,
}

// Archetype is one of the twelve Jungian archetype labels
type Archetype string

const (
	ArchetypeHero      Archetype = "hero"
	ArchetypeCreator   Archetype = "creator"
	ArchetypeSage      Archetype = "sage"
	ArchetypeExplorer  Archetype = "explorer"
	ArchetypeRuler     Archetype = "ruler"
	ArchetypeCaregiver Archetype = "caregiver"
	ArchetypeJester    Archetype = "jester"
	ArchetypeLover     Archetype = "lover"
	ArchetypeInnocent  Archetype = "innocent"
	ArchetypeOutlaw    Archetype = "outlaw"
	ArchetypeMagician  Archetype = "magician"
	ArchetypeEveryman  Archetype = "everyman"
)

// Archetypes is the canonical label order. Dominant-archetype ties are broken
// by first maximum in this order, so it must stay stable.
var Archetypes = []Archetype{
	ArchetypeHero,
	ArchetypeCreator,
	ArchetypeSage,
	ArchetypeExplorer,
	ArchetypeRuler,
	ArchetypeCaregiver,
	ArchetypeJester,
	ArchetypeLover,
	ArchetypeInnocent,
	ArchetypeOutlaw,
	ArchetypeMagician,
	ArchetypeEveryman,
}

// Option is one answer choice. Score is live for trait_scale questions
// (already reverse-keyed where the item is negatively worded), Archetype for
// archetype_choice questions.
type Option struct {
	Text      string    `json:"text"`
	Score     int       `json:"score,omitempty"`
	Archetype Archetype `json:"archetype,omitempty"`
}

// Question is one immutable entry of the static question bank
type Question struct {
	ID       string        `json:"id"`
	Category TraitCategory `json:"category"`
	Kind     QuestionKind  `json:"kind"`
	Text     string        `json:"text"`
	Options  []Option      `json:"options"`
}
