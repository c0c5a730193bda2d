package bank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careernav/internal/model"
)

func TestBankComposition(t *testing.T) {
	assert.Equal(t, 50, Count())

	traits := 0
	archetypes := 0
	perCategory := make(map[model.TraitCategory]int)
	for _, q := range Questions {
		switch q.Kind {
		case model.QuestionKindTraitScale:
			traits++
			perCategory[q.Category]++
		case model.QuestionKindArchetype:
			archetypes++
			assert.Equal(t, model.CategoryArchetype, q.Category, "question %s", q.ID)
		default:
			t.Fatalf("question %s has unknown kind %q", q.ID, q.Kind)
		}
	}

	assert.Equal(t, 30, traits)
	assert.Equal(t, 20, archetypes)
	for _, cat := range model.TraitCategories {
		assert.Equal(t, 6, perCategory[cat], "category %s", cat)
	}
}

func TestQuestionIDsAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, q := range Questions {
		require.NotEmpty(t, q.ID)
		assert.False(t, seen[q.ID], "duplicate id %s", q.ID)
		seen[q.ID] = true
	}
}

func TestTraitOptionsCoverFullScale(t *testing.T) {
	for _, q := range Questions {
		if q.Kind != model.QuestionKindTraitScale {
			continue
		}
		require.Len(t, q.Options, 5, "question %s", q.ID)
		scores := make(map[int]bool)
		for _, opt := range q.Options {
			assert.GreaterOrEqual(t, opt.Score, 1, "question %s", q.ID)
			assert.LessOrEqual(t, opt.Score, 5, "question %s", q.ID)
			scores[opt.Score] = true
		}
		// Every score 1..5 must be reachable, reverse-keyed or not
		assert.Len(t, scores, 5, "question %s", q.ID)
	}
}

func TestReverseKeyedItemsExist(t *testing.T) {
	reversed := 0
	for _, q := range Questions {
		if q.Kind == model.QuestionKindTraitScale && q.Options[0].Score == 5 {
			reversed++
		}
	}
	assert.Greater(t, reversed, 0)
}

func TestArchetypeOptionsUseKnownLabels(t *testing.T) {
	known := make(map[model.Archetype]bool, len(model.Archetypes))
	for _, a := range model.Archetypes {
		known[a] = true
	}

	used := make(map[model.Archetype]bool)
	for _, q := range Questions {
		if q.Kind != model.QuestionKindArchetype {
			continue
		}
		require.GreaterOrEqual(t, len(q.Options), 4, "question %s", q.ID)
		for _, opt := range q.Options {
			assert.True(t, known[opt.Archetype], "question %s uses unknown label %q", q.ID, opt.Archetype)
		}
		for _, opt := range q.Options {
			used[opt.Archetype] = true
		}
	}

	// Every archetype must be selectable somewhere in the bank
	for _, a := range model.Archetypes {
		assert.True(t, used[a], "archetype %s is never offered", a)
	}
}

func TestGet(t *testing.T) {
	q := Get("o1")
	require.NotNil(t, q)
	assert.Equal(t, model.TraitOpenness, q.Category)

	assert.Nil(t, Get("does_not_exist"))
}
