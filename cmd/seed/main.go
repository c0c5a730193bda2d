// Seeds a few demo assessment results into MongoDB so the dashboard has
// something to show on a fresh install.
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"careernav/internal/bank"
	"careernav/internal/config"
	"careernav/internal/engine"
	"careernav/internal/model"
	"careernav/internal/repository"
	"careernav/internal/scoring"
)

func main() {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	resultRepo := repository.NewResultRepo(client.Database(cfg.MongoDB))

	demos := []struct {
		userID string
		score  int // Likert score used for every trait item
		pick   int // option index used for every archetype item
		rec    model.SkillRecord
	}{
		{
			userID: "user_demo0001",
			score:  4,
			pick:   0,
			rec: model.SkillRecord{
				Skills: map[string]bool{
					"skill_1": true, "skill_2": true, "skill_3": true,
					"skill_8": true, "skill_9": true, "skill_14": true,
				},
				Gender:             "female",
				SettlementType:     "city",
				Region:             "moscow",
				FamilySize:         "2",
				Age:                "25_29",
				Education:          "master",
				ProfessionalSkills: []string{"data_analysis", "foreign_languages"},
			},
		},
		{
			userID: "user_demo0002",
			score:  2,
			pick:   2,
			rec: model.SkillRecord{
				Skills: map[string]bool{
					"skill_1": true, "skill_6": true, "skill_7": true,
				},
				Gender:         "male",
				SettlementType: "village",
				Region:         "altai_krai",
				FamilySize:     "4",
				Age:            "45_49",
				Education:      "vocational",
			},
		},
	}

	for _, d := range demos {
		e := engine.NewDefault()
		e.Start()
		for _, q := range bank.Questions {
			switch q.Kind {
			case model.QuestionKindTraitScale:
				e.Answer(q.ID, model.AnswerValue{Score: d.score})
			case model.QuestionKindArchetype:
				e.Answer(q.ID, model.AnswerValue{Archetype: q.Options[d.pick].Archetype})
			}
		}

		result := &model.TestResult{
			UserID:      d.userID,
			Personality: e.Results(),
			SkillIndex:  scoring.EvaluateSkills(&d.rec),
			Employment:  scoring.EvaluateEmployment(&d.rec),
		}

		if err := resultRepo.Create(ctx, result); err != nil {
			log.Fatalf("Failed to seed result for %s: %v", d.userID, err)
		}
		fmt.Printf("Seeded result for %s: dominant=%s skillIndex=%.1f employment=%.1f%%\n",
			d.userID,
			result.Personality.Archetype.Dominant,
			result.SkillIndex.Total,
			result.Employment.ProbabilityPercent,
		)
	}
}
