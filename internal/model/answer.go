package model

import "time"

// AnswerValue is the persisted value of one answer: a 1-5 score for trait
// questions or an archetype label for archetype questions. Which field is
// live follows from the question's kind.
type AnswerValue struct {
	Score     int       `json:"score,omitempty" bson:"score,omitempty"`
	Archetype Archetype `json:"archetype,omitempty" bson:"archetype,omitempty"`
}

// Answer is one recorded response within a session. Immutable once appended.
type Answer struct {
	QuestionID string       `json:"questionId" bson:"questionId"`
	Kind       QuestionKind `json:"kind" bson:"kind"`
	Value      AnswerValue  `json:"value" bson:"value"`
}

// TestProgress is the persisted snapshot of an in-flight session. Answers are
// stored as a questionId -> value map; original answering order is not kept,
// which is fine because scoring is order-independent.
type TestProgress struct {
	UserID       string                 `json:"userId" bson:"userId"`
	CurrentIndex int                    `json:"currentIndex" bson:"currentIndex"`
	Answers      map[string]AnswerValue `json:"answers" bson:"answers"`
	Completed    bool                   `json:"completed" bson:"completed"`
	UpdatedAt    time.Time              `json:"updatedAt" bson:"updatedAt"`
}
