package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Submission is one answer to one question within one attempt. QuestionIndex
// points into the questions array of the test as it stood when the answer was
// authored; editing the test afterwards can silently shift what it refers to.
type Submission struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	AttemptID       string             `bson:"attempt_id" json:"attempt_id"`
	TestID          string             `bson:"test_id" json:"test_id"`
	QuestionIndex   int                `bson:"question_index" json:"question_index"`
	AnswerOptionIDs []string           `bson:"answer_option_ids,omitempty" json:"answer_option_ids,omitempty"`
	CodeAnswer      *string            `bson:"code_answer,omitempty" json:"code_answer,omitempty"`
	Language        *string            `bson:"language,omitempty" json:"language,omitempty"`
	CreatedAt       *time.Time         `bson:"created_at,omitempty" json:"created_at,omitempty"`
}
