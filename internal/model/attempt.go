package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	AttemptStatusActive   = "active"
	AttemptStatusFinished = "finished"
)

// Attempt is one candidate's run through one test. TestID is the string form
// of the test's identifier; nothing checks that it resolves.
type Attempt struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	TestID      string             `bson:"test_id" json:"test_id"`
	UserEmail   string             `bson:"user_email" json:"user_email"`
	UserName    string             `bson:"user_name" json:"user_name"`
	Status      string             `bson:"status" json:"status"` // "active", "finished"
	StartedAt   *time.Time         `bson:"started_at,omitempty" json:"started_at,omitempty"`
	FinishedAt  *time.Time         `bson:"finished_at,omitempty" json:"finished_at,omitempty"`
	Score       float64            `bson:"score" json:"score"`
	TotalPoints int                `bson:"total_points" json:"total_points"`
	Submissions []string           `bson:"submissions" json:"submissions"`
}
