package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	QuestionTypeMCQ  = "mcq"
	QuestionTypeCode = "code"
)

// Option is one selectable answer of an mcq question. The id is a
// client-supplied label ("A", "B", ...), not a generated index; keeping it
// unique within a question is the creator's job.
type Option struct {
	ID      string `bson:"id" json:"id"`
	Text    string `bson:"text" json:"text"`
	Correct bool   `bson:"correct" json:"correct"`
}

type Question struct {
	Title       string   `bson:"title" json:"title"`
	Type        string   `bson:"type" json:"type"` // "mcq", "code"
	Prompt      string   `bson:"prompt" json:"prompt"`
	Options     []Option `bson:"options,omitempty" json:"options,omitempty"`
	Points      int      `bson:"points" json:"points"`
	StarterCode *string  `bson:"starter_code,omitempty" json:"starter_code,omitempty"`
	Language    *string  `bson:"language,omitempty" json:"language,omitempty"`
}

// Test embeds its questions; editing a test replaces the whole document.
type Test struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Title           string             `bson:"title" json:"title"`
	Description     string             `bson:"description" json:"description"`
	DurationMinutes int                `bson:"duration_minutes" json:"duration_minutes"`
	Tags            []string           `bson:"tags" json:"tags"`
	Published       bool               `bson:"published" json:"published"`
	Questions       []Question         `bson:"questions" json:"questions"`
	CreatedBy       *string            `bson:"created_by,omitempty" json:"created_by,omitempty"`
}
