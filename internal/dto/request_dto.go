package dto

import (
	"time"

	"github.com/codeassess/api/internal/model"
)

// Validation here is structural only: required fields, enum membership, and
// shapes. Business rules (an mcq question having options, option ids being
// unique, foreign ids resolving) are intentionally not checked; documents are
// stored as given.

// CreateUserRequest is the accepted shape of a platform participant.
type CreateUserRequest struct {
	Name      string  `json:"name" binding:"required"`
	Email     string  `json:"email" binding:"required"`
	Role      string  `json:"role" binding:"omitempty,oneof=test_taker manager admin"`
	AvatarURL *string `json:"avatar_url"`
	IsActive  *bool   `json:"is_active"`
}

func (r CreateUserRequest) ToModel() model.User {
	user := model.User{
		Name:      r.Name,
		Email:     r.Email,
		Role:      r.Role,
		AvatarURL: r.AvatarURL,
		IsActive:  true,
	}
	if user.Role == "" {
		user.Role = model.RoleTestTaker
	}
	if r.IsActive != nil {
		user.IsActive = *r.IsActive
	}
	return user
}

type OptionRequest struct {
	ID      string `json:"id" binding:"required"`
	Text    string `json:"text" binding:"required"`
	Correct bool   `json:"correct"`
}

type QuestionRequest struct {
	Title       string          `json:"title" binding:"required"`
	Type        string          `json:"type" binding:"omitempty,oneof=mcq code"`
	Prompt      string          `json:"prompt" binding:"required"`
	Options     []OptionRequest `json:"options" binding:"omitempty,dive"`
	Points      *int            `json:"points"`
	StarterCode *string         `json:"starter_code"`
	Language    *string         `json:"language"`
}

// CreateTestRequest carries a test together with its embedded questions.
// Description must be present but may be empty, so it is a pointer with a
// required check rather than a plain string.
type CreateTestRequest struct {
	Title           string            `json:"title" binding:"required"`
	Description     *string           `json:"description" binding:"required"`
	DurationMinutes *int              `json:"duration_minutes"`
	Tags            []string          `json:"tags"`
	Published       *bool             `json:"published"`
	Questions       []QuestionRequest `json:"questions" binding:"omitempty,dive"`
	CreatedBy       *string           `json:"created_by"`
}

func (r CreateTestRequest) ToModel() model.Test {
	test := model.Test{
		Title:           r.Title,
		DurationMinutes: 60,
		Tags:            r.Tags,
		Questions:       []model.Question{},
		CreatedBy:       r.CreatedBy,
	}
	if r.Description != nil {
		test.Description = *r.Description
	}
	if r.DurationMinutes != nil {
		test.DurationMinutes = *r.DurationMinutes
	}
	if r.Published != nil {
		test.Published = *r.Published
	}
	if test.Tags == nil {
		test.Tags = []string{}
	}
	for _, q := range r.Questions {
		question := model.Question{
			Title:       q.Title,
			Type:        q.Type,
			Prompt:      q.Prompt,
			Points:      1,
			StarterCode: q.StarterCode,
			Language:    q.Language,
		}
		if question.Type == "" {
			question.Type = model.QuestionTypeMCQ
		}
		if q.Points != nil {
			question.Points = *q.Points
		}
		for _, o := range q.Options {
			question.Options = append(question.Options, model.Option{ID: o.ID, Text: o.Text, Correct: o.Correct})
		}
		test.Questions = append(test.Questions, question)
	}
	return test
}

// CreateAttemptRequest starts a candidate's run through a test. TestID is
// taken as-is; whether it resolves to a stored test is not verified.
type CreateAttemptRequest struct {
	TestID      string     `json:"test_id" binding:"required"`
	UserEmail   string     `json:"user_email" binding:"required"`
	UserName    string     `json:"user_name" binding:"required"`
	Status      string     `json:"status" binding:"omitempty,oneof=active finished"`
	StartedAt   *time.Time `json:"started_at"`
	FinishedAt  *time.Time `json:"finished_at"`
	Score       *float64   `json:"score"`
	TotalPoints *int       `json:"total_points"`
	Submissions []string   `json:"submissions"`
}

func (r CreateAttemptRequest) ToModel() model.Attempt {
	attempt := model.Attempt{
		TestID:      r.TestID,
		UserEmail:   r.UserEmail,
		UserName:    r.UserName,
		Status:      r.Status,
		StartedAt:   r.StartedAt,
		FinishedAt:  r.FinishedAt,
		Submissions: r.Submissions,
	}
	if attempt.Status == "" {
		attempt.Status = model.AttemptStatusActive
	}
	if r.Score != nil {
		attempt.Score = *r.Score
	}
	if r.TotalPoints != nil {
		attempt.TotalPoints = *r.TotalPoints
	}
	if attempt.Submissions == nil {
		attempt.Submissions = []string{}
	}
	return attempt
}

// CreateSubmissionRequest records one answer. QuestionIndex is a pointer so
// that index 0 still satisfies the required check.
type CreateSubmissionRequest struct {
	AttemptID       string     `json:"attempt_id" binding:"required"`
	TestID          string     `json:"test_id" binding:"required"`
	QuestionIndex   *int       `json:"question_index" binding:"required"`
	AnswerOptionIDs []string   `json:"answer_option_ids"`
	CodeAnswer      *string    `json:"code_answer"`
	Language        *string    `json:"language"`
	CreatedAt       *time.Time `json:"created_at"`
}

func (r CreateSubmissionRequest) ToModel() model.Submission {
	sub := model.Submission{
		AttemptID:       r.AttemptID,
		TestID:          r.TestID,
		AnswerOptionIDs: r.AnswerOptionIDs,
		CodeAnswer:      r.CodeAnswer,
		Language:        r.Language,
		CreatedAt:       r.CreatedAt,
	}
	if r.QuestionIndex != nil {
		sub.QuestionIndex = *r.QuestionIndex
	}
	return sub
}
