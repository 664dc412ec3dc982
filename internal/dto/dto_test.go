package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserDefaults(t *testing.T) {
	user := CreateUserRequest{Name: "A", Email: "a@b.com"}.ToModel()
	assert.Equal(t, "test_taker", user.Role)
	assert.True(t, user.IsActive)

	inactive := false
	user = CreateUserRequest{Name: "A", Email: "a@b.com", Role: "admin", IsActive: &inactive}.ToModel()
	assert.Equal(t, "admin", user.Role)
	assert.False(t, user.IsActive)
}

func TestTestDefaults(t *testing.T) {
	desc := ""
	test := CreateTestRequest{Title: "Frontend Basics", Description: &desc}.ToModel()
	assert.Equal(t, "", test.Description)
	assert.False(t, test.Published)
	assert.Equal(t, 60, test.DurationMinutes)
	assert.Equal(t, []string{}, test.Tags)
	assert.NotNil(t, test.Questions)
	assert.Empty(t, test.Questions)
}

func TestQuestionDefaults(t *testing.T) {
	test := CreateTestRequest{
		Title: "Quiz",
		Questions: []QuestionRequest{
			{Title: "Q1", Prompt: "Pick one", Options: []OptionRequest{{ID: "A", Text: "yes", Correct: true}}},
		},
	}.ToModel()

	q := test.Questions[0]
	assert.Equal(t, "mcq", q.Type)
	assert.Equal(t, 1, q.Points)
	assert.Equal(t, "A", q.Options[0].ID)
	assert.True(t, q.Options[0].Correct)
}

func TestAttemptDefaults(t *testing.T) {
	attempt := CreateAttemptRequest{TestID: "t1", UserEmail: "a@b.com", UserName: "A"}.ToModel()
	assert.Equal(t, "active", attempt.Status)
	assert.Zero(t, attempt.Score)
	assert.Zero(t, attempt.TotalPoints)
	assert.Equal(t, []string{}, attempt.Submissions)
	assert.Nil(t, attempt.StartedAt)
}

func TestSubmissionZeroIndex(t *testing.T) {
	idx := 0
	sub := CreateSubmissionRequest{AttemptID: "a1", TestID: "t1", QuestionIndex: &idx}.ToModel()
	assert.Equal(t, 0, sub.QuestionIndex)
	assert.Nil(t, sub.CreatedAt)
}
