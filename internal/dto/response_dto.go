package dto

import "time"

// CreateResponse carries the opaque id assigned to a newly stored document.
type CreateResponse struct {
	ID string `json:"id"`
}

type OptionResponse struct {
	ID      string `json:"id"`
	Text    string `json:"text"`
	Correct bool   `json:"correct"`
}

type QuestionResponse struct {
	Title       string           `json:"title"`
	Type        string           `json:"type"`
	Prompt      string           `json:"prompt"`
	Options     []OptionResponse `json:"options,omitempty"`
	Points      int              `json:"points"`
	StarterCode *string          `json:"starter_code,omitempty"`
	Language    *string          `json:"language,omitempty"`
}

// TestResponse is a stored test with its native identifier replaced by the
// opaque string id.
type TestResponse struct {
	ID              string             `json:"id"`
	Title           string             `json:"title"`
	Description     string             `json:"description"`
	DurationMinutes int                `json:"duration_minutes"`
	Tags            []string           `json:"tags"`
	Published       bool               `json:"published"`
	Questions       []QuestionResponse `json:"questions"`
	CreatedBy       *string            `json:"created_by,omitempty"`
}

type AttemptResponse struct {
	ID          string     `json:"id"`
	TestID      string     `json:"test_id"`
	UserEmail   string     `json:"user_email"`
	UserName    string     `json:"user_name"`
	Status      string     `json:"status"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	FinishedAt  *time.Time `json:"finished_at,omitempty"`
	Score       float64    `json:"score"`
	TotalPoints int        `json:"total_points"`
	Submissions []string   `json:"submissions"`
}

type SubmissionResponse struct {
	ID              string     `json:"id"`
	AttemptID       string     `json:"attempt_id"`
	TestID          string     `json:"test_id"`
	QuestionIndex   int        `json:"question_index"`
	AnswerOptionIDs []string   `json:"answer_option_ids,omitempty"`
	CodeAnswer      *string    `json:"code_answer,omitempty"`
	Language        *string    `json:"language,omitempty"`
	CreatedAt       *time.Time `json:"created_at,omitempty"`
}

type HealthResponse struct {
	Message string `json:"message"`
}

type SchemaResponse struct {
	Collections []string `json:"collections"`
}

// DiagResponse reports store health for the /test endpoint. Failures are
// downgraded to descriptive strings; the endpoint itself never errors.
type DiagResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}
