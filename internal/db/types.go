package db

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// User represents an account with its career profile fields.
type User struct {
	ID                  uuid.UUID   `json:"id"`
	Name                string      `json:"name"`
	Email               string      `json:"email"`
	Headline            string      `json:"headline,omitempty"`
	Location            string      `json:"location,omitempty"`
	Bio                 string      `json:"bio,omitempty"`
	ProfessionalSummary string      `json:"professional_summary,omitempty"`
	TargetRole          string      `json:"target_role,omitempty"`
	Industry            string      `json:"industry,omitempty"`
	Skills              StringArray `json:"skills"`
	PasswordHash        string      `json:"-"`
	CreatedAt           time.Time   `json:"created_at"`
	UpdatedAt           time.Time   `json:"updated_at"`
}

// InterviewSession is the persisted summary of one completed mock
// interview. The full ScoreResult is stored as JSONB.
type InterviewSession struct {
	ID             uuid.UUID       `json:"id"`
	UserID         uuid.UUID       `json:"user_id"`
	SessionID      string          `json:"session_id"`
	Type           string          `json:"type"`
	TargetRole     string          `json:"target_role"`
	Score          int             `json:"score"`
	QuestionsAsked int             `json:"questions_asked"`
	TotalQuestions int             `json:"total_questions"`
	Answers        StringArray     `json:"answers"`
	Result         json.RawMessage `json:"result"`
	CompletedAt    time.Time       `json:"completed_at"`
}

// ActivityEvent is one entry of the per-user recent activity feed.
type ActivityEvent struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Timestamp time.Time `json:"timestamp"`
	Activity  string    `json:"activity"`
	Type      string    `json:"type"`
	SessionID string    `json:"session_id,omitempty"`
	Score     int       `json:"score,omitempty"`
}

// Resume is a saved resume document.
type Resume struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	Title        string    `json:"title"`
	TargetRole   string    `json:"target_role,omitempty"`
	Industry     string    `json:"industry,omitempty"`
	Content      string    `json:"content"`
	ATSOptimized bool      `json:"ats_optimized"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// JobListing is one curated job posting shown on the jobs page.
type JobListing struct {
	ID           uuid.UUID   `json:"id"`
	Title        string      `json:"title"`
	Company      string      `json:"company"`
	Location     string      `json:"location"`
	Salary       string      `json:"salary,omitempty"`
	Type         string      `json:"type"`
	Description  string      `json:"description"`
	Requirements StringArray `json:"requirements"`
	Skills       StringArray `json:"skills"`
	ExternalURL  string      `json:"external_url,omitempty"`
	PostedAt     time.Time   `json:"posted_at"`
}

// CareerInsight is a generated insight document stored per user.
type CareerInsight struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	InsightType string    `json:"insight_type"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"created_at"`
}

// StringArray handles JSONB string arrays
type StringArray []string

// Scan implements the Scanner interface for StringArray
func (a *StringArray) Scan(src interface{}) error {
	if src == nil {
		*a = []string{}
		return nil
	}
	source, ok := src.([]byte)
	if !ok {
		return errors.New("type assertion .([]byte) failed")
	}
	return json.Unmarshal(source, a)
}

// Value implements the Valuer interface for StringArray
func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(a)
}
