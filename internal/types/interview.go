package types

import (
	"github.com/go-playground/validator/v10"
)

// SubmitInterviewRequest represents a completed mock interview submitted for scoring.
// Answers may be shorter than the question count when the candidate finished early.
type SubmitInterviewRequest struct {
	Type       string   `json:"type" validate:"required"`
	TargetRole string   `json:"target_role,omitempty"`
	Answers    []string `json:"answers"`
}

// Validate validates the SubmitInterviewRequest using the validator.
func (r *SubmitInterviewRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// QuestionsResponse is the payload for the interview question bank endpoint.
type QuestionsResponse struct {
	Type      string   `json:"type"`
	Questions []string `json:"questions"`
}
