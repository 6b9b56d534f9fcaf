package types

import (
	"github.com/go-playground/validator/v10"
)

// GenerateResumeRequest represents a request to generate an ATS-friendly resume draft.
type GenerateResumeRequest struct {
	Title      string `json:"title" validate:"required,min=1"`
	TargetRole string `json:"target_role" validate:"required,min=1"`
	Industry   string `json:"industry,omitempty"`
	Experience string `json:"experience,omitempty"`
}

// GenerateInsightsRequest represents a request for personalized career insights.
type GenerateInsightsRequest struct {
	TargetRole string `json:"target_role,omitempty"`
	Industry   string `json:"industry,omitempty"`
}

// GenerateQuestionsRequest represents a request for LLM-generated interview questions.
type GenerateQuestionsRequest struct {
	Type            string `json:"type" validate:"required"`
	TargetRole      string `json:"target_role,omitempty"`
	ExperienceLevel string `json:"experience_level,omitempty"`
}

// Validate validates the GenerateResumeRequest using the validator.
func (r *GenerateResumeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the GenerateInsightsRequest using the validator.
func (r *GenerateInsightsRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the GenerateQuestionsRequest using the validator.
func (r *GenerateQuestionsRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
