// Package types provides request and response types shared across the careerpilot API.
package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// CreateUserRequest represents the request to register a new user.
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,min=1"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest represents the login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// User represents a user profile for API responses (avoids import cycle with db package).
type User struct {
	ID                  uuid.UUID `json:"id"`
	Name                string    `json:"name"`
	Email               string    `json:"email"`
	Headline            string    `json:"headline,omitempty"`
	Location            string    `json:"location,omitempty"`
	Bio                 string    `json:"bio,omitempty"`
	ProfessionalSummary string    `json:"professional_summary,omitempty"`
	TargetRole          string    `json:"target_role,omitempty"`
	Industry            string    `json:"industry,omitempty"`
	Skills              []string  `json:"skills"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// LoginResponse represents the login/register response with user data and authentication token.
type LoginResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

// UpdatePasswordRequest represents a password update request.
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

// UpdateProfileRequest represents a profile update. Nil fields are left unchanged.
type UpdateProfileRequest struct {
	Name                *string   `json:"name,omitempty" validate:"omitempty,min=1"`
	Headline            *string   `json:"headline,omitempty"`
	Location            *string   `json:"location,omitempty"`
	Bio                 *string   `json:"bio,omitempty"`
	ProfessionalSummary *string   `json:"professional_summary,omitempty"`
	TargetRole          *string   `json:"target_role,omitempty"`
	Industry            *string   `json:"industry,omitempty"`
	Skills              *[]string `json:"skills,omitempty"`
}

// Validate validates the CreateUserRequest using the validator.
func (r *CreateUserRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the LoginRequest using the validator.
func (r *LoginRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the UpdatePasswordRequest using the validator.
func (r *UpdatePasswordRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the UpdateProfileRequest using the validator.
func (r *UpdateProfileRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
