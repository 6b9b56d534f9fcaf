package server

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jonathan/careerpilot/internal/config"
	"github.com/jonathan/careerpilot/internal/db"
	"github.com/jonathan/careerpilot/internal/types"
)

// UserService provides business logic for user authentication operations
type UserService struct {
	store          UserStore
	passwordConfig *config.PasswordConfig
}

// NewUserService creates a new UserService with the given dependencies
func NewUserService(store UserStore, passwordConfig *config.PasswordConfig) *UserService {
	return &UserService{
		store:          store,
		passwordConfig: passwordConfig,
	}
}

// convertDBUserToTypesUser converts db.User to types.User, excluding password hash
func convertDBUserToTypesUser(dbUser *db.User) *types.User {
	if dbUser == nil {
		return nil
	}
	return &types.User{
		ID:                  dbUser.ID,
		Name:                dbUser.Name,
		Email:               dbUser.Email,
		Headline:            dbUser.Headline,
		Location:            dbUser.Location,
		Bio:                 dbUser.Bio,
		ProfessionalSummary: dbUser.ProfessionalSummary,
		TargetRole:          dbUser.TargetRole,
		Industry:            dbUser.Industry,
		Skills:              dbUser.Skills,
		CreatedAt:           dbUser.CreatedAt,
		UpdatedAt:           dbUser.UpdatedAt,
	}
}

// Register creates a new user with password authentication
func (s *UserService) Register(ctx context.Context, req *types.CreateUserRequest) (*types.User, error) {
	if err := config.ValidatePasswordPolicy(req.Password); err != nil {
		return nil, &ErrWeakPassword{Reason: err.Error()}
	}

	exists, err := s.store.CheckEmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return nil, &ErrEmailAlreadyExists{Email: req.Email}
	}

	passwordHash, err := s.passwordConfig.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	userID, err := s.store.CreateUser(ctx, req.Name, req.Email, passwordHash)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	dbUser, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve created user: %w", err)
	}
	if dbUser == nil {
		return nil, fmt.Errorf("created user not found: %s", userID)
	}

	// Convert and return (password hash excluded)
	return convertDBUserToTypesUser(dbUser), nil
}

// Login authenticates a user and returns user data
func (s *UserService) Login(ctx context.Context, req *types.LoginRequest) (*types.User, error) {
	dbUser, err := s.store.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	// Security: Always return generic error if user not found or password wrong
	if dbUser == nil {
		return nil, &ErrInvalidCredentials{}
	}

	if !s.passwordConfig.VerifyPassword(req.Password, dbUser.PasswordHash) {
		return nil, &ErrInvalidCredentials{}
	}

	// Convert and return (password hash excluded)
	return convertDBUserToTypesUser(dbUser), nil
}

// GetProfile returns the profile for a user ID.
func (s *UserService) GetProfile(ctx context.Context, userID uuid.UUID) (*types.User, error) {
	dbUser, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if dbUser == nil {
		return nil, &ErrUserNotFound{UserID: userID}
	}
	return convertDBUserToTypesUser(dbUser), nil
}

// UpdateProfile applies a partial profile update and returns the result.
// Fields left nil in the request keep their current values.
func (s *UserService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *types.UpdateProfileRequest) (*types.User, error) {
	dbUser, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if dbUser == nil {
		return nil, &ErrUserNotFound{UserID: userID}
	}

	upd := db.UserProfileUpdate{
		Name:                dbUser.Name,
		Headline:            dbUser.Headline,
		Location:            dbUser.Location,
		Bio:                 dbUser.Bio,
		ProfessionalSummary: dbUser.ProfessionalSummary,
		TargetRole:          dbUser.TargetRole,
		Industry:            dbUser.Industry,
		Skills:              dbUser.Skills,
	}
	if req.Name != nil {
		upd.Name = *req.Name
	}
	if req.Headline != nil {
		upd.Headline = *req.Headline
	}
	if req.Location != nil {
		upd.Location = *req.Location
	}
	if req.Bio != nil {
		upd.Bio = *req.Bio
	}
	if req.ProfessionalSummary != nil {
		upd.ProfessionalSummary = *req.ProfessionalSummary
	}
	if req.TargetRole != nil {
		upd.TargetRole = *req.TargetRole
	}
	if req.Industry != nil {
		upd.Industry = *req.Industry
	}
	if req.Skills != nil {
		upd.Skills = *req.Skills
	}

	if err := s.store.UpdateUserProfile(ctx, userID, upd); err != nil {
		return nil, fmt.Errorf("failed to update user profile: %w", err)
	}

	updated, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve updated user: %w", err)
	}
	return convertDBUserToTypesUser(updated), nil
}

// UpdatePassword updates a user's password
func (s *UserService) UpdatePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error {
	dbUser, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}
	if dbUser == nil {
		return &ErrUserNotFound{UserID: userID}
	}

	if !s.passwordConfig.VerifyPassword(currentPassword, dbUser.PasswordHash) {
		return &ErrPasswordMismatch{}
	}

	if err := config.ValidatePasswordPolicy(newPassword); err != nil {
		return &ErrWeakPassword{Reason: err.Error()}
	}

	newPasswordHash, err := s.passwordConfig.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	if err := s.store.UpdatePassword(ctx, userID, newPasswordHash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}
