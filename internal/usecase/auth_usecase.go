// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"io"

	"evently/internal/domain/entity"
)

// --- Input DTOs ---

// ImageUpload carries an optional profile image supplied with registration.
type ImageUpload struct {
	Filename    string
	ContentType string
	Content     io.Reader
}

// RegisterUserInput defines the data required to register a new user.
// Fields arrive pre-validated by the delivery layer's schema checks.
type RegisterUserInput struct {
	Name     string
	Email    string
	Password string
	Role     entity.Role
	Image    *ImageUpload // nil when no image was supplied
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// AuthOutput returns the sanitized user view plus a freshly issued token.
type AuthOutput struct {
	User  *entity.SanitizedUser
	Token string
}

// AuthUsecase defines the interface for authentication business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	RegisterUser(ctx context.Context, input *RegisterUserInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
}
