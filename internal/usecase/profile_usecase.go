// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"evently/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileUsecase defines the interface for profile-related business operations.
// Callers are already authenticated; the user id comes from the validated token.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.SanitizedUser, error)
	GetTicketQR(ctx context.Context, userID uuid.UUID) ([]byte, error)
}
