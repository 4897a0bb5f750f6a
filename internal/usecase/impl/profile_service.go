package impl

import (
	"context"
	"log/slog"

	"evently/internal/domain/entity"
	domainerrors "evently/internal/domain/errors"
	"evently/internal/domain/repository"
	"evently/internal/domain/service"
	"evently/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	userRepo      repository.UserRepository
	ticketService service.TicketService
	logger        *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	userRepo repository.UserRepository,
	ticketService service.TicketService,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		userRepo:      userRepo,
		ticketService: ticketService,
		logger:        logger,
	}
}

// GetProfile returns the sanitized view of the authenticated user.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.SanitizedUser, error) {
	user, err := srv.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return user.Sanitized(), nil
}

// GetTicketQR renders the check-in QR code for the authenticated user.
func (srv *profileService) GetTicketQR(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	if _, err := srv.findUser(ctx, userID); err != nil {
		return nil, err
	}

	png, err := srv.ticketService.GenerateTicketQR(userID)
	if err != nil {
		srv.logger.Error("Failed to generate ticket QR", "error", err, "userID", userID)

		return nil, errors.Wrap(err, "failed to generate ticket QR")
	}

	return png, nil
}

func (srv *profileService) findUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("profile lookup failed")
		}
		srv.logger.Error("Failed to look up user profile", "error", err, "userID", userID)

		return nil, errors.Wrap(err, "failed to look up user profile")
	}

	return user, nil
}
