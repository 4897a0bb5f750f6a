// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"evently/internal/domain/entity"
	domainerrors "evently/internal/domain/errors"
	"evently/internal/domain/repository"
	"evently/internal/domain/service"
	"evently/internal/usecase"

	"github.com/pkg/errors"
)

// authService implements the AuthUsecase interface. It is the orchestration
// core: every registration and login flows through here.
type authService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	imageStorage service.ImageStorage
	publisher    service.EventPublisher
	logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(
	txManager repository.TransactionManager,
	userRepo repository.UserRepository,
	hasher service.PasswordHasher,
	tokenService service.TokenService,
	imageStorage service.ImageStorage,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		txManager:    txManager,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
		imageStorage: imageStorage,
		publisher:    publisher,
		logger:       logger,
	}
}

// RegisterUser orchestrates the complete user registration process.
func (srv *authService) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.AuthOutput, error) {
	srv.logger.Info("Starting user registration", "email", input.Email)

	// Fast-path duplicate check before paying for hashing or an image
	// upload. The unique index on email remains the authoritative guard
	// for concurrent identical registrations.
	if _, err := srv.userRepo.FindByEmail(ctx, input.Email); err == nil {
		return nil, domainerrors.ErrEmailAlreadyRegistered.WrapMessage("user registration failed")
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check existing email")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password during registration", "error", err)

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	// Upload the profile image before touching the database, so a failed
	// upload never leaves a partial account behind.
	imageURL := ""
	if input.Image != nil {
		imageURL, err = srv.imageStorage.Upload(ctx, input.Image.Filename, input.Image.ContentType, input.Image.Content)
		if err != nil {
			srv.logger.Error("Image upload failed during registration", "error", err, "email", input.Email)

			return nil, domainerrors.ErrImageUploadFailed.WrapMessage("user registration failed")
		}
	}

	newUser := &entity.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Role:         input.Role,
		ImageURL:     imageURL,
	}

	// The insert runs through the transaction manager; a unique-constraint
	// violation surfaces as the same duplicate-account error as the
	// fast-path check above.
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.UserRepo().Create(ctx, newUser)
	})
	if err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		srv.logger.Error("Failed to execute user registration transaction", "error", err, "email", input.Email)

		return nil, errors.Wrap(err, "failed to execute user registration transaction")
	}

	token, err := srv.tokenService.Issue(newUser.ID, newUser.Role)
	if err != nil {
		srv.logger.Error("Failed to issue token after registration", "error", err, "userID", newUser.ID)

		return nil, errors.Wrap(err, "failed to issue token after registration")
	}

	// Best-effort event publishing: the account exists, so a broker
	// hiccup must not fail the request.
	if err := srv.publisher.PublishRegistrationEvent(ctx, &service.RegistrationEvent{
		UserID: newUser.ID.String(),
		Email:  newUser.Email,
		Role:   newUser.Role.String(),
	}); err != nil {
		srv.logger.Warn("Failed to publish registration event", "error", err, "userID", newUser.ID)
	}

	srv.logger.Debug("User registered successfully", "userID", newUser.ID)

	return &usecase.AuthOutput{User: newUser.Sanitized(), Token: token}, nil
}

// Login orchestrates the user login process. Unknown email and wrong
// password return the identical error, so a caller cannot probe which
// emails have accounts.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	srv.logger.Debug("Starting user login", "email", input.Email)

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}
		srv.logger.Error("Failed to look up user during login", "error", err)

		return nil, errors.Wrap(err, "failed to look up user during login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	token, err := srv.tokenService.Issue(user.ID, user.Role)
	if err != nil {
		srv.logger.Error("Failed to issue token during login", "error", err, "userID", user.ID)

		return nil, errors.Wrap(err, "failed to issue token during login")
	}

	srv.logger.Debug("User logged in successfully", "userID", user.ID)

	return &usecase.AuthOutput{User: user.Sanitized(), Token: token}, nil
}
