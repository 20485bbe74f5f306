// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	publisher    service.EventPublisher
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Publisher    service.EventPublisher
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		publisher:    params.Publisher,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates an inactive account and queues the confirmation mail.
func (srv *userService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	kind := entity.UserKind(input.Kind)
	if input.Kind == "" {
		kind = entity.UserKindBuyer
	}
	if !kind.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("type must be buyer or shop")
	}

	if err := srv.hasher.ValidateStrength(input.Password); err != nil {
		return nil, err
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password")
	}

	srv.log(ctx).Info("Registering account", slog.String("email", input.Email), slog.String("kind", kind.String()))

	user := &entity.User{
		ID:           uuid.New(),
		Email:        input.Email,
		PasswordHash: hash,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Company:      input.Company,
		Position:     input.Position,
		Kind:         kind,
		Active:       false,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewUserRepository().Create(ctx, user); err != nil {
			if errors.Is(err, repository.ErrDuplicateUser) {
				return domainerrors.ErrUserAlreadyExists
			}

			return errors.Wrap(err, "failed to create user")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.publishRegistered(ctx, user)

	return &usecase.RegisterOutput{User: user}, nil
}

// publishRegistered queues the confirmation mail. Failure to publish is
// logged but does not undo the registration; the user can log in only
// after a later confirmation mail succeeds.
func (srv *userService) publishRegistered(ctx context.Context, user *entity.User) {
	event := &service.Event{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		Name:      service.EventUserRegistered,
		UserID:    user.ID.String(),
	}
	if err := srv.publisher.Publish(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish registration event",
			slog.String("user_id", user.ID.String()), slog.Any("error", err))
	}
}

// Confirm activates an account using the mailed key.
func (srv *userService) Confirm(ctx context.Context, input usecase.ConfirmInput) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		token, err := userRepo.FindConfirmToken(ctx, input.Email, input.Key)
		if err != nil {
			if errors.Is(err, repository.ErrConfirmTokenNotFound) {
				return domainerrors.ErrConfirmTokenInvalid
			}

			return errors.Wrap(err, "failed to find confirmation token")
		}

		user, err := userRepo.FindByID(ctx, token.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to find user for confirmation")
		}

		user.Active = true
		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to activate user")
		}

		if err := userRepo.DeleteConfirmToken(ctx, token.ID); err != nil {
			return errors.Wrap(err, "failed to consume confirmation token")
		}

		srv.log(ctx).Info("Account confirmed", slog.String("user_id", user.ID.String()))

		return nil
	})
}

// Login verifies credentials of an active account and issues tokens.
func (srv *userService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	if !user.Active {
		return nil, domainerrors.ErrAccountNotActive
	}

	access, refresh, err := srv.tokenService.GenerateTokens(user.ID, user.Kind.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	srv.log(ctx).Info("User logged in", slog.String("user_id", user.ID.String()))

	return &usecase.LoginOutput{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         user,
	}, nil
}

// Refresh exchanges a valid refresh token for a fresh token pair.
func (srv *userService) Refresh(ctx context.Context, refreshToken string) (*usecase.LoginOutput, error) {
	claims, err := srv.tokenService.ValidateToken(refreshToken)
	if err != nil || claims.Type != "refresh" {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrRefreshTokenInvalid
		}

		return nil, errors.Wrap(err, "failed to find user for refresh")
	}

	if !user.Active {
		return nil, domainerrors.ErrAccountNotActive
	}

	access, refresh, err := srv.tokenService.GenerateTokens(user.ID, user.Kind.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &usecase.LoginOutput{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         user,
	}, nil
}

// GetDetails retrieves the account of the authenticated user.
func (srv *userService) GetDetails(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// UpdateDetails applies partial changes to the account.
func (srv *userService) UpdateDetails(ctx context.Context, userID uuid.UUID, input usecase.UpdateDetailsInput) (*entity.User, error) {
	var updated *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to find user")
		}

		if input.FirstName != nil {
			user.FirstName = *input.FirstName
		}
		if input.LastName != nil {
			user.LastName = *input.LastName
		}
		if input.Email != nil {
			user.Email = *input.Email
		}
		if input.Company != nil {
			user.Company = *input.Company
		}
		if input.Position != nil {
			user.Position = *input.Position
		}
		if input.Password != nil {
			if err := srv.hasher.ValidateStrength(*input.Password); err != nil {
				return err
			}
			hash, err := srv.hasher.Hash(*input.Password)
			if err != nil {
				return domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password")
			}
			user.PasswordHash = hash
		}

		if err := userRepo.Update(ctx, user); err != nil {
			if errors.Is(err, repository.ErrDuplicateUser) {
				return domainerrors.ErrUserAlreadyExists
			}

			return errors.Wrap(err, "failed to update user")
		}
		updated = user

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}
