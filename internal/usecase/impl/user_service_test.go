package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	mockRepo "bazaar/internal/mocks/repository"
	mockSvc "bazaar/internal/mocks/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	publisher    *mockSvc.MockEventPublisher
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewUserService(UserServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Publisher:    publisher,
		Logger:       logger,
	})

	return userServiceFixtures{
		service:      svc,
		txManager:    txManager,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
		publisher:    publisher,
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := usecase.RegisterInput{
		FirstName: "Test",
		LastName:  "Buyer",
		Email:     "buyer@example.com",
		Password:  "Password123!",
	}

	fx.hasher.EXPECT().ValidateStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.publisher.EXPECT().
		Publish(ctx, mock.MatchedBy(func(event *service.Event) bool {
			return event.Name == service.EventUserRegistered
		})).
		Return(nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, input.Email, output.User.Email)
	assert.Equal(t, entity.UserKindBuyer, output.User.Kind)
	assert.Equal(t, "hashed_password", output.User.PasswordHash)
	assert.False(t, output.User.Active)
}

func TestUserService_Register_InvalidKind(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := usecase.RegisterInput{
		FirstName: "Test",
		LastName:  "Buyer",
		Email:     "buyer@example.com",
		Password:  "Password123!",
		Kind:      "admin",
	}

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestUserService_Register_WeakPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := usecase.RegisterInput{
		FirstName: "Test",
		LastName:  "Buyer",
		Email:     "buyer@example.com",
		Password:  "123",
	}

	fx.hasher.EXPECT().ValidateStrength(input.Password).Return(domainerrors.ErrPasswordStrength)

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := usecase.RegisterInput{
		FirstName: "Test",
		LastName:  "Buyer",
		Email:     "taken@example.com",
		Password:  "Password123!",
		Kind:      "shop",
	}

	fx.hasher.EXPECT().ValidateStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Return(repository.ErrDuplicateUser)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrUserAlreadyExists)

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_Confirm_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	token := &entity.ConfirmEmailToken{
		ID:     uuid.New(),
		UserID: userID,
		Key:    "confirmation-key",
	}
	input := usecase.ConfirmInput{Email: "buyer@example.com", Key: token.Key}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindConfirmToken(ctx, input.Email, input.Key).
				Return(token, nil)
			mockUserRepo.EXPECT().
				FindByID(ctx, userID).
				Return(&entity.User{ID: userID, Email: input.Email, Active: false}, nil)
			mockUserRepo.EXPECT().
				Update(ctx, mock.MatchedBy(func(user *entity.User) bool {
					return user.Active
				})).
				Return(nil)
			mockUserRepo.EXPECT().DeleteConfirmToken(ctx, token.ID).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.Confirm(ctx, input)

	require.NoError(t, err)
}

func TestUserService_Confirm_InvalidKey(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := usecase.ConfirmInput{Email: "buyer@example.com", Key: "wrong-key"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockUserRepo.EXPECT().
				FindConfirmToken(ctx, input.Email, input.Key).
				Return(nil, repository.ErrConfirmTokenNotFound)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrConfirmTokenInvalid)

	err := fx.service.Confirm(ctx, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrConfirmTokenInvalid)
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "buyer@example.com",
		PasswordHash: "hashed_password",
		Kind:         entity.UserKindBuyer,
		Active:       true,
	}
	input := usecase.LoginInput{Email: user.Email, Password: "Password123!"}

	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(user, nil)
	fx.hasher.EXPECT().Check(input.Password, user.PasswordHash).Return(true)
	fx.tokenService.EXPECT().
		GenerateTokens(user.ID, entity.UserKindBuyer.String()).
		Return("access-token", "refresh-token", nil)

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
	assert.Equal(t, user, output.User)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "buyer@example.com",
		PasswordHash: "hashed_password",
		Active:       true,
	}
	input := usecase.LoginInput{Email: user.Email, Password: "wrong"}

	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(user, nil)
	fx.hasher.EXPECT().Check(input.Password, user.PasswordHash).Return(false)

	output, err := fx.service.Login(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := usecase.LoginInput{Email: "nobody@example.com", Password: "Password123!"}

	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_InactiveAccount(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "buyer@example.com",
		PasswordHash: "hashed_password",
		Active:       false,
	}
	input := usecase.LoginInput{Email: user.Email, Password: "Password123!"}

	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(user, nil)
	fx.hasher.EXPECT().Check(input.Password, user.PasswordHash).Return(true)

	output, err := fx.service.Login(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrAccountNotActive)
}

func TestUserService_Refresh_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:     uuid.New(),
		Email:  "buyer@example.com",
		Kind:   entity.UserKindBuyer,
		Active: true,
	}
	claims := &service.Claims{UserID: user.ID, Kind: user.Kind.String(), Type: "refresh"}

	fx.tokenService.EXPECT().ValidateToken("old-refresh").Return(claims, nil)
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.tokenService.EXPECT().
		GenerateTokens(user.ID, user.Kind.String()).
		Return("new-access", "new-refresh", nil)

	output, err := fx.service.Refresh(ctx, "old-refresh")

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "new-access", output.AccessToken)
	assert.Equal(t, "new-refresh", output.RefreshToken)
}

func TestUserService_Refresh_AccessTokenRejected(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	claims := &service.Claims{UserID: uuid.New(), Type: "access"}

	fx.tokenService.EXPECT().ValidateToken("access-token").Return(claims, nil)

	output, err := fx.service.Refresh(ctx, "access-token")

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestUserService_Refresh_UserGone(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	claims := &service.Claims{UserID: uuid.New(), Type: "refresh"}

	fx.tokenService.EXPECT().ValidateToken("old-refresh").Return(claims, nil)
	fx.userRepo.EXPECT().FindByID(ctx, claims.UserID).Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Refresh(ctx, "old-refresh")

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestUserService_GetDetails_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	user, err := fx.service.GetDetails(ctx, userID)

	require.Error(t, err)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_UpdateDetails_PartialUpdate(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	newCompany := "New Company Ltd"
	input := usecase.UpdateDetailsInput{Company: &newCompany}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByID(ctx, userID).
				Return(&entity.User{
					ID:        userID,
					Email:     "buyer@example.com",
					FirstName: "Test",
					Company:   "Old Company",
				}, nil)
			mockUserRepo.EXPECT().
				Update(ctx, mock.MatchedBy(func(user *entity.User) bool {
					return user.Company == newCompany && user.FirstName == "Test"
				})).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	updated, err := fx.service.UpdateDetails(ctx, userID, input)

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, newCompany, updated.Company)
	assert.Equal(t, "Test", updated.FirstName)
}

func TestUserService_UpdateDetails_RepoFailure(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	newEmail := "new@example.com"

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(errors.New("database gone"))

	updated, err := fx.service.UpdateDetails(ctx, userID, usecase.UpdateDetailsInput{Email: &newEmail})

	require.Error(t, err)
	assert.Nil(t, updated)
}
