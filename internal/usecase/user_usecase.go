// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
	Company   string `json:"company"`
	Position  string `json:"position"`
	Kind      string `json:"type" validate:"omitempty,oneof=buyer shop"`
}

// ConfirmInput carries the email plus the key mailed after registration.
type ConfirmInput struct {
	Email string `json:"email" validate:"required,email"`
	Key   string `json:"token" validate:"required"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateDetailsInput carries the editable account fields. Nil pointers
// leave the current value untouched.
type UpdateDetailsInput struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Password  *string `json:"password"`
	Company   *string `json:"company"`
	Position  *string `json:"position"`
}

// --- Output DTOs ---

// RegisterOutput returns the newly created account's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// UserUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// Register creates an inactive account and queues the confirmation mail.
	Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error)

	// Confirm activates an account using the mailed key.
	Confirm(ctx context.Context, input ConfirmInput) error

	// Login verifies credentials of an active account and issues tokens.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// Refresh exchanges a valid refresh token for a fresh token pair.
	Refresh(ctx context.Context, refreshToken string) (*LoginOutput, error)

	// GetDetails retrieves the account of the authenticated user.
	GetDetails(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// UpdateDetails applies partial changes to the account.
	UpdateDetails(ctx context.Context, userID uuid.UUID, input UpdateDetailsInput) (*entity.User, error)
}
