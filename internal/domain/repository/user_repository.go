// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"bazaar/internal/domain/entity"
	"bazaar/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateUser is returned when the email is already registered.
	ErrDuplicateUser = errors.New("email already registered")
	// ErrConfirmTokenNotFound is returned when no confirmation token matches.
	ErrConfirmTokenNotFound = errors.New("confirmation token not found")
)

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// CreateConfirmToken persists an email confirmation token for a user.
	CreateConfirmToken(ctx context.Context, token *entity.ConfirmEmailToken) error

	// FindConfirmToken retrieves the confirmation token matching an email and key pair.
	FindConfirmToken(ctx context.Context, email, key string) (*entity.ConfirmEmailToken, error)

	// DeleteConfirmToken removes a confirmation token after it has been used.
	DeleteConfirmToken(ctx context.Context, id uuid.UUID) error
}
