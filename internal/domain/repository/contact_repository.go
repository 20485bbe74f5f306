// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"bazaar/internal/domain/entity"
	"bazaar/internal/errors"

	"github.com/google/uuid"
)

// ErrContactNotFound is returned when a contact is not found.
var ErrContactNotFound = errors.New("contact not found")

// ContactRepository defines the interface for delivery contact persistence.
// Every operation is scoped to the owning user.
type ContactRepository interface {
	// Create persists a new contact.
	Create(ctx context.Context, contact *entity.Contact) error

	// FindByUser retrieves all contacts of a user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Contact, error)

	// FindByIDAndUser retrieves one contact, enforcing ownership.
	FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Contact, error)

	// Update modifies an existing contact.
	Update(ctx context.Context, contact *entity.Contact) error

	// Delete removes the given contacts of a user and reports how many
	// rows were actually deleted.
	Delete(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (int64, error)
}
