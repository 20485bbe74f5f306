package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ContactInput carries the fields of a delivery contact. City, street and
// phone are the required core; the rest refines the address.
type ContactInput struct {
	City      string `json:"city" validate:"required"`
	Street    string `json:"street" validate:"required"`
	House     string `json:"house"`
	Structure string `json:"structure"`
	Building  string `json:"building"`
	Apartment string `json:"apartment"`
	Phone     string `json:"phone" validate:"required"`
}

// ContactUsecase manages a user's delivery contacts.
type ContactUsecase interface {
	// List retrieves all contacts of the user.
	List(ctx context.Context, userID uuid.UUID) ([]*entity.Contact, error)

	// Create adds a new contact.
	Create(ctx context.Context, userID uuid.UUID, input ContactInput) (*entity.Contact, error)

	// Update rewrites an existing contact, enforcing ownership.
	Update(ctx context.Context, userID, contactID uuid.UUID, input ContactInput) (*entity.Contact, error)

	// Delete removes the given contacts and reports how many went away.
	Delete(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (int64, error)
}
