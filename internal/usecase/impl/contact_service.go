package impl

import (
	"context"
	"log/slog"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// maxContactsPerUser caps how many delivery contacts one account may keep.
const maxContactsPerUser = 5

// contactService implements the ContactUsecase interface.
type contactService struct {
	contactRepo repository.ContactRepository
	logger      *slog.Logger
}

// ContactServiceParams holds dependencies for contactService, injected by Fx.
type ContactServiceParams struct {
	fx.In

	ContactRepo repository.ContactRepository
	Logger      *slog.Logger
}

// NewContactService is the constructor for contactService.
func NewContactService(params ContactServiceParams) usecase.ContactUsecase {
	return &contactService{
		contactRepo: params.ContactRepo,
		logger:      params.Logger,
	}
}

// List retrieves all contacts of the user.
func (srv *contactService) List(ctx context.Context, userID uuid.UUID) ([]*entity.Contact, error) {
	contacts, err := srv.contactRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list contacts")
	}

	return contacts, nil
}

// Create adds a new contact, honoring the per-user cap.
func (srv *contactService) Create(ctx context.Context, userID uuid.UUID, input usecase.ContactInput) (*entity.Contact, error) {
	existing, err := srv.contactRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count contacts")
	}
	if len(existing) >= maxContactsPerUser {
		return nil, domainerrors.ErrConflict.WithDetails("contact limit reached")
	}

	contact := &entity.Contact{
		ID:        uuid.New(),
		UserID:    userID,
		City:      input.City,
		Street:    input.Street,
		House:     input.House,
		Structure: input.Structure,
		Building:  input.Building,
		Apartment: input.Apartment,
		Phone:     input.Phone,
	}
	if err := srv.contactRepo.Create(ctx, contact); err != nil {
		return nil, errors.Wrap(err, "failed to create contact")
	}

	return contact, nil
}

// Update rewrites an existing contact, enforcing ownership.
func (srv *contactService) Update(ctx context.Context, userID, contactID uuid.UUID, input usecase.ContactInput) (*entity.Contact, error) {
	contact, err := srv.contactRepo.FindByIDAndUser(ctx, contactID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrContactNotFound) {
			return nil, domainerrors.ErrContactNotFound
		}

		return nil, errors.Wrap(err, "failed to find contact")
	}

	contact.City = input.City
	contact.Street = input.Street
	contact.House = input.House
	contact.Structure = input.Structure
	contact.Building = input.Building
	contact.Apartment = input.Apartment
	contact.Phone = input.Phone

	if err := srv.contactRepo.Update(ctx, contact); err != nil {
		return nil, errors.Wrap(err, "failed to update contact")
	}

	return contact, nil
}

// Delete removes the given contacts and reports how many went away.
func (srv *contactService) Delete(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, domainerrors.ErrValidationFailed.WithDetails("items must not be empty")
	}

	deleted, err := srv.contactRepo.Delete(ctx, userID, ids)
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete contacts")
	}

	return deleted, nil
}
