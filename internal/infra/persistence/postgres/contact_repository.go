package postgres

import (
	"context"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// contactRepository implements the domain's ContactRepository interface using GORM.
type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository is the constructor for contactRepository.
func NewContactRepository(db *gorm.DB) repository.ContactRepository {
	return &contactRepository{db: db}
}

// Create persists a new contact.
func (repo *contactRepository) Create(ctx context.Context, contact *entity.Contact) error {
	contactM := fromContactDomain(contact)

	if err := repo.db.WithContext(ctx).Create(contactM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrContactNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create contact")
	}

	contact.CreatedAt = contactM.CreatedAt
	contact.UpdatedAt = contactM.UpdatedAt

	return nil
}

// FindByUser retrieves all contacts of a user.
func (repo *contactRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Contact, error) {
	var contactMs []model.ContactModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at").
		Find(&contactMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list contacts")
	}

	contacts := make([]*entity.Contact, 0, len(contactMs))
	for i := range contactMs {
		contacts = append(contacts, toContactDomain(&contactMs[i]))
	}

	return contacts, nil
}

// FindByIDAndUser retrieves one contact, enforcing ownership.
func (repo *contactRepository) FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Contact, error) {
	var contactM model.ContactModel
	err := repo.db.WithContext(ctx).
		First(&contactM, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrContactNotFound
		}

		return nil, errors.Wrap(err, "failed to find contact")
	}

	return toContactDomain(&contactM), nil
}

// Update modifies an existing contact.
func (repo *contactRepository) Update(ctx context.Context, contact *entity.Contact) error {
	contactM := fromContactDomain(contact)

	if err := repo.db.WithContext(ctx).Save(contactM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update contact")
	}

	contact.UpdatedAt = contactM.UpdatedAt

	return nil
}

// Delete removes the given contacts of a user.
func (repo *contactRepository) Delete(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	result := repo.db.WithContext(ctx).
		Delete(&model.ContactModel{}, "user_id = ? AND id IN ?", userID, ids)
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete contacts")
	}

	return result.RowsAffected, nil
}
