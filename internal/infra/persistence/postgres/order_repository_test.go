package postgres

import (
	"context"
	"testing"

	"bazaar/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderRepository_UpdateItemQuantity_ScopedToUsersOrders(t *testing.T) {
	gormDB, mock, mockDB := newMockGorm(t)
	defer mockDB.Close()
	repo := NewOrderRepository(gormDB)

	userID := uuid.New()
	itemID := uuid.New()

	// The line may sit in any of the user's orders, basket or placed; the
	// subquery pins ownership without naming a specific order.
	mock.ExpectExec(`UPDATE "order_items" SET "quantity"=\$1 WHERE id = \$2 AND order_id IN \(SELECT .*id.* FROM "orders" WHERE user_id = \$3\)`).
		WithArgs(7, itemID, userID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateItemQuantity(context.Background(), userID, itemID, 7)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_UpdateItemQuantity_ForeignLineNotFound(t *testing.T) {
	gormDB, mock, mockDB := newMockGorm(t)
	defer mockDB.Close()
	repo := NewOrderRepository(gormDB)

	userID := uuid.New()
	itemID := uuid.New()

	mock.ExpectExec(`UPDATE "order_items" SET "quantity"=\$1 WHERE id = \$2 AND order_id IN \(SELECT .*id.* FROM "orders" WHERE user_id = \$3\)`).
		WithArgs(7, itemID, userID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateItemQuantity(context.Background(), userID, itemID, 7)

	assert.ErrorIs(t, err, repository.ErrOrderItemNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
