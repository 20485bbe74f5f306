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
	"gorm.io/gorm/clause"
)

// orderRepository implements the domain's OrderRepository interface using GORM.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// basketPreloads eagerly loads order lines with everything needed to
// render them and compute totals.
func basketPreloads(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Items.ProductInfo.Product.Category").
		Preload("Items.ProductInfo.Shop").
		Preload("Items.ProductInfo.Parameters.Parameter")
}

// GetOrCreateBasket returns the user's basket-state order, creating one if
// none exists. The insert targets the partial unique index on
// (user_id) WHERE state = 'basket' and does nothing on conflict, so two
// concurrent first calls still converge on a single basket row.
func (repo *orderRepository) GetOrCreateBasket(ctx context.Context, userID uuid.UUID) (*entity.Order, error) {
	basketM := model.OrderModel{
		ID:     uuid.New(),
		UserID: userID,
		State:  entity.OrderStateBasket.String(),
	}
	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			TargetWhere: clause.Where{Exprs: []clause.Expression{
				clause.Eq{Column: clause.Column{Name: "state"}, Value: entity.OrderStateBasket.String()},
			}},
			DoNothing: true,
		}).
		Create(&basketM).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to ensure basket")
	}

	// Re-read whichever row won, with its lines.
	var found model.OrderModel
	err = basketPreloads(repo.db.WithContext(ctx)).
		Where("user_id = ? AND state = ?", userID, entity.OrderStateBasket.String()).
		First(&found).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to load basket")
	}

	return toOrderDomain(&found), nil
}

// AddItems appends lines to an order in one shot. The pre-check names the
// offending listing for a friendly conflict message; the unique index on
// (order_id, product_info_id) still guards the race underneath.
func (repo *orderRepository) AddItems(ctx context.Context, orderID uuid.UUID, items []entity.OrderItem) error {
	if len(items) == 0 {
		return nil
	}

	listingIDs := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		listingIDs = append(listingIDs, item.ProductInfoID)
	}

	var existing []uuid.UUID
	err := repo.db.WithContext(ctx).
		Model(&model.OrderItemModel{}).
		Where("order_id = ? AND product_info_id IN ?", orderID, listingIDs).
		Pluck("product_info_id", &existing).Error
	if err != nil {
		return errors.Wrap(err, "failed to check existing order lines")
	}
	if len(existing) > 0 {
		return &repository.DuplicateItemError{ProductInfoID: existing[0]}
	}

	itemMs := make([]model.OrderItemModel, 0, len(items))
	for _, item := range items {
		itemMs = append(itemMs, model.OrderItemModel{
			ID:            item.ID,
			OrderID:       orderID,
			ProductInfoID: item.ProductInfoID,
			Quantity:      item.Quantity,
		})
	}

	if err := repo.db.WithContext(ctx).Create(&itemMs).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return &repository.DuplicateItemError{ProductInfoID: listingIDs[0]}
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductInfoNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add order lines")
	}

	return nil
}

// DeleteItems removes the given lines from an order.
func (repo *orderRepository) DeleteItems(ctx context.Context, orderID uuid.UUID, itemIDs []uuid.UUID) (int64, error) {
	if len(itemIDs) == 0 {
		return 0, nil
	}

	result := repo.db.WithContext(ctx).
		Delete(&model.OrderItemModel{}, "order_id = ? AND id IN ?", orderID, itemIDs)
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete order lines")
	}

	return result.RowsAffected, nil
}

// UpdateItemQuantity sets the quantity of one line belonging to any of the
// user's orders. Ownership is enforced by the subquery, so a line from
// another user's order counts as not found.
func (repo *orderRepository) UpdateItemQuantity(ctx context.Context, userID, itemID uuid.UUID, quantity int) error {
	ownOrders := repo.db.WithContext(ctx).
		Session(&gorm.Session{NewDB: true}).
		Model(&model.OrderModel{}).
		Select("id").
		Where("user_id = ?", userID)

	result := repo.db.WithContext(ctx).
		Model(&model.OrderItemModel{}).
		Where("id = ? AND order_id IN (?)", itemID, ownOrders).
		Update("quantity", quantity)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update line quantity")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderItemNotFound
	}

	return nil
}

// Checkout conditionally flips the user's order from basket to new and
// pins the delivery contact. Zero affected rows means the order was not
// this user's basket anymore, so the caller lost the race.
func (repo *orderRepository) Checkout(ctx context.Context, userID, orderID, contactID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ? AND user_id = ? AND state = ?", orderID, userID, entity.OrderStateBasket.String()).
		Updates(map[string]any{
			"state":      entity.OrderStateNew.String(),
			"contact_id": contactID,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to check out order")
	}
	if result.RowsAffected == 0 {
		return repository.ErrStaleOrderState
	}

	return nil
}

// FindUserOrders retrieves the user's placed orders, newest first.
func (repo *orderRepository) FindUserOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	var orderMs []model.OrderModel
	err := basketPreloads(repo.db.WithContext(ctx)).
		Preload("Contact").
		Where("user_id = ? AND state <> ?", userID, entity.OrderStateBasket.String()).
		Order("created_at DESC").
		Find(&orderMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user orders")
	}

	orders := make([]*entity.Order, 0, len(orderMs))
	for i := range orderMs {
		orders = append(orders, toOrderDomain(&orderMs[i]))
	}

	return orders, nil
}

// FindUserOrder retrieves one placed order of a user with full detail.
func (repo *orderRepository) FindUserOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel
	err := basketPreloads(repo.db.WithContext(ctx)).
		Preload("Contact").
		Where("id = ? AND user_id = ? AND state <> ?", orderID, userID, entity.OrderStateBasket.String()).
		First(&orderM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to load user order")
	}

	return toOrderDomain(&orderM), nil
}

// shopOrderQuery selects placed orders holding at least one line from the
// shop, loading only that shop's lines.
func (repo *orderRepository) shopOrderQuery(ctx context.Context, shopID uuid.UUID) *gorm.DB {
	return repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Distinct("orders.*").
		Joins("JOIN order_items ON order_items.order_id = orders.id").
		Joins("JOIN product_infos ON product_infos.id = order_items.product_info_id").
		Where("product_infos.shop_id = ? AND orders.state <> ?", shopID, entity.OrderStateBasket.String()).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Where("product_info_id IN (?)",
				db.Session(&gorm.Session{NewDB: true}).
					Model(&model.ProductInfoModel{}).
					Select("id").
					Where("shop_id = ?", shopID))
		}).
		Preload("Items.ProductInfo.Product.Category").
		Preload("Items.ProductInfo.Parameters.Parameter").
		Preload("Contact")
}

// FindShopOrders retrieves placed orders containing the shop's lines.
func (repo *orderRepository) FindShopOrders(ctx context.Context, shopID uuid.UUID) ([]*entity.Order, error) {
	var orderMs []model.OrderModel
	err := repo.shopOrderQuery(ctx, shopID).
		Order("orders.created_at DESC").
		Find(&orderMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shop orders")
	}

	orders := make([]*entity.Order, 0, len(orderMs))
	for i := range orderMs {
		orders = append(orders, toOrderDomain(&orderMs[i]))
	}

	return orders, nil
}

// FindShopOrder retrieves one such order by ID.
func (repo *orderRepository) FindShopOrder(ctx context.Context, shopID, orderID uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel
	err := repo.shopOrderQuery(ctx, shopID).
		Where("orders.id = ?", orderID).
		First(&orderM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to load shop order")
	}

	return toOrderDomain(&orderM), nil
}

// UpdateState conditionally moves an order from one state to another.
func (repo *orderRepository) UpdateState(ctx context.Context, orderID uuid.UUID, from, to entity.OrderState) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ? AND state = ?", orderID, from.String()).
		Update("state", to.String())
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order state")
	}
	if result.RowsAffected == 0 {
		return repository.ErrStaleOrderState
	}

	return nil
}
