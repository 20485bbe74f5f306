package postgres

import (
	"bazaar/internal/domain/entity"
	"bazaar/internal/infra/persistence/model"
)

// Mapper helpers converting between persistence models and domain entities.
// They live in one place because the order and catalog repositories share
// the listing shapes.

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:           data.ID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		Company:      data.Company,
		Position:     data.Position,
		Kind:         entity.UserKind(data.Kind),
		Active:       data.Active,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:           data.ID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		Company:      data.Company,
		Position:     data.Position,
		Kind:         data.Kind.String(),
		Active:       data.Active,
	}
}

func toContactDomain(data *model.ContactModel) *entity.Contact {
	if data == nil {
		return nil
	}

	return &entity.Contact{
		ID:        data.ID,
		UserID:    data.UserID,
		City:      data.City,
		Street:    data.Street,
		House:     data.House,
		Structure: data.Structure,
		Building:  data.Building,
		Apartment: data.Apartment,
		Phone:     data.Phone,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromContactDomain(data *entity.Contact) *model.ContactModel {
	if data == nil {
		return nil
	}

	return &model.ContactModel{
		ID:        data.ID,
		UserID:    data.UserID,
		City:      data.City,
		Street:    data.Street,
		House:     data.House,
		Structure: data.Structure,
		Building:  data.Building,
		Apartment: data.Apartment,
		Phone:     data.Phone,
	}
}

func toShopDomain(data *model.ShopModel) *entity.Shop {
	if data == nil {
		return nil
	}

	return &entity.Shop{
		ID:        data.ID,
		Name:      data.Name,
		URL:       data.URL,
		UserID:    data.UserID,
		Accepting: data.Accepting,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromShopDomain(data *entity.Shop) *model.ShopModel {
	if data == nil {
		return nil
	}

	return &model.ShopModel{
		ID:        data.ID,
		Name:      data.Name,
		URL:       data.URL,
		UserID:    data.UserID,
		Accepting: data.Accepting,
	}
}

func toCategoryDomain(data *model.CategoryModel) *entity.Category {
	if data == nil {
		return nil
	}

	return &entity.Category{
		ID:   data.ID,
		Name: data.Name,
	}
}

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:         data.ID,
		Name:       data.Name,
		CategoryID: data.CategoryID,
		Category:   toCategoryDomain(data.Category),
		CreatedAt:  data.CreatedAt,
	}
}

func toParameterDomain(data *model.ParameterModel) *entity.Parameter {
	if data == nil {
		return nil
	}

	return &entity.Parameter{
		ID:   data.ID,
		Name: data.Name,
	}
}

func toProductParameterDomain(data *model.ProductParameterModel) entity.ProductParameter {
	return entity.ProductParameter{
		ID:            data.ID,
		ProductInfoID: data.ProductInfoID,
		ParameterID:   data.ParameterID,
		Parameter:     toParameterDomain(data.Parameter),
		Value:         data.Value,
	}
}

func toProductInfoDomain(data *model.ProductInfoModel) *entity.ProductInfo {
	if data == nil {
		return nil
	}

	params := make([]entity.ProductParameter, 0, len(data.Parameters))
	for i := range data.Parameters {
		params = append(params, toProductParameterDomain(&data.Parameters[i]))
	}

	return &entity.ProductInfo{
		ID:         data.ID,
		ProductID:  data.ProductID,
		Product:    toProductDomain(data.Product),
		ShopID:     data.ShopID,
		Shop:       toShopDomain(data.Shop),
		ExternalID: data.ExternalID,
		Model:      data.Model,
		Quantity:   data.Quantity,
		Price:      data.Price,
		PriceRRC:   data.PriceRRC,
		Parameters: params,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func fromProductInfoDomain(data *entity.ProductInfo) *model.ProductInfoModel {
	if data == nil {
		return nil
	}

	return &model.ProductInfoModel{
		ID:         data.ID,
		ProductID:  data.ProductID,
		ShopID:     data.ShopID,
		ExternalID: data.ExternalID,
		Model:      data.Model,
		Quantity:   data.Quantity,
		Price:      data.Price,
		PriceRRC:   data.PriceRRC,
	}
}

func toOrderItemDomain(data *model.OrderItemModel) entity.OrderItem {
	return entity.OrderItem{
		ID:            data.ID,
		OrderID:       data.OrderID,
		ProductInfoID: data.ProductInfoID,
		ProductInfo:   toProductInfoDomain(data.ProductInfo),
		Quantity:      data.Quantity,
	}
}

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	items := make([]entity.OrderItem, 0, len(data.Items))
	for i := range data.Items {
		items = append(items, toOrderItemDomain(&data.Items[i]))
	}

	return &entity.Order{
		ID:        data.ID,
		UserID:    data.UserID,
		State:     entity.OrderState(data.State),
		ContactID: data.ContactID,
		Contact:   toContactDomain(data.Contact),
		Items:     items,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
