package handler

import (
	"time"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Response DTOs shared by the handlers. Entities are mapped explicitly so
// the wire format stays stable when the domain model changes.

// parseIDList converts raw id strings to UUIDs, silently dropping values
// that do not parse. Batch delete endpoints ignore junk ids instead of
// failing the request.
func parseIDList(raw []string) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}

	return ids
}

// UserDTO is the account representation returned to clients.
type UserDTO struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Company   string    `json:"company,omitempty"`
	Position  string    `json:"position,omitempty"`
	Type      string    `json:"type"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserDTO(user *entity.User) *UserDTO {
	return &UserDTO{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Company:   user.Company,
		Position:  user.Position,
		Type:      user.Kind.String(),
		Active:    user.Active,
		CreatedAt: user.CreatedAt,
	}
}

// ContactDTO is one delivery contact.
type ContactDTO struct {
	ID        uuid.UUID `json:"id"`
	City      string    `json:"city"`
	Street    string    `json:"street"`
	House     string    `json:"house,omitempty"`
	Structure string    `json:"structure,omitempty"`
	Building  string    `json:"building,omitempty"`
	Apartment string    `json:"apartment,omitempty"`
	Phone     string    `json:"phone"`
}

func toContactDTO(contact *entity.Contact) *ContactDTO {
	return &ContactDTO{
		ID:        contact.ID,
		City:      contact.City,
		Street:    contact.Street,
		House:     contact.House,
		Structure: contact.Structure,
		Building:  contact.Building,
		Apartment: contact.Apartment,
		Phone:     contact.Phone,
	}
}

func toContactDTOs(contacts []*entity.Contact) []*ContactDTO {
	dtos := make([]*ContactDTO, 0, len(contacts))
	for _, contact := range contacts {
		dtos = append(dtos, toContactDTO(contact))
	}

	return dtos
}

// ShopDTO is one supplier storefront.
type ShopDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Accepting bool      `json:"accepting"`
}

func toShopDTO(shop *entity.Shop) *ShopDTO {
	return &ShopDTO{
		ID:        shop.ID,
		Name:      shop.Name,
		Accepting: shop.Accepting,
	}
}

// CategoryDTO is one product category.
type CategoryDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ListingDTO is one shop listing of a product, loaded for display.
type ListingDTO struct {
	ID         uuid.UUID         `json:"id"`
	Model      string            `json:"model,omitempty"`
	Product    string            `json:"product"`
	Category   string            `json:"category,omitempty"`
	Shop       string            `json:"shop,omitempty"`
	ShopID     uuid.UUID         `json:"shop_id"`
	Quantity   int               `json:"quantity"`
	Price      decimal.Decimal   `json:"price"`
	PriceRRC   decimal.Decimal   `json:"price_rrc"`
	Parameters map[string]string `json:"parameters,omitempty"`
}

func toListingDTO(info *entity.ProductInfo) *ListingDTO {
	dto := &ListingDTO{
		ID:       info.ID,
		Model:    info.Model,
		ShopID:   info.ShopID,
		Quantity: info.Quantity,
		Price:    info.Price,
		PriceRRC: info.PriceRRC,
	}
	if info.Product != nil {
		dto.Product = info.Product.Name
		if info.Product.Category != nil {
			dto.Category = info.Product.Category.Name
		}
	}
	if info.Shop != nil {
		dto.Shop = info.Shop.Name
	}
	if len(info.Parameters) > 0 {
		dto.Parameters = make(map[string]string, len(info.Parameters))
		for _, param := range info.Parameters {
			if param.Parameter != nil {
				dto.Parameters[param.Parameter.Name] = param.Value
			}
		}
	}

	return dto
}

func toListingDTOs(infos []*entity.ProductInfo) []*ListingDTO {
	dtos := make([]*ListingDTO, 0, len(infos))
	for _, info := range infos {
		dtos = append(dtos, toListingDTO(info))
	}

	return dtos
}

// OrderItemDTO is one order line with its listing snapshot.
type OrderItemDTO struct {
	ID       uuid.UUID       `json:"id"`
	Listing  *ListingDTO     `json:"listing,omitempty"`
	Quantity int             `json:"quantity"`
	Sum      decimal.Decimal `json:"sum"`
}

// OrderDTO is one order, basket included.
type OrderDTO struct {
	ID        uuid.UUID       `json:"id"`
	State     string          `json:"state"`
	Contact   *ContactDTO     `json:"contact,omitempty"`
	Items     []*OrderItemDTO `json:"items"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt time.Time       `json:"created_at"`
}

func toOrderDTO(order *entity.Order) *OrderDTO {
	dto := &OrderDTO{
		ID:        order.ID,
		State:     string(order.State),
		Items:     make([]*OrderItemDTO, 0, len(order.Items)),
		Total:     order.Total(),
		CreatedAt: order.CreatedAt,
	}
	if order.Contact != nil {
		dto.Contact = toContactDTO(order.Contact)
	}
	for i := range order.Items {
		item := &order.Items[i]
		itemDTO := &OrderItemDTO{
			ID:       item.ID,
			Quantity: item.Quantity,
		}
		if item.ProductInfo != nil {
			itemDTO.Listing = toListingDTO(item.ProductInfo)
			itemDTO.Sum = item.ProductInfo.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		}
		dto.Items = append(dto.Items, itemDTO)
	}

	return dto
}

func toOrderDTOs(orders []*entity.Order) []*OrderDTO {
	dtos := make([]*OrderDTO, 0, len(orders))
	for _, order := range orders {
		dtos = append(dtos, toOrderDTO(order))
	}

	return dtos
}
