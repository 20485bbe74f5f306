// Package entity contains the core business objects of the project.
package entity

// UserKind represents the type of account a user holds in the system.
type UserKind string

const (
	// UserKindBuyer indicates a purchasing-side account.
	UserKindBuyer UserKind = "buyer"
	// UserKindShop indicates a supplier-side account that can manage a shop.
	UserKindShop UserKind = "shop"
)

// String returns the string representation of the UserKind.
func (k UserKind) String() string {
	return string(k)
}

// IsValid checks if the UserKind is a valid value.
func (k UserKind) IsValid() bool {
	switch k {
	case UserKindBuyer, UserKindShop:
		return true
	default:
		return false
	}
}
