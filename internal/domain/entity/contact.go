package entity

import (
	"time"

	"github.com/google/uuid"
)

// Contact is a delivery address and phone number owned by a single user.
// A user may keep several contacts and picks one at checkout.
type Contact struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	City      string
	Street    string
	House     string
	Structure string
	Building  string
	Apartment string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
