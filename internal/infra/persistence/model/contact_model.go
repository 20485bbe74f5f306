package model

import (
	"time"

	"github.com/google/uuid"
)

// ContactModel mirrors the 'contacts' table, one delivery address of a user.
type ContactModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	User      *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	City      string     `gorm:"type:varchar(100);not null"`
	Street    string     `gorm:"type:varchar(150);not null"`
	House     string     `gorm:"type:varchar(20)"`
	Structure string     `gorm:"type:varchar(20)"`
	Building  string     `gorm:"type:varchar(20)"`
	Apartment string     `gorm:"type:varchar(20)"`
	Phone     string     `gorm:"type:varchar(30);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ContactModel) TableName() string {
	return "contacts"
}
