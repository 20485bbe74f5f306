package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	FirstName    string    `gorm:"type:varchar(100)"`
	LastName     string    `gorm:"type:varchar(100)"`
	Company      string    `gorm:"type:varchar(100)"`
	Position     string    `gorm:"type:varchar(100)"`
	Kind         string    `gorm:"type:varchar(16);not null;default:'buyer'"`
	Active       bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	ConfirmTokens []ConfirmEmailTokenModel `gorm:"foreignKey:UserID"`
	Contacts      []ContactModel           `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// ConfirmEmailTokenModel mirrors the 'confirm_email_tokens' table. Each row
// is a single-use activation key mailed after registration.
type ConfirmEmailTokenModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	User      *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Key       string     `gorm:"type:varchar(64);not null;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ConfirmEmailTokenModel) TableName() string {
	return "confirm_email_tokens"
}
