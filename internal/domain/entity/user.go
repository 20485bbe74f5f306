// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core account entity shared by buyers and shop staff.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email        string    // The user's login identifier. Unique across the system.
	PasswordHash string    // Bcrypt hash of the user's password.
	FirstName    string
	LastName     string
	Company      string
	Position     string
	Kind         UserKind  // Account kind, either a buyer or a supplier-side shop account.
	Active       bool      // False until the user confirms their email address.
	CreatedAt    time.Time // Timestamp of when this user account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this user's data.
}

// ConfirmEmailToken is a single-use key mailed to a user to activate the account.
type ConfirmEmailToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Key       string
	CreatedAt time.Time
}
