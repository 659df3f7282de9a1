package entity

import (
	"time"

	"github.com/google/uuid"
)

// Customer (cliente) is a buyer account. Customers browse the public catalog
// and may rate each dish at most once.
type Customer struct {
	ID           uuid.UUID
	Name         string
	Email        string // Login identifier, unique across customers.
	PasswordHash string // Bcrypt hash, never serialized to clients.
	Address      string // Optional delivery address.
	Phone        string // Optional contact phone.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
