// Package entity contains the core business objects of the marketplace,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Supplier (fornecedor) is a seller account offering dishes. Public catalog
// visibility requires both Active (admin-controlled) and SubscriptionActive
// (billing-controlled); dish creation requires SubscriptionActive.
type Supplier struct {
	ID                 uuid.UUID // The unique identifier for the supplier.
	Name               string    // Display name shown in the catalog.
	Email              string    // Login identifier, unique across suppliers.
	PasswordHash       string    // Bcrypt hash, never serialized to clients.
	WhatsApp           string    // Contact number used to build order deep links.
	Logo               string    // Optional logo URL.
	Description        string    // Optional storefront description.
	Active             bool      // Admin-controlled visibility switch.
	SubscriptionActive bool      // Gates dish creation and public listing.
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// OrderLink builds the WhatsApp deep link a customer follows to order a dish.
func (s *Supplier) OrderLink(dishName string) string {
	return "https://wa.me/" + s.WhatsApp + "?text=" + encodeOrderMessage(dishName)
}
