// Package usecase defines the application's use case interfaces and the
// input/output models exchanged with the delivery layer. JSON field names
// follow the public API contract (Portuguese, as consumed by the web client).
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// CreateDishInput is the payload for registering a new dish.
type CreateDishInput struct {
	Name        string  `json:"nome" validate:"required"`
	Description string  `json:"descricao" validate:"required"`
	Price       float64 `json:"preco" validate:"required,gt=0"`
	Image       string  `json:"imagem"`
	Category    string  `json:"categoria" validate:"required"`
	Available   *bool   `json:"disponivel"` // Defaults to true when absent.
}

// UpdateDishInput is the payload for a partial dish update. Pointer fields
// distinguish "absent" from "present but falsy": a nil field is left
// unchanged, while disponivel=false or preco=0 present in the payload is
// applied as given.
type UpdateDishInput struct {
	Name        *string  `json:"nome"`
	Description *string  `json:"descricao"`
	Price       *float64 `json:"preco"`
	Image       *string  `json:"imagem"`
	Category    *string  `json:"categoria"`
	Available   *bool    `json:"disponivel"`
}

// SupplierSummary is the flattened supplier view attached to catalog reads.
type SupplierSummary struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"nome"`
	WhatsApp string    `json:"whatsapp"`
	Logo     string    `json:"logo,omitempty"`
}

// CustomerSummary attributes a rating to its author.
type CustomerSummary struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"nome"`
}

// RatingOutput is the rating view attached to catalog reads.
type RatingOutput struct {
	ID        uuid.UUID        `json:"id"`
	Score     int              `json:"nota"`
	Comment   string           `json:"comentario"`
	Customer  *CustomerSummary `json:"cliente,omitempty"`
	CreatedAt time.Time        `json:"createdAt"`
}

// DishOutput is the dish representation served by every catalog endpoint.
// AverageRating and RatingCount are derived at read time, never stored.
type DishOutput struct {
	ID            uuid.UUID        `json:"id"`
	Name          string           `json:"nome"`
	Description   string           `json:"descricao"`
	Price         float64          `json:"preco"`
	Image         string           `json:"imagem,omitempty"`
	Category      string           `json:"categoria"`
	Available     bool             `json:"disponivel"`
	SupplierID    uuid.UUID        `json:"fornecedorId"`
	Supplier      *SupplierSummary `json:"fornecedor,omitempty"`
	Ratings       []*RatingOutput  `json:"avaliacoes"`
	AverageRating float64          `json:"mediaAvaliacao"`
	RatingCount   int              `json:"totalAvaliacoes"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"`
}

// CatalogUsecase groups the dish catalog operations: creation, listings,
// category enumeration, detail, mutation and the order-link QR code.
type CatalogUsecase interface {
	// CreateDish registers a dish owned by the calling supplier. The
	// supplier must exist and hold an active subscription.
	CreateDish(ctx context.Context, supplierID uuid.UUID, input *CreateDishInput) (*DishOutput, error)

	// ListPublicDishes returns the public catalog, optionally narrowed to
	// one category (exact match).
	ListPublicDishes(ctx context.Context, category string) ([]*DishOutput, error)

	// ListSupplierDishes returns every dish of the calling supplier for its
	// dashboard, regardless of availability or subscription state.
	ListSupplierDishes(ctx context.Context, supplierID uuid.UUID) ([]*DishOutput, error)

	// ListCategories returns the distinct categories of publicly visible
	// dishes, alphabetically ordered.
	ListCategories(ctx context.Context) ([]string, error)

	// GetDish returns one dish with supplier and ratings attached.
	GetDish(ctx context.Context, id uuid.UUID) (*DishOutput, error)

	// UpdateDish applies the fields present in the payload to a dish owned
	// by the calling supplier.
	UpdateDish(ctx context.Context, supplierID, dishID uuid.UUID, input *UpdateDishInput) (*DishOutput, error)

	// DeleteDish removes a dish owned by the calling supplier together with
	// all its ratings.
	DeleteDish(ctx context.Context, supplierID, dishID uuid.UUID) error

	// DishOrderQR renders the dish's WhatsApp order deep link as a PNG QR code.
	DishOrderQR(ctx context.Context, dishID uuid.UUID) ([]byte, error)
}
