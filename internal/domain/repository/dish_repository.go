// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"levefit/internal/domain/entity"
	"levefit/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for dish persistence.
var (
	// ErrDishNotFound is returned when a dish is not found.
	ErrDishNotFound = errors.New("dish not found")
)

// DishRepository defines the interface for dish-related database operations.
type DishRepository interface {
	// Create persists a new dish.
	Create(ctx context.Context, dish *entity.Dish) error

	// FindByID retrieves a dish by its unique ID, with its supplier and
	// ratings (including rating authors) attached. It does not filter on
	// supplier visibility; direct links stay reachable.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Dish, error)

	// FindPublic retrieves all dishes visible in the public catalog: the
	// owning supplier has an active subscription and is not disabled, and
	// the dish itself is available. A non-empty category narrows results
	// to an exact match. Suppliers and ratings come attached.
	FindPublic(ctx context.Context, category string) ([]*entity.Dish, error)

	// FindBySupplier retrieves every dish owned by the given supplier,
	// regardless of availability or subscription state, with ratings and
	// rating authors attached.
	FindBySupplier(ctx context.Context, supplierID uuid.UUID) ([]*entity.Dish, error)

	// DistinctCategories returns the distinct category strings across
	// publicly visible dishes, alphabetically ordered.
	DistinctCategories(ctx context.Context) ([]string, error)

	// Update persists the given dish's mutable columns.
	Update(ctx context.Context, dish *entity.Dish) error

	// Delete removes a dish by ID. Ratings referencing the dish must be
	// removed first; there is no ON DELETE CASCADE.
	Delete(ctx context.Context, id uuid.UUID) error
}
