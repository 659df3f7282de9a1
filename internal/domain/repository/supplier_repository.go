package repository

import (
	"context"

	"levefit/internal/domain/entity"
	"levefit/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for supplier persistence.
var (
	// ErrSupplierNotFound is returned when a supplier is not found.
	ErrSupplierNotFound = errors.New("supplier not found")
	// ErrDuplicateEmail is returned when an email is already registered.
	ErrDuplicateEmail = errors.New("email already registered")
)

// SupplierRepository defines the interface for supplier-related database operations.
type SupplierRepository interface {
	// Create persists a new supplier. Email uniqueness violations yield
	// ErrDuplicateEmail.
	Create(ctx context.Context, supplier *entity.Supplier) error

	// FindByID retrieves a supplier by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Supplier, error)

	// FindByEmail retrieves a supplier by its login email.
	FindByEmail(ctx context.Context, email string) (*entity.Supplier, error)

	// FindActive retrieves all suppliers with status active, for the public
	// supplier directory.
	FindActive(ctx context.Context) ([]*entity.Supplier, error)

	// SetSubscriptionActive flips the billing-controlled subscription flag.
	SetSubscriptionActive(ctx context.Context, id uuid.UUID, active bool) error

	// Update persists the supplier's profile columns.
	Update(ctx context.Context, supplier *entity.Supplier) error
}
