package repository

import (
	"context"

	"levefit/internal/domain/entity"
	"levefit/internal/errors"

	"github.com/google/uuid"
)

// ErrCustomerNotFound is returned when a customer is not found.
var ErrCustomerNotFound = errors.New("customer not found")

// CustomerRepository defines the interface for customer-related database operations.
type CustomerRepository interface {
	// Create persists a new customer. Email uniqueness violations yield
	// ErrDuplicateEmail.
	Create(ctx context.Context, customer *entity.Customer) error

	// FindByID retrieves a customer by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)

	// FindByEmail retrieves a customer by its login email.
	FindByEmail(ctx context.Context, email string) (*entity.Customer, error)

	// Update persists the customer's profile columns.
	Update(ctx context.Context, customer *entity.Customer) error
}
