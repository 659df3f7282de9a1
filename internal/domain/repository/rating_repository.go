package repository

import (
	"context"

	"levefit/internal/domain/entity"
	"levefit/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for rating persistence.
var (
	// ErrRatingNotFound is returned when a rating is not found.
	ErrRatingNotFound = errors.New("rating not found")
	// ErrDuplicateRating is returned when a (customer, dish) pair already has a rating.
	ErrDuplicateRating = errors.New("rating already exists for this customer and dish")
)

// RatingRepository defines the interface for rating-related database operations.
type RatingRepository interface {
	// Create persists a new rating. The (customer, dish) pair is unique;
	// violating it yields ErrDuplicateRating.
	Create(ctx context.Context, rating *entity.Rating) error

	// FindByCustomerAndDish retrieves the rating a customer left on a dish.
	FindByCustomerAndDish(ctx context.Context, customerID, dishID uuid.UUID) (*entity.Rating, error)

	// DeleteByDish removes every rating referencing the given dish.
	// Used as the manual cascade when a dish is deleted.
	DeleteByDish(ctx context.Context, dishID uuid.UUID) error
}
