package entity

import (
	"time"

	"github.com/google/uuid"
)

// Rating score bounds, inclusive.
const (
	MinRatingScore = 1
	MaxRatingScore = 5
)

// Rating (avaliação) is a customer's score and comment for one dish.
// At most one rating exists per (customer, dish) pair.
type Rating struct {
	ID         uuid.UUID
	DishID     uuid.UUID
	CustomerID uuid.UUID
	Score      int // 1-5 inclusive.
	Comment    string
	CreatedAt  time.Time

	Customer *Customer // Populated on catalog reads for attribution.
}

// ValidScore reports whether a score lies within the accepted 1-5 range.
func ValidScore(score int) bool {
	return score >= MinRatingScore && score <= MaxRatingScore
}
