package usecase

import (
	"context"

	"github.com/google/uuid"
)

// CreateRatingInput is the payload for submitting a rating. The author is
// taken from the authenticated token, never from the body.
type CreateRatingInput struct {
	DishID  uuid.UUID `json:"pratoId" validate:"required"`
	Score   int       `json:"nota" validate:"required"`
	Comment string    `json:"comentario"`
}

// RatingUsecase groups rating submission.
type RatingUsecase interface {
	// CreateRating records a 1-5 score plus comment by the calling customer
	// on a dish. Each customer rates a dish at most once.
	CreateRating(ctx context.Context, customerID uuid.UUID, input *CreateRatingInput) (*RatingOutput, error)
}
