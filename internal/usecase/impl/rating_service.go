package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "levefit/internal/delivery/context"
	"levefit/internal/domain/entity"
	domainerrors "levefit/internal/domain/errors"
	"levefit/internal/domain/repository"
	"levefit/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ratingService implements the RatingUsecase interface.
type ratingService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// RatingServiceParams holds dependencies for RatingService, injected by Fx.
type RatingServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewRatingService is the constructor for ratingService.
func NewRatingService(params RatingServiceParams) usecase.RatingUsecase {
	return &ratingService{
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

func (srv *ratingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateRating records a customer's score and comment on a dish. The
// duplicate pre-check, the insert and the unique index on (customer, dish)
// together keep one rating per pair even under concurrent submissions.
func (srv *ratingService) CreateRating(ctx context.Context, customerID uuid.UUID, input *usecase.CreateRatingInput) (*usecase.RatingOutput, error) {
	if !entity.ValidScore(input.Score) {
		return nil, domainerrors.ErrInvalidScore
	}

	rating := &entity.Rating{
		ID:         uuid.New(),
		DishID:     input.DishID,
		CustomerID: customerID,
		Score:      input.Score,
		Comment:    input.Comment,
		CreatedAt:  time.Now(),
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.DishRepo().FindByID(ctx, input.DishID); err != nil {
			if errors.Is(err, repository.ErrDishNotFound) {
				return domainerrors.ErrDishNotFound
			}

			return errors.Wrap(err, "failed to find dish")
		}

		customer, err := repoFactory.CustomerRepo().FindByID(ctx, customerID)
		if err != nil {
			if errors.Is(err, repository.ErrCustomerNotFound) {
				return domainerrors.ErrCustomerNotFound
			}

			return errors.Wrap(err, "failed to find customer")
		}
		rating.Customer = customer

		ratingRepo := repoFactory.RatingRepo()

		existing, err := ratingRepo.FindByCustomerAndDish(ctx, customerID, input.DishID)
		if err != nil && !errors.Is(err, repository.ErrRatingNotFound) {
			return errors.Wrap(err, "failed to find rating by customer and dish")
		}
		if existing != nil {
			return domainerrors.ErrDuplicateRating
		}

		if err := ratingRepo.Create(ctx, rating); err != nil {
			if errors.Is(err, repository.ErrDuplicateRating) {
				return domainerrors.ErrDuplicateRating
			}

			return errors.Wrap(err, "failed to create rating")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create rating", slog.Any("dishID", input.DishID), slog.Any("customerID", customerID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Rating created", slog.Any("ratingID", rating.ID), slog.Any("dishID", input.DishID))

	return toRatingOutput(rating), nil
}
