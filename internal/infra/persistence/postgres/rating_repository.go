package postgres

import (
	"context"

	"levefit/internal/domain/entity"
	domainerrors "levefit/internal/domain/errors"
	"levefit/internal/domain/repository"
	"levefit/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ratingRepository implements the repository.RatingRepository interface.
type ratingRepository struct {
	db *gorm.DB
}

// NewRatingRepository is the constructor for ratingRepository.
func NewRatingRepository(db *gorm.DB) repository.RatingRepository {
	return &ratingRepository{
		db: db,
	}
}

// Create persists a new rating. The composite unique index on
// (customer_id, dish_id) is the last line of defense against duplicates.
func (repo *ratingRepository) Create(ctx context.Context, rating *entity.Rating) error {
	ratingM := fromRatingDomain(rating)

	if err := repo.db.WithContext(ctx).Create(ratingM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateRating
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrDishNotFound
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidScore
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create rating")
	}

	rating.ID = ratingM.ID
	rating.CreatedAt = ratingM.CreatedAt

	return nil
}

// FindByCustomerAndDish retrieves the rating a customer left on a dish.
func (repo *ratingRepository) FindByCustomerAndDish(ctx context.Context, customerID, dishID uuid.UUID) (*entity.Rating, error) {
	var ratingM model.RatingModel

	if err := repo.db.WithContext(ctx).
		Where("customer_id = ? AND dish_id = ?", customerID, dishID).
		First(&ratingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRatingNotFound
		}

		return nil, errors.Wrap(err, "failed to find rating by customer and dish")
	}

	return toRatingDomain(&ratingM), nil
}

// DeleteByDish removes every rating referencing the given dish. Deleting
// nothing is fine; an unrated dish has no ratings to cascade.
func (repo *ratingRepository) DeleteByDish(ctx context.Context, dishID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("dish_id = ?", dishID).
		Delete(&model.RatingModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete ratings by dish")
	}

	return nil
}

// --- Mapper Functions ---

// toRatingDomain converts a GORM RatingModel to a domain Rating entity.
func toRatingDomain(data *model.RatingModel) *entity.Rating {
	if data == nil {
		return nil
	}

	return &entity.Rating{
		ID:         data.ID,
		DishID:     data.DishID,
		CustomerID: data.CustomerID,
		Score:      data.Score,
		Comment:    data.Comment,
		CreatedAt:  data.CreatedAt,
		Customer:   toCustomerDomain(data.Customer),
	}
}

// fromRatingDomain converts a domain Rating entity to a GORM RatingModel.
func fromRatingDomain(data *entity.Rating) *model.RatingModel {
	if data == nil {
		return nil
	}

	return &model.RatingModel{
		ID:         data.ID,
		DishID:     data.DishID,
		CustomerID: data.CustomerID,
		Score:      data.Score,
		Comment:    data.Comment,
		CreatedAt:  data.CreatedAt,
	}
}
