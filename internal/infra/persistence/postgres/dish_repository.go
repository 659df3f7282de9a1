// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
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

// publicDishCondition restricts dish queries to the publicly visible catalog:
// the dish is available and its supplier is both active and subscribed.
const publicDishCondition = "dishes.available = TRUE AND suppliers.active = TRUE AND suppliers.subscription_active = TRUE"

// dishRepository implements the repository.DishRepository interface.
type dishRepository struct {
	db *gorm.DB
}

// NewDishRepository is the constructor for dishRepository.
func NewDishRepository(db *gorm.DB) repository.DishRepository {
	return &dishRepository{
		db: db,
	}
}

// Create persists a new dish.
func (repo *dishRepository) Create(ctx context.Context, dish *entity.Dish) error {
	dishM := fromDishDomain(dish)

	if err := repo.db.WithContext(ctx).Create(dishM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrSupplierNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrMissingDishFields.WrapMessage("missing required dish information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create dish")
	}

	dish.ID = dishM.ID
	dish.CreatedAt = dishM.CreatedAt
	dish.UpdatedAt = dishM.UpdatedAt

	return nil
}

// FindByID retrieves a dish with its supplier and ratings attached. Detail
// reads are not gated on supplier visibility.
func (repo *dishRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Dish, error) {
	var dishM model.DishModel

	if err := repo.db.WithContext(ctx).
		Preload("Supplier").
		Preload("Ratings", func(db *gorm.DB) *gorm.DB {
			return db.Order("ratings.created_at DESC")
		}).
		Preload("Ratings.Customer").
		Where("id = ?", id).
		First(&dishM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDishNotFound
		}

		return nil, errors.Wrap(err, "failed to find dish by ID")
	}

	return toDishDomain(&dishM), nil
}

// FindPublic retrieves all dishes visible in the public catalog, newest first.
func (repo *dishRepository) FindPublic(ctx context.Context, category string) ([]*entity.Dish, error) {
	query := repo.db.WithContext(ctx).
		Preload("Supplier").
		Preload("Ratings.Customer").
		Joins("JOIN suppliers ON suppliers.id = dishes.supplier_id").
		Where(publicDishCondition)

	if category != "" {
		query = query.Where("dishes.category = ?", category)
	}

	var dishModels []*model.DishModel
	if err := query.Order("dishes.created_at DESC").Find(&dishModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find public dishes")
	}

	return toDishDomains(dishModels), nil
}

// FindBySupplier retrieves every dish owned by the given supplier, regardless
// of availability or subscription state.
func (repo *dishRepository) FindBySupplier(ctx context.Context, supplierID uuid.UUID) ([]*entity.Dish, error) {
	var dishModels []*model.DishModel

	if err := repo.db.WithContext(ctx).
		Preload("Supplier").
		Preload("Ratings.Customer").
		Where("supplier_id = ?", supplierID).
		Order("created_at DESC").
		Find(&dishModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find dishes by supplier")
	}

	return toDishDomains(dishModels), nil
}

// DistinctCategories returns the distinct categories of publicly visible
// dishes, alphabetically ordered.
func (repo *dishRepository) DistinctCategories(ctx context.Context) ([]string, error) {
	var categories []string

	if err := repo.db.WithContext(ctx).
		Model(&model.DishModel{}).
		Joins("JOIN suppliers ON suppliers.id = dishes.supplier_id").
		Where(publicDishCondition).
		Distinct("dishes.category").
		Order("dishes.category ASC").
		Pluck("dishes.category", &categories).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find distinct categories")
	}

	return categories, nil
}

// Update persists the dish's mutable columns. The update always writes every
// mutable column so present-but-falsy values like available=false stick.
func (repo *dishRepository) Update(ctx context.Context, dish *entity.Dish) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DishModel{}).
		Where("id = ?", dish.ID).
		Updates(map[string]interface{}{
			"name":        dish.Name,
			"description": dish.Description,
			"price":       dish.Price,
			"image":       dish.Image,
			"category":    dish.Category,
			"available":   dish.Available,
			"updated_at":  dish.UpdatedAt,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update dish")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDishNotFound
	}

	return nil
}

// Delete removes a dish by ID. Callers remove the dish's ratings first.
func (repo *dishRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.DishModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete dish")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDishNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toDishDomain converts a GORM DishModel to a domain Dish entity.
func toDishDomain(data *model.DishModel) *entity.Dish {
	if data == nil {
		return nil
	}

	dish := &entity.Dish{
		ID:          data.ID,
		SupplierID:  data.SupplierID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Image:       data.Image,
		Category:    data.Category,
		Available:   data.Available,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
		Supplier:    toSupplierDomain(data.Supplier),
	}

	dish.Ratings = make([]*entity.Rating, 0, len(data.Ratings))
	for i := range data.Ratings {
		dish.Ratings = append(dish.Ratings, toRatingDomain(&data.Ratings[i]))
	}

	return dish
}

func toDishDomains(models []*model.DishModel) []*entity.Dish {
	dishes := make([]*entity.Dish, 0, len(models))
	for _, dishM := range models {
		dishes = append(dishes, toDishDomain(dishM))
	}

	return dishes
}

// fromDishDomain converts a domain Dish entity to a GORM DishModel.
func fromDishDomain(data *entity.Dish) *model.DishModel {
	if data == nil {
		return nil
	}

	return &model.DishModel{
		ID:          data.ID,
		SupplierID:  data.SupplierID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Image:       data.Image,
		Category:    data.Category,
		Available:   data.Available,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
