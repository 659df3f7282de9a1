// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "levefit/internal/delivery/context"
	"levefit/internal/domain/entity"
	domainerrors "levefit/internal/domain/errors"
	"levefit/internal/domain/repository"
	"levefit/internal/domain/service"
	"levefit/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	txManager     repository.TransactionManager
	dishRepo      repository.DishRepository
	supplierRepo  repository.SupplierRepository
	qrcodeService service.QRCodeService
	logger        *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	DishRepo      repository.DishRepository
	SupplierRepo  repository.SupplierRepository
	QRCodeService service.QRCodeService
	Logger        *slog.Logger
}

// NewCatalogService is the constructor for catalogService. It receives all dependencies as interfaces.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		txManager:     params.TxManager,
		dishRepo:      params.DishRepo,
		supplierRepo:  params.SupplierRepo,
		qrcodeService: params.QRCodeService,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateDish registers a new dish for a supplier with an active subscription.
// The subscription check and the insert share one transaction so a concurrent
// deactivation cannot slip between them.
func (srv *catalogService) CreateDish(ctx context.Context, supplierID uuid.UUID, input *usecase.CreateDishInput) (*usecase.DishOutput, error) {
	available := true
	if input.Available != nil {
		available = *input.Available
	}

	dish := &entity.Dish{
		ID:          uuid.New(),
		SupplierID:  supplierID,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Image:       input.Image,
		Category:    input.Category,
		Available:   available,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		supplier, err := repoFactory.SupplierRepo().FindByID(ctx, supplierID)
		if err != nil {
			if errors.Is(err, repository.ErrSupplierNotFound) {
				return domainerrors.ErrSupplierNotFound
			}

			return errors.Wrap(err, "failed to find supplier")
		}

		if !supplier.SubscriptionActive {
			return domainerrors.ErrSubscriptionInactive
		}
		dish.Supplier = supplier

		if err := repoFactory.DishRepo().Create(ctx, dish); err != nil {
			return errors.Wrap(err, "failed to create dish")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create dish", slog.Any("supplierID", supplierID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Dish created", slog.Any("dishID", dish.ID), slog.Any("supplierID", supplierID))

	return toDishOutput(dish), nil
}

// ListPublicDishes returns the public catalog, optionally narrowed to one category.
func (srv *catalogService) ListPublicDishes(ctx context.Context, category string) ([]*usecase.DishOutput, error) {
	dishes, err := srv.dishRepo.FindPublic(ctx, category)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find public dishes")
	}

	return toDishOutputs(dishes), nil
}

// ListSupplierDishes returns every dish of the calling supplier.
func (srv *catalogService) ListSupplierDishes(ctx context.Context, supplierID uuid.UUID) ([]*usecase.DishOutput, error) {
	dishes, err := srv.dishRepo.FindBySupplier(ctx, supplierID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find dishes by supplier")
	}

	return toDishOutputs(dishes), nil
}

// ListCategories returns the distinct categories of publicly visible dishes.
func (srv *catalogService) ListCategories(ctx context.Context) ([]string, error) {
	categories, err := srv.dishRepo.DistinctCategories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find distinct categories")
	}

	return categories, nil
}

// GetDish returns one dish with supplier and ratings attached. Detail reads
// do not filter on supplier visibility, so shared links keep working.
func (srv *catalogService) GetDish(ctx context.Context, id uuid.UUID) (*usecase.DishOutput, error) {
	dish, err := srv.dishRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDishNotFound) {
			return nil, domainerrors.ErrDishNotFound
		}

		return nil, errors.Wrap(err, "failed to find dish")
	}

	return toDishOutput(dish), nil
}

// UpdateDish applies the fields present in the payload to a dish owned by the
// calling supplier. Ownership check and write run in one transaction.
func (srv *catalogService) UpdateDish(ctx context.Context, supplierID, dishID uuid.UUID, input *usecase.UpdateDishInput) (*usecase.DishOutput, error) {
	var updated *entity.Dish
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		dishRepo := repoFactory.DishRepo()

		dish, err := dishRepo.FindByID(ctx, dishID)
		if err != nil {
			if errors.Is(err, repository.ErrDishNotFound) {
				return domainerrors.ErrDishNotFound
			}

			return errors.Wrap(err, "failed to find dish")
		}

		if dish.SupplierID != supplierID {
			return domainerrors.ErrDishEditForbidden
		}

		applyDishUpdate(dish, input)
		dish.UpdatedAt = time.Now()

		if err := dishRepo.Update(ctx, dish); err != nil {
			return errors.Wrap(err, "failed to update dish")
		}
		updated = dish

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to update dish", slog.Any("dishID", dishID), slog.Any("error", err))

		return nil, err
	}

	return toDishOutput(updated), nil
}

// DeleteDish removes a dish owned by the calling supplier. Ratings are removed
// first inside the same transaction; there is no ON DELETE CASCADE.
func (srv *catalogService) DeleteDish(ctx context.Context, supplierID, dishID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		dish, err := repoFactory.DishRepo().FindByID(ctx, dishID)
		if err != nil {
			if errors.Is(err, repository.ErrDishNotFound) {
				return domainerrors.ErrDishNotFound
			}

			return errors.Wrap(err, "failed to find dish")
		}

		if dish.SupplierID != supplierID {
			return domainerrors.ErrDishDeleteForbidden
		}

		if err := repoFactory.RatingRepo().DeleteByDish(ctx, dishID); err != nil {
			return errors.Wrap(err, "failed to delete dish ratings")
		}

		if err := repoFactory.DishRepo().Delete(ctx, dishID); err != nil {
			return errors.Wrap(err, "failed to delete dish")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to delete dish", slog.Any("dishID", dishID), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Debug("Dish deleted", slog.Any("dishID", dishID))

	return nil
}

// DishOrderQR renders the dish's WhatsApp order deep link as a PNG QR code.
func (srv *catalogService) DishOrderQR(ctx context.Context, dishID uuid.UUID) ([]byte, error) {
	dish, err := srv.dishRepo.FindByID(ctx, dishID)
	if err != nil {
		if errors.Is(err, repository.ErrDishNotFound) {
			return nil, domainerrors.ErrDishNotFound
		}

		return nil, errors.Wrap(err, "failed to find dish")
	}

	if dish.Supplier == nil {
		return nil, domainerrors.ErrSupplierNotFound
	}

	qrCode, err := srv.qrcodeService.GenerateOrderQR(dish.Supplier.OrderLink(dish.Name))
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate order QR")
	}

	return qrCode, nil
}

func applyDishUpdate(dish *entity.Dish, input *usecase.UpdateDishInput) {
	// A nil payload is an update with no fields present.
	if input == nil {
		return
	}
	if input.Name != nil {
		dish.Name = *input.Name
	}
	if input.Description != nil {
		dish.Description = *input.Description
	}
	if input.Price != nil {
		dish.Price = *input.Price
	}
	if input.Image != nil {
		dish.Image = *input.Image
	}
	if input.Category != nil {
		dish.Category = *input.Category
	}
	if input.Available != nil {
		dish.Available = *input.Available
	}
}

func toDishOutput(dish *entity.Dish) *usecase.DishOutput {
	out := &usecase.DishOutput{
		ID:            dish.ID,
		Name:          dish.Name,
		Description:   dish.Description,
		Price:         dish.Price,
		Image:         dish.Image,
		Category:      dish.Category,
		Available:     dish.Available,
		SupplierID:    dish.SupplierID,
		Ratings:       make([]*usecase.RatingOutput, 0, len(dish.Ratings)),
		AverageRating: dish.AverageRating(),
		RatingCount:   dish.RatingCount(),
		CreatedAt:     dish.CreatedAt,
		UpdatedAt:     dish.UpdatedAt,
	}

	if dish.Supplier != nil {
		out.Supplier = &usecase.SupplierSummary{
			ID:       dish.Supplier.ID,
			Name:     dish.Supplier.Name,
			WhatsApp: dish.Supplier.WhatsApp,
			Logo:     dish.Supplier.Logo,
		}
	}

	for _, rating := range dish.Ratings {
		out.Ratings = append(out.Ratings, toRatingOutput(rating))
	}

	return out
}

func toDishOutputs(dishes []*entity.Dish) []*usecase.DishOutput {
	outputs := make([]*usecase.DishOutput, 0, len(dishes))
	for _, dish := range dishes {
		outputs = append(outputs, toDishOutput(dish))
	}

	return outputs
}

func toRatingOutput(rating *entity.Rating) *usecase.RatingOutput {
	out := &usecase.RatingOutput{
		ID:        rating.ID,
		Score:     rating.Score,
		Comment:   rating.Comment,
		CreatedAt: rating.CreatedAt,
	}

	if rating.Customer != nil {
		out.Customer = &usecase.CustomerSummary{
			ID:   rating.Customer.ID,
			Name: rating.Customer.Name,
		}
	}

	return out
}
