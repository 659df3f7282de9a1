package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"levefit/internal/domain/entity"
	domainerrors "levefit/internal/domain/errors"
	"levefit/internal/domain/repository"
	mockRepo "levefit/internal/mocks/repository"
	mockSvc "levefit/internal/mocks/service"
	"levefit/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type catalogServiceFixture struct {
	service       usecase.CatalogUsecase
	txManager     *mockRepo.MockTransactionManager
	dishRepo      *mockRepo.MockDishRepository
	supplierRepo  *mockRepo.MockSupplierRepository
	qrcodeService *mockSvc.MockQRCodeService
}

func createTestCatalogService(t *testing.T) *catalogServiceFixture {
	txManager := mockRepo.NewMockTransactionManager(t)
	dishRepo := mockRepo.NewMockDishRepository(t)
	supplierRepo := mockRepo.NewMockSupplierRepository(t)
	qrcodeService := mockSvc.NewMockQRCodeService(t)

	service := NewCatalogService(CatalogServiceParams{
		TxManager:     txManager,
		DishRepo:      dishRepo,
		SupplierRepo:  supplierRepo,
		QRCodeService: qrcodeService,
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return &catalogServiceFixture{
		service:       service,
		txManager:     txManager,
		dishRepo:      dishRepo,
		supplierRepo:  supplierRepo,
		qrcodeService: qrcodeService,
	}
}

func activeSupplier() *entity.Supplier {
	return &entity.Supplier{
		ID:                 uuid.New(),
		Name:               "Marmitas da Ana",
		Email:              "ana@example.com",
		WhatsApp:           "5511999990000",
		Active:             true,
		SubscriptionActive: true,
	}
}

func TestCatalogService_CreateDish_Success(t *testing.T) {
	f := createTestCatalogService(t)

	ctx := context.Background()
	supplier := activeSupplier()
	input := &usecase.CreateDishInput{
		Name:        "Salada Caesar",
		Description: "Frango grelhado com molho caesar",
		Price:       29.90,
		Category:    "Saladas",
	}

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSupplierRepo := mockRepo.NewMockSupplierRepository(t)
			mockDishRepo := mockRepo.NewMockDishRepository(t)

			mockFactory.EXPECT().SupplierRepo().Return(mockSupplierRepo)
			mockFactory.EXPECT().DishRepo().Return(mockDishRepo)

			mockSupplierRepo.EXPECT().
				FindByID(ctx, supplier.ID).
				Return(supplier, nil)

			mockDishRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Dish")).
				Return(nil)

			return fn(mockFactory)
		})

	output, err := f.service.CreateDish(ctx, supplier.ID, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, input.Name, output.Name)
	assert.Equal(t, supplier.ID, output.SupplierID)
	assert.True(t, output.Available, "dishes default to available when the flag is omitted")
	require.NotNil(t, output.Supplier)
	assert.Equal(t, supplier.WhatsApp, output.Supplier.WhatsApp)
}

func TestCatalogService_CreateDish_SubscriptionInactive(t *testing.T) {
	f := createTestCatalogService(t)

	ctx := context.Background()
	supplier := activeSupplier()
	supplier.SubscriptionActive = false

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSupplierRepo := mockRepo.NewMockSupplierRepository(t)

			mockFactory.EXPECT().SupplierRepo().Return(mockSupplierRepo)

			mockSupplierRepo.EXPECT().
				FindByID(ctx, supplier.ID).
				Return(supplier, nil)

			return fn(mockFactory)
		})

	output, err := f.service.CreateDish(ctx, supplier.ID, &usecase.CreateDishInput{
		Name:        "Salada Caesar",
		Description: "Frango grelhado",
		Price:       29.90,
		Category:    "Saladas",
	})

	require.ErrorIs(t, err, domainerrors.ErrSubscriptionInactive)
	assert.Nil(t, output)
}

func TestCatalogService_CreateDish_SupplierNotFound(t *testing.T) {
	f := createTestCatalogService(t)

	ctx := context.Background()
	supplierID := uuid.New()

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSupplierRepo := mockRepo.NewMockSupplierRepository(t)

			mockFactory.EXPECT().SupplierRepo().Return(mockSupplierRepo)

			mockSupplierRepo.EXPECT().
				FindByID(ctx, supplierID).
				Return(nil, repository.ErrSupplierNotFound)

			return fn(mockFactory)
		})

	output, err := f.service.CreateDish(ctx, supplierID, &usecase.CreateDishInput{
		Name:        "Salada Caesar",
		Description: "Frango grelhado",
		Price:       29.90,
		Category:    "Saladas",
	})

	require.ErrorIs(t, err, domainerrors.ErrSupplierNotFound)
	assert.Nil(t, output)
}

func TestCatalogService_ListPublicDishes_PassesCategory(t *testing.T) {
	f := createTestCatalogService(t)

	ctx := context.Background()
	supplier := activeSupplier()
	dishes := []*entity.Dish{
		{ID: uuid.New(), SupplierID: supplier.ID, Name: "Bowl de quinoa", Category: "Saladas", Available: true, Supplier: supplier},
	}

	f.dishRepo.EXPECT().
		FindPublic(ctx, "Saladas").
		Return(dishes, nil)

	output, err := f.service.ListPublicDishes(ctx, "Saladas")

	require.NoError(t, err)
	require.Len(t, output, 1)
	assert.Equal(t, "Bowl de quinoa", output[0].Name)
}

func TestCatalogService_GetDish_IgnoresSupplierGating(t *testing.T) {
	f := createTestCatalogService(t)

	ctx := context.Background()
	supplier := activeSupplier()
	supplier.SubscriptionActive = false

	dish := &entity.Dish{
		ID:         uuid.New(),
		SupplierID: supplier.ID,
		Name:       "Wrap integral",
		Available:  true,
		Supplier:   supplier,
	}

	f.dishRepo.EXPECT().
		FindByID(ctx, dish.ID).
		Return(dish, nil)

	output, err := f.service.GetDish(ctx, dish.ID)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, dish.ID, output.ID, "shared dish links keep working after the supplier's subscription lapses")
}

func TestCatalogService_GetDish_NotFound(t *testing.T) {
	f := createTestCatalogService(t)

	ctx := context.Background()
	dishID := uuid.New()

	f.dishRepo.EXPECT().
		FindByID(ctx, dishID).
		Return(nil, repository.ErrDishNotFound)

	output, err := f.service.GetDish(ctx, dishID)

	require.ErrorIs(t, err, domainerrors.ErrDishNotFound)
	assert.Nil(t, output)
}

func TestCatalogService_GetDish_ComputesRatingAggregates(t *testing.T) {
	f := createTestCatalogService(t)

	ctx := context.Background()
	dish := &entity.Dish{
		ID:        uuid.New(),
		Name:      "Escondidinho fit",
		Available: true,
		Ratings: []*entity.Rating{
			{ID: uuid.New(), Score: 5},
			{ID: uuid.New(), Score: 4},
		},
	}

	f.dishRepo.EXPECT().
		FindByID(ctx, dish.ID).
		Return(dish, nil)

	output, err := f.service.GetDish(ctx, dish.ID)

	require.NoError(t, err)
	assert.Equal(t, 2, output.RatingCount)
	assert.InDelta(t, 4.5, output.AverageRating, 0.001)
}

func TestCatalogService_UpdateDish_AppliesFalsyFields(t *testing.T) {
	f := createTestCatalogService(t)

	ctx := context.Background()
	supplierID := uuid.New()
	dish := &entity.Dish{
		ID:          uuid.New(),
		SupplierID:  supplierID,
		Name:        "Panqueca de aveia",
		Description: "Com recheio de frango",
		Price:       24.50,
		Available:   true,
	}

	available := false
	description := ""
	input := &usecase.UpdateDishInput{
		Available:   &available,
		Description: &description,
	}

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockDishRepo := mockRepo.NewMockDishRepository(t)

			mockFactory.EXPECT().DishRepo().Return(mockDishRepo)

			mockDishRepo.EXPECT().
				FindByID(ctx, dish.ID).
				Return(dish, nil)

			mockDishRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.Dish")).
				Return(nil)

			return fn(mockFactory)
		})

	output, err := f.service.UpdateDish(ctx, supplierID, dish.ID, input)

	require.NoError(t, err)
	assert.False(t, output.Available, "an explicit false must not be treated as absent")
	assert.Empty(t, output.Description, "an explicit empty string must not be treated as absent")
	assert.Equal(t, "Panqueca de aveia", output.Name, "fields missing from the payload stay unchanged")
	assert.InDelta(t, 24.50, output.Price, 0.001)
}

func TestCatalogService_UpdateDish_NilInputIsNoOp(t *testing.T) {
	f := createTestCatalogService(t)

	ctx := context.Background()
	supplierID := uuid.New()
	dish := &entity.Dish{
		ID:          uuid.New(),
		SupplierID:  supplierID,
		Name:        "Panqueca de aveia",
		Description: "Com recheio de frango",
		Price:       24.50,
		Available:   true,
	}

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockDishRepo := mockRepo.NewMockDishRepository(t)

			mockFactory.EXPECT().DishRepo().Return(mockDishRepo)

			mockDishRepo.EXPECT().
				FindByID(ctx, dish.ID).
				Return(dish, nil)

			mockDishRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.Dish")).
				Return(nil)

			return fn(mockFactory)
		})

	var output *usecase.DishOutput
	var err error
	require.NotPanics(t, func() {
		output, err = f.service.UpdateDish(ctx, supplierID, dish.ID, nil)
	}, "a PUT without a body binds to a nil input and must not crash the request")

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "Panqueca de aveia", output.Name)
	assert.InDelta(t, 24.50, output.Price, 0.001)
	assert.True(t, output.Available, "every field stays unchanged when none is present")
}

func TestCatalogService_UpdateDish_NotOwner(t *testing.T) {
	f := createTestCatalogService(t)

	ctx := context.Background()
	dish := &entity.Dish{
		ID:         uuid.New(),
		SupplierID: uuid.New(),
		Name:       "Panqueca de aveia",
	}
	otherSupplierID := uuid.New()

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockDishRepo := mockRepo.NewMockDishRepository(t)

			mockFactory.EXPECT().DishRepo().Return(mockDishRepo)

			mockDishRepo.EXPECT().
				FindByID(ctx, dish.ID).
				Return(dish, nil)

			return fn(mockFactory)
		})

	name := "Novo nome"
	output, err := f.service.UpdateDish(ctx, otherSupplierID, dish.ID, &usecase.UpdateDishInput{Name: &name})

	require.ErrorIs(t, err, domainerrors.ErrDishEditForbidden)
	assert.Nil(t, output)
}

func TestCatalogService_DeleteDish_Success(t *testing.T) {
	f := createTestCatalogService(t)

	ctx := context.Background()
	supplierID := uuid.New()
	dish := &entity.Dish{
		ID:         uuid.New(),
		SupplierID: supplierID,
		Name:       "Strogonoff light",
	}

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockDishRepo := mockRepo.NewMockDishRepository(t)
			mockRatingRepo := mockRepo.NewMockRatingRepository(t)

			mockFactory.EXPECT().DishRepo().Return(mockDishRepo)
			mockFactory.EXPECT().RatingRepo().Return(mockRatingRepo)

			mockDishRepo.EXPECT().
				FindByID(ctx, dish.ID).
				Return(dish, nil)

			mockRatingRepo.EXPECT().
				DeleteByDish(ctx, dish.ID).
				Return(nil)

			mockDishRepo.EXPECT().
				Delete(ctx, dish.ID).
				Return(nil)

			return fn(mockFactory)
		})

	err := f.service.DeleteDish(ctx, supplierID, dish.ID)

	require.NoError(t, err)
}

func TestCatalogService_DeleteDish_NotOwner(t *testing.T) {
	f := createTestCatalogService(t)

	ctx := context.Background()
	dish := &entity.Dish{
		ID:         uuid.New(),
		SupplierID: uuid.New(),
	}

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockDishRepo := mockRepo.NewMockDishRepository(t)

			mockFactory.EXPECT().DishRepo().Return(mockDishRepo)

			mockDishRepo.EXPECT().
				FindByID(ctx, dish.ID).
				Return(dish, nil)

			return fn(mockFactory)
		})

	err := f.service.DeleteDish(ctx, uuid.New(), dish.ID)

	require.ErrorIs(t, err, domainerrors.ErrDishDeleteForbidden)
}

func TestCatalogService_DishOrderQR_Success(t *testing.T) {
	f := createTestCatalogService(t)

	ctx := context.Background()
	supplier := activeSupplier()
	dish := &entity.Dish{
		ID:       uuid.New(),
		Name:     "Salada Caesar",
		Supplier: supplier,
	}
	png := []byte{0x89, 0x50, 0x4e, 0x47}

	f.dishRepo.EXPECT().
		FindByID(ctx, dish.ID).
		Return(dish, nil)

	f.qrcodeService.EXPECT().
		GenerateOrderQR(supplier.OrderLink(dish.Name)).
		Return(png, nil)

	output, err := f.service.DishOrderQR(ctx, dish.ID)

	require.NoError(t, err)
	assert.Equal(t, png, output)
}

func TestCatalogService_DishOrderQR_MissingSupplier(t *testing.T) {
	f := createTestCatalogService(t)

	ctx := context.Background()
	dish := &entity.Dish{
		ID:   uuid.New(),
		Name: "Salada Caesar",
	}

	f.dishRepo.EXPECT().
		FindByID(ctx, dish.ID).
		Return(dish, nil)

	output, err := f.service.DishOrderQR(ctx, dish.ID)

	require.ErrorIs(t, err, domainerrors.ErrSupplierNotFound)
	assert.Nil(t, output)
}
