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
	"levefit/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type ratingServiceFixture struct {
	service   usecase.RatingUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestRatingService(t *testing.T) *ratingServiceFixture {
	txManager := mockRepo.NewMockTransactionManager(t)

	service := NewRatingService(RatingServiceParams{
		TxManager: txManager,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return &ratingServiceFixture{
		service:   service,
		txManager: txManager,
	}
}

func TestRatingService_CreateRating_Success(t *testing.T) {
	f := createTestRatingService(t)

	ctx := context.Background()
	dish := &entity.Dish{ID: uuid.New(), Name: "Salada Caesar"}
	customer := &entity.Customer{ID: uuid.New(), Name: "João"}
	input := &usecase.CreateRatingInput{
		DishID:  dish.ID,
		Score:   5,
		Comment: "Muito bom!",
	}

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockDishRepo := mockRepo.NewMockDishRepository(t)
			mockCustomerRepo := mockRepo.NewMockCustomerRepository(t)
			mockRatingRepo := mockRepo.NewMockRatingRepository(t)

			mockFactory.EXPECT().DishRepo().Return(mockDishRepo)
			mockFactory.EXPECT().CustomerRepo().Return(mockCustomerRepo)
			mockFactory.EXPECT().RatingRepo().Return(mockRatingRepo)

			mockDishRepo.EXPECT().
				FindByID(ctx, dish.ID).
				Return(dish, nil)

			mockCustomerRepo.EXPECT().
				FindByID(ctx, customer.ID).
				Return(customer, nil)

			mockRatingRepo.EXPECT().
				FindByCustomerAndDish(ctx, customer.ID, dish.ID).
				Return(nil, repository.ErrRatingNotFound)

			mockRatingRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Rating")).
				Return(nil)

			return fn(mockFactory)
		})

	output, err := f.service.CreateRating(ctx, customer.ID, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, 5, output.Score)
	assert.Equal(t, "Muito bom!", output.Comment)
	require.NotNil(t, output.Customer)
	assert.Equal(t, customer.Name, output.Customer.Name)
}

func TestRatingService_CreateRating_InvalidScore(t *testing.T) {
	f := createTestRatingService(t)

	ctx := context.Background()
	customerID := uuid.New()

	for _, score := range []int{0, -1, 6} {
		output, err := f.service.CreateRating(ctx, customerID, &usecase.CreateRatingInput{
			DishID: uuid.New(),
			Score:  score,
		})

		require.ErrorIs(t, err, domainerrors.ErrInvalidScore)
		assert.Nil(t, output)
	}
}

func TestRatingService_CreateRating_DishNotFound(t *testing.T) {
	f := createTestRatingService(t)

	ctx := context.Background()
	customerID := uuid.New()
	dishID := uuid.New()

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockDishRepo := mockRepo.NewMockDishRepository(t)

			mockFactory.EXPECT().DishRepo().Return(mockDishRepo)

			mockDishRepo.EXPECT().
				FindByID(ctx, dishID).
				Return(nil, repository.ErrDishNotFound)

			return fn(mockFactory)
		})

	output, err := f.service.CreateRating(ctx, customerID, &usecase.CreateRatingInput{
		DishID: dishID,
		Score:  4,
	})

	require.ErrorIs(t, err, domainerrors.ErrDishNotFound)
	assert.Nil(t, output)
}

func TestRatingService_CreateRating_Duplicate(t *testing.T) {
	f := createTestRatingService(t)

	ctx := context.Background()
	dish := &entity.Dish{ID: uuid.New()}
	customer := &entity.Customer{ID: uuid.New(), Name: "João"}

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockDishRepo := mockRepo.NewMockDishRepository(t)
			mockCustomerRepo := mockRepo.NewMockCustomerRepository(t)
			mockRatingRepo := mockRepo.NewMockRatingRepository(t)

			mockFactory.EXPECT().DishRepo().Return(mockDishRepo)
			mockFactory.EXPECT().CustomerRepo().Return(mockCustomerRepo)
			mockFactory.EXPECT().RatingRepo().Return(mockRatingRepo)

			mockDishRepo.EXPECT().
				FindByID(ctx, dish.ID).
				Return(dish, nil)

			mockCustomerRepo.EXPECT().
				FindByID(ctx, customer.ID).
				Return(customer, nil)

			mockRatingRepo.EXPECT().
				FindByCustomerAndDish(ctx, customer.ID, dish.ID).
				Return(&entity.Rating{ID: uuid.New(), DishID: dish.ID, CustomerID: customer.ID, Score: 3}, nil)

			return fn(mockFactory)
		})

	output, err := f.service.CreateRating(ctx, customer.ID, &usecase.CreateRatingInput{
		DishID: dish.ID,
		Score:  4,
	})

	require.ErrorIs(t, err, domainerrors.ErrDuplicateRating)
	assert.Nil(t, output)
}

// A concurrent submission can slip past the pre-check and hit the unique
// index instead. The repository's sentinel still maps to the same error.
func TestRatingService_CreateRating_DuplicateOnInsert(t *testing.T) {
	f := createTestRatingService(t)

	ctx := context.Background()
	dish := &entity.Dish{ID: uuid.New()}
	customer := &entity.Customer{ID: uuid.New(), Name: "João"}

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockDishRepo := mockRepo.NewMockDishRepository(t)
			mockCustomerRepo := mockRepo.NewMockCustomerRepository(t)
			mockRatingRepo := mockRepo.NewMockRatingRepository(t)

			mockFactory.EXPECT().DishRepo().Return(mockDishRepo)
			mockFactory.EXPECT().CustomerRepo().Return(mockCustomerRepo)
			mockFactory.EXPECT().RatingRepo().Return(mockRatingRepo)

			mockDishRepo.EXPECT().
				FindByID(ctx, dish.ID).
				Return(dish, nil)

			mockCustomerRepo.EXPECT().
				FindByID(ctx, customer.ID).
				Return(customer, nil)

			mockRatingRepo.EXPECT().
				FindByCustomerAndDish(ctx, customer.ID, dish.ID).
				Return(nil, repository.ErrRatingNotFound)

			mockRatingRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Rating")).
				Return(repository.ErrDuplicateRating)

			return fn(mockFactory)
		})

	output, err := f.service.CreateRating(ctx, customer.ID, &usecase.CreateRatingInput{
		DishID: dish.ID,
		Score:  4,
	})

	require.ErrorIs(t, err, domainerrors.ErrDuplicateRating)
	assert.Nil(t, output)
}
