package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"levefit/internal/domain/entity"
	"levefit/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB connects to the database named by LEVEFIT_TEST_DSN and creates
// the catalog tables. The public-catalog gating lives in SQL, so it can only
// be exercised against a real Postgres.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("LEVEFIT_TEST_DSN")
	if dsn == "" {
		t.Skip("LEVEFIT_TEST_DSN not set, skipping Postgres integration test")
	}

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)

	ddl := []string{
		`DROP TABLE IF EXISTS ratings, dishes, customers, suppliers`,
		`CREATE TABLE suppliers (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) NOT NULL UNIQUE,
			password_hash VARCHAR(255) NOT NULL,
			whatsapp VARCHAR(32) NOT NULL,
			logo TEXT,
			description TEXT,
			active BOOLEAN NOT NULL DEFAULT TRUE,
			subscription_active BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ,
			updated_at TIMESTAMPTZ
		)`,
		`CREATE TABLE customers (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) NOT NULL UNIQUE,
			password_hash VARCHAR(255) NOT NULL,
			address TEXT,
			phone VARCHAR(32),
			created_at TIMESTAMPTZ,
			updated_at TIMESTAMPTZ
		)`,
		`CREATE TABLE dishes (
			id UUID PRIMARY KEY,
			supplier_id UUID NOT NULL REFERENCES suppliers(id),
			name VARCHAR(255) NOT NULL,
			description TEXT NOT NULL,
			price DECIMAL(10,2) NOT NULL,
			image TEXT,
			category VARCHAR(100) NOT NULL,
			available BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ,
			updated_at TIMESTAMPTZ
		)`,
		`CREATE TABLE ratings (
			id UUID PRIMARY KEY,
			dish_id UUID NOT NULL REFERENCES dishes(id),
			customer_id UUID NOT NULL REFERENCES customers(id),
			score INT NOT NULL CHECK (score >= 1 AND score <= 5),
			comment TEXT,
			created_at TIMESTAMPTZ,
			CONSTRAINT idx_ratings_customer_dish UNIQUE (dish_id, customer_id)
		)`,
	}
	for _, stmt := range ddl {
		require.NoError(t, db.Exec(stmt).Error)
	}

	t.Cleanup(func() {
		db.Exec(`DROP TABLE IF EXISTS ratings, dishes, customers, suppliers`)
	})

	return db
}

func seedSupplier(t *testing.T, ctx context.Context, repo repository.SupplierRepository, email string, active, subscribed bool) *entity.Supplier {
	t.Helper()

	supplier := &entity.Supplier{
		ID:                 uuid.New(),
		Name:               "Fornecedor " + email,
		Email:              email,
		PasswordHash:       "hash",
		WhatsApp:           "5511999990000",
		Active:             active,
		SubscriptionActive: subscribed,
		CreatedAt:          time.Now(),
		UpdatedAt:          time.Now(),
	}
	require.NoError(t, repo.Create(ctx, supplier))

	return supplier
}

func seedDish(t *testing.T, ctx context.Context, repo repository.DishRepository, supplierID uuid.UUID, name, category string, available bool) *entity.Dish {
	t.Helper()

	dish := &entity.Dish{
		ID:          uuid.New(),
		SupplierID:  supplierID,
		Name:        name,
		Description: "Descrição de " + name,
		Price:       29.90,
		Category:    category,
		Available:   available,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	require.NoError(t, repo.Create(ctx, dish))

	return dish
}

func TestDishRepository_PublicCatalogGating_Integration(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	supplierRepo := NewSupplierRepository(db)
	dishRepo := NewDishRepository(db)

	subscribed := seedSupplier(t, ctx, supplierRepo, "ana@example.com", true, true)
	unsubscribed := seedSupplier(t, ctx, supplierRepo, "bia@example.com", true, false)
	inactive := seedSupplier(t, ctx, supplierRepo, "carla@example.com", false, true)

	visible := seedDish(t, ctx, dishRepo, subscribed.ID, "Salada Caesar", "Saladas", true)
	seedDish(t, ctx, dishRepo, subscribed.ID, "Sopa de legumes", "Sopas", false)
	seedDish(t, ctx, dishRepo, unsubscribed.ID, "Lasanha fit", "Massas", true)
	seedDish(t, ctx, dishRepo, inactive.ID, "Bowl de quinoa", "Saladas", true)

	dishes, err := dishRepo.FindPublic(ctx, "")
	require.NoError(t, err)
	require.Len(t, dishes, 1, "only an available dish of an active, subscribed supplier is public")
	assert.Equal(t, visible.ID, dishes[0].ID)
	require.NotNil(t, dishes[0].Supplier)
	assert.Equal(t, subscribed.ID, dishes[0].Supplier.ID)

	saladas, err := dishRepo.FindPublic(ctx, "Saladas")
	require.NoError(t, err)
	require.Len(t, saladas, 1)
	assert.Equal(t, visible.ID, saladas[0].ID, "the inactive supplier's salad is filtered out")

	massas, err := dishRepo.FindPublic(ctx, "Massas")
	require.NoError(t, err)
	assert.Empty(t, massas, "an available dish of an unsubscribed supplier is not public")
}

func TestDishRepository_DistinctCategoriesGating_Integration(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	supplierRepo := NewSupplierRepository(db)
	dishRepo := NewDishRepository(db)

	subscribed := seedSupplier(t, ctx, supplierRepo, "ana@example.com", true, true)
	unsubscribed := seedSupplier(t, ctx, supplierRepo, "bia@example.com", true, false)

	seedDish(t, ctx, dishRepo, subscribed.ID, "Salada Caesar", "Saladas", true)
	seedDish(t, ctx, dishRepo, subscribed.ID, "Wrap integral", "Lanches", true)
	seedDish(t, ctx, dishRepo, subscribed.ID, "Sopa de legumes", "Sopas", false)
	seedDish(t, ctx, dishRepo, unsubscribed.ID, "Lasanha fit", "Massas", true)

	categories, err := dishRepo.DistinctCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Lanches", "Saladas"}, categories,
		"categories of unavailable or gated-out dishes never appear, and the rest come back alphabetically")
}

func TestDishRepository_FindBySupplierIgnoresGating_Integration(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	supplierRepo := NewSupplierRepository(db)
	dishRepo := NewDishRepository(db)

	unsubscribed := seedSupplier(t, ctx, supplierRepo, "bia@example.com", true, false)
	seedDish(t, ctx, dishRepo, unsubscribed.ID, "Lasanha fit", "Massas", true)
	seedDish(t, ctx, dishRepo, unsubscribed.ID, "Sopa de legumes", "Sopas", false)

	dishes, err := dishRepo.FindBySupplier(ctx, unsubscribed.ID)
	require.NoError(t, err)
	assert.Len(t, dishes, 2, "the owner's dashboard sees every dish regardless of visibility")
}
