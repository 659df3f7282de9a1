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

// supplierRepository implements the repository.SupplierRepository interface.
type supplierRepository struct {
	db *gorm.DB
}

// NewSupplierRepository is the constructor for supplierRepository.
func NewSupplierRepository(db *gorm.DB) repository.SupplierRepository {
	return &supplierRepository{
		db: db,
	}
}

// Create persists a new supplier.
func (repo *supplierRepository) Create(ctx context.Context, supplier *entity.Supplier) error {
	supplierM := fromSupplierDomain(supplier)

	if err := repo.db.WithContext(ctx).Create(supplierM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateEmail
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required supplier information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create supplier")
	}

	supplier.ID = supplierM.ID
	supplier.CreatedAt = supplierM.CreatedAt
	supplier.UpdatedAt = supplierM.UpdatedAt

	return nil
}

// FindByID retrieves a supplier by its unique ID.
func (repo *supplierRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Supplier, error) {
	var supplierM model.SupplierModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&supplierM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSupplierNotFound
		}

		return nil, errors.Wrap(err, "failed to find supplier by ID")
	}

	return toSupplierDomain(&supplierM), nil
}

// FindByEmail retrieves a supplier by its login email.
func (repo *supplierRepository) FindByEmail(ctx context.Context, email string) (*entity.Supplier, error) {
	var supplierM model.SupplierModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&supplierM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSupplierNotFound
		}

		return nil, errors.Wrap(err, "failed to find supplier by email")
	}

	return toSupplierDomain(&supplierM), nil
}

// FindActive retrieves all suppliers with status active for the public directory.
func (repo *supplierRepository) FindActive(ctx context.Context) ([]*entity.Supplier, error) {
	var supplierModels []*model.SupplierModel

	if err := repo.db.WithContext(ctx).
		Where("active = ?", true).
		Order("name ASC").
		Find(&supplierModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active suppliers")
	}

	suppliers := make([]*entity.Supplier, 0, len(supplierModels))
	for _, supplierM := range supplierModels {
		suppliers = append(suppliers, toSupplierDomain(supplierM))
	}

	return suppliers, nil
}

// SetSubscriptionActive flips the billing-controlled subscription flag.
func (repo *supplierRepository) SetSubscriptionActive(ctx context.Context, id uuid.UUID, active bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SupplierModel{}).
		Where("id = ?", id).
		Update("subscription_active", active)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update subscription flag")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSupplierNotFound
	}

	return nil
}

// Update persists the supplier's profile columns.
func (repo *supplierRepository) Update(ctx context.Context, supplier *entity.Supplier) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SupplierModel{}).
		Where("id = ?", supplier.ID).
		Updates(map[string]interface{}{
			"name":          supplier.Name,
			"password_hash": supplier.PasswordHash,
			"whatsapp":      supplier.WhatsApp,
			"logo":          supplier.Logo,
			"description":   supplier.Description,
			"updated_at":    supplier.UpdatedAt,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update supplier")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSupplierNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toSupplierDomain converts a GORM SupplierModel to a domain Supplier entity.
func toSupplierDomain(data *model.SupplierModel) *entity.Supplier {
	if data == nil {
		return nil
	}

	return &entity.Supplier{
		ID:                 data.ID,
		Name:               data.Name,
		Email:              data.Email,
		PasswordHash:       data.PasswordHash,
		WhatsApp:           data.WhatsApp,
		Logo:               data.Logo,
		Description:        data.Description,
		Active:             data.Active,
		SubscriptionActive: data.SubscriptionActive,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

// fromSupplierDomain converts a domain Supplier entity to a GORM SupplierModel.
func fromSupplierDomain(data *entity.Supplier) *model.SupplierModel {
	if data == nil {
		return nil
	}

	return &model.SupplierModel{
		ID:                 data.ID,
		Name:               data.Name,
		Email:              data.Email,
		PasswordHash:       data.PasswordHash,
		WhatsApp:           data.WhatsApp,
		Logo:               data.Logo,
		Description:        data.Description,
		Active:             data.Active,
		SubscriptionActive: data.SubscriptionActive,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}
