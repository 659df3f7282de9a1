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

// accountService implements the AccountUsecase interface.
type accountService struct {
	supplierRepo repository.SupplierRepository
	customerRepo repository.CustomerRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	SupplierRepo repository.SupplierRepository
	CustomerRepo repository.CustomerRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		supplierRepo: params.SupplierRepo,
		customerRepo: params.CustomerRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterSupplier creates a supplier account. New suppliers start active but
// with an inactive subscription, so they appear nowhere until they subscribe.
func (srv *accountService) RegisterSupplier(ctx context.Context, input *usecase.RegisterSupplierInput) (*usecase.SupplierOutput, error) {
	srv.log(ctx).Info("Starting supplier registration", slog.String("email", input.Email))

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	supplier := &entity.Supplier{
		ID:                 uuid.New(),
		Name:               input.Name,
		Email:              input.Email,
		PasswordHash:       hash,
		WhatsApp:           input.WhatsApp,
		Logo:               input.Logo,
		Description:        input.Description,
		Active:             true,
		SubscriptionActive: false,
		CreatedAt:          time.Now(),
		UpdatedAt:          time.Now(),
	}

	if err := srv.supplierRepo.Create(ctx, supplier); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, domainerrors.ErrEmailTaken
		}

		srv.log(ctx).Error("Failed to create supplier", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create supplier")
	}

	srv.log(ctx).Debug("Supplier registered", slog.Any("supplierID", supplier.ID))

	return toSupplierOutput(supplier), nil
}

// RegisterCustomer creates a customer account.
func (srv *accountService) RegisterCustomer(ctx context.Context, input *usecase.RegisterCustomerInput) (*usecase.CustomerOutput, error) {
	srv.log(ctx).Info("Starting customer registration", slog.String("email", input.Email))

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	customer := &entity.Customer{
		ID:           uuid.New(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		Address:      input.Address,
		Phone:        input.Phone,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := srv.customerRepo.Create(ctx, customer); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, domainerrors.ErrEmailTaken
		}

		srv.log(ctx).Error("Failed to create customer", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create customer")
	}

	srv.log(ctx).Debug("Customer registered", slog.Any("customerID", customer.ID))

	return toCustomerOutput(customer), nil
}

// Login authenticates a principal of the given role and issues an access
// token. Unknown email and wrong password return the same error, so the
// response does not reveal whether the account exists.
func (srv *accountService) Login(ctx context.Context, role entity.Role, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	switch role {
	case entity.RoleSupplier:
		return srv.loginSupplier(ctx, input)
	case entity.RoleCustomer:
		return srv.loginCustomer(ctx, input)
	default:
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown login role")
	}
}

func (srv *accountService) loginSupplier(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	supplier, err := srv.supplierRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrSupplierNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find supplier by email")
	}

	if !srv.hasher.Check(input.Password, supplier.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.GenerateToken(supplier.ID, entity.RoleSupplier)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate token")
	}

	srv.log(ctx).Debug("Supplier logged in", slog.Any("supplierID", supplier.ID))

	return &usecase.LoginOutput{Token: token, Supplier: toSupplierOutput(supplier)}, nil
}

func (srv *accountService) loginCustomer(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	customer, err := srv.customerRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find customer by email")
	}

	if !srv.hasher.Check(input.Password, customer.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.GenerateToken(customer.ID, entity.RoleCustomer)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate token")
	}

	srv.log(ctx).Debug("Customer logged in", slog.Any("customerID", customer.ID))

	return &usecase.LoginOutput{Token: token, Customer: toCustomerOutput(customer)}, nil
}

// GetSupplier returns one supplier's public profile.
func (srv *accountService) GetSupplier(ctx context.Context, id uuid.UUID) (*usecase.SupplierOutput, error) {
	supplier, err := srv.supplierRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSupplierNotFound) {
			return nil, domainerrors.ErrSupplierNotFound
		}

		return nil, errors.Wrap(err, "failed to find supplier")
	}

	return toSupplierOutput(supplier), nil
}

// ListSuppliers returns the public directory of active suppliers.
func (srv *accountService) ListSuppliers(ctx context.Context) ([]*usecase.SupplierOutput, error) {
	suppliers, err := srv.supplierRepo.FindActive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active suppliers")
	}

	outputs := make([]*usecase.SupplierOutput, 0, len(suppliers))
	for _, supplier := range suppliers {
		outputs = append(outputs, toSupplierOutput(supplier))
	}

	return outputs, nil
}

// ActivateSubscription turns on the subscription flag of the caller's own
// account. A supplier cannot activate anyone else's subscription.
func (srv *accountService) ActivateSubscription(ctx context.Context, callerID, supplierID uuid.UUID) (*usecase.SupplierOutput, error) {
	if callerID != supplierID {
		return nil, domainerrors.ErrForbidden
	}

	supplier, err := srv.supplierRepo.FindByID(ctx, supplierID)
	if err != nil {
		if errors.Is(err, repository.ErrSupplierNotFound) {
			return nil, domainerrors.ErrSupplierNotFound
		}

		return nil, errors.Wrap(err, "failed to find supplier")
	}

	if err := srv.supplierRepo.SetSubscriptionActive(ctx, supplierID, true); err != nil {
		srv.log(ctx).Error("Failed to activate subscription", slog.Any("supplierID", supplierID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to activate subscription")
	}

	supplier.SubscriptionActive = true

	srv.log(ctx).Info("Subscription activated", slog.Any("supplierID", supplierID))

	return toSupplierOutput(supplier), nil
}

// GetCustomerProfile returns the calling customer's own profile.
func (srv *accountService) GetCustomerProfile(ctx context.Context, customerID uuid.UUID) (*usecase.CustomerOutput, error) {
	customer, err := srv.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, domainerrors.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer")
	}

	return toCustomerOutput(customer), nil
}

// UpdateSupplierProfile applies the fields present in the payload to the
// caller's own account. A present senha is re-hashed before storage.
func (srv *accountService) UpdateSupplierProfile(ctx context.Context, supplierID uuid.UUID, input *usecase.UpdateSupplierProfileInput) (*usecase.SupplierOutput, error) {
	supplier, err := srv.supplierRepo.FindByID(ctx, supplierID)
	if err != nil {
		if errors.Is(err, repository.ErrSupplierNotFound) {
			return nil, domainerrors.ErrSupplierNotFound
		}

		return nil, errors.Wrap(err, "failed to find supplier")
	}

	if input.Name != nil {
		supplier.Name = *input.Name
	}
	if input.WhatsApp != nil {
		supplier.WhatsApp = *input.WhatsApp
	}
	if input.Logo != nil {
		supplier.Logo = *input.Logo
	}
	if input.Description != nil {
		supplier.Description = *input.Description
	}
	if input.Password != nil && *input.Password != "" {
		hash, err := srv.hasher.Hash(*input.Password)
		if err != nil {
			return nil, errors.Wrap(err, "failed to hash password")
		}
		supplier.PasswordHash = hash
	}
	supplier.UpdatedAt = time.Now()

	if err := srv.supplierRepo.Update(ctx, supplier); err != nil {
		srv.log(ctx).Error("Failed to update supplier profile", slog.Any("supplierID", supplierID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update supplier profile")
	}

	srv.log(ctx).Debug("Supplier profile updated", slog.Any("supplierID", supplierID))

	return toSupplierOutput(supplier), nil
}

// UpdateCustomerProfile applies the fields present in the payload to the
// caller's own account. A present senha is re-hashed before storage.
func (srv *accountService) UpdateCustomerProfile(ctx context.Context, customerID uuid.UUID, input *usecase.UpdateCustomerProfileInput) (*usecase.CustomerOutput, error) {
	customer, err := srv.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, domainerrors.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer")
	}

	if input.Name != nil {
		customer.Name = *input.Name
	}
	if input.Address != nil {
		customer.Address = *input.Address
	}
	if input.Phone != nil {
		customer.Phone = *input.Phone
	}
	if input.Password != nil && *input.Password != "" {
		hash, err := srv.hasher.Hash(*input.Password)
		if err != nil {
			return nil, errors.Wrap(err, "failed to hash password")
		}
		customer.PasswordHash = hash
	}
	customer.UpdatedAt = time.Now()

	if err := srv.customerRepo.Update(ctx, customer); err != nil {
		srv.log(ctx).Error("Failed to update customer profile", slog.Any("customerID", customerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update customer profile")
	}

	srv.log(ctx).Debug("Customer profile updated", slog.Any("customerID", customerID))

	return toCustomerOutput(customer), nil
}

func toSupplierOutput(supplier *entity.Supplier) *usecase.SupplierOutput {
	return &usecase.SupplierOutput{
		ID:                 supplier.ID,
		Name:               supplier.Name,
		Email:              supplier.Email,
		WhatsApp:           supplier.WhatsApp,
		Logo:               supplier.Logo,
		Description:        supplier.Description,
		Active:             supplier.Active,
		SubscriptionActive: supplier.SubscriptionActive,
		CreatedAt:          supplier.CreatedAt,
	}
}

func toCustomerOutput(customer *entity.Customer) *usecase.CustomerOutput {
	return &usecase.CustomerOutput{
		ID:        customer.ID,
		Name:      customer.Name,
		Email:     customer.Email,
		Address:   customer.Address,
		Phone:     customer.Phone,
		CreatedAt: customer.CreatedAt,
	}
}
