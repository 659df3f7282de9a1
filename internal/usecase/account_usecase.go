package usecase

import (
	"context"
	"time"

	"levefit/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterSupplierInput is the payload for supplier sign-up.
type RegisterSupplierInput struct {
	Name        string `json:"nome" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"senha" validate:"required,min=6"`
	WhatsApp    string `json:"whatsapp" validate:"required"`
	Logo        string `json:"logo"`
	Description string `json:"descricao"`
}

// RegisterCustomerInput is the payload for customer sign-up.
type RegisterCustomerInput struct {
	Name     string `json:"nome" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"senha" validate:"required,min=6"`
	Address  string `json:"endereco"`
	Phone    string `json:"telefone"`
}

// UpdateSupplierProfileInput is the payload for a supplier's own profile
// update. Pointer fields distinguish "absent" from "present but empty"; a
// present senha is re-hashed, the login email is not editable here.
type UpdateSupplierProfileInput struct {
	Name        *string `json:"nome"`
	WhatsApp    *string `json:"whatsapp"`
	Logo        *string `json:"logo"`
	Description *string `json:"descricao"`
	Password    *string `json:"senha" validate:"omitempty,min=6"`
}

// UpdateCustomerProfileInput is the payload for a customer's own profile
// update, with the same presence and senha rules.
type UpdateCustomerProfileInput struct {
	Name     *string `json:"nome"`
	Address  *string `json:"endereco"`
	Phone    *string `json:"telefone"`
	Password *string `json:"senha" validate:"omitempty,min=6"`
}

// LoginInput is the credential payload for both roles.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"senha" validate:"required"`
}

// SupplierOutput is the supplier representation served by the API.
// The password hash never leaves the persistence layer boundary.
type SupplierOutput struct {
	ID                 uuid.UUID `json:"id"`
	Name               string    `json:"nome"`
	Email              string    `json:"email"`
	WhatsApp           string    `json:"whatsapp"`
	Logo               string    `json:"logo,omitempty"`
	Description        string    `json:"descricao,omitempty"`
	Active             bool      `json:"status"`
	SubscriptionActive bool      `json:"assinaturaAtiva"`
	CreatedAt          time.Time `json:"createdAt"`
}

// CustomerOutput is the customer representation served by the API.
type CustomerOutput struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"nome"`
	Email     string    `json:"email"`
	Address   string    `json:"endereco,omitempty"`
	Phone     string    `json:"telefone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// LoginOutput carries the issued token plus the profile of whichever role
// logged in. Exactly one of Supplier/Customer is set.
type LoginOutput struct {
	Token    string
	Supplier *SupplierOutput
	Customer *CustomerOutput
}

// AccountUsecase groups registration, login and the supplier directory,
// including subscription activation.
type AccountUsecase interface {
	// RegisterSupplier creates a supplier account. New suppliers start with
	// an inactive subscription and active status.
	RegisterSupplier(ctx context.Context, input *RegisterSupplierInput) (*SupplierOutput, error)

	// RegisterCustomer creates a customer account.
	RegisterCustomer(ctx context.Context, input *RegisterCustomerInput) (*CustomerOutput, error)

	// Login authenticates a principal of the given role and issues a token.
	Login(ctx context.Context, role entity.Role, input *LoginInput) (*LoginOutput, error)

	// GetSupplier returns one supplier's public profile.
	GetSupplier(ctx context.Context, id uuid.UUID) (*SupplierOutput, error)

	// ListSuppliers returns the public directory of active suppliers.
	ListSuppliers(ctx context.Context) ([]*SupplierOutput, error)

	// ActivateSubscription turns on the subscription flag of the calling
	// supplier's own account.
	ActivateSubscription(ctx context.Context, callerID, supplierID uuid.UUID) (*SupplierOutput, error)

	// GetCustomerProfile returns the calling customer's own profile.
	GetCustomerProfile(ctx context.Context, customerID uuid.UUID) (*CustomerOutput, error)

	// UpdateSupplierProfile applies the fields present in the payload to the
	// calling supplier's own account.
	UpdateSupplierProfile(ctx context.Context, supplierID uuid.UUID, input *UpdateSupplierProfileInput) (*SupplierOutput, error)

	// UpdateCustomerProfile applies the fields present in the payload to the
	// calling customer's own account.
	UpdateCustomerProfile(ctx context.Context, customerID uuid.UUID, input *UpdateCustomerProfileInput) (*CustomerOutput, error)
}
