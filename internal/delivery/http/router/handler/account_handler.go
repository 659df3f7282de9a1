package handler

import (
	"log/slog"
	"net/http"

	"levefit/internal/domain/entity"
	domainerrors "levefit/internal/domain/errors"
	"levefit/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccountHandler holds dependencies for registration, login and the
// supplier directory.
type AccountHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		uc:     uc,
		logger: logger,
	}
}

// RegisterSupplier handles supplier sign-up.
func (h *AccountHandler) RegisterSupplier(c echo.Context) error {
	var input *usecase.RegisterSupplierInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.RegisterSupplier(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, output)
}

// RegisterCustomer handles customer sign-up.
func (h *AccountHandler) RegisterCustomer(c echo.Context) error {
	var input *usecase.RegisterCustomerInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.RegisterCustomer(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, output)
}

// Login authenticates the role named in the path, either "fornecedor" or
// "cliente", and returns the token alongside the matching profile.
func (h *AccountHandler) Login(c echo.Context) error {
	role, ok := entity.ParseRole(c.Param("tipo"))
	if !ok {
		return domainerrors.ErrUnknownLoginRole
	}

	var input *usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), role, input)
	if err != nil {
		return errors.WithStack(err)
	}

	body := map[string]any{"token": output.Token}
	if output.Supplier != nil {
		body["fornecedor"] = output.Supplier
	}
	if output.Customer != nil {
		body["cliente"] = output.Customer
	}

	return c.JSON(http.StatusOK, body)
}

// GetSupplier handles the public supplier profile view.
func (h *AccountHandler) GetSupplier(c echo.Context) error {
	supplierID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrSupplierNotFound
	}

	output, err := h.uc.GetSupplier(c.Request().Context(), supplierID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, output)
}

// ListSuppliers handles the public directory of active suppliers.
func (h *AccountHandler) ListSuppliers(c echo.Context) error {
	output, err := h.uc.ListSuppliers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, output)
}

// SupplierProfile returns the authenticated supplier's own profile.
func (h *AccountHandler) SupplierProfile(c echo.Context) error {
	callerID, err := principalID(c)
	if err != nil {
		return err
	}

	output, err := h.uc.GetSupplier(c.Request().Context(), callerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, output)
}

// UpdateSupplierProfile applies a partial update to the authenticated
// supplier's own profile.
func (h *AccountHandler) UpdateSupplierProfile(c echo.Context) error {
	callerID, err := principalID(c)
	if err != nil {
		return err
	}

	var input *usecase.UpdateSupplierProfileInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed
	}
	if input == nil {
		input = &usecase.UpdateSupplierProfileInput{}
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.UpdateSupplierProfile(c.Request().Context(), callerID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, output)
}

// CustomerProfile returns the authenticated customer's own profile.
func (h *AccountHandler) CustomerProfile(c echo.Context) error {
	callerID, err := principalID(c)
	if err != nil {
		return err
	}

	output, err := h.uc.GetCustomerProfile(c.Request().Context(), callerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, output)
}

// UpdateCustomerProfile applies a partial update to the authenticated
// customer's own profile.
func (h *AccountHandler) UpdateCustomerProfile(c echo.Context) error {
	callerID, err := principalID(c)
	if err != nil {
		return err
	}

	var input *usecase.UpdateCustomerProfileInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed
	}
	if input == nil {
		input = &usecase.UpdateCustomerProfileInput{}
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.UpdateCustomerProfile(c.Request().Context(), callerID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, output)
}

// ActivateSubscription turns on the subscription of the supplier named in
// the path. The usecase rejects calls against anyone else's account.
func (h *AccountHandler) ActivateSubscription(c echo.Context) error {
	callerID, err := principalID(c)
	if err != nil {
		return err
	}

	supplierID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrSupplierNotFound
	}

	output, err := h.uc.ActivateSubscription(c.Request().Context(), callerID, supplierID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, output)
}
