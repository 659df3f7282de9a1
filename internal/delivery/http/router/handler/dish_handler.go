package handler

import (
	"log/slog"
	"net/http"

	"levefit/internal/delivery/http/response"
	domainerrors "levefit/internal/domain/errors"
	"levefit/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DishHandler holds dependencies for dish catalog handlers.
type DishHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewDishHandler is the constructor for DishHandler, injected by Fx.
func NewDishHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *DishHandler {
	return &DishHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create handles dish registration by an authenticated supplier.
func (h *DishHandler) Create(c echo.Context) error {
	supplierID, err := principalID(c)
	if err != nil {
		return err
	}

	var input *usecase.CreateDishInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrMissingDishFields
	}
	if err := c.Validate(input); err != nil {
		return domainerrors.ErrMissingDishFields
	}

	output, err := h.uc.CreateDish(c.Request().Context(), supplierID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, output)
}

// ListPublic handles the public catalog listing, optionally filtered by category.
func (h *DishHandler) ListPublic(c echo.Context) error {
	output, err := h.uc.ListPublicDishes(c.Request().Context(), c.QueryParam("categoria"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, output)
}

// ListMine handles the supplier dashboard listing of its own dishes.
func (h *DishHandler) ListMine(c echo.Context) error {
	supplierID, err := principalID(c)
	if err != nil {
		return err
	}

	output, err := h.uc.ListSupplierDishes(c.Request().Context(), supplierID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, output)
}

// ListCategories handles the public category filter list.
func (h *DishHandler) ListCategories(c echo.Context) error {
	categories, err := h.uc.ListCategories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, categories)
}

// Get handles the public dish detail view.
func (h *DishHandler) Get(c echo.Context) error {
	dishID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrDishNotFound
	}

	output, err := h.uc.GetDish(c.Request().Context(), dishID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, output)
}

// Update handles a partial dish update by its owner.
func (h *DishHandler) Update(c echo.Context) error {
	supplierID, err := principalID(c)
	if err != nil {
		return err
	}

	dishID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrDishNotFound
	}

	var input *usecase.UpdateDishInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed
	}
	if input == nil {
		// Echo skips binding empty bodies, which must behave like "{}".
		input = &usecase.UpdateDishInput{}
	}

	output, err := h.uc.UpdateDish(c.Request().Context(), supplierID, dishID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, output)
}

// Delete handles dish removal by its owner.
func (h *DishHandler) Delete(c echo.Context) error {
	supplierID, err := principalID(c)
	if err != nil {
		return err
	}

	dishID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrDishNotFound
	}

	if err := h.uc.DeleteDish(c.Request().Context(), supplierID, dishID); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Prato excluído com sucesso")
}

// OrderQR streams the dish's WhatsApp order deep link as a PNG QR code.
func (h *DishHandler) OrderQR(c echo.Context) error {
	dishID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrDishNotFound
	}

	png, err := h.uc.DishOrderQR(c.Request().Context(), dishID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
