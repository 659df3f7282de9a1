package handler

import (
	"log/slog"
	"net/http"

	domainerrors "levefit/internal/domain/errors"
	"levefit/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RatingHandler holds dependencies for dish rating handlers.
type RatingHandler struct {
	uc     usecase.RatingUsecase
	logger *slog.Logger
}

// NewRatingHandler is the constructor for RatingHandler, injected by Fx.
func NewRatingHandler(uc usecase.RatingUsecase, logger *slog.Logger) *RatingHandler {
	return &RatingHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create handles rating submission by an authenticated customer.
func (h *RatingHandler) Create(c echo.Context) error {
	customerID, err := principalID(c)
	if err != nil {
		return err
	}

	var input *usecase.CreateRatingInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.CreateRating(c.Request().Context(), customerID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, output)
}
