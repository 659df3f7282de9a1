package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	domainerrors "levefit/internal/domain/errors"
	"levefit/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// BlogHandler holds dependencies for the editorial content handlers.
type BlogHandler struct {
	uc     usecase.BlogUsecase
	logger *slog.Logger
}

// NewBlogHandler is the constructor for BlogHandler, injected by Fx.
func NewBlogHandler(uc usecase.BlogUsecase, logger *slog.Logger) *BlogHandler {
	return &BlogHandler{
		uc:     uc,
		logger: logger,
	}
}

// List handles the paginated blog listing. Page and limit fall back to the
// service defaults when absent or malformed.
func (h *BlogHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	output, err := h.uc.ListPosts(c.Request().Context(), &usecase.BlogListInput{
		Page:     page,
		Limit:    limit,
		Category: c.QueryParam("categoria"),
		Search:   c.QueryParam("search"),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, output)
}

// GetBySlug handles the blog post detail view and counts the visit.
func (h *BlogHandler) GetBySlug(c echo.Context) error {
	slug := c.Param("slug")
	if slug == "" {
		return domainerrors.ErrPostNotFound
	}

	output, err := h.uc.GetPostBySlug(c.Request().Context(), slug)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, output)
}

// ListCategories handles the blog category filter list.
func (h *BlogHandler) ListCategories(c echo.Context) error {
	categories, err := h.uc.ListCategories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, categories)
}
