// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"levefit/internal/delivery/http/middleware"
	"levefit/internal/delivery/http/response"
	domainerrors "levefit/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// principalID extracts the authenticated principal's ID set by the auth
// middleware. Handlers behind Authenticate can rely on it being present;
// the fallback guards misconfigured routes.
func principalID(c echo.Context) (uuid.UUID, error) {
	id, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return uuid.Nil, domainerrors.ErrUnauthorized
	}

	return id, nil
}

// HealthCheck reports the API is reachable. The body matches what the web
// client's connectivity check expects.
func HealthCheck(c echo.Context) error {
	return response.Message(c, http.StatusOK, "API do LeveFit está funcionando!")
}
