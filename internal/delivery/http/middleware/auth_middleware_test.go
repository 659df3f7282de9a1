package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"levefit/internal/domain/entity"
	"levefit/internal/domain/service"
	mockSvc "levefit/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestContext(authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/pratos/fornecedor", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthMiddleware_Authenticate_MissingToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	mw := NewAuthMiddleware(tokenSvc)

	c, rec := newAuthTestContext("")

	nextCalled := false
	err := mw.Authenticate(func(c echo.Context) error {
		nextCalled = true
		return nil
	})(c)

	require.NoError(t, err)
	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Token não fornecido"}`, rec.Body.String())
}

func TestAuthMiddleware_Authenticate_MissingBearerPrefix(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	mw := NewAuthMiddleware(tokenSvc)

	c, rec := newAuthTestContext("some-raw-token")

	err := mw.Authenticate(func(c echo.Context) error {
		t.Fatal("next handler must not run")
		return nil
	})(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Token não fornecido"}`, rec.Body.String())
}

func TestAuthMiddleware_Authenticate_InvalidToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().
		ValidateToken("bad-token").
		Return(nil, errors.New("token is malformed"))

	mw := NewAuthMiddleware(tokenSvc)

	c, rec := newAuthTestContext("Bearer bad-token")

	err := mw.Authenticate(func(c echo.Context) error {
		t.Fatal("next handler must not run")
		return nil
	})(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Token inválido"}`, rec.Body.String())
}

func TestAuthMiddleware_Authenticate_SetsPrincipal(t *testing.T) {
	userID := uuid.New()
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().
		ValidateToken("good-token").
		Return(&service.Claims{UserID: userID, Role: entity.RoleSupplier}, nil)

	mw := NewAuthMiddleware(tokenSvc)

	c, _ := newAuthTestContext("Bearer good-token")

	nextCalled := false
	err := mw.Authenticate(func(c echo.Context) error {
		nextCalled = true
		assert.Equal(t, userID, c.Get(ContextKeyUserID))
		assert.Equal(t, entity.RoleSupplier, c.Get(ContextKeyRole))
		return nil
	})(c)

	require.NoError(t, err)
	assert.True(t, nextCalled)
}

func TestAuthMiddleware_RequireRole_Mismatch(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	mw := NewAuthMiddleware(tokenSvc)

	c, rec := newAuthTestContext("")
	c.Set(ContextKeyRole, entity.RoleCustomer)

	err := mw.RequireRole(entity.RoleSupplier)(func(c echo.Context) error {
		t.Fatal("next handler must not run")
		return nil
	})(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"error":"Acesso negado"}`, rec.Body.String())
}

func TestAuthMiddleware_RequireRole_Match(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	mw := NewAuthMiddleware(tokenSvc)

	c, _ := newAuthTestContext("")
	c.Set(ContextKeyRole, entity.RoleSupplier)

	nextCalled := false
	err := mw.RequireRole(entity.RoleSupplier)(func(c echo.Context) error {
		nextCalled = true
		return nil
	})(c)

	require.NoError(t, err)
	assert.True(t, nextCalled)
}

// The role claim alone is not enough; RequireRole must reject requests that
// skipped Authenticate entirely.
func TestAuthMiddleware_RequireRole_NoRoleSet(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	mw := NewAuthMiddleware(tokenSvc)

	c, rec := newAuthTestContext("")

	err := mw.RequireRole(entity.RoleSupplier)(func(c echo.Context) error {
		t.Fatal("next handler must not run")
		return nil
	})(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
