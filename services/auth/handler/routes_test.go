package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/studentdeals/internal/pkg/jwt"
	"github.com/piresc/studentdeals/internal/pkg/models"
	authhttp "github.com/piresc/studentdeals/services/auth/handler/http"
	"github.com/piresc/studentdeals/services/auth/mocks"
)

func setupRouter(t *testing.T) (*echo.Echo, *jwt.Manager) {
	t.Helper()
	tokens, err := jwt.NewManager(models.JWTConfig{
		AccessSecret:  "access-secret-access-secret-0123456789",
		RefreshSecret: "refresh-secret-refresh-secret-0123456789",
	})
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	h := NewHandler(authhttp.NewAuthHandler(mocks.NewMockAuthUC(ctrl)), tokens, nil)

	e := echo.New()
	h.RegisterRoutes(e)
	return e, tokens
}

func bearer(t *testing.T, tokens *jwt.Manager, role models.Role) string {
	t.Helper()
	tok, err := tokens.IssueAccessToken(jwt.Subject{UserID: "user-1", Email: "user@studentdeals.ng", Role: role})
	require.NoError(t, err)
	return "Bearer " + tok.Value
}

func get(e *echo.Echo, path, auth string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if auth != "" {
		req.Header.Set(echo.HeaderAuthorization, auth)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRoleGates(t *testing.T) {
	e, tokens := setupRouter(t)

	testCases := []struct {
		name         string
		path         string
		role         models.Role
		expectedCode int
	}{
		{name: "Vendor on vendor route", path: "/vendor/ping", role: models.RoleVendor, expectedCode: http.StatusOK},
		{name: "Admin on vendor route", path: "/vendor/ping", role: models.RoleAdmin, expectedCode: http.StatusOK},
		{name: "Student on vendor route", path: "/vendor/ping", role: models.RoleStudent, expectedCode: http.StatusUnauthorized},
		{name: "Admin on admin route", path: "/admin/ping", role: models.RoleAdmin, expectedCode: http.StatusOK},
		{name: "Vendor on admin route", path: "/admin/ping", role: models.RoleVendor, expectedCode: http.StatusUnauthorized},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := get(e, tc.path, bearer(t, tokens, tc.role))
			assert.Equal(t, tc.expectedCode, rec.Code)
		})
	}
}

func TestProtectedRoutes_UniformUnauthorized(t *testing.T) {
	e, tokens := setupRouter(t)

	refresh, err := tokens.IssueRefreshToken(jwt.Subject{UserID: "user-1", Role: models.RoleAdmin})
	require.NoError(t, err)

	for name, auth := range map[string]string{
		"No header":     "",
		"Wrong scheme":  "Basic dXNlcjpwYXNz",
		"Garbage token": "Bearer not.a.jwt",
		"Refresh token": "Bearer " + refresh.Value,
	} {
		t.Run(name, func(t *testing.T) {
			rec := get(e, "/auth/me", auth)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "Unauthorized", body["error"])
		})
	}
}

func TestSession_OptionalAuth(t *testing.T) {
	e, tokens := setupRouter(t)

	decodeAuthenticated := func(rec *httptest.ResponseRecorder) interface{} {
		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		return body["data"].(map[string]interface{})["authenticated"]
	}

	anonymous := get(e, "/auth/session", "")
	assert.Equal(t, http.StatusOK, anonymous.Code)
	assert.Equal(t, false, decodeAuthenticated(anonymous))

	invalid := get(e, "/auth/session", "Bearer expired.or.bad")
	assert.Equal(t, http.StatusOK, invalid.Code)
	assert.Equal(t, false, decodeAuthenticated(invalid))

	valid := get(e, "/auth/session", bearer(t, tokens, models.RoleStudent))
	assert.Equal(t, http.StatusOK, valid.Code)
	assert.Equal(t, true, decodeAuthenticated(valid))
}
