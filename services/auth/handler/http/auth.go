package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/studentdeals/internal/pkg/logger"
	"github.com/piresc/studentdeals/internal/pkg/middleware"
	"github.com/piresc/studentdeals/internal/pkg/models"
	"github.com/piresc/studentdeals/internal/utils"
	"github.com/piresc/studentdeals/services/auth"
)

// AuthHandler handles account and token endpoints
type AuthHandler struct {
	authUC auth.AuthUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUC auth.AuthUC) *AuthHandler {
	return &AuthHandler{
		authUC: authUC,
	}
}

// Register handles account creation
func (h *AuthHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for registration",
			logger.ErrorField(err),
			logger.String("endpoint", "Register"),
		)
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Email == "" || req.Password == "" {
		return utils.BadRequestResponse(c, "Email and password are required")
	}

	resp, err := h.authUC.Register(c.Request().Context(), &req)
	if err != nil {
		return respondError(c, err, "Failed to register user")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "User registered successfully", resp)
}

// Login handles password login
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Email == "" || req.Password == "" {
		return utils.BadRequestResponse(c, "Email and password are required")
	}

	resp, err := h.authUC.Login(c.Request().Context(), &req)
	if err != nil {
		return respondError(c, err, "Failed to log in")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Login successful", resp)
}

// Refresh exchanges a refresh token for a new token pair
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req models.RefreshRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	// an empty token still goes through verification
	resp, err := h.authUC.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return respondError(c, err, "Failed to refresh token")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Token refreshed successfully", resp)
}

// Me returns the account of the caller
func (h *AuthHandler) Me(c echo.Context) error {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	user, err := h.authUC.GetUser(c.Request().Context(), identity.UserID)
	if err != nil {
		return respondError(c, err, "Failed to retrieve user")
	}

	return utils.SuccessResponse(c, http.StatusOK, "User retrieved successfully", user)
}

// Session reports whether the caller presented a valid access token
func (h *AuthHandler) Session(c echo.Context) error {
	identity, ok := middleware.IdentityFromContext(c)
	data := map[string]interface{}{"authenticated": ok}
	if ok {
		data["identity"] = identity
	}
	return utils.SuccessResponse(c, http.StatusOK, "Session status", data)
}

// RolePing answers role-gated health checks
func (h *AuthHandler) RolePing(c echo.Context) error {
	identity, _ := middleware.IdentityFromContext(c)
	return utils.SuccessResponse(c, http.StatusOK, "pong", map[string]interface{}{"role": identity.Role})
}
