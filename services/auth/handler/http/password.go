package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/studentdeals/internal/pkg/middleware"
	"github.com/piresc/studentdeals/internal/pkg/models"
	"github.com/piresc/studentdeals/internal/utils"
)

// ForgotPassword starts a password reset
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req models.OTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Email == "" {
		return utils.BadRequestResponse(c, "Email is required")
	}

	if err := h.authUC.RequestPasswordReset(c.Request().Context(), req.Email); err != nil {
		return respondError(c, err, "Failed to request password reset")
	}

	return utils.SuccessResponse(c, http.StatusOK,
		"If an account exists for this email, a reset code has been sent", nil)
}

// ResetPassword completes a password reset with the emailed code
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req models.PasswordResetRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.authUC.ResetPassword(c.Request().Context(), &req); err != nil {
		return respondError(c, err, "Failed to reset password")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Password reset successfully", nil)
}

// UpdatePassword changes the caller's password
func (h *AuthHandler) UpdatePassword(c echo.Context) error {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.UpdatePasswordRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.CurrentPassword == "" || req.NewPassword == "" {
		return utils.BadRequestResponse(c, "Current and new password are required")
	}

	resp, err := h.authUC.UpdatePassword(c.Request().Context(), identity.UserID, &req)
	if err != nil {
		return respondError(c, err, "Failed to update password")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Password updated, please log in again", resp)
}
