package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/studentdeals/internal/pkg/middleware"
	"github.com/piresc/studentdeals/internal/pkg/models"
	"github.com/piresc/studentdeals/internal/utils"
)

// SendPhoneOTP sends a WhatsApp code to the caller's phone
func (h *AuthHandler) SendPhoneOTP(c echo.Context) error {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.OTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.PhoneNumber == "" {
		return utils.BadRequestResponse(c, "Phone number is required")
	}

	result, err := h.authUC.SendPhoneOTP(c.Request().Context(), identity.UserID, req.PhoneNumber)
	if err != nil {
		return respondError(c, err, "Failed to send OTP")
	}

	return utils.SuccessResponse(c, http.StatusOK, otpMessage(result), result)
}

// VerifyPhoneOTP checks the WhatsApp code
func (h *AuthHandler) VerifyPhoneOTP(c echo.Context) error {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.OTPVerifyRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.PhoneNumber == "" || req.OTP == "" {
		return utils.BadRequestResponse(c, "Phone number and OTP are required")
	}

	if err := h.authUC.VerifyPhoneOTP(c.Request().Context(), identity.UserID, req.PhoneNumber, req.OTP); err != nil {
		return respondError(c, err, "Failed to verify OTP")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Phone number verified", nil)
}

// SendStudentOTP emails a code to a student address
func (h *AuthHandler) SendStudentOTP(c echo.Context) error {
	var req models.OTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Email == "" {
		return utils.BadRequestResponse(c, "Email is required")
	}

	result, err := h.authUC.SendStudentSignupOTP(c.Request().Context(), req.Email)
	if err != nil {
		return respondError(c, err, "Failed to send OTP")
	}

	return utils.SuccessResponse(c, http.StatusOK, otpMessage(result), result)
}

// VerifyStudentOTP checks the emailed code
func (h *AuthHandler) VerifyStudentOTP(c echo.Context) error {
	var req models.OTPVerifyRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Email == "" || req.OTP == "" {
		return utils.BadRequestResponse(c, "Email and OTP are required")
	}

	if err := h.authUC.VerifyStudentSignupOTP(c.Request().Context(), req.Email, req.OTP); err != nil {
		return respondError(c, err, "Failed to verify OTP")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Email verified", nil)
}

// VerifyStudent checks a student identity against an institution
func (h *AuthHandler) VerifyStudent(c echo.Context) error {
	var req models.StudentVerificationRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	result, err := h.authUC.VerifyStudentIdentity(c.Request().Context(), &req)
	if err != nil {
		return respondError(c, err, "Failed to verify student")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Student verified", result)
}

func otpMessage(result *models.OTPIssueResult) string {
	switch result.Status {
	case models.DeliveryStoredForTesting:
		return "OTP stored for testing, delivery provider not configured"
	case models.DeliveryFailed:
		return "OTP generated but delivery failed, please try again"
	default:
		return "OTP sent successfully"
	}
}
