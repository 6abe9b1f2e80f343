package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/studentdeals/internal/pkg/logger"
	"github.com/piresc/studentdeals/internal/pkg/models"
	"github.com/piresc/studentdeals/internal/pkg/otp"
	"github.com/piresc/studentdeals/internal/utils"
)

// respondError maps usecase errors to HTTP responses
func respondError(c echo.Context, err error, fallback string) error {
	var inputErr *models.InvalidInputError
	var verr *models.VerificationError

	switch {
	case errors.As(err, &inputErr):
		if len(inputErr.Details) > 0 {
			return utils.ValidationErrorResponse(c, inputErr.Message, inputErr.Details)
		}
		return utils.BadRequestResponse(c, inputErr.Message)
	case errors.As(err, &verr):
		return utils.ErrorResponseHandler(c, http.StatusUnprocessableEntity, verr.Reason)
	case errors.Is(err, models.ErrUnauthorized):
		return utils.UnauthorizedResponse(c, "")
	case errors.Is(err, models.ErrInvalidCredentials):
		return utils.UnauthorizedResponse(c, "Invalid email or password")
	case errors.Is(err, models.ErrEmailTaken):
		return utils.ConflictResponse(c, "Email already registered")
	case errors.Is(err, models.ErrRoleNotAllowed):
		return utils.ErrorResponseHandler(c, http.StatusForbidden, "Role cannot self-register")
	case errors.Is(err, models.ErrUserNotFound):
		return utils.ErrorResponseHandler(c, http.StatusNotFound, "User not found")
	case errors.Is(err, otp.ErrCacheUnavailable):
		return utils.ServiceUnavailableResponse(c, "Verification temporarily unavailable")
	}

	logger.ErrorCtx(c.Request().Context(), fallback,
		logger.String("path", c.Path()),
		logger.ErrorField(err))
	return utils.InternalServerErrorResponse(c, fallback)
}
