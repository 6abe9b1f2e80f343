package usecase

import (
	"context"
	"errors"

	"github.com/piresc/studentdeals/internal/pkg/constants"
	"github.com/piresc/studentdeals/internal/pkg/logger"
	"github.com/piresc/studentdeals/internal/pkg/models"
	"github.com/piresc/studentdeals/internal/pkg/otp"
	"github.com/piresc/studentdeals/internal/utils"
)

// RequestPasswordReset emails a reset code. Unknown emails get the same
// answer and no code, so the endpoint cannot be used to probe accounts.
func (uc *AuthUC) RequestPasswordReset(ctx context.Context, email string) error {
	email = otp.NormalizeEmail(email)
	if !utils.IsValidEmail(email) {
		return models.NewInvalidInputError("Invalid email address")
	}

	user, err := uc.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			logger.DebugCtx(ctx, "Password reset requested for unknown email",
				logger.String("email", utils.MaskEmail(email)))
			return nil
		}
		return err
	}
	if !user.IsActive {
		return nil
	}

	ttl := uc.emailOTPTTL()
	code, err := uc.issueOTP(ctx, constants.NamespacePasswordResetOTP, email, ttl)
	if err != nil {
		return err
	}

	if err := uc.email.SendOTP(ctx, email, code, expiryMinutes(ttl), models.PurposePasswordReset); err != nil {
		logger.WarnCtx(ctx, "Failed to deliver password reset code",
			logger.String("email", utils.MaskEmail(email)),
			logger.Err(err))
	}
	return nil
}

// ResetPassword sets a new password after checking the emailed code.
// The policy is checked first so a weak password does not burn the code.
func (uc *AuthUC) ResetPassword(ctx context.Context, req *models.PasswordResetRequest) error {
	email := otp.NormalizeEmail(req.Email)
	if email == "" || req.OTP == "" {
		return models.NewInvalidInputError("Email and OTP are required")
	}
	if err := uc.validatePassword(req.NewPassword); err != nil {
		return err
	}

	if !uc.otps.Verify(ctx, constants.NamespacePasswordResetOTP, email, req.OTP) {
		return models.NewVerificationError(models.ReasonInvalidOTP)
	}

	user, err := uc.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return models.NewVerificationError(models.ReasonInvalidOTP)
		}
		return err
	}
	if !user.IsActive {
		logger.WarnCtx(ctx, "Password reset refused for inactive account", logger.String("user_id", user.ID.String()))
		return models.NewVerificationError(models.ReasonInvalidOTP)
	}

	if err := uc.setPassword(ctx, user, req.NewPassword); err != nil {
		return err
	}

	logger.InfoCtx(ctx, "Password reset completed", logger.String("user_id", user.ID.String()))
	return nil
}

// UpdatePassword changes the password of a logged-in user. Tokens are
// stateless, so the caller is told to drop its refresh token.
func (uc *AuthUC) UpdatePassword(ctx context.Context, userID string, req *models.UpdatePasswordRequest) (*models.PasswordChangeResponse, error) {
	user, err := uc.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !uc.passwords.Verify(req.CurrentPassword, user.PasswordHash) {
		return nil, models.ErrInvalidCredentials
	}
	if req.CurrentPassword == req.NewPassword {
		return nil, models.NewInvalidInputError("New password must differ from the current password")
	}
	if err := uc.validatePassword(req.NewPassword); err != nil {
		return nil, err
	}

	if err := uc.setPassword(ctx, user, req.NewPassword); err != nil {
		return nil, err
	}

	return &models.PasswordChangeResponse{LogoutRequired: true}, nil
}

func (uc *AuthUC) setPassword(ctx context.Context, user *models.User, plaintext string) error {
	hash, err := uc.passwords.Hash(plaintext)
	if err != nil {
		return err
	}
	if err := uc.repo.UpdatePasswordHash(ctx, user.ID.String(), hash); err != nil {
		return err
	}

	uc.publish(ctx, constants.SubjectPasswordChanged, &models.AuthEvent{
		UserID: user.ID.String(),
		Email:  user.Email,
	})
	return nil
}
