package usecase

import (
	"context"
	"errors"

	"github.com/piresc/studentdeals/internal/pkg/constants"
	"github.com/piresc/studentdeals/internal/pkg/logger"
	"github.com/piresc/studentdeals/internal/pkg/models"
	"github.com/piresc/studentdeals/internal/utils"
)

// SendPhoneOTP issues a WhatsApp verification code. The code is stored
// even when delivery is impossible; Status tells the caller what happened.
func (uc *AuthUC) SendPhoneOTP(ctx context.Context, userID, phone string) (*models.OTPIssueResult, error) {
	normalized, err := utils.NormalizePhone(phone)
	if err != nil {
		return nil, models.NewInvalidInputError("Invalid phone number")
	}

	ttl := uc.phoneOTPTTL()
	code, err := uc.issueOTP(ctx, constants.NamespaceWhatsAppOTP, normalized, ttl)
	if err != nil {
		return nil, err
	}

	result := &models.OTPIssueResult{
		Destination:   utils.MaskPhoneNumber(normalized),
		ExpiryMinutes: expiryMinutes(ttl),
		Status:        models.DeliverySent,
	}

	err = uc.whatsapp.SendOTP(ctx, normalized, code, result.ExpiryMinutes)
	switch {
	case err == nil:
	case errors.Is(err, models.ErrProviderNotConfigured):
		logger.InfoCtx(ctx, "WhatsApp provider not configured, OTP stored for testing",
			logger.String("user_id", userID),
			logger.String("phone", result.Destination))
		result.Status = models.DeliveryStoredForTesting
	default:
		logger.WarnCtx(ctx, "WhatsApp OTP delivery failed, code remains valid",
			logger.String("user_id", userID),
			logger.String("phone", result.Destination),
			logger.Err(err))
		result.Status = models.DeliveryFailed
	}

	return result, nil
}

// VerifyPhoneOTP checks the code and marks the phone verified on the account
func (uc *AuthUC) VerifyPhoneOTP(ctx context.Context, userID, phone, code string) error {
	normalized, err := utils.NormalizePhone(phone)
	if err != nil {
		return models.NewInvalidInputError("Invalid phone number")
	}

	if !uc.otps.Verify(ctx, constants.NamespaceWhatsAppOTP, normalized, code) {
		return models.NewVerificationError(models.ReasonInvalidOTP)
	}

	if err := uc.repo.MarkPhoneVerified(ctx, userID, normalized); err != nil {
		return err
	}

	uc.publish(ctx, constants.SubjectPhoneVerified, &models.AuthEvent{
		UserID:      userID,
		PhoneNumber: normalized,
	})
	return nil
}
