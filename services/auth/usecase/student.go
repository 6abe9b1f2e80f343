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

// SendStudentSignupOTP emails a code proving control of a student address
func (uc *AuthUC) SendStudentSignupOTP(ctx context.Context, email string) (*models.OTPIssueResult, error) {
	email = otp.NormalizeEmail(email)
	if !utils.IsValidEmail(email) {
		return nil, models.NewInvalidInputError("Invalid email address")
	}

	ttl := uc.emailOTPTTL()
	code, err := uc.issueOTP(ctx, constants.NamespaceStudentSignupOTP, email, ttl)
	if err != nil {
		return nil, err
	}

	result := &models.OTPIssueResult{
		Destination:   utils.MaskEmail(email),
		ExpiryMinutes: expiryMinutes(ttl),
		Status:        models.DeliverySent,
	}

	err = uc.email.SendOTP(ctx, email, code, result.ExpiryMinutes, models.PurposeStudentSignup)
	switch {
	case err == nil:
	case errors.Is(err, models.ErrProviderNotConfigured):
		result.Status = models.DeliveryStoredForTesting
	default:
		logger.WarnCtx(ctx, "Student signup OTP delivery failed",
			logger.String("email", result.Destination),
			logger.Err(err))
		result.Status = models.DeliveryFailed
	}

	return result, nil
}

// VerifyStudentSignupOTP consumes the emailed code and records that the
// address is proven, which VerifyStudentIdentity requires
func (uc *AuthUC) VerifyStudentSignupOTP(ctx context.Context, email, code string) error {
	email = otp.NormalizeEmail(email)
	if email == "" {
		return models.NewInvalidInputError("Email is required")
	}

	if !uc.otps.Verify(ctx, constants.NamespaceStudentSignupOTP, email, code) {
		return models.NewVerificationError(models.ReasonInvalidOTP)
	}

	if err := uc.otps.MarkVerified(ctx, constants.NamespaceStudentEmailVerified, email, uc.proofTTL()); err != nil {
		logger.WarnCtx(ctx, "Failed to record verified student email",
			logger.String("email", utils.MaskEmail(email)),
			logger.Err(err))
		return err
	}
	return nil
}

// VerifyStudentIdentity checks that email belongs to the claimed institution
// and that the institution knows the student. Failures carry the reason.
func (uc *AuthUC) VerifyStudentIdentity(ctx context.Context, req *models.StudentVerificationRequest) (*models.StudentVerificationResult, error) {
	email := otp.NormalizeEmail(req.Email)
	if !utils.IsValidEmail(email) {
		return nil, models.NewInvalidInputError("Invalid email address")
	}
	if req.InstitutionID == "" || req.StudentID == "" {
		return nil, models.NewInvalidInputError("Institution and student ID are required")
	}

	proven, err := uc.otps.IsVerified(ctx, constants.NamespaceStudentEmailVerified, email)
	if err != nil {
		return nil, err
	}
	if !proven {
		return nil, models.NewVerificationError(models.ReasonEmailNotVerified)
	}

	inst, err := uc.repo.GetInstitutionByID(ctx, req.InstitutionID)
	if err != nil {
		if errors.Is(err, models.ErrInstitutionNotFound) {
			return nil, models.NewVerificationError(models.ReasonInstitutionNotFound)
		}
		return nil, err
	}

	if !utils.DomainMatches(utils.EmailDomain(email), inst.Domain) {
		return nil, models.NewVerificationError(models.ReasonDomainMismatch)
	}

	found, err := uc.lookupStudent(ctx, inst, req.StudentID, email)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, models.NewVerificationError(models.ReasonIdentityNotFound)
	}

	if err := uc.repo.MarkStudentVerified(ctx, email, inst.ID); err != nil {
		return nil, err
	}
	if err := uc.otps.ClearVerified(ctx, constants.NamespaceStudentEmailVerified, email); err != nil {
		logger.WarnCtx(ctx, "Failed to clear verified student email", logger.Err(err))
	}

	uc.publish(ctx, constants.SubjectStudentVerified, &models.AuthEvent{
		Email:         email,
		InstitutionID: inst.ID,
	})

	return &models.StudentVerificationResult{
		Verified:      true,
		InstitutionID: inst.ID,
		Email:         email,
	}, nil
}

func (uc *AuthUC) lookupStudent(ctx context.Context, inst *models.Institution, studentID, email string) (bool, error) {
	switch uc.cfg.Institution.Mode {
	case models.InstitutionModeDemo:
		return uc.repo.KnownStudentExists(ctx, inst.ID, studentID, email)
	case models.InstitutionModeAPI:
		if uc.institutions == nil {
			return false, models.NewVerificationError(models.ReasonNotConfigured)
		}
		found, err := uc.institutions.LookupStudent(ctx, inst, studentID, email)
		if errors.Is(err, models.ErrProviderNotConfigured) {
			return false, models.NewVerificationError(models.ReasonNotConfigured)
		}
		return found, err
	default:
		return false, models.NewVerificationError(models.ReasonNotConfigured)
	}
}
