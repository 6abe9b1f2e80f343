package auth

import (
	"context"

	"github.com/piresc/studentdeals/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/studentdeals/services/auth AuthUC

// AuthUC represents the auth usecase interface
type AuthUC interface {
	// accounts
	Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*models.AuthResponse, error)
	GetUser(ctx context.Context, userID string) (*models.User, error)

	// password
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, req *models.PasswordResetRequest) error
	UpdatePassword(ctx context.Context, userID string, req *models.UpdatePasswordRequest) (*models.PasswordChangeResponse, error)

	// phone verification
	SendPhoneOTP(ctx context.Context, userID, phone string) (*models.OTPIssueResult, error)
	VerifyPhoneOTP(ctx context.Context, userID, phone, code string) error

	// student verification
	SendStudentSignupOTP(ctx context.Context, email string) (*models.OTPIssueResult, error)
	VerifyStudentSignupOTP(ctx context.Context, email, code string) error
	VerifyStudentIdentity(ctx context.Context, req *models.StudentVerificationRequest) (*models.StudentVerificationResult, error)
}
