package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/studentdeals/internal/pkg/constants"
	"github.com/piresc/studentdeals/internal/pkg/jwt"
	"github.com/piresc/studentdeals/internal/pkg/logger"
	"github.com/piresc/studentdeals/internal/pkg/models"
	"github.com/piresc/studentdeals/internal/pkg/otp"
	"github.com/piresc/studentdeals/internal/utils"
)

// Register creates a student or vendor account and logs it in
func (uc *AuthUC) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	email := otp.NormalizeEmail(req.Email)
	if !utils.IsValidEmail(email) {
		return nil, models.NewInvalidInputError("Invalid email address")
	}
	if req.Role == "" {
		req.Role = models.RoleStudent
	}
	if !req.Role.IsValid() {
		return nil, models.NewInvalidInputError("Invalid role")
	}
	if req.Role == models.RoleAdmin {
		return nil, models.ErrRoleNotAllowed
	}
	if err := uc.validatePassword(req.Password); err != nil {
		return nil, err
	}

	hash, err := uc.passwords.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:           uuid.New(),
		Email:        email,
		FullName:     strings.TrimSpace(req.FullName),
		PasswordHash: hash,
		Role:         req.Role,
		IsActive:     true,
	}
	if err := uc.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	uc.publish(ctx, constants.SubjectUserRegistered, &models.AuthEvent{
		UserID: user.ID.String(),
		Email:  user.Email,
		Role:   user.Role,
	})

	return uc.issueTokens(user)
}

// Login exchanges email and password for a token pair
func (uc *AuthUC) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	user, err := uc.repo.GetUserByEmail(ctx, otp.NormalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return nil, models.ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.IsActive || !uc.passwords.Verify(req.Password, user.PasswordHash) {
		return nil, models.ErrInvalidCredentials
	}

	return uc.issueTokens(user)
}

// Refresh issues a new token pair for a valid refresh token.
// The account is reloaded so deactivated users cannot refresh.
func (uc *AuthUC) Refresh(ctx context.Context, refreshToken string) (*models.AuthResponse, error) {
	claims, err := uc.tokens.VerifyRefreshToken(refreshToken)
	if err != nil {
		logger.DebugCtx(ctx, "Refresh token rejected", logger.Err(err))
		return nil, models.ErrUnauthorized
	}

	user, err := uc.repo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return nil, models.ErrUnauthorized
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, models.ErrUnauthorized
	}

	return uc.issueTokens(user)
}

// GetUser returns the account behind an identity
func (uc *AuthUC) GetUser(ctx context.Context, userID string) (*models.User, error) {
	return uc.repo.GetUserByID(ctx, userID)
}

func (uc *AuthUC) issueTokens(user *models.User) (*models.AuthResponse, error) {
	pair, err := uc.tokens.IssueTokenPair(jwt.Subject{
		UserID: user.ID.String(),
		Email:  user.Email,
		Role:   user.Role,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to issue tokens: %w", err)
	}

	return &models.AuthResponse{
		AccessToken:      pair.Access.Value,
		RefreshToken:     pair.Refresh.Value,
		AccessExpiresAt:  pair.Access.ExpiresAt.Unix(),
		RefreshExpiresAt: pair.Refresh.ExpiresAt.Unix(),
		UserID:           user.ID,
		Email:            user.Email,
		Role:             user.Role,
	}, nil
}

func (uc *AuthUC) validatePassword(plaintext string) error {
	result := uc.passwords.Validate(plaintext)
	if !result.Valid {
		return models.NewInvalidInputError("Password does not meet policy", result.Errors...)
	}
	return nil
}

// publish sends a domain event. Failures are logged and never fail the request.
func (uc *AuthUC) publish(ctx context.Context, subject string, event *models.AuthEvent) {
	if err := uc.events.Publish(ctx, subject, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish auth event",
			logger.String("subject", subject),
			logger.Err(err))
	}
}

// issueOTP stores a fresh code. A cache outage is logged by the store and
// the flow carries on with the returned code.
func (uc *AuthUC) issueOTP(ctx context.Context, namespace, key string, ttl time.Duration) (string, error) {
	code, err := uc.otps.Issue(ctx, namespace, key, ttl)
	if err != nil && !errors.Is(err, otp.ErrCacheUnavailable) {
		return "", fmt.Errorf("failed to issue otp: %w", err)
	}
	return code, nil
}

const (
	defaultOTPTTL      = 10 * time.Minute
	defaultPhoneOTPTTL = 5 * time.Minute
	defaultProofTTL    = 30 * time.Minute
)

func (uc *AuthUC) emailOTPTTL() time.Duration {
	if uc.cfg.OTP.DefaultTTL > 0 {
		return uc.cfg.OTP.DefaultTTL
	}
	return defaultOTPTTL
}

func (uc *AuthUC) phoneOTPTTL() time.Duration {
	if uc.cfg.OTP.PhoneTTL > 0 {
		return uc.cfg.OTP.PhoneTTL
	}
	return defaultPhoneOTPTTL
}

func (uc *AuthUC) proofTTL() time.Duration {
	if uc.cfg.OTP.ProofTTL > 0 {
		return uc.cfg.OTP.ProofTTL
	}
	return defaultProofTTL
}

func expiryMinutes(ttl time.Duration) int {
	return int(ttl / time.Minute)
}
