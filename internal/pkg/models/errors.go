package models

import "errors"

// ErrUnauthorized is the single client-facing authentication failure
var ErrUnauthorized = errors.New("unauthorized")

// Reasons reported by student verification. They are shown to the caller.
const (
	ReasonDomainMismatch      = "domain mismatch"
	ReasonInstitutionNotFound = "institution not found"
	ReasonIdentityNotFound    = "identity not found"
	ReasonNotConfigured       = "verification not configured"
	ReasonInvalidOTP          = "invalid or expired otp"
	ReasonEmailNotVerified    = "email not verified"
)

// VerificationError reports a failed verification with a caller-visible reason
type VerificationError struct {
	Reason string
}

func (e *VerificationError) Error() string {
	return "verification failed: " + e.Reason
}

// NewVerificationError creates a VerificationError for reason
func NewVerificationError(reason string) *VerificationError {
	return &VerificationError{Reason: reason}
}

var (
	ErrUserNotFound          = errors.New("user not found")
	ErrEmailTaken            = errors.New("email already registered")
	ErrInvalidCredentials    = errors.New("invalid email or password")
	ErrInstitutionNotFound   = errors.New("institution not found")
	ErrRoleNotAllowed        = errors.New("role cannot self-register")
	ErrProviderNotConfigured = errors.New("delivery provider not configured")
)

// InvalidInputError reports a request that failed validation
type InvalidInputError struct {
	Message string
	Details []string
}

func (e *InvalidInputError) Error() string {
	return e.Message
}

// NewInvalidInputError creates an InvalidInputError
func NewInvalidInputError(message string, details ...string) *InvalidInputError {
	return &InvalidInputError{Message: message, Details: details}
}
