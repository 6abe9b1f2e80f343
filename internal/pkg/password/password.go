package password

import (
	"errors"
	"fmt"
	"unicode"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
)

const (
	// MinLength is the minimum number of characters in a password
	MinLength = 8
	// MaxBytes is the longest input bcrypt will hash without truncation
	MaxBytes = 72
)

// Policy violation messages returned in ValidationResult.Errors
const (
	ErrMsgTooShort    = "password must be at least 8 characters long"
	ErrMsgTooLong     = "password must be at most 72 bytes long"
	ErrMsgNoUppercase = "password must contain at least one uppercase letter"
	ErrMsgNoLowercase = "password must contain at least one lowercase letter"
	ErrMsgNoDigit     = "password must contain at least one number"
	ErrMsgNoSpecial   = "password must contain at least one special character"
)

// ErrPolicyViolation is returned by Hash for passwords that fail Validate
var ErrPolicyViolation = errors.New("password does not meet policy")

// ValidationResult lists every policy rule a password breaks
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// Service hashes and checks user passwords
type Service struct {
	cost int
}

// NewService creates a password service with the given bcrypt cost.
// Out-of-range costs fall back to bcrypt.DefaultCost.
func NewService(cost int) *Service {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Service{cost: cost}
}

// Hash returns a salted bcrypt hash of plaintext
func (s *Service) Hash(plaintext string) (string, error) {
	if len(plaintext) > MaxBytes {
		return "", fmt.Errorf("%w: %s", ErrPolicyViolation, ErrMsgTooLong)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), s.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether plaintext matches hash. Any error counts as a mismatch.
func (s *Service) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}

// Validate checks plaintext against the password policy
func (s *Service) Validate(plaintext string) ValidationResult {
	var errs []string

	if utf8.RuneCountInString(plaintext) < MinLength {
		errs = append(errs, ErrMsgTooShort)
	}
	if len(plaintext) > MaxBytes {
		errs = append(errs, ErrMsgTooLong)
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range plaintext {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}

	if !hasUpper {
		errs = append(errs, ErrMsgNoUppercase)
	}
	if !hasLower {
		errs = append(errs, ErrMsgNoLowercase)
	}
	if !hasDigit {
		errs = append(errs, ErrMsgNoDigit)
	}
	if !hasSpecial {
		errs = append(errs, ErrMsgNoSpecial)
	}

	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}
