package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/piresc/studentdeals/internal/pkg/models"
)

// MinSecretLength is the minimum signing secret size in bytes
const MinSecretLength = 32

// TokenType distinguishes access tokens from refresh tokens
type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

var (
	// ErrInvalidToken is returned for any token that fails verification
	ErrInvalidToken = errors.New("invalid token")
	// ErrWeakSecret is returned at startup when a signing secret is too short or reused
	ErrWeakSecret = errors.New("weak jwt secret")
)

// Claims is the signed claim set.
// Clients may decode these claims for display, but they are only
// authoritative after VerifyAccessToken or VerifyRefreshToken succeeds.
type Claims struct {
	UserID    string      `json:"userId"`
	Email     string      `json:"email"`
	Role      models.Role `json:"role"`
	TokenType TokenType   `json:"typ"`
	jwt.RegisteredClaims
}

// Subject is the identity embedded in a new token
type Subject struct {
	UserID string
	Email  string
	Role   models.Role
}

// Token is a signed token with its expiry
type Token struct {
	Value     string
	ExpiresAt time.Time
}

// TokenPair is an access token with its matching refresh token
type TokenPair struct {
	Access  Token
	Refresh Token
}

// Manager issues and verifies access and refresh tokens
type Manager struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	issuer        string
	now           func() time.Time
}

// Option configures a Manager
type Option func(*Manager)

// WithClock overrides the time source
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		m.now = now
	}
}

// NewManager creates a token manager. It refuses to build one from secrets
// shorter than MinSecretLength bytes or from identical access and refresh secrets.
func NewManager(cfg models.JWTConfig, opts ...Option) (*Manager, error) {
	if len(cfg.AccessSecret) < MinSecretLength {
		return nil, fmt.Errorf("%w: access secret must be at least %d bytes", ErrWeakSecret, MinSecretLength)
	}
	if len(cfg.RefreshSecret) < MinSecretLength {
		return nil, fmt.Errorf("%w: refresh secret must be at least %d bytes", ErrWeakSecret, MinSecretLength)
	}
	if cfg.AccessSecret == cfg.RefreshSecret {
		return nil, fmt.Errorf("%w: access and refresh secrets must differ", ErrWeakSecret)
	}

	m := &Manager{
		accessSecret:  []byte(cfg.AccessSecret),
		refreshSecret: []byte(cfg.RefreshSecret),
		accessTTL:     cfg.AccessTTL,
		refreshTTL:    cfg.RefreshTTL,
		issuer:        cfg.Issuer,
		now:           time.Now,
	}
	if m.accessTTL <= 0 {
		m.accessTTL = 15 * time.Minute
	}
	if m.refreshTTL <= 0 {
		m.refreshTTL = 7 * 24 * time.Hour
	}

	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// IssueAccessToken signs a short-lived access token for sub
func (m *Manager) IssueAccessToken(sub Subject) (Token, error) {
	return m.issue(sub, TokenTypeAccess, m.accessSecret, m.accessTTL)
}

// IssueRefreshToken signs a long-lived refresh token for sub
func (m *Manager) IssueRefreshToken(sub Subject) (Token, error) {
	return m.issue(sub, TokenTypeRefresh, m.refreshSecret, m.refreshTTL)
}

// IssueTokenPair signs both an access and a refresh token for sub
func (m *Manager) IssueTokenPair(sub Subject) (TokenPair, error) {
	access, err := m.IssueAccessToken(sub)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := m.IssueRefreshToken(sub)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{Access: access, Refresh: refresh}, nil
}

// VerifyAccessToken verifies tokenString as an access token
func (m *Manager) VerifyAccessToken(tokenString string) (*Claims, error) {
	return m.verify(tokenString, TokenTypeAccess, m.accessSecret)
}

// VerifyRefreshToken verifies tokenString as a refresh token
func (m *Manager) VerifyRefreshToken(tokenString string) (*Claims, error) {
	return m.verify(tokenString, TokenTypeRefresh, m.refreshSecret)
}

func (m *Manager) issue(sub Subject, typ TokenType, secret []byte, ttl time.Duration) (Token, error) {
	now := m.now()
	expiresAt := now.Add(ttl)

	claims := Claims{
		UserID:    sub.UserID,
		Email:     sub.Email,
		Role:      sub.Role,
		TokenType: typ,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   sub.UserID,
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return Token{}, fmt.Errorf("failed to sign %s token: %w", typ, err)
	}

	// NumericDate truncates to seconds
	return Token{Value: signed, ExpiresAt: claims.ExpiresAt.Time}, nil
}

func (m *Manager) verify(tokenString string, typ TokenType, secret []byte) (*Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)

	claims := &Claims{}
	if _, err := parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return secret, nil
	}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	now := m.now()
	if !claims.VerifyExpiresAt(now, true) {
		return nil, fmt.Errorf("%w: token is expired", ErrInvalidToken)
	}
	if !claims.VerifyNotBefore(now, false) {
		return nil, fmt.Errorf("%w: token is not valid yet", ErrInvalidToken)
	}
	if m.issuer != "" && !claims.VerifyIssuer(m.issuer, true) {
		return nil, fmt.Errorf("%w: unexpected issuer", ErrInvalidToken)
	}
	if claims.TokenType != typ {
		return nil, fmt.Errorf("%w: expected %s token", ErrInvalidToken, typ)
	}
	if claims.UserID == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}

	return claims, nil
}

// Identity projects verified claims onto the per-request identity
func (c *Claims) Identity() *models.Identity {
	identity := &models.Identity{
		ID:     c.ID,
		UserID: c.UserID,
		Email:  c.Email,
		Role:   c.Role,
	}
	if c.IssuedAt != nil {
		identity.IssuedAt = c.IssuedAt.Time
	}
	if c.ExpiresAt != nil {
		identity.ExpiresAt = c.ExpiresAt.Time
	}
	return identity
}
