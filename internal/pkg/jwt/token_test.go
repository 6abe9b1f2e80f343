package jwt

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/piresc/studentdeals/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testAccessSecret  = "access-secret-0123456789abcdef0123456789"
	testRefreshSecret = "refresh-secret-0123456789abcdef012345678"
)

func getTestConfig() models.JWTConfig {
	return models.JWTConfig{
		AccessSecret:  testAccessSecret,
		RefreshSecret: testRefreshSecret,
		AccessTTL:     15 * time.Minute,
		RefreshTTL:    7 * 24 * time.Hour,
		Issuer:        "studentdeals-test",
	}
}

func newTestManager(t *testing.T, opts ...Option) *Manager {
	t.Helper()
	m, err := NewManager(getTestConfig(), opts...)
	require.NoError(t, err)
	return m
}

func testSubject() Subject {
	return Subject{
		UserID: uuid.NewString(),
		Email:  "jane@unilag.edu.ng",
		Role:   models.RoleStudent,
	}
}

func TestNewManager(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*models.JWTConfig)
		expectError bool
	}{
		{name: "Valid config", mutate: func(*models.JWTConfig) {}},
		{
			name:        "Short access secret",
			mutate:      func(c *models.JWTConfig) { c.AccessSecret = "short" },
			expectError: true,
		},
		{
			name:        "Short refresh secret",
			mutate:      func(c *models.JWTConfig) { c.RefreshSecret = strings.Repeat("x", MinSecretLength-1) },
			expectError: true,
		},
		{
			name:        "Empty secrets",
			mutate:      func(c *models.JWTConfig) { c.AccessSecret, c.RefreshSecret = "", "" },
			expectError: true,
		},
		{
			name:        "Identical secrets",
			mutate:      func(c *models.JWTConfig) { c.RefreshSecret = c.AccessSecret },
			expectError: true,
		},
		{
			name:   "Exactly minimum length",
			mutate: func(c *models.JWTConfig) { c.AccessSecret = strings.Repeat("a", MinSecretLength) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := getTestConfig()
			tt.mutate(&cfg)

			m, err := NewManager(cfg)

			if tt.expectError {
				assert.ErrorIs(t, err, ErrWeakSecret)
				assert.Nil(t, m)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, m)
			}
		})
	}
}

func TestNewManager_DefaultTTLs(t *testing.T) {
	cfg := getTestConfig()
	cfg.AccessTTL, cfg.RefreshTTL = 0, 0

	m, err := NewManager(cfg)

	require.NoError(t, err)
	assert.Equal(t, 15*time.Minute, m.accessTTL)
	assert.Equal(t, 7*24*time.Hour, m.refreshTTL)
}

func TestAccessToken_RoundTrip(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	m := newTestManager(t, WithClock(func() time.Time { return now }))
	sub := testSubject()

	token, err := m.IssueAccessToken(sub)
	require.NoError(t, err)
	assert.True(t, token.ExpiresAt.Equal(now.Add(15*time.Minute)))

	claims, err := m.VerifyAccessToken(token.Value)
	require.NoError(t, err)
	assert.Equal(t, sub.UserID, claims.UserID)
	assert.Equal(t, sub.Email, claims.Email)
	assert.Equal(t, sub.Role, claims.Role)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)
	assert.Equal(t, "studentdeals-test", claims.Issuer)
	assert.NotEmpty(t, claims.ID)
}

func TestRefreshToken_RoundTrip(t *testing.T) {
	m := newTestManager(t)
	sub := testSubject()

	token, err := m.IssueRefreshToken(sub)
	require.NoError(t, err)

	claims, err := m.VerifyRefreshToken(token.Value)
	require.NoError(t, err)
	assert.Equal(t, sub.UserID, claims.UserID)
	assert.Equal(t, TokenTypeRefresh, claims.TokenType)
}

func TestVerify_ExpiredWithClockSkew(t *testing.T) {
	issuedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	current := issuedAt
	m := newTestManager(t, WithClock(func() time.Time { return current }))

	access, err := m.IssueAccessToken(testSubject())
	require.NoError(t, err)
	refresh, err := m.IssueRefreshToken(testSubject())
	require.NoError(t, err)

	current = issuedAt.Add(14 * time.Minute)
	_, err = m.VerifyAccessToken(access.Value)
	assert.NoError(t, err)

	current = issuedAt.Add(16 * time.Minute)
	_, err = m.VerifyAccessToken(access.Value)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = m.VerifyRefreshToken(refresh.Value)
	assert.NoError(t, err)

	current = issuedAt.Add(8 * 24 * time.Hour)
	_, err = m.VerifyRefreshToken(refresh.Value)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_TokenKindsAreNotInterchangeable(t *testing.T) {
	m := newTestManager(t)

	pair, err := m.IssueTokenPair(testSubject())
	require.NoError(t, err)

	_, err = m.VerifyAccessToken(pair.Refresh.Value)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = m.VerifyRefreshToken(pair.Access.Value)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_RefreshClaimsSignedWithAccessSecret(t *testing.T) {
	m := newTestManager(t)

	// well-formed claims with the wrong kind, signed with the access secret
	claims := Claims{
		UserID:    uuid.NewString(),
		Email:     "vendor@shop.ng",
		Role:      models.RoleVendor,
		TokenType: TokenTypeRefresh,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "studentdeals-test",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testAccessSecret))
	require.NoError(t, err)

	_, err = m.VerifyAccessToken(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_InvalidInputs(t *testing.T) {
	m := newTestManager(t)

	token, err := m.IssueAccessToken(testSubject())
	require.NoError(t, err)

	parts := strings.Split(token.Value, ".")
	require.Len(t, parts, 3)
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	other, err := NewManager(models.JWTConfig{
		AccessSecret:  strings.Repeat("o", 40),
		RefreshSecret: strings.Repeat("p", 40),
		Issuer:        "studentdeals-test",
	})
	require.NoError(t, err)
	foreign, err := other.IssueAccessToken(testSubject())
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		UserID:    uuid.NewString(),
		TokenType: TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "Empty token", token: ""},
		{name: "Garbage", token: "not-a-token"},
		{name: "Tampered signature", token: tampered},
		{name: "Signed with another secret", token: foreign.Value},
		{name: "Unsigned token", token: noneToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := m.VerifyAccessToken(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
			assert.Nil(t, claims)
		})
	}
}

func TestVerify_WrongIssuer(t *testing.T) {
	m := newTestManager(t)

	cfg := getTestConfig()
	cfg.Issuer = "someone-else"
	other, err := NewManager(cfg)
	require.NoError(t, err)

	token, err := other.IssueAccessToken(testSubject())
	require.NoError(t, err)

	_, err = m.VerifyAccessToken(token.Value)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestClaims_Identity(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	m := newTestManager(t, WithClock(func() time.Time { return now }))
	sub := testSubject()

	token, err := m.IssueAccessToken(sub)
	require.NoError(t, err)
	claims, err := m.VerifyAccessToken(token.Value)
	require.NoError(t, err)

	identity := claims.Identity()
	assert.Equal(t, claims.ID, identity.ID)
	assert.Equal(t, sub.UserID, identity.UserID)
	assert.Equal(t, sub.Email, identity.Email)
	assert.Equal(t, models.RoleStudent, identity.Role)
	assert.True(t, identity.IssuedAt.Equal(now))
	assert.True(t, identity.ExpiresAt.Equal(now.Add(15*time.Minute)))
}
