package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/piresc/studentdeals/internal/pkg/jwt"
	"github.com/piresc/studentdeals/internal/pkg/logger"
	"github.com/piresc/studentdeals/internal/pkg/models"
	"github.com/piresc/studentdeals/internal/utils"
)

// IdentityContextKey is the echo context key holding the *models.Identity
const IdentityContextKey = "identity"

// AccessTokenVerifier verifies access tokens
type AccessTokenVerifier interface {
	VerifyAccessToken(token string) (*jwt.Claims, error)
}

// AuthFailure says why authentication failed. It is logged, never sent to clients.
type AuthFailure string

const (
	FailureMissingToken    AuthFailure = "missing_token"
	FailureMalformedHeader AuthFailure = "malformed_header"
	FailureInvalidToken    AuthFailure = "invalid_token"
)

// AuthResult holds either a verified identity or the reason there is none
type AuthResult struct {
	Identity *models.Identity
	Reason   AuthFailure
	Err      error
}

// OK reports whether authentication succeeded
func (r AuthResult) OK() bool {
	return r.Identity != nil
}

// bearerToken extracts the token from an Authorization header value.
// It returns an empty token when the header is absent or malformed.
func bearerToken(header string) (string, AuthFailure) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", FailureMissingToken
	}

	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", FailureMalformedHeader
	}

	token = strings.TrimSpace(token)
	if token == "" || strings.Contains(token, " ") {
		return "", FailureMalformedHeader
	}
	return token, ""
}

// Authenticate resolves the request identity. The verifier runs on every
// request, with an empty token when none could be extracted.
func Authenticate(c echo.Context, verifier AccessTokenVerifier) AuthResult {
	token, extractFailure := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))

	claims, err := verifier.VerifyAccessToken(token)
	if err != nil {
		reason := FailureInvalidToken
		if extractFailure != "" {
			reason = extractFailure
		}
		return AuthResult{Reason: reason, Err: err}
	}

	return AuthResult{Identity: claims.Identity()}
}

func setIdentity(c echo.Context, identity *models.Identity) {
	c.Set(IdentityContextKey, identity)
	c.Set(logger.UserIDContextKey, identity.UserID)
	SetUserID(c, identity.UserID)
}

// RequireAuth rejects requests without a valid access token with a uniform 401
func RequireAuth(verifier AccessTokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			result := Authenticate(c, verifier)
			if !result.OK() {
				logger.Debug("Authentication failed",
					logger.String("reason", string(result.Reason)),
					logger.String("path", c.Path()),
					logger.Err(result.Err))
				return utils.UnauthorizedResponse(c, "")
			}

			setIdentity(c, result.Identity)
			return next(c)
		}
	}
}

// OptionalAuth attaches the identity when the request carries a valid access token
// and lets every request through
func OptionalAuth(verifier AccessTokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if result := Authenticate(c, verifier); result.OK() {
				setIdentity(c, result.Identity)
			}
			return next(c)
		}
	}
}

// RequireRoles allows only identities holding one of roles. It must run after
// RequireAuth. A missing identity and a role mismatch both get 401.
func RequireRoles(roles ...models.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := IdentityFromContext(c)
			if !ok || !identity.HasRole(roles...) {
				if ok {
					logger.Debug("Role check failed",
						logger.String("user_id", identity.UserID),
						logger.String("role", string(identity.Role)),
						logger.String("path", c.Path()))
				}
				return utils.UnauthorizedResponse(c, "")
			}
			return next(c)
		}
	}
}

// IdentityFromContext returns the identity attached by RequireAuth or OptionalAuth
func IdentityFromContext(c echo.Context) (*models.Identity, bool) {
	identity, ok := c.Get(IdentityContextKey).(*models.Identity)
	return identity, ok && identity != nil
}
