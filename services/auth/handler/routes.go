package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/studentdeals/internal/pkg/middleware"
	"github.com/piresc/studentdeals/internal/pkg/models"
	"github.com/piresc/studentdeals/services/auth/handler/http"
)

// Handler coordinates the HTTP handlers of the auth service
type Handler struct {
	authHandler *http.AuthHandler
	verifier    middleware.AccessTokenVerifier
	otpLimiter  echo.MiddlewareFunc
}

// NewHandler creates and initializes all handlers.
// otpLimiter guards the OTP-issuing routes and may be nil.
func NewHandler(
	authHandler *http.AuthHandler,
	verifier middleware.AccessTokenVerifier,
	otpLimiter echo.MiddlewareFunc,
) *Handler {
	if otpLimiter == nil {
		otpLimiter = func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	return &Handler{
		authHandler: authHandler,
		verifier:    verifier,
		otpLimiter:  otpLimiter,
	}
}

// RegisterRoutes registers all routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	requireAuth := middleware.RequireAuth(h.verifier)

	// Public routes
	authGroup := e.Group("/auth")
	authGroup.POST("/register", h.authHandler.Register)
	authGroup.POST("/login", h.authHandler.Login)
	authGroup.POST("/refresh", h.authHandler.Refresh)
	authGroup.POST("/password/forgot", h.authHandler.ForgotPassword, h.otpLimiter)
	authGroup.POST("/password/reset", h.authHandler.ResetPassword)
	authGroup.POST("/student/otp/send", h.authHandler.SendStudentOTP, h.otpLimiter)
	authGroup.POST("/student/otp/verify", h.authHandler.VerifyStudentOTP)
	authGroup.POST("/student/verify", h.authHandler.VerifyStudent)

	// Optional auth
	authGroup.GET("/session", h.authHandler.Session, middleware.OptionalAuth(h.verifier))

	// Any authenticated role
	authGroup.GET("/me", h.authHandler.Me, requireAuth)
	authGroup.PUT("/password", h.authHandler.UpdatePassword, requireAuth)
	authGroup.POST("/phone/otp/send", h.authHandler.SendPhoneOTP, requireAuth, h.otpLimiter)
	authGroup.POST("/phone/otp/verify", h.authHandler.VerifyPhoneOTP, requireAuth)

	// Role gated
	adminGroup := e.Group("/admin", requireAuth, middleware.RequireRoles(models.RoleAdmin))
	adminGroup.GET("/ping", h.authHandler.RolePing)

	vendorGroup := e.Group("/vendor", requireAuth, middleware.RequireRoles(models.RoleVendor, models.RoleAdmin))
	vendorGroup.GET("/ping", h.authHandler.RolePing)
}
