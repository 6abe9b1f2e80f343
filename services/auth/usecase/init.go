package usecase

import (
	"github.com/piresc/studentdeals/internal/pkg/jwt"
	"github.com/piresc/studentdeals/internal/pkg/models"
	"github.com/piresc/studentdeals/internal/pkg/otp"
	"github.com/piresc/studentdeals/internal/pkg/password"
	"github.com/piresc/studentdeals/services/auth"
)

// AuthUC implements auth.AuthUC
type AuthUC struct {
	repo         auth.AuthRepo
	email        auth.EmailSender
	whatsapp     auth.WhatsAppSender
	institutions auth.InstitutionLookup
	events       auth.EventPublisher
	otps         *otp.Store
	tokens       *jwt.Manager
	passwords    *password.Service
	cfg          *models.Config
}

// NewAuthUC creates a new auth usecase instance
func NewAuthUC(
	cfg *models.Config,
	repo auth.AuthRepo,
	email auth.EmailSender,
	whatsapp auth.WhatsAppSender,
	institutions auth.InstitutionLookup,
	events auth.EventPublisher,
	otps *otp.Store,
	tokens *jwt.Manager,
	passwords *password.Service,
) *AuthUC {
	return &AuthUC{
		repo:         repo,
		email:        email,
		whatsapp:     whatsapp,
		institutions: institutions,
		events:       events,
		otps:         otps,
		tokens:       tokens,
		passwords:    passwords,
		cfg:          cfg,
	}
}
