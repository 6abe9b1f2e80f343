package auth

import (
	"context"

	"github.com/piresc/studentdeals/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/studentdeals/services/auth EmailSender,WhatsAppSender,InstitutionLookup,EventPublisher

// EmailSender delivers passcodes by email.
// It returns models.ErrProviderNotConfigured when no provider is wired.
type EmailSender interface {
	SendOTP(ctx context.Context, to, code string, expiryMinutes int, purpose string) error
}

// WhatsAppSender delivers passcodes over WhatsApp.
// It returns models.ErrProviderNotConfigured when no provider is wired.
type WhatsAppSender interface {
	SendOTP(ctx context.Context, phone, code string, expiryMinutes int) error
}

// InstitutionLookup asks an institution whether a student exists
type InstitutionLookup interface {
	LookupStudent(ctx context.Context, institution *models.Institution, studentID, email string) (bool, error)
}

// EventPublisher publishes auth domain events
type EventPublisher interface {
	Publish(ctx context.Context, subject string, event *models.AuthEvent) error
}
