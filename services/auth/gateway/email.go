package gateway

import (
	"context"
	"fmt"

	"github.com/piresc/studentdeals/internal/pkg/constants"
	"github.com/piresc/studentdeals/internal/pkg/logger"
	"github.com/piresc/studentdeals/internal/pkg/models"
	"github.com/piresc/studentdeals/internal/utils"
)

// Publisher publishes JSON messages. *nats.Client satisfies it.
type Publisher interface {
	PublishJSON(subject string, message interface{}) error
}

// EmailGateway hands passcodes to the notification service over NATS
type EmailGateway struct {
	publisher Publisher
}

// NewEmailGateway creates an email gateway. A nil publisher leaves it unconfigured.
func NewEmailGateway(publisher Publisher) *EmailGateway {
	return &EmailGateway{publisher: publisher}
}

// SendOTP queues an OTP email
func (g *EmailGateway) SendOTP(ctx context.Context, to, code string, expiryMinutes int, purpose string) error {
	if g.publisher == nil {
		return models.ErrProviderNotConfigured
	}

	msg := &models.EmailOTPMessage{
		To:            to,
		Code:          code,
		ExpiryMinutes: expiryMinutes,
		Purpose:       purpose,
	}
	if err := g.publisher.PublishJSON(constants.SubjectEmailOTP, msg); err != nil {
		return fmt.Errorf("failed to queue OTP email: %w", err)
	}

	logger.DebugCtx(ctx, "OTP email queued",
		logger.String("to", utils.MaskEmail(to)),
		logger.String("purpose", purpose))
	return nil
}
