package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/piresc/studentdeals/internal/pkg/logger"
	"github.com/piresc/studentdeals/internal/pkg/models"
)

// EventGateway publishes auth events over NATS
type EventGateway struct {
	publisher Publisher
	now       func() time.Time
}

// NewEventGateway creates an event gateway. With a nil publisher events are dropped.
func NewEventGateway(publisher Publisher) *EventGateway {
	return &EventGateway{publisher: publisher, now: time.Now}
}

// Publish sends event on subject
func (g *EventGateway) Publish(ctx context.Context, subject string, event *models.AuthEvent) error {
	if g.publisher == nil {
		logger.DebugCtx(ctx, "Event publishing disabled, dropping event", logger.String("subject", subject))
		return nil
	}

	if event.OccurredAt.IsZero() {
		event.OccurredAt = g.now().UTC()
	}
	if err := g.publisher.PublishJSON(subject, event); err != nil {
		return fmt.Errorf("failed to publish %s: %w", subject, err)
	}
	return nil
}
