package gateway

import (
	"context"
	"fmt"
	"strings"

	"github.com/piresc/studentdeals/internal/pkg/logger"
	"github.com/piresc/studentdeals/internal/pkg/models"
	nrpkg "github.com/piresc/studentdeals/internal/pkg/newrelic"
	"github.com/piresc/studentdeals/internal/utils"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

const twilioMessagesURL = "https://api.twilio.com/2010-04-01/Accounts/Messages.json"

// messageCreator is the part of the Twilio API the gateway uses
type messageCreator interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

// WhatsAppGateway sends passcodes through Twilio's WhatsApp channel
type WhatsAppGateway struct {
	api  messageCreator
	from string
}

// NewWhatsAppGateway creates a WhatsApp gateway. Missing credentials leave it
// unconfigured, and SendOTP then returns models.ErrProviderNotConfigured.
func NewWhatsAppGateway(cfg models.TwilioConfig) *WhatsAppGateway {
	if cfg.AccountSID == "" || cfg.AuthToken == "" || cfg.WhatsAppFrom == "" {
		logger.Warn("Twilio WhatsApp is not configured, phone OTPs will only be stored")
		return &WhatsAppGateway{}
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})

	return &WhatsAppGateway{
		api:  client.Api,
		from: whatsappAddress(cfg.WhatsAppFrom),
	}
}

// Configured reports whether a provider is wired
func (g *WhatsAppGateway) Configured() bool {
	return g.api != nil
}

// SendOTP sends code to phone, an E.164 number
func (g *WhatsAppGateway) SendOTP(ctx context.Context, phone, code string, expiryMinutes int) error {
	if !g.Configured() {
		return models.ErrProviderNotConfigured
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetFrom(g.from)
	params.SetTo(whatsappAddress(phone))
	params.SetBody(fmt.Sprintf("Your StudentDeals verification code is %s. It expires in %d minutes. Do not share it with anyone.", code, expiryMinutes))

	var sid string
	err := nrpkg.WithExternalSegment(ctx, "twilio", "CreateMessage", twilioMessagesURL, func() error {
		resp, err := g.api.CreateMessage(params)
		if err != nil {
			return err
		}
		if resp != nil && resp.Sid != nil {
			sid = *resp.Sid
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to send WhatsApp message: %w", err)
	}

	logger.InfoCtx(ctx, "WhatsApp OTP sent",
		logger.String("phone", utils.MaskPhoneNumber(phone)),
		logger.String("message_sid", sid))
	return nil
}

func whatsappAddress(number string) string {
	if strings.HasPrefix(number, "whatsapp:") {
		return number
	}
	return "whatsapp:" + number
}
