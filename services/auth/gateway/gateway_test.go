package gateway

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/piresc/studentdeals/internal/pkg/circuitbreaker"
	"github.com/piresc/studentdeals/internal/pkg/constants"
	httpclient "github.com/piresc/studentdeals/internal/pkg/http"
	"github.com/piresc/studentdeals/internal/pkg/logger"
	"github.com/piresc/studentdeals/internal/pkg/models"
	"github.com/piresc/studentdeals/internal/pkg/retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

type fakeMessages struct {
	params *twilioApi.CreateMessageParams
	err    error
}

func (f *fakeMessages) CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error) {
	f.params = params
	if f.err != nil {
		return nil, f.err
	}
	sid := "SM123"
	return &twilioApi.ApiV2010Message{Sid: &sid}, nil
}

type published struct {
	subject string
	message interface{}
}

type fakePublisher struct {
	sent []published
	err  error
}

func (f *fakePublisher) PublishJSON(subject string, message interface{}) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, published{subject: subject, message: message})
	return nil
}

func TestWhatsAppGateway_NotConfigured(t *testing.T) {
	g := NewWhatsAppGateway(models.TwilioConfig{AccountSID: "AC123"})

	assert.False(t, g.Configured())
	err := g.SendOTP(context.Background(), "+2348012345678", "483920", 5)
	assert.ErrorIs(t, err, models.ErrProviderNotConfigured)
}

func TestWhatsAppGateway_SendOTP(t *testing.T) {
	api := &fakeMessages{}
	g := &WhatsAppGateway{api: api, from: whatsappAddress("+14155238886")}

	err := g.SendOTP(context.Background(), "+2348012345678", "483920", 5)

	require.NoError(t, err)
	require.NotNil(t, api.params)
	assert.Equal(t, "whatsapp:+14155238886", *api.params.From)
	assert.Equal(t, "whatsapp:+2348012345678", *api.params.To)
	assert.Contains(t, *api.params.Body, "483920")
	assert.Contains(t, *api.params.Body, "5 minutes")
}

func TestWhatsAppGateway_ProviderError(t *testing.T) {
	g := &WhatsAppGateway{api: &fakeMessages{err: errors.New("21211 invalid 'To' number")}, from: "whatsapp:+14155238886"}

	err := g.SendOTP(context.Background(), "+2348012345678", "483920", 5)

	assert.ErrorContains(t, err, "failed to send WhatsApp message")
	assert.NotErrorIs(t, err, models.ErrProviderNotConfigured)
}

func TestWhatsAppAddress(t *testing.T) {
	assert.Equal(t, "whatsapp:+2348012345678", whatsappAddress("+2348012345678"))
	assert.Equal(t, "whatsapp:+2348012345678", whatsappAddress("whatsapp:+2348012345678"))
}

func TestEmailGateway_SendOTP(t *testing.T) {
	pub := &fakePublisher{}
	g := NewEmailGateway(pub)

	err := g.SendOTP(context.Background(), "jane@unilag.edu.ng", "483920", 10, models.PurposeStudentSignup)

	require.NoError(t, err)
	require.Len(t, pub.sent, 1)
	assert.Equal(t, constants.SubjectEmailOTP, pub.sent[0].subject)
	assert.Equal(t, &models.EmailOTPMessage{
		To:            "jane@unilag.edu.ng",
		Code:          "483920",
		ExpiryMinutes: 10,
		Purpose:       models.PurposeStudentSignup,
	}, pub.sent[0].message)
}

func TestEmailGateway_Errors(t *testing.T) {
	err := NewEmailGateway(nil).SendOTP(context.Background(), "jane@unilag.edu.ng", "483920", 10, models.PurposePasswordReset)
	assert.ErrorIs(t, err, models.ErrProviderNotConfigured)

	err = NewEmailGateway(&fakePublisher{err: errors.New("nats: connection closed")}).
		SendOTP(context.Background(), "jane@unilag.edu.ng", "483920", 10, models.PurposePasswordReset)
	assert.ErrorContains(t, err, "failed to queue OTP email")
}

func TestEventGateway_Publish(t *testing.T) {
	pub := &fakePublisher{}
	g := NewEventGateway(pub)
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	g.now = func() time.Time { return fixed }

	event := &models.AuthEvent{UserID: "user-1"}
	require.NoError(t, g.Publish(context.Background(), constants.SubjectPhoneVerified, event))

	require.Len(t, pub.sent, 1)
	assert.Equal(t, constants.SubjectPhoneVerified, pub.sent[0].subject)
	assert.Equal(t, fixed, event.OccurredAt)
}

func TestEventGateway_DisabledDropsEvents(t *testing.T) {
	assert.NoError(t, NewEventGateway(nil).Publish(context.Background(), constants.SubjectPasswordChanged, &models.AuthEvent{}))
}

func newLookupGateway() *InstitutionGateway {
	l := logger.NewNopLogger()
	retrier := retry.New(retry.Config{
		MaxRetries:  1,
		BaseDelay:   time.Millisecond,
		MaxDelay:    time.Millisecond,
		Multiplier:  2,
		IsRetryable: httpclient.IsRetryable,
	}, l)
	return NewInstitutionGateway(httpclient.NewClient(time.Second, retrier, circuitbreaker.NewManager(l)))
}

func TestInstitutionGateway_LookupStudent(t *testing.T) {
	var gotQuery, gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		gotKey = r.Header.Get("X-API-Key")
		switch r.URL.Query().Get("student_id") {
		case "190401001":
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"found":true}`))
		case "missing":
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer srv.Close()

	lookupURL := srv.URL + "/students"
	apiKey := "registry-key"
	inst := &models.Institution{ID: "inst-unilag", Domain: "unilag.edu.ng", LookupURL: &lookupURL, APIKey: &apiKey}
	g := newLookupGateway()

	t.Run("Found", func(t *testing.T) {
		found, err := g.LookupStudent(context.Background(), inst, "190401001", "jane@unilag.edu.ng")

		require.NoError(t, err)
		assert.True(t, found)
		assert.Contains(t, gotQuery, "student_id=190401001")
		assert.Contains(t, gotQuery, "email=jane%40unilag.edu.ng")
		assert.Equal(t, "registry-key", gotKey)
	})

	t.Run("404 means not enrolled", func(t *testing.T) {
		found, err := g.LookupStudent(context.Background(), inst, "missing", "jane@unilag.edu.ng")

		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Server error", func(t *testing.T) {
		found, err := g.LookupStudent(context.Background(), inst, "boom", "jane@unilag.edu.ng")

		assert.Error(t, err)
		assert.False(t, found)
	})
}

func TestInstitutionGateway_NoLookupURL(t *testing.T) {
	found, err := newLookupGateway().LookupStudent(context.Background(), &models.Institution{ID: "inst-demo"}, "1", "a@b.edu")

	assert.ErrorIs(t, err, models.ErrProviderNotConfigured)
	assert.False(t, found)
}
