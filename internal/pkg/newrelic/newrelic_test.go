package newrelic

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/piresc/studentdeals/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitNewRelic_Disabled(t *testing.T) {
	assert.Nil(t, InitNewRelic(models.NewRelicConfig{Enabled: false, LicenseKey: "key"}))
	assert.Nil(t, InitNewRelic(models.NewRelicConfig{Enabled: true}))
}

func TestInstrumentHTTPRequest_WithoutTransaction(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	req, err := http.NewRequest(http.MethodGet, srv.URL, nil)
	require.NoError(t, err)

	resp, err := InstrumentHTTPRequest(context.Background(), req, func() (*http.Response, error) {
		return http.DefaultClient.Do(req)
	})
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestWithExternalSegment_WithoutTransaction(t *testing.T) {
	boom := errors.New("boom")

	err := WithExternalSegment(context.Background(), "twilio", "CreateMessage", "https://api.twilio.com", func() error {
		return boom
	})

	assert.ErrorIs(t, err, boom)
}
