package nats

import (
	"encoding/json"
	"testing"
	"time"

	natsserver "github.com/nats-io/nats-server/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	t.Run("Invalid address", func(t *testing.T) {
		client, err := NewClient("invalid://address", "auth-service-test")
		assert.Error(t, err)
		assert.Nil(t, client)
		assert.Contains(t, err.Error(), "failed to connect to NATS server")
	})

	t.Run("Unreachable server", func(t *testing.T) {
		client, err := NewClient("nats://127.0.0.1:1", "auth-service-test")
		assert.Error(t, err)
		assert.Nil(t, client)
	})
}

func TestClient_CloseWithoutConnection(t *testing.T) {
	c := &Client{}
	assert.NotPanics(t, c.Close)
}

func TestClient_PublishJSON(t *testing.T) {
	opts := natsserver.DefaultTestOptions
	opts.Port = -1
	srv := natsserver.RunServer(&opts)
	defer srv.Shutdown()

	client, err := NewClient(srv.ClientURL(), "auth-service-test")
	require.NoError(t, err)
	defer client.Close()

	sub, err := client.GetConn().SubscribeSync("auth.test")
	require.NoError(t, err)

	require.NoError(t, client.PublishJSON("auth.test", map[string]string{"user_id": "42"}))
	require.NoError(t, client.Ping(time.Second))

	msg, err := sub.NextMsg(time.Second)
	require.NoError(t, err)

	var got map[string]string
	require.NoError(t, json.Unmarshal(msg.Data, &got))
	assert.Equal(t, "42", got["user_id"])
}

func TestClient_PublishJSONMarshalError(t *testing.T) {
	opts := natsserver.DefaultTestOptions
	opts.Port = -1
	srv := natsserver.RunServer(&opts)
	defer srv.Shutdown()

	client, err := NewClient(srv.ClientURL(), "auth-service-test")
	require.NoError(t, err)
	defer client.Close()

	err = client.PublishJSON("auth.test", make(chan int))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to marshal message")
}
