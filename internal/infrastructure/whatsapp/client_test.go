package whatsapp_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andikasp/atk-intel/internal/domain"
	"github.com/andikasp/atk-intel/internal/infrastructure/whatsapp"
	"github.com/andikasp/atk-intel/pkg/config"
)

func newTestClient(serverURL, apiKey string) *whatsapp.Client {
	return whatsapp.NewClient(config.WhatsAppConfig{
		BaseURL:     serverURL,
		APIKey:      apiKey,
		CountryCode: "62",
	})
}

func TestSendMessage_Success(t *testing.T) {
	var gotAuth string
	var gotBody map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(map[string]any{"status": true, "id": "msg-1"})
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, "secret-key")
	err := c.SendMessage(context.Background(), "081234567890", "halo")

	require.NoError(t, err)
	assert.Equal(t, "secret-key", gotAuth)
	assert.Equal(t, "6281234567890", gotBody["target"], "phone must be normalized before sending")
	assert.Equal(t, "halo", gotBody["message"])
	assert.Equal(t, "62", gotBody["countryCode"])
}

func TestSendMessage_GatewayRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"status": false, "detail": "invalid target"})
	}))
	defer srv.Close()

	err := newTestClient(srv.URL, "secret-key").SendMessage(context.Background(), "0812", "halo")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrGatewayUnavailable)
	assert.Contains(t, err.Error(), "invalid target")
}

func TestSendMessage_HTTPErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "too many requests", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	err := newTestClient(srv.URL, "secret-key").SendMessage(context.Background(), "0812", "halo")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrGatewayUnavailable)
}

// Transport failures come back as errors, never as panics.
func TestSendMessage_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	err := newTestClient(srv.URL, "secret-key").SendMessage(context.Background(), "0812", "halo")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrGatewayUnavailable)
}

func TestSendMessage_MissingAPIKey(t *testing.T) {
	err := newTestClient("http://unused.invalid", "").SendMessage(context.Background(), "0812", "halo")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrGatewayUnavailable)
	assert.Contains(t, err.Error(), "WA_API_KEY")
}

func TestSendMessage_PhoneWithoutDigits(t *testing.T) {
	err := newTestClient("http://unused.invalid", "secret-key").SendMessage(context.Background(), "???", "halo")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
