package notify

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestWebhookMessengerPost(t *testing.T) {
	var got webhookPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	m := NewWebhookMessenger(srv.URL, zap.NewNop())
	msg := Message{Text: "hello"}
	msg.Blocks = append(msg.Blocks, section("*hi*"))

	require.NoError(t, m.Post("U123", msg))
	require.Equal(t, "U123", got.Channel)
	require.Equal(t, "hello", got.Text)
	require.Len(t, got.Blocks, 1)
}

func TestWebhookMessengerErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "channel_not_found", http.StatusNotFound)
	}))
	defer srv.Close()

	m := NewWebhookMessenger(srv.URL, zap.NewNop())
	err := m.Post("U123", Message{Text: "hello"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "404")
}

func TestNopMessenger(t *testing.T) {
	require.NoError(t, NopMessenger{}.Post("U123", Message{Text: "x"}))
}
