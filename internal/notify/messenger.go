package notify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Messenger delivers a message to a channel or user on the platform.
type Messenger interface {
	Post(channel string, msg Message) error
}

// WebhookMessenger posts messages to a configured webhook endpoint as JSON.
type WebhookMessenger struct {
	url    string
	client *http.Client
	log    *zap.Logger
}

func NewWebhookMessenger(url string, log *zap.Logger) *WebhookMessenger {
	return &WebhookMessenger{
		url:    url,
		client: &http.Client{Timeout: 10 * time.Second},
		log:    log,
	}
}

type webhookPayload struct {
	Channel string  `json:"channel"`
	Text    string  `json:"text"`
	Blocks  []Block `json:"blocks,omitempty"`
}

// Post implements Messenger.
func (m *WebhookMessenger) Post(channel string, msg Message) error {
	body, err := json.Marshal(webhookPayload{
		Channel: channel,
		Text:    msg.Text,
		Blocks:  msg.Blocks,
	})
	if err != nil {
		return err
	}

	resp, err := m.client.Post(m.url, "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}

	m.log.Debug("message posted",
		zap.String("channel", channel),
		zap.Int("blocks", len(msg.Blocks)))
	return nil
}

// NopMessenger discards messages. Used when no webhook is configured and
// in tests that only care about the rest of the flow.
type NopMessenger struct{}

func (NopMessenger) Post(string, Message) error { return nil }
