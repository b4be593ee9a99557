package notification

import (
	"encoding/json"
	"fmt"

	"github.com/tendant/tgvault/pkg/wshub"
)

// WebsocketNotifier pushes login-code notifications to all connected
// websocket subscribers through the hub.
type WebsocketNotifier struct {
	hub *wshub.Hub
}

// NewWebsocketNotifier creates a notifier backed by the given hub.
func NewWebsocketNotifier(hub *wshub.Hub) *WebsocketNotifier {
	return &WebsocketNotifier{hub: hub}
}

func (w *WebsocketNotifier) Send(notification LoginCodeNotification) error {
	payload, err := json.Marshal(struct {
		Type string `json:"type"`
		LoginCodeNotification
	}{
		Type:                  "login_code_received",
		LoginCodeNotification: notification,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	w.hub.Broadcast(payload)
	return nil
}
