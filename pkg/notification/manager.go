package notification

import (
	"log/slog"
	"sync"
	"time"
)

// System represents a delivery transport (e.g. websocket, email).
type System string

const (
	WebsocketSystem System = "websocket"
	EmailSystem     System = "email"
)

// Manager fans login-code notifications out to all registered notifiers.
// It implements the publisher contract consumed by pkg/telegram: delivery
// is fire-and-forget, each notifier runs on its own goroutine, and send
// failures are logged and discarded, never surfaced to the caller.
type Manager struct {
	mu        sync.RWMutex
	notifiers map[System]Notifier
}

// NewManager creates a manager with no notifiers registered.
func NewManager() *Manager {
	return &Manager{
		notifiers: make(map[System]Notifier),
	}
}

// RegisterNotifier registers a notifier for a specific system, replacing
// any previous notifier for that system.
func (m *Manager) RegisterNotifier(system System, notifier Notifier) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notifiers[system] = notifier
}

// PublishLoginCode broadcasts an extracted login code to all subscribers.
func (m *Manager) PublishLoginCode(account, code string, receivedAt time.Time) {
	notification := LoginCodeNotification{
		Account:    account,
		Code:       code,
		ReceivedAt: receivedAt,
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	for system, notifier := range m.notifiers {
		go func(system System, notifier Notifier) {
			if err := notifier.Send(notification); err != nil {
				slog.Error("Failed sending login code notification", "system", system, "err", err)
			}
		}(system, notifier)
	}
}
