package notification

import "sync"

// MockNotifier records every notification it receives. The mutex matters:
// the manager sends from separate goroutines.
type MockNotifier struct {
	mu                sync.Mutex
	SentNotifications []LoginCodeNotification
	SendErr           error
}

func (m *MockNotifier) Send(notification LoginCodeNotification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SendErr != nil {
		return m.SendErr
	}
	m.SentNotifications = append(m.SentNotifications, notification)
	return nil
}

// Sent returns a copy of the recorded notifications.
func (m *MockNotifier) Sent() []LoginCodeNotification {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]LoginCodeNotification(nil), m.SentNotifications...)
}
