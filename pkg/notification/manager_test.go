package notification

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func waitForSent(t *testing.T, notifier *MockNotifier, n int) []LoginCodeNotification {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if sent := notifier.Sent(); len(sent) >= n {
			return sent
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %d notifications, got %d", n, len(notifier.Sent()))
	return nil
}

func TestPublishLoginCodeFansOut(t *testing.T) {
	manager := NewManager()
	ws := &MockNotifier{}
	email := &MockNotifier{}
	manager.RegisterNotifier(WebsocketSystem, ws)
	manager.RegisterNotifier(EmailSystem, email)

	receivedAt := time.Now().UTC()
	manager.PublishLoginCode("+15551234567", "48213", receivedAt)

	for _, notifier := range []*MockNotifier{ws, email} {
		sent := waitForSent(t, notifier, 1)
		assert.Equal(t, "+15551234567", sent[0].Account)
		assert.Equal(t, "48213", sent[0].Code)
		assert.Equal(t, receivedAt, sent[0].ReceivedAt)
	}
}

func TestPublishLoginCodeWithNoNotifiers(t *testing.T) {
	manager := NewManager()
	// Must not block or panic.
	manager.PublishLoginCode("+15551234567", "48213", time.Now())
}

func TestNotifierErrorDoesNotAffectOthers(t *testing.T) {
	manager := NewManager()
	failing := &MockNotifier{SendErr: errors.New("smtp down")}
	working := &MockNotifier{}
	manager.RegisterNotifier(EmailSystem, failing)
	manager.RegisterNotifier(WebsocketSystem, working)

	manager.PublishLoginCode("+15551234567", "48213", time.Now())

	sent := waitForSent(t, working, 1)
	assert.Len(t, sent, 1)
	assert.Empty(t, failing.Sent())
}

func TestRegisterNotifierReplaces(t *testing.T) {
	manager := NewManager()
	first := &MockNotifier{}
	second := &MockNotifier{}
	manager.RegisterNotifier(WebsocketSystem, first)
	manager.RegisterNotifier(WebsocketSystem, second)

	manager.PublishLoginCode("+15551234567", "48213", time.Now())

	waitForSent(t, second, 1)
	assert.Empty(t, first.Sent())
}
