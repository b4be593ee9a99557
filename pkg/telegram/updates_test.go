package telegram

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractLoginCode(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "code embedded in message",
			text: "Your login code: 48213. Do not share.",
			want: "48213",
		},
		{
			name: "no digits falls back to raw text",
			text: "Code expired",
			want: "Code expired",
		},
		{
			name: "run too short falls back to raw text",
			text: "Try again in 30 min",
			want: "Try again in 30 min",
		},
		{
			name: "run too long falls back to raw text",
			text: "Reference 123456789",
			want: "Reference 123456789",
		},
		{
			name: "eight digit code",
			text: "Login code: 12345678",
			want: "12345678",
		},
		{
			name: "longest run wins",
			text: "ref 1234 code 567890",
			want: "567890",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractLoginCode(tt.text))
		})
	}
}

func newListeningClient(t *testing.T) (*AccountService, *recordingPublisher, *fakeClient) {
	t.Helper()
	service, publisher := newTestService(t, &fakeClientFactory{})
	client := &fakeClient{
		selfFunc: func() *UserIdentity {
			return &UserIdentity{ID: 42, Phone: "+15551234567"}
		},
	}
	service.listenForUpdates(client)
	return service, publisher, client
}

func TestListenerPublishesServiceAccountCode(t *testing.T) {
	_, publisher, client := newListeningClient(t)

	client.deliver(UpdateBatch{Updates: []Update{
		{Type: UpdateTypeNewMessage, Message: &Message{
			PeerID: ServiceNotificationPeerID,
			Text:   "Your login code: 48213. Do not share.",
		}},
	}})

	published := publisher.waitForPublished(t, 1)
	require.Len(t, published, 1)
	assert.Equal(t, "+15551234567", published[0].Account)
	assert.Equal(t, "48213", published[0].Code)
	assert.WithinDuration(t, time.Now().UTC(), published[0].ReceivedAt, 5*time.Second)
}

func TestListenerSkipsIrrelevantUpdates(t *testing.T) {
	_, publisher, client := newListeningClient(t)

	client.deliver(UpdateBatch{Updates: []Update{
		// Not a new-message update.
		{Type: "user_status", Message: &Message{PeerID: ServiceNotificationPeerID, Text: "12345"}},
		// Message missing entirely.
		{Type: UpdateTypeNewMessage},
		// Not from the service account.
		{Type: UpdateTypeNewMessage, Message: &Message{PeerID: 1337, Text: "Your login code: 48213"}},
		// Empty body.
		{Type: UpdateTypeNewMessage, Message: &Message{PeerID: ServiceNotificationPeerID, Text: "   "}},
	}})

	// Follow with a real one to make sure nothing above was published.
	client.deliver(UpdateBatch{Updates: []Update{
		{Type: UpdateTypeNewMessage, Message: &Message{
			PeerID: ServiceNotificationPeerID,
			Text:   "Your login code: 48213. Do not share.",
		}},
	}})

	published := publisher.waitForPublished(t, 1)
	require.Len(t, published, 1)
	assert.Equal(t, "48213", published[0].Code)
}

func TestListenerReportsUnknownAccount(t *testing.T) {
	service, publisher := newTestService(t, &fakeClientFactory{})
	client := &fakeClient{} // Self returns nil before login completes
	service.listenForUpdates(client)

	client.deliver(UpdateBatch{Updates: []Update{
		{Type: UpdateTypeNewMessage, Message: &Message{
			PeerID: ServiceNotificationPeerID,
			Text:   "Your login code: 48213",
		}},
	}})

	published := publisher.waitForPublished(t, 1)
	assert.Equal(t, "unknown", published[0].Account)
}

func TestListenerSurvivesPanic(t *testing.T) {
	service, publisher := newTestService(t, &fakeClientFactory{})
	panicked := false
	client := &fakeClient{
		selfFunc: func() *UserIdentity {
			if !panicked {
				panicked = true
				panic("malformed event")
			}
			return &UserIdentity{ID: 42, Phone: "+15551234567"}
		},
	}
	service.listenForUpdates(client)

	message := &Message{
		PeerID: ServiceNotificationPeerID,
		Text:   "Your login code: 48213",
	}

	// First batch blows up in Self; it is dropped, not fatal.
	client.deliver(UpdateBatch{Updates: []Update{{Type: UpdateTypeNewMessage, Message: message}}})
	// Second batch goes through.
	client.deliver(UpdateBatch{Updates: []Update{{Type: UpdateTypeNewMessage, Message: message}}})

	published := publisher.waitForPublished(t, 1)
	require.Len(t, published, 1)
	assert.Equal(t, "+15551234567", published[0].Account)
}
