package telegram

import (
	"context"
)

// UserIdentity is the account identity reported by the Telegram network
// once a login completes.
type UserIdentity struct {
	ID        int64
	Phone     string
	Username  string
	FirstName string
	LastName  string
}

// UpdateTypeNewMessage marks an update that carries an inbound message.
const UpdateTypeNewMessage = "new_message"

// Update is a single event delivered by a live Telegram connection.
// Only new-message updates carry a Message; other update kinds are
// delivered with their type set and are ignored by this package.
type Update struct {
	Type    string
	Message *Message
}

// Message is the subset of an inbound Telegram message the login-code
// extraction pipeline needs.
type Message struct {
	// PeerID is the id of the peer the message was received from.
	PeerID int64
	Text   string
}

// UpdateBatch is one group of updates as delivered by the transport.
type UpdateBatch struct {
	Updates []Update
}

// Client is a live connection to the Telegram network. The wire protocol
// (encryption, session persistence, update delivery) lives outside this
// package; the connection is consumed as an opaque capability.
type Client interface {
	// DriveLogin advances the login handshake by one round trip. It returns
	// the authenticated user, or (nil, nil) when the network needs more
	// input (verification code, password) before the login can complete.
	// The connection answers its own configuration queries through the
	// CredentialFunc it was created with, lazily and possibly repeatedly.
	DriveLogin(ctx context.Context) (*UserIdentity, error)

	// OnUpdate registers the inbound update callback. The transport invokes
	// it asynchronously whenever it has data, for the lifetime of the
	// connection. Must be called before the first DriveLogin so codes
	// arriving during the handshake are not lost.
	OnUpdate(fn func(batch UpdateBatch))

	// Self reports the logged-in account identity, or nil before the login
	// has completed.
	Self() *UserIdentity

	Close() error
}

// ClientFactory constructs one Telegram connection per login attempt.
type ClientFactory interface {
	NewClient(creds CredentialFunc) (Client, error)
}
