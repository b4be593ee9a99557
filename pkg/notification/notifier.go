package notification

import "time"

// LoginCodeNotification is the payload broadcast to subscribers when a
// login code arrives on one of the managed Telegram accounts.
type LoginCodeNotification struct {
	Account    string    `json:"account"`
	Code       string    `json:"code"`
	ReceivedAt time.Time `json:"received_at"`
}

// Notifier delivers a login-code notification over one transport.
type Notifier interface {
	Send(notification LoginCodeNotification) error
}
