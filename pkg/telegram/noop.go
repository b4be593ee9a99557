package telegram

import (
	"fmt"
)

// NoOpClientFactory is a ClientFactory for deployments where no Telegram
// transport has been wired in. Every login attempt fails with a clear
// error instead of panicking deep inside the service.
type NoOpClientFactory struct{}

// NewNoOpClientFactory creates a factory that refuses to build connections.
func NewNoOpClientFactory() ClientFactory {
	return &NoOpClientFactory{}
}

func (f *NoOpClientFactory) NewClient(creds CredentialFunc) (Client, error) {
	return nil, fmt.Errorf("telegram transport not configured")
}
