// Package telegram orchestrates Telegram account logins and republishes
// login codes delivered to those accounts.
//
// A login is a multi-round handshake against the Telegram network: phone
// number first, then a one-time code, optionally a secondary password. The
// connection layer asks for these values lazily through a CredentialFunc;
// this package answers from the pending LoginSession. Connections that
// complete a login are kept open in the ActiveAccountRegistry so inbound
// updates keep flowing, and messages from Telegram's service account
// (777000) are scanned for login codes which are handed to a
// NotificationPublisher.
//
// # Basic Usage
//
//	import "github.com/tendant/tgvault/pkg/telegram"
//
//	service, err := telegram.NewAccountService(telegram.Config{
//		APIID:      apiID,
//		APIHash:    apiHash,
//		SessionDir: "sessions",
//	}, clientFactory, publisher)
//
//	// Begin a login; parks the attempt if a code is required
//	result, err := service.StartLogin(ctx, "+15551234567", "")
//
//	// Complete it once the user received the code
//	info, err := service.CompleteLogin(ctx, result.LoginID, "48213")
//
//	// Snapshot of logged-in accounts
//	accounts := service.ListAccounts()
//
// The transport-level Telegram protocol is out of scope: connections are
// consumed through the Client interface and built by a ClientFactory
// supplied at construction. NewNoOpClientFactory can stand in where no
// transport is wired.
//
// Pending sessions have no expiry; an abandoned AWAITING_CODE login
// occupies a registry entry until completed.
package telegram
