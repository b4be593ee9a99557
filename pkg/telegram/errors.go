package telegram

import "errors"

// Common errors surfaced to callers of AccountService.
var (
	// ErrPhoneRequired is returned when StartLogin is called with an empty
	// phone number.
	ErrPhoneRequired = errors.New("phone number is required")

	// ErrLoginNotFound is returned when a login id has no pending session:
	// it never existed, was already completed, or is a stale replayed id.
	ErrLoginNotFound = errors.New("invalid or expired login id")

	// ErrLoginIncomplete is returned when the network rejects the supplied
	// code, or demands information the session does not have. The pending
	// session is left intact and may be retried with corrected input.
	ErrLoginIncomplete = errors.New("could not complete login")
)
