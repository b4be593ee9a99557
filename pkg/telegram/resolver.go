package telegram

import (
	"path/filepath"
	"strconv"
	"strings"
	"unicode"
)

// ConfigKey identifies a configuration value the Telegram connection asks
// for while driving a login handshake.
type ConfigKey string

const (
	ConfigKeyAPIID            ConfigKey = "api_id"
	ConfigKeyAPIHash          ConfigKey = "api_hash"
	ConfigKeyPhoneNumber      ConfigKey = "phone_number"
	ConfigKeyVerificationCode ConfigKey = "verification_code"
	ConfigKeyPassword         ConfigKey = "password"
	ConfigKeySessionPathname  ConfigKey = "session_pathname"
)

// CredentialFunc answers a point-in-time configuration query from the
// connection layer. ok is false when the key is unrecognized or the value
// is not available yet. The handshake protocol queries lazily, in any
// order, and may re-query; answers must be pure lookups with no side
// effects.
type CredentialFunc func(key ConfigKey) (value string, ok bool)

// credentials builds the CredentialFunc for one login session. Static API
// identity comes from service configuration, the rest from the session.
func (s *AccountService) credentials(session *LoginSession) CredentialFunc {
	return func(key ConfigKey) (string, bool) {
		switch key {
		case ConfigKeyAPIID:
			return strconv.Itoa(s.config.APIID), true
		case ConfigKeyAPIHash:
			return s.config.APIHash, true
		case ConfigKeyPhoneNumber:
			return session.Phone, true
		case ConfigKeyVerificationCode:
			return session.Code()
		case ConfigKeyPassword:
			return session.Password()
		case ConfigKeySessionPathname:
			return filepath.Join(s.config.SessionDir, sessionFileName(session.Phone)), true
		default:
			return "", false
		}
	}
}

// sessionFileName derives the session file name from a phone number by
// keeping only its letters and digits.
func sessionFileName(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String() + ".session"
}
