package telegram

import (
	"sync"
)

// AccountInfo describes a logged-in Telegram account as reported by the
// network at login time. Entries are never mutated after creation; a
// re-login of the same account overwrites its entry.
type AccountInfo struct {
	UserID      string `json:"user_id"`
	PhoneNumber string `json:"phone_number,omitempty"`
	Username    string `json:"username,omitempty"`
	FirstName   string `json:"first_name,omitempty"`
	LastName    string `json:"last_name,omitempty"`
}

// ActiveAccountRegistry maps account ids to their account info and live
// connections. Connections registered here are kept open for the process
// lifetime so inbound updates keep flowing.
type ActiveAccountRegistry struct {
	mu       sync.RWMutex
	accounts map[string]AccountInfo
	clients  map[string]Client
}

// NewActiveAccountRegistry creates an empty active account registry.
func NewActiveAccountRegistry() *ActiveAccountRegistry {
	return &ActiveAccountRegistry{
		accounts: make(map[string]AccountInfo),
		clients:  make(map[string]Client),
	}
}

// Register stores the account info and takes ownership of its live
// connection. An existing entry for the same account id is overwritten.
func (r *ActiveAccountRegistry) Register(info AccountInfo, client Client) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.accounts[info.UserID] = info
	r.clients[info.UserID] = client
}

// Accounts returns a snapshot of all registered account infos. No ordering
// is guaranteed.
func (r *ActiveAccountRegistry) Accounts() []AccountInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	accounts := make([]AccountInfo, 0, len(r.accounts))
	for _, info := range r.accounts {
		accounts = append(accounts, info)
	}
	return accounts
}

// Client returns the live connection for the given account id.
func (r *ActiveAccountRegistry) Client(accountID string) (Client, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	client, ok := r.clients[accountID]
	return client, ok
}

// Len returns the number of registered accounts.
func (r *ActiveAccountRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.accounts)
}
