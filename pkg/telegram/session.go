package telegram

import (
	"sync"

	"github.com/google/uuid"
)

// LoginSession is a pending login attempt awaiting a verification code.
// It exists from StartLogin until successful completion, and owns its
// connection until the account is promoted to the active registry.
type LoginSession struct {
	LoginID uuid.UUID
	Phone   string

	mu       sync.Mutex
	password string
	code     string
	client   Client
}

// NewLoginSession creates a session for the given phone. The password is
// optional and only used if the network demands a secondary factor.
func NewLoginSession(phone, password string) *LoginSession {
	return &LoginSession{
		LoginID:  uuid.New(),
		Phone:    phone,
		password: password,
	}
}

// SetCode stores the verification code supplied by the caller. The
// connection reads it back through the session's CredentialFunc.
func (s *LoginSession) SetCode(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.code = code
}

// Code returns the verification code, ok is false until one has been set.
func (s *LoginSession) Code() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.code == "" {
		return "", false
	}
	return s.code, true
}

// Password returns the secondary-factor password, ok is false if none was
// supplied at start.
func (s *LoginSession) Password() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.password == "" {
		return "", false
	}
	return s.password, true
}

func (s *LoginSession) setClient(client Client) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.client = client
}

// Client returns the connection owned by this session.
func (s *LoginSession) Client() Client {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.client
}

// LoginSessionRegistry is a concurrent keyed store of in-flight login
// attempts, keyed by login id.
type LoginSessionRegistry struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*LoginSession
}

// NewLoginSessionRegistry creates an empty login session registry.
func NewLoginSessionRegistry() *LoginSessionRegistry {
	return &LoginSessionRegistry{
		sessions: make(map[uuid.UUID]*LoginSession),
	}
}

// Get retrieves the pending session for the given login id.
func (r *LoginSessionRegistry) Get(loginID uuid.UUID) (*LoginSession, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[loginID]
	return session, ok
}

// Put stores a pending session under its login id.
func (r *LoginSessionRegistry) Put(session *LoginSession) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.LoginID] = session
}

// Remove discards the pending session for the given login id.
func (r *LoginSessionRegistry) Remove(loginID uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, loginID)
}

// Len returns the number of pending sessions.
func (r *LoginSessionRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
