package telegram

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NotificationPublisher broadcasts extracted login codes to subscribers.
// Delivery is fire-and-forget and best-effort; implementations must not
// block the caller.
type NotificationPublisher interface {
	PublishLoginCode(account, code string, receivedAt time.Time)
}

// Config holds the static Telegram API identity and the directory where
// the connection layer persists its session files.
type Config struct {
	APIID      int
	APIHash    string
	SessionDir string
}

// Login status values returned by StartLogin.
const (
	StatusLoggedIn     = "logged_in"
	StatusCodeRequired = "code_required"
)

// LoginStartResult is the outcome of StartLogin. LoginID is the opaque
// correlation handle for a later CompleteLogin call.
type LoginStartResult struct {
	LoginID uuid.UUID `json:"login_id"`
	Status  string    `json:"status"`
}

// AccountService orchestrates Telegram account logins and keeps completed
// connections alive to receive further updates.
type AccountService struct {
	config    Config
	factory   ClientFactory
	publisher NotificationPublisher

	pending  *LoginSessionRegistry
	accounts *ActiveAccountRegistry
}

// NewAccountService creates the account service and ensures the session
// storage directory exists.
func NewAccountService(config Config, factory ClientFactory, publisher NotificationPublisher) (*AccountService, error) {
	if err := os.MkdirAll(config.SessionDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create session directory: %w", err)
	}

	return &AccountService{
		config:    config,
		factory:   factory,
		publisher: publisher,
		pending:   NewLoginSessionRegistry(),
		accounts:  NewActiveAccountRegistry(),
	}, nil
}

// StartLogin begins a login for the given phone number. If a previously
// persisted session is still valid the login completes immediately and the
// account is registered; otherwise the attempt is parked awaiting a
// verification code. The password is optional and only consulted if the
// network demands a secondary factor.
func (s *AccountService) StartLogin(ctx context.Context, phone, password string) (LoginStartResult, error) {
	if strings.TrimSpace(phone) == "" {
		return LoginStartResult{}, ErrPhoneRequired
	}

	session := NewLoginSession(phone, password)

	client, err := s.factory.NewClient(s.credentials(session))
	if err != nil {
		return LoginStartResult{}, fmt.Errorf("failed to create telegram client: %w", err)
	}
	session.setClient(client)

	// Subscribe before driving the handshake so codes arriving during the
	// login round trips are not lost.
	s.listenForUpdates(client)

	user, err := client.DriveLogin(ctx)
	if err != nil {
		return LoginStartResult{}, fmt.Errorf("failed to drive login: %w", err)
	}

	if user != nil {
		s.registerAccount(client, user)
		return LoginStartResult{LoginID: session.LoginID, Status: StatusLoggedIn}, nil
	}

	s.pending.Put(session)
	return LoginStartResult{LoginID: session.LoginID, Status: StatusCodeRequired}, nil
}

// CompleteLogin supplies the verification code for a pending login and
// re-drives the handshake. On success the account and its connection are
// registered and the pending session is discarded. On ErrLoginIncomplete
// the session is retained and may be retried with a corrected code.
func (s *AccountService) CompleteLogin(ctx context.Context, loginID uuid.UUID, code string) (AccountInfo, error) {
	session, ok := s.pending.Get(loginID)
	if !ok {
		return AccountInfo{}, ErrLoginNotFound
	}

	session.SetCode(code)

	user, err := session.Client().DriveLogin(ctx)
	if err != nil {
		return AccountInfo{}, fmt.Errorf("failed to drive login: %w", err)
	}
	if user == nil {
		return AccountInfo{}, ErrLoginIncomplete
	}

	info := s.registerAccount(session.Client(), user)
	s.pending.Remove(loginID)
	return info, nil
}

// ListAccounts returns a snapshot of all logged-in accounts.
func (s *AccountService) ListAccounts() []AccountInfo {
	return s.accounts.Accounts()
}

// registerAccount promotes a connection to the active registry under the
// network-reported account id.
func (s *AccountService) registerAccount(client Client, user *UserIdentity) AccountInfo {
	info := AccountInfo{
		UserID:      strconv.FormatInt(user.ID, 10),
		PhoneNumber: user.Phone,
		Username:    user.Username,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
	}
	s.accounts.Register(info, client)
	return info
}
