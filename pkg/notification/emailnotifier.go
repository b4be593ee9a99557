package notification

import (
	"crypto/tls"
	"fmt"
	"log/slog"

	"github.com/wneessen/go-mail"
)

// SMTPConfig configures the email notifier.
type SMTPConfig struct {
	Host     string
	Port     int
	TLS      bool
	Username string
	Password string
	From     string
	// To is the mailbox login-code notifications are forwarded to.
	To string
}

// EmailNotifier forwards login-code notifications to a configured mailbox.
type EmailNotifier struct {
	SMTPConfig SMTPConfig
	client     *mail.Client
}

// NewEmailNotifier creates an email notifier from SMTP configuration.
func NewEmailNotifier(config SMTPConfig) (*EmailNotifier, error) {
	opts := []mail.Option{
		mail.WithPort(config.Port),
		mail.WithTimeout(30),
	}

	// Only add authentication if username and password are provided
	if config.Username != "" && config.Password != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthLogin),
			mail.WithUsername(config.Username),
			mail.WithPassword(config.Password),
		)
	}

	if !config.TLS {
		opts = append(opts,
			mail.WithTLSConfig(&tls.Config{InsecureSkipVerify: true}),
			mail.WithTLSPolicy(mail.NoTLS),
		)
	} else {
		opts = append(opts,
			mail.WithTLSConfig(&tls.Config{InsecureSkipVerify: true}),
			mail.WithTLSPolicy(mail.TLSMandatory),
		)
	}

	client, err := mail.NewClient(config.Host, opts...)
	if err != nil {
		slog.Error("Failed to create mail client", "err", err)
		return nil, err
	}

	return &EmailNotifier{SMTPConfig: config, client: client}, nil
}

func (e *EmailNotifier) Send(notification LoginCodeNotification) error {
	if e.SMTPConfig.To == "" {
		return fmt.Errorf("email notification requires a 'To' address")
	}

	msg := mail.NewMsg()
	if err := msg.From(e.SMTPConfig.From); err != nil {
		return fmt.Errorf("failed to set from address: %w", err)
	}
	if err := msg.To(e.SMTPConfig.To); err != nil {
		return fmt.Errorf("failed to set to address: %w", err)
	}

	msg.Subject(fmt.Sprintf("Login code received for %s", notification.Account))
	msg.SetBodyString(mail.TypeTextPlain, fmt.Sprintf(
		"Account: %s\nCode: %s\nReceived at: %s\n",
		notification.Account,
		notification.Code,
		notification.ReceivedAt.Format("2006-01-02 15:04:05 MST"),
	))

	if err := e.client.DialAndSend(msg); err != nil {
		slog.Error("Failed to send email", "to", e.SMTPConfig.To, "err", err)
		return err
	}

	return nil
}
