package telegram

import (
	"log/slog"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// ServiceNotificationPeerID is Telegram's fixed service account id used to
// deliver one-time login codes as ordinary messages.
const ServiceNotificationPeerID = 777000

// Login codes are numeric runs of this length range; anything else falls
// back to the raw message text.
const (
	loginCodeMinDigits = 5
	loginCodeMaxDigits = 8
)

// updateQueueSize bounds the per-connection update queue. A full queue
// drops the incoming batch rather than blocking the transport.
const updateQueueSize = 32

// listenForUpdates attaches the inbound update listener to a connection.
// Batches are handed off to a per-connection goroutine through a buffered
// channel, so a slow or failing publish on one account never delays
// processing for another. The goroutine lives as long as the connection;
// no teardown path exists.
func (s *AccountService) listenForUpdates(client Client) {
	updates := make(chan UpdateBatch, updateQueueSize)

	client.OnUpdate(func(batch UpdateBatch) {
		select {
		case updates <- batch:
		default:
			slog.Warn("Dropping update batch, listener queue is full")
		}
	})

	go func() {
		for batch := range updates {
			s.handleBatch(client, batch)
		}
	}()
}

// handleBatch inspects one batch of inbound updates and republishes any
// login codes sent by the service account. A malformed or unexpected
// batch must never crash the listener; at most this batch is lost.
func (s *AccountService) handleBatch(client Client, batch UpdateBatch) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Recovered from update batch handling", "panic", r)
		}
	}()

	for _, update := range batch.Updates {
		if update.Type != UpdateTypeNewMessage || update.Message == nil {
			continue
		}
		msg := update.Message
		if msg.PeerID != ServiceNotificationPeerID {
			continue
		}
		if strings.TrimSpace(msg.Text) == "" {
			continue
		}

		code := ExtractLoginCode(msg.Text)

		account := "unknown"
		if self := client.Self(); self != nil && self.Phone != "" {
			account = self.Phone
		}

		s.publisher.PublishLoginCode(account, code, time.Now().UTC())
	}
}

// ExtractLoginCode pulls a login code out of a service message: the
// longest run of digit characters, if its length is between 5 and 8
// inclusive. Otherwise the raw message text is returned as the code.
func ExtractLoginCode(text string) string {
	longest, start := "", -1
	for i, r := range text {
		if unicode.IsDigit(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			if run := text[start:i]; len(run) > len(longest) {
				longest = run
			}
			start = -1
		}
	}
	if start >= 0 {
		if run := text[start:]; len(run) > len(longest) {
			longest = run
		}
	}

	if n := utf8.RuneCountInString(longest); n >= loginCodeMinDigits && n <= loginCodeMaxDigits {
		return longest
	}
	return text
}
