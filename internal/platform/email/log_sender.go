package email

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// LogSender writes verification emails to the log instead of sending them.
// It is used in development when no SMTP relay is configured.
type LogSender struct {
	baseURL string
}

// NewLogSender creates a new LogSender.
func NewLogSender(baseURL string) *LogSender {
	return &LogSender{baseURL: strings.TrimRight(baseURL, "/")}
}

// SendVerificationEmail logs the verification link. It never fails.
func (s *LogSender) SendVerificationEmail(ctx context.Context, toEmail, userName, token string) error {
	link := fmt.Sprintf("%s/verify-email?token=%s", s.baseURL, token)
	slog.Info("[EMAIL] verification email (not sent, log sender)",
		"to", toEmail,
		"user", userName,
		"link", link,
	)
	return nil
}
