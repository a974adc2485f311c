package di

import (
	"os"

	"fypet_backend/internal/feature/auth/usecase"
	"fypet_backend/internal/platform/email"
)

// NewEmailSender creates an EmailSender implementation.
// With SMTP_HOST set, it returns a real SMTP sender.
// Otherwise it falls back to a log-only sender for local development.
func NewEmailSender() usecase.EmailSender {
	baseURL := os.Getenv("APP_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:3000"
	}
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		return email.NewLogSender(baseURL)
	}
	return email.NewSMTPSender(
		host,
		os.Getenv("SMTP_PORT"),
		os.Getenv("SMTP_USERNAME"),
		os.Getenv("SMTP_PASSWORD"),
		baseURL,
	)
}
