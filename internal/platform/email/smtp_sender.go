// Package email provides EmailSender implementations for the auth feature.
package email

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
)

// SMTPSender sends verification emails through a plain SMTP relay.
type SMTPSender struct {
	host     string
	port     string
	username string
	password string
	from     string
	baseURL  string // public URL the verification link points at
}

// NewSMTPSender creates a new SMTPSender.
// baseURL is the externally reachable application URL, e.g. https://fypet.example.com.
func NewSMTPSender(host, port, username, password, baseURL string) *SMTPSender {
	return &SMTPSender{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     username,
		baseURL:  strings.TrimRight(baseURL, "/"),
	}
}

// SendVerificationEmail sends the verification link to the user.
// The link expires 24 hours after issuance (enforced server-side).
func (s *SMTPSender) SendVerificationEmail(ctx context.Context, toEmail, userName, token string) error {
	link := fmt.Sprintf("%s/verify-email?token=%s", s.baseURL, token)

	var b strings.Builder
	fmt.Fprintf(&b, "From: FyPet <%s>\r\n", s.from)
	fmt.Fprintf(&b, "To: %s\r\n", toEmail)
	fmt.Fprintf(&b, "Subject: FyPet - Verificacao de Email\r\n")
	fmt.Fprintf(&b, "MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n")
	fmt.Fprintf(&b, "Ola %s,\r\n\r\n", userName)
	fmt.Fprintf(&b, "Obrigado por se cadastrar no FyPet! Para ativar sua conta, acesse:\r\n\r\n%s\r\n\r\n", link)
	fmt.Fprintf(&b, "Este link expira em 24 horas.\r\n")
	fmt.Fprintf(&b, "Se voce nao se cadastrou no FyPet, ignore este email.\r\n")

	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	addr := s.host + ":" + s.port

	done := make(chan error, 1)
	go func() {
		done <- smtp.SendMail(addr, auth, s.from, []string{toEmail}, []byte(b.String()))
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("failed to send verification email: %w", err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
