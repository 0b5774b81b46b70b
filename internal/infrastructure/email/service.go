package email

import (
	"context"
	"fmt"
	"net/smtp"

	"github.com/rs/zerolog/log"
)

// Message is the provider-facing shape of an outbound email.
type Message struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

// EmailService delivers a composed message. Implementations must honor
// context cancellation so a slow provider cannot stall callers.
type EmailService interface {
	Send(ctx context.Context, msg Message) error
}

type smtpEmailService struct {
	smtpAddr string
	from     string
}

// NewSMTPEmailService delivers through a plain SMTP relay. In development
// this points at a local mailcatcher.
func NewSMTPEmailService(host, port, from string) EmailService {
	return &smtpEmailService{
		smtpAddr: host + ":" + port,
		from:     from,
	}
}

func (s *smtpEmailService) Send(ctx context.Context, msg Message) error {
	if msg.Text == "" {
		msg.Text = StripHTML(msg.HTML)
	}

	payload := buildMIMEMessage(s.from, msg)

	// smtp.SendMail has no context support; run it on the side so the
	// caller's deadline still bounds the wait.
	done := make(chan error, 1)
	go func() {
		done <- smtp.SendMail(s.smtpAddr, nil, s.from, []string{msg.To}, payload)
	}()

	select {
	case err := <-done:
		if err != nil {
			log.Error().Err(err).Str("to", msg.To).Str("smtp_addr", s.smtpAddr).Msg("Failed to send email")
			return fmt.Errorf("send email: %w", err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("send email: %w", ctx.Err())
	}
}

// buildMIMEMessage assembles a multipart/alternative body so clients that
// cannot render HTML fall back to the text part.
func buildMIMEMessage(from string, msg Message) []byte {
	const boundary = "voidspace-alt-boundary"

	headers := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: multipart/alternative; boundary=%q\r\n\r\n",
		from, msg.To, msg.Subject, boundary,
	)

	body := fmt.Sprintf(
		"--%s\r\nContent-Type: text/plain; charset=UTF-8\r\n\r\n%s\r\n"+
			"--%s\r\nContent-Type: text/html; charset=UTF-8\r\n\r\n%s\r\n"+
			"--%s--\r\n",
		boundary, msg.Text, boundary, msg.HTML, boundary,
	)

	return []byte(headers + body)
}
