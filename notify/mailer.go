// Package notify sends fire-and-forget email through SendGrid. Mail is
// a side channel: failures are logged and never surfaced to the
// request that triggered them.
package notify

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Mailer is the outbound email collaborator.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// SendGridMailer sends plain-text mail via the SendGrid API.
type SendGridMailer struct {
	apiKey string
	from   string
}

func NewSendGridMailer(apiKey, from string) *SendGridMailer {
	return &SendGridMailer{apiKey: apiKey, from: from}
}

func (m *SendGridMailer) Send(ctx context.Context, to, subject, body string) error {
	if m.apiKey == "" {
		return fmt.Errorf("sendgrid api key is empty")
	}
	if to == "" {
		return fmt.Errorf("to address is empty")
	}

	message := mail.NewSingleEmail(
		mail.NewEmail("Furlenco", m.from),
		subject,
		mail.NewEmail("", to),
		body,
		fmt.Sprintf("<pre>%s</pre>", body),
	)

	client := sendgrid.NewSendClient(m.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("sendgrid send error: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid send failed: status=%d body=%s", response.StatusCode, response.Body)
	}
	return nil
}

// NopMailer discards mail; used when no SENDGRID_API_KEY is configured
// and in tests.
type NopMailer struct{}

func (NopMailer) Send(ctx context.Context, to, subject, body string) error {
	slog.Debug("mail discarded (no mailer configured)", "to", to, "subject", subject)
	return nil
}

// FromEnv picks the SendGrid mailer when an API key is configured and
// the no-op mailer otherwise.
func FromEnv(apiKey, from string) Mailer {
	if apiKey == "" {
		return NopMailer{}
	}
	return NewSendGridMailer(apiKey, from)
}
