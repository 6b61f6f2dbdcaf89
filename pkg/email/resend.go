package email

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog/log"
)

// ResendMailer delivers confirmation and recovery messages through Resend.
type ResendMailer struct {
	client *resend.Client
	config *Config
}

func NewResendMailer(config *Config) (*ResendMailer, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("resend API key is required")
	}
	if config.FromEmail == "" {
		return nil, fmt.Errorf("from email is required")
	}

	return &ResendMailer{
		client: resend.NewClient(config.APIKey),
		config: config,
	}, nil
}

func (m *ResendMailer) SendConfirmationMessage(ctx context.Context, to, code string) error {
	link := fmt.Sprintf("%s?code=%s", m.config.ConfirmationURL, code)

	return m.send(ctx, to, "Confirm your registration",
		fmt.Sprintf("<p>To finish registration please follow the link below:</p><a href=%q>complete registration</a>", link))
}

func (m *ResendMailer) SendRecoveryMessage(ctx context.Context, to, code string) error {
	link := fmt.Sprintf("%s?recoveryCode=%s", m.config.RecoveryURL, code)

	return m.send(ctx, to, "Password recovery",
		fmt.Sprintf("<p>To set a new password please follow the link below:</p><a href=%q>recovery password</a>", link))
}

func (m *ResendMailer) send(ctx context.Context, to, subject, html string) error {
	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", m.config.FromName, m.config.FromEmail),
		To:      []string{to},
		Subject: subject,
		Html:    html,
	}

	sent, err := m.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("failed to send %q to %s: %w", subject, to, err)
	}

	log.Debug().Str("id", sent.Id).Str("to", to).Msg("email accepted for delivery")

	return nil
}
