package email

//go:generate mockgen -destination=../../internal/mocks/mock_mailer.go -package=mocks github.com/SergeyYurch/blogger-auth/pkg/email Mailer

import "context"

// Mailer is the outbound notification boundary. A nil error means the message
// was accepted for delivery; callers only persist new codes on acceptance.
type Mailer interface {
	SendConfirmationMessage(ctx context.Context, to, code string) error
	SendRecoveryMessage(ctx context.Context, to, code string) error
}

type Config struct {
	APIKey          string
	FromName        string
	FromEmail       string
	ConfirmationURL string
	RecoveryURL     string
}
