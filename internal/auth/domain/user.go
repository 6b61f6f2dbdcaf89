package domain

import "time"

// EmailConfirmation tracks the confirmation code issued at registration and
// every timestamp a confirmation message was sent at. SentAt is the input to
// the resend cap and is cleared once the account is confirmed.
type EmailConfirmation struct {
	Code      string
	ExpiresAt time.Time
	Confirmed bool
	SentAt    []time.Time
}

// PasswordRecovery is present only while a recovery flow is in progress; a
// nil pointer on User means no recovery was requested.
type PasswordRecovery struct {
	Code      string
	ExpiresAt time.Time
}

type User struct {
	ID           string
	Login        string
	Email        string
	PasswordHash string
	PasswordSalt string
	CreatedAt    time.Time
	Confirmation EmailConfirmation
	Recovery     *PasswordRecovery
}
