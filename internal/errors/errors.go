package errors

import (
	"errors"
)

var (
	ErrTooManyRequests = errors.New("too many requests")

	// ErrInvalidCredentials and ErrInvalidToken are deliberately opaque: the
	// caller never learns which sub-check rejected the attempt.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")

	ErrSessionNotFound = errors.New("session not found")
	ErrDeviceNotFound  = errors.New("device session not found")
	ErrForeignSession  = errors.New("device session owned by another user")

	ErrLoginAlreadyInUse = errors.New("login already in use")
	ErrEmailAlreadyInUse = errors.New("email already in use")
	ErrUserNotFound      = errors.New("user not found")

	ErrInvalidConfirmationCode = errors.New("invalid confirmation code")
	ErrAlreadyConfirmed        = errors.New("email already confirmed")
	ErrResendLimitExceeded     = errors.New("resend limit exceeded")
	ErrInvalidRecoveryCode     = errors.New("invalid recovery code")
)
