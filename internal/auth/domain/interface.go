package domain

//go:generate mockgen -destination=../../mocks/mock_user_repository.go -package=mocks github.com/SergeyYurch/blogger-auth/internal/auth/domain UserRepository
//go:generate mockgen -destination=../../mocks/mock_session_repository.go -package=mocks github.com/SergeyYurch/blogger-auth/internal/auth/domain SessionRepository
//go:generate mockgen -destination=../../mocks/mock_attempt_repository.go -package=mocks github.com/SergeyYurch/blogger-auth/internal/auth/domain AttemptRepository

import (
	"context"
	"time"
)

// UserRepository is the credential store. Lookups return (nil, nil) when no
// record matches; mutations never leave partial state behind.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*User, error)
	GetByLoginOrEmail(ctx context.Context, loginOrEmail string) (*User, error)
	GetByConfirmationCode(ctx context.Context, code string) (*User, error)
	GetByRecoveryCode(ctx context.Context, code string) (*User, error)
	Create(ctx context.Context, user *User) error
	// SetConfirmed marks the account confirmed and clears the sent history.
	SetConfirmed(ctx context.Context, userID string) error
	// UpdateConfirmationCode replaces the code and expiry and appends sentAt
	// to the sent history.
	UpdateConfirmationCode(ctx context.Context, userID, code string, expiresAt, sentAt time.Time) error
	SetRecoveryCode(ctx context.Context, userID, code string, expiresAt time.Time) error
	UpdatePasswordAndClearRecovery(ctx context.Context, userID, passwordHash string) error
	Delete(ctx context.Context, userID string) error
}

// SessionRepository is the device-session registry. Every operation except
// DeleteByDeviceID and DeleteAllExcept purges expired rows before acting.
type SessionRepository interface {
	Save(ctx context.Context, session *DeviceSession) error
	// Update overwrites LastActiveAt/ExpiresAt for the matching device and
	// reports whether a row matched.
	Update(ctx context.Context, session *DeviceSession) (bool, error)
	GetByDeviceID(ctx context.Context, deviceID string) (*DeviceSession, error)
	GetAllByUserID(ctx context.Context, userID string) ([]DeviceSession, error)
	// DeleteByDeviceID reports whether a row existed.
	DeleteByDeviceID(ctx context.Context, deviceID string) (bool, error)
	DeleteAllExcept(ctx context.Context, deviceID, userID string) error
}

type AttemptRepository interface {
	DeleteOlderThan(ctx context.Context, cutoff time.Time) error
	CountByIPAndEndpoint(ctx context.Context, ip, endpoint string) (int, error)
	Save(ctx context.Context, attempt *AccessAttempt) error
}
