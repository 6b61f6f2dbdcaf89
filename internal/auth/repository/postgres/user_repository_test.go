package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SergeyYurch/blogger-auth/internal/auth/domain"
	"github.com/SergeyYurch/blogger-auth/internal/auth/repository/postgres"
)

var userColumns = []string{
	"id", "login", "email", "password_hash", "password_salt", "created_at",
	"confirmation_code", "confirmation_expires_at", "is_confirmed", "confirmation_sent_at",
	"recovery_code", "recovery_expires_at",
}

func newUserRepo(t *testing.T) (*postgres.UserRepository, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})

	return postgres.NewUserRepository(mock), mock
}

func userRow(user *domain.User) *pgxmock.Rows {
	var (
		recoveryCode      *string
		recoveryExpiresAt *time.Time
	)

	if user.Recovery != nil {
		recoveryCode = &user.Recovery.Code
		recoveryExpiresAt = &user.Recovery.ExpiresAt
	}

	return pgxmock.NewRows(userColumns).AddRow(
		user.ID, user.Login, user.Email, user.PasswordHash, user.PasswordSalt, user.CreatedAt,
		user.Confirmation.Code, user.Confirmation.ExpiresAt, user.Confirmation.Confirmed,
		user.Confirmation.SentAt, recoveryCode, recoveryExpiresAt,
	)
}

func sampleUser() *domain.User {
	now := time.Now().UTC().Truncate(time.Second)

	return &domain.User{
		ID:           "user-1",
		Login:        "u1",
		Email:        "u1@x.com",
		PasswordHash: "hash",
		PasswordSalt: "salt",
		CreatedAt:    now,
		Confirmation: domain.EmailConfirmation{
			Code:      "code-1",
			ExpiresAt: now.Add(24 * time.Hour),
			Confirmed: false,
			SentAt:    []time.Time{now},
		},
	}
}

func TestUserRepository_GetByLoginOrEmail(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo, mock := newUserRepo(t)
		user := sampleUser()

		mock.ExpectQuery(`SELECT (.+) FROM users WHERE login = \$1 OR email = \$1`).
			WithArgs("u1").
			WillReturnRows(userRow(user))

		got, err := repo.GetByLoginOrEmail(context.Background(), "u1")

		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, user.ID, got.ID)
		assert.Equal(t, user.Confirmation.Code, got.Confirmation.Code)
		assert.Nil(t, got.Recovery)
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newUserRepo(t)

		mock.ExpectQuery(`SELECT (.+) FROM users WHERE login = \$1 OR email = \$1`).
			WithArgs("ghost").
			WillReturnError(pgx.ErrNoRows)

		got, err := repo.GetByLoginOrEmail(context.Background(), "ghost")

		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("database error", func(t *testing.T) {
		repo, mock := newUserRepo(t)

		mock.ExpectQuery(`SELECT (.+) FROM users WHERE login = \$1 OR email = \$1`).
			WithArgs("u1").
			WillReturnError(errors.New("connection refused"))

		got, err := repo.GetByLoginOrEmail(context.Background(), "u1")

		assert.Error(t, err)
		assert.Nil(t, got)
	})
}

func TestUserRepository_GetByRecoveryCode(t *testing.T) {
	repo, mock := newUserRepo(t)
	user := sampleUser()
	user.Recovery = &domain.PasswordRecovery{
		Code:      "rec-1",
		ExpiresAt: time.Now().UTC().Truncate(time.Second).Add(time.Hour),
	}

	mock.ExpectQuery(`SELECT (.+) FROM users WHERE recovery_code = \$1`).
		WithArgs("rec-1").
		WillReturnRows(userRow(user))

	got, err := repo.GetByRecoveryCode(context.Background(), "rec-1")

	require.NoError(t, err)
	require.NotNil(t, got.Recovery)
	assert.Equal(t, "rec-1", got.Recovery.Code)
	assert.True(t, got.Recovery.ExpiresAt.Equal(user.Recovery.ExpiresAt))
}

func TestUserRepository_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo, mock := newUserRepo(t)
		user := sampleUser()

		mock.ExpectExec(`INSERT INTO users`).
			WithArgs(user.ID, user.Login, user.Email, user.PasswordHash, user.PasswordSalt,
				user.CreatedAt, user.Confirmation.Code, user.Confirmation.ExpiresAt,
				user.Confirmation.Confirmed, user.Confirmation.SentAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		assert.NoError(t, repo.Create(context.Background(), user))
	})

	t.Run("database error", func(t *testing.T) {
		repo, mock := newUserRepo(t)
		user := sampleUser()

		mock.ExpectExec(`INSERT INTO users`).
			WithArgs(user.ID, user.Login, user.Email, user.PasswordHash, user.PasswordSalt,
				user.CreatedAt, user.Confirmation.Code, user.Confirmation.ExpiresAt,
				user.Confirmation.Confirmed, user.Confirmation.SentAt).
			WillReturnError(errors.New("unique violation"))

		assert.Error(t, repo.Create(context.Background(), user))
	})
}

func TestUserRepository_SetConfirmed(t *testing.T) {
	repo, mock := newUserRepo(t)

	mock.ExpectExec(`UPDATE users`).
		WithArgs("user-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	assert.NoError(t, repo.SetConfirmed(context.Background(), "user-1"))
}

func TestUserRepository_UpdateConfirmationCode(t *testing.T) {
	repo, mock := newUserRepo(t)
	expiresAt := time.Now().Add(24 * time.Hour)
	sentAt := time.Now()

	mock.ExpectExec(`UPDATE users`).
		WithArgs("user-1", "new-code", expiresAt, sentAt).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	assert.NoError(t, repo.UpdateConfirmationCode(context.Background(), "user-1", "new-code", expiresAt, sentAt))
}

func TestUserRepository_SetRecoveryCode(t *testing.T) {
	repo, mock := newUserRepo(t)
	expiresAt := time.Now().Add(24 * time.Hour)

	mock.ExpectExec(`UPDATE users`).
		WithArgs("user-1", "rec-1", expiresAt).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	assert.NoError(t, repo.SetRecoveryCode(context.Background(), "user-1", "rec-1", expiresAt))
}

func TestUserRepository_UpdatePasswordAndClearRecovery(t *testing.T) {
	repo, mock := newUserRepo(t)

	mock.ExpectExec(`UPDATE users`).
		WithArgs("user-1", "new-hash").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	assert.NoError(t, repo.UpdatePasswordAndClearRecovery(context.Background(), "user-1", "new-hash"))
}

func TestUserRepository_Delete(t *testing.T) {
	repo, mock := newUserRepo(t)

	mock.ExpectExec(`DELETE FROM users`).
		WithArgs("user-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	assert.NoError(t, repo.Delete(context.Background(), "user-1"))
}
