package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/SergeyYurch/blogger-auth/internal/auth/domain"
)

type UserRepository struct {
	db DB
}

func NewUserRepository(db DB) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, login, email, password_hash, password_salt, created_at,
		confirmation_code, confirmation_expires_at, is_confirmed, confirmation_sent_at,
		recovery_code, recovery_expires_at`

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1 LIMIT 1;`, userColumns)

	return r.scanUser(r.db.QueryRow(ctx, query, id))
}

func (r *UserRepository) GetByLoginOrEmail(ctx context.Context, loginOrEmail string) (*domain.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE login = $1 OR email = $1 LIMIT 1;`, userColumns)

	return r.scanUser(r.db.QueryRow(ctx, query, loginOrEmail))
}

func (r *UserRepository) GetByConfirmationCode(ctx context.Context, code string) (*domain.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE confirmation_code = $1 LIMIT 1;`, userColumns)

	return r.scanUser(r.db.QueryRow(ctx, query, code))
}

func (r *UserRepository) GetByRecoveryCode(ctx context.Context, code string) (*domain.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE recovery_code = $1 LIMIT 1;`, userColumns)

	return r.scanUser(r.db.QueryRow(ctx, query, code))
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO users (id, login, email, password_hash, password_salt, created_at,
			confirmation_code, confirmation_expires_at, is_confirmed, confirmation_sent_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, user.ID, user.Login, user.Email, user.PasswordHash, user.PasswordSalt, user.CreatedAt,
		user.Confirmation.Code, user.Confirmation.ExpiresAt, user.Confirmation.Confirmed,
		user.Confirmation.SentAt)

	return err
}

func (r *UserRepository) SetConfirmed(ctx context.Context, userID string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users
		SET is_confirmed = TRUE, confirmation_sent_at = '{}'
		WHERE id = $1
	`, userID)

	return err
}

func (r *UserRepository) UpdateConfirmationCode(ctx context.Context, userID, code string, expiresAt, sentAt time.Time) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users
		SET confirmation_code = $2,
			confirmation_expires_at = $3,
			confirmation_sent_at = array_append(confirmation_sent_at, $4)
		WHERE id = $1
	`, userID, code, expiresAt, sentAt)

	return err
}

func (r *UserRepository) SetRecoveryCode(ctx context.Context, userID, code string, expiresAt time.Time) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users
		SET recovery_code = $2, recovery_expires_at = $3
		WHERE id = $1
	`, userID, code, expiresAt)

	return err
}

func (r *UserRepository) UpdatePasswordAndClearRecovery(ctx context.Context, userID, passwordHash string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users
		SET password_hash = $2, recovery_code = NULL, recovery_expires_at = NULL
		WHERE id = $1
	`, userID, passwordHash)

	return err
}

func (r *UserRepository) Delete(ctx context.Context, userID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, userID)

	return err
}

func (r *UserRepository) scanUser(row pgx.Row) (*domain.User, error) {
	var (
		user              domain.User
		recoveryCode      *string
		recoveryExpiresAt *time.Time
	)

	err := row.Scan(
		&user.ID, &user.Login, &user.Email, &user.PasswordHash, &user.PasswordSalt,
		&user.CreatedAt, &user.Confirmation.Code, &user.Confirmation.ExpiresAt,
		&user.Confirmation.Confirmed, &user.Confirmation.SentAt,
		&recoveryCode, &recoveryExpiresAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to scan user: %w", err)
	}

	if recoveryCode != nil && recoveryExpiresAt != nil {
		user.Recovery = &domain.PasswordRecovery{
			Code:      *recoveryCode,
			ExpiresAt: *recoveryExpiresAt,
		}
	}

	return &user, nil
}
