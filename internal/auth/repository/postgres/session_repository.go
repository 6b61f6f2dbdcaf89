package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/SergeyYurch/blogger-auth/internal/auth/domain"
)

type SessionRepository struct {
	db DB
}

func NewSessionRepository(db DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// purgeExpired removes rows past expiry. It runs inline before reads and
// writes instead of in a background sweep; the purge is monotonic, so racing
// with a concurrent request can never remove a row that request is about to
// legitimately use.
func (r *SessionRepository) purgeExpired(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `DELETE FROM device_sessions WHERE expires_at < $1`, time.Now())

	return err
}

func (r *SessionRepository) Save(ctx context.Context, session *domain.DeviceSession) error {
	if err := r.purgeExpired(ctx); err != nil {
		return err
	}

	// device_id is the primary key; a collision means the caller reused a
	// device id and surfaces as a constraint violation.
	_, err := r.db.Exec(ctx, `
		INSERT INTO device_sessions (device_id, user_id, ip, title, last_active_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, session.DeviceID, session.UserID, session.IP, session.Title,
		session.LastActiveAt, session.ExpiresAt)

	return err
}

func (r *SessionRepository) Update(ctx context.Context, session *domain.DeviceSession) (bool, error) {
	if err := r.purgeExpired(ctx); err != nil {
		return false, err
	}

	tag, err := r.db.Exec(ctx, `
		UPDATE device_sessions
		SET last_active_at = $2, expires_at = $3
		WHERE device_id = $1
	`, session.DeviceID, session.LastActiveAt, session.ExpiresAt)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}

func (r *SessionRepository) GetByDeviceID(ctx context.Context, deviceID string) (*domain.DeviceSession, error) {
	if err := r.purgeExpired(ctx); err != nil {
		return nil, err
	}

	row := r.db.QueryRow(ctx, `
		SELECT device_id, user_id, ip, title, last_active_at, expires_at
		FROM device_sessions
		WHERE device_id = $1
		LIMIT 1;
	`, deviceID)

	var session domain.DeviceSession

	err := row.Scan(&session.DeviceID, &session.UserID, &session.IP, &session.Title,
		&session.LastActiveAt, &session.ExpiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to get session by device id: %w", err)
	}

	return &session, nil
}

func (r *SessionRepository) GetAllByUserID(ctx context.Context, userID string) ([]domain.DeviceSession, error) {
	if err := r.purgeExpired(ctx); err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, `
		SELECT device_id, user_id, ip, title, last_active_at, expires_at
		FROM device_sessions
		WHERE user_id = $1;
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []domain.DeviceSession

	for rows.Next() {
		var session domain.DeviceSession
		if err := rows.Scan(&session.DeviceID, &session.UserID, &session.IP, &session.Title,
			&session.LastActiveAt, &session.ExpiresAt); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}

		sessions = append(sessions, session)
	}

	return sessions, rows.Err()
}

func (r *SessionRepository) DeleteByDeviceID(ctx context.Context, deviceID string) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM device_sessions WHERE device_id = $1`, deviceID)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}

func (r *SessionRepository) DeleteAllExcept(ctx context.Context, deviceID, userID string) error {
	_, err := r.db.Exec(ctx, `
		DELETE FROM device_sessions
		WHERE user_id = $2 AND device_id <> $1
	`, deviceID, userID)

	return err
}
