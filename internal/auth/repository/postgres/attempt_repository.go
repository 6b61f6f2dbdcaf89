package postgres

import (
	"context"
	"time"

	"github.com/SergeyYurch/blogger-auth/internal/auth/domain"
)

type AttemptRepository struct {
	db DB
}

func NewAttemptRepository(db DB) *AttemptRepository {
	return &AttemptRepository{db: db}
}

func (r *AttemptRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) error {
	_, err := r.db.Exec(ctx, `DELETE FROM access_attempts WHERE created_at < $1`, cutoff)

	return err
}

func (r *AttemptRepository) CountByIPAndEndpoint(ctx context.Context, ip, endpoint string) (int, error) {
	var count int

	err := r.db.QueryRow(ctx, `
		SELECT count(*) FROM access_attempts WHERE ip = $1 AND endpoint = $2;
	`, ip, endpoint).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *AttemptRepository) Save(ctx context.Context, attempt *domain.AccessAttempt) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO access_attempts (ip, endpoint, created_at)
		VALUES ($1, $2, $3)
	`, attempt.IP, attempt.Endpoint, attempt.CreatedAt)

	return err
}
