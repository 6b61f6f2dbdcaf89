package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	autherror "github.com/SergeyYurch/blogger-auth/internal/errors"
)

func TestNewTokenService(t *testing.T) {
	ts := NewTokenService("access-secret", "refresh-secret", 15, 10080)

	assert.Equal(t, "access-secret", ts.AccessTokenSecret)
	assert.Equal(t, "refresh-secret", ts.RefreshTokenSecret)
	assert.Equal(t, 15*time.Minute, ts.AccessTokenExpiry)
	assert.Equal(t, 7*24*time.Hour, ts.RefreshTokenExpiry)
}

func TestTokenService_AccessTokenRoundTrip(t *testing.T) {
	ts := NewTokenService("access-secret", "refresh-secret", 15, 10080)

	token, err := ts.CreateAccessToken("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ts.VerifyAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, tokenKindAccess, claims.Kind)
}

func TestTokenService_RefreshTokenRoundTrip(t *testing.T) {
	ts := NewTokenService("access-secret", "refresh-secret", 15, 10080)

	token, created, err := ts.CreateRefreshToken("user-123", "device-1", "1.2.3.4")
	require.NoError(t, err)

	claims, err := ts.VerifyRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "device-1", claims.DeviceID)
	assert.Equal(t, "1.2.3.4", claims.IP)

	// The claims returned at creation and the claims decoded from the wire
	// must agree to the second; the session registry stores the former and
	// the staleness check compares against the latter.
	assert.True(t, created.IssuedAt.Time.Equal(claims.IssuedAt.Time))
	assert.True(t, created.ExpiresAt.Time.Equal(claims.ExpiresAt.Time))
	assert.Equal(t, ts.RefreshTokenExpiry, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

func TestTokenService_RejectsWrongKind(t *testing.T) {
	// Same secret for both kinds so only the kind claim can tell them apart.
	ts := NewTokenService("shared-secret", "shared-secret", 15, 10080)

	accessToken, err := ts.CreateAccessToken("user-123")
	require.NoError(t, err)

	refreshToken, _, err := ts.CreateRefreshToken("user-123", "device-1", "1.2.3.4")
	require.NoError(t, err)

	_, err = ts.VerifyRefreshToken(accessToken)
	assert.ErrorIs(t, err, autherror.ErrInvalidToken)

	_, err = ts.VerifyAccessToken(refreshToken)
	assert.ErrorIs(t, err, autherror.ErrInvalidToken)
}

func TestTokenService_RejectsWrongSecret(t *testing.T) {
	ts := NewTokenService("access-secret", "refresh-secret", 15, 10080)
	other := NewTokenService("other-access", "other-refresh", 15, 10080)

	token, err := ts.CreateAccessToken("user-123")
	require.NoError(t, err)

	_, err = other.VerifyAccessToken(token)
	assert.ErrorIs(t, err, autherror.ErrInvalidToken)
}

func TestTokenService_RejectsTampered(t *testing.T) {
	ts := NewTokenService("access-secret", "refresh-secret", 15, 10080)

	token, _, err := ts.CreateRefreshToken("user-123", "device-1", "1.2.3.4")
	require.NoError(t, err)

	_, err = ts.VerifyRefreshToken(token + "x")
	assert.ErrorIs(t, err, autherror.ErrInvalidToken)
}

func TestTokenService_RejectsExpired(t *testing.T) {
	// Negative TTLs mint tokens that are already past expiry.
	ts := NewTokenService("access-secret", "refresh-secret", -1, -1)

	accessToken, err := ts.CreateAccessToken("user-123")
	require.NoError(t, err)

	refreshToken, _, err := ts.CreateRefreshToken("user-123", "device-1", "1.2.3.4")
	require.NoError(t, err)

	_, err = ts.VerifyAccessToken(accessToken)
	assert.ErrorIs(t, err, autherror.ErrInvalidToken)

	_, err = ts.VerifyRefreshToken(refreshToken)
	assert.ErrorIs(t, err, autherror.ErrInvalidToken)
}
