package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/SergeyYurch/blogger-auth/config"
	"github.com/SergeyYurch/blogger-auth/internal/auth/domain"
	"github.com/SergeyYurch/blogger-auth/internal/auth/dto"
	autherror "github.com/SergeyYurch/blogger-auth/internal/errors"
	"github.com/SergeyYurch/blogger-auth/pkg/email"
	"github.com/SergeyYurch/blogger-auth/pkg/hash"
)

// AuthService is the orchestrator: login, token rotation, logout, device
// session management, email confirmation and password recovery. It owns no
// state of its own; everything lives in the credential store and the session
// registry.
type AuthService struct {
	users    domain.UserRepository
	sessions domain.SessionRepository
	tokens   TokenGenerator
	mailer   email.Mailer
	cfg      *config.Config
}

func NewAuthService(
	users domain.UserRepository,
	sessions domain.SessionRepository,
	tokens TokenGenerator,
	mailer email.Mailer,
	cfg *config.Config,
) *AuthService {
	return &AuthService{
		users:    users,
		sessions: sessions,
		tokens:   tokens,
		mailer:   mailer,
		cfg:      cfg,
	}
}

// Login verifies the credentials and opens a fresh device session. A new
// device id is generated on every login; there is no way back into a
// terminated session.
func (s *AuthService) Login(ctx context.Context, input dto.LoginInput) (*dto.TokenPair, error) {
	user, err := s.users.GetByLoginOrEmail(ctx, input.LoginOrEmail)
	if err != nil {
		return nil, err
	}
	// One uniform failure for unknown user, wrong password and unconfirmed
	// account.
	if user == nil || !user.Confirmation.Confirmed ||
		!hash.Verify(input.Password, user.PasswordSalt, user.PasswordHash) {
		return nil, autherror.ErrInvalidCredentials
	}

	deviceID := uuid.NewString()

	pair, claims, err := s.issueTokens(user.ID, deviceID, input.IP)
	if err != nil {
		return nil, err
	}

	session := &domain.DeviceSession{
		DeviceID:     deviceID,
		UserID:       user.ID,
		IP:           input.IP,
		Title:        input.Title,
		LastActiveAt: claims.IssuedAt.Time,
		ExpiresAt:    claims.ExpiresAt.Time,
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	return pair, nil
}

// Refresh rotates the token pair for the device bound to the presented
// refresh token. Rotation is one-time-use: the stored last-active timestamp
// matches only the most recently issued refresh token, so presenting an
// older, already-rotated token is rejected even before its absolute expiry.
func (s *AuthService) Refresh(ctx context.Context, input dto.RefreshInput) (*dto.TokenPair, error) {
	session, err := s.resolveSession(ctx, input.RefreshToken)
	if err != nil {
		return nil, err
	}

	pair, claims, err := s.issueTokens(session.UserID, session.DeviceID, input.IP)
	if err != nil {
		return nil, err
	}

	updated, err := s.sessions.Update(ctx, &domain.DeviceSession{
		DeviceID:     session.DeviceID,
		UserID:       session.UserID,
		LastActiveAt: claims.IssuedAt.Time,
		ExpiresAt:    claims.ExpiresAt.Time,
	})
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, autherror.ErrSessionNotFound
	}

	return pair, nil
}

// Logout terminates the session bound to the token. Only the signature and
// expiry are checked here; a second logout with the same token fails with
// ErrSessionNotFound, the observable "already logged out" behavior.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	claims, err := s.tokens.VerifyRefreshToken(refreshToken)
	if err != nil {
		return err
	}

	existed, err := s.sessions.DeleteByDeviceID(ctx, claims.DeviceID)
	if err != nil {
		return err
	}
	if !existed {
		return autherror.ErrSessionNotFound
	}

	return nil
}

// Register creates an unconfirmed account and sends the confirmation code.
func (s *AuthService) Register(ctx context.Context, input dto.RegisterInput) (*domain.User, error) {
	existing, err := s.users.GetByLoginOrEmail(ctx, input.Login)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, autherror.ErrLoginAlreadyInUse
	}

	existing, err = s.users.GetByLoginOrEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, autherror.ErrEmailAlreadyInUse
	}

	salt, err := hash.NewSalt()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &domain.User{
		ID:           uuid.NewString(),
		Login:        input.Login,
		Email:        input.Email,
		PasswordHash: hash.Password(input.Password, salt),
		PasswordSalt: salt,
		CreatedAt:    now,
		Confirmation: domain.EmailConfirmation{
			Code:      uuid.NewString(),
			ExpiresAt: now.Add(s.cfg.ConfirmationExpiry()),
			Confirmed: false,
			SentAt:    []time.Time{now},
		},
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	if err := s.mailer.SendConfirmationMessage(ctx, user.Email, user.Confirmation.Code); err != nil {
		return nil, err
	}

	return user, nil
}

// ConfirmEmail flips the account to confirmed exactly once. A reused,
// expired or unknown code fails uniformly.
func (s *AuthService) ConfirmEmail(ctx context.Context, code string) error {
	user, err := s.users.GetByConfirmationCode(ctx, code)
	if err != nil {
		return err
	}
	if user == nil || user.Confirmation.Confirmed || time.Now().After(user.Confirmation.ExpiresAt) {
		return autherror.ErrInvalidConfirmationCode
	}

	return s.users.SetConfirmed(ctx, user.ID)
}

// ResendConfirmation issues a fresh code for an unconfirmed account. The
// resend cap (more than ResendMaxEmails sends with the latest inside the
// cooldown) is checked before any code is generated or mail sent. The new
// code is persisted only after the mailer accepts the message.
func (s *AuthService) ResendConfirmation(ctx context.Context, emailAddr string) error {
	user, err := s.users.GetByLoginOrEmail(ctx, emailAddr)
	if err != nil {
		return err
	}
	if user == nil {
		return autherror.ErrUserNotFound
	}
	if user.Confirmation.Confirmed {
		return autherror.ErrAlreadyConfirmed
	}

	sent := user.Confirmation.SentAt
	if len(sent) > s.cfg.ResendMaxEmails &&
		time.Since(sent[len(sent)-1]) < s.cfg.ResendCooldown() {
		return autherror.ErrResendLimitExceeded
	}

	now := time.Now()
	code := uuid.NewString()

	if err := s.mailer.SendConfirmationMessage(ctx, user.Email, code); err != nil {
		return err
	}

	return s.users.UpdateConfirmationCode(ctx, user.ID, code, now.Add(s.cfg.ConfirmationExpiry()), now)
}

// PasswordRecovery reports success whether or not the email belongs to an
// account, to resist enumeration. A code is emitted and persisted only for a
// confirmed account, and only once the mailer accepts the message.
func (s *AuthService) PasswordRecovery(ctx context.Context, emailAddr string) error {
	user, err := s.users.GetByLoginOrEmail(ctx, emailAddr)
	if err != nil {
		return err
	}
	if user == nil || !user.Confirmation.Confirmed {
		return nil
	}

	code := uuid.NewString()

	if err := s.mailer.SendRecoveryMessage(ctx, user.Email, code); err != nil {
		return err
	}

	return s.users.SetRecoveryCode(ctx, user.ID, code, time.Now().Add(s.cfg.RecoveryExpiry()))
}

// ConfirmNewPassword validates the recovery code, recomputes the hash with
// the user's existing salt and clears the recovery state, making the code
// single-use.
func (s *AuthService) ConfirmNewPassword(ctx context.Context, input dto.NewPasswordInput) error {
	user, err := s.users.GetByRecoveryCode(ctx, input.RecoveryCode)
	if err != nil {
		return err
	}
	if user == nil || user.Recovery == nil ||
		user.Recovery.Code != input.RecoveryCode ||
		time.Now().After(user.Recovery.ExpiresAt) {
		return autherror.ErrInvalidRecoveryCode
	}

	return s.users.UpdatePasswordAndClearRecovery(ctx, user.ID, hash.Password(input.NewPassword, user.PasswordSalt))
}

// CurrentUser resolves the bearer access token into the caller's identity.
func (s *AuthService) CurrentUser(ctx context.Context, accessToken string) (*dto.MeOutput, error) {
	claims, err := s.tokens.VerifyAccessToken(accessToken)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrInvalidToken
	}

	return &dto.MeOutput{
		Email:  user.Email,
		Login:  user.Login,
		UserID: user.ID,
	}, nil
}

// ListDeviceSessions enumerates every live session of the caller's user.
// Expired rows may transiently appear until the registry's next purge; that
// lazy-consistency window is documented behavior, not a bug.
func (s *AuthService) ListDeviceSessions(ctx context.Context, refreshToken string) ([]dto.DeviceSessionOutput, error) {
	session, err := s.resolveSession(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	sessions, err := s.sessions.GetAllByUserID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.DeviceSessionOutput, 0, len(sessions))
	for _, sess := range sessions {
		out = append(out, dto.DeviceSessionOutput{
			IP:             sess.IP,
			Title:          sess.Title,
			LastActiveDate: sess.LastActiveAt.UTC().Format(time.RFC3339),
			DeviceID:       sess.DeviceID,
		})
	}

	return out, nil
}

// TerminateOtherSessions deletes every session of the caller's user except
// the one bound to the presented token.
func (s *AuthService) TerminateOtherSessions(ctx context.Context, refreshToken string) error {
	session, err := s.resolveSession(ctx, refreshToken)
	if err != nil {
		return err
	}

	return s.sessions.DeleteAllExcept(ctx, session.DeviceID, session.UserID)
}

// TerminateSession deletes one device session by id. An unknown device is
// reported distinctly from a device owned by another user; ownership is not
// an enumeration-sensitive check.
func (s *AuthService) TerminateSession(ctx context.Context, deviceID, refreshToken string) error {
	caller, err := s.resolveSession(ctx, refreshToken)
	if err != nil {
		return err
	}

	target, err := s.sessions.GetByDeviceID(ctx, deviceID)
	if err != nil {
		return err
	}
	if target == nil {
		return autherror.ErrDeviceNotFound
	}
	if target.UserID != caller.UserID {
		return autherror.ErrForeignSession
	}

	existed, err := s.sessions.DeleteByDeviceID(ctx, deviceID)
	if err != nil {
		return err
	}
	if !existed {
		return autherror.ErrDeviceNotFound
	}

	return nil
}

// resolveSession performs the full refresh-token check: valid signature and
// expiry, a live registry row for the device, same owner, and a last-active
// timestamp exactly equal to the token's IssuedAt. The equality check is the
// replay detector; a rotated-away token fails here.
func (s *AuthService) resolveSession(ctx context.Context, refreshToken string) (*domain.DeviceSession, error) {
	claims, err := s.tokens.VerifyRefreshToken(refreshToken)
	if err != nil {
		return nil, err
	}

	session, err := s.sessions.GetByDeviceID(ctx, claims.DeviceID)
	if err != nil {
		return nil, err
	}
	if session == nil || session.UserID != claims.UserID ||
		!session.LastActiveAt.Truncate(time.Second).Equal(claims.IssuedAt.Time) {
		if session != nil {
			log.Debug().Str("deviceId", claims.DeviceID).Msg("stale refresh token presented")
		}

		return nil, autherror.ErrInvalidToken
	}

	return session, nil
}

func (s *AuthService) issueTokens(userID, deviceID, ip string) (*dto.TokenPair, *RefreshClaims, error) {
	accessToken, err := s.tokens.CreateAccessToken(userID)
	if err != nil {
		return nil, nil, err
	}

	refreshToken, claims, err := s.tokens.CreateRefreshToken(userID, deviceID, ip)
	if err != nil {
		return nil, nil, err
	}

	return &dto.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, claims, nil
}
