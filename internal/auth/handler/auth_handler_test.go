package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SergeyYurch/blogger-auth/config"
	"github.com/SergeyYurch/blogger-auth/internal/auth/domain"
	"github.com/SergeyYurch/blogger-auth/internal/auth/dto"
	"github.com/SergeyYurch/blogger-auth/internal/auth/handler"
	"github.com/SergeyYurch/blogger-auth/internal/auth/service"
	"github.com/SergeyYurch/blogger-auth/internal/mocks"
	"github.com/SergeyYurch/blogger-auth/pkg/constant"
	"github.com/SergeyYurch/blogger-auth/pkg/hash"
	"github.com/SergeyYurch/blogger-auth/pkg/validator"
)

type handlerFixture struct {
	app      *fiber.App
	users    *mocks.MockUserRepository
	sessions *mocks.MockSessionRepository
	tokens   *mocks.MockTokenGenerator
	mailer   *mocks.MockMailer
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &handlerFixture{
		users:    mocks.NewMockUserRepository(ctrl),
		sessions: mocks.NewMockSessionRepository(ctrl),
		tokens:   mocks.NewMockTokenGenerator(ctrl),
		mailer:   mocks.NewMockMailer(ctrl),
	}

	cfg := &config.Config{
		ConfirmationExpiryHours: 24,
		RecoveryExpiryHours:     24,
		ResendMaxEmails:         10,
		ResendCooldownMin:       5,
	}
	authService := service.NewAuthService(f.users, f.sessions, f.tokens, f.mailer, cfg)

	f.app = fiber.New()
	attempts := mocks.NewMockAttemptRepository(ctrl)
	attempts.EXPECT().DeleteOlderThan(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	attempts.EXPECT().CountByIPAndEndpoint(gomock.Any(), gomock.Any(), gomock.Any()).Return(0, nil).AnyTimes()
	attempts.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	handler.RegisterRoutes(f.app,
		handler.NewAuthHandler(authService, validator.New()),
		handler.NewSecurityHandler(authService),
		service.NewRateLimiter(attempts, &config.Config{ThrottleWindowSec: 10, ThrottleMaxAttempts: 5}))

	return f
}

func jsonRequest(method, target string, payload any) *http.Request {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	return req
}

func withRefreshCookie(req *http.Request, token string) *http.Request {
	req.AddCookie(&http.Cookie{Name: constant.RefreshTokenCookie, Value: token})

	return req
}

func refreshCookie(resp *http.Response) *http.Cookie {
	for _, cookie := range resp.Cookies() {
		if cookie.Name == constant.RefreshTokenCookie {
			return cookie
		}
	}

	return nil
}

func testClaims(userID, deviceID string) *service.RefreshClaims {
	issuedAt := time.Now().UTC().Truncate(time.Second)

	return &service.RefreshClaims{
		UserID:   userID,
		DeviceID: deviceID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(7 * 24 * time.Hour)),
		},
	}
}

func TestLoginEndpoint(t *testing.T) {
	t.Run("success sets refresh cookie", func(t *testing.T) {
		f := newHandlerFixture(t)

		salt, err := hash.NewSalt()
		require.NoError(t, err)
		user := &domain.User{
			ID:           "user-1",
			Login:        "u1",
			Email:        "u1@x.com",
			PasswordHash: hash.Password("secret1", salt),
			PasswordSalt: salt,
			Confirmation: domain.EmailConfirmation{Confirmed: true},
		}

		f.users.EXPECT().GetByLoginOrEmail(gomock.Any(), "u1").Return(user, nil)
		f.tokens.EXPECT().CreateAccessToken("user-1").Return("access-1", nil)
		f.tokens.EXPECT().CreateRefreshToken("user-1", gomock.Any(), gomock.Any()).
			Return("refresh-1", testClaims("user-1", "device-1"), nil)
		f.sessions.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		resp, err := f.app.Test(jsonRequest("POST", "/api/v1/auth/login",
			dto.LoginInput{LoginOrEmail: "u1", Password: "secret1"}))
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var body map[string]string
		raw, _ := io.ReadAll(resp.Body)
		require.NoError(t, json.Unmarshal(raw, &body))
		assert.Equal(t, "access-1", body["accessToken"])
		// The refresh token travels only in the cookie.
		assert.NotContains(t, body, "refreshToken")

		cookie := refreshCookie(resp)
		require.NotNil(t, cookie)
		assert.Equal(t, "refresh-1", cookie.Value)
		assert.True(t, cookie.HttpOnly)
		assert.True(t, cookie.Secure)
	})

	t.Run("wrong credentials", func(t *testing.T) {
		f := newHandlerFixture(t)

		f.users.EXPECT().GetByLoginOrEmail(gomock.Any(), "u1").Return(nil, nil)

		resp, err := f.app.Test(jsonRequest("POST", "/api/v1/auth/login",
			dto.LoginInput{LoginOrEmail: "u1", Password: "secret1"}))
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("malformed body", func(t *testing.T) {
		f := newHandlerFixture(t)

		req := httptest.NewRequest("POST", "/api/v1/auth/login", bytes.NewReader([]byte("{")))
		req.Header.Set("Content-Type", "application/json")

		resp, err := f.app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("missing password", func(t *testing.T) {
		f := newHandlerFixture(t)

		resp, err := f.app.Test(jsonRequest("POST", "/api/v1/auth/login",
			dto.LoginInput{LoginOrEmail: "u1"}))
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestRefreshEndpoint(t *testing.T) {
	t.Run("missing cookie", func(t *testing.T) {
		f := newHandlerFixture(t)

		resp, err := f.app.Test(httptest.NewRequest("POST", "/api/v1/auth/refresh-token", nil))
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("rotates the cookie", func(t *testing.T) {
		f := newHandlerFixture(t)
		claims := testClaims("user-1", "device-1")
		session := &domain.DeviceSession{
			DeviceID:     "device-1",
			UserID:       "user-1",
			LastActiveAt: claims.IssuedAt.Time,
			ExpiresAt:    claims.ExpiresAt.Time,
		}

		f.tokens.EXPECT().VerifyRefreshToken("R1").Return(claims, nil)
		f.sessions.EXPECT().GetByDeviceID(gomock.Any(), "device-1").Return(session, nil)
		f.tokens.EXPECT().CreateAccessToken("user-1").Return("access-2", nil)
		f.tokens.EXPECT().CreateRefreshToken("user-1", "device-1", gomock.Any()).
			Return("R2", testClaims("user-1", "device-1"), nil)
		f.sessions.EXPECT().Update(gomock.Any(), gomock.Any()).Return(true, nil)

		req := withRefreshCookie(httptest.NewRequest("POST", "/api/v1/auth/refresh-token", nil), "R1")
		resp, err := f.app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		cookie := refreshCookie(resp)
		require.NotNil(t, cookie)
		assert.Equal(t, "R2", cookie.Value)
	})

	t.Run("stale token", func(t *testing.T) {
		f := newHandlerFixture(t)
		claims := testClaims("user-1", "device-1")

		f.tokens.EXPECT().VerifyRefreshToken("R1").Return(claims, nil)
		f.sessions.EXPECT().GetByDeviceID(gomock.Any(), "device-1").Return(nil, nil)

		req := withRefreshCookie(httptest.NewRequest("POST", "/api/v1/auth/refresh-token", nil), "R1")
		resp, err := f.app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
}

func TestLogoutEndpoint(t *testing.T) {
	t.Run("missing cookie", func(t *testing.T) {
		f := newHandlerFixture(t)

		resp, err := f.app.Test(httptest.NewRequest("POST", "/api/v1/auth/logout", nil))
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("success clears the cookie", func(t *testing.T) {
		f := newHandlerFixture(t)

		f.tokens.EXPECT().VerifyRefreshToken("R1").Return(testClaims("user-1", "device-1"), nil)
		f.sessions.EXPECT().DeleteByDeviceID(gomock.Any(), "device-1").Return(true, nil)

		req := withRefreshCookie(httptest.NewRequest("POST", "/api/v1/auth/logout", nil), "R1")
		resp, err := f.app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

		cookie := refreshCookie(resp)
		require.NotNil(t, cookie)
		assert.Empty(t, cookie.Value)
	})

	t.Run("already logged out", func(t *testing.T) {
		f := newHandlerFixture(t)

		f.tokens.EXPECT().VerifyRefreshToken("R1").Return(testClaims("user-1", "device-1"), nil)
		f.sessions.EXPECT().DeleteByDeviceID(gomock.Any(), "device-1").Return(false, nil)

		req := withRefreshCookie(httptest.NewRequest("POST", "/api/v1/auth/logout", nil), "R1")
		resp, err := f.app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
}

func TestRegistrationEndpoint(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := newHandlerFixture(t)

		f.users.EXPECT().GetByLoginOrEmail(gomock.Any(), "u1").Return(nil, nil)
		f.users.EXPECT().GetByLoginOrEmail(gomock.Any(), "u1@x.com").Return(nil, nil)
		f.users.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		f.mailer.EXPECT().SendConfirmationMessage(gomock.Any(), "u1@x.com", gomock.Any()).Return(nil)

		resp, err := f.app.Test(jsonRequest("POST", "/api/v1/auth/registration",
			dto.RegisterInput{Login: "u1", Email: "u1@x.com", Password: "secret1"}))
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	})

	t.Run("login too short", func(t *testing.T) {
		f := newHandlerFixture(t)

		resp, err := f.app.Test(jsonRequest("POST", "/api/v1/auth/registration",
			dto.RegisterInput{Login: "ab", Email: "u1@x.com", Password: "secret1"}))
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		var body map[string][]map[string]string
		raw, _ := io.ReadAll(resp.Body)
		require.NoError(t, json.Unmarshal(raw, &body))
		require.Len(t, body["errorsMessages"], 1)
		assert.Equal(t, "login", body["errorsMessages"][0]["field"])
	})

	t.Run("taken login", func(t *testing.T) {
		f := newHandlerFixture(t)

		f.users.EXPECT().GetByLoginOrEmail(gomock.Any(), "u1").Return(&domain.User{ID: "other"}, nil)

		resp, err := f.app.Test(jsonRequest("POST", "/api/v1/auth/registration",
			dto.RegisterInput{Login: "u1", Email: "u1@x.com", Password: "secret1"}))
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestConfirmationEndpoint(t *testing.T) {
	t.Run("bad code is a field error", func(t *testing.T) {
		f := newHandlerFixture(t)

		f.users.EXPECT().GetByConfirmationCode(gomock.Any(), "bad").Return(nil, nil)

		resp, err := f.app.Test(jsonRequest("POST", "/api/v1/auth/registration-confirmation",
			dto.ConfirmationInput{Code: "bad"}))
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		var body map[string][]map[string]string
		raw, _ := io.ReadAll(resp.Body)
		require.NoError(t, json.Unmarshal(raw, &body))
		require.Len(t, body["errorsMessages"], 1)
		assert.Equal(t, "code", body["errorsMessages"][0]["field"])
	})

	t.Run("success", func(t *testing.T) {
		f := newHandlerFixture(t)
		user := &domain.User{
			ID: "user-1",
			Confirmation: domain.EmailConfirmation{
				Code:      "good",
				ExpiresAt: time.Now().Add(time.Hour),
			},
		}

		f.users.EXPECT().GetByConfirmationCode(gomock.Any(), "good").Return(user, nil)
		f.users.EXPECT().SetConfirmed(gomock.Any(), "user-1").Return(nil)

		resp, err := f.app.Test(jsonRequest("POST", "/api/v1/auth/registration-confirmation",
			dto.ConfirmationInput{Code: "good"}))
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	})
}

func TestPasswordRecoveryEndpoint(t *testing.T) {
	t.Run("unknown email still 204", func(t *testing.T) {
		f := newHandlerFixture(t)

		f.users.EXPECT().GetByLoginOrEmail(gomock.Any(), "nobody@x.com").Return(nil, nil)

		resp, err := f.app.Test(jsonRequest("POST", "/api/v1/auth/password-recovery",
			dto.PasswordRecoveryInput{Email: "nobody@x.com"}))
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	})

	t.Run("invalid email", func(t *testing.T) {
		f := newHandlerFixture(t)

		resp, err := f.app.Test(jsonRequest("POST", "/api/v1/auth/password-recovery",
			dto.PasswordRecoveryInput{Email: "not-an-email"}))
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestNewPasswordEndpoint(t *testing.T) {
	t.Run("bad recovery code", func(t *testing.T) {
		f := newHandlerFixture(t)

		f.users.EXPECT().GetByRecoveryCode(gomock.Any(), "bad").Return(nil, nil)

		resp, err := f.app.Test(jsonRequest("POST", "/api/v1/auth/new-password",
			dto.NewPasswordInput{NewPassword: "newsecret", RecoveryCode: "bad"}))
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		var body map[string][]map[string]string
		raw, _ := io.ReadAll(resp.Body)
		require.NoError(t, json.Unmarshal(raw, &body))
		require.Len(t, body["errorsMessages"], 1)
		assert.Equal(t, "recoveryCode", body["errorsMessages"][0]["field"])
	})
}

func TestMeEndpoint(t *testing.T) {
	t.Run("missing bearer token", func(t *testing.T) {
		f := newHandlerFixture(t)

		resp, err := f.app.Test(httptest.NewRequest("GET", "/api/v1/auth/me", nil))
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("success", func(t *testing.T) {
		f := newHandlerFixture(t)
		user := &domain.User{ID: "user-1", Login: "u1", Email: "u1@x.com"}

		f.tokens.EXPECT().VerifyAccessToken("A1").Return(&service.AccessClaims{UserID: "user-1"}, nil)
		f.users.EXPECT().GetByID(gomock.Any(), "user-1").Return(user, nil)

		req := httptest.NewRequest("GET", "/api/v1/auth/me", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer A1")

		resp, err := f.app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var body map[string]string
		raw, _ := io.ReadAll(resp.Body)
		require.NoError(t, json.Unmarshal(raw, &body))
		assert.Equal(t, "user-1", body["userId"])
		assert.Equal(t, "u1", body["login"])
		assert.Equal(t, "u1@x.com", body["email"])
	})
}
