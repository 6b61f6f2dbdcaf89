package service

//go:generate mockgen -destination=../../mocks/mock_token_generator.go -package=mocks github.com/SergeyYurch/blogger-auth/internal/auth/service TokenGenerator

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	autherror "github.com/SergeyYurch/blogger-auth/internal/errors"
)

const (
	tokenKindAccess  = "access"
	tokenKindRefresh = "refresh"
)

type AccessClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"userId"`
	Kind   string `json:"kind"`
}

// RefreshClaims bind a refresh token to one device session. IssuedAt doubles
// as the session's last-active timestamp downstream.
type RefreshClaims struct {
	jwt.RegisteredClaims
	UserID   string `json:"userId"`
	DeviceID string `json:"deviceId"`
	IP       string `json:"ip"`
	Kind     string `json:"kind"`
}

type TokenGenerator interface {
	CreateAccessToken(userID string) (string, error)
	CreateRefreshToken(userID, deviceID, ip string) (string, *RefreshClaims, error)
	VerifyAccessToken(tokenString string) (*AccessClaims, error)
	VerifyRefreshToken(tokenString string) (*RefreshClaims, error)
}

// TokenService mints and verifies both token kinds. It is pure crypto/codec:
// no registry access happens here.
type TokenService struct {
	AccessTokenSecret  string
	RefreshTokenSecret string
	AccessTokenExpiry  time.Duration
	RefreshTokenExpiry time.Duration
}

func NewTokenService(accessSecret, refreshSecret string, accessMinutes, refreshMinutes int) *TokenService {
	return &TokenService{
		AccessTokenSecret:  accessSecret,
		RefreshTokenSecret: refreshSecret,
		AccessTokenExpiry:  time.Duration(accessMinutes) * time.Minute,
		RefreshTokenExpiry: time.Duration(refreshMinutes) * time.Minute,
	}
}

func (ts *TokenService) CreateAccessToken(userID string) (string, error) {
	now := time.Now().UTC().Truncate(time.Second)

	claims := AccessClaims{
		UserID: userID,
		Kind:   tokenKindAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ts.AccessTokenExpiry)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(ts.AccessTokenSecret))
}

// CreateRefreshToken returns the signed token together with its claims so the
// caller can reuse IssuedAt/ExpiresAt for the session row. Timestamps are
// truncated to whole seconds, the canonical precision end-to-end: JWT encodes
// NumericDate as epoch seconds, and the staleness check compares for exact
// equality.
func (ts *TokenService) CreateRefreshToken(userID, deviceID, ip string) (string, *RefreshClaims, error) {
	now := time.Now().UTC().Truncate(time.Second)

	claims := &RefreshClaims{
		UserID:   userID,
		DeviceID: deviceID,
		IP:       ip,
		Kind:     tokenKindRefresh,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ts.RefreshTokenExpiry)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(ts.RefreshTokenSecret))
	if err != nil {
		return "", nil, err
	}

	return token, claims, nil
}

func (ts *TokenService) VerifyAccessToken(tokenString string) (*AccessClaims, error) {
	claims := &AccessClaims{}
	if err := ts.parse(tokenString, claims, ts.AccessTokenSecret); err != nil {
		return nil, err
	}
	if claims.Kind != tokenKindAccess {
		return nil, autherror.ErrInvalidToken
	}

	return claims, nil
}

func (ts *TokenService) VerifyRefreshToken(tokenString string) (*RefreshClaims, error) {
	claims := &RefreshClaims{}
	if err := ts.parse(tokenString, claims, ts.RefreshTokenSecret); err != nil {
		return nil, err
	}
	if claims.Kind != tokenKindRefresh {
		return nil, autherror.ErrInvalidToken
	}

	return claims, nil
}

// parse collapses signature, expiry and method failures into one error so a
// caller cannot tell which check rejected the token.
func (ts *TokenService) parse(tokenString string, claims jwt.Claims, secret string) error {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, autherror.ErrInvalidToken
		}

		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return autherror.ErrInvalidToken
	}

	return nil
}
