package constant

const (
	// RefreshTokenCookie is the httpOnly cookie the refresh token travels in.
	RefreshTokenCookie = "refreshToken"

	BearerScheme = "Bearer"
)
