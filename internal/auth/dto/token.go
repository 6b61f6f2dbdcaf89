package dto

// TokenPair is the result of a successful login or refresh. The refresh token
// is delivered in a cookie, never in the response body.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"-"`
}
