package dto

type RefreshInput struct {
	RefreshToken string `json:"-"`
	IP           string `json:"-"`
	Title        string `json:"-"`
}
