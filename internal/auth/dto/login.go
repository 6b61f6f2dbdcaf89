package dto

type LoginInput struct {
	LoginOrEmail string `json:"loginOrEmail" validate:"required"`
	Password     string `json:"password" validate:"required"`
	IP           string `json:"-"`
	Title        string `json:"-"`
}
