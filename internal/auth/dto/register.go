package dto

type RegisterInput struct {
	Login    string `json:"login" validate:"required,min=3,max=10"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=20"`
}

type ConfirmationInput struct {
	Code string `json:"code" validate:"required"`
}

type ResendConfirmationInput struct {
	Email string `json:"email" validate:"required,email"`
}
