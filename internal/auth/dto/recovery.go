package dto

type PasswordRecoveryInput struct {
	Email string `json:"email" validate:"required,email"`
}

type NewPasswordInput struct {
	NewPassword  string `json:"newPassword" validate:"required,min=6,max=20"`
	RecoveryCode string `json:"recoveryCode" validate:"required"`
}
