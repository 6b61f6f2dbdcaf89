package dto

type MeOutput struct {
	Email  string `json:"email"`
	Login  string `json:"login"`
	UserID string `json:"userId"`
}
