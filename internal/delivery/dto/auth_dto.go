package dto

type TokenRequest struct {
	Secret string `json:"secret" validate:"required"`
}

type TokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expires_in"`
}
