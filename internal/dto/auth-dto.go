package dto

type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type AuthResponse struct {
	UserID int     `json:"user_id"`
	Name   string  `json:"name"`
	Iat    float64 `json:"iat"`
	Expiry float64 `json:"expiry"`
}
