package dto

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Phone    string `json:"phone" validate:"required"`
}

type UserLogin struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// AuthResponse carries the verified claims attached to the request context.
type AuthResponse struct {
	UserID  int     `json:"user_id"`
	Email   string  `json:"email"`
	IsAdmin bool    `json:"is_admin"`
	Iat     float64 `json:"iat"`
	Expiry  float64 `json:"expiry"`
}
