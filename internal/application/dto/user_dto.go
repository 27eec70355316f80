package dto

import "github.com/jhoicas/urbanfarm-dashboard/internal/domain/entity"

// LoginRequest cuerpo de POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse respuesta del backend. RequiresTwoFactor deja la sesión pendiente de verificar.
type LoginResponse struct {
	Token             string       `json:"token"`
	User              *entity.User `json:"user,omitempty"`
	RequiresTwoFactor bool         `json:"requiresTwoFactor,omitempty"`
}

// RegisterRequest cuerpo de POST /auth/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TwoFactorRequest cuerpo de POST /auth/verify-2fa.
type TwoFactorRequest struct {
	Code string `json:"code"`
}

// TwoFactorResponse puede traer un token rotado.
type TwoFactorResponse struct {
	Token string `json:"token,omitempty"`
}

// ForgotPasswordRequest cuerpo de POST /auth/forgot-password.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest cuerpo de POST /auth/reset-password.
type ResetPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

// SessionResponse estado de la sesión tal como lo ve la página.
type SessionResponse struct {
	Authenticated    bool         `json:"authenticated"`
	PendingTwoFactor bool         `json:"pendingTwoFactor,omitempty"`
	User             *entity.User `json:"user,omitempty"`
	Redirect         string       `json:"redirect,omitempty"`
}
