package backend

import (
	"context"

	"github.com/jhoicas/urbanfarm-dashboard/internal/application/dto"
	"github.com/jhoicas/urbanfarm-dashboard/internal/domain/entity"
)

// AuthAPI /auth.
type AuthAPI struct {
	c *Client
}

// NewAuthAPI construye el módulo de autenticación.
func NewAuthAPI(c *Client) *AuthAPI {
	return &AuthAPI{c: c}
}

// Login POST /auth/login.
func (a *AuthAPI) Login(ctx context.Context, email, password string) (*dto.LoginResponse, error) {
	var out dto.LoginResponse
	if err := a.c.post(ctx, "/auth/login", dto.LoginRequest{Email: email, Password: password}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register POST /auth/register. Puede o no devolver token; el dashboard no inicia sesión.
func (a *AuthAPI) Register(ctx context.Context, in dto.RegisterRequest) (*dto.LoginResponse, error) {
	var out dto.LoginResponse
	if err := a.c.post(ctx, "/auth/register", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Me GET /auth/me.
func (a *AuthAPI) Me(ctx context.Context) (*entity.User, error) {
	var out entity.User
	if err := a.c.get(ctx, "/auth/me", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// VerifyTwoFactor POST /auth/verify-2fa.
func (a *AuthAPI) VerifyTwoFactor(ctx context.Context, code string) (*dto.TwoFactorResponse, error) {
	var out dto.TwoFactorResponse
	if err := a.c.post(ctx, "/auth/verify-2fa", dto.TwoFactorRequest{Code: code}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ForgotPassword POST /auth/forgot-password.
func (a *AuthAPI) ForgotPassword(ctx context.Context, email string) error {
	return a.c.post(ctx, "/auth/forgot-password", dto.ForgotPasswordRequest{Email: email}, nil)
}

// ResetPassword POST /auth/reset-password.
func (a *AuthAPI) ResetPassword(ctx context.Context, token, password string) error {
	return a.c.post(ctx, "/auth/reset-password", dto.ResetPasswordRequest{Token: token, Password: password}, nil)
}
