// Package auth gestiona la sesión del único operador del dashboard: login (demo o
// contra el backend), registro, 2FA, recuperación de contraseña y restauración al arrancar.
// Ningún método devuelve error: los fallos se muestran como toast y colapsan a false.
package auth

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/urbanfarm-dashboard/internal/application/dto"
	"github.com/jhoicas/urbanfarm-dashboard/internal/domain"
	"github.com/jhoicas/urbanfarm-dashboard/internal/domain/entity"
	"github.com/jhoicas/urbanfarm-dashboard/pkg/jwt"
)

// DemoToken token fijo de la sesión demo. Nunca se envía a validar al backend.
const DemoToken = "demo-token"

// Backend endpoints /auth que usa la sesión (lo cumple *backend.AuthAPI).
type Backend interface {
	Login(ctx context.Context, email, password string) (*dto.LoginResponse, error)
	Register(ctx context.Context, in dto.RegisterRequest) (*dto.LoginResponse, error)
	Me(ctx context.Context) (*entity.User, error)
	VerifyTwoFactor(ctx context.Context, code string) (*dto.TwoFactorResponse, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, password string) error
}

// Notifier destino de los toasts de la sesión (lo cumple *toast.Reporter).
type Notifier interface {
	Error(msg string)
	Success(msg string)
}

// DemoCredentials par de acceso local que no toca el backend.
type DemoCredentials struct {
	Email    string
	Password string
}

// SessionManager estado de sesión del operador.
type SessionManager struct {
	api    Backend
	tokens *TokenStore
	notify Notifier
	log    zerolog.Logger
	now    func() time.Time

	demoEmail string
	demoHash  []byte

	mu        sync.RWMutex
	user      *entity.User
	userToken string // token con el que se cargó user
	pending2F bool
}

// NewSessionManager construye la sesión. La contraseña demo se guarda solo como hash bcrypt.
func NewSessionManager(api Backend, tokens *TokenStore, notify Notifier, demo DemoCredentials, log zerolog.Logger) (*SessionManager, error) {
	s := &SessionManager{
		api:    api,
		tokens: tokens,
		notify: notify,
		log:    log,
		now:    time.Now,
	}
	if demo.Email != "" && demo.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(demo.Password), bcrypt.MinCost)
		if err != nil {
			return nil, err
		}
		s.demoEmail = strings.ToLower(strings.TrimSpace(demo.Email))
		s.demoHash = hash
	}
	return s, nil
}

// DemoUser usuario fijo de la sesión demo.
func (s *SessionManager) DemoUser() entity.User {
	return entity.User{
		ID:        1,
		Username:  "admin",
		Email:     s.demoEmail,
		FirstName: "Demo",
		LastName:  "Admin",
		Role:      entity.RoleAdmin,
	}
}

func (s *SessionManager) isDemo(email, password string) bool {
	if s.demoHash == nil || strings.ToLower(strings.TrimSpace(email)) != s.demoEmail {
		return false
	}
	return bcrypt.CompareHashAndPassword(s.demoHash, []byte(password)) == nil
}

// User devuelve el usuario actual, o nil si no hay sesión o el token fue desalojado.
func (s *SessionManager) User() *entity.User {
	tok := s.tokens.Token()
	s.mu.RLock()
	defer s.mu.RUnlock()
	if tok == "" || s.user == nil || s.pending2F || s.userToken != tok {
		return nil
	}
	u := *s.user
	return &u
}

// Authenticated hay token y perfil cargado (2FA completado si se pidió).
func (s *SessionManager) Authenticated() bool {
	return s.User() != nil
}

// PendingTwoFactor el login fue aceptado pero falta verificar el código.
func (s *SessionManager) PendingTwoFactor() bool {
	tok := s.tokens.Token()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pending2F && tok != ""
}

func (s *SessionManager) setUser(u *entity.User, token string) {
	if u != nil {
		if r := entity.NormalizeRole(string(u.Role)); r != "" {
			u.Role = r
		} else {
			u.Role = entity.RoleUser
		}
	}
	s.mu.Lock()
	s.user = u
	s.userToken = token
	s.pending2F = false
	s.mu.Unlock()
}

func (s *SessionManager) reset() {
	s.mu.Lock()
	s.user = nil
	s.userToken = ""
	s.pending2F = false
	s.mu.Unlock()
}

// fail muestra fallback salvo que el cliente HTTP ya haya reportado el error.
func (s *SessionManager) fail(err error, fallback string) {
	s.log.Warn().Err(err).Msg(fallback)
	var apiErr *domain.APIError
	if errors.As(err, &apiErr) && apiErr.Status != 401 {
		return
	}
	s.notify.Error(fallback)
}

// Login prueba primero el par demo; si no coincide, delega en POST /auth/login.
func (s *SessionManager) Login(ctx context.Context, email, password string) bool {
	if s.isDemo(email, password) {
		_ = s.tokens.Set(ctx, DemoToken)
		u := s.DemoUser()
		s.setUser(&u, DemoToken)
		s.log.Info().Msg("sesión demo iniciada")
		s.notify.Success("Bienvenido (modo demo)")
		return true
	}

	resp, err := s.api.Login(ctx, email, password)
	if err != nil {
		s.fail(err, "Credenciales inválidas")
		return false
	}
	if resp.Token == "" {
		s.fail(domain.ErrMissingToken, "El servidor no devolvió un token de sesión")
		return false
	}
	if err := s.tokens.Set(ctx, resp.Token); err != nil {
		s.notify.Error("No se pudo guardar la sesión")
		return false
	}

	if resp.RequiresTwoFactor {
		s.mu.Lock()
		s.user = nil
		s.userToken = ""
		s.pending2F = true
		s.mu.Unlock()
		s.log.Info().Msg("login pendiente de verificación 2FA")
		return true
	}

	if !s.loadProfile(ctx, resp.Token) {
		s.tokens.Clear(ctx)
		return false
	}
	s.notify.Success("Sesión iniciada")
	return true
}

func (s *SessionManager) loadProfile(ctx context.Context, token string) bool {
	u, err := s.api.Me(ctx)
	if err != nil {
		s.fail(err, "No se pudo cargar el perfil")
		return false
	}
	s.setUser(u, token)
	return true
}

// Register crea la cuenta. No inicia sesión aunque el backend devuelva token.
func (s *SessionManager) Register(ctx context.Context, username, email, password string) bool {
	_, err := s.api.Register(ctx, dto.RegisterRequest{Username: username, Email: email, Password: password})
	if err != nil {
		s.fail(err, "No se pudo completar el registro")
		return false
	}
	s.notify.Success("Cuenta creada, ya puede iniciar sesión")
	return true
}

// Logout limpia token y usuario. Siempre tiene éxito.
func (s *SessionManager) Logout(ctx context.Context) {
	s.tokens.Clear(ctx)
	s.reset()
	s.log.Info().Msg("sesión cerrada")
}

// VerifyTwoFactor envía el código; si el backend rota el token se persiste el nuevo.
func (s *SessionManager) VerifyTwoFactor(ctx context.Context, code string) bool {
	if s.tokens.Token() == "" {
		s.notify.Error("No hay un inicio de sesión pendiente")
		return false
	}
	resp, err := s.api.VerifyTwoFactor(ctx, code)
	if err != nil {
		s.fail(err, "Código de verificación inválido")
		return false
	}
	if resp.Token != "" {
		if err := s.tokens.Set(ctx, resp.Token); err != nil {
			s.notify.Error("No se pudo guardar la sesión")
			return false
		}
	}
	if !s.loadProfile(ctx, s.tokens.Token()) {
		return false
	}
	s.notify.Success("Verificación completada")
	return true
}

// ForgotPassword solicita el correo de recuperación.
func (s *SessionManager) ForgotPassword(ctx context.Context, email string) bool {
	if err := s.api.ForgotPassword(ctx, email); err != nil {
		s.fail(err, "No se pudo enviar el correo de recuperación")
		return false
	}
	s.notify.Success("Revise su correo para restablecer la contraseña")
	return true
}

// ResetPassword fija la nueva contraseña con el token recibido por correo.
func (s *SessionManager) ResetPassword(ctx context.Context, token, password string) bool {
	if err := s.api.ResetPassword(ctx, token, password); err != nil {
		s.fail(err, "No se pudo restablecer la contraseña")
		return false
	}
	s.notify.Success("Contraseña actualizada")
	return true
}

// Restore se ejecuta al arrancar. Nunca bloquea el inicio: ante cualquier fallo
// el token se descarta como vencido.
func (s *SessionManager) Restore(ctx context.Context) {
	_ = s.tokens.Load(ctx)
	tok := s.tokens.Token()
	switch {
	case tok == "":
		return
	case tok == DemoToken:
		u := s.DemoUser()
		s.setUser(&u, DemoToken)
		s.log.Info().Msg("sesión demo restaurada")
		return
	case jwt.Expired(tok, s.now()):
		s.log.Info().Msg("token persistido vencido, se descarta")
		s.tokens.Clear(ctx)
		return
	}

	u, err := s.api.Me(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("no se pudo restaurar la sesión")
		s.tokens.Clear(ctx)
		s.reset()
		return
	}
	s.setUser(u, tok)
	s.log.Info().Str("user", u.Email).Msg("sesión restaurada")
}
