package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/urbanfarm-dashboard/internal/application/auth"
	"github.com/jhoicas/urbanfarm-dashboard/internal/application/dto"
	"github.com/jhoicas/urbanfarm-dashboard/internal/application/form"
)

// AuthHandler páginas públicas: landing, login, registro, 2FA y recuperación de contraseña.
type AuthHandler struct {
	session *auth.SessionManager
	appName string
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(session *auth.SessionManager, appName string) *AuthHandler {
	return &AuthHandler{session: session, appName: appName}
}

// Landing GET /.
func (h *AuthHandler) Landing(c *fiber.Ctx) error {
	u := h.session.User()
	links := fiber.Map{"login": "/login", "register": "/register", "forgotPassword": "/forgot-password"}
	if u != nil {
		links = fiber.Map{"dashboard": "/app/dashboard", "logout": "/logout"}
	}
	return c.JSON(fiber.Map{
		"name":          h.appName,
		"authenticated": u != nil,
		"links":         links,
	})
}

// Session GET /session: estado de la sesión para la cabecera de la página.
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	u := h.session.User()
	return c.JSON(dto.SessionResponse{
		Authenticated:    u != nil,
		PendingTwoFactor: h.session.PendingTwoFactor(),
		User:             u,
	})
}

// Login godoc
// @Summary      Iniciar sesión
// @Description  Prueba primero las credenciales demo; si no coinciden delega en el backend.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  form.LoginForm  true  "email, password"
// @Success      200   {object}  dto.SessionResponse
// @Failure      401   {object}  dto.ActionResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Failure      429   {object}  dto.ErrorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in form.LoginForm
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if err := form.Validate(in); err != nil {
		return err
	}
	if !h.session.Login(c.UserContext(), in.Email, in.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ActionResponse{Success: false, Message: "Credenciales inválidas"})
	}
	if h.session.PendingTwoFactor() {
		return c.JSON(dto.SessionResponse{PendingTwoFactor: true, Redirect: "/two-factor-auth"})
	}
	return c.JSON(dto.SessionResponse{Authenticated: true, User: h.session.User(), Redirect: "/app/dashboard"})
}

// Register godoc
// @Summary      Crear cuenta
// @Description  No inicia sesión: tras el registro el operador vuelve a /login.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  form.RegisterForm  true  "username, email, password, confirmPassword"
// @Success      201   {object}  dto.ActionResponse
// @Failure      400   {object}  dto.ActionResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in form.RegisterForm
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if err := form.Validate(in); err != nil {
		return err
	}
	if !h.session.Register(c.UserContext(), in.Username, in.Email, in.Password) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ActionResponse{Message: "No se pudo completar el registro"})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ActionResponse{Success: true, Redirect: "/login"})
}

// TwoFactor POST /two-factor-auth.
func (h *AuthHandler) TwoFactor(c *fiber.Ctx) error {
	var in form.TwoFactorForm
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if err := form.Validate(in); err != nil {
		return err
	}
	if !h.session.VerifyTwoFactor(c.UserContext(), in.Code) {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ActionResponse{Message: "Código de verificación inválido"})
	}
	return c.JSON(dto.SessionResponse{Authenticated: true, User: h.session.User(), Redirect: "/app/dashboard"})
}

// ForgotPassword POST /forgot-password.
func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var in form.ForgotPasswordForm
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if err := form.Validate(in); err != nil {
		return err
	}
	if !h.session.ForgotPassword(c.UserContext(), in.Email) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ActionResponse{Message: "No se pudo enviar el correo de recuperación"})
	}
	return c.JSON(dto.ActionResponse{Success: true, Redirect: "/login"})
}

// ResetPassword POST /reset-password.
func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var in form.ResetPasswordForm
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if err := form.Validate(in); err != nil {
		return err
	}
	if !h.session.ResetPassword(c.UserContext(), in.Token, in.Password) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ActionResponse{Message: "No se pudo restablecer la contraseña"})
	}
	return c.JSON(dto.ActionResponse{Success: true, Redirect: "/login"})
}

// Logout POST /logout. Siempre tiene éxito.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.session.Logout(c.UserContext())
	return c.JSON(dto.ActionResponse{Success: true, Redirect: "/login"})
}
