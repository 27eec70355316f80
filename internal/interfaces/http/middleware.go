package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/urbanfarm-dashboard/internal/application/dto"
	"github.com/jhoicas/urbanfarm-dashboard/internal/domain/access"
	"github.com/jhoicas/urbanfarm-dashboard/internal/domain/entity"
)

// LocalUser key de Fiber Locals con el *entity.User de la sesión.
const LocalUser = "user"

// Session contrato mínimo que necesitan los middlewares (lo cumple *auth.SessionManager).
type Session interface {
	User() *entity.User
	PendingTwoFactor() bool
}

// RequireSession protege el grupo /app. Sin sesión redirige a /login; con un login
// pendiente de 2FA redirige a /two-factor-auth.
func RequireSession(s Session) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if s.PendingTwoFactor() {
			return c.Redirect("/two-factor-auth", fiber.StatusFound)
		}
		u := s.User()
		if u == nil {
			return c.Redirect("/login", fiber.StatusFound)
		}
		c.Locals(LocalUser, u)
		return c.Next()
	}
}

// CurrentUser devuelve el usuario cargado por RequireSession (nil fuera del grupo /app).
func CurrentUser(c *fiber.Ctx) *entity.User {
	u, _ := c.Locals(LocalUser).(*entity.User)
	return u
}

// RequireRole exige un rango mínimo en la jerarquía USER < STAFF < MANAGER < ADMIN.
// Debe usarse DESPUÉS de RequireSession.
func RequireRole(required entity.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !access.For(CurrentUser(c)).CanAccess(required) {
			return forbidden(c, "Esta sección requiere rol "+string(required)+" o superior")
		}
		return c.Next()
	}
}

// RequirePermission consulta la tabla estática rol → permisos.
func RequirePermission(p access.Permission) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !access.For(CurrentUser(c)).HasPermission(p) {
			return forbidden(c, "No tiene permiso para realizar esta acción ("+string(p)+")")
		}
		return c.Next()
	}
}

// forbidden responde con la alerta que la página muestra en lugar del contenido.
func forbidden(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: msg})
}
