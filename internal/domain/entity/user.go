package entity

import "strings"

// Role rol del usuario según el backend.
type Role string

// Roles válidos para User.
const (
	RoleAdmin   Role = "ADMIN"
	RoleManager Role = "MANAGER"
	RoleStaff   Role = "STAFF"
	RoleUser    Role = "USER"
)

// NormalizeRole acepta variantes del backend ("role_admin", "Manager") y devuelve el rol canónico.
// Roles vacíos o desconocidos devuelven "" para que el llamador decida el valor por defecto.
func NormalizeRole(s string) Role {
	r := Role(strings.TrimPrefix(strings.ToUpper(strings.TrimSpace(s)), "ROLE_"))
	switch r {
	case RoleAdmin, RoleManager, RoleStaff, RoleUser:
		return r
	}
	return ""
}

// User usuario autenticado del dashboard. Lo crea el registro o el login demo;
// el dashboard nunca lo persiste, solo lo recibe de GET /auth/me.
type User struct {
	ID               int64  `json:"id"`
	Username         string `json:"username"`
	Email            string `json:"email"`
	FirstName        string `json:"firstName,omitempty"`
	LastName         string `json:"lastName,omitempty"`
	Role             Role   `json:"role"`
	TwoFactorEnabled bool   `json:"twoFactorEnabled,omitempty"`
}
