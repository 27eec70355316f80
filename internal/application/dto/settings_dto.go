package dto

import (
	"github.com/jhoicas/urbanfarm-dashboard/internal/domain/access"
	"github.com/jhoicas/urbanfarm-dashboard/internal/domain/entity"
)

// Preferences preferencias de visualización locales del operador (no van al backend).
type Preferences struct {
	Theme         string `json:"theme" form:"theme" validate:"omitempty,oneof=light dark system"`
	Language      string `json:"language" form:"language" validate:"omitempty,oneof=es en"`
	PageSize      int    `json:"pageSize" form:"pageSize" validate:"omitempty,min=5,max=100"`
	Notifications bool   `json:"notifications" form:"notifications"`
}

// DefaultPreferences valores iniciales.
func DefaultPreferences() Preferences {
	return Preferences{Theme: "system", Language: "es", PageSize: 20, Notifications: true}
}

// SettingsResponse respuesta de GET /app/settings.
type SettingsResponse struct {
	User          entity.User           `json:"user"`
	Role          entity.Role           `json:"role"`
	Permissions   access.Permissions    `json:"permissions"`
	Disagreements []access.Disagreement `json:"roleTableDisagreements"`
	Preferences   Preferences           `json:"preferences"`
	DemoMode      bool                  `json:"demoMode"`
}
