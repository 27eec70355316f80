package http

import (
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/urbanfarm-dashboard/internal/application/dto"
	"github.com/jhoicas/urbanfarm-dashboard/internal/application/form"
	"github.com/jhoicas/urbanfarm-dashboard/internal/domain/access"
	"github.com/jhoicas/urbanfarm-dashboard/internal/infrastructure/storage"
)

// SettingsHandler perfil, permisos efectivos y preferencias locales.
type SettingsHandler struct {
	store storage.Store
	toast Toaster
	log   zerolog.Logger

	mu     sync.Mutex
	prefs  dto.Preferences
	loaded bool
}

func NewSettingsHandler(store storage.Store, toast Toaster, log zerolog.Logger) *SettingsHandler {
	return &SettingsHandler{store: store, toast: toast, log: log, prefs: dto.DefaultPreferences()}
}

// preferences carga las preferencias guardadas la primera vez.
func (h *SettingsHandler) preferences(c *fiber.Ctx) dto.Preferences {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.loaded {
		var p dto.Preferences
		found, err := storage.GetJSON(c.UserContext(), h.store, storage.KeyPreferences, &p)
		switch {
		case err != nil:
			h.log.Warn().Err(err).Msg("preferencias ilegibles, se usan las de fábrica")
		case found:
			h.prefs = p
		}
		h.loaded = true
	}
	return h.prefs
}

// Get GET /app/settings.
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	u := CurrentUser(c)
	checker := access.For(u)
	disagreements := access.Disagreements()
	if disagreements == nil {
		disagreements = []access.Disagreement{}
	}
	return c.JSON(dto.SettingsResponse{
		User:          *u,
		Role:          checker.Role(),
		Permissions:   checker.Permissions(),
		Disagreements: disagreements,
		Preferences:   h.preferences(c),
		DemoMode:      h.toast.DemoMode(),
	})
}

// Update PUT /app/settings (canManageSettings).
func (h *SettingsHandler) Update(c *fiber.Ctx) error {
	current := h.preferences(c)
	in := current
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if err := form.Validate(in); err != nil {
		return err
	}
	h.mu.Lock()
	h.prefs = in
	h.mu.Unlock()
	if err := storage.SetJSON(c.UserContext(), h.store, storage.KeyPreferences, in); err != nil {
		h.log.Error().Err(err).Msg("no se pudieron guardar las preferencias")
	}
	h.toast.Success("Preferencias guardadas")
	return c.JSON(in)
}
