package http

import (
	"context"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/urbanfarm-dashboard/internal/application/dto"
	"github.com/jhoicas/urbanfarm-dashboard/internal/application/form"
	"github.com/jhoicas/urbanfarm-dashboard/internal/domain"
	"github.com/jhoicas/urbanfarm-dashboard/internal/domain/access"
)

// Toaster lo que las páginas necesitan del centro de toasts (lo cumple *toast.Reporter).
type Toaster interface {
	Success(msg string)
	DemoMode() bool
}

// EntityAPI CRUD uniforme de una entidad del backend.
type EntityAPI[T any] interface {
	GetAll(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id int64) (*T, error)
	Create(ctx context.Context, in T) (*T, error)
	Update(ctx context.Context, id int64, in T) (*T, error)
	Delete(ctx context.Context, id int64) error
}

// Fixtures datos demo de una entidad y cómo obtener su id.
type Fixtures[T any] struct {
	Items func() []T
	ID    func(T) int64
}

// CRUDHandler páginas de listado, ficha, alta, edición y baja de una entidad.
// F es el formulario canónico de la entidad.
type CRUDHandler[T any, F form.Form[T]] struct {
	api      EntityAPI[T]
	fixtures Fixtures[T]
	toast    Toaster
	log      zerolog.Logger

	createGuard form.Guard
	editGuard   form.Guard
}

// NewCRUDHandler construye el handler de la entidad.
func NewCRUDHandler[T any, F form.Form[T]](api EntityAPI[T], fixtures Fixtures[T], toast Toaster, log zerolog.Logger) *CRUDHandler[T, F] {
	return &CRUDHandler[T, F]{api: api, fixtures: fixtures, toast: toast, log: log}
}

// Mount registra las rutas estándar. Las acciones de dominio se registran antes que /:id.
func (h *CRUDHandler[T, F]) Mount(r fiber.Router) {
	r.Get("/", RequirePermission(access.CanRead), h.List)
	r.Post("/new", RequirePermission(access.CanCreate), h.Create)
	r.Put("/edit/:id", RequirePermission(access.CanUpdate), h.Update)
	r.Delete("/:id", RequirePermission(access.CanDelete), h.Delete)
	r.Get("/:id", RequirePermission(access.CanRead), h.Detail)
}

// List GET /. Si la API falla: datos demo en modo demo, lista vacía en otro caso.
func (h *CRUDHandler[T, F]) List(c *fiber.Ctx) error {
	items, err := h.api.GetAll(c.UserContext())
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return err
		}
		h.log.Warn().Err(err).Msg("listado no disponible, se usa el respaldo")
		var fallback []T
		if h.toast.DemoMode() {
			fallback = h.fixtures.Items()
		}
		return c.JSON(dto.NewListResponse(fallback, true))
	}
	return c.JSON(dto.NewListResponse(items, false))
}

// Detail GET /:id. Sin registro utilizable responde la página 404.
func (h *CRUDHandler[T, F]) Detail(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return notFound(c)
	}
	item, err := h.api.GetByID(c.UserContext(), id)
	if err == nil && item != nil {
		return c.JSON(dto.DetailResponse[T]{Item: *item})
	}
	if errors.Is(err, domain.ErrUnauthorized) {
		return err
	}
	if h.toast.DemoMode() {
		for _, f := range h.fixtures.Items() {
			if h.fixtures.ID(f) == id {
				return c.JSON(dto.DetailResponse[T]{Item: f, Fallback: true})
			}
		}
	}
	return notFound(c)
}

// Create POST /new.
func (h *CRUDHandler[T, F]) Create(c *fiber.Ctx) error {
	var in F
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	var created *T
	err := form.Submit[T](c.UserContext(), &h.createGuard, in, func(ctx context.Context, payload T) error {
		var err error
		created, err = h.api.Create(ctx, payload)
		return err
	})
	if err != nil {
		return err
	}
	h.toast.Success("Registro creado correctamente")
	return c.Status(fiber.StatusCreated).JSON(created)
}

// Update PUT /edit/:id.
func (h *CRUDHandler[T, F]) Update(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return notFound(c)
	}
	var in F
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	var updated *T
	err := form.Submit[T](c.UserContext(), &h.editGuard, in, func(ctx context.Context, payload T) error {
		var err error
		updated, err = h.api.Update(ctx, id, payload)
		return err
	})
	if err != nil {
		return err
	}
	h.toast.Success("Cambios guardados")
	return c.JSON(updated)
}

// Delete DELETE /:id.
func (h *CRUDHandler[T, F]) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return notFound(c)
	}
	if err := h.api.Delete(c.UserContext(), id); err != nil {
		return err
	}
	h.toast.Success("Registro eliminado")
	return c.JSON(dto.ActionResponse{Success: true})
}

// paramID lee un id positivo de la ruta.
func paramID(c *fiber.Ctx, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
