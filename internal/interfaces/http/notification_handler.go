package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/urbanfarm-dashboard/internal/application/dto"
	"github.com/jhoicas/urbanfarm-dashboard/internal/application/notification"
	"github.com/jhoicas/urbanfarm-dashboard/internal/application/search"
	"github.com/jhoicas/urbanfarm-dashboard/internal/application/toast"
	"github.com/jhoicas/urbanfarm-dashboard/internal/domain/entity"
)

// NotificationHandler /app/notifications, /app/search y /app/toasts: el estado local del operador.
type NotificationHandler struct {
	store  *notification.Store
	search *search.Service
	toasts *toast.Center
}

func NewNotificationHandler(store *notification.Store, search *search.Service, toasts *toast.Center) *NotificationHandler {
	return &NotificationHandler{store: store, search: search, toasts: toasts}
}

// NotificationsResponse listado con el contador de no leídas.
type NotificationsResponse struct {
	Items       []entity.Notification `json:"items"`
	UnreadCount int                   `json:"unreadCount"`
}

func (h *NotificationHandler) list(c *fiber.Ctx) error {
	return c.JSON(NotificationsResponse{Items: h.store.List(), UnreadCount: h.store.UnreadCount()})
}

// List GET /app/notifications.
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	return h.list(c)
}

// Add POST /app/notifications.
func (h *NotificationHandler) Add(c *fiber.Ctx) error {
	var in notification.Payload
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if in.Title == "" && in.Message == "" {
		return badRequest(c, "la notificación necesita título o mensaje")
	}
	n := h.store.Add(c.UserContext(), in)
	return c.Status(fiber.StatusCreated).JSON(n)
}

// MarkAsRead POST /app/notifications/:id/read. Idempotente.
func (h *NotificationHandler) MarkAsRead(c *fiber.Ctx) error {
	h.store.MarkAsRead(c.UserContext(), c.Params("id"))
	return h.list(c)
}

// MarkAllAsRead POST /app/notifications/read-all.
func (h *NotificationHandler) MarkAllAsRead(c *fiber.Ctx) error {
	h.store.MarkAllAsRead(c.UserContext())
	return h.list(c)
}

// Remove DELETE /app/notifications/:id.
func (h *NotificationHandler) Remove(c *fiber.Ctx) error {
	h.store.Remove(c.UserContext(), c.Params("id"))
	return h.list(c)
}

// ClearAll DELETE /app/notifications.
func (h *NotificationHandler) ClearAll(c *fiber.Ctx) error {
	h.store.ClearAll(c.UserContext())
	return h.list(c)
}

// Search GET /app/search?q=.
func (h *NotificationHandler) Search(c *fiber.Ctx) error {
	h.search.PerformGlobalSearch(c.UserContext(), c.Query("q"))
	return c.JSON(h.search.State())
}

// Toasts GET /app/toasts: entrega y vacía la cola.
func (h *NotificationHandler) Toasts(c *fiber.Ctx) error {
	return c.JSON(dto.NewListResponse(h.toasts.Drain(), false))
}
