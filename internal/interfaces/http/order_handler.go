package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/urbanfarm-dashboard/internal/application/form"
	"github.com/jhoicas/urbanfarm-dashboard/internal/application/workflow"
	"github.com/jhoicas/urbanfarm-dashboard/internal/domain/entity"
	"github.com/jhoicas/urbanfarm-dashboard/internal/infrastructure/backend"
)

// OrderHandler acciones de dominio sobre pedidos.
type OrderHandler struct {
	api       *backend.OrderAPI
	placement *workflow.OrderPlacement
	toast     Toaster

	placeGuard  form.Guard
	statusGuard form.Guard
}

func NewOrderHandler(api *backend.OrderAPI, placement *workflow.OrderPlacement, toast Toaster) *OrderHandler {
	return &OrderHandler{api: api, placement: placement, toast: toast}
}

// Place godoc
// @Summary      Crear y confirmar un pedido
// @Description  Verifica disponibilidad, crea el pedido, lo confirma y descuenta el stock.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body  form.OrderForm  true  "pedido"
// @Success      201   {object}  entity.Order
// @Failure      409   {object}  dto.ErrorResponse  "stock insuficiente o envío en curso"
// @Failure      422   {object}  dto.ErrorResponse
// @Failure      502   {object}  map[string]interface{}
// @Router       /app/orders/place [post]
func (h *OrderHandler) Place(c *fiber.Ctx) error {
	var in form.OrderForm
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	var placed *entity.Order
	err := form.Submit[entity.Order](c.UserContext(), &h.placeGuard, in, func(ctx context.Context, o entity.Order) error {
		var err error
		placed, err = h.placement.Run(ctx, o)
		return err
	})
	if err != nil {
		return err
	}
	h.toast.Success("Pedido confirmado")
	return c.Status(fiber.StatusCreated).JSON(placed)
}

// Status PUT /app/orders/:id/status.
func (h *OrderHandler) Status(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return notFound(c)
	}
	var in form.StatusForm
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	var out *entity.Order
	err := form.Submit[string](c.UserContext(), &h.statusGuard, in, func(ctx context.Context, status string) error {
		var err error
		out, err = h.api.UpdateStatus(ctx, id, status)
		return err
	})
	if err != nil {
		return err
	}
	h.toast.Success("Estado del pedido actualizado")
	return c.JSON(out)
}

// Cancel POST /app/orders/:id/cancel.
func (h *OrderHandler) Cancel(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return notFound(c)
	}
	out, err := h.api.CancelOrder(c.UserContext(), id)
	if err != nil {
		return err
	}
	h.toast.Success("Pedido cancelado")
	return c.JSON(out)
}
