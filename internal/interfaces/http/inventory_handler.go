package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/urbanfarm-dashboard/internal/application/dto"
	"github.com/jhoicas/urbanfarm-dashboard/internal/infrastructure/backend"
)

// InventoryHandler consultas y ajustes de stock.
type InventoryHandler struct {
	api   *backend.InventoryAPI
	toast Toaster
}

func NewInventoryHandler(api *backend.InventoryAPI, toast Toaster) *InventoryHandler {
	return &InventoryHandler{api: api, toast: toast}
}

// Availability GET /app/inventory/:id/availability/:qty.
func (h *InventoryHandler) Availability(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return notFound(c)
	}
	qty, err := decimal.NewFromString(c.Params("qty"))
	if err != nil || !qty.IsPositive() {
		return badRequest(c, "cantidad inválida")
	}
	available, err := h.api.CheckAvailability(c.UserContext(), id, qty)
	if err != nil {
		return err
	}
	return c.JSON(dto.AvailabilityResponse{InventoryID: id, Quantity: qty, Available: available})
}

// SetQuantity PUT /app/inventory/:id/quantity/:qty. Fija la existencia (valor absoluto).
func (h *InventoryHandler) SetQuantity(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return notFound(c)
	}
	qty, err := decimal.NewFromString(c.Params("qty"))
	if err != nil || qty.IsNegative() {
		return badRequest(c, "cantidad inválida")
	}
	item, err := h.api.UpdateQuantity(c.UserContext(), id, qty)
	if err != nil {
		return err
	}
	h.toast.Success("Existencia actualizada")
	return c.JSON(item)
}
