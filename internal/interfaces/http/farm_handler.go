package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/urbanfarm-dashboard/internal/application/dto"
	"github.com/jhoicas/urbanfarm-dashboard/internal/infrastructure/backend"
)

// FarmHandler acciones de dominio sobre granjas.
type FarmHandler struct {
	api   *backend.FarmAPI
	toast Toaster
}

func NewFarmHandler(api *backend.FarmAPI, toast Toaster) *FarmHandler {
	return &FarmHandler{api: api, toast: toast}
}

// TrackCrops POST /app/farms/:id/track-crops.
func (h *FarmHandler) TrackCrops(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return notFound(c)
	}
	crops, err := h.api.TrackCrops(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewListResponse(crops, false))
}

// ManageStaff POST /app/farms/:id/manage-staff/:staffId.
func (h *FarmHandler) ManageStaff(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	staffID, ok2 := paramID(c, "staffId")
	if !ok || !ok2 {
		return notFound(c)
	}
	if err := h.api.ManageStaff(c.UserContext(), id, staffID); err != nil {
		return err
	}
	h.toast.Success("Personal asignado a la granja")
	return c.JSON(dto.ActionResponse{Success: true})
}
