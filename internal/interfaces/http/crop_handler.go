package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/urbanfarm-dashboard/internal/application/dto"
	"github.com/jhoicas/urbanfarm-dashboard/internal/application/form"
	"github.com/jhoicas/urbanfarm-dashboard/internal/domain/entity"
	"github.com/jhoicas/urbanfarm-dashboard/internal/infrastructure/backend"
)

// CropHandler acciones de dominio sobre cultivos.
type CropHandler struct {
	api   *backend.CropAPI
	toast Toaster

	harvestGuard form.Guard
}

func NewCropHandler(api *backend.CropAPI, toast Toaster) *CropHandler {
	return &CropHandler{api: api, toast: toast}
}

// RecordHarvest godoc
// @Summary      Registrar cosecha de un cultivo
// @Tags         crops
// @Accept       json
// @Produce      json
// @Param        id    path  int                     true  "ID del cultivo"
// @Param        body  body  form.RecordHarvestForm  true  "yield (kg), qualityRating (1-5)"
// @Success      201   {object}  entity.Harvest
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /app/crops/{id}/record-harvest [post]
func (h *CropHandler) RecordHarvest(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return notFound(c)
	}
	var in form.RecordHarvestForm
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	var harvest *entity.Harvest
	err := form.Submit[form.HarvestRecord](c.UserContext(), &h.harvestGuard, in, func(ctx context.Context, rec form.HarvestRecord) error {
		var err error
		harvest, err = h.api.RecordHarvest(ctx, id, rec.Yield, rec.QualityRating)
		return err
	})
	if err != nil {
		return err
	}
	h.toast.Success("Cosecha registrada")
	return c.Status(fiber.StatusCreated).JSON(harvest)
}

// RecordMetrics POST /app/crops/:id/record-metrics.
func (h *CropHandler) RecordMetrics(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return notFound(c)
	}
	var in entity.CropMetrics
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if err := h.api.RecordMetrics(c.UserContext(), id, in); err != nil {
		return err
	}
	h.toast.Success("Métricas registradas")
	return c.JSON(dto.ActionResponse{Success: true})
}

// AssignToFarm POST /app/crops/:id/assign-to-farm/:farmId.
func (h *CropHandler) AssignToFarm(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	farmID, ok2 := paramID(c, "farmId")
	if !ok || !ok2 {
		return notFound(c)
	}
	crop, err := h.api.AssignToFarm(c.UserContext(), id, farmID)
	if err != nil {
		return err
	}
	h.toast.Success("Cultivo asignado a la granja")
	return c.JSON(crop)
}
