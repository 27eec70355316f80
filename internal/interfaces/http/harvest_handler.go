package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/urbanfarm-dashboard/internal/application/dto"
	"github.com/jhoicas/urbanfarm-dashboard/internal/application/form"
	"github.com/jhoicas/urbanfarm-dashboard/internal/application/workflow"
	"github.com/jhoicas/urbanfarm-dashboard/internal/domain/entity"
	"github.com/jhoicas/urbanfarm-dashboard/internal/infrastructure/backend"
)

// HarvestHandler acciones de dominio sobre cosechas, incluido el ingreso a inventario.
type HarvestHandler struct {
	api    *backend.HarvestAPI
	intake *workflow.HarvestIntake
	toast  Toaster

	intakeGuard  form.Guard
	qualityGuard form.Guard
	yieldGuard   form.Guard
}

func NewHarvestHandler(api *backend.HarvestAPI, intake *workflow.HarvestIntake, toast Toaster) *HarvestHandler {
	return &HarvestHandler{api: api, intake: intake, toast: toast}
}

// Intake godoc
// @Summary      Registrar cosecha e ingresarla a inventario
// @Description  Crea la cosecha, la transfiere al inventario y suma el rendimiento al stock.
// @Description  Si un paso falla se revierten los anteriores y se responde 502 con el detalle.
// @Tags         harvests
// @Accept       json
// @Produce      json
// @Param        body  body  form.IntakeForm  true  "cosecha + inventoryId"
// @Success      201   {object}  workflow.IntakeResult
// @Failure      422   {object}  dto.ErrorResponse
// @Failure      502   {object}  map[string]interface{}
// @Router       /app/harvests/intake [post]
func (h *HarvestHandler) Intake(c *fiber.Ctx) error {
	var in form.IntakeForm
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	var res *workflow.IntakeResult
	err := form.Submit[form.Intake](c.UserContext(), &h.intakeGuard, in, func(ctx context.Context, p form.Intake) error {
		var err error
		res, err = h.intake.Run(ctx, p.Harvest, p.InventoryID)
		return err
	})
	if err != nil {
		return err
	}
	h.toast.Success("Cosecha ingresada al inventario")
	return c.Status(fiber.StatusCreated).JSON(res)
}

// Quality PUT /app/harvests/:id/quality.
func (h *HarvestHandler) Quality(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return notFound(c)
	}
	var in form.QualityForm
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	var out *entity.Harvest
	err := form.Submit[int](c.UserContext(), &h.qualityGuard, in, func(ctx context.Context, rating int) error {
		var err error
		out, err = h.api.UpdateQuality(ctx, id, rating)
		return err
	})
	if err != nil {
		return err
	}
	h.toast.Success("Calidad actualizada")
	return c.JSON(out)
}

// Yield PUT /app/harvests/:id/yield.
func (h *HarvestHandler) Yield(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return notFound(c)
	}
	var in form.YieldForm
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	var out *entity.Harvest
	err := form.Submit[decimal.Decimal](c.UserContext(), &h.yieldGuard, in, func(ctx context.Context, yield decimal.Decimal) error {
		var err error
		out, err = h.api.UpdateYield(ctx, id, yield)
		return err
	})
	if err != nil {
		return err
	}
	h.toast.Success("Rendimiento actualizado")
	return c.JSON(out)
}

// Transfer POST /app/harvests/:id/transfer-to-inventory/:inventoryId.
func (h *HarvestHandler) Transfer(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	inventoryID, ok2 := paramID(c, "inventoryId")
	if !ok || !ok2 {
		return notFound(c)
	}
	if err := h.api.TransferToInventory(c.UserContext(), id, inventoryID); err != nil {
		return err
	}
	h.toast.Success("Cosecha transferida al inventario")
	return c.JSON(dto.ActionResponse{Success: true})
}
