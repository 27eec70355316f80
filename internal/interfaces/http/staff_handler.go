package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/urbanfarm-dashboard/internal/application/form"
	"github.com/jhoicas/urbanfarm-dashboard/internal/domain/entity"
	"github.com/jhoicas/urbanfarm-dashboard/internal/infrastructure/backend"
)

// StaffHandler acciones sobre personal y voluntarios. Todo /app/staff exige MANAGER.
type StaffHandler struct {
	api   *backend.StaffAPI
	toast Toaster

	hoursGuard form.Guard
}

func NewStaffHandler(api *backend.StaffAPI, toast Toaster) *StaffHandler {
	return &StaffHandler{api: api, toast: toast}
}

// AssignToFarm POST /app/staff/:id/assign-to-farm/:farmId.
func (h *StaffHandler) AssignToFarm(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	farmID, ok2 := paramID(c, "farmId")
	if !ok || !ok2 {
		return notFound(c)
	}
	s, err := h.api.AssignToFarm(c.UserContext(), id, farmID)
	if err != nil {
		return err
	}
	h.toast.Success("Asignación actualizada")
	return c.JSON(s)
}

// WorkHours PUT /app/staff/:id/work-hours.
func (h *StaffHandler) WorkHours(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return notFound(c)
	}
	var in form.WorkHoursForm
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	var out *entity.Staff
	err := form.Submit[decimal.Decimal](c.UserContext(), &h.hoursGuard, in, func(ctx context.Context, hours decimal.Decimal) error {
		var err error
		out, err = h.api.UpdateWorkHours(ctx, id, hours)
		return err
	})
	if err != nil {
		return err
	}
	h.toast.Success("Horas de trabajo actualizadas")
	return c.JSON(out)
}
