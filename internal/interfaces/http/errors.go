package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/urbanfarm-dashboard/internal/application/dto"
	"github.com/jhoicas/urbanfarm-dashboard/internal/application/form"
	"github.com/jhoicas/urbanfarm-dashboard/internal/application/workflow"
	"github.com/jhoicas/urbanfarm-dashboard/internal/domain"
)

// ErrorHandler traduce los errores de los handlers a respuestas de página.
// Los handlers solo devuelven el error; el toast (si corresponde) ya lo emitió el cliente HTTP.
func ErrorHandler(log zerolog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe form.FieldErrors
		var wfErr *workflow.Error
		var fiberErr *fiber.Error

		switch {
		case errors.Is(err, domain.ErrUnauthorized):
			return c.Redirect("/login", fiber.StatusFound)
		case errors.As(err, &fe):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
				Code: "VALIDATION", Message: "Revise los campos marcados", Fields: fe,
			})
		case errors.Is(err, domain.ErrSubmissionInFlight):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "IN_FLIGHT", Message: err.Error()})
		case errors.Is(err, domain.ErrInsufficientStock):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: err.Error()})
		case errors.As(err, &wfErr):
			log.Error().Err(err).Bool("partial", wfErr.Partial()).Str("workflow", wfErr.Workflow).Msg("flujo de varios pasos fallido")
			return c.Status(fiber.StatusBadGateway).JSON(wfErr.Report())
		case errors.Is(err, domain.ErrNotFound):
			return notFound(c)
		case errors.Is(err, domain.ErrForbidden):
			return forbidden(c, "El servidor denegó el acceso al recurso")
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_INPUT", Message: err.Error()})
		case errors.Is(err, domain.ErrConflict):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})
		case errors.As(err, &fiberErr):
			if fiberErr.Code == fiber.StatusNotFound {
				return notFound(c)
			}
			return c.Status(fiberErr.Code).JSON(dto.ErrorResponse{Code: "HTTP", Message: fiberErr.Message})
		}

		log.Error().Err(err).Str("path", c.Path()).Msg("error no controlado en la página")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: "Ocurrió un error inesperado",
		})
	}
}

// NotFound página 404 para rutas desconocidas.
func NotFound(c *fiber.Ctx) error {
	return notFound(c)
}

func notFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
		Code: "NOT_FOUND", Message: "La página o el registro solicitado no existe",
	})
}

// badRequest cuerpo o parámetro de ruta ilegible.
func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: msg})
}
