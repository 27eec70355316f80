// Package form define un esquema canónico por entidad: los campos llegan como texto
// (igual que desde un formulario HTML), se validan con etiquetas `validate` y luego
// se convierten al tipo de dominio antes de llamar a la API.
package form

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/urbanfarm-dashboard/internal/domain"
)

// FieldErrors errores por campo (nombre json → mensaje). Se muestran junto a cada campo.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	keys := make([]string, 0, len(fe))
	for k := range fe {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+fe[k])
	}
	return "validación: " + strings.Join(parts, "; ")
}

// Is permite errors.Is(err, domain.ErrInvalidInput).
func (fe FieldErrors) Is(target error) bool { return target == domain.ErrInvalidInput }

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func instance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// Los errores se reportan con el nombre json del campo.
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return f.Name
			}
			return name
		})
	})
	return validate
}

// Validate aplica las etiquetas `validate` de f. Devuelve FieldErrors o nil.
func Validate(f any) error {
	err := instance().Struct(f)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := FieldErrors{}
	for _, fe := range verrs {
		if _, seen := out[fe.Field()]; !seen {
			out[fe.Field()] = message(fe)
		}
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "es obligatorio"
	case "min":
		return fmt.Sprintf("debe tener al menos %s caracteres", fe.Param())
	case "max":
		return fmt.Sprintf("no puede superar %s caracteres", fe.Param())
	case "len":
		return fmt.Sprintf("debe tener %s caracteres", fe.Param())
	case "email":
		return "correo electrónico inválido"
	case "numeric":
		return "debe ser un número"
	case "oneof":
		return "debe ser uno de: " + fe.Param()
	case "datetime":
		return "fecha inválida (AAAA-MM-DD)"
	case "eqfield":
		return "no coincide"
	}
	return "valor inválido"
}

// Form formulario convertible a la entidad T. Payload devuelve FieldErrors si la conversión falla.
type Form[T any] interface {
	Payload() (T, error)
}

// Guard bandera de envío en curso, una por formulario.
type Guard struct {
	busy atomic.Bool
}

// InFlight indica si hay un envío en curso.
func (g *Guard) InFlight() bool { return g.busy.Load() }

// Submit valida, convierte y envía. Un segundo envío mientras el primero sigue en curso
// devuelve domain.ErrSubmissionInFlight. La bandera se libera siempre al terminar.
// Si la validación falla no se llama a send.
func Submit[T any](ctx context.Context, g *Guard, f Form[T], send func(context.Context, T) error) error {
	if err := Validate(f); err != nil {
		return err
	}
	payload, err := f.Payload()
	if err != nil {
		return err
	}
	if !g.busy.CompareAndSwap(false, true) {
		return domain.ErrSubmissionInFlight
	}
	defer g.busy.Store(false)
	return send(ctx, payload)
}
