// Package workflow orquesta los flujos de varios pasos contra el backend:
//
//	cosecha:  crear cosecha → transferir a inventario → sumar al stock
//	pedido:   verificar stock → crear pedido → confirmar pedido → descontar stock
//
// Cada paso es una llamada HTTP independiente; si uno falla se compensan los
// anteriores en orden inverso y se devuelve un *Error con el detalle.
package workflow

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// Action paso o compensación.
type Action func(ctx context.Context) error

type step struct {
	name string
	do   Action
	undo Action // nil: el paso no tiene compensación
}

// Saga secuencia de pasos con compensación.
type Saga struct {
	name  string
	steps []step
	log   zerolog.Logger
}

// NewSaga crea una saga vacía.
func NewSaga(name string, log zerolog.Logger) *Saga {
	return &Saga{name: name, log: log}
}

// Step agrega un paso. undo puede ser nil.
func (s *Saga) Step(name string, do, undo Action) *Saga {
	s.steps = append(s.steps, step{name: name, do: do, undo: undo})
	return s
}

// Run ejecuta los pasos en orden. Si uno falla, ejecuta las compensaciones de los
// pasos completados en orden inverso. Las compensaciones corren aunque ctx ya esté cancelado.
func (s *Saga) Run(ctx context.Context) error {
	var done []step
	for _, st := range s.steps {
		if err := st.do(ctx); err != nil {
			s.log.Warn().Err(err).Str("workflow", s.name).Str("step", st.name).Msg("paso fallido, compensando")
			return s.compensate(context.WithoutCancel(ctx), st.name, err, done)
		}
		done = append(done, st)
	}
	return nil
}

func (s *Saga) compensate(ctx context.Context, failed string, cause error, done []step) *Error {
	e := &Error{Workflow: s.name, FailedStep: failed, Cause: cause}
	for _, st := range done {
		e.Applied = append(e.Applied, st.name)
	}
	for i := len(done) - 1; i >= 0; i-- {
		st := done[i]
		if st.undo == nil {
			e.Uncompensated = append(e.Uncompensated, st.name)
			continue
		}
		if err := st.undo(ctx); err != nil {
			s.log.Error().Err(err).Str("workflow", s.name).Str("step", st.name).Msg("compensación fallida")
			e.CompensationErrors = append(e.CompensationErrors, StepError{Step: st.name, Err: err})
			continue
		}
		e.Compensated = append(e.Compensated, st.name)
	}
	return e
}

// StepError error de la compensación de un paso.
type StepError struct {
	Step string
	Err  error
}

// Error resultado de un flujo fallido.
type Error struct {
	Workflow           string
	FailedStep         string
	Cause              error
	Applied            []string // pasos completados antes del fallo, en orden
	Compensated        []string // compensados, en el orden en que se deshicieron
	Uncompensated      []string // completados sin compensación disponible
	CompensationErrors []StepError
}

func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: falló %q: %v", e.Workflow, e.FailedStep, e.Cause)
	if e.Partial() {
		b.WriteString(" (aplicado parcialmente)")
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Cause }

// Partial indica que el backend quedó con cambios que no se pudieron deshacer.
func (e *Error) Partial() bool {
	return len(e.Uncompensated) > 0 || len(e.CompensationErrors) > 0
}

// Report vista serializable para la página de error.
func (e *Error) Report() map[string]any {
	compErrs := make([]string, 0, len(e.CompensationErrors))
	for _, ce := range e.CompensationErrors {
		compErrs = append(compErrs, ce.Step+": "+ce.Err.Error())
	}
	return map[string]any{
		"workflow":           e.Workflow,
		"failedStep":         e.FailedStep,
		"cause":              e.Cause.Error(),
		"applied":            nonNil(e.Applied),
		"compensated":        nonNil(e.Compensated),
		"uncompensated":      nonNil(e.Uncompensated),
		"compensationErrors": compErrs,
		"partial":            e.Partial(),
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
