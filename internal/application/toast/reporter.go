package toast

import (
	"errors"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"

	"github.com/jhoicas/urbanfarm-dashboard/internal/domain"
	"github.com/jhoicas/urbanfarm-dashboard/internal/domain/entity"
)

// Mensajes por defecto cuando el backend no envía "message".
const (
	MsgGeneric     = "Ocurrió un error al comunicarse con el servidor"
	MsgUnreachable = "No se pudo conectar con el servidor"
)

// Reporter es el único manejador de errores de la API. Es también el único lugar
// donde se consulta el modo demo.
type Reporter struct {
	center   *Center
	demoMode bool
	policy   *bluemonday.Policy
	log      zerolog.Logger
}

// NewReporter construye el manejador.
func NewReporter(center *Center, demoMode bool, log zerolog.Logger) *Reporter {
	return &Reporter{
		center:   center,
		demoMode: demoMode,
		policy:   bluemonday.StrictPolicy(),
		log:      log,
	}
}

// DemoMode indica si las páginas deben usar datos de ejemplo ante fallos de la API.
func (r *Reporter) DemoMode() bool { return r.demoMode }

// Report decide qué hacer con un error de la API:
//   - 401 nunca se muestra (lo maneja el desalojo de sesión).
//   - en modo demo solo se registra en el log.
//   - si no, se encola un toast con el mensaje del backend o uno genérico.
func (r *Reporter) Report(err error) {
	if err == nil || errors.Is(err, domain.ErrUnauthorized) {
		return
	}
	if r.demoMode {
		r.log.Debug().Err(err).Msg("error de API silenciado (modo demo)")
		return
	}
	r.log.Warn().Err(err).Msg("error de API")
	r.center.Push(entity.SeverityError, r.messageFor(err))
}

// Error encola un toast de error propio del dashboard (no de la API).
func (r *Reporter) Error(msg string) { r.center.Push(entity.SeverityError, msg) }

// Success encola un toast de éxito.
func (r *Reporter) Success(msg string) { r.center.Push(entity.SeveritySuccess, msg) }

// Info encola un toast informativo.
func (r *Reporter) Info(msg string) { r.center.Push(entity.SeverityInfo, msg) }

func (r *Reporter) messageFor(err error) string {
	var apiErr *domain.APIError
	if !errors.As(err, &apiErr) {
		return MsgGeneric
	}
	if apiErr.Status == 0 {
		return MsgUnreachable
	}
	if msg := strings.TrimSpace(r.policy.Sanitize(apiErr.Message)); msg != "" {
		return msg
	}
	return MsgGeneric
}
