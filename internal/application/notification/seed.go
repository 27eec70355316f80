package notification

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/urbanfarm-dashboard/internal/domain/entity"
)

// seed notificaciones de ejemplo para la primera carga.
func seed(now time.Time) []entity.Notification {
	return []entity.Notification{
		{
			ID:        uuid.NewString(),
			Title:     "Cosecha lista",
			Message:   "La lechuga de la Granja Azotea está lista para cosechar.",
			Severity:  entity.SeveritySuccess,
			Category:  entity.CategoryCrop,
			Timestamp: now.Add(-30 * time.Minute),
			ActionURL: "/app/crops",
		},
		{
			ID:        uuid.NewString(),
			Title:     "Stock bajo",
			Message:   "La albahaca está por debajo del nivel de reorden.",
			Severity:  entity.SeverityWarning,
			Category:  entity.CategoryInventory,
			Timestamp: now.Add(-2 * time.Hour),
			ActionURL: "/app/inventory",
		},
		{
			ID:        uuid.NewString(),
			Title:     "Nuevo pedido",
			Message:   "Restaurante Verde realizó un pedido de 20 kg de tomate.",
			Severity:  entity.SeverityInfo,
			Category:  entity.CategoryOrder,
			Timestamp: now.Add(-5 * time.Hour),
			ActionURL: "/app/orders",
		},
		{
			ID:        uuid.NewString(),
			Title:     "Turno sin cubrir",
			Message:   "No hay voluntarios asignados al turno del sábado.",
			Severity:  entity.SeverityError,
			Category:  entity.CategoryStaff,
			Timestamp: now.Add(-24 * time.Hour),
			ActionURL: "/app/staff",
		},
		{
			ID:        uuid.NewString(),
			Title:     "Mantenimiento programado",
			Message:   "El sistema estará en mantenimiento el domingo de 2:00 a 4:00.",
			Severity:  entity.SeverityInfo,
			Category:  entity.CategorySystem,
			Timestamp: now.Add(-48 * time.Hour),
			Read:      true,
		},
	}
}
