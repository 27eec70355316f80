package entity

import "time"

// Severity nivel visual de una notificación.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Category área de negocio de una notificación.
type Category string

const (
	CategorySystem    Category = "system"
	CategoryFarm      Category = "farm"
	CategoryCrop      Category = "crop"
	CategoryOrder     Category = "order"
	CategoryInventory Category = "inventory"
	CategoryStaff     Category = "staff"
)

// Notification aviso para el operador. Vive solo en el dashboard (no viene del servidor).
type Notification struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Severity  Severity  `json:"type"`
	Category  Category  `json:"category"`
	Read      bool      `json:"read"`
	Timestamp time.Time `json:"timestamp"`
	ActionURL string    `json:"actionUrl,omitempty"`
}
