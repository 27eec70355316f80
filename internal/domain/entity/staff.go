package entity

import "github.com/shopspring/decimal"

// Roles del personal (distintos de los roles de acceso al dashboard).
const (
	StaffRoleEmployee  = "EMPLOYEE"
	StaffRoleVolunteer = "VOLUNTEER"
	StaffRoleManager   = "MANAGER"
)

// Staff empleado o voluntario, opcionalmente asignado a una granja.
type Staff struct {
	ID        int64           `json:"id,omitempty"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Phone     string          `json:"phone,omitempty"`
	Role      string          `json:"role"`
	FarmID    *int64          `json:"farmId,omitempty"`
	WorkHours decimal.Decimal `json:"workHours"`
	StartDate Date            `json:"startDate,omitempty"`
}
