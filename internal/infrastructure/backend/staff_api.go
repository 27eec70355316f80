package backend

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/urbanfarm-dashboard/internal/domain/entity"
)

// StaffAPI /staff-and-volunteers.
type StaffAPI struct {
	resource[entity.Staff]
}

// NewStaffAPI construye el módulo de personal y voluntarios.
func NewStaffAPI(c *Client) *StaffAPI {
	return &StaffAPI{resource: newResource[entity.Staff](c, "/staff-and-volunteers")}
}

// AssignToFarm POST /staff-and-volunteers/{id}/assign-to-farm/{farmId}.
func (a *StaffAPI) AssignToFarm(ctx context.Context, staffID, farmID int64) (*entity.Staff, error) {
	var out entity.Staff
	if err := a.c.post(ctx, fmt.Sprintf("%s/assign-to-farm/%d", a.item(staffID), farmID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateWorkHours PUT /staff-and-volunteers/{id}/update-work-hours.
func (a *StaffAPI) UpdateWorkHours(ctx context.Context, staffID int64, hours decimal.Decimal) (*entity.Staff, error) {
	var out entity.Staff
	body := map[string]decimal.Decimal{"hours": hours}
	if err := a.c.put(ctx, a.item(staffID)+"/update-work-hours", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
