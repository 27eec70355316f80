package backend

import (
	"context"
	"fmt"

	"github.com/jhoicas/urbanfarm-dashboard/internal/domain/entity"
)

// FarmAPI /farms.
type FarmAPI struct {
	resource[entity.Farm]
}

// NewFarmAPI construye el módulo de granjas.
func NewFarmAPI(c *Client) *FarmAPI {
	return &FarmAPI{resource: newResource[entity.Farm](c, "/farms")}
}

// TrackCrops POST /farms/{id}/track-crops: cultivos activos de la granja.
func (a *FarmAPI) TrackCrops(ctx context.Context, farmID int64) ([]entity.Crop, error) {
	var out []entity.Crop
	if err := a.c.post(ctx, a.item(farmID)+"/track-crops", nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []entity.Crop{}
	}
	return out, nil
}

// ManageStaff POST /farms/{id}/manage-staff/{staffId}.
func (a *FarmAPI) ManageStaff(ctx context.Context, farmID, staffID int64) error {
	return a.c.post(ctx, fmt.Sprintf("%s/manage-staff/%d", a.item(farmID), staffID), nil, nil)
}

// SustainabilityReport GET /farms/{id}/sustainability-report.
func (a *FarmAPI) SustainabilityReport(ctx context.Context, farmID int64) (*entity.SustainabilityReport, error) {
	var out entity.SustainabilityReport
	if err := a.c.get(ctx, a.item(farmID)+"/sustainability-report", &out); err != nil {
		return nil, err
	}
	return &out, nil
}
