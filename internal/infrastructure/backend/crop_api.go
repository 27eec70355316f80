package backend

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/urbanfarm-dashboard/internal/domain/entity"
)

// CropAPI /crops.
type CropAPI struct {
	resource[entity.Crop]
}

// NewCropAPI construye el módulo de cultivos.
func NewCropAPI(c *Client) *CropAPI {
	return &CropAPI{resource: newResource[entity.Crop](c, "/crops")}
}

type recordHarvestBody struct {
	Yield         decimal.Decimal `json:"yield"`
	QualityRating int             `json:"qualityRating"`
}

// RecordHarvest POST /crops/{id}/record-harvest.
func (a *CropAPI) RecordHarvest(ctx context.Context, cropID int64, yield decimal.Decimal, qualityRating int) (*entity.Harvest, error) {
	var out entity.Harvest
	body := recordHarvestBody{Yield: yield, QualityRating: qualityRating}
	if err := a.c.post(ctx, a.item(cropID)+"/record-harvest", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RecordMetrics POST /crops/{id}/record-metrics.
func (a *CropAPI) RecordMetrics(ctx context.Context, cropID int64, m entity.CropMetrics) error {
	return a.c.post(ctx, a.item(cropID)+"/record-metrics", m, nil)
}

// AssignToFarm POST /crops/{id}/assign-to-farm/{farmId}.
func (a *CropAPI) AssignToFarm(ctx context.Context, cropID, farmID int64) (*entity.Crop, error) {
	var out entity.Crop
	if err := a.c.post(ctx, fmt.Sprintf("%s/assign-to-farm/%d", a.item(cropID), farmID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
