package backend

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/urbanfarm-dashboard/internal/domain/entity"
)

// HarvestAPI /harvests.
type HarvestAPI struct {
	resource[entity.Harvest]
}

// NewHarvestAPI construye el módulo de cosechas.
func NewHarvestAPI(c *Client) *HarvestAPI {
	return &HarvestAPI{resource: newResource[entity.Harvest](c, "/harvests")}
}

// UpdateQuality PUT /harvests/{id}/update-quality.
func (a *HarvestAPI) UpdateQuality(ctx context.Context, harvestID int64, rating int) (*entity.Harvest, error) {
	var out entity.Harvest
	body := map[string]int{"qualityRating": rating}
	if err := a.c.put(ctx, a.item(harvestID)+"/update-quality", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateYield PUT /harvests/{id}/update-yield.
func (a *HarvestAPI) UpdateYield(ctx context.Context, harvestID int64, yield decimal.Decimal) (*entity.Harvest, error) {
	var out entity.Harvest
	body := map[string]decimal.Decimal{"yield": yield}
	if err := a.c.put(ctx, a.item(harvestID)+"/update-yield", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TransferToInventory POST /harvests/{id}/transfer-to-inventory/{inventoryId}.
func (a *HarvestAPI) TransferToInventory(ctx context.Context, harvestID, inventoryID int64) error {
	return a.c.post(ctx, fmt.Sprintf("%s/transfer-to-inventory/%d", a.item(harvestID), inventoryID), nil, nil)
}
