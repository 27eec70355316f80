package entity

import "github.com/shopspring/decimal"

// Rango válido de calidad de una cosecha.
const (
	MinQualityRating = 1
	MaxQualityRating = 5
)

// Harvest cosecha de un cultivo (Harvest → Crop/Farm/Inventory). Yield en kg.
type Harvest struct {
	ID            int64           `json:"id,omitempty"`
	CropID        int64           `json:"cropId"`
	FarmID        int64           `json:"farmId"`
	InventoryID   *int64          `json:"inventoryId,omitempty"`
	HarvestDate   Date            `json:"harvestDate"`
	Yield         decimal.Decimal `json:"yield"`
	QualityRating int             `json:"qualityRating"`
	Notes         string          `json:"notes,omitempty"`
}
