package entity

import "github.com/shopspring/decimal"

// Estados de un cultivo.
const (
	CropStatusPlanned   = "PLANNED"
	CropStatusPlanted   = "PLANTED"
	CropStatusGrowing   = "GROWING"
	CropStatusHarvested = "HARVESTED"
	CropStatusFailed    = "FAILED"
)

// Crop cultivo asociado a una granja (Crop → Farm).
type Crop struct {
	ID                  int64           `json:"id,omitempty"`
	Name                string          `json:"name"`
	Variety             string          `json:"variety,omitempty"`
	CropType            string          `json:"cropType,omitempty"`
	FarmID              int64           `json:"farmId"`
	PlantingDate        Date            `json:"plantingDate"`
	ExpectedHarvestDate Date            `json:"expectedHarvestDate,omitempty"`
	Status              string          `json:"status,omitempty"`
	AreaSqM             decimal.Decimal `json:"area"`
	Description         string          `json:"description,omitempty"`
}

// CropMetrics lecturas de crecimiento enviadas a POST /crops/{id}/record-metrics.
type CropMetrics struct {
	HeightCm     decimal.Decimal `json:"height"`
	Humidity     decimal.Decimal `json:"humidity"`
	TemperatureC decimal.Decimal `json:"temperature"`
	SoilMoisture decimal.Decimal `json:"soilMoisture"`
	HealthRating int             `json:"healthRating,omitempty"`
	RecordedAt   Date            `json:"recordedAt,omitempty"`
	Observations string          `json:"observations,omitempty"`
}
