package entity

import "github.com/shopspring/decimal"

// Tipos de métrica de sostenibilidad.
const (
	MetricWaterUsage      = "WATER_USAGE"
	MetricEnergyUsage     = "ENERGY_USAGE"
	MetricCarbonFootprint = "CARBON_FOOTPRINT"
	MetricWasteReduced    = "WASTE_REDUCED"
	MetricCompost         = "COMPOST"
)

// SustainabilityMetric medición asociada a una granja y opcionalmente a un cultivo.
type SustainabilityMetric struct {
	ID         int64           `json:"id,omitempty"`
	FarmID     int64           `json:"farmId"`
	CropID     *int64          `json:"cropId,omitempty"`
	MetricType string          `json:"metricType"`
	Value      decimal.Decimal `json:"value"`
	Unit       string          `json:"unit"`
	RecordedAt Date            `json:"recordedAt"`
	Notes      string          `json:"notes,omitempty"`
}

// Recommendation sugerencia del backend para mejorar la sostenibilidad de una granja.
type Recommendation struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority,omitempty"`
	Category    string `json:"category,omitempty"`
}
