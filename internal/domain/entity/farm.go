package entity

import "github.com/shopspring/decimal"

// Tipos de granja.
const (
	FarmTypeRooftop    = "ROOFTOP"
	FarmTypeVertical   = "VERTICAL"
	FarmTypeCommunity  = "COMMUNITY"
	FarmTypeGreenhouse = "GREENHOUSE"
	FarmTypeHydroponic = "HYDROPONIC"
)

// Farm granja urbana. El ciclo de vida lo controla el backend.
type Farm struct {
	ID          int64           `json:"id,omitempty"`
	Name        string          `json:"name"`
	Location    string          `json:"location"`
	SizeSqM     decimal.Decimal `json:"size"`
	FarmType    string          `json:"farmType,omitempty"`
	Description string          `json:"description,omitempty"`
	CreatedAt   Date            `json:"createdAt,omitempty"`
}

// SustainabilityReport resumen de sostenibilidad calculado por el backend para una granja.
type SustainabilityReport struct {
	FarmID          int64                  `json:"farmId"`
	FarmName        string                 `json:"farmName"`
	Score           decimal.Decimal        `json:"sustainabilityScore"`
	WaterUsage      decimal.Decimal        `json:"totalWaterUsage"`
	EnergyUsage     decimal.Decimal        `json:"totalEnergyUsage"`
	CarbonFootprint decimal.Decimal        `json:"carbonFootprint"`
	WasteReduced    decimal.Decimal        `json:"wasteReduced"`
	Summary         string                 `json:"summary,omitempty"`
	Metrics         []SustainabilityMetric `json:"metrics,omitempty"`
	GeneratedAt     Date                   `json:"generatedAt,omitempty"`
}
