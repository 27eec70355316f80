package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/urbanfarm-dashboard/internal/application/prediction"
	"github.com/jhoicas/urbanfarm-dashboard/internal/domain/entity"
)

// DashboardSummaryDTO respuesta de GET /app/dashboard.
// Las predicciones son estimaciones ilustrativas de fórmula fija, no un modelo.
type DashboardSummaryDTO struct {
	FarmCount      int                    `json:"farmCount"`
	CropCount      int                    `json:"cropCount"`
	InventoryCount int                    `json:"inventoryCount"`
	OrderCount     int                    `json:"orderCount"`
	PendingOrders  int                    `json:"pendingOrders"`
	InventoryValue decimal.Decimal        `json:"inventoryValue"`
	LowStock       []entity.InventoryItem `json:"lowStock"`
	Predictions    []CropPredictionDTO    `json:"predictions"`
	UnreadCount    int                    `json:"unreadNotifications"`
	Fallback       bool                   `json:"fallback,omitempty"`
}

// CropPredictionDTO estimaciones de un cultivo para el widget del dashboard.
type CropPredictionDTO struct {
	CropID int64                    `json:"cropId"`
	Name   string                   `json:"name"`
	Yield  prediction.YieldEstimate `json:"yield"`
	Water  prediction.WaterEstimate `json:"water"`
	Pest   prediction.PestRisk      `json:"pestRisk"`
}
