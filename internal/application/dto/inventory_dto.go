package dto

import "github.com/shopspring/decimal"

// AvailabilityResponse respuesta de GET /app/inventory/:id/availability/:qty.
type AvailabilityResponse struct {
	InventoryID int64           `json:"inventoryId"`
	Quantity    decimal.Decimal `json:"quantity"`
	Available   bool            `json:"available"`
}
