package entity

import "github.com/shopspring/decimal"

// InventoryItem existencia de producto cosechado disponible para pedidos.
// La regla "la cantidad no puede ser negativa" la aplica el backend.
type InventoryItem struct {
	ID           int64           `json:"id,omitempty"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Quantity     decimal.Decimal `json:"quantity"`
	Unit         string          `json:"unit"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	ReorderLevel decimal.Decimal `json:"reorderLevel"`
	FarmID       *int64          `json:"farmId,omitempty"`
	Description  string          `json:"description,omitempty"`
}

// LowStock indica si la existencia está en o por debajo del nivel de reorden.
func (i InventoryItem) LowStock() bool {
	return i.ReorderLevel.IsPositive() && i.Quantity.LessThanOrEqual(i.ReorderLevel)
}
