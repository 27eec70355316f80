package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/urbanfarm-dashboard/internal/domain/entity"
)

// StockValue valor del inventario a precio unitario: Σ(Cantidad × PrecioUnitario).
// Las cantidades negativas (dato inconsistente del backend) no suman.
func StockValue(items []entity.InventoryItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		if it.Quantity.IsNegative() {
			continue
		}
		total = total.Add(it.Quantity.Mul(it.UnitPrice))
	}
	return total.Round(2)
}

// Coverage proporción de existencia sobre el nivel de reorden.
// Sin nivel de reorden configurado devuelve cero.
func Coverage(it entity.InventoryItem) decimal.Decimal {
	if !it.ReorderLevel.IsPositive() {
		return decimal.Zero
	}
	return it.Quantity.Div(it.ReorderLevel).Round(2)
}
