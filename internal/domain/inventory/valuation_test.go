package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/urbanfarm-dashboard/internal/domain/entity"
	"github.com/jhoicas/urbanfarm-dashboard/internal/domain/inventory"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestStockValue(t *testing.T) {
	items := []entity.InventoryItem{
		{Quantity: d("10"), UnitPrice: d("2.5")},
		{Quantity: d("3"), UnitPrice: d("1.333")},
		{Quantity: d("-4"), UnitPrice: d("100")},
	}
	assert.True(t, d("29").Equal(inventory.StockValue(items)), "got %s", inventory.StockValue(items))
	assert.True(t, inventory.StockValue(nil).IsZero())
}

func TestCoverage(t *testing.T) {
	assert.True(t, d("0.5").Equal(inventory.Coverage(entity.InventoryItem{Quantity: d("5"), ReorderLevel: d("10")})))
	assert.True(t, inventory.Coverage(entity.InventoryItem{Quantity: d("5")}).IsZero())
}
