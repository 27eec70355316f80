package workflow

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/urbanfarm-dashboard/internal/domain/entity"
)

// HarvestPort lo cumple *backend.HarvestAPI.
type HarvestPort interface {
	Create(ctx context.Context, in entity.Harvest) (*entity.Harvest, error)
	Delete(ctx context.Context, id int64) error
	TransferToInventory(ctx context.Context, harvestID, inventoryID int64) error
}

// InventoryPort lo cumple *backend.InventoryAPI.
type InventoryPort interface {
	GetByID(ctx context.Context, id int64) (*entity.InventoryItem, error)
	CheckAvailability(ctx context.Context, inventoryID int64, qty decimal.Decimal) (bool, error)
	UpdateQuantity(ctx context.Context, inventoryID int64, qty decimal.Decimal) (*entity.InventoryItem, error)
}

// OrderPort lo cumple *backend.OrderAPI.
type OrderPort interface {
	Create(ctx context.Context, in entity.Order) (*entity.Order, error)
	Delete(ctx context.Context, id int64) error
	PlaceOrder(ctx context.Context, orderID int64) (*entity.Order, error)
	CancelOrder(ctx context.Context, orderID int64) (*entity.Order, error)
}
