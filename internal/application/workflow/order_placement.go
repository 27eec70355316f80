package workflow

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/urbanfarm-dashboard/internal/domain"
	"github.com/jhoicas/urbanfarm-dashboard/internal/domain/entity"
)

// OrderPlacement crea y confirma un pedido descontando el stock.
type OrderPlacement struct {
	orders    OrderPort
	inventory InventoryPort
	log       zerolog.Logger
}

// NewOrderPlacement construye el flujo.
func NewOrderPlacement(orders OrderPort, inventory InventoryPort, log zerolog.Logger) *OrderPlacement {
	return &OrderPlacement{orders: orders, inventory: inventory, log: log}
}

// Run verifica disponibilidad antes de cualquier escritura: sin stock devuelve
// domain.ErrInsufficientStock y no crea nada.
func (w *OrderPlacement) Run(ctx context.Context, o entity.Order) (*entity.Order, error) {
	ok, err := w.inventory.CheckAvailability(ctx, o.InventoryID, o.Quantity)
	if err != nil {
		return nil, fmt.Errorf("verificar disponibilidad: %w", err)
	}
	if !ok {
		return nil, domain.ErrInsufficientStock
	}

	var (
		created  *entity.Order
		placed   *entity.Order
		previous decimal.Decimal
	)
	saga := NewSaga("colocación de pedido", w.log).
		Step("crear pedido",
			func(ctx context.Context) error {
				var err error
				created, err = w.orders.Create(ctx, o)
				return err
			},
			func(ctx context.Context) error {
				return w.orders.Delete(ctx, created.ID)
			}).
		Step("confirmar pedido",
			func(ctx context.Context) error {
				var err error
				placed, err = w.orders.PlaceOrder(ctx, created.ID)
				return err
			},
			func(ctx context.Context) error {
				_, err := w.orders.CancelOrder(ctx, created.ID)
				return err
			}).
		Step("descontar stock",
			func(ctx context.Context) error {
				item, err := w.inventory.GetByID(ctx, o.InventoryID)
				if err != nil {
					return err
				}
				previous = item.Quantity
				_, err = w.inventory.UpdateQuantity(ctx, o.InventoryID, previous.Sub(o.Quantity))
				return err
			},
			func(ctx context.Context) error {
				_, err := w.inventory.UpdateQuantity(ctx, o.InventoryID, previous)
				return err
			})

	if err := saga.Run(ctx); err != nil {
		return nil, err
	}
	w.log.Info().Int64("order_id", created.ID).Msg("pedido colocado")
	return placed, nil
}
