package workflow

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/urbanfarm-dashboard/internal/domain/entity"
)

// IntakeResult cosecha creada y estado final del ítem de inventario.
type IntakeResult struct {
	Harvest   *entity.Harvest       `json:"harvest"`
	Inventory *entity.InventoryItem `json:"inventory"`
}

// HarvestIntake registra una cosecha y la ingresa al inventario.
type HarvestIntake struct {
	harvests  HarvestPort
	inventory InventoryPort
	log       zerolog.Logger
}

// NewHarvestIntake construye el flujo.
func NewHarvestIntake(harvests HarvestPort, inventory InventoryPort, log zerolog.Logger) *HarvestIntake {
	return &HarvestIntake{harvests: harvests, inventory: inventory, log: log}
}

// Run crea la cosecha, la transfiere a inventoryID y suma el rendimiento al stock.
// La transferencia no tiene endpoint inverso: si falla el paso 3 queda aplicada.
func (w *HarvestIntake) Run(ctx context.Context, h entity.Harvest, inventoryID int64) (*IntakeResult, error) {
	var (
		created  *entity.Harvest
		updated  *entity.InventoryItem
		previous decimal.Decimal
	)
	h.InventoryID = &inventoryID

	saga := NewSaga("ingreso de cosecha", w.log).
		Step("crear cosecha",
			func(ctx context.Context) error {
				var err error
				created, err = w.harvests.Create(ctx, h)
				return err
			},
			func(ctx context.Context) error {
				return w.harvests.Delete(ctx, created.ID)
			}).
		Step("transferir a inventario",
			func(ctx context.Context) error {
				return w.harvests.TransferToInventory(ctx, created.ID, inventoryID)
			},
			nil).
		Step("sumar al stock",
			func(ctx context.Context) error {
				item, err := w.inventory.GetByID(ctx, inventoryID)
				if err != nil {
					return err
				}
				previous = item.Quantity
				updated, err = w.inventory.UpdateQuantity(ctx, inventoryID, previous.Add(created.Yield))
				return err
			},
			func(ctx context.Context) error {
				_, err := w.inventory.UpdateQuantity(ctx, inventoryID, previous)
				return err
			})

	if err := saga.Run(ctx); err != nil {
		return nil, err
	}
	w.log.Info().Int64("harvest_id", created.ID).Int64("inventory_id", inventoryID).Msg("cosecha ingresada al inventario")
	return &IntakeResult{Harvest: created, Inventory: updated}, nil
}
