package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/urbanfarm-dashboard/internal/domain/entity"
)

// InventoryAPI /inventory.
type InventoryAPI struct {
	resource[entity.InventoryItem]
}

// NewInventoryAPI construye el módulo de inventario.
func NewInventoryAPI(c *Client) *InventoryAPI {
	return &InventoryAPI{resource: newResource[entity.InventoryItem](c, "/inventory")}
}

// Availability respuesta de check-availability. El backend responde un booleano
// suelto o {"available": bool}; ambos se aceptan.
type Availability bool

func (a *Availability) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '{' {
		var obj struct {
			Available bool `json:"available"`
		}
		if err := json.Unmarshal(b, &obj); err != nil {
			return err
		}
		*a = Availability(obj.Available)
		return nil
	}
	var v bool
	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("disponibilidad: %w", err)
	}
	*a = Availability(v)
	return nil
}

// CheckAvailability GET /inventory/check-availability/{id}/{qty}.
func (a *InventoryAPI) CheckAvailability(ctx context.Context, inventoryID int64, qty decimal.Decimal) (bool, error) {
	var out Availability
	if err := a.c.get(ctx, fmt.Sprintf("%s/check-availability/%d/%s", a.base, inventoryID, qty.String()), &out); err != nil {
		return false, err
	}
	return bool(out), nil
}

// UpdateQuantity PUT /inventory/update-quantity/{id}/{qty}. qty es la cantidad absoluta resultante.
func (a *InventoryAPI) UpdateQuantity(ctx context.Context, inventoryID int64, qty decimal.Decimal) (*entity.InventoryItem, error) {
	var out entity.InventoryItem
	if err := a.c.put(ctx, fmt.Sprintf("%s/update-quantity/%d/%s", a.base, inventoryID, qty.String()), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
