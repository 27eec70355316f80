package backend

import (
	"context"

	"github.com/jhoicas/urbanfarm-dashboard/internal/domain/entity"
)

// OrderAPI /orders.
type OrderAPI struct {
	resource[entity.Order]
}

// NewOrderAPI construye el módulo de pedidos.
func NewOrderAPI(c *Client) *OrderAPI {
	return &OrderAPI{resource: newResource[entity.Order](c, "/orders")}
}

// UpdateStatus PUT /orders/{id}/update-status.
func (a *OrderAPI) UpdateStatus(ctx context.Context, orderID int64, status string) (*entity.Order, error) {
	var out entity.Order
	if err := a.c.put(ctx, a.item(orderID)+"/update-status", map[string]string{"status": status}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PlaceOrder POST /orders/{id}/place-order.
func (a *OrderAPI) PlaceOrder(ctx context.Context, orderID int64) (*entity.Order, error) {
	var out entity.Order
	if err := a.c.post(ctx, a.item(orderID)+"/place-order", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CancelOrder POST /orders/{id}/cancel-order.
func (a *OrderAPI) CancelOrder(ctx context.Context, orderID int64) (*entity.Order, error) {
	var out entity.Order
	if err := a.c.post(ctx, a.item(orderID)+"/cancel-order", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
