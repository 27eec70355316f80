package entity

import "github.com/shopspring/decimal"

// Estados de un pedido.
const (
	OrderStatusPending   = "PENDING"
	OrderStatusPlaced    = "PLACED"
	OrderStatusShipped   = "SHIPPED"
	OrderStatusDelivered = "DELIVERED"
	OrderStatusCancelled = "CANCELLED"
)

// Order pedido de un cliente sobre un ítem de inventario (Order → Inventory → Client).
type Order struct {
	ID           int64           `json:"id,omitempty"`
	ClientID     int64           `json:"clientId"`
	InventoryID  int64           `json:"inventoryId"`
	Quantity     decimal.Decimal `json:"quantity"`
	TotalPrice   decimal.Decimal `json:"totalPrice"`
	Status       string          `json:"status,omitempty"`
	OrderDate    Date            `json:"orderDate"`
	DeliveryDate Date            `json:"deliveryDate,omitempty"`
	Notes        string          `json:"notes,omitempty"`
}
