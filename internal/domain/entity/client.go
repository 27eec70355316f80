package entity

// Tipos de cliente.
const (
	ClientTypeRestaurant = "RESTAURANT"
	ClientTypeRetail     = "RETAIL"
	ClientTypeIndividual = "INDIVIDUAL"
	ClientTypeWholesale  = "WHOLESALE"
)

// Client comprador de la producción (restaurante, tienda, particular).
type Client struct {
	ID         int64  `json:"id,omitempty"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone,omitempty"`
	Address    string `json:"address,omitempty"`
	ClientType string `json:"clientType,omitempty"`
}
