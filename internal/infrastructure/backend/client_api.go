package backend

import "github.com/jhoicas/urbanfarm-dashboard/internal/domain/entity"

// ClientAPI /clients. Solo CRUD.
type ClientAPI struct {
	resource[entity.Client]
}

// NewClientAPI construye el módulo de clientes.
func NewClientAPI(c *Client) *ClientAPI {
	return &ClientAPI{resource: newResource[entity.Client](c, "/clients")}
}
