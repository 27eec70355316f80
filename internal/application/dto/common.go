package dto

// ErrorResponse cuerpo de error HTTP de las páginas.
type ErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// ListResponse listado de una página. Fallback indica que Items no viene del backend
// (datos demo o lista vacía tras un fallo de la API).
type ListResponse[T any] struct {
	Items    []T  `json:"items"`
	Total    int  `json:"total"`
	Fallback bool `json:"fallback,omitempty"`
}

// NewListResponse construye la respuesta garantizando un arreglo JSON (nunca null).
func NewListResponse[T any](items []T, fallback bool) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Items: items, Total: len(items), Fallback: fallback}
}

// ActionResponse resultado de un formulario o acción que no devuelve una entidad.
type ActionResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message,omitempty"`
	Redirect string `json:"redirect,omitempty"`
}

// DetailResponse ficha de un registro. Fallback indica que viene de los datos demo.
type DetailResponse[T any] struct {
	Item     T    `json:"item"`
	Fallback bool `json:"fallback,omitempty"`
}
