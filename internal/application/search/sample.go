package search

import (
	"context"
	"strings"

	"golang.org/x/text/cases"

	"github.com/jhoicas/urbanfarm-dashboard/internal/domain/entity"
)

// SampleSource filtra una muestra fija en memoria. Es un sustituto hasta que el
// backend exponga GET /search (ver SEARCH_USE_BACKEND).
type SampleSource struct {
	items []entity.SearchResult
}

// NewSampleSource usa items, o la muestra por defecto si es nil.
func NewSampleSource(items []entity.SearchResult) *SampleSource {
	if items == nil {
		items = defaultSample
	}
	return &SampleSource{items: items}
}

// Search coincidencia por subcadena sin distinguir mayúsculas en nombre o descripción.
func (s *SampleSource) Search(_ context.Context, query string) ([]entity.SearchResult, error) {
	// cases.Caser no es seguro para uso concurrente; se usa una copia por llamada.
	fold := cases.Fold()
	q := fold.String(query)
	out := []entity.SearchResult{}
	for _, it := range s.items {
		if strings.Contains(fold.String(it.Name), q) || strings.Contains(fold.String(it.Description), q) {
			out = append(out, it)
		}
	}
	return out, nil
}

var defaultSample = []entity.SearchResult{
	{ID: 1, Type: "farm", Name: "Granja Azotea Centro", Description: "Huerta en azotea de 250 m²", URL: "/app/farms/1"},
	{ID: 2, Type: "farm", Name: "Invernadero Norte", Description: "Invernadero hidropónico", URL: "/app/farms/2"},
	{ID: 1, Type: "crop", Name: "Lechuga Romana", Description: "Cultivo de hoja en Granja Azotea Centro", URL: "/app/crops/1"},
	{ID: 2, Type: "crop", Name: "Tomate Cherry", Description: "Cultivo vertical de tomate", URL: "/app/crops/2"},
	{ID: 3, Type: "crop", Name: "Albahaca", Description: "Hierba aromática para restaurantes", URL: "/app/crops/3"},
	{ID: 1, Type: "inventory", Name: "Microgreens mix", Description: "Bandejas listas para venta", URL: "/app/inventory/1"},
	{ID: 1, Type: "client", Name: "Restaurante Verde", Description: "Cliente mayorista de hortalizas", URL: "/app/clients/1"},
	{ID: 1, Type: "staff", Name: "María Gómez", Description: "Coordinadora de voluntarios", URL: "/app/staff/1"},
}
