package backend

import (
	"context"
	"net/url"

	"github.com/jhoicas/urbanfarm-dashboard/internal/domain/entity"
)

// SearchAPI GET /search?q=. Contrato inferido; solo se usa con SEARCH_USE_BACKEND=true.
type SearchAPI struct {
	c *Client
}

// NewSearchAPI construye el módulo de búsqueda.
func NewSearchAPI(c *Client) *SearchAPI {
	return &SearchAPI{c: c}
}

// Search cumple search.Source.
func (a *SearchAPI) Search(ctx context.Context, query string) ([]entity.SearchResult, error) {
	var out []entity.SearchResult
	if err := a.c.get(ctx, "/search?q="+url.QueryEscape(query), &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []entity.SearchResult{}
	}
	return out, nil
}
