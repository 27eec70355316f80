package backend

import (
	"context"
	"fmt"

	"github.com/jhoicas/urbanfarm-dashboard/internal/domain/entity"
)

// SustainabilityAPI /sustainability/metrics.
type SustainabilityAPI struct {
	resource[entity.SustainabilityMetric]
}

// NewSustainabilityAPI construye el módulo de métricas de sostenibilidad.
func NewSustainabilityAPI(c *Client) *SustainabilityAPI {
	return &SustainabilityAPI{resource: newResource[entity.SustainabilityMetric](c, "/sustainability/metrics")}
}

// Recommendations GET /sustainability/farm/{farmId}/recommendations.
func (a *SustainabilityAPI) Recommendations(ctx context.Context, farmID int64) ([]entity.Recommendation, error) {
	var out []entity.Recommendation
	if err := a.c.get(ctx, fmt.Sprintf("/sustainability/farm/%d/recommendations", farmID), &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []entity.Recommendation{}
	}
	return out, nil
}
