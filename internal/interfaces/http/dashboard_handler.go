package http

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/urbanfarm-dashboard/internal/application/dto"
	"github.com/jhoicas/urbanfarm-dashboard/internal/application/notification"
	"github.com/jhoicas/urbanfarm-dashboard/internal/application/prediction"
	"github.com/jhoicas/urbanfarm-dashboard/internal/domain"
	"github.com/jhoicas/urbanfarm-dashboard/internal/domain/entity"
	stock "github.com/jhoicas/urbanfarm-dashboard/internal/domain/inventory"
)

// Condiciones de referencia para las estimaciones del widget (no hay sensores).
const (
	sampleTempC      = 24.0
	sampleHumidity   = 65.0
	maxPredictedCrop = 3
)

// DashboardHandler página principal: conteos, stock bajo y estimaciones.
type DashboardHandler struct {
	farms     EntityAPI[entity.Farm]
	crops     EntityAPI[entity.Crop]
	inventory EntityAPI[entity.InventoryItem]
	orders    EntityAPI[entity.Order]

	estimator     *prediction.Estimator
	notifications *notification.Store
	toast         Toaster
	log           zerolog.Logger
	now           func() time.Time
}

// DashboardDeps dependencias del dashboard.
type DashboardDeps struct {
	Farms         EntityAPI[entity.Farm]
	Crops         EntityAPI[entity.Crop]
	Inventory     EntityAPI[entity.InventoryItem]
	Orders        EntityAPI[entity.Order]
	Estimator     *prediction.Estimator
	Notifications *notification.Store
	Toast         Toaster
	Log           zerolog.Logger
}

func NewDashboardHandler(d DashboardDeps) *DashboardHandler {
	return &DashboardHandler{
		farms:         d.Farms,
		crops:         d.Crops,
		inventory:     d.Inventory,
		orders:        d.Orders,
		estimator:     d.Estimator,
		notifications: d.Notifications,
		toast:         d.Toast,
		log:           d.Log,
		now:           time.Now,
	}
}

// fetchList trae el listado o su respaldo. Solo devuelve error ante un 401.
func fetchList[T any](ctx context.Context, api EntityAPI[T], fixtures Fixtures[T], demo bool, out *[]T, fallback *bool) error {
	items, err := api.GetAll(ctx)
	if err == nil {
		*out = items
		return nil
	}
	if errors.Is(err, domain.ErrUnauthorized) {
		return err
	}
	*fallback = true
	if demo {
		*out = fixtures.Items()
	}
	return nil
}

// Summary godoc
// @Summary      Resumen del dashboard
// @Description  Consulta granjas, cultivos, inventario y pedidos en paralelo.
// @Description  Las predicciones son estimaciones de fórmula fija.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Router       /app/dashboard [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	var (
		farms     []entity.Farm
		crops     []entity.Crop
		inventory []entity.InventoryItem
		orders    []entity.Order
		fb        [4]bool
	)
	demo := h.toast.DemoMode()
	g, ctx := errgroup.WithContext(c.UserContext())
	g.Go(func() error { return fetchList(ctx, h.farms, farmFixtures, demo, &farms, &fb[0]) })
	g.Go(func() error { return fetchList(ctx, h.crops, cropFixtures, demo, &crops, &fb[1]) })
	g.Go(func() error { return fetchList(ctx, h.inventory, inventoryFixtures, demo, &inventory, &fb[2]) })
	g.Go(func() error { return fetchList(ctx, h.orders, orderFixtures, demo, &orders, &fb[3]) })
	if err := g.Wait(); err != nil {
		return err
	}

	out := dto.DashboardSummaryDTO{
		FarmCount:      len(farms),
		CropCount:      len(crops),
		InventoryCount: len(inventory),
		OrderCount:     len(orders),
		InventoryValue: stock.StockValue(inventory),
		LowStock:       []entity.InventoryItem{},
		Predictions:    []dto.CropPredictionDTO{},
		UnreadCount:    h.notifications.UnreadCount(),
		Fallback:       fb[0] || fb[1] || fb[2] || fb[3],
	}
	for _, o := range orders {
		if o.Status == entity.OrderStatusPending {
			out.PendingOrders++
		}
	}
	for _, it := range inventory {
		if it.LowStock() {
			out.LowStock = append(out.LowStock, it)
		}
	}
	out.Predictions = h.predictions(crops)
	return c.JSON(out)
}

func (h *DashboardHandler) predictions(crops []entity.Crop) []dto.CropPredictionDTO {
	out := []dto.CropPredictionDTO{}
	now := h.now()
	for _, cr := range crops {
		if len(out) == maxPredictedCrop {
			break
		}
		if cr.Status == entity.CropStatusHarvested || cr.Status == entity.CropStatusFailed {
			continue
		}
		kind := cr.CropType
		if kind == "" {
			kind = cr.Name
		}
		days := 0
		if !cr.PlantingDate.IsZero() && now.After(cr.PlantingDate.Time) {
			days = int(now.Sub(cr.PlantingDate.Time).Hours() / 24)
		}
		out = append(out, dto.CropPredictionDTO{
			CropID: cr.ID,
			Name:   cr.Name,
			Yield:  h.estimator.PredictYield(kind, cr.AreaSqM, days),
			Water:  h.estimator.PredictWaterUsage(kind, cr.AreaSqM, sampleTempC),
			Pest:   h.estimator.PredictPestRisk(kind, sampleHumidity, sampleTempC),
		})
	}
	return out
}
