package http

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/urbanfarm-dashboard/internal/application/dto"
	"github.com/jhoicas/urbanfarm-dashboard/internal/application/prediction"
	"github.com/jhoicas/urbanfarm-dashboard/internal/domain"
	"github.com/jhoicas/urbanfarm-dashboard/internal/domain/entity"
	"github.com/jhoicas/urbanfarm-dashboard/internal/infrastructure/backend"
	"github.com/jhoicas/urbanfarm-dashboard/internal/infrastructure/pdf"
)

// SustainabilityHandler recomendaciones, informe (JSON y PDF) y estimaciones.
// El CRUD de métricas lo atiende un CRUDHandler.
type SustainabilityHandler struct {
	farms     *backend.FarmAPI
	metrics   *backend.SustainabilityAPI
	reports   *pdf.ReportGenerator
	estimator *prediction.Estimator
	toast     Toaster
	log       zerolog.Logger
	publicURL string
}

// SustainabilityDeps dependencias de la página de sostenibilidad.
type SustainabilityDeps struct {
	Farms     *backend.FarmAPI
	Metrics   *backend.SustainabilityAPI
	Reports   *pdf.ReportGenerator
	Estimator *prediction.Estimator
	Toast     Toaster
	Log       zerolog.Logger
	PublicURL string // base para el QR del PDF; vacío = sin QR
}

func NewSustainabilityHandler(d SustainabilityDeps) *SustainabilityHandler {
	return &SustainabilityHandler{
		farms:     d.Farms,
		metrics:   d.Metrics,
		reports:   d.Reports,
		estimator: d.Estimator,
		toast:     d.Toast,
		log:       d.Log,
		publicURL: d.PublicURL,
	}
}

// Recommendations GET /app/sustainability/farms/:id/recommendations.
func (h *SustainabilityHandler) Recommendations(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return notFound(c)
	}
	recs, err := h.metrics.Recommendations(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return err
		}
		var fallback []entity.Recommendation
		if h.toast.DemoMode() {
			fallback = demoRecommendations()
		}
		return c.JSON(dto.NewListResponse(fallback, true))
	}
	return c.JSON(dto.NewListResponse(recs, false))
}

// report trae el informe del backend; en modo demo lo arma con los datos de ejemplo.
func (h *SustainabilityHandler) report(c *fiber.Ctx, farmID int64) (*entity.SustainabilityReport, bool, error) {
	r, err := h.farms.SustainabilityReport(c.UserContext(), farmID)
	if err == nil {
		return r, false, nil
	}
	if errors.Is(err, domain.ErrUnauthorized) || !h.toast.DemoMode() {
		return nil, false, err
	}
	demo, ok := demoReport(farmID)
	if !ok {
		return nil, false, domain.ErrNotFound
	}
	return demo, true, nil
}

// Report GET /app/sustainability/farms/:id/report.
func (h *SustainabilityHandler) Report(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return notFound(c)
	}
	r, fallback, err := h.report(c, id)
	if err != nil {
		return err
	}
	return c.JSON(dto.DetailResponse[entity.SustainabilityReport]{Item: *r, Fallback: fallback})
}

// ReportPDF godoc
// @Summary      Informe de sostenibilidad en PDF
// @Tags         sustainability
// @Produce      application/pdf
// @Param        id   path  int  true  "ID de la granja"
// @Success      200  {file}    binary
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /app/sustainability/farms/{id}/report.pdf [get]
func (h *SustainabilityHandler) ReportPDF(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return notFound(c)
	}
	r, _, err := h.report(c, id)
	if err != nil {
		return err
	}
	recs, err := h.metrics.Recommendations(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return err
		}
		h.log.Warn().Err(err).Int64("farm_id", id).Msg("informe sin recomendaciones")
		recs = nil
		if h.toast.DemoMode() {
			recs = demoRecommendations()
		}
	}

	data := pdf.ReportData{Report: *r, Recommendations: recs, GeneratedAt: time.Now()}
	if h.publicURL != "" {
		data.DashboardURL = fmt.Sprintf("%s/app/farms/%d", h.publicURL, id)
	}
	out, err := h.reports.SustainabilityPDF(c.UserContext(), data)
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="sostenibilidad-granja-%d.pdf"`, id))
	return c.Send(out)
}

// PredictionsResponse estimaciones de fórmula fija para un cultivo.
type PredictionsResponse struct {
	Crop     string                   `json:"crop"`
	Yield    prediction.YieldEstimate `json:"yield"`
	Water    prediction.WaterEstimate `json:"water"`
	PestRisk prediction.PestRisk      `json:"pestRisk"`
	Price    prediction.PriceEstimate `json:"price"`
	Note     string                   `json:"note"`
}

// Predictions GET /app/sustainability/predictions?crop=&area=&days=&temp=&humidity=&qty=&month=
func (h *SustainabilityHandler) Predictions(c *fiber.Ctx) error {
	crop := c.Query("crop", "lettuce")
	area, err := decimal.NewFromString(c.Query("area", "10"))
	if err != nil || area.IsNegative() {
		return badRequest(c, "área inválida")
	}
	qty, err := decimal.NewFromString(c.Query("qty", "10"))
	if err != nil || qty.IsNegative() {
		return badRequest(c, "cantidad inválida")
	}
	temp, err1 := strconv.ParseFloat(c.Query("temp", "22"), 64)
	humidity, err2 := strconv.ParseFloat(c.Query("humidity", "60"), 64)
	if err1 != nil || err2 != nil {
		return badRequest(c, "temperatura o humedad inválida")
	}
	month := time.Month(c.QueryInt("month", int(time.Now().Month())))
	if month < time.January || month > time.December {
		return badRequest(c, "mes inválido")
	}

	return c.JSON(PredictionsResponse{
		Crop:     crop,
		Yield:    h.estimator.PredictYield(crop, area, c.QueryInt("days", 30)),
		Water:    h.estimator.PredictWaterUsage(crop, area, temp),
		PestRisk: h.estimator.PredictPestRisk(crop, humidity, temp),
		Price:    h.estimator.PredictPrice(crop, qty, month),
		Note:     "Estimaciones por fórmula fija; no es un modelo predictivo",
	})
}

// demoReport arma un informe a partir de las métricas demo de la granja.
func demoReport(farmID int64) (*entity.SustainabilityReport, bool) {
	var farm *entity.Farm
	for _, f := range farmFixtures.Items() {
		if f.ID == farmID {
			farm = &f
		}
	}
	if farm == nil {
		return nil, false
	}
	r := &entity.SustainabilityReport{
		FarmID:   farm.ID,
		FarmName: farm.Name,
		Score:    decimal.NewFromInt(70),
		Metrics:  []entity.SustainabilityMetric{},
	}
	for _, m := range sustainabilityFixtures.Items() {
		if m.FarmID != farmID {
			continue
		}
		r.Metrics = append(r.Metrics, m)
		switch m.MetricType {
		case entity.MetricWaterUsage:
			r.WaterUsage = r.WaterUsage.Add(m.Value)
		case entity.MetricEnergyUsage:
			r.EnergyUsage = r.EnergyUsage.Add(m.Value)
		case entity.MetricCarbonFootprint:
			r.CarbonFootprint = r.CarbonFootprint.Add(m.Value)
		case entity.MetricWasteReduced, entity.MetricCompost:
			r.WasteReduced = r.WasteReduced.Add(m.Value)
		}
	}
	return r, true
}
