// Package pdf genera el informe de sostenibilidad de una granja en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Granja + fecha      │  Puntaje de sostenibilidad   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Agua | Energía | Huella de carbono | Residuos     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Métrica | Valor | Unidad | Notas            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RECOMENDACIONES                                            │
//	│  FOOTER: QR al dashboard + leyenda                          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/urbanfarm-dashboard/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 34, Green: 110, Blue: 60}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWarn    = &props.Color{Red: 190, Green: 110, Blue: 20}
)

// ReportData lo que necesita el informe.
type ReportData struct {
	Report          entity.SustainabilityReport
	Recommendations []entity.Recommendation
	DashboardURL    string // destino del QR; vacío = sin QR
	GeneratedAt     time.Time
}

// ReportGenerator genera el PDF con Maroto v2.
type ReportGenerator struct{}

// NewReportGenerator construye el generador.
func NewReportGenerator() *ReportGenerator { return &ReportGenerator{} }

// SustainabilityPDF genera el informe y devuelve sus bytes.
func (g *ReportGenerator) SustainabilityPDF(_ context.Context, data ReportData) ([]byte, error) {
	if data.GeneratedAt.IsZero() {
		data.GeneratedAt = time.Now()
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Informe de sostenibilidad", true).
		WithAuthor("Urban Farm Dashboard", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(data.Report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(metricRows(data.Report.Metrics)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(recommendationRows(data.Recommendations)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(data.DashboardURL))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar informe: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(data ReportData) core.Row {
	r := data.Report
	return row.New(20).Add(
		col.New(8).Add(
			text.New(nonEmpty(r.FarmName, fmt.Sprintf("Granja #%d", r.FarmID)), props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New("Informe de sostenibilidad", props.Text{Size: 9, Top: 9, Color: colorGray}),
			text.New("Generado: "+data.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Top: 14, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("PUNTAJE", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(r.Score.StringFixed(1)+" / 100", props.Text{
				Style: fontstyle.Bold, Size: 16, Align: align.Right, Top: 7, Color: scoreColor(r.Score),
			}),
		),
	)
}

func summaryRow(r entity.SustainabilityReport) core.Row {
	cell := func(label string, v decimal.Decimal, unit string) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1, Align: align.Center}),
			text.New(v.StringFixed(2)+" "+unit, props.Text{Size: 10, Top: 7, Align: align.Center}),
		)
	}
	return row.New(16).Add(
		cell("Agua", r.WaterUsage, "L"),
		cell("Energía", r.EnergyUsage, "kWh"),
		cell("Huella de carbono", r.CarbonFootprint, "kg CO2e"),
		cell("Residuos reducidos", r.WasteReduced, "kg"),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 2, align.Left),
		h("Métrica", 3, align.Left),
		h("Valor", 2, align.Right),
		h("Unidad", 2, align.Left),
		h("Notas", 3, align.Left),
	)
}

func metricRows(metrics []entity.SustainabilityMetric) []core.Row {
	if len(metrics) == 0 {
		return []core.Row{row.New(7).Add(col.New(12).Add(
			text.New("Sin métricas registradas en el período.", props.Text{Size: 8, Color: colorGray, Top: 1, Left: 1}),
		))}
	}
	out := make([]core.Row, 0, len(metrics))
	for _, m := range metrics {
		out = append(out, row.New(7).Add(
			col.New(2).Add(text.New(nonEmpty(m.RecordedAt.String(), "—"), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New(metricLabel(m.MetricType), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(m.Value.StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(m.Unit, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New(nonEmpty(m.Notes, "—"), props.Text{Size: 7, Top: 1, Left: 1, Color: colorGray})),
		))
	}
	return out
}

func recommendationRows(recs []entity.Recommendation) []core.Row {
	rows := []core.Row{
		row.New(7).Add(col.New(12).Add(
			text.New("RECOMENDACIONES", props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 1}),
		)),
	}
	if len(recs) == 0 {
		return append(rows, row.New(6).Add(col.New(12).Add(
			text.New("No hay recomendaciones para esta granja.", props.Text{Size: 8, Color: colorGray, Top: 1}),
		)))
	}
	for _, r := range recs {
		title := r.Title
		if r.Priority != "" {
			title = fmt.Sprintf("[%s] %s", r.Priority, r.Title)
		}
		rows = append(rows, row.New(12).Add(col.New(12).Add(
			text.New(title, props.Text{Style: fontstyle.Bold, Size: 8, Top: 1}),
			text.New(r.Description, props.Text{Size: 8, Top: 5, Color: colorGray}),
		)))
	}
	return rows
}

func footerRow(url string) core.Row {
	legend := text.New("Valores calculados por el sistema de registro de la granja. "+
		"Las estimaciones del dashboard son orientativas.", props.Text{Size: 7, Top: 4, Left: 3, Color: colorGray})
	if url == "" {
		return row.New(12).Add(col.New(12).Add(legend))
	}
	return row.New(40).Add(
		col.New(3).Add(code.NewQr(url, props.Rect{Percent: 90, Center: true})),
		col.New(9).Add(
			text.New("Escanee el código para abrir la granja en el dashboard.", props.Text{
				Size: 8, Top: 4, Left: 3, Color: colorGray,
			}),
			legend,
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func scoreColor(score decimal.Decimal) *props.Color {
	if score.LessThan(decimal.NewFromInt(50)) {
		return colorWarn
	}
	return colorPrimary
}

var metricLabels = map[string]string{
	entity.MetricWaterUsage:      "Consumo de agua",
	entity.MetricEnergyUsage:     "Consumo de energía",
	entity.MetricCarbonFootprint: "Huella de carbono",
	entity.MetricWasteReduced:    "Residuos reducidos",
	entity.MetricCompost:         "Compost",
}

func metricLabel(t string) string {
	return nonEmpty(metricLabels[t], t)
}
