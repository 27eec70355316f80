package pdf_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/urbanfarm-dashboard/internal/domain/entity"
	"github.com/jhoicas/urbanfarm-dashboard/internal/infrastructure/pdf"
)

func TestSustainabilityPDF(t *testing.T) {
	data := pdf.ReportData{
		Report: entity.SustainabilityReport{
			FarmID:          1,
			FarmName:        "Granja Azotea Centro",
			Score:           decimal.RequireFromString("72.5"),
			WaterUsage:      decimal.RequireFromString("1250"),
			EnergyUsage:     decimal.RequireFromString("310.4"),
			CarbonFootprint: decimal.RequireFromString("85"),
			WasteReduced:    decimal.RequireFromString("40"),
			Metrics: []entity.SustainabilityMetric{
				{FarmID: 1, MetricType: entity.MetricWaterUsage, Value: decimal.NewFromInt(400), Unit: "L", RecordedAt: entity.NewDate(2024, 5, 1)},
				{FarmID: 1, MetricType: entity.MetricCompost, Value: decimal.NewFromInt(12), Unit: "kg", Notes: "Compost de poda"},
			},
		},
		Recommendations: []entity.Recommendation{
			{Title: "Riego por goteo", Description: "Reduce el consumo de agua en un 30 %.", Priority: "HIGH"},
		},
		DashboardURL: "http://localhost:3000/app/farms/1",
		GeneratedAt:  time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC),
	}

	out, err := pdf.NewReportGenerator().SustainabilityPDF(context.Background(), data)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "debe ser un PDF")
}

func TestSustainabilityPDF_SinDatos(t *testing.T) {
	out, err := pdf.NewReportGenerator().SustainabilityPDF(context.Background(), pdf.ReportData{
		Report: entity.SustainabilityReport{FarmID: 9},
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}
