package prediction_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/urbanfarm-dashboard/internal/application/prediction"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func assertDec(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	if !dec(want).Equal(got) {
		assert.Fail(t, "decimal distinto", "esperado %s, obtenido %s", want, got)
		if len(msgAndArgs) > 0 {
			t.Log(msgAndArgs...)
		}
	}
}

func TestPredictYield(t *testing.T) {
	e := prediction.NewEstimator(0, 1)

	full := e.PredictYield("Lettuce", dec("10"), 45)
	assertDec(t, "35", full.Kg)
	assertDec(t, "0.9", full.Confidence)

	half := e.PredictYield("tomato", dec("4"), 40)
	assertDec(t, "16", half.Kg) // 8 · 4 · 0.5
	assertDec(t, "0.75", half.Confidence)

	over := e.PredictYield("lettuce", dec("10"), 200)
	assertDec(t, "35", over.Kg, "la madurez se acota a 1")

	unknown := e.PredictYield("kale", dec("5"), 60)
	assertDec(t, "10", unknown.Kg) // perfil por defecto 2.0 · 5 · 1
}

func TestPredictWaterUsage(t *testing.T) {
	e := prediction.NewEstimator(0, 1)

	assertDec(t, "23", e.PredictWaterUsage("lettuce", dec("10"), 25).LitersPerDay)
	assertDec(t, "20", e.PredictWaterUsage("lettuce", dec("10"), 15).LitersPerDay, "sin recargo bajo 20 °C")
}

func TestPredictPestRisk(t *testing.T) {
	e := prediction.NewEstimator(0, 1)

	r := e.PredictPestRisk("tomato", 80, 30)
	assertDec(t, "0.58", r.Score)
	assert.Equal(t, prediction.RiskMedium, r.Level)

	r = e.PredictPestRisk("microgreens", 50, 20)
	assertDec(t, "0.2", r.Score)
	assert.Equal(t, prediction.RiskLow, r.Level)

	r = e.PredictPestRisk("strawberry", 100, 60)
	assertDec(t, "1", r.Score, "se acota a 1")
	assert.Equal(t, prediction.RiskHigh, r.Level)
}

func TestPredictPrice(t *testing.T) {
	e := prediction.NewEstimator(0, 1)

	p := e.PredictPrice("basil", dec("60"), time.January)
	assertDec(t, "13.11", p.PricePerKg) // 12 · 1.15 · 0.95
	assertDec(t, "786.6", p.Total)

	p = e.PredictPrice("lettuce", dec("10"), time.April)
	assertDec(t, "4.5", p.PricePerKg)
	assertDec(t, "45", p.Total)

	p = e.PredictPrice("tomato", dec("100"), time.July)
	assertDec(t, "2.59", p.PricePerKg) // 3.2 · 0.9 · 0.9 = 2.592
}

func TestJitter_AcotadoYReproducible(t *testing.T) {
	a := prediction.NewEstimator(0.1, 7)
	b := prediction.NewEstimator(0.1, 7)

	for i := 0; i < 20; i++ {
		ya := a.PredictYield("lettuce", dec("10"), 45)
		yb := b.PredictYield("lettuce", dec("10"), 45)
		assert.True(t, ya.Kg.Equal(yb.Kg), "misma semilla, mismo resultado")
		assert.True(t, ya.Kg.GreaterThanOrEqual(dec("31.5")) && ya.Kg.LessThanOrEqual(dec("38.5")), "±10 %%: %s", ya.Kg)
	}
}
