// Package prediction contiene estimadores de fórmula fija para el dashboard y la
// página de sostenibilidad. No es un modelo predictivo: son búsquedas en una tabla
// por cultivo más aritmética determinista, con ruido opcional para ilustración.
package prediction

import (
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// Niveles de riesgo de plagas.
const (
	RiskLow    = "low"
	RiskMedium = "medium"
	RiskHigh   = "high"
)

type cropProfile struct {
	yieldPerSqM float64 // kg/m² por ciclo
	growthDays  int     // días típicos hasta cosecha
	waterPerSqM float64 // L/m²/día a 20 °C
	pestBase    float64 // riesgo base 0..1
	pricePerKg  float64 // precio base por kg
}

var profiles = map[string]cropProfile{
	"lettuce":     {yieldPerSqM: 3.5, growthDays: 45, waterPerSqM: 2.0, pestBase: 0.30, pricePerKg: 4.50},
	"tomato":      {yieldPerSqM: 8.0, growthDays: 80, waterPerSqM: 4.5, pestBase: 0.45, pricePerKg: 3.20},
	"basil":       {yieldPerSqM: 1.2, growthDays: 30, waterPerSqM: 1.5, pestBase: 0.25, pricePerKg: 12.00},
	"spinach":     {yieldPerSqM: 2.5, growthDays: 40, waterPerSqM: 2.2, pestBase: 0.35, pricePerKg: 5.00},
	"microgreens": {yieldPerSqM: 1.8, growthDays: 14, waterPerSqM: 0.8, pestBase: 0.20, pricePerKg: 25.00},
	"strawberry":  {yieldPerSqM: 2.8, growthDays: 90, waterPerSqM: 3.0, pestBase: 0.50, pricePerKg: 8.00},
}

var defaultProfile = cropProfile{yieldPerSqM: 2.0, growthDays: 60, waterPerSqM: 2.5, pestBase: 0.35, pricePerKg: 5.00}

func profileFor(crop string) cropProfile {
	if p, ok := profiles[strings.ToLower(strings.TrimSpace(crop))]; ok {
		return p
	}
	return defaultProfile
}

// YieldEstimate rendimiento estimado en kg.
type YieldEstimate struct {
	Kg         decimal.Decimal `json:"kg"`
	Confidence decimal.Decimal `json:"confidence"`
}

// WaterEstimate consumo de agua estimado.
type WaterEstimate struct {
	LitersPerDay decimal.Decimal `json:"litersPerDay"`
}

// PestRisk puntaje 0..1 y nivel.
type PestRisk struct {
	Score decimal.Decimal `json:"score"`
	Level string          `json:"level"`
}

// PriceEstimate precio sugerido por kg y total.
type PriceEstimate struct {
	PricePerKg decimal.Decimal `json:"pricePerKg"`
	Total      decimal.Decimal `json:"total"`
}

// Estimator aplica las fórmulas. Con jitter 0 el resultado es determinista.
type Estimator struct {
	jitter float64

	mu  sync.Mutex
	rnd *rand.Rand
}

// NewEstimator jitter es la amplitud relativa del ruido (0.05 = ±5 %).
func NewEstimator(jitter float64, seed int64) *Estimator {
	return &Estimator{jitter: jitter, rnd: rand.New(rand.NewSource(seed))}
}

func (e *Estimator) noise() decimal.Decimal {
	if e.jitter == 0 {
		return decimal.NewFromInt(1)
	}
	e.mu.Lock()
	f := e.rnd.Float64()*2 - 1
	e.mu.Unlock()
	return decimal.NewFromFloat(1 + e.jitter*f)
}

// PredictYield kg = rendimiento/m² · área · madurez, madurez = min(1, días/días típicos).
func (e *Estimator) PredictYield(crop string, areaSqM decimal.Decimal, growthDays int) YieldEstimate {
	p := profileFor(crop)
	if growthDays < 0 {
		growthDays = 0
	}
	maturity := decimal.NewFromInt(int64(growthDays)).Div(decimal.NewFromInt(int64(p.growthDays)))
	if maturity.GreaterThan(decimal.NewFromInt(1)) {
		maturity = decimal.NewFromInt(1)
	}
	kg := decimal.NewFromFloat(p.yieldPerSqM).Mul(areaSqM).Mul(maturity).Mul(e.noise())
	confidence := decimal.NewFromFloat(0.6).Add(decimal.NewFromFloat(0.3).Mul(maturity))
	return YieldEstimate{Kg: kg.Round(2), Confidence: confidence.Round(2)}
}

// PredictWaterUsage L/día = agua/m² · área · (1 + 0.03 · max(0, t − 20)).
func (e *Estimator) PredictWaterUsage(crop string, areaSqM decimal.Decimal, tempC float64) WaterEstimate {
	p := profileFor(crop)
	heat := decimal.NewFromFloat(0.03).Mul(positive(tempC - 20))
	liters := decimal.NewFromFloat(p.waterPerSqM).Mul(areaSqM).Mul(decimal.NewFromInt(1).Add(heat)).Mul(e.noise())
	return WaterEstimate{LitersPerDay: liters.Round(1)}
}

// PredictPestRisk base + 0.004 · max(0, h − 60) + 0.01 · max(0, t − 25), acotado a [0, 1].
func (e *Estimator) PredictPestRisk(crop string, humidityPct, tempC float64) PestRisk {
	p := profileFor(crop)
	score := decimal.NewFromFloat(p.pestBase).
		Add(decimal.NewFromFloat(0.004).Mul(positive(humidityPct - 60))).
		Add(decimal.NewFromFloat(0.01).Mul(positive(tempC - 25)))
	if score.GreaterThan(decimal.NewFromInt(1)) {
		score = decimal.NewFromInt(1)
	}
	score = score.Round(2)

	level := RiskHigh
	switch {
	case score.LessThan(decimal.NewFromFloat(0.4)):
		level = RiskLow
	case score.LessThan(decimal.NewFromFloat(0.7)):
		level = RiskMedium
	}
	return PestRisk{Score: score, Level: level}
}

// PredictPrice precio base · estacionalidad · descuento por volumen.
func (e *Estimator) PredictPrice(crop string, quantityKg decimal.Decimal, month time.Month) PriceEstimate {
	p := profileFor(crop)
	perKg := decimal.NewFromFloat(p.pricePerKg).
		Mul(seasonal(month)).
		Mul(volumeDiscount(quantityKg)).
		Mul(e.noise()).
		Round(2)
	return PriceEstimate{PricePerKg: perKg, Total: perKg.Mul(quantityKg).Round(2)}
}

func seasonal(m time.Month) decimal.Decimal {
	switch m {
	case time.December, time.January, time.February:
		return decimal.NewFromFloat(1.15)
	case time.June, time.July, time.August:
		return decimal.NewFromFloat(0.90)
	}
	return decimal.NewFromInt(1)
}

func volumeDiscount(qty decimal.Decimal) decimal.Decimal {
	switch {
	case qty.GreaterThanOrEqual(decimal.NewFromInt(100)):
		return decimal.NewFromFloat(0.90)
	case qty.GreaterThanOrEqual(decimal.NewFromInt(50)):
		return decimal.NewFromFloat(0.95)
	}
	return decimal.NewFromInt(1)
}

func positive(f float64) decimal.Decimal {
	if f <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromFloat(f)
}
