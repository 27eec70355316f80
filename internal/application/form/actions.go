package form

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/urbanfarm-dashboard/internal/domain/entity"
)

// HarvestRecord datos de POST /crops/{id}/record-harvest.
type HarvestRecord struct {
	Yield         decimal.Decimal
	QualityRating int
}

// RecordHarvestForm registrar cosecha desde la ficha del cultivo.
type RecordHarvestForm struct {
	Yield         string `json:"yield" form:"yield" validate:"required,numeric"`
	QualityRating string `json:"qualityRating" form:"qualityRating" validate:"required,numeric"`
}

func (f RecordHarvestForm) Payload() (HarvestRecord, error) {
	var c coercer
	out := HarvestRecord{
		Yield:         c.positive("yield", f.Yield),
		QualityRating: c.intRange("qualityRating", f.QualityRating, entity.MinQualityRating, entity.MaxQualityRating),
	}
	return out, c.err()
}

// QualityForm calidad de una cosecha (1-5).
type QualityForm struct {
	QualityRating string `json:"qualityRating" form:"qualityRating" validate:"required,numeric"`
}

func (f QualityForm) Payload() (int, error) {
	var c coercer
	n := c.intRange("qualityRating", f.QualityRating, entity.MinQualityRating, entity.MaxQualityRating)
	return n, c.err()
}

// YieldForm rendimiento de una cosecha en kg.
type YieldForm struct {
	Yield string `json:"yield" form:"yield" validate:"required,numeric"`
}

func (f YieldForm) Payload() (decimal.Decimal, error) {
	var c coercer
	d := c.positive("yield", f.Yield)
	return d, c.err()
}

// WorkHoursForm horas trabajadas de un miembro del personal.
type WorkHoursForm struct {
	Hours string `json:"hours" form:"hours" validate:"required,numeric"`
}

func (f WorkHoursForm) Payload() (decimal.Decimal, error) {
	var c coercer
	d := c.nonNegative("hours", f.Hours)
	return d, c.err()
}

// StatusForm nuevo estado de un pedido.
type StatusForm struct {
	Status string `json:"status" form:"status" validate:"required,oneof=PENDING PLACED SHIPPED DELIVERED CANCELLED"`
}

func (f StatusForm) Payload() (string, error) {
	return strings.ToUpper(f.Status), nil
}

// Intake cosecha nueva más el inventario que la recibe.
type Intake struct {
	Harvest     entity.Harvest
	InventoryID int64
}

// IntakeForm alta de cosecha con ingreso a inventario. inventoryId es obligatorio.
type IntakeForm struct {
	HarvestForm
}

func (f IntakeForm) Payload() (Intake, error) {
	var c coercer
	inventoryID := c.id("inventoryId", f.InventoryID)
	h, err := f.HarvestForm.Payload()
	if fe, ok := err.(FieldErrors); ok {
		for k, v := range fe {
			c.fail(k, v)
		}
	}
	h.InventoryID = &inventoryID
	return Intake{Harvest: h, InventoryID: inventoryID}, c.err()
}
