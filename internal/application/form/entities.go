package form

import (
	"strings"

	"github.com/jhoicas/urbanfarm-dashboard/internal/domain/entity"
)

// FarmForm formulario de granja.
type FarmForm struct {
	Name        string `json:"name" form:"name" validate:"required,min=2,max=120"`
	Location    string `json:"location" form:"location" validate:"required,min=2"`
	Size        string `json:"size" form:"size" validate:"required,numeric"`
	FarmType    string `json:"farmType" form:"farmType" validate:"omitempty,oneof=ROOFTOP VERTICAL COMMUNITY GREENHOUSE HYDROPONIC"`
	Description string `json:"description" form:"description" validate:"max=500"`
}

func (f FarmForm) Payload() (entity.Farm, error) {
	var c coercer
	out := entity.Farm{
		Name:        strings.TrimSpace(f.Name),
		Location:    strings.TrimSpace(f.Location),
		SizeSqM:     c.positive("size", f.Size),
		FarmType:    f.FarmType,
		Description: f.Description,
	}
	return out, c.err()
}

// CropForm formulario de cultivo.
type CropForm struct {
	Name                string `json:"name" form:"name" validate:"required,min=2,max=120"`
	Variety             string `json:"variety" form:"variety" validate:"max=120"`
	CropType            string `json:"cropType" form:"cropType"`
	FarmID              string `json:"farmId" form:"farmId" validate:"required,numeric"`
	PlantingDate        string `json:"plantingDate" form:"plantingDate" validate:"required,datetime=2006-01-02"`
	ExpectedHarvestDate string `json:"expectedHarvestDate" form:"expectedHarvestDate" validate:"omitempty,datetime=2006-01-02"`
	Status              string `json:"status" form:"status" validate:"omitempty,oneof=PLANNED PLANTED GROWING HARVESTED FAILED"`
	Area                string `json:"area" form:"area" validate:"required,numeric"`
	Description         string `json:"description" form:"description" validate:"max=500"`
}

func (f CropForm) Payload() (entity.Crop, error) {
	var c coercer
	out := entity.Crop{
		Name:                strings.TrimSpace(f.Name),
		Variety:             f.Variety,
		CropType:            f.CropType,
		FarmID:              c.id("farmId", f.FarmID),
		PlantingDate:        c.date("plantingDate", f.PlantingDate),
		ExpectedHarvestDate: c.date("expectedHarvestDate", f.ExpectedHarvestDate),
		Status:              f.Status,
		AreaSqM:             c.positive("area", f.Area),
		Description:         f.Description,
	}
	if !out.ExpectedHarvestDate.IsZero() && out.ExpectedHarvestDate.Before(out.PlantingDate.Time) {
		c.fail("expectedHarvestDate", "no puede ser anterior a la siembra")
	}
	return out, c.err()
}

// HarvestForm formulario de cosecha.
type HarvestForm struct {
	CropID        string `json:"cropId" form:"cropId" validate:"required,numeric"`
	FarmID        string `json:"farmId" form:"farmId" validate:"required,numeric"`
	InventoryID   string `json:"inventoryId" form:"inventoryId" validate:"omitempty,numeric"`
	HarvestDate   string `json:"harvestDate" form:"harvestDate" validate:"required,datetime=2006-01-02"`
	Yield         string `json:"yield" form:"yield" validate:"required,numeric"`
	QualityRating string `json:"qualityRating" form:"qualityRating" validate:"required,numeric"`
	Notes         string `json:"notes" form:"notes" validate:"max=500"`
}

func (f HarvestForm) Payload() (entity.Harvest, error) {
	var c coercer
	out := entity.Harvest{
		CropID:        c.id("cropId", f.CropID),
		FarmID:        c.id("farmId", f.FarmID),
		InventoryID:   c.optionalID("inventoryId", f.InventoryID),
		HarvestDate:   c.date("harvestDate", f.HarvestDate),
		Yield:         c.positive("yield", f.Yield),
		QualityRating: c.intRange("qualityRating", f.QualityRating, entity.MinQualityRating, entity.MaxQualityRating),
		Notes:         f.Notes,
	}
	return out, c.err()
}

// InventoryForm formulario de ítem de inventario.
type InventoryForm struct {
	Name         string `json:"name" form:"name" validate:"required,min=2,max=120"`
	Category     string `json:"category" form:"category" validate:"required"`
	Quantity     string `json:"quantity" form:"quantity" validate:"required,numeric"`
	Unit         string `json:"unit" form:"unit" validate:"required"`
	UnitPrice    string `json:"unitPrice" form:"unitPrice" validate:"required,numeric"`
	ReorderLevel string `json:"reorderLevel" form:"reorderLevel" validate:"omitempty,numeric"`
	FarmID       string `json:"farmId" form:"farmId" validate:"omitempty,numeric"`
	Description  string `json:"description" form:"description" validate:"max=500"`
}

func (f InventoryForm) Payload() (entity.InventoryItem, error) {
	var c coercer
	out := entity.InventoryItem{
		Name:         strings.TrimSpace(f.Name),
		Category:     f.Category,
		Quantity:     c.nonNegative("quantity", f.Quantity),
		Unit:         f.Unit,
		UnitPrice:    c.nonNegative("unitPrice", f.UnitPrice),
		ReorderLevel: c.nonNegative("reorderLevel", f.ReorderLevel),
		FarmID:       c.optionalID("farmId", f.FarmID),
		Description:  f.Description,
	}
	return out, c.err()
}

// OrderForm formulario de pedido.
type OrderForm struct {
	ClientID     string `json:"clientId" form:"clientId" validate:"required,numeric"`
	InventoryID  string `json:"inventoryId" form:"inventoryId" validate:"required,numeric"`
	Quantity     string `json:"quantity" form:"quantity" validate:"required,numeric"`
	TotalPrice   string `json:"totalPrice" form:"totalPrice" validate:"omitempty,numeric"`
	Status       string `json:"status" form:"status" validate:"omitempty,oneof=PENDING PLACED SHIPPED DELIVERED CANCELLED"`
	OrderDate    string `json:"orderDate" form:"orderDate" validate:"required,datetime=2006-01-02"`
	DeliveryDate string `json:"deliveryDate" form:"deliveryDate" validate:"omitempty,datetime=2006-01-02"`
	Notes        string `json:"notes" form:"notes" validate:"max=500"`
}

func (f OrderForm) Payload() (entity.Order, error) {
	var c coercer
	out := entity.Order{
		ClientID:     c.id("clientId", f.ClientID),
		InventoryID:  c.id("inventoryId", f.InventoryID),
		Quantity:     c.positive("quantity", f.Quantity),
		TotalPrice:   c.nonNegative("totalPrice", f.TotalPrice),
		Status:       f.Status,
		OrderDate:    c.date("orderDate", f.OrderDate),
		DeliveryDate: c.date("deliveryDate", f.DeliveryDate),
		Notes:        f.Notes,
	}
	if out.Status == "" {
		out.Status = entity.OrderStatusPending
	}
	return out, c.err()
}

// ClientForm formulario de cliente.
type ClientForm struct {
	Name       string `json:"name" form:"name" validate:"required,min=2,max=120"`
	Email      string `json:"email" form:"email" validate:"required,email"`
	Phone      string `json:"phone" form:"phone" validate:"omitempty,min=7,max=20"`
	Address    string `json:"address" form:"address" validate:"max=250"`
	ClientType string `json:"clientType" form:"clientType" validate:"omitempty,oneof=RESTAURANT RETAIL INDIVIDUAL WHOLESALE"`
}

func (f ClientForm) Payload() (entity.Client, error) {
	return entity.Client{
		Name:       strings.TrimSpace(f.Name),
		Email:      strings.TrimSpace(f.Email),
		Phone:      strings.TrimSpace(f.Phone),
		Address:    f.Address,
		ClientType: f.ClientType,
	}, nil
}

// StaffForm formulario de personal o voluntario.
type StaffForm struct {
	Name      string `json:"name" form:"name" validate:"required,min=2,max=120"`
	Email     string `json:"email" form:"email" validate:"required,email"`
	Phone     string `json:"phone" form:"phone" validate:"omitempty,min=7,max=20"`
	Role      string `json:"role" form:"role" validate:"required,oneof=EMPLOYEE VOLUNTEER MANAGER"`
	FarmID    string `json:"farmId" form:"farmId" validate:"omitempty,numeric"`
	WorkHours string `json:"workHours" form:"workHours" validate:"omitempty,numeric"`
	StartDate string `json:"startDate" form:"startDate" validate:"omitempty,datetime=2006-01-02"`
}

func (f StaffForm) Payload() (entity.Staff, error) {
	var c coercer
	out := entity.Staff{
		Name:      strings.TrimSpace(f.Name),
		Email:     strings.TrimSpace(f.Email),
		Phone:     strings.TrimSpace(f.Phone),
		Role:      f.Role,
		FarmID:    c.optionalID("farmId", f.FarmID),
		WorkHours: c.nonNegative("workHours", f.WorkHours),
		StartDate: c.date("startDate", f.StartDate),
	}
	return out, c.err()
}

// SustainabilityForm formulario de métrica de sostenibilidad.
type SustainabilityForm struct {
	FarmID     string `json:"farmId" form:"farmId" validate:"required,numeric"`
	CropID     string `json:"cropId" form:"cropId" validate:"omitempty,numeric"`
	MetricType string `json:"metricType" form:"metricType" validate:"required,oneof=WATER_USAGE ENERGY_USAGE CARBON_FOOTPRINT WASTE_REDUCED COMPOST"`
	Value      string `json:"value" form:"value" validate:"required,numeric"`
	Unit       string `json:"unit" form:"unit" validate:"required"`
	RecordedAt string `json:"recordedAt" form:"recordedAt" validate:"required,datetime=2006-01-02"`
	Notes      string `json:"notes" form:"notes" validate:"max=500"`
}

func (f SustainabilityForm) Payload() (entity.SustainabilityMetric, error) {
	var c coercer
	out := entity.SustainabilityMetric{
		FarmID:     c.id("farmId", f.FarmID),
		CropID:     c.optionalID("cropId", f.CropID),
		MetricType: f.MetricType,
		Value:      c.nonNegative("value", f.Value),
		Unit:       f.Unit,
		RecordedAt: c.date("recordedAt", f.RecordedAt),
		Notes:      f.Notes,
	}
	return out, c.err()
}
