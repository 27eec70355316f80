package http

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/urbanfarm-dashboard/internal/domain/entity"
)

// Datos demo que las páginas muestran cuando la API no responde y DEMO_MODE está activo.

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func ptr(n int64) *int64 { return &n }

var farmFixtures = Fixtures[entity.Farm]{
	Items: func() []entity.Farm {
		return []entity.Farm{
			{ID: 1, Name: "Azotea Centro", Location: "Calle 10 #4-20", SizeSqM: dec("250"), FarmType: entity.FarmTypeRooftop,
				Description: "Huerta en terraza con riego por goteo", CreatedAt: entity.NewDate(2023, 3, 1)},
			{ID: 2, Name: "Torre Verde", Location: "Av. Las Palmas 88", SizeSqM: dec("120"), FarmType: entity.FarmTypeVertical,
				Description: "Cultivo vertical hidropónico", CreatedAt: entity.NewDate(2023, 8, 15)},
			{ID: 3, Name: "Huerta Comunitaria El Parque", Location: "Parque Norte", SizeSqM: dec("600"), FarmType: entity.FarmTypeCommunity,
				CreatedAt: entity.NewDate(2024, 1, 20)},
		}
	},
	ID: func(f entity.Farm) int64 { return f.ID },
}

var cropFixtures = Fixtures[entity.Crop]{
	Items: func() []entity.Crop {
		return []entity.Crop{
			{ID: 1, Name: "Lechuga crespa", Variety: "Grand Rapids", CropType: "lettuce", FarmID: 1,
				PlantingDate: entity.NewDate(2024, 4, 1), ExpectedHarvestDate: entity.NewDate(2024, 5, 15),
				Status: entity.CropStatusGrowing, AreaSqM: dec("40")},
			{ID: 2, Name: "Tomate cherry", Variety: "Sweet 100", CropType: "tomato", FarmID: 1,
				PlantingDate: entity.NewDate(2024, 3, 10), ExpectedHarvestDate: entity.NewDate(2024, 6, 20),
				Status: entity.CropStatusGrowing, AreaSqM: dec("60")},
			{ID: 3, Name: "Albahaca", Variety: "Genovesa", CropType: "basil", FarmID: 2,
				PlantingDate: entity.NewDate(2024, 4, 20), Status: entity.CropStatusPlanted, AreaSqM: dec("15")},
			{ID: 4, Name: "Microgreens de rábano", CropType: "microgreens", FarmID: 2,
				PlantingDate: entity.NewDate(2024, 5, 2), Status: entity.CropStatusHarvested, AreaSqM: dec("8")},
		}
	},
	ID: func(c entity.Crop) int64 { return c.ID },
}

var harvestFixtures = Fixtures[entity.Harvest]{
	Items: func() []entity.Harvest {
		return []entity.Harvest{
			{ID: 1, CropID: 4, FarmID: 2, InventoryID: ptr(3), HarvestDate: entity.NewDate(2024, 5, 12), Yield: dec("6.5"), QualityRating: 5},
			{ID: 2, CropID: 1, FarmID: 1, HarvestDate: entity.NewDate(2024, 5, 14), Yield: dec("18"), QualityRating: 4,
				Notes: "Primera cosecha parcial"},
		}
	},
	ID: func(h entity.Harvest) int64 { return h.ID },
}

var inventoryFixtures = Fixtures[entity.InventoryItem]{
	Items: func() []entity.InventoryItem {
		return []entity.InventoryItem{
			{ID: 1, Name: "Lechuga crespa", Category: "Hortalizas", Quantity: dec("45"), Unit: "kg", UnitPrice: dec("3.20"), ReorderLevel: dec("20"), FarmID: ptr(1)},
			{ID: 2, Name: "Tomate cherry", Category: "Frutos", Quantity: dec("8"), Unit: "kg", UnitPrice: dec("5.50"), ReorderLevel: dec("10"), FarmID: ptr(1)},
			{ID: 3, Name: "Microgreens de rábano", Category: "Microgreens", Quantity: dec("6.5"), Unit: "kg", UnitPrice: dec("18"), ReorderLevel: dec("2"), FarmID: ptr(2)},
		}
	},
	ID: func(i entity.InventoryItem) int64 { return i.ID },
}

var orderFixtures = Fixtures[entity.Order]{
	Items: func() []entity.Order {
		return []entity.Order{
			{ID: 1, ClientID: 1, InventoryID: 1, Quantity: dec("10"), TotalPrice: dec("32"), Status: entity.OrderStatusPending,
				OrderDate: entity.NewDate(2024, 5, 13)},
			{ID: 2, ClientID: 2, InventoryID: 3, Quantity: dec("2"), TotalPrice: dec("36"), Status: entity.OrderStatusDelivered,
				OrderDate: entity.NewDate(2024, 5, 8), DeliveryDate: entity.NewDate(2024, 5, 9)},
		}
	},
	ID: func(o entity.Order) int64 { return o.ID },
}

var clientFixtures = Fixtures[entity.Client]{
	Items: func() []entity.Client {
		return []entity.Client{
			{ID: 1, Name: "Restaurante La Cosecha", Email: "compras@lacosecha.co", Phone: "6015550101", ClientType: entity.ClientTypeRestaurant},
			{ID: 2, Name: "Mercado Orgánico del Barrio", Email: "pedidos@mercadobarrio.co", ClientType: entity.ClientTypeRetail},
		}
	},
	ID: func(c entity.Client) int64 { return c.ID },
}

var staffFixtures = Fixtures[entity.Staff]{
	Items: func() []entity.Staff {
		return []entity.Staff{
			{ID: 1, Name: "Laura Gómez", Email: "laura@urbanfarm.com", Role: entity.StaffRoleManager, FarmID: ptr(1),
				WorkHours: dec("40"), StartDate: entity.NewDate(2023, 2, 1)},
			{ID: 2, Name: "Andrés Ruiz", Email: "andres@urbanfarm.com", Role: entity.StaffRoleVolunteer, FarmID: ptr(3),
				WorkHours: dec("6")},
		}
	},
	ID: func(s entity.Staff) int64 { return s.ID },
}

var sustainabilityFixtures = Fixtures[entity.SustainabilityMetric]{
	Items: func() []entity.SustainabilityMetric {
		return []entity.SustainabilityMetric{
			{ID: 1, FarmID: 1, MetricType: entity.MetricWaterUsage, Value: dec("1250"), Unit: "L", RecordedAt: entity.NewDate(2024, 5, 1)},
			{ID: 2, FarmID: 1, MetricType: entity.MetricCompost, Value: dec("35"), Unit: "kg", RecordedAt: entity.NewDate(2024, 5, 1)},
			{ID: 3, FarmID: 2, MetricType: entity.MetricEnergyUsage, Value: dec("310"), Unit: "kWh", RecordedAt: entity.NewDate(2024, 5, 1)},
		}
	},
	ID: func(m entity.SustainabilityMetric) int64 { return m.ID },
}

func demoRecommendations() []entity.Recommendation {
	return []entity.Recommendation{
		{Title: "Riego por goteo en todas las camas", Description: "Reduce el consumo de agua hasta un 30 %.", Priority: "HIGH", Category: "water"},
		{Title: "Compostaje de residuos de poda", Description: "Aprovecha los residuos orgánicos como abono.", Priority: "MEDIUM", Category: "waste"},
	}
}
