package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/urbanfarm-dashboard/internal/application/auth"
	"github.com/jhoicas/urbanfarm-dashboard/internal/application/form"
	"github.com/jhoicas/urbanfarm-dashboard/internal/application/notification"
	"github.com/jhoicas/urbanfarm-dashboard/internal/application/prediction"
	"github.com/jhoicas/urbanfarm-dashboard/internal/application/search"
	"github.com/jhoicas/urbanfarm-dashboard/internal/application/toast"
	"github.com/jhoicas/urbanfarm-dashboard/internal/application/workflow"
	"github.com/jhoicas/urbanfarm-dashboard/internal/domain/access"
	"github.com/jhoicas/urbanfarm-dashboard/internal/domain/entity"
	"github.com/jhoicas/urbanfarm-dashboard/internal/infrastructure/backend"
	"github.com/jhoicas/urbanfarm-dashboard/internal/infrastructure/pdf"
	"github.com/jhoicas/urbanfarm-dashboard/internal/infrastructure/storage"
)

// APIs módulos del backend que usan las páginas.
type APIs struct {
	Farms          *backend.FarmAPI
	Crops          *backend.CropAPI
	Harvests       *backend.HarvestAPI
	Inventory      *backend.InventoryAPI
	Orders         *backend.OrderAPI
	Clients        *backend.ClientAPI
	Staff          *backend.StaffAPI
	Sustainability *backend.SustainabilityAPI
}

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AppName       string
	PublicURL     string
	Session       *auth.SessionManager
	APIs          APIs
	Notifications *notification.Store
	Search        *search.Service
	Toasts        *toast.Center
	Reporter      *toast.Reporter
	Estimator     *prediction.Estimator
	Reports       *pdf.ReportGenerator
	Store         storage.Store
	LoginLimiter  *LoginLimiter
	Log           zerolog.Logger
}

// Router registra las páginas públicas, el grupo /app y la página 404.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log

	// Públicas
	authHandler := NewAuthHandler(deps.Session, deps.AppName)
	app.Get("/", authHandler.Landing)
	app.Get("/session", authHandler.Session)
	app.Post("/login", deps.LoginLimiter.Middleware(), authHandler.Login)
	app.Post("/register", authHandler.Register)
	app.Post("/forgot-password", authHandler.ForgotPassword)
	app.Post("/reset-password", authHandler.ResetPassword)
	app.Post("/two-factor-auth", authHandler.TwoFactor)
	app.Post("/logout", authHandler.Logout)

	// Protegidas (requieren sesión)
	protected := app.Group("/app", RequireSession(deps.Session))
	a := deps.APIs
	rep := deps.Reporter

	dashboard := NewDashboardHandler(DashboardDeps{
		Farms:         a.Farms,
		Crops:         a.Crops,
		Inventory:     a.Inventory,
		Orders:        a.Orders,
		Estimator:     deps.Estimator,
		Notifications: deps.Notifications,
		Toast:         rep,
		Log:           log.With().Str("page", "dashboard").Logger(),
	})
	protected.Get("/dashboard", dashboard.Summary)

	settings := NewSettingsHandler(deps.Store, rep, log.With().Str("page", "settings").Logger())
	protected.Get("/settings", settings.Get)
	protected.Put("/settings", RequirePermission(access.CanManageSettings), settings.Update)

	// Farms
	farms := protected.Group("/farms")
	farmHandler := NewFarmHandler(a.Farms, rep)
	farms.Post("/:id/track-crops", RequirePermission(access.CanRead), farmHandler.TrackCrops)
	farms.Post("/:id/manage-staff/:staffId", RequirePermission(access.CanUpdate), farmHandler.ManageStaff)
	NewCRUDHandler[entity.Farm, form.FarmForm](a.Farms, farmFixtures, rep, log.With().Str("page", "farms").Logger()).Mount(farms)

	// Crops
	crops := protected.Group("/crops")
	cropHandler := NewCropHandler(a.Crops, rep)
	crops.Post("/:id/record-harvest", RequirePermission(access.CanCreate), cropHandler.RecordHarvest)
	crops.Post("/:id/record-metrics", RequirePermission(access.CanUpdate), cropHandler.RecordMetrics)
	crops.Post("/:id/assign-to-farm/:farmId", RequirePermission(access.CanUpdate), cropHandler.AssignToFarm)
	NewCRUDHandler[entity.Crop, form.CropForm](a.Crops, cropFixtures, rep, log.With().Str("page", "crops").Logger()).Mount(crops)

	// Harvests
	harvests := protected.Group("/harvests")
	intake := workflow.NewHarvestIntake(a.Harvests, a.Inventory, log.With().Str("workflow", "harvest_intake").Logger())
	harvestHandler := NewHarvestHandler(a.Harvests, intake, rep)
	harvests.Post("/intake", RequirePermission(access.CanCreate), harvestHandler.Intake)
	harvests.Put("/:id/quality", RequirePermission(access.CanUpdate), harvestHandler.Quality)
	harvests.Put("/:id/yield", RequirePermission(access.CanUpdate), harvestHandler.Yield)
	harvests.Post("/:id/transfer-to-inventory/:inventoryId", RequirePermission(access.CanUpdate), harvestHandler.Transfer)
	NewCRUDHandler[entity.Harvest, form.HarvestForm](a.Harvests, harvestFixtures, rep, log.With().Str("page", "harvests").Logger()).Mount(harvests)

	// Inventory
	inventory := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(a.Inventory, rep)
	inventory.Get("/:id/availability/:qty", RequirePermission(access.CanRead), inventoryHandler.Availability)
	inventory.Put("/:id/quantity/:qty", RequirePermission(access.CanUpdate), inventoryHandler.SetQuantity)
	NewCRUDHandler[entity.InventoryItem, form.InventoryForm](a.Inventory, inventoryFixtures, rep, log.With().Str("page", "inventory").Logger()).Mount(inventory)

	// Orders
	orders := protected.Group("/orders")
	placement := workflow.NewOrderPlacement(a.Orders, a.Inventory, log.With().Str("workflow", "order_placement").Logger())
	orderHandler := NewOrderHandler(a.Orders, placement, rep)
	orders.Post("/place", RequirePermission(access.CanCreate), orderHandler.Place)
	orders.Put("/:id/status", RequirePermission(access.CanUpdate), orderHandler.Status)
	orders.Post("/:id/cancel", RequirePermission(access.CanUpdate), orderHandler.Cancel)
	NewCRUDHandler[entity.Order, form.OrderForm](a.Orders, orderFixtures, rep, log.With().Str("page", "orders").Logger()).Mount(orders)

	// Clients
	clients := protected.Group("/clients")
	NewCRUDHandler[entity.Client, form.ClientForm](a.Clients, clientFixtures, rep, log.With().Str("page", "clients").Logger()).Mount(clients)

	// Staff (MANAGER o superior)
	staff := protected.Group("/staff", RequireRole(entity.RoleManager))
	staffHandler := NewStaffHandler(a.Staff, rep)
	staff.Post("/:id/assign-to-farm/:farmId", RequirePermission(access.CanUpdate), staffHandler.AssignToFarm)
	staff.Put("/:id/work-hours", RequirePermission(access.CanUpdate), staffHandler.WorkHours)
	NewCRUDHandler[entity.Staff, form.StaffForm](a.Staff, staffFixtures, rep, log.With().Str("page", "staff").Logger()).Mount(staff)

	// Sustainability
	sustainability := protected.Group("/sustainability")
	sustainabilityHandler := NewSustainabilityHandler(SustainabilityDeps{
		Farms:     a.Farms,
		Metrics:   a.Sustainability,
		Reports:   deps.Reports,
		Estimator: deps.Estimator,
		Toast:     rep,
		Log:       log.With().Str("page", "sustainability").Logger(),
		PublicURL: deps.PublicURL,
	})
	sustainability.Get("/predictions", RequirePermission(access.CanRead), sustainabilityHandler.Predictions)
	sustainability.Get("/farms/:id/recommendations", RequirePermission(access.CanRead), sustainabilityHandler.Recommendations)
	sustainability.Get("/farms/:id/report.pdf", RequirePermission(access.CanViewReports), sustainabilityHandler.ReportPDF)
	sustainability.Get("/farms/:id/report", RequirePermission(access.CanRead), sustainabilityHandler.Report)
	NewCRUDHandler[entity.SustainabilityMetric, form.SustainabilityForm](a.Sustainability, sustainabilityFixtures, rep, log.With().Str("page", "sustainability").Logger()).Mount(sustainability)

	// Estado local del operador
	local := NewNotificationHandler(deps.Notifications, deps.Search, deps.Toasts)
	notifications := protected.Group("/notifications")
	notifications.Get("/", local.List)
	notifications.Post("/", local.Add)
	notifications.Post("/read-all", local.MarkAllAsRead)
	notifications.Post("/:id/read", local.MarkAsRead)
	notifications.Delete("/:id", local.Remove)
	notifications.Delete("/", local.ClearAll)
	protected.Get("/search", local.Search)
	protected.Get("/toasts", local.Toasts)

	app.Use(NotFound)
}
