package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/urbanfarm-dashboard/internal/application/auth"
	"github.com/jhoicas/urbanfarm-dashboard/internal/application/notification"
	"github.com/jhoicas/urbanfarm-dashboard/internal/application/prediction"
	"github.com/jhoicas/urbanfarm-dashboard/internal/application/search"
	"github.com/jhoicas/urbanfarm-dashboard/internal/application/toast"
	"github.com/jhoicas/urbanfarm-dashboard/internal/domain/access"
	"github.com/jhoicas/urbanfarm-dashboard/internal/infrastructure/backend"
	infrapdf "github.com/jhoicas/urbanfarm-dashboard/internal/infrastructure/pdf"
	"github.com/jhoicas/urbanfarm-dashboard/internal/infrastructure/postgres"
	"github.com/jhoicas/urbanfarm-dashboard/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/urbanfarm-dashboard/internal/interfaces/http"
	"github.com/jhoicas/urbanfarm-dashboard/pkg/config"
	"github.com/jhoicas/urbanfarm-dashboard/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("backend", cfg.Backend.BaseURL).
		Bool("demo_mode", cfg.Demo.Mode).
		Msg("iniciando dashboard")

	for _, d := range access.Disagreements() {
		log.Warn().
			Str("permission", string(d.Permission)).
			Str("lower", string(d.Lower)).
			Str("higher", string(d.Higher)).
			Msg("la tabla de permisos no respeta la jerarquía de roles")
	}

	ctx := context.Background()
	store, closeStore := openStore(ctx, cfg, log)
	defer closeStore()

	// Estado del operador
	tokens := auth.NewTokenStore(store, log.Component("tokens"))
	toasts := toast.NewCenter(toast.DefaultCapacity)
	reporter := toast.NewReporter(toasts, cfg.Demo.Mode, log.Component("toast"))

	client := backend.NewClient(cfg.Backend, tokens, reporter, log.Component("backend"))
	apis := httpRouter.APIs{
		Farms:          backend.NewFarmAPI(client),
		Crops:          backend.NewCropAPI(client),
		Harvests:       backend.NewHarvestAPI(client),
		Inventory:      backend.NewInventoryAPI(client),
		Orders:         backend.NewOrderAPI(client),
		Clients:        backend.NewClientAPI(client),
		Staff:          backend.NewStaffAPI(client),
		Sustainability: backend.NewSustainabilityAPI(client),
	}

	session, err := auth.NewSessionManager(backend.NewAuthAPI(client), tokens, reporter, auth.DemoCredentials{
		Email:    cfg.Demo.Email,
		Password: cfg.Demo.Password,
	}, log.Component("session"))
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar sesión")
	}
	session.Restore(ctx)

	notifications := notification.NewStore(store, log.Component("notifications"))
	notifications.Load(ctx)

	var source search.Source = search.NewSampleSource(nil)
	if cfg.Search.UseBackend {
		source = backend.NewSearchAPI(client)
	}
	searchSvc := search.NewService(source, log.Component("search"))

	estimator := prediction.NewEstimator(cfg.Prediction.Jitter, time.Now().UnixNano())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler(log.Component("http")),
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Urban Farm Dashboard",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AppName:       cfg.App.Name,
		PublicURL:     "http://" + cfg.HTTP.Addr(),
		Session:       session,
		APIs:          apis,
		Notifications: notifications,
		Search:        searchSvc,
		Toasts:        toasts,
		Reporter:      reporter,
		Estimator:     estimator,
		Reports:       infrapdf.NewReportGenerator(),
		Store:         store,
		LoginLimiter:  httpRouter.NewLoginLimiter(cfg.App.LoginRatePerMinute),
		Log:           log.Component("pages"),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("dashboard detenido")
}

// openStore elige dónde persistir el estado del operador según STORAGE_DRIVER.
func openStore(ctx context.Context, cfg *config.Config, log *logger.Logger) (storage.Store, func()) {
	switch cfg.Storage.Driver {
	case config.StorageMemory:
		log.Warn().Msg("almacenamiento en memoria: la sesión no sobrevive al reinicio")
		return storage.NewMemoryStore(), func() {}
	case config.StoragePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		st := postgres.NewStateStore(pool)
		if err := st.EnsureSchema(ctx); err != nil {
			pool.Close()
			log.Fatal().Err(err).Msg("crear tabla client_state")
		}
		return st, pool.Close
	default:
		fs, err := storage.NewFileStore(cfg.Storage.Path)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.Storage.Path).Msg("abrir almacenamiento local")
		}
		return fs, func() {}
	}
}
