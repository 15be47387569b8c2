package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/Trazabilidad-api/internal/application/auth"
	"github.com/jhoicas/Trazabilidad-api/internal/application/report"
	apprisk "github.com/jhoicas/Trazabilidad-api/internal/application/risk"
	"github.com/jhoicas/Trazabilidad-api/internal/application/trace"
	"github.com/jhoicas/Trazabilidad-api/internal/application/usecase"
	"github.com/jhoicas/Trazabilidad-api/internal/infrastructure/observability"
	infrapdf "github.com/jhoicas/Trazabilidad-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Trazabilidad-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Trazabilidad-api/internal/interfaces/http"
	"github.com/jhoicas/Trazabilidad-api/pkg/config"
	"github.com/jhoicas/Trazabilidad-api/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

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
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es obligatorio")
	}

	engine, err := apprisk.EngineFromConfig(cfg.Risk)
	if err != nil {
		log.Fatal().Err(err).Msg("reglas de riesgo inválidas")
	}
	log.Info().Str("rules_version", engine.Rules().Version).Msg("motor de riesgo listo")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	partRepo := postgres.NewPartRepository(pool)
	stationRepo := postgres.NewStationRepository(pool)
	eventRepo := postgres.NewProcessEventRepository(pool)
	productionRepo := postgres.NewProductionRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := observability.NewMetrics(registry)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	riskSvc := apprisk.NewService(engine, partRepo, eventRepo, log.Component("risk"), metrics)
	eventUC := trace.NewEventUseCase(txRunner, partRepo, stationRepo, eventRepo)

	// PDF: reporte de trazabilidad por pieza
	reportUC := report.NewPDFUseCase(partRepo, stationRepo, eventRepo, engine, infrapdf.NewMarotoReportGenerator())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs (solo si existe el JSON generado)
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Trazabilidad API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := pool.Ping(c.UserContext()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded", "service": cfg.App.Name})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "rules_version": engine.Rules().Version})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		UserUC:       usecase.NewUserUseCase(userRepo),
		PartUC:       usecase.NewPartUseCase(partRepo),
		StationUC:    usecase.NewStationUseCase(stationRepo),
		ProductionUC: usecase.NewProductionUseCase(productionRepo),
		EventUC:      eventUC,
		RiskSvc:      riskSvc,
		PartReport:   reportUC,
		JWTSecret:    cfg.JWT.Secret,
		Log:          log.Component("http"),
		Metrics:      metrics,
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

	log.Info().Msg("aplicación detenida")
}
