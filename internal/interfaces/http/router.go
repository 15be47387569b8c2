package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Trazabilidad-api/internal/application/auth"
	"github.com/jhoicas/Trazabilidad-api/internal/application/report"
	apprisk "github.com/jhoicas/Trazabilidad-api/internal/application/risk"
	"github.com/jhoicas/Trazabilidad-api/internal/application/trace"
	"github.com/jhoicas/Trazabilidad-api/internal/application/usecase"
	"github.com/jhoicas/Trazabilidad-api/internal/domain/entity"
	"github.com/jhoicas/Trazabilidad-api/internal/infrastructure/observability"
	"github.com/jhoicas/Trazabilidad-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	UserUC       *usecase.UserUseCase
	PartUC       *usecase.PartUseCase
	StationUC    *usecase.StationUseCase
	ProductionUC *usecase.ProductionUseCase
	EventUC      *trace.EventUseCase
	RiskSvc      *apprisk.Service
	PartReport   *report.PDFUseCase
	JWTSecret    string

	// Opcionales
	Log     *logger.Logger
	Metrics *observability.Metrics
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	if deps.Log != nil {
		api.Use(RequestLogger(deps.Log))
	}
	if deps.Metrics != nil {
		api.Use(deps.Metrics.Middleware())
	}

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (Bearer Token + usuario activo)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret), RequireActiveUser(deps.UserUC))

	operatorOrAdmin := RequireRole(entity.RoleOperator, entity.RoleAdmin)
	supervisorOrAdmin := RequireRole(entity.RoleSupervisor, entity.RoleAdmin)
	adminOnly := RequireRole(entity.RoleAdmin)
	anyRole := RequireRole()

	// Parts
	parts := protected.Group("/parts")
	partHandler := NewPartHandler(deps.PartUC)
	reportHandler := NewReportHandler(deps.PartReport)
	parts.Post("/", operatorOrAdmin, partHandler.Create)
	parts.Get("/", supervisorOrAdmin, partHandler.List)
	parts.Get("/:id", anyRole, partHandler.GetByID)
	parts.Patch("/:id", adminOnly, partHandler.Update)
	parts.Delete("/:id", adminOnly, partHandler.Delete)
	parts.Get("/:id/report", supervisorOrAdmin, reportHandler.DownloadPart)

	// Stations
	stations := protected.Group("/stations")
	stationHandler := NewStationHandler(deps.StationUC)
	stations.Post("/", adminOnly, stationHandler.Create)
	stations.Get("/", supervisorOrAdmin, stationHandler.List)
	stations.Get("/:id", anyRole, stationHandler.GetByID)
	stations.Patch("/:id", adminOnly, stationHandler.Update)
	stations.Delete("/:id", adminOnly, stationHandler.Delete)

	// Trace events
	events := protected.Group("/trace-events")
	eventHandler := NewEventHandler(deps.EventUC)
	events.Post("/", anyRole, eventHandler.Register)
	events.Patch("/:id/close", anyRole, eventHandler.Close)
	events.Get("/part/:part_id", supervisorOrAdmin, eventHandler.ListByPart)

	// Risk
	riskGroup := protected.Group("/risk")
	riskHandler := NewRiskHandler(deps.RiskSvc)
	riskGroup.Post("/score", anyRole, riskHandler.ScoreManual)
	riskGroup.Get("/parts/:part_id", supervisorOrAdmin, riskHandler.ScorePart)
	riskGroup.Get("/anomalies", supervisorOrAdmin, riskHandler.Anomalies)

	// Production metrics
	production := protected.Group("/production", supervisorOrAdmin)
	productionHandler := NewProductionHandler(deps.ProductionUC)
	production.Get("/parts-by-status", productionHandler.PartsByStatus)
	production.Get("/throughput", productionHandler.Throughput)
	production.Get("/station-cycle-time", productionHandler.StationCycleTime)
	production.Get("/scrap-rate", productionHandler.ScrapRate)

	// Users (ADMIN)
	users := protected.Group("/users", adminOnly)
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Patch("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)
}
