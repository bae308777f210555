package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tupyme/inventario-api/internal/application/analytics"
	"github.com/tupyme/inventario-api/internal/application/auth"
	"github.com/tupyme/inventario-api/internal/application/inventory"
	"github.com/tupyme/inventario-api/internal/application/usecase"
	"github.com/tupyme/inventario-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC           *auth.UseCase
	ProductUC        *usecase.ProductUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	AlertUC          *inventory.AlertUseCase
	ImportUC         *inventory.ImportUseCase
	ExportUC         *inventory.ExportUseCase
	DashboardUC      *analytics.DashboardUseCase
	ReportUC         *usecase.ReportUseCase
	JWTSecret        string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	transferHandler := NewTransferHandler(deps.ImportUC, deps.ExportUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/export", transferHandler.Export)
	products.Get("/template", transferHandler.Template)
	products.Post("/import", RequireRole(entity.RoleAdmin), transferHandler.Import)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", RequireRole(entity.RoleAdmin), productHandler.Delete)

	// Inventory movements (protegido; vendedor no registra movimientos)
	invGroup := protected.Group("/inventory")
	movementHandler := NewMovementHandler(deps.RegisterMovement)
	invGroup.Post("/movements", RequireRole(entity.RoleAdmin, entity.RoleBodeguero), movementHandler.Register)
	invGroup.Get("/movements", movementHandler.List)

	// Alerts (protegido)
	alertHandler := NewAlertHandler(deps.AlertUC)
	protected.Get("/alerts", alertHandler.List)

	// Catálogos fijos (protegido)
	catalogHandler := NewCatalogHandler()
	protected.Get("/categories", catalogHandler.Categories)
	protected.Get("/formats", catalogHandler.Formats)

	// Dashboard (protegido)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/summary", dashboardHandler.Summary)

	// Reports (protegido)
	reportHandler := NewReportHandler(deps.ReportUC)
	protected.Get("/reports/inventory.pdf", reportHandler.Inventory)
}
