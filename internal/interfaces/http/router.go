package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Catalogo-api/internal/application/auth"
	"github.com/jhoicas/Catalogo-api/internal/application/report"
	"github.com/jhoicas/Catalogo-api/internal/application/usecase"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoryUC *usecase.CategoryUseCase
	ProductUC  *usecase.ProductUseCase
	OrderUC    *usecase.OrderUseCase
	UserUC     *usecase.UserUseCase
	ReportUC   *report.ReportUseCase
	AuthUC     *auth.AuthUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	requireAuth := AuthMiddleware(deps.JWTSecret)
	adminOnly := RequireRole(entity.RoleAdmin)

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Categorías: lectura pública, escritura solo admin.
	// Las rutas estáticas van antes de /:code.
	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC, deps.ReportUC)
	categories.Get("/", categoryHandler.List)
	categories.Get("/tree", categoryHandler.Tree)
	categories.Get("/aggregation", categoryHandler.Aggregation)
	categories.Get("/:code/descendants", categoryHandler.Descendants)
	categories.Get("/:code", categoryHandler.Get)
	categories.Post("/", requireAuth, adminOnly, categoryHandler.Create)
	categories.Put("/:code", requireAuth, adminOnly, categoryHandler.Update)
	categories.Delete("/:code", requireAuth, adminOnly, categoryHandler.Delete)

	// Productos
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.ReportUC)
	products.Get("/", productHandler.List)
	products.Get("/category/:code", productHandler.ByCategory)
	products.Get("/aggregation/by-category", productHandler.AggregationByCategory)
	products.Get("/aggregation/statistics", productHandler.Statistics)
	products.Get("/:code", productHandler.Get)
	products.Post("/", requireAuth, adminOnly, productHandler.Create)
	products.Put("/:code", requireAuth, adminOnly, productHandler.Update)
	products.Delete("/:code", requireAuth, adminOnly, productHandler.Delete)

	// Reportes (público)
	reports := api.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/", reportHandler.All)
	reports.Get("/category-stats", reportHandler.CategoryStats)
	reports.Get("/hierarchy", reportHandler.Hierarchy)
	reports.Get("/top-products", reportHandler.TopProducts)
	reports.Get("/distribution", reportHandler.Distribution)

	// Pedidos (requieren Bearer Token)
	orders := api.Group("/orders", requireAuth)
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Get("/", orderHandler.List)
	orders.Post("/", orderHandler.Create)
	orders.Get("/aggregation", orderHandler.Aggregation)
	orders.Get("/user/:userId", orderHandler.ListByUser)
	orders.Get("/:code", orderHandler.Get)
	orders.Put("/:code", orderHandler.Update)
	orders.Delete("/:code", orderHandler.Delete)

	// Usuarios (protegido)
	users := api.Group("/users", requireAuth)
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", adminOnly, userHandler.List)
	users.Get("/:id", userHandler.Get)
}
