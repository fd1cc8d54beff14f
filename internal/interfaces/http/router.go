package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/muebleria-pos/internal/application/auth"
	"github.com/tu-usuario/muebleria-pos/internal/application/reports"
	"github.com/tu-usuario/muebleria-pos/internal/application/sales"
	"github.com/tu-usuario/muebleria-pos/internal/application/usecase"
	"github.com/tu-usuario/muebleria-pos/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC   *usecase.ProductUseCase
	CustomerUC  *usecase.CustomerUseCase
	CreateSale  *sales.CreateSaleUseCase
	SaleHistory *sales.HistoryUseCase
	SalesReport *reports.SalesReportUseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
}

// Router registra las rutas de la API. El gerente pasa todas las puertas de
// rol; el trabajador registra ventas y consulta inventario e historial.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público; el registro condiciona por actor dentro del handler)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.JWTSecret)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products: lectura para cualquier usuario autenticado, escritura solo gerente
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", RequireRole(entity.RoleGerente), productHandler.Create)
	products.Put("/:id", RequireRole(entity.RoleGerente), productHandler.Update)
	products.Delete("/:id", RequireRole(entity.RoleGerente), productHandler.Delete)

	// Customers: gestión completa solo gerente
	customers := protected.Group("/customers", RequireRole(entity.RoleGerente))
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	// Sales: registrar (trabajador o gerente) y consultar historial
	salesGroup := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.CreateSale, deps.SaleHistory)
	salesGroup.Post("/", RequireRole(entity.RoleTrabajador), saleHandler.Create)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Get("/:id", saleHandler.GetByID)

	// Reports: solo gerente
	reportsGroup := protected.Group("/reports", RequireRole(entity.RoleGerente))
	reportHandler := NewReportHandler(deps.SalesReport)
	reportsGroup.Post("/sales", reportHandler.Generate)
}
