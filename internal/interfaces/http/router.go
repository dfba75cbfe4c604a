package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/materiales-pro/internal/application/auth"
	appsales "github.com/tu-usuario/materiales-pro/internal/application/sales"
	"github.com/tu-usuario/materiales-pro/internal/application/usecase"
	"github.com/tu-usuario/materiales-pro/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ClientUC    *usecase.ClientUseCase
	ProductUC   *usecase.ProductUseCase
	SupplierUC  *usecase.SupplierUseCase
	BranchUC    *usecase.BranchUseCase
	UserUC      *usecase.UserUseCase
	FinanceUC   *usecase.FinanceUseCase
	QuotationUC *appsales.QuotationUseCase
	OrderUC     *appsales.OrderUseCase
	PDFUC       *appsales.PDFUseCase
	JWTSecret   string
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
	adminOnly := RequireRole(entity.RoleAdmin)

	// Clientes y proyectos
	clients := protected.Group("/clientes")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)
	clients.Get("/:id/proyectos", clientHandler.ListProjects)
	clients.Post("/:id/proyectos", clientHandler.CreateProject)

	projects := protected.Group("/proyectos")
	projects.Put("/:id", clientHandler.UpdateProject)
	projects.Put("/:id/reasignar", clientHandler.ReassignProject)
	projects.Delete("/:id", clientHandler.DeleteProject)

	// Catálogo de productos
	products := protected.Group("/productos")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Proveedores
	suppliers := protected.Group("/proveedores")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Sucursales (solo admin)
	branches := protected.Group("/sucursales", adminOnly)
	branchHandler := NewBranchHandler(deps.BranchUC)
	branches.Post("/", branchHandler.Create)
	branches.Get("/", branchHandler.List)
	branches.Get("/:id", branchHandler.GetByID)
	branches.Put("/:id", branchHandler.Update)
	branches.Delete("/:id", branchHandler.Delete)

	// Usuarios (solo admin)
	users := protected.Group("/usuarios", adminOnly)
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)

	// Registros de ingresos y egresos
	records := protected.Group("/registros")
	financeHandler := NewFinanceHandler(deps.FinanceUC)
	records.Post("/", financeHandler.Create)
	records.Get("/", financeHandler.List)
	records.Get("/resumen", financeHandler.Summary)
	records.Get("/:id", financeHandler.GetByID)
	records.Put("/:id", financeHandler.Update)
	records.Delete("/:id", financeHandler.Delete)

	// Cotizaciones
	quotations := protected.Group("/cotizaciones")
	quotationHandler := NewQuotationHandler(deps.QuotationUC, deps.PDFUC)
	quotations.Post("/", quotationHandler.Create)
	quotations.Get("/", quotationHandler.List)
	quotations.Get("/:id", quotationHandler.GetByID)
	quotations.Put("/:id/cancelar", quotationHandler.Cancel)
	quotations.Get("/:id/pdf", quotationHandler.DownloadPDF)

	// Órdenes de venta
	orders := protected.Group("/ordenes-venta")
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Put("/:id", orderHandler.UpdateStatus)
}
