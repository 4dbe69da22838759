package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Quickcart-api/internal/application/auth"
	"github.com/jhoicas/Quickcart-api/internal/application/authctx"
	"github.com/jhoicas/Quickcart-api/internal/application/billing"
	"github.com/jhoicas/Quickcart-api/internal/application/cart"
	"github.com/jhoicas/Quickcart-api/internal/application/usecase"
	"github.com/jhoicas/Quickcart-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AdminUC     *auth.AdminUseCase
	GuardUC     *auth.GuardUseCase
	SessionUC   *auth.SessionUseCase
	SessionCtx  *authctx.CustomerContext
	ProductUC   *usecase.ProductUseCase
	DashboardUC *usecase.DashboardUseCase
	MallUC      *usecase.MallUseCase
	Carts       *cart.Service
	CheckoutUC  *billing.CheckoutUseCase
	VerifyUC    *billing.VerifyUseCase
	PDFUC       *billing.PDFUseCase
	JWTSecret   string
}

// Router registra las rutas de la API y las páginas de la demo.
func Router(app *fiber.App, deps RouterDeps) {
	// Páginas protegidas por rol: la decisión de navegación redirige con 303.
	page := func(name string) fiber.Handler {
		return func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"page": name})
		}
	}
	app.Get("/login", page("customer-login"))
	app.Get("/admin/login", page("admin-login"))
	app.Get("/guard/login", page("guard-login"))
	app.Get("/", PageGuard(entity.RoleCustomer, deps.SessionCtx), page("customer-home"))
	app.Get("/admin", PageGuard(entity.RoleAdmin, deps.SessionCtx), page("admin-home"))
	app.Get("/guard", PageGuard(entity.RoleGuard, deps.SessionCtx), page("guard-home"))

	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")

	adminAuth := NewAdminAuthHandler(deps.AdminUC)
	adminAuthGroup := authGroup.Group("/admin")
	adminAuthGroup.Post("/register", adminAuth.Register)
	adminAuthGroup.Post("/login", adminAuth.Login)
	adminAuthGroup.Post("/logout", adminAuth.Logout)
	adminAuthGroup.Get("/exists", adminAuth.Exists)
	adminAuthGroup.Get("/status/:uid", adminAuth.Status)

	guardAuth := NewGuardAuthHandler(deps.GuardUC)
	guardAuthGroup := authGroup.Group("/guard")
	guardAuthGroup.Post("/register", guardAuth.Register)
	guardAuthGroup.Post("/login", guardAuth.Login)
	guardAuthGroup.Get("/status/:uid", guardAuth.Status)

	customerAuth := NewCustomerAuthHandler(deps.SessionUC)
	authGroup.Post("/customer/login", customerAuth.Login)
	authGroup.Get("/session", customerAuth.Session)
	authGroup.Post("/logout", customerAuth.Logout)

	// Directorio de centros comerciales (público)
	mallHandler := NewMallHandler(deps.MallUC)
	api.Get("/malls", mallHandler.List)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Catálogo (cualquier rol autenticado)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/scan/:barcode", productHandler.Scan)
	products.Get("/:id", productHandler.GetByID)

	// Carrito (compradores)
	cartGroup := protected.Group("/cart", RequireRole(string(entity.RoleCustomer)))
	cartHandler := NewCartHandler(deps.Carts, deps.ProductUC)
	cartGroup.Get("/", cartHandler.Get)
	cartGroup.Delete("/", cartHandler.Clear)
	cartGroup.Post("/items", cartHandler.Add)
	cartGroup.Put("/items", cartHandler.UpdateQuantity)
	cartGroup.Delete("/items/:product_id", cartHandler.Remove)

	// Facturas
	billHandler := NewBillHandler(deps.CheckoutUC, deps.VerifyUC, deps.PDFUC)
	bills := protected.Group("/bills")
	bills.Post("/checkout", RequireRole(string(entity.RoleCustomer)), billHandler.Checkout)
	bills.Get("/", RequireRole(string(entity.RoleCustomer)), billHandler.ListMine)
	bills.Get("/:id", billHandler.GetByID)
	bills.Get("/:id/pdf", billHandler.DownloadPDF)
	bills.Post("/:id/verify", RequireRole(string(entity.RoleGuard), string(entity.RoleAdmin)), billHandler.Verify)

	// Guardia: historial de verificaciones
	guardGroup := protected.Group("/guard", RequireRole(string(entity.RoleGuard), string(entity.RoleAdmin)))
	guardGroup.Get("/verifications", billHandler.ListVerifications)

	// Admin: dashboard y guardias registrados
	adminGroup := protected.Group("/admin", RequireRole(string(entity.RoleAdmin)))
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	adminGroup.Get("/dashboard", dashboardHandler.Stats)
	adminGroup.Get("/guards", guardAuth.List)
}
