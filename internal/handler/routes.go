package handler

import (
	"smart-sales-api/internal/model"
	"smart-sales-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

// Handlers groups every HTTP handler mounted by Setup.
type Handlers struct {
	Customers *ResourceHandler[service.CustomerInput, model.CustomerResponse]
	Products  *ProductHandler
	Sales     *ResourceHandler[service.SaleInput, model.SaleResponse]
	SaleItems *ResourceHandler[service.SaleItemInput, model.SaleItemResponse]
	Inventory *ResourceHandler[service.InventoryInput, model.InventoryResponse]
	Forecasts *ResourceHandler[service.ForecastInput, model.ForecastResponse]
	Users     *UserHandler
	Auth      *AuthHandler
	Dashboard *DashboardHandler
}

// Services are the dependencies NewHandlers wires into handlers.
type Services struct {
	Customers service.CustomerService
	Products  service.ProductService
	Sales     service.SaleService
	SaleItems service.SaleItemService
	Inventory service.InventoryService
	Forecasts service.ForecastService
	Users     service.UserService
	Auth      service.AuthService
	Dashboard service.DashboardService
}

func NewHandlers(s Services) *Handlers {
	return &Handlers{
		Customers: NewResourceHandler[service.CustomerInput, model.CustomerResponse](s.Customers),
		Products:  NewProductHandler(s.Products),
		Sales:     NewResourceHandler[service.SaleInput, model.SaleResponse](s.Sales),
		SaleItems: NewResourceHandler[service.SaleItemInput, model.SaleItemResponse](s.SaleItems),
		Inventory: NewResourceHandler[service.InventoryInput, model.InventoryResponse](s.Inventory),
		Forecasts: NewResourceHandler[service.ForecastInput, model.ForecastResponse](s.Forecasts),
		Users:     NewUserHandler(s.Users),
		Auth:      NewAuthHandler(s.Auth),
		Dashboard: NewDashboardHandler(s.Dashboard),
	}
}

// Setup mounts the welcome page and the /api tree. requireAuth guards
// every resource route.
func Setup(app *fiber.App, h *Handlers, requireAuth fiber.Handler) {
	app.Get("/", Welcome)

	api := app.Group("/api")

	// ============ PUBLIC ROUTES ============
	api.Get("/dashboard", h.Dashboard.GetDashboardStats)

	auth := api.Group("/auth")
	auth.Post("/register", h.Auth.Register)
	auth.Post("/login", h.Auth.Login)
	auth.Post("/token/refresh", h.Auth.Refresh)
	auth.Post("/logout", requireAuth, h.Auth.Logout)
	auth.Get("/profile", requireAuth, h.Auth.Profile)

	// ============ PROTECTED ROUTES ============
	h.Customers.Register(api.Group("/customers", requireAuth))
	h.Products.Register(api.Group("/products", requireAuth))
	h.Sales.Register(api.Group("/sales", requireAuth))
	h.SaleItems.Register(api.Group("/sale-items", requireAuth))
	h.Inventory.Register(api.Group("/inventory", requireAuth))
	h.Forecasts.Register(api.Group("/forecasts", requireAuth))
	h.Users.Register(api.Group("/users", requireAuth))
}

// Welcome lists the top-level endpoints
// GET /
func Welcome(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Welcome to Smart Sales API",
		"endpoints": fiber.Map{
			"customers":  "/api/customers/",
			"products":   "/api/products/",
			"sales":      "/api/sales/",
			"sale_items": "/api/sale-items/",
			"inventory":  "/api/inventory/",
			"forecasts":  "/api/forecasts/",
			"users":      "/api/users/",
			"dashboard":  "/api/dashboard/",
			"auth":       "/api/auth/",
			"live":       "/ws",
		},
		"status": "API is running successfully!",
	})
}
