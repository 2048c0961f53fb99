package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"smart-sales-api/internal/config"
	"smart-sales-api/internal/handler"
	"smart-sales-api/internal/middleware"
	"smart-sales-api/internal/repository"
	"smart-sales-api/internal/service"
	"smart-sales-api/internal/ws"
	"smart-sales-api/pkg/database"
	"smart-sales-api/pkg/jwt"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// 2. Setup Database
	db, err := database.ConnectDB(cfg.DatabaseURL, cfg.DBLogLevel)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// 3. Setup WebSocket Hub
	ctx, stop := context.WithCancel(context.Background())
	defer stop()
	wsHub := ws.NewHub()
	go wsHub.Run(ctx)

	// 4. Dependency Injection (Wiring Layers)
	customerRepo := repository.NewCustomerRepo(db)
	productRepo := repository.NewProductRepo(db)
	saleRepo := repository.NewSaleRepo(db)
	saleItemRepo := repository.NewSaleItemRepo(db)
	inventoryRepo := repository.NewInventoryRepo(db)
	forecastRepo := repository.NewForecastRepo(db)
	userRepo := repository.NewUserRepo(db)
	tokenRepo := repository.NewTokenRepo(db)
	dashboardRepo := repository.NewDashboardRepo(db)

	tokens := jwt.NewManager(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	userService := service.NewUserService(userRepo)

	// 5. Optional admin seed
	seedAdmin(ctx, cfg, userRepo, userService)

	handlers := handler.NewHandlers(handler.Services{
		Customers: service.NewCustomerService(customerRepo),
		Products:  service.NewProductService(productRepo, wsHub),
		Sales:     service.NewSaleService(saleRepo, customerRepo, userRepo, wsHub),
		SaleItems: service.NewSaleItemService(saleItemRepo, saleRepo, productRepo),
		Inventory: service.NewInventoryService(inventoryRepo, productRepo, wsHub),
		Forecasts: service.NewForecastService(forecastRepo, productRepo),
		Users:     userService,
		Auth:      service.NewAuthService(userRepo, tokenRepo, tokens),
		Dashboard: service.NewDashboardService(dashboardRepo),
	})

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ErrorHandler: handler.ErrorHandler,
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.CORSOrigins}))

	// 7. Routes
	handler.Setup(app, handlers, middleware.RequireAuth(userRepo, tokens))

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(wsHub.Serve))

	// 8. Graceful Shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	stop()
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

// seedAdmin creates the configured superuser when ADMIN_PASSWORD is set and
// the username is still free.
func seedAdmin(ctx context.Context, cfg *config.Config, userRepo repository.UserRepository, users service.UserService) {
	if cfg.AdminPassword == "" {
		return
	}

	exists, err := userRepo.ExistsByUsername(ctx, cfg.AdminUsername)
	if err != nil {
		log.Printf("Warning: Failed to check admin user: %v", err)
		return
	}
	if exists {
		return
	}

	if _, err := users.CreateSuperuser(ctx, cfg.AdminUsername, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Printf("Warning: Failed to create admin user: %v", err)
		return
	}
	log.Printf("✅ Admin user created: %s", cfg.AdminUsername)
}
