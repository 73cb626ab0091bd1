package main

import (
	"log"
	"net/http"

	"github.com/Zayed4321/FoodHouse-Backend/docs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/Zayed4321/FoodHouse-Backend/internal/auth"
	"github.com/Zayed4321/FoodHouse-Backend/internal/cache"
	"github.com/Zayed4321/FoodHouse-Backend/internal/config"
	"github.com/Zayed4321/FoodHouse-Backend/internal/db"
	"github.com/Zayed4321/FoodHouse-Backend/internal/handler"
	"github.com/Zayed4321/FoodHouse-Backend/internal/model"
	"github.com/Zayed4321/FoodHouse-Backend/internal/payment"
	"github.com/Zayed4321/FoodHouse-Backend/internal/repository"
	"github.com/Zayed4321/FoodHouse-Backend/internal/router"
	"github.com/Zayed4321/FoodHouse-Backend/internal/service"
	"github.com/Zayed4321/FoodHouse-Backend/internal/storage"
)

// @title FoodHouse API
// @version 1.0
// @description Food delivery backend with accounts, catalog, orders and checkout.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the token.
func main() {
	cfg := config.Load()
	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Product{},
		&model.Order{},
		&model.OrderItem{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	photoStore, err := storage.NewPhotoStore(cfg.PhotoDir)
	if err != nil {
		log.Fatalf("photo store init: %v", err)
	}

	gateway := payment.NewSandboxGateway(cfg.GatewayMerchantID, cfg.GatewayPublicKey, cfg.GatewayPrivateKey)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	categoryRepo := repository.NewCategoryRepository(gormDB)
	productRepo := repository.NewProductRepository(gormDB)
	orderRepo := repository.NewOrderRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	// Initialize services
	userService := service.NewUserService(userRepo, jwtService)
	categoryService := service.NewCategoryService(categoryRepo, cacheClient)
	productService := service.NewProductService(productRepo, categoryRepo, photoStore, cacheClient)
	orderService := service.NewOrderService(orderRepo)
	paymentService := service.NewPaymentService(productRepo, orderRepo, gateway)

	// Initialize handlers
	userHandler := handler.NewUserHandler(userService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	productHandler := handler.NewProductHandler(productService)
	orderHandler := handler.NewOrderHandler(orderService)
	paymentHandler := handler.NewPaymentHandler(paymentService)

	// Register routes
	router.Register(
		e,
		jwtService,
		userRepo,
		userHandler,
		categoryHandler,
		productHandler,
		orderHandler,
		paymentHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
