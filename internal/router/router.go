package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/Zayed4321/FoodHouse-Backend/internal/auth"
	"github.com/Zayed4321/FoodHouse-Backend/internal/handler"
	"github.com/Zayed4321/FoodHouse-Backend/internal/middleware"
	"github.com/Zayed4321/FoodHouse-Backend/internal/repository"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	tokens *auth.JWTService,
	userRepo repository.UserRepository,
	userHandler *handler.UserHandler,
	categoryHandler *handler.CategoryHandler,
	productHandler *handler.ProductHandler,
	orderHandler *handler.OrderHandler,
	paymentHandler *handler.PaymentHandler,
) {
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1")

	authenticated := middleware.Authenticated(tokens)
	adminOnly := middleware.RequireAdmin(userRepo)

	// User account routes
	users := api.Group("/users")
	users.POST("/addUser", userHandler.Register)
	users.POST("/userLogin", userHandler.Login)
	users.POST("/forgot-pass", userHandler.ForgotPassword)
	users.GET("/user-auth", userHandler.AuthProbe, authenticated)
	users.GET("/admin-auth", userHandler.AuthProbe, authenticated, adminOnly)
	users.PUT("/profile-update", userHandler.UpdateProfile, authenticated)
	users.GET("/allUsers", userHandler.ListUsers, authenticated, adminOnly)
	users.GET("/orders", orderHandler.MyOrders, authenticated)
	users.GET("/all-orders", orderHandler.AllOrders, authenticated, adminOnly)
	users.PUT("/order-status/:orderId", orderHandler.UpdateStatus, authenticated, adminOnly)

	// Category routes
	category := api.Group("/category")
	category.POST("/create-category", categoryHandler.Create, authenticated, adminOnly)
	category.PUT("/update-category/:id", categoryHandler.Update, authenticated, adminOnly)
	category.GET("/all-category", categoryHandler.List)
	category.GET("/single-category/:slug", categoryHandler.GetBySlug)
	category.DELETE("/delete-category/:id", categoryHandler.Delete, authenticated, adminOnly)

	// Product routes
	product := api.Group("/product")
	product.POST("/create-product", productHandler.Create, authenticated, adminOnly)
	product.PUT("/update-product/:pid", productHandler.Update, authenticated, adminOnly)
	product.DELETE("/delete-product/:pid", productHandler.Delete, authenticated, adminOnly)
	product.GET("/all-product", productHandler.List)
	product.GET("/single-product/:slug", productHandler.GetBySlug)
	product.GET("/photo-product/:pid", productHandler.Photo)
	product.POST("/filter-product", productHandler.Filter)
	product.GET("/search-product/:keywords", productHandler.Search)
	product.GET("/similar-product/:pid/:cid", productHandler.Similar)
	product.GET("/product-category/:slug", productHandler.ByCategory)

	// Payment routes
	product.GET("/gateway/token", paymentHandler.ClientToken)
	product.POST("/gateway/payment", paymentHandler.Checkout, authenticated)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
