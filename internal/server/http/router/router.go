package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/amanshrivastava28/Sneako/internal/pkg/metrics"
	"github.com/amanshrivastava28/Sneako/internal/server/http/handlers"
	"github.com/amanshrivastava28/Sneako/internal/server/http/middleware"
)

const (
	orderServiceName = "order-service"
	adminServiceName = "admin-service"
)

// OrderServiceParams collects the dependencies of the order service router.
type OrderServiceParams struct {
	fx.In

	Facade  handlers.OrderServiceFacade
	Health  handlers.HealthChecker `optional:"true"`
	Metrics *metrics.Metrics
	Logger  *slog.Logger
}

// NewOrderServiceRouter configures the order service routes under /api/v1/order-service.
func NewOrderServiceRouter(p OrderServiceParams) *gin.Engine {
	engine := newEngine(orderServiceName, p.Metrics, p.Logger, p.Health)

	orderHandler := handlers.NewOrderHandler(p.Facade)
	paymentHandler := handlers.NewPaymentHandler(p.Facade)

	api := engine.Group("/api/v1/order-service")

	order := api.Group("/order")
	order.POST("", orderHandler.Create)
	order.GET("", orderHandler.List)
	order.GET("/totalorders", orderHandler.Total)
	order.GET("/totalrevenue", orderHandler.Revenue)
	order.GET("/user/:userId", orderHandler.ByUser)
	order.GET("/:id", orderHandler.Get)
	order.PUT("/:id", orderHandler.UpdateStatus)
	order.DELETE("/:id", orderHandler.Delete)

	payment := api.Group("/payment")
	payment.POST("", paymentHandler.Record)
	payment.GET("/order/:orderId", paymentHandler.ByOrder)

	return engine
}

// AdminParams collects the dependencies of the admin router.
type AdminParams struct {
	fx.In

	Facade  handlers.AdminFacade
	Metrics *metrics.Metrics
	Logger  *slog.Logger
}

// NewAdminRouter configures the admin routes under /api/v1/admin-service/admin.
func NewAdminRouter(p AdminParams) *gin.Engine {
	engine := newEngine(adminServiceName, p.Metrics, p.Logger, nil)
	h := handlers.NewAdminHandler(p.Facade)

	admin := engine.Group("/api/v1/admin-service/admin")
	admin.GET("/dashboard", h.Dashboard)

	product := admin.Group("/product")
	product.GET("", h.Products)
	product.POST("", h.CreateProduct)
	product.GET("/totalproducts", h.TotalProducts)
	product.GET("/:id", h.Product)
	product.PUT("/:id", h.UpdateProduct)
	product.DELETE("/:id", h.DeleteProduct)
	product.PATCH("/:id/stock", h.UpdateProductStock)

	order := admin.Group("/order")
	order.GET("", h.Orders)
	order.GET("/totalorders", h.TotalOrders)
	order.GET("/totalrevenue", h.TotalRevenue)
	order.GET("/user/:userId", h.OrdersByUser)
	order.GET("/:id", h.Order)
	order.PUT("/:id", h.UpdateOrderStatus)

	users := admin.Group("/users")
	users.GET("", h.Users)
	users.GET("/totalusers", h.TotalUsers)
	users.GET("/:id", h.User)
	users.DELETE("/:id", h.DeleteUser)

	return engine
}

// newEngine installs the shared middleware chain and the operational routes.
func newEngine(service string, m *metrics.Metrics, logger *slog.Logger, health handlers.HealthChecker) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.Tracing(service))
	engine.Use(middleware.Metrics(m))
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	engine.GET("/health", handlers.Health(health))
	engine.GET("/metrics", gin.WrapH(m.Handler()))

	return engine
}
