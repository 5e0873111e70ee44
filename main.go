package main

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pitlane-garage/pitlane-api/config"
	"github.com/pitlane-garage/pitlane-api/controllers"
	"github.com/pitlane-garage/pitlane-api/logger"
	"github.com/pitlane-garage/pitlane-api/middleware"
	"github.com/pitlane-garage/pitlane-api/models"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	config.SetConfig(cfg)

	logger.Init(cfg.GoEnv, cfg.LogLevel)
	defer logger.L().Sync()

	// Connect to database
	if err := config.ConnectDatabase(cfg.DatabaseURL); err != nil {
		logger.L().Fatal("failed to connect to database", zap.Error(err))
	}
	logger.L().Info("database connection established")

	// Auto-migrate database models
	db := config.GetDB()
	if err := db.AutoMigrate(models.All()...); err != nil {
		logger.L().Fatal("failed to migrate database", zap.Error(err))
	}
	logger.L().Info("database migration completed")

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := SetupRouter(cfg)

	// Start server
	logger.L().Info("server listening", zap.String("port", cfg.Port))
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.L().Fatal("failed to start server", zap.Error(err))
	}
}

// SetupRouter builds the gin engine with middleware and all routes.
func SetupRouter(cfg *config.Config) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst).Handler())

	corsConfig := cors.DefaultConfig()
	if len(cfg.CORSAllowOrigins) == 1 && cfg.CORSAllowOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORSAllowOrigins
	}
	router.Use(cors.New(corsConfig))

	// Health check endpoint
	router.GET("/health", healthCheck)

	customers := router.Group("/customers")
	{
		customers.GET("", controllers.ListCustomers)
		customers.GET("/:id", controllers.GetCustomer)
		customers.POST("", controllers.CreateCustomer)
		customers.PUT("/:id", controllers.UpdateCustomer)
		customers.DELETE("/:id", controllers.DeleteCustomer)
	}

	vehicles := router.Group("/vehicles")
	{
		vehicles.GET("", controllers.ListVehicles)
		vehicles.GET("/:id", controllers.GetVehicle)
		vehicles.GET("/customer/:id", controllers.ListVehiclesByCustomer)
		vehicles.POST("", controllers.CreateVehicle)
		vehicles.PUT("/:id", controllers.UpdateVehicle)
		vehicles.DELETE("/:id", controllers.DeleteVehicle)
	}

	mechanics := router.Group("/mechanics")
	{
		mechanics.GET("", controllers.ListMechanics)
		mechanics.GET("/available", controllers.ListAvailableMechanics)
		mechanics.GET("/:id", controllers.GetMechanic)
		mechanics.POST("", controllers.CreateMechanic)
		mechanics.PUT("/:id", controllers.UpdateMechanic)
		mechanics.DELETE("/:id", controllers.DeleteMechanic)
	}

	parts := router.Group("/parts")
	{
		parts.GET("", controllers.ListParts)
		parts.GET("/search", controllers.SearchParts)
		parts.GET("/:id", controllers.GetPart)
		parts.POST("", controllers.CreatePart)
		parts.PUT("/:id", controllers.UpdatePart)
		parts.DELETE("/:id", controllers.DeletePart)
	}

	services := router.Group("/services")
	{
		services.GET("", controllers.ListServices)
		services.GET("/:id", controllers.GetService)
		services.POST("", controllers.CreateService)
		services.PUT("/:id", controllers.UpdateService)
		services.DELETE("/:id", controllers.DeleteService)
	}

	orders := router.Group("/orders")
	{
		orders.GET("", controllers.ListOrders)
		orders.GET("/:id", controllers.GetOrder)
		orders.GET("/:id/statuses", controllers.ListOrderStatusHistory)
		orders.POST("", controllers.CreateOrder)
		orders.POST("/:id/add_service/:service_id", controllers.AddServiceToOrder)
		orders.POST("/:id/add_part/:part_id", controllers.AddPartToOrder)
		orders.PUT("/:id", controllers.UpdateOrder)
		orders.DELETE("/:id", controllers.DeleteOrder)
	}

	orderStatuses := router.Group("/orderstatuses")
	{
		orderStatuses.GET("", controllers.ListOrderStatuses)
		orderStatuses.GET("/:id", controllers.GetOrderStatus)
		orderStatuses.POST("", controllers.CreateOrderStatus)
		orderStatuses.PUT("/:id", controllers.UpdateOrderStatus)
		orderStatuses.DELETE("/:id", controllers.DeleteOrderStatus)
	}

	orderServices := router.Group("/orderservices")
	{
		orderServices.GET("", controllers.ListOrderServices)
		orderServices.GET("/:id", controllers.GetOrderService)
		orderServices.POST("", controllers.CreateOrderService)
		orderServices.PUT("/:id", controllers.UpdateOrderService)
		orderServices.DELETE("/:id", controllers.DeleteOrderService)
	}

	orderParts := router.Group("/orderparts")
	{
		orderParts.GET("", controllers.ListOrderParts)
		orderParts.GET("/:id", controllers.GetOrderPart)
		orderParts.POST("", controllers.CreateOrderPart)
		orderParts.PUT("/:id", controllers.UpdateOrderPart)
		orderParts.DELETE("/:id", controllers.DeleteOrderPart)
	}

	invoices := router.Group("/invoices")
	{
		invoices.GET("", controllers.ListInvoices)
		invoices.GET("/:id", controllers.GetInvoice)
		invoices.GET("/order/:id", controllers.GetInvoiceByOrder)
		invoices.POST("", controllers.CreateInvoice)
		invoices.PUT("/:id", controllers.UpdateInvoice)
		invoices.PUT("/:id/mark_paid", controllers.MarkInvoicePaid)
		invoices.DELETE("/:id", controllers.DeleteInvoice)
	}

	payments := router.Group("/payments")
	{
		payments.GET("", controllers.ListPayments)
		payments.GET("/:id", controllers.GetPayment)
		payments.POST("", controllers.CreatePayment)
		payments.PUT("/:id", controllers.UpdatePayment)
		payments.DELETE("/:id", controllers.DeletePayment)
	}

	notifications := router.Group("/notifications")
	{
		notifications.GET("", controllers.ListNotifications)
		notifications.GET("/:id", controllers.GetNotification)
		notifications.POST("", controllers.CreateNotification)
		notifications.PUT("/:id", controllers.UpdateNotification)
		notifications.DELETE("/:id", controllers.DeleteNotification)
	}

	user := router.Group("/user")
	{
		user.GET("", controllers.ListUsers)
		user.GET("/:id", controllers.GetUser)
		user.POST("", controllers.CreateUser)
	}

	return router
}

// healthCheck handles the health check endpoint
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Pitlane API is running",
	})
}
