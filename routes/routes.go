// File: /routes/routes.go
package routes

import (
	"net/http"

	"autosales-api/config"
	"autosales-api/controllers"
	"autosales-api/middleware"
	"autosales-api/models"
	"autosales-api/repositories"
	"autosales-api/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func SetupCORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, emailService *services.EmailService, logger *zap.Logger) {
	// Repositories
	vehicleRepo := repositories.NewVehicleRepository(db)
	imageRepo := repositories.NewImageRepository(db)
	clientRepo := repositories.NewClientRepository(db)
	employeeRepo := repositories.NewEmployeeRepository(db)
	userRepo := repositories.NewUserRepository(db)
	saleRepo := repositories.NewSaleRepository(db)
	messageRepo := repositories.NewMessageRepository(db)
	tokenRepo := repositories.NewTokenRepository(db)

	// Services
	saleService := services.NewSaleService(saleRepo, logger)
	messageService := services.NewMessageService(messageRepo, employeeRepo, emailService, logger)

	// Controllers
	authController := controllers.NewAuthController(userRepo, tokenRepo, cfg.JWTSecret)
	carController := controllers.NewCarController(vehicleRepo)
	motorcycleController := controllers.NewMotorcycleController(vehicleRepo)
	imageController := controllers.NewImageController(imageRepo)
	clientController := controllers.NewClientController(clientRepo)
	employeeController := controllers.NewEmployeeController(employeeRepo)
	saleController := controllers.NewSaleController(saleService)
	messageController := controllers.NewMessageController(messageService, messageRepo)
	userController := controllers.NewUserController(userRepo)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// API version 1
	v1 := r.Group("/api/v1")

	// Auth routes (public)
	auth := v1.Group("/auth")
	{
		auth.POST("/login", middleware.RateLimit(30, 10), authController.Login)
	}

	// Public catalog and contact routes
	public := v1.Group("/")
	public.Use(middleware.RateLimit(120, 30))
	{
		public.GET("/cars", carController.ListCars)
		public.GET("/cars/:id", carController.GetCar)
		public.GET("/cars/:id/items", carController.ListItems)
		public.GET("/motorcycles", motorcycleController.ListMotorcycles)
		public.GET("/motorcycles/:id", motorcycleController.GetMotorcycle)
		public.GET("/vehicles/:id/images", imageController.ListImages)
		public.POST("/messages", messageController.CreateMessage)
	}

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(cfg.JWTSecret, tokenRepo))
	{
		protected.POST("/auth/logout", authController.Logout)
		protected.GET("/auth/me", authController.Me)

		// Car routes
		cars := protected.Group("/cars")
		{
			cars.POST("/", carController.CreateCar)
			cars.PUT("/:id", carController.UpdateCar)
			cars.DELETE("/:id", carController.DeleteCar)
			cars.POST("/:id/items", carController.AddItem)
			cars.DELETE("/:id/items/:name", carController.RemoveItem)
		}

		// Motorcycle routes
		motorcycles := protected.Group("/motorcycles")
		{
			motorcycles.POST("/", motorcycleController.CreateMotorcycle)
			motorcycles.PUT("/:id", motorcycleController.UpdateMotorcycle)
			motorcycles.DELETE("/:id", motorcycleController.DeleteMotorcycle)
		}

		// Vehicle image routes
		images := protected.Group("/")
		{
			images.POST("/vehicles/:id/images", imageController.RegisterImage)
			images.PUT("/images/:id/position", imageController.ReorderImage)
			images.PUT("/images/:id/primary", imageController.SetPrimaryImage)
			images.DELETE("/images/:id", imageController.DeleteImage)
		}

		// Client routes
		clients := protected.Group("/clients")
		{
			clients.GET("/", clientController.ListClients)
			clients.POST("/", clientController.CreateClient)
			clients.GET("/:id", clientController.GetClient)
			clients.PUT("/:id", clientController.UpdateClient)
			clients.DELETE("/:id", clientController.DeleteClient)
		}

		// Employee routes
		employees := protected.Group("/employees")
		{
			employees.GET("/", employeeController.ListEmployees)
			employees.POST("/", employeeController.CreateEmployee)
			employees.GET("/:id", employeeController.GetEmployee)
			employees.PUT("/:id", employeeController.UpdateEmployee)
			employees.DELETE("/:id", employeeController.DeleteEmployee)
		}

		// Sale routes
		sales := protected.Group("/sales")
		{
			sales.GET("/", saleController.ListSales)
			sales.POST("/", saleController.CreateSale)
			sales.GET("/:id", saleController.GetSale)
			sales.PUT("/:id", saleController.UpdateSale)
			sales.PATCH("/:id/status", saleController.UpdateSaleStatus)
			sales.DELETE("/:id", saleController.DeleteSale)
		}

		// Message handling routes
		messages := protected.Group("/messages")
		{
			messages.GET("/", messageController.ListMessages)
			messages.GET("/:id", messageController.GetMessage)
			messages.PUT("/:id/assign", messageController.AssignMessage)
			messages.PATCH("/:id/status", messageController.UpdateMessageStatus)
			messages.DELETE("/:id", messageController.DeleteMessage)
		}

		// Admin-only routes
		admin := protected.Group("/")
		admin.Use(middleware.RequireRole(models.RoleAdmin))
		{
			admin.POST("/auth/register", authController.Register)
			admin.GET("/users/:id", userController.GetUser)
			admin.PUT("/users/:id", userController.UpdateUser)
			admin.DELETE("/users/:id", userController.DeleteUser)
		}
	}
}
