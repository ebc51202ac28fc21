package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"hospital-ward-management/internal/config"
	"hospital-ward-management/internal/database"
	"hospital-ward-management/internal/handler"
	"hospital-ward-management/internal/middleware"
	"hospital-ward-management/internal/models"
	"hospital-ward-management/internal/repository"
	"hospital-ward-management/internal/service"
	"hospital-ward-management/pkg/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	// 1. Load configuration
	cfg := config.LoadConfig()
	log.Println("Configuration loaded successfully")

	// 2. Initialize JWT utilities with config
	utils.InitJWT(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)

	// 3. Initialize database connection
	db := database.Connect(cfg)

	// 4. Initialize repositories
	userRepo := repository.NewUserRepo(db)
	auditRepo := repository.NewAuditRepo(db)
	wardRepo := repository.NewWardRepo(db)
	bedRepo := repository.NewBedRepo(db)
	patientRepo := repository.NewPatientRepo(db)
	admissionRepo := repository.NewAdmissionRepo(db)

	// 5. Initialize services
	authService := service.NewAuthService(userRepo, auditRepo)
	wardService := service.NewWardService(wardRepo, bedRepo, admissionRepo, auditRepo)
	admissionService := service.NewAdmissionService(admissionRepo, bedRepo, wardRepo, patientRepo, auditRepo)
	patientService := service.NewPatientService(patientRepo, auditRepo)

	// 6. Setup Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// 7. Setup Gin router
	r := gin.Default()

	// Apply CORS middleware
	r.Use(middleware.CORS(cfg))

	// 8. Register handlers
	authHandler := handler.NewAuthHandler(authService)
	wardHandler := handler.NewWardHandler(wardService)
	bedHandler := handler.NewBedHandler(wardService)
	admissionHandler := handler.NewAdmissionHandler(admissionService)
	patientHandler := handler.NewPatientHandler(patientService)

	// 9. Define routes
	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, gin.H{
			"status":  "healthy",
			"service": "hospital-ward-management",
		})
	})

	// Auth routes (public)
	auth := r.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.Refresh)
		auth.POST("/logout", authHandler.Logout)
	}

	// Ward routes (authenticated)
	wards := r.Group("/wards")
	wards.Use(middleware.AuthMiddleware())
	{
		wards.GET("", wardHandler.ListWards)   // Ward summaries with occupancy counts
		wards.GET("/:id", wardHandler.GetWard) // Ward detail with beds and occupants

		// Admin-only configuration routes
		wards.POST("", middleware.RequireRole(models.RoleAdmin), wardHandler.CreateWard)
		wards.POST("/:id/beds", middleware.RequireRole(models.RoleAdmin), wardHandler.CreateBed)
	}

	// Bed routes (authenticated) - housekeeping status transitions only
	beds := r.Group("/beds")
	beds.Use(middleware.AuthMiddleware())
	{
		beds.PATCH("/:id", bedHandler.UpdateBedStatus)
	}

	// Admission routes (authenticated)
	admissions := r.Group("/admissions")
	admissions.Use(middleware.AuthMiddleware())
	{
		admissions.POST("", admissionHandler.Admit)
		admissions.GET("/:id", admissionHandler.GetAdmission)
		admissions.POST("/:id/discharge", admissionHandler.Discharge)
	}

	// Patient routes (authenticated)
	patients := r.Group("/patients")
	patients.Use(middleware.AuthMiddleware())
	{
		patients.GET("", patientHandler.ListPatients)
		patients.POST("", patientHandler.CreatePatient)
		patients.GET("/:id", patientHandler.GetPatient)
		patients.GET("/:id/admissions", admissionHandler.ListPatientAdmissions)
	}

	// 10. Setup graceful shutdown
	go func() {
		log.Printf("Server starting on port %s", cfg.Server.Port)
		if err := r.Run(":" + cfg.Server.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")
	log.Println("Server exited")
}
