package main

import (
	"fmt"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"jobportal/internal/auth"
	"jobportal/internal/config"
	"jobportal/internal/database"
	"jobportal/internal/handlers"
	"jobportal/internal/middleware"
	"jobportal/internal/services"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, relying on environment")
	}
	cfg := config.Get()

	if cfg.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// 2. Database Connection
	db := database.Connect(cfg)
	defer db.Disconnect()

	// 3. Initialize Core Services
	tokenService := auth.NewTokenService(cfg.JWTSecret)
	jobService := services.NewJobService(db)
	applicationService := services.NewApplicationService(db)

	// 4. Initialize Handlers
	authHandler := handlers.NewAuthHandler(tokenService, cfg.Production)
	jobHandler := handlers.NewJobHandler(jobService)
	applicationHandler := handlers.NewApplicationHandler(applicationService)

	// 5. Setup Router & CORS
	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.AllowedOrigins
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// Guard for the recruiter/candidate routes. AUTH_DISABLED runs the
	// same route table with the check switched off.
	guard := middleware.VerifyToken(tokenService)
	if cfg.AuthDisabled {
		log.Warn("AUTH_DISABLED is set, token guard is off")
		guard = middleware.NoGuard()
	}

	// 6. Define Routes
	r.GET("/health", handlers.HealthCheck(db))

	r.POST("/jwt", authHandler.IssueToken)
	r.POST("/logOut", authHandler.Logout)

	r.GET("/jobs", jobHandler.ListJobs)
	r.GET("/jobs/available", jobHandler.ListAvailableJobs)
	r.POST("/jobs", guard, jobHandler.CreateJob)
	r.GET("/jobs/details/:id", jobHandler.GetJob)
	r.GET("/jobs/user/:email", guard, jobHandler.ListJobsByOwner)
	r.DELETE("/jobs/:id", jobHandler.DeleteJob)
	r.PUT("/jobs/:id", jobHandler.UpdateJob)
	r.PATCH("/jobs/increase/:id", jobHandler.IncreaseApplicants)

	r.GET("/application", guard, applicationHandler.ListByCandidate)
	r.GET("/application/jobs/:id", applicationHandler.ListForJob)
	r.POST("/application", applicationHandler.Submit)
	r.PATCH("/application/:id", applicationHandler.UpdateStatus)
	r.DELETE("/application/:id", applicationHandler.DeleteApplication)

	addr := fmt.Sprintf(":%d", cfg.Port)
	log.Info("Server starting on port ", cfg.Port)
	if err := r.Run(addr); err != nil {
		log.Fatal("Server failed to start: ", err)
	}
}
