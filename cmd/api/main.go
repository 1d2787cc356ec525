package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/apply-service/internal/api/middleware"
	"github.com/linskybing/apply-service/internal/api/routes"
	"github.com/linskybing/apply-service/internal/config"
	"github.com/linskybing/apply-service/internal/config/db"
	"github.com/linskybing/apply-service/internal/repository"
)

func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	// Initialize JWT signing key
	middleware.Init()

	// Initialize database connection and migrate the applications table
	db.Init()

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())

	routes.RegisterRoutes(router, repository.NewRepositories(db.DB))

	port := ":" + config.ServerPort
	log.Printf("Starting API server on %s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}
