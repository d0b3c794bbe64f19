package main

import (
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	v1 "github.com/superwise-ai/TestGenie/api/v1"
	"github.com/superwise-ai/TestGenie/auth"
	"github.com/superwise-ai/TestGenie/config"
	"github.com/superwise-ai/TestGenie/database"
	"github.com/superwise-ai/TestGenie/lib/superwise"
	"github.com/superwise-ai/TestGenie/services"
)

func main() {
	// Load .env configuration
	config.LoadEnv()

	// Connect to the database and run migrations
	database.Initialize()

	// Build the auth stack from the configured single-user credentials
	credentials, err := auth.NewStaticCredentialStore(
		config.TestUserID(),
		config.TestUserEmail(),
		config.TestUserFullName(),
		config.TestUserPassword(),
	)
	if err != nil {
		log.Fatalf("Failed to initialize credential store: %v", err)
	}

	tokens, err := auth.NewTokenService(config.SecretKey(), config.Algorithm(), config.AccessTokenTTL())
	if err != nil {
		log.Fatalf("Failed to initialize token service: %v", err)
	}

	authService := services.NewAuthService(credentials, tokens)
	aiService := services.NewAIService(superwise.NewClient(config.SuperwiseAPIURL(), config.SuperwiseAgentID()))

	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	// Initialize router
	router := gin.Default()

	// CORS configuration: only the configured frontend origin is allowed
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.FrontendURL()},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	// Register API routes
	v1.RegisterRoutes(router.Group("/api"), authService, aiService)

	// Get port from environment or use default
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Start server
	log.Printf("🚀 TestGenie API starting on port %s", port)
	log.Printf("🤖 Superwise agent: %s", config.SuperwiseAgentID())
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
