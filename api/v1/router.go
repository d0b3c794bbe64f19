package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/superwise-ai/TestGenie/middleware"
	"github.com/superwise-ai/TestGenie/services"
)

// RegisterRoutes registers all API routes. The health and login endpoints
// are open; everything else sits behind the bearer-token middleware.
func RegisterRoutes(router *gin.RouterGroup, authService *services.AuthService, aiService *services.AIService) {
	// Health check endpoint
	router.GET("/health", HealthCheck)

	// Auth endpoints
	authController := NewAuthController(authService)
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/login", authController.Login)
	}

	// Everything below requires a valid bearer token
	authed := router.Group("")
	authed.Use(middleware.AuthMiddleware(authService))

	projectGroup := authed.Group("/projects")
	{
		projectGroup.GET("", ListProjects)
		projectGroup.POST("", CreateProject)
		projectGroup.GET("/:id", GetProject)
		projectGroup.PUT("/:id", UpdateProject)
		projectGroup.DELETE("/:id", DeleteProject)
	}

	NewTestCaseController().RegisterRoutes(authed)
	NewElementController().RegisterRoutes(authed)
	NewTestSuiteController().RegisterRoutes(authed)
	NewTestPlanController().RegisterRoutes(authed)
	NewTestDataController().RegisterRoutes(authed)
	NewEnvironmentController().RegisterRoutes(authed)
	NewAIController(aiService).RegisterRoutes(authed)
}
