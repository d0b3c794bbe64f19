package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/superwise-ai/TestGenie/dto"
	"github.com/superwise-ai/TestGenie/services"
)

// AIController proxies generation requests to the Superwise agent
type AIController struct {
	aiService *services.AIService
}

// NewAIController creates a new AI controller
func NewAIController(aiService *services.AIService) *AIController {
	return &AIController{aiService: aiService}
}

// RegisterRoutes registers AI proxy routes under a project
func (ac *AIController) RegisterRoutes(router *gin.RouterGroup) {
	projects := router.Group("/projects/:id")
	{
		projects.GET("/ai-test-plans", ac.GenerateTestPlans)
		projects.GET("/ai-test-cases", ac.GenerateTestCases)
		projects.POST("/ai-assistant", ac.Assistant)
	}
}

// GenerateTestPlans asks the agent for a test plan and relays the answer
func (ac *AIController) GenerateTestPlans(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	body, err := ac.aiService.GenerateTestPlans(ctx.Param("id"), user.ID)
	if err != nil {
		abortForError(ctx, err, "Project not found")
		return
	}

	ctx.JSON(http.StatusOK, body)
}

// GenerateTestCases asks the agent for test cases and relays the answer
func (ac *AIController) GenerateTestCases(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	body, err := ac.aiService.GenerateTestCases(ctx.Param("id"), user.ID)
	if err != nil {
		abortForError(ctx, err, "Project not found")
		return
	}

	ctx.JSON(http.StatusOK, body)
}

// Assistant forwards a free-form message to the agent and relays the answer
func (ac *AIController) Assistant(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	var req dto.AssistantRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		abortValidation(ctx, err)
		return
	}

	body, err := ac.aiService.Ask(ctx.Param("id"), user.ID, req.Message)
	if err != nil {
		abortForError(ctx, err, "Project not found")
		return
	}

	ctx.JSON(http.StatusOK, body)
}
