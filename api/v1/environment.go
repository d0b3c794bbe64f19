package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/superwise-ai/TestGenie/dto"
	"github.com/superwise-ai/TestGenie/services"
)

// EnvironmentController handles environment endpoints
type EnvironmentController struct {
	environmentService *services.EnvironmentService
}

// NewEnvironmentController creates a new environment controller
func NewEnvironmentController() *EnvironmentController {
	return &EnvironmentController{
		environmentService: services.NewEnvironmentService(),
	}
}

// RegisterRoutes registers environment routes under a project
func (ec *EnvironmentController) RegisterRoutes(router *gin.RouterGroup) {
	environments := router.Group("/projects/:id/environments")
	{
		environments.GET("", ec.ListEnvironments)
		environments.POST("", ec.CreateEnvironment)
		environments.GET("/:environment_id", ec.GetEnvironment)
		environments.PUT("/:environment_id", ec.UpdateEnvironment)
		environments.DELETE("/:environment_id", ec.DeleteEnvironment)
	}
}

// ListEnvironments returns all environments in the project
func (ec *EnvironmentController) ListEnvironments(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	environments, err := ec.environmentService.ListEnvironments(ctx.Param("id"), user.ID)
	if err != nil {
		abortForError(ctx, err, "Project not found")
		return
	}

	ctx.JSON(http.StatusOK, environments)
}

// GetEnvironment returns one environment
func (ec *EnvironmentController) GetEnvironment(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	environment, err := ec.environmentService.GetEnvironment(ctx.Param("environment_id"), ctx.Param("id"), user.ID)
	if err != nil {
		abortForError(ctx, err, "Environment not found")
		return
	}

	ctx.JSON(http.StatusOK, environment)
}

// CreateEnvironment creates an environment in the project
func (ec *EnvironmentController) CreateEnvironment(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	var req dto.CreateEnvironmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		abortValidation(ctx, err)
		return
	}

	environment, err := ec.environmentService.CreateEnvironment(ctx.Param("id"), req, user)
	if err != nil {
		abortForError(ctx, err, "Project not found")
		return
	}

	ctx.JSON(http.StatusOK, environment)
}

// UpdateEnvironment applies a partial update to an environment
func (ec *EnvironmentController) UpdateEnvironment(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	var req dto.UpdateEnvironmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		abortValidation(ctx, err)
		return
	}

	environment, err := ec.environmentService.UpdateEnvironment(ctx.Param("environment_id"), ctx.Param("id"), user.ID, req)
	if err != nil {
		abortForError(ctx, err, "Environment not found")
		return
	}

	ctx.JSON(http.StatusOK, environment)
}

// DeleteEnvironment removes an environment
func (ec *EnvironmentController) DeleteEnvironment(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	if err := ec.environmentService.DeleteEnvironment(ctx.Param("environment_id"), ctx.Param("id"), user.ID); err != nil {
		abortForError(ctx, err, "Environment not found")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Environment deleted successfully"})
}
