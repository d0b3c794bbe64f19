package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/superwise-ai/TestGenie/dto"
	"github.com/superwise-ai/TestGenie/services"
)

// TestPlanController handles test plan endpoints
type TestPlanController struct {
	testPlanService *services.TestPlanService
}

// NewTestPlanController creates a new test plan controller
func NewTestPlanController() *TestPlanController {
	return &TestPlanController{
		testPlanService: services.NewTestPlanService(),
	}
}

// RegisterRoutes registers test plan routes under a project
func (tc *TestPlanController) RegisterRoutes(router *gin.RouterGroup) {
	plans := router.Group("/projects/:id/test-plans")
	{
		plans.GET("", tc.ListTestPlans)
		plans.POST("", tc.CreateTestPlan)
		plans.GET("/:plan_id", tc.GetTestPlan)
		plans.PUT("/:plan_id", tc.UpdateTestPlan)
		plans.DELETE("/:plan_id", tc.DeleteTestPlan)
	}
}

// ListTestPlans returns all test plans in the project
func (tc *TestPlanController) ListTestPlans(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	plans, err := tc.testPlanService.ListTestPlans(ctx.Param("id"), user.ID)
	if err != nil {
		abortForError(ctx, err, "Project not found")
		return
	}

	ctx.JSON(http.StatusOK, plans)
}

// GetTestPlan returns one test plan with its associated suites
func (tc *TestPlanController) GetTestPlan(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	plan, err := tc.testPlanService.GetTestPlan(ctx.Param("plan_id"), ctx.Param("id"), user.ID)
	if err != nil {
		abortForError(ctx, err, "Test plan not found")
		return
	}

	ctx.JSON(http.StatusOK, plan)
}

// CreateTestPlan creates a plan and its test suite association
func (tc *TestPlanController) CreateTestPlan(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	var req dto.CreateTestPlanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		abortValidation(ctx, err)
		return
	}

	plan, err := tc.testPlanService.CreateTestPlan(ctx.Param("id"), req, user)
	if err != nil {
		abortForError(ctx, err, "Project not found")
		return
	}

	ctx.JSON(http.StatusOK, plan)
}

// UpdateTestPlan applies a partial update to a plan
func (tc *TestPlanController) UpdateTestPlan(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	var req dto.UpdateTestPlanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		abortValidation(ctx, err)
		return
	}

	plan, err := tc.testPlanService.UpdateTestPlan(ctx.Param("plan_id"), ctx.Param("id"), user.ID, req)
	if err != nil {
		abortForError(ctx, err, "Test plan not found")
		return
	}

	ctx.JSON(http.StatusOK, plan)
}

// DeleteTestPlan removes a test plan
func (tc *TestPlanController) DeleteTestPlan(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	if err := tc.testPlanService.DeleteTestPlan(ctx.Param("plan_id"), ctx.Param("id"), user.ID); err != nil {
		abortForError(ctx, err, "Test plan not found")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Test plan deleted successfully"})
}
