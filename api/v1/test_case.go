package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/superwise-ai/TestGenie/dto"
	"github.com/superwise-ai/TestGenie/services"
)

// TestCaseController handles test case endpoints
type TestCaseController struct {
	testCaseService *services.TestCaseService
}

// NewTestCaseController creates a new test case controller
func NewTestCaseController() *TestCaseController {
	return &TestCaseController{
		testCaseService: services.NewTestCaseService(),
	}
}

// RegisterRoutes registers test case routes under a project
func (tc *TestCaseController) RegisterRoutes(router *gin.RouterGroup) {
	testCases := router.Group("/projects/:id/test-cases")
	{
		testCases.GET("", tc.ListTestCases)
		testCases.POST("", tc.CreateTestCase)
		testCases.GET("/:case_id", tc.GetTestCase)
		testCases.PUT("/:case_id", tc.UpdateTestCase)
		testCases.DELETE("/:case_id", tc.DeleteTestCase)
	}
}

// ListTestCases returns all test cases in the project
func (tc *TestCaseController) ListTestCases(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	testCases, err := tc.testCaseService.ListTestCases(ctx.Param("id"), user.ID)
	if err != nil {
		abortForError(ctx, err, "Project not found")
		return
	}

	ctx.JSON(http.StatusOK, testCases)
}

// GetTestCase returns one test case with its ordered steps
func (tc *TestCaseController) GetTestCase(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	testCase, err := tc.testCaseService.GetTestCase(ctx.Param("case_id"), ctx.Param("id"), user.ID)
	if err != nil {
		abortForError(ctx, err, "Test case not found")
		return
	}

	ctx.JSON(http.StatusOK, testCase)
}

// CreateTestCase creates a test case and its steps in one unit
func (tc *TestCaseController) CreateTestCase(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	var req dto.CreateTestCaseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		abortValidation(ctx, err)
		return
	}

	testCase, err := tc.testCaseService.CreateTestCase(ctx.Param("id"), req, user)
	if err != nil {
		abortForError(ctx, err, "Project not found")
		return
	}

	ctx.JSON(http.StatusOK, testCase)
}

// UpdateTestCase applies a partial update; a steps field replaces all steps
func (tc *TestCaseController) UpdateTestCase(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	var req dto.UpdateTestCaseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		abortValidation(ctx, err)
		return
	}

	testCase, err := tc.testCaseService.UpdateTestCase(ctx.Param("case_id"), ctx.Param("id"), user.ID, req)
	if err != nil {
		abortForError(ctx, err, "Test case not found")
		return
	}

	ctx.JSON(http.StatusOK, testCase)
}

// DeleteTestCase removes a test case and its steps
func (tc *TestCaseController) DeleteTestCase(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	if err := tc.testCaseService.DeleteTestCase(ctx.Param("case_id"), ctx.Param("id"), user.ID); err != nil {
		abortForError(ctx, err, "Test case not found")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Test case deleted successfully"})
}
