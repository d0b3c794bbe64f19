package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/superwise-ai/TestGenie/dto"
	"github.com/superwise-ai/TestGenie/services"
)

// TestSuiteController handles test suite endpoints
type TestSuiteController struct {
	testSuiteService *services.TestSuiteService
}

// NewTestSuiteController creates a new test suite controller
func NewTestSuiteController() *TestSuiteController {
	return &TestSuiteController{
		testSuiteService: services.NewTestSuiteService(),
	}
}

// RegisterRoutes registers test suite routes under a project
func (tc *TestSuiteController) RegisterRoutes(router *gin.RouterGroup) {
	suites := router.Group("/projects/:id/test-suites")
	{
		suites.GET("", tc.ListTestSuites)
		suites.POST("", tc.CreateTestSuite)
		suites.GET("/:suite_id", tc.GetTestSuite)
		suites.PUT("/:suite_id", tc.UpdateTestSuite)
		suites.DELETE("/:suite_id", tc.DeleteTestSuite)
	}
}

// ListTestSuites returns all test suites in the project
func (tc *TestSuiteController) ListTestSuites(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	suites, err := tc.testSuiteService.ListTestSuites(ctx.Param("id"), user.ID)
	if err != nil {
		abortForError(ctx, err, "Project not found")
		return
	}

	ctx.JSON(http.StatusOK, suites)
}

// GetTestSuite returns one test suite with its associated cases
func (tc *TestSuiteController) GetTestSuite(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	suite, err := tc.testSuiteService.GetTestSuite(ctx.Param("suite_id"), ctx.Param("id"), user.ID)
	if err != nil {
		abortForError(ctx, err, "Test suite not found")
		return
	}

	ctx.JSON(http.StatusOK, suite)
}

// CreateTestSuite creates a suite and its test case association
func (tc *TestSuiteController) CreateTestSuite(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	var req dto.CreateTestSuiteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		abortValidation(ctx, err)
		return
	}

	suite, err := tc.testSuiteService.CreateTestSuite(ctx.Param("id"), req, user)
	if err != nil {
		abortForError(ctx, err, "Project not found")
		return
	}

	ctx.JSON(http.StatusOK, suite)
}

// UpdateTestSuite applies a partial update to a suite
func (tc *TestSuiteController) UpdateTestSuite(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	var req dto.UpdateTestSuiteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		abortValidation(ctx, err)
		return
	}

	suite, err := tc.testSuiteService.UpdateTestSuite(ctx.Param("suite_id"), ctx.Param("id"), user.ID, req)
	if err != nil {
		abortForError(ctx, err, "Test suite not found")
		return
	}

	ctx.JSON(http.StatusOK, suite)
}

// DeleteTestSuite removes a test suite
func (tc *TestSuiteController) DeleteTestSuite(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	if err := tc.testSuiteService.DeleteTestSuite(ctx.Param("suite_id"), ctx.Param("id"), user.ID); err != nil {
		abortForError(ctx, err, "Test suite not found")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Test suite deleted successfully"})
}
