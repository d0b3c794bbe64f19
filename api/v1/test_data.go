package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/superwise-ai/TestGenie/dto"
	"github.com/superwise-ai/TestGenie/services"
)

// TestDataController handles test data endpoints
type TestDataController struct {
	testDataService *services.TestDataService
}

// NewTestDataController creates a new test data controller
func NewTestDataController() *TestDataController {
	return &TestDataController{
		testDataService: services.NewTestDataService(),
	}
}

// RegisterRoutes registers test data routes under a project
func (tc *TestDataController) RegisterRoutes(router *gin.RouterGroup) {
	data := router.Group("/projects/:id/test-data")
	{
		data.GET("", tc.ListTestData)
		data.POST("", tc.CreateTestData)
		data.GET("/:data_id", tc.GetTestData)
		data.PUT("/:data_id", tc.UpdateTestData)
		data.DELETE("/:data_id", tc.DeleteTestData)
	}
}

// ListTestData returns all test data sets in the project
func (tc *TestDataController) ListTestData(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	data, err := tc.testDataService.ListTestData(ctx.Param("id"), user.ID)
	if err != nil {
		abortForError(ctx, err, "Project not found")
		return
	}

	ctx.JSON(http.StatusOK, data)
}

// GetTestData returns one test data set
func (tc *TestDataController) GetTestData(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	data, err := tc.testDataService.GetTestData(ctx.Param("data_id"), ctx.Param("id"), user.ID)
	if err != nil {
		abortForError(ctx, err, "Test data not found")
		return
	}

	ctx.JSON(http.StatusOK, data)
}

// CreateTestData creates a test data set in the project
func (tc *TestDataController) CreateTestData(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	var req dto.CreateTestDataRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		abortValidation(ctx, err)
		return
	}

	data, err := tc.testDataService.CreateTestData(ctx.Param("id"), req, user)
	if err != nil {
		abortForError(ctx, err, "Project not found")
		return
	}

	ctx.JSON(http.StatusOK, data)
}

// UpdateTestData applies a partial update to a test data set
func (tc *TestDataController) UpdateTestData(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	var req dto.UpdateTestDataRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		abortValidation(ctx, err)
		return
	}

	data, err := tc.testDataService.UpdateTestData(ctx.Param("data_id"), ctx.Param("id"), user.ID, req)
	if err != nil {
		abortForError(ctx, err, "Test data not found")
		return
	}

	ctx.JSON(http.StatusOK, data)
}

// DeleteTestData removes a test data set
func (tc *TestDataController) DeleteTestData(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	if err := tc.testDataService.DeleteTestData(ctx.Param("data_id"), ctx.Param("id"), user.ID); err != nil {
		abortForError(ctx, err, "Test data not found")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Test data deleted successfully"})
}
