package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/superwise-ai/TestGenie/dto"
	"github.com/superwise-ai/TestGenie/services"
)

// ElementController handles UI element endpoints
type ElementController struct {
	elementService *services.ElementService
}

// NewElementController creates a new element controller
func NewElementController() *ElementController {
	return &ElementController{
		elementService: services.NewElementService(),
	}
}

// RegisterRoutes registers element routes under a project
func (ec *ElementController) RegisterRoutes(router *gin.RouterGroup) {
	elements := router.Group("/projects/:id/elements")
	{
		elements.GET("", ec.ListElements)
		elements.POST("", ec.CreateElement)
		elements.GET("/:element_id", ec.GetElement)
		elements.PUT("/:element_id", ec.UpdateElement)
		elements.DELETE("/:element_id", ec.DeleteElement)
	}
}

// ListElements returns all elements in the project
func (ec *ElementController) ListElements(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	elements, err := ec.elementService.ListElements(ctx.Param("id"), user.ID)
	if err != nil {
		abortForError(ctx, err, "Project not found")
		return
	}

	ctx.JSON(http.StatusOK, elements)
}

// GetElement returns one element
func (ec *ElementController) GetElement(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	element, err := ec.elementService.GetElement(ctx.Param("element_id"), ctx.Param("id"), user.ID)
	if err != nil {
		abortForError(ctx, err, "Element not found")
		return
	}

	ctx.JSON(http.StatusOK, element)
}

// CreateElement creates an element in the project
func (ec *ElementController) CreateElement(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	var req dto.CreateElementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		abortValidation(ctx, err)
		return
	}

	element, err := ec.elementService.CreateElement(ctx.Param("id"), req, user)
	if err != nil {
		abortForError(ctx, err, "Project not found")
		return
	}

	ctx.JSON(http.StatusOK, element)
}

// UpdateElement applies a partial update to an element
func (ec *ElementController) UpdateElement(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	var req dto.UpdateElementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		abortValidation(ctx, err)
		return
	}

	element, err := ec.elementService.UpdateElement(ctx.Param("element_id"), ctx.Param("id"), user.ID, req)
	if err != nil {
		abortForError(ctx, err, "Element not found")
		return
	}

	ctx.JSON(http.StatusOK, element)
}

// DeleteElement removes an element
func (ec *ElementController) DeleteElement(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	if err := ec.elementService.DeleteElement(ctx.Param("element_id"), ctx.Param("id"), user.ID); err != nil {
		abortForError(ctx, err, "Element not found")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Element deleted successfully"})
}
