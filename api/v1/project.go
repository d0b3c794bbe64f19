package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/superwise-ai/TestGenie/dto"
	"github.com/superwise-ai/TestGenie/services"
)

var projectService = services.NewProjectService()

// ListProjects returns every project owned by the authenticated user
func ListProjects(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	projects, err := projectService.ListProjects(user.ID)
	if err != nil {
		abortForError(c, err, "Project not found")
		return
	}

	c.JSON(http.StatusOK, projects)
}

// GetProject returns a single project. Absence and ownership mismatch look
// the same: 404.
func GetProject(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	project, err := projectService.GetProject(c.Param("id"), user.ID)
	if err != nil {
		abortForError(c, err, "Project not found")
		return
	}

	c.JSON(http.StatusOK, project)
}

// CreateProject creates a project owned by the authenticated user
func CreateProject(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortValidation(c, err)
		return
	}

	project, err := projectService.CreateProject(req, user)
	if err != nil {
		abortForError(c, err, "Project not found")
		return
	}

	c.JSON(http.StatusOK, project)
}

// UpdateProject applies a partial update to a project
func UpdateProject(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortValidation(c, err)
		return
	}

	project, err := projectService.UpdateProject(c.Param("id"), user.ID, req)
	if err != nil {
		abortForError(c, err, "Project not found")
		return
	}

	c.JSON(http.StatusOK, project)
}

// DeleteProject removes a project and cascades to all its children
func DeleteProject(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	if err := projectService.DeleteProject(c.Param("id"), user.ID); err != nil {
		abortForError(c, err, "Project not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}
