package v1

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProjectAppliesDefaults(t *testing.T) {
	engine := setupAPI(t, "http://agent.invalid")
	token := login(t, engine)

	w := doRequest(t, engine, http.MethodPost, "/api/projects", token, gin.H{
		"name":             "Checkout",
		"description":      "Checkout regression",
		"application_name": "shop-web",
		"version":          "2.4.0",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var project map[string]interface{}
	decodeBody(t, w, &project)
	assert.NotEmpty(t, project["id"])
	assert.Equal(t, "Checkout", project["name"])
	assert.Equal(t, "healthy", project["status"])
	assert.Equal(t, "#F54927", project["color"])
	assert.Equal(t, "1", project["owner_id"])
	assert.Nil(t, project["last_run"])
}

func TestCreateProjectMissingName(t *testing.T) {
	engine := setupAPI(t, "http://agent.invalid")
	token := login(t, engine)

	w := doRequest(t, engine, http.MethodPost, "/api/projects", token, gin.H{"description": "no name"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestListProjects(t *testing.T) {
	engine := setupAPI(t, "http://agent.invalid")
	token := login(t, engine)

	w := doRequest(t, engine, http.MethodGet, "/api/projects", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var projects []map[string]interface{}
	decodeBody(t, w, &projects)
	assert.Empty(t, projects)

	createProject(t, engine, token, "Checkout")
	createProject(t, engine, token, "Billing")

	w = doRequest(t, engine, http.MethodGet, "/api/projects", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &projects)
	assert.Len(t, projects, 2)
}

func TestGetProjectNotFound(t *testing.T) {
	engine := setupAPI(t, "http://agent.invalid")
	token := login(t, engine)

	w := doRequest(t, engine, http.MethodGet, "/api/projects/"+uuid.NewString(), token, nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	var resp map[string]interface{}
	decodeBody(t, w, &resp)
	assert.Equal(t, "Project not found", resp["detail"])
}

func TestUpdateProjectPartial(t *testing.T) {
	engine := setupAPI(t, "http://agent.invalid")
	token := login(t, engine)

	w := doRequest(t, engine, http.MethodPost, "/api/projects", token, gin.H{
		"name":        "Checkout",
		"description": "original description",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var created map[string]interface{}
	decodeBody(t, w, &created)
	id := created["id"].(string)

	w = doRequest(t, engine, http.MethodPut, "/api/projects/"+id, token, gin.H{"name": "Checkout v2"})
	require.Equal(t, http.StatusOK, w.Code)

	var updated map[string]interface{}
	decodeBody(t, w, &updated)
	assert.Equal(t, "Checkout v2", updated["name"])
	assert.Equal(t, "original description", updated["description"])
}

func TestUpdateProjectNotFound(t *testing.T) {
	engine := setupAPI(t, "http://agent.invalid")
	token := login(t, engine)

	w := doRequest(t, engine, http.MethodPut, "/api/projects/"+uuid.NewString(), token, gin.H{"name": "renamed"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteProject(t *testing.T) {
	engine := setupAPI(t, "http://agent.invalid")
	token := login(t, engine)

	id := createProject(t, engine, token, "Checkout")

	w := doRequest(t, engine, http.MethodDelete, "/api/projects/"+id, token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	decodeBody(t, w, &resp)
	assert.Equal(t, "Project deleted successfully", resp["message"])

	w = doRequest(t, engine, http.MethodGet, "/api/projects/"+id, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(t, engine, http.MethodDelete, "/api/projects/"+id, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
