package v1

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTestCaseWithSteps(t *testing.T) {
	engine := setupAPI(t, "http://agent.invalid")
	token := login(t, engine)
	projectID := createProject(t, engine, token, "Checkout")

	w := doRequest(t, engine, http.MethodPost, "/api/projects/"+projectID+"/test-cases", token, gin.H{
		"name":        "Login flow",
		"description": "Happy path login",
		"steps": []gin.H{
			{"step_number": 1, "action": "navigate", "value": "/login"},
			{"step_number": 2, "action": "type", "element": "email", "value": testEmail},
			{"step_number": 3, "action": "click", "element": "submit"},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var testCase map[string]interface{}
	decodeBody(t, w, &testCase)
	assert.NotEmpty(t, testCase["id"])
	assert.Equal(t, "draft", testCase["status"])
	assert.Equal(t, "medium", testCase["priority"])
	assert.Equal(t, []interface{}{"chrome"}, testCase["browsers"])
	assert.Equal(t, "Admin", testCase["created_by"])
	assert.Equal(t, projectID, testCase["project_id"])

	steps, ok := testCase["steps"].([]interface{})
	require.True(t, ok)
	require.Len(t, steps, 3)
	first := steps[0].(map[string]interface{})
	assert.Equal(t, float64(1), first["step_number"])
	assert.Equal(t, "navigate", first["action"])
}

func TestCreateTestCaseRejectsBadEnums(t *testing.T) {
	engine := setupAPI(t, "http://agent.invalid")
	token := login(t, engine)
	projectID := createProject(t, engine, token, "Checkout")

	w := doRequest(t, engine, http.MethodPost, "/api/projects/"+projectID+"/test-cases", token, gin.H{
		"name":   "Bad status",
		"status": "finished",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = doRequest(t, engine, http.MethodPost, "/api/projects/"+projectID+"/test-cases", token, gin.H{
		"name":     "Bad priority",
		"priority": "urgent",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestCreateTestCaseInMissingProject(t *testing.T) {
	engine := setupAPI(t, "http://agent.invalid")
	token := login(t, engine)

	w := doRequest(t, engine, http.MethodPost, "/api/projects/"+uuid.NewString()+"/test-cases", token, gin.H{
		"name": "Orphan",
	})
	require.Equal(t, http.StatusNotFound, w.Code)

	var resp map[string]interface{}
	decodeBody(t, w, &resp)
	assert.Equal(t, "Project not found", resp["detail"])
}

func TestUpdateTestCaseReplacesSteps(t *testing.T) {
	engine := setupAPI(t, "http://agent.invalid")
	token := login(t, engine)
	projectID := createProject(t, engine, token, "Checkout")

	w := doRequest(t, engine, http.MethodPost, "/api/projects/"+projectID+"/test-cases", token, gin.H{
		"name": "Login flow",
		"steps": []gin.H{
			{"step_number": 1, "action": "navigate"},
			{"step_number": 2, "action": "click"},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)
	var created map[string]interface{}
	decodeBody(t, w, &created)
	caseID := created["id"].(string)

	w = doRequest(t, engine, http.MethodPut, "/api/projects/"+projectID+"/test-cases/"+caseID, token, gin.H{
		"status": "ready",
		"steps": []gin.H{
			{"step_number": 1, "action": "navigate", "value": "/signin"},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated map[string]interface{}
	decodeBody(t, w, &updated)
	assert.Equal(t, "ready", updated["status"])
	steps := updated["steps"].([]interface{})
	require.Len(t, steps, 1)
	assert.Equal(t, "/signin", steps[0].(map[string]interface{})["value"])
}

func TestUpdateTestCaseWithoutStepsKeepsThem(t *testing.T) {
	engine := setupAPI(t, "http://agent.invalid")
	token := login(t, engine)
	projectID := createProject(t, engine, token, "Checkout")

	w := doRequest(t, engine, http.MethodPost, "/api/projects/"+projectID+"/test-cases", token, gin.H{
		"name": "Login flow",
		"steps": []gin.H{
			{"step_number": 1, "action": "navigate"},
			{"step_number": 2, "action": "click"},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)
	var created map[string]interface{}
	decodeBody(t, w, &created)
	caseID := created["id"].(string)

	w = doRequest(t, engine, http.MethodPut, "/api/projects/"+projectID+"/test-cases/"+caseID, token, gin.H{
		"name": "Login flow v2",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated map[string]interface{}
	decodeBody(t, w, &updated)
	assert.Equal(t, "Login flow v2", updated["name"])
	assert.Len(t, updated["steps"], 2)
}

func TestDeleteTestCase(t *testing.T) {
	engine := setupAPI(t, "http://agent.invalid")
	token := login(t, engine)
	projectID := createProject(t, engine, token, "Checkout")

	w := doRequest(t, engine, http.MethodPost, "/api/projects/"+projectID+"/test-cases", token, gin.H{"name": "Login flow"})
	require.Equal(t, http.StatusOK, w.Code)
	var created map[string]interface{}
	decodeBody(t, w, &created)
	caseID := created["id"].(string)

	w = doRequest(t, engine, http.MethodDelete, "/api/projects/"+projectID+"/test-cases/"+caseID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, engine, http.MethodGet, "/api/projects/"+projectID+"/test-cases/"+caseID, token, nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	var resp map[string]interface{}
	decodeBody(t, w, &resp)
	assert.Equal(t, "Test case not found", resp["detail"])
}

func TestTestCaseInvisibleThroughOtherProject(t *testing.T) {
	engine := setupAPI(t, "http://agent.invalid")
	token := login(t, engine)
	projectID := createProject(t, engine, token, "Checkout")
	otherID := createProject(t, engine, token, "Billing")

	w := doRequest(t, engine, http.MethodPost, "/api/projects/"+projectID+"/test-cases", token, gin.H{"name": "Login flow"})
	require.Equal(t, http.StatusOK, w.Code)
	var created map[string]interface{}
	decodeBody(t, w, &created)
	caseID := created["id"].(string)

	w = doRequest(t, engine, http.MethodGet, "/api/projects/"+otherID+"/test-cases/"+caseID, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
