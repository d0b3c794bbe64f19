package v1

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/superwise-ai/TestGenie/auth"
	"github.com/superwise-ai/TestGenie/database"
	"github.com/superwise-ai/TestGenie/lib/superwise"
	"github.com/superwise-ai/TestGenie/services"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	testSecret   = "test-secret"
	testEmail    = "admin@superwise.ai"
	testPassword = "Admin123"
)

// setupAPI wires a full engine over an in-memory database. agentURL points
// the AI proxy at a fake agent; tests that never touch the AI endpoints
// can pass anything.
func setupAPI(t *testing.T, agentURL string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	database.DB = db
	t.Cleanup(func() {
		database.DB = nil
		sqlDB.Close()
	})

	credentials, err := auth.NewStaticCredentialStore("1", testEmail, "Admin", testPassword)
	require.NoError(t, err)
	tokens, err := auth.NewTokenService(testSecret, "HS256", 30*time.Minute)
	require.NoError(t, err)

	authService := services.NewAuthService(credentials, tokens)
	aiService := services.NewAIService(superwise.NewClient(agentURL, "agent-test"))

	engine := gin.New()
	RegisterRoutes(engine.Group("/api"), authService, aiService)
	return engine
}

// doRequest performs a request against the engine with an optional bearer
// token and JSON body
func doRequest(t *testing.T, engine *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

// login returns an access token for the configured test user
func login(t *testing.T, engine *gin.Engine) string {
	t.Helper()

	w := doRequest(t, engine, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    testEmail,
		"password": testPassword,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	decodeBody(t, w, &resp)
	token, _ := resp["access_token"].(string)
	require.NotEmpty(t, token)
	return token
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

// createProject makes a project through the API and returns its id
func createProject(t *testing.T, engine *gin.Engine, token, name string) string {
	t.Helper()

	w := doRequest(t, engine, http.MethodPost, "/api/projects", token, gin.H{"name": name})
	require.Equal(t, http.StatusOK, w.Code)

	var project map[string]interface{}
	decodeBody(t, w, &project)
	id, _ := project["id"].(string)
	require.NotEmpty(t, id)
	return id
}
