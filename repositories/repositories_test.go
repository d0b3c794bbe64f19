package repositories

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/superwise-ai/TestGenie/database"
	"github.com/superwise-ai/TestGenie/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB points the package's database handle at a fresh in-memory
// SQLite instance. A single connection keeps every query on the same
// in-memory database.
func setupTestDB(t *testing.T) {
	t.Helper()

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
}

func seedProject(t *testing.T, ownerID string) models.Project {
	t.Helper()

	project, err := NewProjectRepository().Create(models.Project{
		Name:    "Checkout",
		Status:  models.ProjectHealthy,
		Color:   "#F54927",
		OwnerID: ownerID,
	})
	require.NoError(t, err)
	return project
}

func countRows(t *testing.T, model interface{}) int64 {
	t.Helper()

	var count int64
	require.NoError(t, database.DB.Model(model).Count(&count).Error)
	return count
}
