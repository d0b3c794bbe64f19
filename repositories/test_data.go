package repositories

import (
	"github.com/superwise-ai/TestGenie/database"
	"github.com/superwise-ai/TestGenie/models"
)

// TestDataRepository handles database operations for test data sets
type TestDataRepository struct{}

// NewTestDataRepository creates a new test data repository instance
func NewTestDataRepository() *TestDataRepository {
	return &TestDataRepository{}
}

// FindByProject retrieves all test data sets for a project
func (r *TestDataRepository) FindByProject(projectID string) ([]models.TestData, error) {
	var data []models.TestData
	result := database.DB.Where("project_id = ?", projectID).Find(&data)
	return data, result.Error
}

// FindByID retrieves a test data set by id, scoped to its project
func (r *TestDataRepository) FindByID(id string, projectID string) (models.TestData, error) {
	var data models.TestData
	result := database.DB.First(&data, "id = ? AND project_id = ?", id, projectID)
	return data, translate(result.Error)
}

// Create inserts a new test data set into the database
func (r *TestDataRepository) Create(data models.TestData) (models.TestData, error) {
	result := database.DB.Create(&data)
	return data, result.Error
}

// Update saves modified test data fields
func (r *TestDataRepository) Update(data models.TestData) error {
	return database.DB.Save(&data).Error
}

// Delete removes a test data set
func (r *TestDataRepository) Delete(id string, projectID string) error {
	result := database.DB.Where("id = ? AND project_id = ?", id, projectID).Delete(&models.TestData{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
