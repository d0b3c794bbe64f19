package repositories

import (
	"github.com/superwise-ai/TestGenie/database"
	"github.com/superwise-ai/TestGenie/models"
)

// EnvironmentRepository handles database operations for environments
type EnvironmentRepository struct{}

// NewEnvironmentRepository creates a new environment repository instance
func NewEnvironmentRepository() *EnvironmentRepository {
	return &EnvironmentRepository{}
}

// FindByProject retrieves all environments for a project
func (r *EnvironmentRepository) FindByProject(projectID string) ([]models.Environment, error) {
	var environments []models.Environment
	result := database.DB.Where("project_id = ?", projectID).Find(&environments)
	return environments, result.Error
}

// FindByID retrieves an environment by id, scoped to its project
func (r *EnvironmentRepository) FindByID(id string, projectID string) (models.Environment, error) {
	var environment models.Environment
	result := database.DB.First(&environment, "id = ? AND project_id = ?", id, projectID)
	return environment, translate(result.Error)
}

// Create inserts a new environment into the database
func (r *EnvironmentRepository) Create(environment models.Environment) (models.Environment, error) {
	result := database.DB.Create(&environment)
	return environment, result.Error
}

// Update saves modified environment fields
func (r *EnvironmentRepository) Update(environment models.Environment) error {
	return database.DB.Save(&environment).Error
}

// Delete removes an environment
func (r *EnvironmentRepository) Delete(id string, projectID string) error {
	result := database.DB.Where("id = ? AND project_id = ?", id, projectID).Delete(&models.Environment{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
