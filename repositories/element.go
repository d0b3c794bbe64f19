package repositories

import (
	"github.com/superwise-ai/TestGenie/database"
	"github.com/superwise-ai/TestGenie/models"
)

// ElementRepository handles database operations for UI elements
type ElementRepository struct{}

// NewElementRepository creates a new element repository instance
func NewElementRepository() *ElementRepository {
	return &ElementRepository{}
}

// FindByProject retrieves all elements for a project
func (r *ElementRepository) FindByProject(projectID string) ([]models.Element, error) {
	var elements []models.Element
	result := database.DB.Where("project_id = ?", projectID).Find(&elements)
	return elements, result.Error
}

// FindByID retrieves an element by id, scoped to its project
func (r *ElementRepository) FindByID(id string, projectID string) (models.Element, error) {
	var element models.Element
	result := database.DB.First(&element, "id = ? AND project_id = ?", id, projectID)
	return element, translate(result.Error)
}

// Create inserts a new element into the database
func (r *ElementRepository) Create(element models.Element) (models.Element, error) {
	result := database.DB.Create(&element)
	return element, result.Error
}

// Update saves modified element fields
func (r *ElementRepository) Update(element models.Element) error {
	return database.DB.Save(&element).Error
}

// Delete removes an element
func (r *ElementRepository) Delete(id string, projectID string) error {
	result := database.DB.Where("id = ? AND project_id = ?", id, projectID).Delete(&models.Element{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
