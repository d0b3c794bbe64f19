package repositories

import (
	"github.com/superwise-ai/TestGenie/database"
	"github.com/superwise-ai/TestGenie/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TestSuiteRepository handles database operations for test suites and their
// suite/case join rows
type TestSuiteRepository struct{}

// NewTestSuiteRepository creates a new test suite repository instance
func NewTestSuiteRepository() *TestSuiteRepository {
	return &TestSuiteRepository{}
}

// FindByProject retrieves all test suites for a project with their cases
func (r *TestSuiteRepository) FindByProject(projectID string) ([]models.TestSuite, error) {
	var suites []models.TestSuite
	result := database.DB.Preload("TestCases.Steps", orderedSteps).Preload("TestCases").
		Where("project_id = ?", projectID).Find(&suites)
	return suites, result.Error
}

// FindByID retrieves a test suite by id, scoped to its project
func (r *TestSuiteRepository) FindByID(id string, projectID string) (models.TestSuite, error) {
	var suite models.TestSuite
	result := database.DB.Preload("TestCases.Steps", orderedSteps).Preload("TestCases").
		First(&suite, "id = ? AND project_id = ?", id, projectID)
	return suite, translate(result.Error)
}

// Create inserts a suite and one join row per supplied test case id in a
// single transaction. The ids are recorded as given; nothing checks that
// each referenced case belongs to the same project.
func (r *TestSuiteRepository) Create(suite models.TestSuite, testCaseIDs []string) (models.TestSuite, error) {
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(&suite).Error; err != nil {
			return err
		}
		for _, caseID := range testCaseIDs {
			join := models.TestSuiteTestCase{TestSuiteID: suite.ID, TestCaseID: caseID}
			if err := tx.Create(&join).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return models.TestSuite{}, err
	}

	return r.FindByID(suite.ID, suite.ProjectID)
}

// Update saves modified suite fields; the composition is not touched
func (r *TestSuiteRepository) Update(suite models.TestSuite) error {
	return database.DB.Omit(clause.Associations).Save(&suite).Error
}

// Delete removes a test suite. Its join rows are left in place.
func (r *TestSuiteRepository) Delete(id string, projectID string) error {
	result := database.DB.Where("id = ? AND project_id = ?", id, projectID).Delete(&models.TestSuite{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
