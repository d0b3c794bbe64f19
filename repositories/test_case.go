package repositories

import (
	"github.com/superwise-ai/TestGenie/database"
	"github.com/superwise-ai/TestGenie/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TestCaseRepository handles database operations for test cases and their
// ordered steps
type TestCaseRepository struct{}

// NewTestCaseRepository creates a new test case repository instance
func NewTestCaseRepository() *TestCaseRepository {
	return &TestCaseRepository{}
}

// orderedSteps preloads a case's steps in submitted order
func orderedSteps(db *gorm.DB) *gorm.DB {
	return db.Order("step_number ASC")
}

// FindByProject retrieves all test cases for a project with their steps
func (r *TestCaseRepository) FindByProject(projectID string) ([]models.TestCase, error) {
	var testCases []models.TestCase
	result := database.DB.Preload("Steps", orderedSteps).Where("project_id = ?", projectID).Find(&testCases)
	return testCases, result.Error
}

// FindByID retrieves a test case by id, scoped to its project
func (r *TestCaseRepository) FindByID(id string, projectID string) (models.TestCase, error) {
	var testCase models.TestCase
	result := database.DB.Preload("Steps", orderedSteps).First(&testCase, "id = ? AND project_id = ?", id, projectID)
	return testCase, translate(result.Error)
}

// Create inserts a test case and its steps as a single unit; if any step
// insert fails the case insert rolls back with it
func (r *TestCaseRepository) Create(testCase models.TestCase) (models.TestCase, error) {
	steps := testCase.Steps
	testCase.Steps = nil

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(&testCase).Error; err != nil {
			return err
		}
		for i := range steps {
			steps[i].TestCaseID = testCase.ID
			if err := tx.Create(&steps[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return models.TestCase{}, err
	}

	testCase.Steps = steps
	return testCase, nil
}

// Update saves modified case fields. When replaceSteps is set, the existing
// steps are deleted and the case's step list is inserted in their place;
// there is no partial step merge.
func (r *TestCaseRepository) Update(testCase models.TestCase, replaceSteps bool) (models.TestCase, error) {
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(&testCase).Error; err != nil {
			return err
		}

		if !replaceSteps {
			return nil
		}

		if err := tx.Where("test_case_id = ?", testCase.ID).Delete(&models.TestStep{}).Error; err != nil {
			return err
		}
		for i := range testCase.Steps {
			testCase.Steps[i].ID = ""
			testCase.Steps[i].TestCaseID = testCase.ID
			if err := tx.Create(&testCase.Steps[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return models.TestCase{}, err
	}

	return r.FindByID(testCase.ID, testCase.ProjectID)
}

// Delete removes a test case and its steps. Join rows in
// test_suite_test_cases are left in place.
func (r *TestCaseRepository) Delete(id string, projectID string) error {
	return translate(database.DB.Transaction(func(tx *gorm.DB) error {
		var testCase models.TestCase
		if err := tx.First(&testCase, "id = ? AND project_id = ?", id, projectID).Error; err != nil {
			return err
		}

		if err := tx.Where("test_case_id = ?", id).Delete(&models.TestStep{}).Error; err != nil {
			return err
		}
		return tx.Delete(&testCase).Error
	}))
}
