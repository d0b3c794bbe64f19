package repositories

import (
	"github.com/superwise-ai/TestGenie/database"
	"github.com/superwise-ai/TestGenie/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TestPlanRepository handles database operations for test plans and their
// plan/suite join rows
type TestPlanRepository struct{}

// NewTestPlanRepository creates a new test plan repository instance
func NewTestPlanRepository() *TestPlanRepository {
	return &TestPlanRepository{}
}

// FindByProject retrieves all test plans for a project with their suites
func (r *TestPlanRepository) FindByProject(projectID string) ([]models.TestPlan, error) {
	var plans []models.TestPlan
	result := database.DB.Preload("TestSuites.TestCases").Preload("TestSuites").
		Where("project_id = ?", projectID).Find(&plans)
	return plans, result.Error
}

// FindByID retrieves a test plan by id, scoped to its project
func (r *TestPlanRepository) FindByID(id string, projectID string) (models.TestPlan, error) {
	var plan models.TestPlan
	result := database.DB.Preload("TestSuites.TestCases").Preload("TestSuites").
		First(&plan, "id = ? AND project_id = ?", id, projectID)
	return plan, translate(result.Error)
}

// Create inserts a plan and one join row per supplied test suite id in a
// single transaction. The ids are recorded as given; nothing checks that
// each referenced suite belongs to the same project.
func (r *TestPlanRepository) Create(plan models.TestPlan, testSuiteIDs []string) (models.TestPlan, error) {
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(&plan).Error; err != nil {
			return err
		}
		for _, suiteID := range testSuiteIDs {
			join := models.TestPlanTestSuite{TestPlanID: plan.ID, TestSuiteID: suiteID}
			if err := tx.Create(&join).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return models.TestPlan{}, err
	}

	return r.FindByID(plan.ID, plan.ProjectID)
}

// Update saves modified plan fields; the composition is not touched
func (r *TestPlanRepository) Update(plan models.TestPlan) error {
	return database.DB.Omit(clause.Associations).Save(&plan).Error
}

// Delete removes a test plan. Its join rows are left in place.
func (r *TestPlanRepository) Delete(id string, projectID string) error {
	result := database.DB.Where("id = ? AND project_id = ?", id, projectID).Delete(&models.TestPlan{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
