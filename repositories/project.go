package repositories

import (
	"github.com/superwise-ai/TestGenie/database"
	"github.com/superwise-ai/TestGenie/models"
	"gorm.io/gorm"
)

// ProjectRepository handles database operations for projects. Every lookup
// is scoped by owner id; a mismatch looks identical to a missing row.
type ProjectRepository struct{}

// NewProjectRepository creates a new project repository instance
func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{}
}

// FindByOwner retrieves all projects belonging to a user
func (r *ProjectRepository) FindByOwner(ownerID string) ([]models.Project, error) {
	var projects []models.Project
	result := database.DB.Where("owner_id = ?", ownerID).Find(&projects)
	return projects, result.Error
}

// FindByID retrieves a project by id, scoped to its owner
func (r *ProjectRepository) FindByID(id string, ownerID string) (models.Project, error) {
	var project models.Project
	result := database.DB.First(&project, "id = ? AND owner_id = ?", id, ownerID)
	return project, translate(result.Error)
}

// Create inserts a new project into the database
func (r *ProjectRepository) Create(project models.Project) (models.Project, error) {
	result := database.DB.Create(&project)
	return project, result.Error
}

// Update saves modified project fields
func (r *ProjectRepository) Update(project models.Project) error {
	return database.DB.Save(&project).Error
}

// Delete removes a project and every child entity it owns. The cascade is
// an explicit ordered list of deletions inside one transaction: steps
// before cases, join rows before suites and plans, the project row last.
func (r *ProjectRepository) Delete(id string, ownerID string) error {
	return translate(database.DB.Transaction(func(tx *gorm.DB) error {
		var project models.Project
		if err := tx.First(&project, "id = ? AND owner_id = ?", id, ownerID).Error; err != nil {
			return err
		}

		var caseIDs []string
		if err := tx.Model(&models.TestCase{}).Where("project_id = ?", id).Pluck("id", &caseIDs).Error; err != nil {
			return err
		}
		if len(caseIDs) > 0 {
			if err := tx.Where("test_case_id IN ?", caseIDs).Delete(&models.TestStep{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("project_id = ?", id).Delete(&models.TestCase{}).Error; err != nil {
			return err
		}

		if err := tx.Where("project_id = ?", id).Delete(&models.Element{}).Error; err != nil {
			return err
		}

		var suiteIDs []string
		if err := tx.Model(&models.TestSuite{}).Where("project_id = ?", id).Pluck("id", &suiteIDs).Error; err != nil {
			return err
		}
		if len(suiteIDs) > 0 {
			if err := tx.Where("test_suite_id IN ?", suiteIDs).Delete(&models.TestSuiteTestCase{}).Error; err != nil {
				return err
			}
			if err := tx.Where("test_suite_id IN ?", suiteIDs).Delete(&models.TestPlanTestSuite{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("project_id = ?", id).Delete(&models.TestSuite{}).Error; err != nil {
			return err
		}

		var planIDs []string
		if err := tx.Model(&models.TestPlan{}).Where("project_id = ?", id).Pluck("id", &planIDs).Error; err != nil {
			return err
		}
		if len(planIDs) > 0 {
			if err := tx.Where("test_plan_id IN ?", planIDs).Delete(&models.TestPlanTestSuite{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("project_id = ?", id).Delete(&models.TestPlan{}).Error; err != nil {
			return err
		}

		if err := tx.Where("project_id = ?", id).Delete(&models.TestData{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&models.Environment{}).Error; err != nil {
			return err
		}

		return tx.Delete(&project).Error
	}))
}
