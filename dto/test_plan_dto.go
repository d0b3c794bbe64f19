package dto

import "github.com/superwise-ai/TestGenie/models"

// CreateTestPlanRequest carries a new plan plus the ids of the test suites
// to associate with it. The referenced ids are recorded as-is.
type CreateTestPlanRequest struct {
	Name         string                `json:"name" binding:"required"`
	Description  string                `json:"description"`
	Status       models.TestPlanStatus `json:"status" binding:"omitempty,oneof=draft active completed"`
	TestSuiteIDs []string              `json:"test_suite_ids"`
}

// UpdateTestPlanRequest carries a partial update; the plan/suite association
// is only written at creation and is not editable here.
type UpdateTestPlanRequest struct {
	Name        *string                `json:"name"`
	Description *string                `json:"description"`
	Status      *models.TestPlanStatus `json:"status" binding:"omitempty,oneof=draft active completed"`
}
