package dto

import "github.com/superwise-ai/TestGenie/models"

// CreateTestSuiteRequest carries a new suite plus the ids of the test cases
// to associate with it. The referenced ids are recorded as-is.
type CreateTestSuiteRequest struct {
	Name        string                 `json:"name" binding:"required"`
	Description string                 `json:"description"`
	Status      models.TestSuiteStatus `json:"status" binding:"omitempty,oneof=active inactive"`
	TestCaseIDs []string               `json:"test_case_ids"`
}

// UpdateTestSuiteRequest carries a partial update; the suite/case
// association is only written at creation and is not editable here.
type UpdateTestSuiteRequest struct {
	Name        *string                 `json:"name"`
	Description *string                 `json:"description"`
	Status      *models.TestSuiteStatus `json:"status" binding:"omitempty,oneof=active inactive"`
}
