package dto

import "github.com/superwise-ai/TestGenie/models"

// TestStepRequest is one numbered step in a test case payload
type TestStepRequest struct {
	StepNumber  int    `json:"step_number" binding:"required,min=1"`
	Action      string `json:"action" binding:"required"`
	Element     string `json:"element"`
	Value       string `json:"value"`
	Description string `json:"description"`
}

// CreateTestCaseRequest carries a new test case with its ordered steps
type CreateTestCaseRequest struct {
	Name        string                  `json:"name" binding:"required"`
	Description string                  `json:"description"`
	Status      models.TestCaseStatus   `json:"status" binding:"omitempty,oneof=draft in-review ready obsolete rework"`
	Priority    models.TestCasePriority `json:"priority" binding:"omitempty,oneof=critical major medium minor"`
	Assignee    string                  `json:"assignee"`
	Reviewer    string                  `json:"reviewer"`
	Browsers    []string                `json:"browsers"`
	Environment string                  `json:"environment"`
	Steps       []TestStepRequest       `json:"steps" binding:"omitempty,dive"`
}

// UpdateTestCaseRequest carries a partial update. A non-nil Steps slice
// replaces every existing step; nil leaves the steps untouched.
type UpdateTestCaseRequest struct {
	Name        *string                  `json:"name"`
	Description *string                  `json:"description"`
	Status      *models.TestCaseStatus   `json:"status" binding:"omitempty,oneof=draft in-review ready obsolete rework"`
	Priority    *models.TestCasePriority `json:"priority" binding:"omitempty,oneof=critical major medium minor"`
	Assignee    *string                  `json:"assignee"`
	Reviewer    *string                  `json:"reviewer"`
	Browsers    *[]string                `json:"browsers"`
	Environment *string                  `json:"environment"`
	Steps       *[]TestStepRequest       `json:"steps" binding:"omitempty,dive"`
}
