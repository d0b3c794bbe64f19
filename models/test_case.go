package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TestCaseStatus represents the review lifecycle of a test case
type TestCaseStatus string

const (
	TestCaseDraft    TestCaseStatus = "draft"
	TestCaseInReview TestCaseStatus = "in-review"
	TestCaseReady    TestCaseStatus = "ready"
	TestCaseObsolete TestCaseStatus = "obsolete"
	TestCaseRework   TestCaseStatus = "rework"
)

// TestCasePriority represents the priority of a test case
type TestCasePriority string

const (
	PriorityCritical TestCasePriority = "critical"
	PriorityMajor    TestCasePriority = "major"
	PriorityMedium   TestCasePriority = "medium"
	PriorityMinor    TestCasePriority = "minor"
)

// TestCase is a single test scenario within a project. Its steps are an
// ordered child list, replaced wholesale on update rather than merged.
type TestCase struct {
	ID          string           `json:"id" gorm:"primaryKey;type:uuid"`
	Name        string           `json:"name" gorm:"not null"`
	Description string           `json:"description"`
	Status      TestCaseStatus   `json:"status" gorm:"type:varchar(10);default:'draft'"`
	Priority    TestCasePriority `json:"priority" gorm:"type:varchar(10);default:'medium'"`
	Assignee    string           `json:"assignee"`
	Reviewer    string           `json:"reviewer"`
	Browsers    []string         `json:"browsers" gorm:"serializer:json"`
	Environment string           `json:"environment"`
	CreatedBy   string           `json:"created_by" gorm:"not null"`
	ProjectID   string           `json:"project_id" gorm:"not null;index"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`

	Steps []TestStep `json:"steps" gorm:"foreignKey:TestCaseID"`
}

// BeforeCreate assigns a UUID primary key when none is set
func (t *TestCase) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

// TestStep is a single numbered action inside a test case
type TestStep struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid"`
	StepNumber  int       `json:"step_number" gorm:"not null"`
	Action      string    `json:"action" gorm:"not null"`
	Element     string    `json:"element"`
	Value       string    `json:"value"`
	Description string    `json:"description"`
	TestCaseID  string    `json:"test_case_id" gorm:"not null;index"`
	CreatedAt   time.Time `json:"created_at"`
}

// BeforeCreate assigns a UUID primary key when none is set
func (s *TestStep) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
