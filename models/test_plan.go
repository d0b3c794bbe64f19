package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TestPlanStatus represents the execution lifecycle of a plan
type TestPlanStatus string

const (
	TestPlanDraft     TestPlanStatus = "draft"
	TestPlanActive    TestPlanStatus = "active"
	TestPlanCompleted TestPlanStatus = "completed"
)

// TestPlan groups test suites within a project through a join relation
type TestPlan struct {
	ID          string         `json:"id" gorm:"primaryKey;type:uuid"`
	Name        string         `json:"name" gorm:"not null"`
	Description string         `json:"description"`
	Status      TestPlanStatus `json:"status" gorm:"type:varchar(10);default:'draft'"`
	CreatedBy   string         `json:"created_by" gorm:"not null"`
	ProjectID   string         `json:"project_id" gorm:"not null;index"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`

	TestSuites []TestSuite `json:"test_suites" gorm:"many2many:test_plan_test_suites"`
}

// BeforeCreate assigns a UUID primary key when none is set
func (p *TestPlan) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// TestPlanTestSuite is the join row pairing a plan with a test suite.
// Rows are written explicitly at plan creation; they are not pruned when a
// test suite is deleted on its own.
type TestPlanTestSuite struct {
	TestPlanID  string `json:"test_plan_id" gorm:"primaryKey"`
	TestSuiteID string `json:"test_suite_id" gorm:"primaryKey"`
}

// TableName sets the table name for the plan/suite join relation
func (TestPlanTestSuite) TableName() string {
	return "test_plan_test_suites"
}
