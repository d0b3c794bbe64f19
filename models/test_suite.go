package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TestSuiteStatus represents whether a suite is in use
type TestSuiteStatus string

const (
	TestSuiteActive   TestSuiteStatus = "active"
	TestSuiteInactive TestSuiteStatus = "inactive"
)

// TestSuite groups test cases within a project through a join relation
type TestSuite struct {
	ID          string          `json:"id" gorm:"primaryKey;type:uuid"`
	Name        string          `json:"name" gorm:"not null"`
	Description string          `json:"description"`
	Status      TestSuiteStatus `json:"status" gorm:"type:varchar(10);default:'active'"`
	CreatedBy   string          `json:"created_by" gorm:"not null"`
	ProjectID   string          `json:"project_id" gorm:"not null;index"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`

	TestCases []TestCase `json:"test_cases" gorm:"many2many:test_suite_test_cases"`
}

// BeforeCreate assigns a UUID primary key when none is set
func (s *TestSuite) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// TestSuiteTestCase is the join row pairing a suite with a test case.
// Rows are written explicitly at suite creation; they are not pruned when a
// test case is deleted on its own.
type TestSuiteTestCase struct {
	TestSuiteID string `json:"test_suite_id" gorm:"primaryKey"`
	TestCaseID  string `json:"test_case_id" gorm:"primaryKey"`
}

// TableName sets the table name for the suite/case join relation
func (TestSuiteTestCase) TableName() string {
	return "test_suite_test_cases"
}
