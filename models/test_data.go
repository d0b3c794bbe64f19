package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TestDataType represents the source format of a test data set
type TestDataType string

const (
	TestDataCSV      TestDataType = "csv"
	TestDataJSON     TestDataType = "json"
	TestDataExcel    TestDataType = "excel"
	TestDataDatabase TestDataType = "database"
	TestDataAPI      TestDataType = "api"
)

// TestDataStatus represents whether a data set is usable
type TestDataStatus string

const (
	TestDataActive   TestDataStatus = "active"
	TestDataInactive TestDataStatus = "inactive"
	TestDataError    TestDataStatus = "error"
)

// TestData is a named data set belonging to a project
type TestData struct {
	ID          string         `json:"id" gorm:"primaryKey;type:uuid"`
	Name        string         `json:"name" gorm:"not null"`
	Type        TestDataType   `json:"type" gorm:"type:varchar(10);not null"`
	Description string         `json:"description"`
	Records     int            `json:"records" gorm:"default:0"`
	Status      TestDataStatus `json:"status" gorm:"type:varchar(10);default:'active'"`
	CreatedBy   string         `json:"created_by" gorm:"not null"`
	ProjectID   string         `json:"project_id" gorm:"not null;index"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// TableName sets the table name for TestData (avoids gorm pluralizing to "test_data")
func (TestData) TableName() string {
	return "test_data"
}

// BeforeCreate assigns a UUID primary key when none is set
func (d *TestData) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}
