package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EnvironmentStatus represents whether an environment is reachable for runs
type EnvironmentStatus string

const (
	EnvironmentActive   EnvironmentStatus = "active"
	EnvironmentInactive EnvironmentStatus = "inactive"
)

// Environment is a named target (URL) tests run against, scoped to a project
type Environment struct {
	ID          string            `json:"id" gorm:"primaryKey;type:uuid"`
	Name        string            `json:"name" gorm:"not null"`
	Description string            `json:"description"`
	URL         string            `json:"url"`
	Status      EnvironmentStatus `json:"status" gorm:"type:varchar(10);default:'active'"`
	CreatedBy   string            `json:"created_by" gorm:"not null"`
	ProjectID   string            `json:"project_id" gorm:"not null;index"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// TableName sets the table name for Environment model
func (Environment) TableName() string {
	return "environments"
}

// BeforeCreate assigns a UUID primary key when none is set
func (e *Environment) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
