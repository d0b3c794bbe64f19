package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectStatus represents the health status of a project
type ProjectStatus string

const (
	ProjectHealthy ProjectStatus = "healthy"
	ProjectWarning ProjectStatus = "warning"
	ProjectError   ProjectStatus = "error"
)

// Project is the root container for all test artifacts. OwnerID is set from
// the authenticated identity at creation and never changes afterwards.
type Project struct {
	ID              string        `json:"id" gorm:"primaryKey;type:uuid"`
	Name            string        `json:"name" gorm:"not null"`
	Description     string        `json:"description"`
	ApplicationName string        `json:"application_name"`
	Version         string        `json:"version"`
	Color           string        `json:"color" gorm:"default:'#F54927'"`
	Status          ProjectStatus `json:"status" gorm:"type:varchar(10);default:'healthy'"`
	LastRun         *time.Time    `json:"last_run"`
	OwnerID         string        `json:"owner_id" gorm:"not null;index"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// BeforeCreate assigns a UUID primary key when none is set
func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
