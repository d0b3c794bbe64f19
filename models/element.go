package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ElementType represents the kind of UI element a selector points at
type ElementType string

const (
	ElementButton   ElementType = "button"
	ElementInput    ElementType = "input"
	ElementLink     ElementType = "link"
	ElementDropdown ElementType = "dropdown"
	ElementCheckbox ElementType = "checkbox"
	ElementRadio    ElementType = "radio"
	ElementOther    ElementType = "other"
)

// ElementStatus represents whether an element is still in use
type ElementStatus string

const (
	ElementActive     ElementStatus = "active"
	ElementInactive   ElementStatus = "inactive"
	ElementDeprecated ElementStatus = "deprecated"
)

// Element is a named UI locator belonging to a project
type Element struct {
	ID          string        `json:"id" gorm:"primaryKey;type:uuid"`
	Name        string        `json:"name" gorm:"not null"`
	Selector    string        `json:"selector" gorm:"not null"`
	Type        ElementType   `json:"type" gorm:"type:varchar(10);not null"`
	Description string        `json:"description"`
	Status      ElementStatus `json:"status" gorm:"type:varchar(10);default:'active'"`
	CreatedBy   string        `json:"created_by" gorm:"not null"`
	ProjectID   string        `json:"project_id" gorm:"not null;index"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// BeforeCreate assigns a UUID primary key when none is set
func (e *Element) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
