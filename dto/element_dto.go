package dto

import "github.com/superwise-ai/TestGenie/models"

// CreateElementRequest carries a new UI element locator
type CreateElementRequest struct {
	Name        string               `json:"name" binding:"required"`
	Selector    string               `json:"selector" binding:"required"`
	Type        models.ElementType   `json:"type" binding:"required,oneof=button input link dropdown checkbox radio other"`
	Description string               `json:"description"`
	Status      models.ElementStatus `json:"status" binding:"omitempty,oneof=active inactive deprecated"`
}

// UpdateElementRequest carries a partial update; nil fields are left untouched
type UpdateElementRequest struct {
	Name        *string               `json:"name"`
	Selector    *string               `json:"selector"`
	Type        *models.ElementType   `json:"type" binding:"omitempty,oneof=button input link dropdown checkbox radio other"`
	Description *string               `json:"description"`
	Status      *models.ElementStatus `json:"status" binding:"omitempty,oneof=active inactive deprecated"`
}
