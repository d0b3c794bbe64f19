package dto

import "github.com/superwise-ai/TestGenie/models"

// CreateEnvironmentRequest carries a new target environment
type CreateEnvironmentRequest struct {
	Name        string                   `json:"name" binding:"required"`
	Description string                   `json:"description"`
	URL         string                   `json:"url"`
	Status      models.EnvironmentStatus `json:"status" binding:"omitempty,oneof=active inactive"`
}

// UpdateEnvironmentRequest carries a partial update; nil fields are left untouched
type UpdateEnvironmentRequest struct {
	Name        *string                   `json:"name"`
	Description *string                   `json:"description"`
	URL         *string                   `json:"url"`
	Status      *models.EnvironmentStatus `json:"status" binding:"omitempty,oneof=active inactive"`
}
