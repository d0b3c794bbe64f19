package dto

import "github.com/superwise-ai/TestGenie/models"

// CreateTestDataRequest carries a new test data set
type CreateTestDataRequest struct {
	Name        string                `json:"name" binding:"required"`
	Type        models.TestDataType   `json:"type" binding:"required,oneof=csv json excel database api"`
	Description string                `json:"description"`
	Records     int                   `json:"records" binding:"omitempty,min=0"`
	Status      models.TestDataStatus `json:"status" binding:"omitempty,oneof=active inactive error"`
}

// UpdateTestDataRequest carries a partial update; nil fields are left untouched
type UpdateTestDataRequest struct {
	Name        *string                `json:"name"`
	Type        *models.TestDataType   `json:"type" binding:"omitempty,oneof=csv json excel database api"`
	Description *string                `json:"description"`
	Records     *int                   `json:"records" binding:"omitempty,min=0"`
	Status      *models.TestDataStatus `json:"status" binding:"omitempty,oneof=active inactive error"`
}
