package dto

// AssistantRequest is a free-form question for the AI assistant endpoint
type AssistantRequest struct {
	Message string `json:"message" binding:"required"`
}
