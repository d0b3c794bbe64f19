package services

import (
	"log"

	"github.com/superwise-ai/TestGenie/lib/superwise"
	"github.com/superwise-ai/TestGenie/repositories"
)

// AIService proxies prompt requests to the Superwise agent after confirming
// project ownership. Responses are relayed verbatim.
type AIService struct {
	projectRepo *repositories.ProjectRepository
	client      *superwise.Client
}

// NewAIService creates an AI service over the given agent client
func NewAIService(client *superwise.Client) *AIService {
	return &AIService{
		projectRepo: repositories.NewProjectRepository(),
		client:      client,
	}
}

// GenerateTestPlans asks the agent for a test plan for the project
func (s *AIService) GenerateTestPlans(projectID string, ownerID string) (map[string]interface{}, error) {
	project, err := s.projectRepo.FindByID(projectID, ownerID)
	if err != nil {
		return nil, err
	}

	log.Printf("Requesting AI test plans for project: %s", project.Name)
	return s.client.Ask(superwise.TestPlanPrompt(project.Name))
}

// GenerateTestCases asks the agent for test cases for the project
func (s *AIService) GenerateTestCases(projectID string, ownerID string) (map[string]interface{}, error) {
	project, err := s.projectRepo.FindByID(projectID, ownerID)
	if err != nil {
		return nil, err
	}

	log.Printf("Requesting AI test cases for project: %s", project.Name)
	return s.client.Ask(superwise.TestCasesPrompt(project.Name))
}

// Ask forwards a free-form assistant message for a project the user owns
func (s *AIService) Ask(projectID string, ownerID string, message string) (map[string]interface{}, error) {
	if _, err := s.projectRepo.FindByID(projectID, ownerID); err != nil {
		return nil, err
	}

	return s.client.Ask(message)
}
