package services

import (
	"github.com/superwise-ai/TestGenie/dto"
	"github.com/superwise-ai/TestGenie/models"
	"github.com/superwise-ai/TestGenie/repositories"
)

// EnvironmentService handles business logic for environments
type EnvironmentService struct {
	environmentRepo *repositories.EnvironmentRepository
	projectRepo     *repositories.ProjectRepository
}

// NewEnvironmentService creates a new environment service instance
func NewEnvironmentService() *EnvironmentService {
	return &EnvironmentService{
		environmentRepo: repositories.NewEnvironmentRepository(),
		projectRepo:     repositories.NewProjectRepository(),
	}
}

// ListEnvironments retrieves all environments for a project the user owns
func (s *EnvironmentService) ListEnvironments(projectID string, ownerID string) ([]models.Environment, error) {
	if _, err := s.projectRepo.FindByID(projectID, ownerID); err != nil {
		return nil, err
	}
	return s.environmentRepo.FindByProject(projectID)
}

// GetEnvironment retrieves a single environment, scoped to its project and owner
func (s *EnvironmentService) GetEnvironment(id string, projectID string, ownerID string) (models.Environment, error) {
	if _, err := s.projectRepo.FindByID(projectID, ownerID); err != nil {
		return models.Environment{}, err
	}
	return s.environmentRepo.FindByID(id, projectID)
}

// CreateEnvironment creates a new environment in the project
func (s *EnvironmentService) CreateEnvironment(projectID string, req dto.CreateEnvironmentRequest, creator models.User) (models.Environment, error) {
	if _, err := s.projectRepo.FindByID(projectID, creator.ID); err != nil {
		return models.Environment{}, err
	}

	environment := models.Environment{
		Name:        req.Name,
		Description: req.Description,
		URL:         req.URL,
		Status:      req.Status,
		CreatedBy:   creator.FullName,
		ProjectID:   projectID,
	}
	if environment.Status == "" {
		environment.Status = models.EnvironmentActive
	}

	return s.environmentRepo.Create(environment)
}

// UpdateEnvironment applies the fields present in the partial payload
func (s *EnvironmentService) UpdateEnvironment(id string, projectID string, ownerID string, req dto.UpdateEnvironmentRequest) (models.Environment, error) {
	if _, err := s.projectRepo.FindByID(projectID, ownerID); err != nil {
		return models.Environment{}, err
	}

	environment, err := s.environmentRepo.FindByID(id, projectID)
	if err != nil {
		return models.Environment{}, err
	}

	if req.Name != nil {
		environment.Name = *req.Name
	}
	if req.Description != nil {
		environment.Description = *req.Description
	}
	if req.URL != nil {
		environment.URL = *req.URL
	}
	if req.Status != nil {
		environment.Status = *req.Status
	}

	if err := s.environmentRepo.Update(environment); err != nil {
		return models.Environment{}, err
	}

	return environment, nil
}

// DeleteEnvironment removes an environment
func (s *EnvironmentService) DeleteEnvironment(id string, projectID string, ownerID string) error {
	if _, err := s.projectRepo.FindByID(projectID, ownerID); err != nil {
		return err
	}
	return s.environmentRepo.Delete(id, projectID)
}
