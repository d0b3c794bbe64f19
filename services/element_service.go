package services

import (
	"github.com/superwise-ai/TestGenie/dto"
	"github.com/superwise-ai/TestGenie/models"
	"github.com/superwise-ai/TestGenie/repositories"
)

// ElementService handles business logic for UI elements
type ElementService struct {
	elementRepo *repositories.ElementRepository
	projectRepo *repositories.ProjectRepository
}

// NewElementService creates a new element service instance
func NewElementService() *ElementService {
	return &ElementService{
		elementRepo: repositories.NewElementRepository(),
		projectRepo: repositories.NewProjectRepository(),
	}
}

// ListElements retrieves all elements for a project the user owns
func (s *ElementService) ListElements(projectID string, ownerID string) ([]models.Element, error) {
	if _, err := s.projectRepo.FindByID(projectID, ownerID); err != nil {
		return nil, err
	}
	return s.elementRepo.FindByProject(projectID)
}

// GetElement retrieves a single element, scoped to its project and owner
func (s *ElementService) GetElement(id string, projectID string, ownerID string) (models.Element, error) {
	if _, err := s.projectRepo.FindByID(projectID, ownerID); err != nil {
		return models.Element{}, err
	}
	return s.elementRepo.FindByID(id, projectID)
}

// CreateElement creates a new element in the project
func (s *ElementService) CreateElement(projectID string, req dto.CreateElementRequest, creator models.User) (models.Element, error) {
	if _, err := s.projectRepo.FindByID(projectID, creator.ID); err != nil {
		return models.Element{}, err
	}

	element := models.Element{
		Name:        req.Name,
		Selector:    req.Selector,
		Type:        req.Type,
		Description: req.Description,
		Status:      req.Status,
		CreatedBy:   creator.FullName,
		ProjectID:   projectID,
	}
	if element.Status == "" {
		element.Status = models.ElementActive
	}

	return s.elementRepo.Create(element)
}

// UpdateElement applies the fields present in the partial payload
func (s *ElementService) UpdateElement(id string, projectID string, ownerID string, req dto.UpdateElementRequest) (models.Element, error) {
	if _, err := s.projectRepo.FindByID(projectID, ownerID); err != nil {
		return models.Element{}, err
	}

	element, err := s.elementRepo.FindByID(id, projectID)
	if err != nil {
		return models.Element{}, err
	}

	if req.Name != nil {
		element.Name = *req.Name
	}
	if req.Selector != nil {
		element.Selector = *req.Selector
	}
	if req.Type != nil {
		element.Type = *req.Type
	}
	if req.Description != nil {
		element.Description = *req.Description
	}
	if req.Status != nil {
		element.Status = *req.Status
	}

	if err := s.elementRepo.Update(element); err != nil {
		return models.Element{}, err
	}

	return element, nil
}

// DeleteElement removes an element
func (s *ElementService) DeleteElement(id string, projectID string, ownerID string) error {
	if _, err := s.projectRepo.FindByID(projectID, ownerID); err != nil {
		return err
	}
	return s.elementRepo.Delete(id, projectID)
}
