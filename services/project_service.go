package services

import (
	"log"

	"github.com/superwise-ai/TestGenie/dto"
	"github.com/superwise-ai/TestGenie/models"
	"github.com/superwise-ai/TestGenie/repositories"
)

// ProjectService handles business logic for projects
type ProjectService struct {
	projectRepo *repositories.ProjectRepository
}

// NewProjectService creates a new project service instance
func NewProjectService() *ProjectService {
	return &ProjectService{
		projectRepo: repositories.NewProjectRepository(),
	}
}

// ListProjects retrieves all projects owned by the user
func (s *ProjectService) ListProjects(ownerID string) ([]models.Project, error) {
	return s.projectRepo.FindByOwner(ownerID)
}

// GetProject retrieves a single project, scoped to its owner
func (s *ProjectService) GetProject(id string, ownerID string) (models.Project, error) {
	return s.projectRepo.FindByID(id, ownerID)
}

// CreateProject creates a new project for the user. The owner id comes from
// the authenticated identity, never from the payload.
func (s *ProjectService) CreateProject(req dto.CreateProjectRequest, owner models.User) (models.Project, error) {
	project := models.Project{
		Name:            req.Name,
		Description:     req.Description,
		ApplicationName: req.ApplicationName,
		Version:         req.Version,
		Color:           req.Color,
		Status:          models.ProjectHealthy,
		OwnerID:         owner.ID,
	}
	if project.Color == "" {
		project.Color = "#F54927"
	}

	created, err := s.projectRepo.Create(project)
	if err != nil {
		return models.Project{}, err
	}

	log.Printf("Project created: id=%s name=%s owner=%s", created.ID, created.Name, owner.ID)
	return created, nil
}

// UpdateProject applies the fields present in the partial payload and leaves
// the rest untouched
func (s *ProjectService) UpdateProject(id string, ownerID string, req dto.UpdateProjectRequest) (models.Project, error) {
	project, err := s.projectRepo.FindByID(id, ownerID)
	if err != nil {
		return models.Project{}, err
	}

	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.ApplicationName != nil {
		project.ApplicationName = *req.ApplicationName
	}
	if req.Version != nil {
		project.Version = *req.Version
	}
	if req.Color != nil {
		project.Color = *req.Color
	}

	if err := s.projectRepo.Update(project); err != nil {
		return models.Project{}, err
	}

	return project, nil
}

// DeleteProject removes a project and all of its child entities
func (s *ProjectService) DeleteProject(id string, ownerID string) error {
	return s.projectRepo.Delete(id, ownerID)
}
