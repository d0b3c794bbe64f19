package services

import (
	"github.com/superwise-ai/TestGenie/dto"
	"github.com/superwise-ai/TestGenie/models"
	"github.com/superwise-ai/TestGenie/repositories"
)

// TestDataService handles business logic for test data sets
type TestDataService struct {
	testDataRepo *repositories.TestDataRepository
	projectRepo  *repositories.ProjectRepository
}

// NewTestDataService creates a new test data service instance
func NewTestDataService() *TestDataService {
	return &TestDataService{
		testDataRepo: repositories.NewTestDataRepository(),
		projectRepo:  repositories.NewProjectRepository(),
	}
}

// ListTestData retrieves all test data sets for a project the user owns
func (s *TestDataService) ListTestData(projectID string, ownerID string) ([]models.TestData, error) {
	if _, err := s.projectRepo.FindByID(projectID, ownerID); err != nil {
		return nil, err
	}
	return s.testDataRepo.FindByProject(projectID)
}

// GetTestData retrieves a single test data set, scoped to its project and owner
func (s *TestDataService) GetTestData(id string, projectID string, ownerID string) (models.TestData, error) {
	if _, err := s.projectRepo.FindByID(projectID, ownerID); err != nil {
		return models.TestData{}, err
	}
	return s.testDataRepo.FindByID(id, projectID)
}

// CreateTestData creates a new test data set in the project
func (s *TestDataService) CreateTestData(projectID string, req dto.CreateTestDataRequest, creator models.User) (models.TestData, error) {
	if _, err := s.projectRepo.FindByID(projectID, creator.ID); err != nil {
		return models.TestData{}, err
	}

	data := models.TestData{
		Name:        req.Name,
		Type:        req.Type,
		Description: req.Description,
		Records:     req.Records,
		Status:      req.Status,
		CreatedBy:   creator.FullName,
		ProjectID:   projectID,
	}
	if data.Status == "" {
		data.Status = models.TestDataActive
	}

	return s.testDataRepo.Create(data)
}

// UpdateTestData applies the fields present in the partial payload
func (s *TestDataService) UpdateTestData(id string, projectID string, ownerID string, req dto.UpdateTestDataRequest) (models.TestData, error) {
	if _, err := s.projectRepo.FindByID(projectID, ownerID); err != nil {
		return models.TestData{}, err
	}

	data, err := s.testDataRepo.FindByID(id, projectID)
	if err != nil {
		return models.TestData{}, err
	}

	if req.Name != nil {
		data.Name = *req.Name
	}
	if req.Type != nil {
		data.Type = *req.Type
	}
	if req.Description != nil {
		data.Description = *req.Description
	}
	if req.Records != nil {
		data.Records = *req.Records
	}
	if req.Status != nil {
		data.Status = *req.Status
	}

	if err := s.testDataRepo.Update(data); err != nil {
		return models.TestData{}, err
	}

	return data, nil
}

// DeleteTestData removes a test data set
func (s *TestDataService) DeleteTestData(id string, projectID string, ownerID string) error {
	if _, err := s.projectRepo.FindByID(projectID, ownerID); err != nil {
		return err
	}
	return s.testDataRepo.Delete(id, projectID)
}
