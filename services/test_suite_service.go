package services

import (
	"github.com/superwise-ai/TestGenie/dto"
	"github.com/superwise-ai/TestGenie/models"
	"github.com/superwise-ai/TestGenie/repositories"
)

// TestSuiteService handles business logic for test suites
type TestSuiteService struct {
	testSuiteRepo *repositories.TestSuiteRepository
	projectRepo   *repositories.ProjectRepository
}

// NewTestSuiteService creates a new test suite service instance
func NewTestSuiteService() *TestSuiteService {
	return &TestSuiteService{
		testSuiteRepo: repositories.NewTestSuiteRepository(),
		projectRepo:   repositories.NewProjectRepository(),
	}
}

// ListTestSuites retrieves all test suites for a project the user owns
func (s *TestSuiteService) ListTestSuites(projectID string, ownerID string) ([]models.TestSuite, error) {
	if _, err := s.projectRepo.FindByID(projectID, ownerID); err != nil {
		return nil, err
	}
	return s.testSuiteRepo.FindByProject(projectID)
}

// GetTestSuite retrieves a single test suite, scoped to its project and owner
func (s *TestSuiteService) GetTestSuite(id string, projectID string, ownerID string) (models.TestSuite, error) {
	if _, err := s.projectRepo.FindByID(projectID, ownerID); err != nil {
		return models.TestSuite{}, err
	}
	return s.testSuiteRepo.FindByID(id, projectID)
}

// CreateTestSuite creates a suite and records its test case association
func (s *TestSuiteService) CreateTestSuite(projectID string, req dto.CreateTestSuiteRequest, creator models.User) (models.TestSuite, error) {
	if _, err := s.projectRepo.FindByID(projectID, creator.ID); err != nil {
		return models.TestSuite{}, err
	}

	suite := models.TestSuite{
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
		CreatedBy:   creator.FullName,
		ProjectID:   projectID,
	}
	if suite.Status == "" {
		suite.Status = models.TestSuiteActive
	}

	return s.testSuiteRepo.Create(suite, req.TestCaseIDs)
}

// UpdateTestSuite applies the fields present in the partial payload
func (s *TestSuiteService) UpdateTestSuite(id string, projectID string, ownerID string, req dto.UpdateTestSuiteRequest) (models.TestSuite, error) {
	if _, err := s.projectRepo.FindByID(projectID, ownerID); err != nil {
		return models.TestSuite{}, err
	}

	suite, err := s.testSuiteRepo.FindByID(id, projectID)
	if err != nil {
		return models.TestSuite{}, err
	}

	if req.Name != nil {
		suite.Name = *req.Name
	}
	if req.Description != nil {
		suite.Description = *req.Description
	}
	if req.Status != nil {
		suite.Status = *req.Status
	}

	if err := s.testSuiteRepo.Update(suite); err != nil {
		return models.TestSuite{}, err
	}

	return suite, nil
}

// DeleteTestSuite removes a test suite
func (s *TestSuiteService) DeleteTestSuite(id string, projectID string, ownerID string) error {
	if _, err := s.projectRepo.FindByID(projectID, ownerID); err != nil {
		return err
	}
	return s.testSuiteRepo.Delete(id, projectID)
}
