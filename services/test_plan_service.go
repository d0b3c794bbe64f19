package services

import (
	"github.com/superwise-ai/TestGenie/dto"
	"github.com/superwise-ai/TestGenie/models"
	"github.com/superwise-ai/TestGenie/repositories"
)

// TestPlanService handles business logic for test plans
type TestPlanService struct {
	testPlanRepo *repositories.TestPlanRepository
	projectRepo  *repositories.ProjectRepository
}

// NewTestPlanService creates a new test plan service instance
func NewTestPlanService() *TestPlanService {
	return &TestPlanService{
		testPlanRepo: repositories.NewTestPlanRepository(),
		projectRepo:  repositories.NewProjectRepository(),
	}
}

// ListTestPlans retrieves all test plans for a project the user owns
func (s *TestPlanService) ListTestPlans(projectID string, ownerID string) ([]models.TestPlan, error) {
	if _, err := s.projectRepo.FindByID(projectID, ownerID); err != nil {
		return nil, err
	}
	return s.testPlanRepo.FindByProject(projectID)
}

// GetTestPlan retrieves a single test plan, scoped to its project and owner
func (s *TestPlanService) GetTestPlan(id string, projectID string, ownerID string) (models.TestPlan, error) {
	if _, err := s.projectRepo.FindByID(projectID, ownerID); err != nil {
		return models.TestPlan{}, err
	}
	return s.testPlanRepo.FindByID(id, projectID)
}

// CreateTestPlan creates a plan and records its test suite association
func (s *TestPlanService) CreateTestPlan(projectID string, req dto.CreateTestPlanRequest, creator models.User) (models.TestPlan, error) {
	if _, err := s.projectRepo.FindByID(projectID, creator.ID); err != nil {
		return models.TestPlan{}, err
	}

	plan := models.TestPlan{
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
		CreatedBy:   creator.FullName,
		ProjectID:   projectID,
	}
	if plan.Status == "" {
		plan.Status = models.TestPlanDraft
	}

	return s.testPlanRepo.Create(plan, req.TestSuiteIDs)
}

// UpdateTestPlan applies the fields present in the partial payload
func (s *TestPlanService) UpdateTestPlan(id string, projectID string, ownerID string, req dto.UpdateTestPlanRequest) (models.TestPlan, error) {
	if _, err := s.projectRepo.FindByID(projectID, ownerID); err != nil {
		return models.TestPlan{}, err
	}

	plan, err := s.testPlanRepo.FindByID(id, projectID)
	if err != nil {
		return models.TestPlan{}, err
	}

	if req.Name != nil {
		plan.Name = *req.Name
	}
	if req.Description != nil {
		plan.Description = *req.Description
	}
	if req.Status != nil {
		plan.Status = *req.Status
	}

	if err := s.testPlanRepo.Update(plan); err != nil {
		return models.TestPlan{}, err
	}

	return plan, nil
}

// DeleteTestPlan removes a test plan
func (s *TestPlanService) DeleteTestPlan(id string, projectID string, ownerID string) error {
	if _, err := s.projectRepo.FindByID(projectID, ownerID); err != nil {
		return err
	}
	return s.testPlanRepo.Delete(id, projectID)
}
