package services

import (
	"log"

	"github.com/superwise-ai/TestGenie/dto"
	"github.com/superwise-ai/TestGenie/models"
	"github.com/superwise-ai/TestGenie/repositories"
)

// TestCaseService handles business logic for test cases. Every operation
// re-derives the parent project by (id, owner_id) before touching the case.
type TestCaseService struct {
	testCaseRepo *repositories.TestCaseRepository
	projectRepo  *repositories.ProjectRepository
}

// NewTestCaseService creates a new test case service instance
func NewTestCaseService() *TestCaseService {
	return &TestCaseService{
		testCaseRepo: repositories.NewTestCaseRepository(),
		projectRepo:  repositories.NewProjectRepository(),
	}
}

// ListTestCases retrieves all test cases for a project the user owns
func (s *TestCaseService) ListTestCases(projectID string, ownerID string) ([]models.TestCase, error) {
	if _, err := s.projectRepo.FindByID(projectID, ownerID); err != nil {
		return nil, err
	}
	return s.testCaseRepo.FindByProject(projectID)
}

// GetTestCase retrieves a single test case, scoped to its project and owner
func (s *TestCaseService) GetTestCase(id string, projectID string, ownerID string) (models.TestCase, error) {
	if _, err := s.projectRepo.FindByID(projectID, ownerID); err != nil {
		return models.TestCase{}, err
	}
	return s.testCaseRepo.FindByID(id, projectID)
}

// CreateTestCase creates a test case with its ordered steps as one unit
func (s *TestCaseService) CreateTestCase(projectID string, req dto.CreateTestCaseRequest, creator models.User) (models.TestCase, error) {
	if _, err := s.projectRepo.FindByID(projectID, creator.ID); err != nil {
		return models.TestCase{}, err
	}

	testCase := models.TestCase{
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		Assignee:    req.Assignee,
		Reviewer:    req.Reviewer,
		Browsers:    req.Browsers,
		Environment: req.Environment,
		CreatedBy:   creator.FullName,
		ProjectID:   projectID,
		Steps:       buildSteps(req.Steps),
	}
	if testCase.Status == "" {
		testCase.Status = models.TestCaseDraft
	}
	if testCase.Priority == "" {
		testCase.Priority = models.PriorityMedium
	}
	if testCase.Browsers == nil {
		testCase.Browsers = []string{"chrome"}
	}

	created, err := s.testCaseRepo.Create(testCase)
	if err != nil {
		return models.TestCase{}, err
	}

	log.Printf("Test case created: id=%s name=%s project=%s", created.ID, created.Name, projectID)
	return created, nil
}

// UpdateTestCase applies the fields present in the partial payload. A
// present steps field replaces the whole step list; an absent one leaves
// the existing steps alone.
func (s *TestCaseService) UpdateTestCase(id string, projectID string, ownerID string, req dto.UpdateTestCaseRequest) (models.TestCase, error) {
	if _, err := s.projectRepo.FindByID(projectID, ownerID); err != nil {
		return models.TestCase{}, err
	}

	testCase, err := s.testCaseRepo.FindByID(id, projectID)
	if err != nil {
		return models.TestCase{}, err
	}

	if req.Name != nil {
		testCase.Name = *req.Name
	}
	if req.Description != nil {
		testCase.Description = *req.Description
	}
	if req.Status != nil {
		testCase.Status = *req.Status
	}
	if req.Priority != nil {
		testCase.Priority = *req.Priority
	}
	if req.Assignee != nil {
		testCase.Assignee = *req.Assignee
	}
	if req.Reviewer != nil {
		testCase.Reviewer = *req.Reviewer
	}
	if req.Browsers != nil {
		testCase.Browsers = *req.Browsers
	}
	if req.Environment != nil {
		testCase.Environment = *req.Environment
	}

	replaceSteps := req.Steps != nil
	if replaceSteps {
		testCase.Steps = buildSteps(*req.Steps)
	}

	return s.testCaseRepo.Update(testCase, replaceSteps)
}

// DeleteTestCase removes a test case and its steps
func (s *TestCaseService) DeleteTestCase(id string, projectID string, ownerID string) error {
	if _, err := s.projectRepo.FindByID(projectID, ownerID); err != nil {
		return err
	}
	return s.testCaseRepo.Delete(id, projectID)
}

// buildSteps maps step payloads to models, keeping the submitted order
func buildSteps(reqs []dto.TestStepRequest) []models.TestStep {
	steps := make([]models.TestStep, 0, len(reqs))
	for _, r := range reqs {
		steps = append(steps, models.TestStep{
			StepNumber:  r.StepNumber,
			Action:      r.Action,
			Element:     r.Element,
			Value:       r.Value,
			Description: r.Description,
		})
	}
	return steps
}
