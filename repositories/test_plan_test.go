package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/superwise-ai/TestGenie/models"
)

func seedTestSuite(t *testing.T, projectID string, caseIDs []string) models.TestSuite {
	t.Helper()

	suite, err := NewTestSuiteRepository().Create(models.TestSuite{
		Name:      "Smoke",
		Status:    models.TestSuiteActive,
		CreatedBy: "Admin",
		ProjectID: projectID,
	}, caseIDs)
	require.NoError(t, err)
	return suite
}

func TestTestPlanCreateWithSuites(t *testing.T) {
	setupTestDB(t)
	repo := NewTestPlanRepository()

	project := seedProject(t, "1")
	testCase := seedTestCase(t, project.ID, []models.TestStep{{StepNumber: 1, Action: "navigate"}})
	suite := seedTestSuite(t, project.ID, []string{testCase.ID})

	plan, err := repo.Create(models.TestPlan{
		Name:      "Release 1.0",
		Status:    models.TestPlanDraft,
		CreatedBy: "Admin",
		ProjectID: project.ID,
	}, []string{suite.ID})
	require.NoError(t, err)

	assert.NotEmpty(t, plan.ID)
	require.Len(t, plan.TestSuites, 1)
	require.Len(t, plan.TestSuites[0].TestCases, 1)
	assert.Equal(t, testCase.ID, plan.TestSuites[0].TestCases[0].ID)
}

func TestTestPlanFindByIDWrongProject(t *testing.T) {
	setupTestDB(t)
	repo := NewTestPlanRepository()

	project := seedProject(t, "1")
	other := seedProject(t, "1")

	plan, err := repo.Create(models.TestPlan{
		Name:      "Release 1.0",
		Status:    models.TestPlanDraft,
		CreatedBy: "Admin",
		ProjectID: project.ID,
	}, nil)
	require.NoError(t, err)

	_, err = repo.FindByID(plan.ID, other.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTestPlanUpdate(t *testing.T) {
	setupTestDB(t)
	repo := NewTestPlanRepository()

	project := seedProject(t, "1")
	plan, err := repo.Create(models.TestPlan{
		Name:      "Release 1.0",
		Status:    models.TestPlanDraft,
		CreatedBy: "Admin",
		ProjectID: project.ID,
	}, nil)
	require.NoError(t, err)

	plan.Status = models.TestPlanActive
	plan.TestSuites = nil
	require.NoError(t, repo.Update(plan))

	got, err := repo.FindByID(plan.ID, project.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TestPlanActive, got.Status)
}

func TestTestPlanDeleteKeepsJoinRows(t *testing.T) {
	setupTestDB(t)
	repo := NewTestPlanRepository()

	project := seedProject(t, "1")
	suite := seedTestSuite(t, project.ID, nil)

	plan, err := repo.Create(models.TestPlan{
		Name:      "Release 1.0",
		Status:    models.TestPlanDraft,
		CreatedBy: "Admin",
		ProjectID: project.ID,
	}, []string{suite.ID})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(plan.ID, project.ID))
	assert.ErrorIs(t, repo.Delete(plan.ID, project.ID), ErrNotFound)
	assert.EqualValues(t, 1, countRows(t, &models.TestPlanTestSuite{}))
}
