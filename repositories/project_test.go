package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/superwise-ai/TestGenie/models"
)

func TestProjectCreateAssignsID(t *testing.T) {
	setupTestDB(t)

	project := seedProject(t, "1")
	assert.NotEmpty(t, project.ID)
	assert.Equal(t, "1", project.OwnerID)
}

func TestProjectFindByOwnerIsolation(t *testing.T) {
	setupTestDB(t)
	repo := NewProjectRepository()

	mine := seedProject(t, "1")
	seedProject(t, "2")

	projects, err := repo.FindByOwner("1")
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, mine.ID, projects[0].ID)
}

func TestProjectFindByIDWrongOwner(t *testing.T) {
	setupTestDB(t)
	repo := NewProjectRepository()

	project := seedProject(t, "1")

	_, err := repo.FindByID(project.ID, "2")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProjectUpdate(t *testing.T) {
	setupTestDB(t)
	repo := NewProjectRepository()

	project := seedProject(t, "1")
	project.Name = "Checkout v2"
	project.Status = models.ProjectWarning
	require.NoError(t, repo.Update(project))

	got, err := repo.FindByID(project.ID, "1")
	require.NoError(t, err)
	assert.Equal(t, "Checkout v2", got.Name)
	assert.Equal(t, models.ProjectWarning, got.Status)
}

func TestProjectDeleteWrongOwner(t *testing.T) {
	setupTestDB(t)
	repo := NewProjectRepository()

	project := seedProject(t, "1")
	assert.ErrorIs(t, repo.Delete(project.ID, "2"), ErrNotFound)

	_, err := repo.FindByID(project.ID, "1")
	assert.NoError(t, err)
}

func TestProjectDeleteCascades(t *testing.T) {
	setupTestDB(t)
	repo := NewProjectRepository()

	project := seedProject(t, "1")

	testCase, err := NewTestCaseRepository().Create(models.TestCase{
		Name:      "Login flow",
		Status:    models.TestCaseDraft,
		Priority:  models.PriorityMedium,
		CreatedBy: "Admin",
		ProjectID: project.ID,
		Steps: []models.TestStep{
			{StepNumber: 1, Action: "navigate", Value: "/login"},
			{StepNumber: 2, Action: "click", Element: "submit"},
		},
	})
	require.NoError(t, err)

	suite, err := NewTestSuiteRepository().Create(models.TestSuite{
		Name:      "Smoke",
		Status:    models.TestSuiteActive,
		CreatedBy: "Admin",
		ProjectID: project.ID,
	}, []string{testCase.ID})
	require.NoError(t, err)

	_, err = NewTestPlanRepository().Create(models.TestPlan{
		Name:      "Release 1.0",
		Status:    models.TestPlanDraft,
		CreatedBy: "Admin",
		ProjectID: project.ID,
	}, []string{suite.ID})
	require.NoError(t, err)

	_, err = NewElementRepository().Create(models.Element{
		Name:      "submit",
		Selector:  "#submit",
		CreatedBy: "Admin",
		ProjectID: project.ID,
	})
	require.NoError(t, err)

	_, err = NewTestDataRepository().Create(models.TestData{
		Name:      "users",
		CreatedBy: "Admin",
		ProjectID: project.ID,
	})
	require.NoError(t, err)

	_, err = NewEnvironmentRepository().Create(models.Environment{
		Name:      "staging",
		CreatedBy: "Admin",
		ProjectID: project.ID,
	})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(project.ID, "1"))

	assert.EqualValues(t, 0, countRows(t, &models.Project{}))
	assert.EqualValues(t, 0, countRows(t, &models.TestCase{}))
	assert.EqualValues(t, 0, countRows(t, &models.TestStep{}))
	assert.EqualValues(t, 0, countRows(t, &models.TestSuite{}))
	assert.EqualValues(t, 0, countRows(t, &models.TestSuiteTestCase{}))
	assert.EqualValues(t, 0, countRows(t, &models.TestPlan{}))
	assert.EqualValues(t, 0, countRows(t, &models.TestPlanTestSuite{}))
	assert.EqualValues(t, 0, countRows(t, &models.Element{}))
	assert.EqualValues(t, 0, countRows(t, &models.TestData{}))
	assert.EqualValues(t, 0, countRows(t, &models.Environment{}))
}

func TestProjectDeleteLeavesOtherProjectsAlone(t *testing.T) {
	setupTestDB(t)
	repo := NewProjectRepository()

	doomed := seedProject(t, "1")
	kept := seedProject(t, "1")

	_, err := NewTestCaseRepository().Create(models.TestCase{
		Name:      "Survivor",
		Status:    models.TestCaseDraft,
		Priority:  models.PriorityMedium,
		CreatedBy: "Admin",
		ProjectID: kept.ID,
		Steps:     []models.TestStep{{StepNumber: 1, Action: "navigate"}},
	})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(doomed.ID, "1"))

	assert.EqualValues(t, 1, countRows(t, &models.Project{}))
	assert.EqualValues(t, 1, countRows(t, &models.TestCase{}))
	assert.EqualValues(t, 1, countRows(t, &models.TestStep{}))
}
