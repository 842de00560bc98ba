package snapshot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/intray/internal/domain"
	"github.com/alexanderramin/intray/internal/repository"
)

type memStore struct {
	saved map[string]*domain.DatasetContent
}

func newMemStore() *memStore {
	return &memStore{saved: make(map[string]*domain.DatasetContent)}
}

func (m *memStore) Load(name string) (*domain.DatasetContent, error) {
	if c, ok := m.saved[name]; ok {
		return c, nil
	}
	return &domain.DatasetContent{}, nil
}

func (m *memStore) Save(name string, content *domain.DatasetContent) error {
	m.saved[name] = content
	return nil
}

func seedRepo(t *testing.T) *repository.Repository {
	t.Helper()
	repo := repository.New(newMemStore(), "test", &domain.DatasetContent{})

	goal := domain.NewGoal("Finish workshop", "bench and storage")
	repo.AddGoal(goal)

	project := repo.CreateProject("Workbench")
	require.NoError(t, repo.AssignGoal(project.ID, goal.ID))

	task := domain.NewTask("Cut legs")
	task.Tags = []string{"physical"}
	task.Duration = "2h"
	due := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	task.DueDate = &due
	require.NoError(t, repo.AddItem(project.ID, task))

	res := domain.NewResource("Oak boards")
	res.Store = "Lumber yard"
	res.Link = "https://example.com/oak"
	require.NoError(t, repo.AddItem(project.ID, res))

	ref := domain.NewReference("Plans")
	ref.Content = "https://example.com/plans"
	require.NoError(t, repo.AddItem(project.ID, ref))

	repo.Content().Inbox = append(repo.Content().Inbox, "Buy milk")
	return repo
}

func TestSnapshot_ExportIsDeterministic(t *testing.T) {
	repo := seedRepo(t)
	svc := NewService(repo)

	first, err := svc.Export()
	require.NoError(t, err)
	second, err := svc.Export()
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Contains(t, first, `"kind": "task"`)
	assert.Contains(t, first, `"inbox_tasks"`)
}

func TestSnapshot_RoundTrip(t *testing.T) {
	repo := seedRepo(t)
	svc := NewService(repo)

	exported, err := svc.Export()
	require.NoError(t, err)

	fresh := repository.New(newMemStore(), "restored", &domain.DatasetContent{})
	require.NoError(t, NewService(fresh).Restore([]byte(exported)))

	original := repo.Content()
	restored := fresh.Content()

	require.Len(t, restored.Goals, 1)
	assert.Equal(t, original.Goals[0].ID, restored.Goals[0].ID)
	assert.Equal(t, original.Goals[0].Name, restored.Goals[0].Name)

	require.Len(t, restored.Projects, 1)
	rp := restored.Projects[0]
	op := original.Projects[0]
	assert.Equal(t, op.ID, rp.ID)
	assert.Equal(t, op.GoalID, rp.GoalID)
	assert.Equal(t, op.SortOrder, rp.SortOrder)

	require.Len(t, rp.Items, 3)
	task, ok := rp.Items[0].(*domain.Task)
	require.True(t, ok)
	assert.Equal(t, "Cut legs", task.Name)
	assert.Equal(t, "2h", task.Duration)
	require.NotNil(t, task.DueDate)
	assert.Equal(t, time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), *task.DueDate)

	res, ok := rp.Items[1].(*domain.Resource)
	require.True(t, ok)
	assert.Equal(t, "Lumber yard", res.Store)
	assert.Equal(t, domain.ResourceToBuy, res.Type)

	ref, ok := rp.Items[2].(*domain.Reference)
	require.True(t, ok)
	assert.Equal(t, "https://example.com/plans", ref.Content)

	assert.Equal(t, []string{"Buy milk"}, restored.Inbox)

	// Restored items are immediately findable through the index.
	found, owner := fresh.FindItem(task.ID)
	assert.Equal(t, task, found)
	assert.Equal(t, rp, owner)
	assert.True(t, fresh.Dirty())
}

func TestSnapshot_RestoreToleratesMissingFields(t *testing.T) {
	raw := `{
	  "goals": [{"name": "Fitness"}],
	  "projects": [{
	    "id": 1,
	    "name": "Running",
	    "status": "bogus",
	    "items": [{"kind": "task", "name": "Jog"}, {"kind": "resource", "name": "Shoes"}]
	  }],
	  "inbox_tasks": ["stretch"]
	}`

	repo := repository.New(newMemStore(), "test", &domain.DatasetContent{})
	require.NoError(t, NewService(repo).Restore([]byte(raw)))

	content := repo.Content()
	assert.NotEmpty(t, content.Goals[0].ID)
	assert.Equal(t, domain.GoalActive, content.Goals[0].Status)

	project := content.Projects[0]
	assert.Equal(t, domain.ProjectActive, project.Status)

	task := project.Items[0].(*domain.Task)
	assert.NotEmpty(t, task.ID)
	assert.Equal(t, domain.DurationUnknown, task.Duration)
	assert.False(t, task.CreatedAt.IsZero())

	res := project.Items[1].(*domain.Resource)
	assert.Equal(t, "General", res.Store)
	assert.Equal(t, domain.ResourceToBuy, res.Type)
}

func TestSnapshot_RestoreRejectsBadInput(t *testing.T) {
	repo := repository.New(newMemStore(), "test", &domain.DatasetContent{})
	svc := NewService(repo)

	require.Error(t, svc.Restore([]byte("not json")))

	bad := `{"projects": [{"id": 1, "name": "p", "items": [{"kind": "widget", "name": "x"}]}]}`
	err := svc.Restore([]byte(bad))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown item kind")
}
