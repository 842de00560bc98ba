package repository

import (
	"errors"
	"testing"

	"github.com/alexanderramin/intray/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingStore counts saves so tests can assert the dirty-flag gating.
type recordingStore struct {
	content *domain.DatasetContent
	saves   int
	loadErr error
}

func (s *recordingStore) Load(name string) (*domain.DatasetContent, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	return s.content, nil
}

func (s *recordingStore) Save(name string, content *domain.DatasetContent) error {
	s.saves++
	return nil
}

func newTestRepo(t *testing.T) (*Repository, *recordingStore) {
	t.Helper()
	store := &recordingStore{}
	content := &domain.DatasetContent{
		Projects: []*domain.Project{
			{ID: 1, Name: "Groceries", Status: domain.ProjectActive, SortOrder: 1},
		},
	}
	return New(store, "test", content), store
}

func TestOpen_PropagatesLoadError(t *testing.T) {
	wantErr := errors.New("boom")
	_, err := Open(&recordingStore{loadErr: wantErr}, "test")
	assert.ErrorIs(t, err, wantErr)
}

func TestOpen_StartsClean(t *testing.T) {
	repo, _ := newTestRepo(t)
	assert.False(t, repo.Dirty())
}

func TestSave_NoopWhenClean(t *testing.T) {
	repo, store := newTestRepo(t)
	require.NoError(t, repo.Save())
	assert.Equal(t, 0, store.saves)
}

func TestSave_WhenDirtyThenClearsFlag(t *testing.T) {
	repo, store := newTestRepo(t)
	repo.MarkDirty()
	repo.MarkDirty() // idempotent

	require.NoError(t, repo.Save())
	assert.Equal(t, 1, store.saves)
	assert.False(t, repo.Dirty())

	require.NoError(t, repo.Save())
	assert.Equal(t, 1, store.saves)
}

func TestAddItem_AppendsAndIndexes(t *testing.T) {
	repo, _ := newTestRepo(t)
	task := domain.NewTask("Buy milk")

	require.NoError(t, repo.AddItem(1, task))
	assert.True(t, repo.Dirty())

	item, project := repo.FindItem(task.ID)
	require.NotNil(t, item)
	assert.Equal(t, "Buy milk", item.Base().Name)
	assert.Equal(t, 1, project.ID)
}

func TestAddItem_MissingProject(t *testing.T) {
	repo, _ := newTestRepo(t)
	err := repo.AddItem(99, domain.NewTask("x"))
	assert.ErrorIs(t, err, ErrNotFound)
	assert.False(t, repo.Dirty())
}

func TestFindItem_AbsentReturnsNil(t *testing.T) {
	repo, _ := newTestRepo(t)
	item, project := repo.FindItem("missing")
	assert.Nil(t, item)
	assert.Nil(t, project)
}

func TestCreateProject_AssignsNextIDAndSortOrder(t *testing.T) {
	repo, _ := newTestRepo(t)
	p := repo.CreateProject("Workshop")
	assert.Equal(t, 2, p.ID)
	assert.Equal(t, 2.0, p.SortOrder)
	assert.Equal(t, domain.ProjectActive, p.Status)
	assert.True(t, repo.Dirty())
	assert.Same(t, p, repo.FindProject(2))
}

func TestAssignGoal_ValidatesExistence(t *testing.T) {
	repo, _ := newTestRepo(t)
	goal := domain.NewGoal("Fit home", "")
	repo.AddGoal(goal)

	require.NoError(t, repo.AssignGoal(1, goal.ID))
	assert.Equal(t, goal.ID, repo.FindProject(1).GoalID)

	assert.ErrorIs(t, repo.AssignGoal(1, "dangling"), ErrNotFound)
	assert.ErrorIs(t, repo.AssignGoal(99, goal.ID), ErrNotFound)

	// Clearing the link needs no existence check.
	require.NoError(t, repo.AssignGoal(1, ""))
	assert.Equal(t, "", repo.FindProject(1).GoalID)
}

func TestIndexIntegrity_AfterMixedOperations(t *testing.T) {
	repo, _ := newTestRepo(t)
	p2 := repo.CreateProject("Workshop")

	items := []domain.ProjectItem{
		domain.NewTask("a"), domain.NewResource("b"), domain.NewReference("c"),
	}
	require.NoError(t, repo.AddItem(1, items[0]))
	require.NoError(t, repo.AddItem(p2.ID, items[1]))
	require.NoError(t, repo.AddItem(p2.ID, items[2]))

	seen := map[string]bool{}
	for _, p := range repo.Content().Projects {
		for _, item := range p.Items {
			id := item.Base().ID
			require.False(t, seen[id], "duplicate id %s", id)
			seen[id] = true

			found, owner := repo.FindItem(id)
			assert.Same(t, item, found)
			assert.Same(t, p, owner)
		}
	}
	assert.Len(t, seen, 3)
}

func TestReplaceContent_RebuildsIndexWholesale(t *testing.T) {
	repo, _ := newTestRepo(t)
	old := domain.NewTask("old")
	require.NoError(t, repo.AddItem(1, old))

	fresh := domain.NewTask("fresh")
	repo.ReplaceContent(&domain.DatasetContent{
		Projects: []*domain.Project{
			{ID: 5, Name: "Restored", Items: []domain.ProjectItem{fresh}},
		},
	})

	gone, _ := repo.FindItem(old.ID)
	assert.Nil(t, gone)
	found, owner := repo.FindItem(fresh.ID)
	require.NotNil(t, found)
	assert.Equal(t, 5, owner.ID)
	assert.True(t, repo.Dirty())
}
