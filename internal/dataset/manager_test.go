package dataset

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alexanderramin/intray/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContent(t *testing.T) *domain.DatasetContent {
	t.Helper()
	created := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	task := domain.NewTask("Mount electrical socket")
	task.Tags = []string{"physical", "electrical"}
	task.Duration = "1h"
	task.CreatedAt = created
	res := domain.NewResource("Paint roller")
	res.Store = "Hardware store"
	res.CreatedAt = created
	ref := domain.NewReference("Wall paint color")
	ref.Content = "RAL 9010"
	ref.CreatedAt = created

	goal := domain.NewGoal("Renovate flat", "all rooms done")
	return &domain.DatasetContent{
		Goals: []*domain.Goal{goal},
		Projects: []*domain.Project{
			{
				ID: 1, Name: "Dining room", Status: domain.ProjectActive,
				GoalID: goal.ID, SortOrder: 1,
				Items: []domain.ProjectItem{task, res, ref},
			},
			{
				ID: 2, Name: "Groceries", Status: domain.ProjectActive,
				SortOrder: 2,
			},
		},
		Inbox: []string{"Buy milk", "Call plumber"},
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	m := NewManager(t.TempDir())
	content := testContent(t)

	require.NoError(t, m.Save("home", content))
	loaded, err := m.Load("home")
	require.NoError(t, err)

	assert.Equal(t, content.Goals, loaded.Goals)
	assert.Equal(t, content.Inbox, loaded.Inbox)
	require.Len(t, loaded.Projects, 2)
	// Save orders projects by (goal_id, sort_order); the goal-less
	// project sorts first.
	assert.Equal(t, content.Projects[1], loaded.Projects[0])
	assert.Equal(t, content.Projects[0], loaded.Projects[1])
}

func TestSave_Deterministic(t *testing.T) {
	content := testContent(t)
	dirA, dirB := t.TempDir(), t.TempDir()

	require.NoError(t, NewManager(dirA).Save("ds", content))
	require.NoError(t, NewManager(dirB).Save("ds", content))

	a, err := os.ReadFile(filepath.Join(dirA, "ds", "dataset.yaml"))
	require.NoError(t, err)
	b, err := os.ReadFile(filepath.Join(dirB, "ds", "dataset.yaml"))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSave_SortsProjectsByGoalThenSortOrder(t *testing.T) {
	m := NewManager(t.TempDir())
	content := &domain.DatasetContent{
		Projects: []*domain.Project{
			{ID: 1, Name: "zeta", GoalID: "g2", SortOrder: 1},
			{ID: 2, Name: "orphan-late", SortOrder: 9},
			{ID: 3, Name: "alpha", GoalID: "g1", SortOrder: 2},
			{ID: 4, Name: "orphan-early", SortOrder: 1},
		},
	}
	require.NoError(t, m.Save("ds", content))

	loaded, err := m.Load("ds")
	require.NoError(t, err)
	var names []string
	for _, p := range loaded.Projects {
		names = append(names, p.Name)
	}
	// Empty goal_id sorts before any goal id.
	assert.Equal(t, []string{"orphan-early", "orphan-late", "alpha", "zeta"}, names)
	// The in-memory aggregate keeps its original order.
	assert.Equal(t, "zeta", content.Projects[0].Name)
}

func TestLoad_Missing(t *testing.T) {
	m := NewManager(t.TempDir())
	_, err := m.Load("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoad_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	writeDataset(t, dir, "bad", "projects: [unclosed\n")
	_, err := NewManager(dir).Load("bad")
	assert.ErrorIs(t, err, ErrParse)
}

func TestLoad_UnknownItemKindFailsWithContext(t *testing.T) {
	dir := t.TempDir()
	writeDataset(t, dir, "bad", `
projects:
  - id: 1
    name: Workshop
    items:
      - kind: gadget
        id: x1
        name: thing
inbox_tasks: []
`)
	_, err := NewManager(dir).Load("bad")
	require.ErrorIs(t, err, ErrParse)
	assert.Contains(t, err.Error(), "project 0 (Workshop)")
}

func TestLoad_UnknownStatusNamesUnknownProject(t *testing.T) {
	dir := t.TempDir()
	writeDataset(t, dir, "bad", `
projects:
  - id: 1
    status: paused
inbox_tasks: []
`)
	_, err := NewManager(dir).Load("bad")
	require.ErrorIs(t, err, ErrParse)
	assert.Contains(t, err.Error(), "(Unknown)")
}

func TestLoad_LegacyListsMigrateToItemStream(t *testing.T) {
	dir := t.TempDir()
	writeDataset(t, dir, "legacy", `
projects:
  - id: 4
    name: Dining room
    status: ongoing
    tasks:
      - id: 13
        name: Mount electrical socket
        is_completed: true
        tags: [physical, electrical]
        notes: left wall
      - id: 14
        name: Retouch stencils
        is_completed: false
    resources:
      - id: res-1
        name: Wall paint
        is_acquired: false
        link: https://example.com/paint
    reference_items:
      - id: ref-1
        name: Color scheme
        description: RAL 9010 everywhere
inbox_tasks: []
`)
	loaded, err := NewManager(dir).Load("legacy")
	require.NoError(t, err)
	require.Len(t, loaded.Projects, 1)
	p := loaded.Projects[0]

	// Legacy "ongoing" becomes active; 2 tasks + 1 resource + 1 reference.
	assert.Equal(t, domain.ProjectActive, p.Status)
	require.Len(t, p.Items, 4)

	task, ok := p.Items[0].(*domain.Task)
	require.True(t, ok)
	assert.Equal(t, "13", task.ID)
	assert.True(t, task.Completed)
	assert.Equal(t, []string{"physical", "electrical"}, task.Tags)
	assert.Equal(t, "left wall", task.Notes)
	assert.Equal(t, domain.DurationUnknown, task.Duration)

	res, ok := p.Items[2].(*domain.Resource)
	require.True(t, ok)
	assert.Equal(t, "res-1", res.ID)
	assert.Equal(t, "General", res.Store)
	assert.Equal(t, "https://example.com/paint", res.Link)

	ref, ok := p.Items[3].(*domain.Reference)
	require.True(t, ok)
	assert.Equal(t, "RAL 9010 everywhere", ref.Content)
}

func TestLoad_ModernItemsFirstThenLegacyAppended(t *testing.T) {
	dir := t.TempDir()
	writeDataset(t, dir, "mixed", `
projects:
  - id: 1
    name: Mixed
    items:
      - kind: task
        id: a
        name: modern task
    tasks:
      - id: a
        name: legacy twin
inbox_tasks: []
`)
	loaded, err := NewManager(dir).Load("mixed")
	require.NoError(t, err)
	p := loaded.Projects[0]

	// No de-duplication: both survive, modern first.
	require.Len(t, p.Items, 2)
	assert.Equal(t, "modern task", p.Items[0].Base().Name)
	assert.Equal(t, "legacy twin", p.Items[1].Base().Name)
	assert.Equal(t, p.Items[0].Base().ID, p.Items[1].Base().ID)
}

func TestLoad_SortOrderDefaultsToProjectID(t *testing.T) {
	dir := t.TempDir()
	writeDataset(t, dir, "ds", `
projects:
  - id: 7
    name: No order
  - id: 2
    name: Explicit
    sort_order: 0.5
inbox_tasks: []
`)
	loaded, err := NewManager(dir).Load("ds")
	require.NoError(t, err)
	assert.Equal(t, 7.0, loaded.Projects[0].SortOrder)
	assert.Equal(t, 0.5, loaded.Projects[1].SortOrder)
}

func TestLoad_LegacyProjectMapping(t *testing.T) {
	dir := t.TempDir()
	writeDataset(t, dir, "old", `
projects:
  dining_room:
    id: 1
    name: Dining room
  groceries:
    id: 2
    name: Groceries
inbox_tasks:
  - Buy milk
`)
	loaded, err := NewManager(dir).Load("old")
	require.NoError(t, err)
	require.Len(t, loaded.Projects, 2)
	assert.Equal(t, "Dining room", loaded.Projects[0].Name)
	assert.Equal(t, []string{"Buy milk"}, loaded.Inbox)
}

func TestValidateName(t *testing.T) {
	assert.NoError(t, ValidateName("home_2026"))
	assert.ErrorIs(t, ValidateName(""), ErrValidation)
	assert.ErrorIs(t, ValidateName("has space"), ErrValidation)
	long := make([]byte, 51)
	for i := range long {
		long[i] = 'a'
	}
	assert.ErrorIs(t, ValidateName(string(long)), ErrValidation)
}

func TestListDatasets(t *testing.T) {
	dir := t.TempDir()
	m := NewManager(dir)
	names, err := m.ListDatasets()
	require.NoError(t, err)
	assert.Empty(t, names)

	require.NoError(t, m.Save("alpha", &domain.DatasetContent{}))
	require.NoError(t, m.Save("beta", &domain.DatasetContent{}))
	names, err = m.ListDatasets()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"alpha", "beta"}, names)
}

func writeDataset(t *testing.T, baseDir, name, doc string) {
	t.Helper()
	dir := filepath.Join(baseDir, name)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "dataset.yaml"), []byte(doc), 0o644))
}
