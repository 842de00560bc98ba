package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/intray/internal/domain"
	"github.com/alexanderramin/intray/internal/repository"
)

// memStore is a Store fake keeping datasets in memory.
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

func newTestRepo(t *testing.T) *repository.Repository {
	t.Helper()
	return repository.New(newMemStore(), "test", &domain.DatasetContent{})
}

func TestTriage_CaptureAndCommit(t *testing.T) {
	repo := newTestRepo(t)
	groceries := repo.CreateProject("Groceries")
	svc := NewTriageService(repo)

	svc.AddToInbox("Buy milk")
	draft := svc.CreateDraft("Buy milk", domain.Classification{
		Category:         domain.CategoryShopping,
		SuggestedProject: "Groceries",
		RefinedName:      "Milk",
	})

	item, err := svc.ApplyDraft(draft, nil)
	require.NoError(t, err)

	res, ok := item.(*domain.Resource)
	require.True(t, ok)
	assert.Equal(t, "Milk", res.Name)
	assert.Equal(t, "General", res.Store)
	assert.Equal(t, domain.ResourceToBuy, res.Type)

	assert.Empty(t, svc.InboxItems())
	assert.Len(t, groceries.Items, 1)
	assert.True(t, repo.Dirty())
}

func TestTriage_ReservedBucketAutoCreated(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewTriageService(repo)

	draft := svc.CreateDraft("Sharpen chisels", domain.Classification{
		Category:         domain.CategoryTask,
		SuggestedProject: "General",
	})

	item, err := svc.ApplyDraft(draft, nil)
	require.NoError(t, err)

	created := repo.FindProjectByName("General")
	require.NotNil(t, created)
	assert.Equal(t, domain.ProjectActive, created.Status)
	assert.Len(t, created.Items, 1)
	assert.Equal(t, item, created.Items[0])
}

func TestTriage_UnmatchedSuggestionFails(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewTriageService(repo)
	svc.AddToInbox("Fix leaky tap")

	draft := svc.CreateDraft("Fix leaky tap", domain.Classification{
		Category:         domain.CategoryTask,
		SuggestedProject: "Plumbing",
	})

	_, err := svc.ApplyDraft(draft, nil)
	require.ErrorIs(t, err, ErrTargetNotFound)

	// The failed commit leaves the inbox untouched.
	assert.Equal(t, []string{"Fix leaky tap"}, svc.InboxItems())
}

func TestTriage_OverrideWinsOverSuggestion(t *testing.T) {
	repo := newTestRepo(t)
	repo.CreateProject("Workshop")
	other := repo.CreateProject("Garden")
	svc := NewTriageService(repo)

	draft := svc.CreateDraft("Order seeds", domain.Classification{
		Category:         domain.CategoryTask,
		SuggestedProject: "Workshop",
	})

	_, err := svc.ApplyDraft(draft, &other.ID)
	require.NoError(t, err)
	assert.Len(t, other.Items, 1)
	assert.Empty(t, repo.FindProjectByName("Workshop").Items)
}

func TestTriage_OverrideMissingProject(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewTriageService(repo)

	draft := svc.CreateDraft("x", domain.Classification{Category: domain.CategoryTask})
	missing := 99
	_, err := svc.ApplyDraft(draft, &missing)
	require.ErrorIs(t, err, ErrTargetNotFound)
}

func TestTriage_IncubateMapping(t *testing.T) {
	repo := newTestRepo(t)
	repo.CreateProject("Someday/Maybe")
	svc := NewTriageService(repo)

	draft := svc.CreateDraft("Learn woodturning", domain.Classification{
		Category:          domain.CategoryIncubate,
		SuggestedProject:  "Someday/Maybe",
		ExtractedTags:     []string{"hobby"},
		EstimatedDuration: "2h",
		Notes:             "Mentioned a local class.",
	})

	item, err := svc.ApplyDraft(draft, nil)
	require.NoError(t, err)

	task, ok := item.(*domain.Task)
	require.True(t, ok)
	assert.Equal(t, []string{"someday", "hobby"}, task.Tags)
	assert.Equal(t, domain.DurationUnknown, task.Duration)
	assert.Equal(t, "Incubated from Triage. Mentioned a local class.", task.Notes)
}

func TestTriage_ReferenceUsesNotesThenText(t *testing.T) {
	repo := newTestRepo(t)
	repo.CreateProject("Reading")
	svc := NewTriageService(repo)

	draft := svc.CreateDraft("https://example.com/article", domain.Classification{
		Category:         domain.CategoryReference,
		SuggestedProject: "Reading",
		RefinedName:      "Joinery article",
	})
	item, err := svc.ApplyDraft(draft, nil)
	require.NoError(t, err)

	ref, ok := item.(*domain.Reference)
	require.True(t, ok)
	assert.Equal(t, "https://example.com/article", ref.Content)
}

func TestTriage_CreateProjectFromDraft(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewTriageService(repo)
	svc.AddToInbox("Plan garden beds")

	draft := svc.CreateDraft("Plan garden beds", domain.Classification{
		Category:                domain.CategoryTask,
		SuggestedNewProjectName: "Garden 2027",
	})

	project, err := svc.CreateProjectFromDraft(draft, "Garden 2027")
	require.NoError(t, err)
	assert.Equal(t, "Garden 2027", project.Name)
	assert.Len(t, project.Items, 1)
	assert.Empty(t, svc.InboxItems())
}

func TestTriage_SkipRotatesToBack(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewTriageService(repo)
	svc.AddToInbox("a")
	svc.AddToInbox("b")
	svc.AddToInbox("c")

	svc.SkipInboxItem("a")
	assert.Equal(t, []string{"b", "c", "a"}, svc.InboxItems())

	// Skipping something not in the inbox changes nothing.
	svc.SkipInboxItem("zzz")
	assert.Equal(t, []string{"b", "c", "a"}, svc.InboxItems())
}

func TestTriage_DeleteDiscardsWithoutTrace(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewTriageService(repo)
	svc.AddToInbox("spam")

	svc.DeleteInboxItem("spam")

	assert.Empty(t, svc.InboxItems())
	for _, p := range repo.Content().Projects {
		assert.Empty(t, p.Items)
	}
}

func TestTriage_MoveInboxItemToProject(t *testing.T) {
	repo := newTestRepo(t)
	project := repo.CreateProject("Workshop")
	svc := NewTriageService(repo)
	svc.AddToInbox("Oil the lathe")

	err := svc.MoveInboxItemToProject("Oil the lathe", project.ID, []string{"physical"})
	require.NoError(t, err)

	require.Len(t, project.Items, 1)
	task, ok := project.Items[0].(*domain.Task)
	require.True(t, ok)
	assert.Equal(t, "Oil the lathe", task.Name)
	assert.Equal(t, []string{"physical"}, task.Tags)
	assert.Empty(t, svc.InboxItems())

	err = svc.MoveInboxItemToProject("x", 99, nil)
	require.ErrorIs(t, err, ErrTargetNotFound)
}

func TestTriage_AllTags(t *testing.T) {
	repo := newTestRepo(t)
	p := repo.CreateProject("Workshop")
	t1 := domain.NewTask("a")
	t1.Tags = []string{"physical", "buy"}
	t2 := domain.NewTask("b")
	t2.Tags = []string{"buy", "digital"}
	require.NoError(t, repo.AddItem(p.ID, t1))
	require.NoError(t, repo.AddItem(p.ID, t2))

	svc := NewTriageService(repo)
	assert.ElementsMatch(t, []string{"physical", "buy", "digital"}, svc.AllTags())
}
