package repository

import (
	"fmt"

	"github.com/alexanderramin/intray/internal/domain"
)

// indexEntry locates an item and the project owning it.
type indexEntry struct {
	project *domain.Project
	item    domain.ProjectItem
}

// Repository owns the one loaded DatasetContent for its process
// lifetime. It keeps an item-id index alongside the aggregate and a
// dirty flag gating Save. All mutation goes through its methods so the
// index never diverges from the item streams.
type Repository struct {
	name    string
	store   Store
	content *domain.DatasetContent
	index   map[string]indexEntry
	dirty   bool
}

// Open loads the named dataset from the store and builds the index.
func Open(store Store, name string) (*Repository, error) {
	content, err := store.Load(name)
	if err != nil {
		return nil, err
	}
	r := &Repository{name: name, store: store, content: content}
	r.rebuildIndex()
	return r, nil
}

// New wraps an already-constructed aggregate, for fresh datasets and
// tests.
func New(store Store, name string, content *domain.DatasetContent) *Repository {
	r := &Repository{name: name, store: store, content: content}
	r.rebuildIndex()
	return r
}

// Content exposes the aggregate for read-side operations. Mutation must
// go through Repository methods.
func (r *Repository) Content() *domain.DatasetContent {
	return r.content
}

// Name returns the dataset name this repository persists under.
func (r *Repository) Name() string {
	return r.name
}

// Dirty reports whether unsaved mutations exist.
func (r *Repository) Dirty() bool {
	return r.dirty
}

// MarkDirty flags unsaved mutations. Idempotent.
func (r *Repository) MarkDirty() {
	r.dirty = true
}

// Save persists the aggregate if dirty and clears the flag. A clean
// repository saves nothing.
func (r *Repository) Save() error {
	if !r.dirty {
		return nil
	}
	if err := r.store.Save(r.name, r.content); err != nil {
		return err
	}
	r.dirty = false
	return nil
}

// FindProject returns the project with the given id, or nil.
func (r *Repository) FindProject(id int) *domain.Project {
	return r.content.FindProject(id)
}

// FindProjectByName returns the first exact-name match, or nil.
func (r *Repository) FindProjectByName(name string) *domain.Project {
	return r.content.FindProjectByName(name)
}

// FindItem resolves an item id to the item and its owning project.
// Returns (nil, nil) when absent.
func (r *Repository) FindItem(id string) (domain.ProjectItem, *domain.Project) {
	entry, ok := r.index[id]
	if !ok {
		return nil, nil
	}
	return entry.item, entry.project
}

// AddItem appends an item to a project's stream and registers it in the
// index as one atomic step, then marks dirty. This is the only append
// path, so index and content cannot drift.
func (r *Repository) AddItem(projectID int, item domain.ProjectItem) error {
	project := r.content.FindProject(projectID)
	if project == nil {
		return fmt.Errorf("%w: project %d", ErrNotFound, projectID)
	}
	project.Items = append(project.Items, item)
	r.index[item.Base().ID] = indexEntry{project: project, item: item}
	r.dirty = true
	return nil
}

// CreateProject appends a new active project with the next integer id
// and sort order float64(id), and returns it.
func (r *Repository) CreateProject(name string) *domain.Project {
	id := r.content.NextProjectID()
	project := &domain.Project{
		ID:        id,
		Name:      name,
		Status:    domain.ProjectActive,
		SortOrder: float64(id),
	}
	r.content.Projects = append(r.content.Projects, project)
	r.dirty = true
	return project
}

// AddGoal appends a goal and marks dirty.
func (r *Repository) AddGoal(goal *domain.Goal) {
	r.content.Goals = append(r.content.Goals, goal)
	r.dirty = true
}

// AssignGoal links a project to a goal after checking both exist. The
// link is weak: an empty goalID clears it.
func (r *Repository) AssignGoal(projectID int, goalID string) error {
	project := r.content.FindProject(projectID)
	if project == nil {
		return fmt.Errorf("%w: project %d", ErrNotFound, projectID)
	}
	if goalID != "" && r.content.FindGoal(goalID) == nil {
		return fmt.Errorf("%w: goal %q", ErrNotFound, goalID)
	}
	project.GoalID = goalID
	r.dirty = true
	return nil
}

// ReplaceContent swaps in a new aggregate wholesale (e.g. after a
// snapshot restore) and rebuilds the index from scratch. Incremental
// updates are not enough in that case.
func (r *Repository) ReplaceContent(content *domain.DatasetContent) {
	r.content = content
	r.rebuildIndex()
	r.dirty = true
}

func (r *Repository) rebuildIndex() {
	r.index = make(map[string]indexEntry)
	for _, p := range r.content.Projects {
		for _, item := range p.Items {
			r.index[item.Base().ID] = indexEntry{project: p, item: item}
		}
	}
}
