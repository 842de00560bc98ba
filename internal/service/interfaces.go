package service

import (
	"errors"

	"github.com/alexanderramin/intray/internal/domain"
)

// ErrTargetNotFound indicates a draft could not be resolved to a target
// project: the suggested project is absent, it is not a reserved bucket,
// and no override was given.
var ErrTargetNotFound = errors.New("target project not found")

// ReservedBuckets are system project names that are auto-created when a
// classification suggests them and they do not exist yet.
var ReservedBuckets = []string{"General", "Someday/Maybe", "Inbox"}

// TriageService owns the inbox and the draft propose/commit workflow.
// Per inbox item the conceptual lifecycle is
// Captured -> Proposed -> {Committed, Skipped, Deleted}.
type TriageService interface {
	InboxItems() []string
	AddToInbox(text string)

	// CreateDraft pairs captured text with a classification outcome.
	// Pure construction; no aggregate side effects.
	CreateDraft(text string, classification domain.Classification) *domain.DraftItem

	// ApplyDraft commits a draft: resolves the target project (override
	// wins, then exact suggested-name match, then reserved-bucket
	// auto-create), converts the draft to an entity, appends and
	// registers it, and removes the captured text from the inbox if
	// still present.
	ApplyDraft(draft *domain.DraftItem, overrideProjectID *int) (domain.ProjectItem, error)

	// CreateProjectFromDraft creates a new project and applies the
	// draft to it.
	CreateProjectFromDraft(draft *domain.DraftItem, newProjectName string) (*domain.Project, error)

	// SkipInboxItem rotates the item from the front to the back of the
	// inbox. Tolerant no-op when absent.
	SkipInboxItem(text string)

	// DeleteInboxItem removes the captured text permanently. The only
	// path that discards input with no trace.
	DeleteInboxItem(text string)

	// MoveInboxItemToProject bypasses classification and files the text
	// as a plain task.
	MoveInboxItemToProject(text string, projectID int, tags []string) error

	// AllTags returns the union of tags across every item in every
	// project. Order is not significant.
	AllTags() []string
}

// PlanningService covers goal hierarchy and project ordering.
type PlanningService interface {
	CreateGoal(name, description string) *domain.Goal
	Goals() []*domain.Goal
	ProjectsForGoal(goalID string) []*domain.Project
	OrphanProjects() []*domain.Project
	AssignProjectToGoal(projectID int, goalID string) error

	// MoveProject swaps sort_order with the neighboring sibling in the
	// given direction. No-op at the edges or when the project is
	// missing.
	MoveProject(projectID int, direction MoveDirection)

	AddResource(projectID int, name string, resType domain.ResourceType, store string) (*domain.Resource, error)
	AddReference(projectID int, name, content string) (*domain.Reference, error)
}

// MoveDirection selects a reordering direction for MoveProject.
type MoveDirection string

const (
	MoveUp   MoveDirection = "up"
	MoveDown MoveDirection = "down"
)

// ShoppingEntry pairs an unacquired resource with its owning project's
// name for display.
type ShoppingEntry struct {
	Resource    *domain.Resource
	ProjectName string
}

// ExecutionService covers item lifecycle and read-side aggregations.
type ExecutionService interface {
	// CompleteItem toggles completion polymorphically: tasks flip their
	// completion flag, resources their acquisition flag; other variants
	// are a logged no-op.
	CompleteItem(itemID string) error

	// ToggleResourceStatus sets acquisition on a resource; fails with
	// domain.ErrWrongVariant for any other kind.
	ToggleResourceStatus(itemID string, acquired bool) error

	// ShoppingList groups unacquired to-buy resources of non-completed
	// projects by store. Order within a group follows item stream order.
	ShoppingList() map[string][]ShoppingEntry

	// NextActions lists incomplete tasks of active projects, optionally
	// narrowed to those carrying the given tag.
	NextActions(tag string) []*domain.Task
}
