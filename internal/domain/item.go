package domain

import (
	"time"

	"github.com/google/uuid"
)

// ItemBase carries the fields shared by every project item variant.
type ItemBase struct {
	ID        string
	Name      string
	Notes     string
	Tags      []string
	CreatedAt time.Time
}

// ProjectItem is the closed set of things a project stream can hold.
// The only implementations are *Task, *Resource and *Reference; code
// branching on the variant should type-switch over exactly those three.
type ProjectItem interface {
	Kind() ItemKind
	Base() *ItemBase

	isProjectItem()
}

// Task is a unit of work inside a project.
type Task struct {
	ItemBase
	Completed   bool
	Duration    string
	DueDate     *time.Time
	CompletedAt *time.Time
}

// Resource is something to buy or gather before work can happen.
type Resource struct {
	ItemBase
	Acquired bool
	Store    string
	Type     ResourceType
	Link     string
}

// Reference is a free-text note kept with a project.
type Reference struct {
	ItemBase
	Content string
}

func (t *Task) Kind() ItemKind      { return KindTask }
func (r *Resource) Kind() ItemKind  { return KindResource }
func (r *Reference) Kind() ItemKind { return KindReference }

func (t *Task) Base() *ItemBase      { return &t.ItemBase }
func (r *Resource) Base() *ItemBase  { return &r.ItemBase }
func (r *Reference) Base() *ItemBase { return &r.ItemBase }

func (*Task) isProjectItem()      {}
func (*Resource) isProjectItem()  {}
func (*Reference) isProjectItem() {}

func newItemBase(name string) ItemBase {
	return ItemBase{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
}

// NewTask creates a task with a generated id, not completed, duration "unknown".
func NewTask(name string) *Task {
	return &Task{
		ItemBase: newItemBase(name),
		Duration: DurationUnknown,
	}
}

// NewResource creates a resource with a generated id, store "General",
// type to_buy, not acquired.
func NewResource(name string) *Resource {
	return &Resource{
		ItemBase: newItemBase(name),
		Store:    "General",
		Type:     ResourceToBuy,
	}
}

// NewReference creates a reference with a generated id and empty content.
func NewReference(name string) *Reference {
	return &Reference{
		ItemBase: newItemBase(name),
	}
}
