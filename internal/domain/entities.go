package domain

import "github.com/google/uuid"

// Goal is a top-level aspiration grouping zero or more projects.
type Goal struct {
	ID          string
	Name        string
	Description string
	Status      GoalStatus
	// Domain selects which downstream label vocabulary applies
	// (e.g. "renovation", "study"). Optional.
	Domain string
}

// NewGoal creates an active goal with a generated id.
func NewGoal(name, description string) *Goal {
	return &Goal{
		ID:          uuid.New().String(),
		Name:        name,
		Description: description,
		Status:      GoalActive,
	}
}

// Project is a named container holding an ordered stream of items.
// GoalID is a weak reference: a link, not ownership. SortOrder orders a
// project only relative to siblings sharing the same GoalID.
type Project struct {
	ID          int
	Name        string
	Description string
	Status      ProjectStatus
	GoalID      string // empty means no goal
	SortOrder   float64
	Items       []ProjectItem
}

// DatasetContent is the aggregate root: goals, projects and the raw
// inbox. Inbox elements are plain captured text, not entities, until
// triaged. Item ids are unique across the entire dataset.
type DatasetContent struct {
	Goals    []*Goal
	Projects []*Project
	Inbox    []string
}

// FindProject returns the first project with the given id, or nil.
func (c *DatasetContent) FindProject(id int) *Project {
	for _, p := range c.Projects {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// FindProjectByName returns the first project whose name matches exactly
// (case-sensitive), or nil.
func (c *DatasetContent) FindProjectByName(name string) *Project {
	for _, p := range c.Projects {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// FindGoal returns the goal with the given id, or nil.
func (c *DatasetContent) FindGoal(id string) *Goal {
	for _, g := range c.Goals {
		if g.ID == id {
			return g
		}
	}
	return nil
}

// NextProjectID returns max(existing ids)+1, starting at 1 for an empty
// dataset.
func (c *DatasetContent) NextProjectID() int {
	maxID := 0
	for _, p := range c.Projects {
		if p.ID > maxID {
			maxID = p.ID
		}
	}
	return maxID + 1
}
