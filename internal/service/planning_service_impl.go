package service

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/alexanderramin/intray/internal/domain"
	"github.com/alexanderramin/intray/internal/repository"
)

type planningService struct {
	repo *repository.Repository
}

// NewPlanningService creates a PlanningService over the repository.
func NewPlanningService(repo *repository.Repository) PlanningService {
	return &planningService{repo: repo}
}

func (s *planningService) CreateGoal(name, description string) *domain.Goal {
	goal := domain.NewGoal(name, description)
	s.repo.AddGoal(goal)
	return goal
}

func (s *planningService) Goals() []*domain.Goal {
	return s.repo.Content().Goals
}

func (s *planningService) ProjectsForGoal(goalID string) []*domain.Project {
	if goalID == "" {
		return nil
	}
	var projects []*domain.Project
	for _, p := range s.repo.Content().Projects {
		if p.GoalID == goalID {
			projects = append(projects, p)
		}
	}
	return projects
}

func (s *planningService) OrphanProjects() []*domain.Project {
	var projects []*domain.Project
	for _, p := range s.repo.Content().Projects {
		if p.GoalID == "" {
			projects = append(projects, p)
		}
	}
	return projects
}

func (s *planningService) AssignProjectToGoal(projectID int, goalID string) error {
	return s.repo.AssignGoal(projectID, goalID)
}

// MoveProject swaps the target's sort_order with its neighbor among
// siblings sharing the same goal (no goal is its own group). Only the
// two numeric keys are exchanged; untouched siblings keep their
// relative spacing.
func (s *planningService) MoveProject(projectID int, direction MoveDirection) {
	target := s.repo.FindProject(projectID)
	if target == nil {
		return
	}

	var siblings []*domain.Project
	for _, p := range s.repo.Content().Projects {
		if p.GoalID == target.GoalID {
			siblings = append(siblings, p)
		}
	}
	slices.SortStableFunc(siblings, func(a, b *domain.Project) int {
		return cmp.Compare(a.SortOrder, b.SortOrder)
	})

	pos := slices.Index(siblings, target)
	var neighbor *domain.Project
	switch direction {
	case MoveUp:
		if pos > 0 {
			neighbor = siblings[pos-1]
		}
	case MoveDown:
		if pos < len(siblings)-1 {
			neighbor = siblings[pos+1]
		}
	}
	if neighbor == nil {
		return
	}

	target.SortOrder, neighbor.SortOrder = neighbor.SortOrder, target.SortOrder
	s.repo.MarkDirty()
}

func (s *planningService) AddResource(projectID int, name string, resType domain.ResourceType, store string) (*domain.Resource, error) {
	if s.repo.FindProject(projectID) == nil {
		return nil, fmt.Errorf("%w: project %d", repository.ErrNotFound, projectID)
	}
	res := domain.NewResource(name)
	if resType != "" {
		res.Type = resType
	}
	if store != "" {
		res.Store = store
	}
	if err := s.repo.AddItem(projectID, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *planningService) AddReference(projectID int, name, content string) (*domain.Reference, error) {
	if s.repo.FindProject(projectID) == nil {
		return nil, fmt.Errorf("%w: project %d", repository.ErrNotFound, projectID)
	}
	ref := domain.NewReference(name)
	ref.Content = content
	if err := s.repo.AddItem(projectID, ref); err != nil {
		return nil, err
	}
	return ref, nil
}
