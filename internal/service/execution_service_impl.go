package service

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/alexanderramin/intray/internal/domain"
	"github.com/alexanderramin/intray/internal/repository"
)

type executionService struct {
	repo *repository.Repository
}

// NewExecutionService creates an ExecutionService over the repository.
func NewExecutionService(repo *repository.Repository) ExecutionService {
	return &executionService{repo: repo}
}

func (s *executionService) CompleteItem(itemID string) error {
	item, _ := s.repo.FindItem(itemID)
	if item == nil {
		return fmt.Errorf("%w: item %s", repository.ErrNotFound, itemID)
	}

	switch it := item.(type) {
	case *domain.Task:
		it.Completed = !it.Completed
		if it.Completed {
			now := time.Now().UTC()
			it.CompletedAt = &now
		} else {
			it.CompletedAt = nil
		}
	case *domain.Resource:
		it.Acquired = !it.Acquired
	default:
		slog.Debug("completion toggle has no effect", "item_id", itemID, "kind", item.Kind())
		return nil
	}

	s.repo.MarkDirty()
	return nil
}

func (s *executionService) ToggleResourceStatus(itemID string, acquired bool) error {
	item, _ := s.repo.FindItem(itemID)
	if item == nil {
		return fmt.Errorf("%w: item %s", repository.ErrNotFound, itemID)
	}
	res, ok := item.(*domain.Resource)
	if !ok {
		return fmt.Errorf("%w: item %s is a %s, not a resource", domain.ErrWrongVariant, itemID, item.Kind())
	}
	if res.Acquired != acquired {
		res.Acquired = acquired
		s.repo.MarkDirty()
	}
	return nil
}

func (s *executionService) ShoppingList() map[string][]ShoppingEntry {
	list := make(map[string][]ShoppingEntry)
	for _, p := range s.repo.Content().Projects {
		if p.Status == domain.ProjectCompleted {
			continue
		}
		for _, item := range p.Items {
			res, ok := item.(*domain.Resource)
			if !ok || res.Acquired || res.Type != domain.ResourceToBuy {
				continue
			}
			store := res.Store
			if store == "" {
				store = "General"
			}
			list[store] = append(list[store], ShoppingEntry{Resource: res, ProjectName: p.Name})
		}
	}
	return list
}

func (s *executionService) NextActions(tag string) []*domain.Task {
	var tasks []*domain.Task
	for _, p := range s.repo.Content().Projects {
		if p.Status != domain.ProjectActive {
			continue
		}
		for _, item := range p.Items {
			task, ok := item.(*domain.Task)
			if !ok || task.Completed {
				continue
			}
			if tag != "" && !hasTag(task, tag) {
				continue
			}
			tasks = append(tasks, task)
		}
	}
	return tasks
}

func hasTag(task *domain.Task, tag string) bool {
	for _, t := range task.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
