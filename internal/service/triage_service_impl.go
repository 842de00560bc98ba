package service

import (
	"fmt"
	"slices"

	"github.com/alexanderramin/intray/internal/domain"
	"github.com/alexanderramin/intray/internal/repository"
)

type triageService struct {
	repo *repository.Repository
}

// NewTriageService creates a TriageService over the repository.
func NewTriageService(repo *repository.Repository) TriageService {
	return &triageService{repo: repo}
}

func (s *triageService) InboxItems() []string {
	return s.repo.Content().Inbox
}

func (s *triageService) AddToInbox(text string) {
	content := s.repo.Content()
	content.Inbox = append(content.Inbox, text)
	s.repo.MarkDirty()
}

func (s *triageService) CreateDraft(text string, classification domain.Classification) *domain.DraftItem {
	return &domain.DraftItem{Text: text, Classification: classification}
}

// toEntity maps the classification category onto a concrete item
// variant. Unrecognized categories commit as plain tasks.
func toEntity(draft *domain.DraftItem) domain.ProjectItem {
	c := draft.Classification
	name := draft.DisplayName()

	switch c.Category {
	case domain.CategoryIncubate:
		task := domain.NewTask(name)
		task.Tags = append([]string{"someday"}, c.ExtractedTags...)
		task.Duration = domain.DurationUnknown
		task.Notes = "Incubated from Triage."
		if c.Notes != "" {
			task.Notes += " " + c.Notes
		}
		return task
	case domain.CategoryResource, domain.CategoryShopping:
		res := domain.NewResource(name)
		res.Tags = c.ExtractedTags
		return res
	case domain.CategoryReference:
		ref := domain.NewReference(name)
		if c.Notes != "" {
			ref.Content = c.Notes
		} else {
			ref.Content = draft.Text
		}
		ref.Tags = c.ExtractedTags
		return ref
	default:
		task := domain.NewTask(name)
		task.Tags = c.ExtractedTags
		task.Duration = domain.NormalizeDuration(c.EstimatedDuration)
		task.Notes = c.Notes
		return task
	}
}

func (s *triageService) ApplyDraft(draft *domain.DraftItem, overrideProjectID *int) (domain.ProjectItem, error) {
	project, err := s.resolveTarget(draft, overrideProjectID)
	if err != nil {
		return nil, err
	}

	item := toEntity(draft)
	if err := s.repo.AddItem(project.ID, item); err != nil {
		return nil, err
	}

	s.removeFromInbox(draft.Text)
	return item, nil
}

// resolveTarget picks the project a draft commits to: an explicit
// override wins; otherwise the suggested name is matched exactly, with
// reserved bucket names auto-created on first use.
func (s *triageService) resolveTarget(draft *domain.DraftItem, overrideProjectID *int) (*domain.Project, error) {
	if overrideProjectID != nil {
		project := s.repo.FindProject(*overrideProjectID)
		if project == nil {
			return nil, fmt.Errorf("%w: project %d", ErrTargetNotFound, *overrideProjectID)
		}
		return project, nil
	}

	suggested := draft.Classification.SuggestedProject
	if project := s.repo.FindProjectByName(suggested); project != nil {
		return project, nil
	}
	if slices.Contains(ReservedBuckets, suggested) {
		return s.repo.CreateProject(suggested), nil
	}
	return nil, fmt.Errorf("%w: no project named %q", ErrTargetNotFound, suggested)
}

func (s *triageService) CreateProjectFromDraft(draft *domain.DraftItem, newProjectName string) (*domain.Project, error) {
	project := s.repo.CreateProject(newProjectName)
	if _, err := s.ApplyDraft(draft, &project.ID); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *triageService) SkipInboxItem(text string) {
	content := s.repo.Content()
	i := slices.Index(content.Inbox, text)
	if i == -1 {
		return
	}
	content.Inbox = append(slices.Delete(content.Inbox, i, i+1), text)
	s.repo.MarkDirty()
}

func (s *triageService) DeleteInboxItem(text string) {
	s.removeFromInbox(text)
}

func (s *triageService) MoveInboxItemToProject(text string, projectID int, tags []string) error {
	if s.repo.FindProject(projectID) == nil {
		return fmt.Errorf("%w: project %d", ErrTargetNotFound, projectID)
	}
	task := domain.NewTask(text)
	task.Tags = tags
	if err := s.repo.AddItem(projectID, task); err != nil {
		return err
	}
	s.removeFromInbox(text)
	return nil
}

func (s *triageService) AllTags() []string {
	seen := make(map[string]bool)
	var tags []string
	for _, p := range s.repo.Content().Projects {
		for _, item := range p.Items {
			for _, tag := range item.Base().Tags {
				if !seen[tag] {
					seen[tag] = true
					tags = append(tags, tag)
				}
			}
		}
	}
	return tags
}

// removeFromInbox drops the captured text if still present; tolerant of
// a concurrent skip or delete having removed it already.
func (s *triageService) removeFromInbox(text string) {
	content := s.repo.Content()
	i := slices.Index(content.Inbox, text)
	if i == -1 {
		return
	}
	content.Inbox = slices.Delete(content.Inbox, i, i+1)
	s.repo.MarkDirty()
}
