// Package snapshot exports and restores whole datasets as JSON, mainly
// for backups and diffable dumps.
package snapshot

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/intray/internal/domain"
	"github.com/alexanderramin/intray/internal/repository"
)

type Service struct {
	repo *repository.Repository
}

func NewService(repo *repository.Repository) *Service {
	return &Service{repo: repo}
}

// snapshotFile is the stable JSON layout. Field order is fixed so two
// exports of the same aggregate are byte-identical.
type snapshotFile struct {
	Goals    []goalRecord    `json:"goals"`
	Projects []projectRecord `json:"projects"`
	Inbox    []string        `json:"inbox_tasks"`
}

type goalRecord struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status"`
	Domain      string `json:"domain,omitempty"`
}

type projectRecord struct {
	ID          int          `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Status      string       `json:"status"`
	GoalID      string       `json:"goal_id,omitempty"`
	SortOrder   float64      `json:"sort_order"`
	Items       []itemRecord `json:"items"`
}

type itemRecord struct {
	Kind      string   `json:"kind"`
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Notes     string   `json:"notes,omitempty"`
	Tags      []string `json:"tags,omitempty"`
	CreatedAt string   `json:"created_at,omitempty"`

	Completed   bool   `json:"completed,omitempty"`
	Duration    string `json:"duration,omitempty"`
	DueDate     string `json:"due_date,omitempty"`
	CompletedAt string `json:"completed_at,omitempty"`

	Acquired bool   `json:"acquired,omitempty"`
	Store    string `json:"store,omitempty"`
	Type     string `json:"type,omitempty"`
	Link     string `json:"link,omitempty"`

	Content string `json:"content,omitempty"`
}

// Export serializes the current aggregate to indented JSON.
func (s *Service) Export() (string, error) {
	content := s.repo.Content()

	file := snapshotFile{
		Goals:    []goalRecord{},
		Projects: []projectRecord{},
		Inbox:    append([]string{}, content.Inbox...),
	}
	for _, g := range content.Goals {
		file.Goals = append(file.Goals, goalRecord{
			ID:          g.ID,
			Name:        g.Name,
			Description: g.Description,
			Status:      string(g.Status),
			Domain:      g.Domain,
		})
	}
	for _, p := range content.Projects {
		rec := projectRecord{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Status:      string(p.Status),
			GoalID:      p.GoalID,
			SortOrder:   p.SortOrder,
			Items:       []itemRecord{},
		}
		for _, item := range p.Items {
			rec.Items = append(rec.Items, recordItem(item))
		}
		file.Projects = append(file.Projects, rec)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(file); err != nil {
		return "", fmt.Errorf("encoding snapshot: %w", err)
	}
	return buf.String(), nil
}

func recordItem(item domain.ProjectItem) itemRecord {
	base := item.Base()
	rec := itemRecord{
		Kind:      string(item.Kind()),
		ID:        base.ID,
		Name:      base.Name,
		Notes:     base.Notes,
		Tags:      base.Tags,
		CreatedAt: formatTime(&base.CreatedAt),
	}
	switch it := item.(type) {
	case *domain.Task:
		rec.Completed = it.Completed
		rec.Duration = it.Duration
		rec.DueDate = formatTime(it.DueDate)
		rec.CompletedAt = formatTime(it.CompletedAt)
	case *domain.Resource:
		rec.Acquired = it.Acquired
		rec.Store = it.Store
		rec.Type = string(it.Type)
		rec.Link = it.Link
	case *domain.Reference:
		rec.Content = it.Content
	}
	return rec
}

// Restore replaces the aggregate with the snapshot's content. Missing
// or unknown enum values fall back to their defaults rather than
// failing the whole restore.
func (s *Service) Restore(data []byte) error {
	var file snapshotFile
	if err := json.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parsing snapshot: %w", err)
	}

	content := &domain.DatasetContent{}
	for _, g := range file.Goals {
		goal := &domain.Goal{
			ID:          g.ID,
			Name:        g.Name,
			Description: g.Description,
			Status:      domain.GoalActive,
			Domain:      g.Domain,
		}
		if g.Status == string(domain.GoalSomeday) {
			goal.Status = domain.GoalSomeday
		}
		if goal.ID == "" {
			goal.ID = uuid.New().String()
		}
		content.Goals = append(content.Goals, goal)
	}
	for i, p := range file.Projects {
		project := &domain.Project{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Status:      restoreStatus(p.Status),
			GoalID:      p.GoalID,
			SortOrder:   p.SortOrder,
		}
		for j, rec := range p.Items {
			item, err := restoreItem(rec)
			if err != nil {
				return fmt.Errorf("project %d item %d: %w", i, j, err)
			}
			project.Items = append(project.Items, item)
		}
		content.Projects = append(content.Projects, project)
	}
	content.Inbox = file.Inbox

	s.repo.ReplaceContent(content)
	return nil
}

func restoreStatus(raw string) domain.ProjectStatus {
	switch domain.ProjectStatus(raw) {
	case domain.ProjectOnHold:
		return domain.ProjectOnHold
	case domain.ProjectCompleted:
		return domain.ProjectCompleted
	default:
		return domain.ProjectActive
	}
}

// overlayBase copies snapshot base fields onto a freshly constructed
// item. A missing id or timestamp keeps the constructor's generated
// value.
func overlayBase(base *domain.ItemBase, rec itemRecord) {
	if rec.ID != "" {
		base.ID = rec.ID
	}
	base.Notes = rec.Notes
	base.Tags = rec.Tags
	if ts, err := parseTime(rec.CreatedAt); err == nil && ts != nil {
		base.CreatedAt = *ts
	}
}

func restoreItem(rec itemRecord) (domain.ProjectItem, error) {
	switch domain.ItemKind(rec.Kind) {
	case domain.KindTask:
		task := domain.NewTask(rec.Name)
		overlayBase(task.Base(), rec)
		task.Completed = rec.Completed
		task.Duration = domain.NormalizeDuration(rec.Duration)
		if ts, err := parseTime(rec.DueDate); err == nil {
			task.DueDate = ts
		}
		if ts, err := parseTime(rec.CompletedAt); err == nil {
			task.CompletedAt = ts
		}
		return task, nil
	case domain.KindResource:
		res := domain.NewResource(rec.Name)
		overlayBase(res.Base(), rec)
		res.Acquired = rec.Acquired
		if rec.Store != "" {
			res.Store = rec.Store
		}
		if rec.Type == string(domain.ResourceToGather) {
			res.Type = domain.ResourceToGather
		}
		res.Link = rec.Link
		return res, nil
	case domain.KindReference:
		ref := domain.NewReference(rec.Name)
		overlayBase(ref.Base(), rec)
		ref.Content = rec.Content
		return ref, nil
	default:
		return nil, fmt.Errorf("unknown item kind %q", rec.Kind)
	}
}

func formatTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func parseTime(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	ts, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}
	return &ts, nil
}
