package dataset

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/alexanderramin/intray/internal/domain"
	"github.com/google/uuid"
)

// convertContent adapts a parsed file schema into the strict domain
// aggregate, migrating legacy-shaped project records along the way.
func convertContent(schema *fileSchema) (*domain.DatasetContent, error) {
	content := &domain.DatasetContent{
		Inbox: schema.Inbox,
	}

	for _, g := range schema.Goals {
		content.Goals = append(content.Goals, convertGoal(g))
	}

	for i, rec := range schema.Projects {
		project, err := convertProject(rec)
		if err != nil {
			name := rec.Name
			if name == "" {
				name = "Unknown"
			}
			slog.Error("parsing project failed", "index", i, "name", name, "error", err)
			return nil, fmt.Errorf("%w: project %d (%s): %v", ErrParse, i, name, err)
		}
		content.Projects = append(content.Projects, project)
	}

	return content, nil
}

func convertGoal(rec goalRecord) *domain.Goal {
	id := rec.ID
	if id == "" {
		id = uuid.New().String()
	}
	status := domain.GoalStatus(rec.Status)
	if status == "" {
		status = domain.GoalActive
	}
	return &domain.Goal{
		ID:          id,
		Name:        rec.Name,
		Description: rec.Description,
		Status:      status,
		Domain:      rec.Domain,
	}
}

func convertProject(rec projectRecord) (*domain.Project, error) {
	status, err := convertProjectStatus(rec.Status)
	if err != nil {
		return nil, err
	}

	// Extract sort_order first, then inject explicitly: absent defaults
	// to float64(id), present is used as given.
	sortOrder := float64(rec.ID)
	if rec.SortOrder != nil {
		sortOrder = *rec.SortOrder
	}

	project := &domain.Project{
		ID:          rec.ID,
		Name:        rec.Name,
		Description: rec.Description,
		Status:      status,
		GoalID:      rec.GoalID,
		SortOrder:   sortOrder,
	}

	// Modern items load first; migrated legacy items append after, with
	// no de-duplication by id. Known input-quality assumption.
	for _, item := range rec.Items {
		converted, err := convertItem(item)
		if err != nil {
			return nil, err
		}
		project.Items = append(project.Items, converted)
	}
	for _, t := range rec.LegacyTasks {
		project.Items = append(project.Items, migrateLegacyTask(t))
	}
	for _, r := range rec.LegacyResources {
		project.Items = append(project.Items, migrateLegacyResource(r))
	}
	for _, r := range rec.LegacyReferences {
		project.Items = append(project.Items, migrateLegacyReference(r))
	}

	return project, nil
}

func convertProjectStatus(s string) (domain.ProjectStatus, error) {
	switch s {
	case "", "active", "ongoing": // "ongoing" is the legacy spelling of active
		return domain.ProjectActive, nil
	case "on_hold":
		return domain.ProjectOnHold, nil
	case "completed":
		return domain.ProjectCompleted, nil
	default:
		return "", fmt.Errorf("unknown project status %q", s)
	}
}

func convertItem(rec itemRecord) (domain.ProjectItem, error) {
	base := domain.ItemBase{
		ID:        rec.ID,
		Name:      rec.Name,
		Notes:     rec.Notes,
		Tags:      rec.Tags,
		CreatedAt: parseTime(rec.CreatedAt),
	}
	if base.ID == "" {
		base.ID = uuid.New().String()
	}

	switch domain.ItemKind(rec.Kind) {
	case domain.KindTask:
		duration := rec.Duration
		if duration == "" {
			duration = domain.DurationUnknown
		}
		return &domain.Task{
			ItemBase:    base,
			Completed:   rec.Completed,
			Duration:    duration,
			DueDate:     parseOptionalTime(rec.DueDate),
			CompletedAt: parseOptionalTime(rec.CompletedAt),
		}, nil
	case domain.KindResource:
		store := rec.Store
		if store == "" {
			store = "General"
		}
		resType := domain.ResourceType(rec.Type)
		if resType == "" {
			resType = domain.ResourceToBuy
		}
		return &domain.Resource{
			ItemBase: base,
			Acquired: rec.Acquired,
			Store:    store,
			Type:     resType,
			Link:     rec.Link,
		}, nil
	case domain.KindReference:
		return &domain.Reference{
			ItemBase: base,
			Content:  rec.Content,
		}, nil
	default:
		return nil, fmt.Errorf("unknown item kind %q", rec.Kind)
	}
}

func migrateLegacyTask(rec legacyTaskRecord) *domain.Task {
	duration := rec.Duration
	if duration == "" {
		duration = domain.DurationUnknown
	}
	return &domain.Task{
		ItemBase: domain.ItemBase{
			ID:    rec.ID.String(),
			Name:  rec.Name,
			Notes: rec.Notes,
			Tags:  rec.Tags,
		},
		Completed: rec.IsCompleted,
		Duration:  duration,
	}
}

func migrateLegacyResource(rec legacyResourceRecord) *domain.Resource {
	store := rec.Store
	if store == "" {
		store = "General"
	}
	resType := domain.ResourceType(rec.Type)
	if resType == "" {
		resType = domain.ResourceToBuy
	}
	return &domain.Resource{
		ItemBase: domain.ItemBase{
			ID:   rec.ID.String(),
			Name: rec.Name,
		},
		Acquired: rec.IsAcquired,
		Store:    store,
		Type:     resType,
		Link:     rec.Link,
	}
}

func migrateLegacyReference(rec legacyReferenceRecord) *domain.Reference {
	return &domain.Reference{
		ItemBase: domain.ItemBase{
			ID:   rec.ID.String(),
			Name: rec.Name,
		},
		Content: rec.Description,
	}
}

// recordContent maps the domain aggregate back onto file schema records.
// Only the modern shape is ever written.
func recordContent(content *domain.DatasetContent) *fileSchema {
	schema := &fileSchema{
		Inbox: content.Inbox,
	}

	for _, g := range content.Goals {
		schema.Goals = append(schema.Goals, goalRecord{
			ID:          g.ID,
			Name:        g.Name,
			Description: g.Description,
			Status:      string(g.Status),
			Domain:      g.Domain,
		})
	}

	schema.Projects = make(projectsField, 0, len(content.Projects))
	for _, p := range content.Projects {
		sortOrder := p.SortOrder
		rec := projectRecord{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Status:      string(p.Status),
			GoalID:      p.GoalID,
			SortOrder:   &sortOrder,
		}
		for _, item := range p.Items {
			rec.Items = append(rec.Items, recordItem(item))
		}
		schema.Projects = append(schema.Projects, rec)
	}

	return schema
}

func recordItem(item domain.ProjectItem) itemRecord {
	base := item.Base()
	rec := itemRecord{
		Kind:      string(item.Kind()),
		ID:        base.ID,
		Name:      base.Name,
		Notes:     base.Notes,
		Tags:      base.Tags,
		CreatedAt: formatTime(base.CreatedAt),
	}

	switch v := item.(type) {
	case *domain.Task:
		rec.Completed = v.Completed
		rec.Duration = v.Duration
		rec.DueDate = formatOptionalTime(v.DueDate)
		rec.CompletedAt = formatOptionalTime(v.CompletedAt)
	case *domain.Resource:
		rec.Acquired = v.Acquired
		rec.Store = v.Store
		rec.Type = string(v.Type)
		rec.Link = v.Link
	case *domain.Reference:
		rec.Content = v.Content
	}

	return rec
}

func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func parseOptionalTime(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil
	}
	return &t
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func formatOptionalTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
