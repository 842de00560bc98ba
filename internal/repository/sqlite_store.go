package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/alexanderramin/intray/internal/dataset"
	"github.com/alexanderramin/intray/internal/domain"
)

// SQLiteStore persists whole aggregates in a SQLite database. It exists
// to prove the Store contract is storage-agnostic; the YAML
// dataset.Manager remains the primary store.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore wraps an opened database (see internal/db.OpenDB).
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) Load(name string) (*domain.DatasetContent, error) {
	content := &domain.DatasetContent{}
	populated := false

	rows, err := s.db.Query(
		`SELECT id, name, description, status, domain FROM goals WHERE dataset = ? ORDER BY pos`, name)
	if err != nil {
		return nil, fmt.Errorf("loading goals: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		g := &domain.Goal{}
		var status string
		if err := rows.Scan(&g.ID, &g.Name, &g.Description, &status, &g.Domain); err != nil {
			return nil, fmt.Errorf("scanning goal: %w", err)
		}
		g.Status = domain.GoalStatus(status)
		content.Goals = append(content.Goals, g)
		populated = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("loading goals: %w", err)
	}

	if err := s.loadProjects(name, content, &populated); err != nil {
		return nil, err
	}

	inboxRows, err := s.db.Query(
		`SELECT text FROM inbox WHERE dataset = ? ORDER BY pos`, name)
	if err != nil {
		return nil, fmt.Errorf("loading inbox: %w", err)
	}
	defer inboxRows.Close()
	for inboxRows.Next() {
		var text string
		if err := inboxRows.Scan(&text); err != nil {
			return nil, fmt.Errorf("scanning inbox row: %w", err)
		}
		content.Inbox = append(content.Inbox, text)
		populated = true
	}
	if err := inboxRows.Err(); err != nil {
		return nil, fmt.Errorf("loading inbox: %w", err)
	}

	if !populated {
		return nil, fmt.Errorf("%w: %q", dataset.ErrNotFound, name)
	}
	return content, nil
}

func (s *SQLiteStore) loadProjects(name string, content *domain.DatasetContent, populated *bool) error {
	rows, err := s.db.Query(
		`SELECT id, name, description, status, goal_id, sort_order
		 FROM projects WHERE dataset = ? ORDER BY pos`, name)
	if err != nil {
		return fmt.Errorf("loading projects: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		p := &domain.Project{}
		var status string
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &status, &p.GoalID, &p.SortOrder); err != nil {
			return fmt.Errorf("scanning project: %w", err)
		}
		p.Status = domain.ProjectStatus(status)
		content.Projects = append(content.Projects, p)
		*populated = true
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("loading projects: %w", err)
	}

	for _, p := range content.Projects {
		items, err := s.loadItems(name, p.ID)
		if err != nil {
			return err
		}
		p.Items = items
	}
	return nil
}

func (s *SQLiteStore) loadItems(name string, projectID int) ([]domain.ProjectItem, error) {
	rows, err := s.db.Query(
		`SELECT id, kind, name, notes, tags, created_at,
		        completed, duration, due_date, completed_at,
		        acquired, store, type, link, content
		 FROM items WHERE dataset = ? AND project_id = ? ORDER BY pos`,
		name, projectID)
	if err != nil {
		return nil, fmt.Errorf("loading items for project %d: %w", projectID, err)
	}
	defer rows.Close()

	var items []domain.ProjectItem
	for rows.Next() {
		var (
			id, kind, itemName, notes, tags, createdAt    string
			completed, acquired                           int
			duration, store, resType, link, refContent    string
			dueDate, completedAt                          sql.NullString
		)
		if err := rows.Scan(&id, &kind, &itemName, &notes, &tags, &createdAt,
			&completed, &duration, &dueDate, &completedAt,
			&acquired, &store, &resType, &link, &refContent); err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}

		base := domain.ItemBase{
			ID:        id,
			Name:      itemName,
			Notes:     notes,
			Tags:      decodeTags(tags),
			CreatedAt: parseStoredTime(createdAt),
		}

		switch domain.ItemKind(kind) {
		case domain.KindTask:
			items = append(items, &domain.Task{
				ItemBase:    base,
				Completed:   intToBool(completed),
				Duration:    duration,
				DueDate:     parseNullableTime(dueDate),
				CompletedAt: parseNullableTime(completedAt),
			})
		case domain.KindResource:
			items = append(items, &domain.Resource{
				ItemBase: base,
				Acquired: intToBool(acquired),
				Store:    store,
				Type:     domain.ResourceType(resType),
				Link:     link,
			})
		case domain.KindReference:
			items = append(items, &domain.Reference{
				ItemBase: base,
				Content:  refContent,
			})
		default:
			return nil, fmt.Errorf("%w: unknown item kind %q", dataset.ErrParse, kind)
		}
	}
	return items, rows.Err()
}

func (s *SQLiteStore) Save(name string, content *domain.DatasetContent) error {
	if err := dataset.ValidateName(name); err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("starting save transaction: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	for _, table := range []string{"items", "projects", "goals", "inbox"} {
		if _, err := tx.Exec(`DELETE FROM `+table+` WHERE dataset = ?`, name); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	for pos, g := range content.Goals {
		if _, err := tx.Exec(
			`INSERT INTO goals (dataset, id, name, description, status, domain, pos)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			name, g.ID, g.Name, g.Description, string(g.Status), g.Domain, pos); err != nil {
			return fmt.Errorf("saving goal %q: %w", g.ID, err)
		}
	}

	for pos, p := range content.Projects {
		if _, err := tx.Exec(
			`INSERT INTO projects (dataset, id, name, description, status, goal_id, sort_order, pos)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			name, p.ID, p.Name, p.Description, string(p.Status), p.GoalID, p.SortOrder, pos); err != nil {
			return fmt.Errorf("saving project %d: %w", p.ID, err)
		}
		for itemPos, item := range p.Items {
			if err := insertItem(tx, name, p.ID, itemPos, item); err != nil {
				return err
			}
		}
	}

	for pos, text := range content.Inbox {
		if _, err := tx.Exec(
			`INSERT INTO inbox (dataset, pos, text) VALUES (?, ?, ?)`,
			name, pos, text); err != nil {
			return fmt.Errorf("saving inbox row %d: %w", pos, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing save: %w", err)
	}
	committed = true
	return nil
}

func insertItem(tx *sql.Tx, name string, projectID, pos int, item domain.ProjectItem) error {
	base := item.Base()
	var (
		completed, acquired                        int
		duration, store, resType, link, refContent string
		dueDate, completedAt                       any
	)

	switch v := item.(type) {
	case *domain.Task:
		completed = boolToInt(v.Completed)
		duration = v.Duration
		dueDate = nullableTimeValue(v.DueDate)
		completedAt = nullableTimeValue(v.CompletedAt)
	case *domain.Resource:
		acquired = boolToInt(v.Acquired)
		store = v.Store
		resType = string(v.Type)
		link = v.Link
	case *domain.Reference:
		refContent = v.Content
	}

	_, err := tx.Exec(
		`INSERT INTO items (dataset, id, project_id, kind, name, notes, tags, created_at,
		                    completed, duration, due_date, completed_at,
		                    acquired, store, type, link, content, pos)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		name, base.ID, projectID, string(item.Kind()), base.Name, base.Notes,
		encodeTags(base.Tags), formatStoredTime(base.CreatedAt),
		completed, duration, dueDate, completedAt,
		acquired, store, resType, link, refContent, pos)
	if err != nil {
		return fmt.Errorf("saving item %q: %w", base.ID, err)
	}
	return nil
}

func encodeTags(tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	data, _ := json.Marshal(tags)
	return string(data)
}

func decodeTags(s string) []string {
	if s == "" {
		return nil
	}
	var tags []string
	if err := json.Unmarshal([]byte(s), &tags); err != nil {
		return nil
	}
	return tags
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func intToBool(i int) bool { return i != 0 }

func parseStoredTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func formatStoredTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func parseNullableTime(s sql.NullString) *time.Time {
	if !s.Valid || s.String == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s.String)
	if err != nil {
		return nil
	}
	return &t
}

func nullableTimeValue(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC().Format(time.RFC3339)
}
