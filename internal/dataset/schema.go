package dataset

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// The types in this file mirror the on-disk YAML document, old and new
// shapes alike. They are adapted into the strict domain model by
// convert.go, so the domain stays free of "maybe old, maybe new"
// branching. Field names here are the stable persisted vocabulary and
// must not change.

type fileSchema struct {
	Goals    []goalRecord  `yaml:"goals,omitempty"`
	Projects projectsField `yaml:"projects"`
	Inbox    []string      `yaml:"inbox_tasks"`
}

type goalRecord struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Status      string `yaml:"status,omitempty"`
	Domain      string `yaml:"domain,omitempty"`
}

type projectRecord struct {
	ID          int      `yaml:"id"`
	Name        string   `yaml:"name"`
	Description string   `yaml:"description,omitempty"`
	Status      string   `yaml:"status,omitempty"`
	GoalID      string   `yaml:"goal_id,omitempty"`
	SortOrder   *float64 `yaml:"sort_order,omitempty"`

	// Modern shape: one ordered stream with explicit kind discriminators.
	Items []itemRecord `yaml:"items,omitempty"`

	// Legacy shape: separate lists per kind. Readable indefinitely,
	// migrated on load, never written back.
	LegacyTasks      []legacyTaskRecord      `yaml:"tasks,omitempty"`
	LegacyResources  []legacyResourceRecord  `yaml:"resources,omitempty"`
	LegacyReferences []legacyReferenceRecord `yaml:"reference_items,omitempty"`
}

type itemRecord struct {
	Kind      string   `yaml:"kind"`
	ID        string   `yaml:"id"`
	Name      string   `yaml:"name"`
	Notes     string   `yaml:"notes,omitempty"`
	Tags      []string `yaml:"tags,omitempty"`
	CreatedAt string   `yaml:"created_at,omitempty"`

	// task
	Completed   bool   `yaml:"completed,omitempty"`
	Duration    string `yaml:"duration,omitempty"`
	DueDate     string `yaml:"due_date,omitempty"`
	CompletedAt string `yaml:"completed_at,omitempty"`

	// resource
	Acquired bool   `yaml:"acquired,omitempty"`
	Store    string `yaml:"store,omitempty"`
	Type     string `yaml:"type,omitempty"`
	Link     string `yaml:"link,omitempty"`

	// reference
	Content string `yaml:"content,omitempty"`
}

type legacyTaskRecord struct {
	ID          flexID   `yaml:"id"`
	Name        string   `yaml:"name"`
	IsCompleted bool     `yaml:"is_completed"`
	Tags        []string `yaml:"tags,omitempty"`
	Duration    string   `yaml:"duration,omitempty"`
	Notes       string   `yaml:"notes,omitempty"`
}

type legacyResourceRecord struct {
	ID         flexID `yaml:"id"`
	Name       string `yaml:"name"`
	IsAcquired bool   `yaml:"is_acquired"`
	Store      string `yaml:"store,omitempty"`
	Type       string `yaml:"type,omitempty"`
	Link       string `yaml:"link,omitempty"`
}

type legacyReferenceRecord struct {
	ID          flexID `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
}

// flexID accepts both integer and string ids; legacy documents carry
// either depending on their age. It always stringifies.
type flexID string

func (f *flexID) UnmarshalYAML(node *yaml.Node) error {
	switch node.Tag {
	case "!!int", "!!str":
		*f = flexID(node.Value)
		return nil
	default:
		return fmt.Errorf("id must be an integer or string, got %s", node.Tag)
	}
}

func (f flexID) String() string { return string(f) }

// projectsField accepts both the modern sequence form and the oldest
// mapping form (slug -> record); mapping values are taken in document
// order.
type projectsField []projectRecord

func (p *projectsField) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var records []projectRecord
		if err := node.Decode(&records); err != nil {
			return err
		}
		*p = records
		return nil
	case yaml.MappingNode:
		records := make([]projectRecord, 0, len(node.Content)/2)
		for i := 1; i < len(node.Content); i += 2 {
			var rec projectRecord
			if err := node.Content[i].Decode(&rec); err != nil {
				return err
			}
			records = append(records, rec)
		}
		*p = records
		return nil
	default:
		return fmt.Errorf("projects must be a sequence or mapping, got kind %d", node.Kind)
	}
}

func (p projectsField) MarshalYAML() (any, error) {
	return []projectRecord(p), nil
}
