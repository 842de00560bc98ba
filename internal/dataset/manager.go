package dataset

import (
	"bytes"
	"cmp"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/alexanderramin/intray/internal/domain"
	"gopkg.in/yaml.v3"
)

const fileName = "dataset.yaml"

const maxNameLen = 50

// Manager loads and saves named datasets under a base directory. Each
// dataset is a single YAML document at <base>/<name>/dataset.yaml.
type Manager struct {
	baseDir string
}

// NewManager creates a Manager rooted at baseDir.
func NewManager(baseDir string) *Manager {
	return &Manager{baseDir: baseDir}
}

// Load reads and migrates the named dataset. Returns ErrNotFound when no
// document exists, ErrParse when the document or a project record in it
// is structurally invalid.
func (m *Manager) Load(name string) (*domain.DatasetContent, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	path := filepath.Join(m.baseDir, name, fileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
		}
		return nil, fmt.Errorf("reading dataset %q: %w", name, err)
	}

	var schema fileSchema
	if err := yaml.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	return convertContent(&schema)
}

// Save writes the aggregate as a single YAML document. Projects are
// sorted by (goal_id, sort_order) first so output is deterministic and
// diff-stable under version control. The document is written to a temp
// file and atomically renamed into place.
func (m *Manager) Save(name string, content *domain.DatasetContent) error {
	if err := ValidateName(name); err != nil {
		return err
	}

	sorted := *content
	sorted.Projects = slices.Clone(content.Projects)
	slices.SortStableFunc(sorted.Projects, func(a, b *domain.Project) int {
		if c := cmp.Compare(a.GoalID, b.GoalID); c != 0 {
			return c
		}
		return cmp.Compare(a.SortOrder, b.SortOrder)
	})

	data, err := marshalSchema(recordContent(&sorted))
	if err != nil {
		return fmt.Errorf("encoding dataset %q: %w", name, err)
	}

	dir := filepath.Join(m.baseDir, name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating dataset directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".dataset-*.yaml")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing dataset %q: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, filepath.Join(dir, fileName)); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replacing dataset %q: %w", name, err)
	}

	return nil
}

// ListDatasets returns the names of datasets under the base directory.
func (m *Manager) ListDatasets() ([]string, error) {
	entries, err := os.ReadDir(m.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("listing datasets: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

// ValidateName checks a dataset name: non-empty, at most 50 characters,
// letters, digits, hyphens and underscores only.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: dataset name cannot be empty", ErrValidation)
	}
	if len(name) > maxNameLen {
		return fmt.Errorf("%w: dataset name too long (max %d characters)", ErrValidation, maxNameLen)
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return fmt.Errorf("%w: dataset name can only contain letters, numbers, hyphens, and underscores", ErrValidation)
		}
	}
	return nil
}

func marshalSchema(schema *fileSchema) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(schema); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
