package repository

import (
	"errors"

	"github.com/alexanderramin/intray/internal/domain"
)

// ErrNotFound indicates a project or goal referenced by id does not
// exist in the aggregate.
var ErrNotFound = errors.New("not found")

// Store persists whole aggregates under a dataset name. The Repository
// is storage-agnostic: dataset.Manager is the durable YAML store, and a
// SQLite-backed implementation exists to prove the contract holds.
type Store interface {
	Load(name string) (*domain.DatasetContent, error)
	Save(name string, content *domain.DatasetContent) error
}
