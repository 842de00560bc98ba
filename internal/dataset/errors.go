package dataset

import "errors"

var (
	// ErrNotFound indicates the named dataset has no persisted document.
	ErrNotFound = errors.New("dataset not found")

	// ErrParse indicates the persisted document, or an individual project
	// record in it, is structurally invalid.
	ErrParse = errors.New("dataset parse error")

	// ErrValidation indicates an invalid dataset name.
	ErrValidation = errors.New("dataset validation error")
)
