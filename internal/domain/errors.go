package domain

import "errors"

// ErrWrongVariant indicates an operation was applied to an item of an
// incompatible kind (e.g. toggling acquisition on a task).
var ErrWrongVariant = errors.New("wrong item variant")
