package catalog

import (
	"errors"
	"fmt"

	"github.com/san-kum/dynsets/internal/sets"
	"github.com/san-kum/dynsets/internal/uncertainty"
)

var (
	// ErrUnknownSystem indicates an identifier that has no catalog entry.
	ErrUnknownSystem = errors.New("catalog: unknown system")

	// ErrUnsupportedMode indicates an entry that defines no uncertainty for
	// the requested mode. It is the same sentinel the generator returns.
	ErrUnsupportedMode = uncertainty.ErrUnsupportedMode

	// ErrDimensionMismatch indicates a set whose dimension disagrees with
	// the model it is attached to.
	ErrDimensionMismatch = sets.ErrDimensionMismatch

	// ErrDuplicateSystem indicates a second registration under one identifier.
	ErrDuplicateSystem = errors.New("catalog: system already registered")
)

// LoadError wraps a failure with the request that caused it.
type LoadError struct {
	ID   ID
	Mode uncertainty.Mode
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("catalog: load %s (mode %s): %v", e.ID, e.Mode, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
