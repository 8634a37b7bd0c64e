package sets

import (
	"fmt"

	"github.com/san-kum/dynsets/internal/dynamo"
)

// ErrDimensionMismatch is returned when a center and its generators, or two
// sets combined by an operation, disagree in shape. It wraps
// dynamo.ErrDimensionMismatch so either sentinel matches with errors.Is.
var ErrDimensionMismatch = fmt.Errorf("sets: %w", dynamo.ErrDimensionMismatch)
