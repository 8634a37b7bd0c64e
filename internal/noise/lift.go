// Package noise lifts a per-step noise zonotope to a matrix zonotope over a
// whole trajectory, the form data-driven reachability consumes.
package noise

import (
	"errors"
	"fmt"

	"github.com/san-kum/dynsets/internal/dynamo"
	"github.com/san-kum/dynsets/internal/sets"
	"gonum.org/v1/gonum/mat"
)

var (
	ErrInvalidTrajectoryLength = errors.New("noise: trajectory length must be non-negative")
	ErrDimensionMismatch       = fmt.Errorf("noise: %w", dynamo.ErrDimensionMismatch)
)

// minParallel is the generator count below which lifting runs inline.
const minParallel = 256

// Lift returns the matrix zonotope of n×T noise trajectories whose columns
// each lie in w. The center is the n×T zero matrix; for generator g_j of w
// and slot t there is one generator holding g_j in column t and zeros
// elsewhere, at index j·T + t. The center of w is ignored, callers that need
// it track it separately.
func Lift(w *sets.Zonotope, horizon int) (*sets.MatrixZonotope, error) {
	if horizon < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidTrajectoryLength, horizon)
	}
	if w == nil {
		return nil, fmt.Errorf("%w: nil zonotope", ErrDimensionMismatch)
	}

	n, g := w.Dim(), w.NumGenerators()
	if horizon == 0 || g == 0 {
		return sets.NewZeroMatrixZonotope(n, horizon, nil)
	}

	cols := make([][]float64, g)
	for j := range cols {
		cols[j] = w.Generator(j)
	}

	out := make([]mat.Matrix, g*horizon)
	dynamo.ParallelFor(len(out), minParallel, func(start, end int) {
		for k := start; k < end; k++ {
			j, t := k/horizon, k%horizon
			m := mat.NewDense(n, horizon, nil)
			m.SetCol(t, cols[j])
			out[k] = m
		}
	})
	return sets.NewZeroMatrixZonotope(n, horizon, out)
}

// LiftFor is Lift with an additional check that w lives in the state space
// of dimension stateDim.
func LiftFor(w *sets.Zonotope, horizon, stateDim int) (*sets.MatrixZonotope, error) {
	if w != nil && w.Dim() != stateDim {
		return nil, &dynamo.DimensionError{What: "noise dimension", Got: w.Dim(), Want: stateDim}
	}
	return Lift(w, horizon)
}
