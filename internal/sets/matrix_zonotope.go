package sets

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// MatrixZonotope is the set {C + Σ βᵢGᵢ : βᵢ ∈ [-1,1]} of rows×cols matrices.
// Generator order is preserved exactly as given.
type MatrixZonotope struct {
	rows, cols int
	// nil when cols == 0
	center *mat.Dense
	gens   []*mat.Dense
}

// NewMatrixZonotope builds a matrix zonotope. Every generator must have the
// shape of the center.
func NewMatrixZonotope(center mat.Matrix, generators []mat.Matrix) (*MatrixZonotope, error) {
	if isEmptyMatrix(center) {
		return nil, fmt.Errorf("%w: empty center matrix", ErrDimensionMismatch)
	}
	r, c := center.Dims()
	mz := &MatrixZonotope{rows: r, cols: c, center: mat.DenseCopyOf(center)}
	if err := mz.setGenerators(generators); err != nil {
		return nil, err
	}
	return mz, nil
}

// NewZeroMatrixZonotope builds a matrix zonotope with a rows×cols zero
// center. cols may be zero, in which case no generators are allowed.
func NewZeroMatrixZonotope(rows, cols int, generators []mat.Matrix) (*MatrixZonotope, error) {
	if rows <= 0 || cols < 0 {
		return nil, fmt.Errorf("%w: invalid shape %dx%d", ErrDimensionMismatch, rows, cols)
	}
	mz := &MatrixZonotope{rows: rows, cols: cols}
	if cols > 0 {
		mz.center = mat.NewDense(rows, cols, nil)
	}
	if err := mz.setGenerators(generators); err != nil {
		return nil, err
	}
	return mz, nil
}

func (mz *MatrixZonotope) setGenerators(generators []mat.Matrix) error {
	mz.gens = make([]*mat.Dense, 0, len(generators))
	for i, g := range generators {
		if isEmptyMatrix(g) {
			return fmt.Errorf("%w: generator %d is empty, want %dx%d", ErrDimensionMismatch, i, mz.rows, mz.cols)
		}
		r, c := g.Dims()
		if r != mz.rows || c != mz.cols {
			return fmt.Errorf("%w: generator %d is %dx%d, want %dx%d", ErrDimensionMismatch, i, r, c, mz.rows, mz.cols)
		}
		mz.gens = append(mz.gens, mat.DenseCopyOf(g))
	}
	return nil
}

// Dims returns the shape shared by the center and every generator.
func (mz *MatrixZonotope) Dims() (rows, cols int) {
	return mz.rows, mz.cols
}

func (mz *MatrixZonotope) NumGenerators() int {
	return len(mz.gens)
}

// Center returns a copy of the center matrix, or nil when it has no columns.
func (mz *MatrixZonotope) Center() *mat.Dense {
	if mz.center == nil {
		return nil
	}
	return mat.DenseCopyOf(mz.center)
}

// Generator returns a copy of the i-th generator matrix.
func (mz *MatrixZonotope) Generator(i int) *mat.Dense {
	if i < 0 || i >= len(mz.gens) {
		panic(fmt.Sprintf("sets: generator index %d out of range [0,%d)", i, len(mz.gens)))
	}
	return mat.DenseCopyOf(mz.gens[i])
}

// Generators returns copies of all generator matrices in order.
func (mz *MatrixZonotope) Generators() []*mat.Dense {
	out := make([]*mat.Dense, len(mz.gens))
	for i, g := range mz.gens {
		out[i] = mat.DenseCopyOf(g)
	}
	return out
}

func (mz *MatrixZonotope) String() string {
	return fmt.Sprintf("MatrixZonotope(%dx%d, generators=%d)", mz.rows, mz.cols, len(mz.gens))
}
