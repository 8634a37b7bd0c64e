package sets

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Zonotope is a center-symmetric polytope {c + Gβ : β ∈ [-1,1]^g}.
type Zonotope struct {
	center *mat.VecDense
	// nil when the zonotope is a point
	gens *mat.Dense
}

// NewZonotope builds a zonotope from a center and an n×g generator matrix.
// A nil (or empty) generator matrix yields a point set.
func NewZonotope(center []float64, generators mat.Matrix) (*Zonotope, error) {
	if len(center) == 0 {
		return nil, fmt.Errorf("%w: empty center", ErrDimensionMismatch)
	}

	z := &Zonotope{center: mat.NewVecDense(len(center), cloneFloats(center))}
	if isEmptyMatrix(generators) {
		return z, nil
	}

	r, _ := generators.Dims()
	if r != len(center) {
		return nil, fmt.Errorf("%w: generator rows %d, center length %d", ErrDimensionMismatch, r, len(center))
	}
	z.gens = mat.DenseCopyOf(generators)
	return z, nil
}

// NewZonotopeFromColumns builds a zonotope whose generators are the given
// column vectors.
func NewZonotopeFromColumns(center []float64, cols ...[]float64) (*Zonotope, error) {
	n := len(center)
	if n == 0 || len(cols) == 0 {
		return NewZonotope(center, nil)
	}
	g := mat.NewDense(n, len(cols), nil)
	for j, col := range cols {
		if len(col) != n {
			return nil, fmt.Errorf("%w: generator %d has length %d, center length %d", ErrDimensionMismatch, j, len(col), n)
		}
		g.SetCol(j, col)
	}
	return NewZonotope(center, g)
}

// MustZonotope is like NewZonotope but panics on error. It is meant for
// literal fixtures whose shape is known to be valid.
func MustZonotope(center []float64, generators mat.Matrix) *Zonotope {
	z, err := NewZonotope(center, generators)
	if err != nil {
		panic(err)
	}
	return z
}

// Point returns the zonotope holding only c.
func Point(c []float64) (*Zonotope, error) {
	return NewZonotope(c, nil)
}

func (z *Zonotope) Dim() int {
	return z.center.Len()
}

func (z *Zonotope) NumGenerators() int {
	if z.gens == nil {
		return 0
	}
	_, c := z.gens.Dims()
	return c
}

func (z *Zonotope) IsPoint() bool {
	return z.gens == nil
}

// Center returns a copy of the center vector.
func (z *Zonotope) Center() []float64 {
	return cloneFloats(z.center.RawVector().Data)
}

// Generators returns a copy of the generator matrix, or nil for a point.
func (z *Zonotope) Generators() *mat.Dense {
	if z.gens == nil {
		return nil
	}
	return mat.DenseCopyOf(z.gens)
}

// Generator returns a copy of the i-th generator column.
func (z *Zonotope) Generator(i int) []float64 {
	if i < 0 || i >= z.NumGenerators() {
		panic(fmt.Sprintf("sets: generator index %d out of range [0,%d)", i, z.NumGenerators()))
	}
	return mat.Col(nil, i, z.gens)
}

// Centered returns the zonotope with the same generators and a zero center.
func (z *Zonotope) Centered() *Zonotope {
	out := &Zonotope{center: mat.NewVecDense(z.Dim(), nil)}
	if z.gens != nil {
		out.gens = mat.DenseCopyOf(z.gens)
	}
	return out
}

// Project restricts the zonotope to the coordinate block [lo, hi). Every
// generator column is kept, including columns that become zero.
func (z *Zonotope) Project(lo, hi int) (*Zonotope, error) {
	if lo < 0 || hi > z.Dim() || lo >= hi {
		return nil, fmt.Errorf("%w: projection [%d,%d) of a %d-dimensional zonotope", ErrDimensionMismatch, lo, hi, z.Dim())
	}
	out := &Zonotope{center: mat.NewVecDense(hi-lo, nil)}
	out.center.CopyVec(z.center.SliceVec(lo, hi))
	if z.gens != nil {
		out.gens = mat.DenseCopyOf(z.gens.Slice(lo, hi, 0, z.NumGenerators()))
	}
	return out, nil
}

// Compact drops all-zero generator columns. The represented set is unchanged.
func (z *Zonotope) Compact() *Zonotope {
	out := &Zonotope{center: mat.VecDenseCopyOf(z.center)}
	if z.gens == nil {
		return out
	}

	var keep []int
	for j := 0; j < z.NumGenerators(); j++ {
		for i := 0; i < z.Dim(); i++ {
			if z.gens.At(i, j) != 0 {
				keep = append(keep, j)
				break
			}
		}
	}
	if len(keep) == 0 {
		return out
	}

	out.gens = mat.NewDense(z.Dim(), len(keep), nil)
	for k, j := range keep {
		out.gens.SetCol(k, mat.Col(nil, j, z.gens))
	}
	return out
}

// Bounds returns the interval hull c ± Σ|gⱼ|.
func (z *Zonotope) Bounds() (lo, hi []float64) {
	c := z.center.RawVector().Data
	lo = make([]float64, len(c))
	hi = make([]float64, len(c))
	for i, ci := range c {
		radius := 0.0
		for j := 0; j < z.NumGenerators(); j++ {
			radius += math.Abs(z.gens.At(i, j))
		}
		lo[i] = ci - radius
		hi[i] = ci + radius
	}
	return lo, hi
}

// Equal reports whether both zonotopes have bit-identical centers and generators.
func (z *Zonotope) Equal(other *Zonotope) bool {
	if other == nil || z.Dim() != other.Dim() || z.NumGenerators() != other.NumGenerators() {
		return false
	}
	if !mat.Equal(z.center, other.center) {
		return false
	}
	if z.gens == nil {
		return true
	}
	return mat.Equal(z.gens, other.gens)
}

func (z *Zonotope) String() string {
	return fmt.Sprintf("Zonotope(dim=%d, generators=%d)", z.Dim(), z.NumGenerators())
}

// CartesianProduct returns the zonotope over the concatenated coordinates of
// a and b: the center is concat(ca, cb) and the generator matrix is
// blkdiag(Ga, Gb). Coordinates of a come first.
func CartesianProduct(a, b *Zonotope) *Zonotope {
	na, nb := a.Dim(), b.Dim()
	ga, gb := a.NumGenerators(), b.NumGenerators()

	center := make([]float64, 0, na+nb)
	center = append(center, a.center.RawVector().Data...)
	center = append(center, b.center.RawVector().Data...)

	out := &Zonotope{center: mat.NewVecDense(na+nb, center)}
	if ga+gb == 0 {
		return out
	}

	out.gens = mat.NewDense(na+nb, ga+gb, nil)
	if ga > 0 {
		out.gens.Slice(0, na, 0, ga).(*mat.Dense).Copy(a.gens)
	}
	if gb > 0 {
		out.gens.Slice(na, na+nb, ga, ga+gb).(*mat.Dense).Copy(b.gens)
	}
	return out
}

func isEmptyMatrix(m mat.Matrix) bool {
	switch v := m.(type) {
	case nil:
		return true
	case *mat.Dense:
		return v == nil || v.IsEmpty()
	}
	return false
}

func cloneFloats(v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)
	return out
}
