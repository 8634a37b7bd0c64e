package uncertainty

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Fixed is a literal center and generator matrix. A nil Generators matrix
// describes a point.
type Fixed struct {
	Center     []float64
	Generators *mat.Dense
}

// Scaled parameterizes a randomly drawn set.
type Scaled struct {
	// Base center; nil means the origin.
	Center []float64
	// Scale of the random center perturbation; zero keeps the base center.
	CenterScale float64
	// Scale of the generator magnitudes.
	GenScale float64
	// Number of dense generator columns in rand mode; zero means dim.
	Generators int
}

// Params holds the per-mode description of one uncertainty variable. A nil
// Diag or Rand field means the mode is not supported. RandFixed, when set,
// replaces random draws in rand mode with a literal fixture.
type Params struct {
	Standard  Fixed
	Diag      *Scaled
	Rand      *Scaled
	RandFixed *Fixed
}

// StandardOnly returns params that only support the standard mode.
func StandardOnly(center []float64, generators *mat.Dense) Params {
	return Params{Standard: Fixed{Center: center, Generators: generators}}
}

// Supports reports whether m can be generated from p.
func (p Params) Supports(m Mode) bool {
	switch m {
	case Standard:
		return true
	case Diag:
		return p.Diag != nil
	case Rand:
		return p.Rand != nil || p.RandFixed != nil
	}
	return false
}

// Validate checks every literal against dim.
func (p Params) Validate(dim int) error {
	if err := p.Standard.validate(dim); err != nil {
		return fmt.Errorf("standard: %w", err)
	}
	if p.RandFixed != nil {
		if err := p.RandFixed.validate(dim); err != nil {
			return fmt.Errorf("rand: %w", err)
		}
	}
	scaled := []struct {
		name Mode
		s    *Scaled
	}{{Diag, p.Diag}, {Rand, p.Rand}}
	for _, e := range scaled {
		name, s := e.name, e.s
		if s == nil {
			continue
		}
		if s.Center != nil && len(s.Center) != dim {
			return fmt.Errorf("%s: %w: center length %d, want %d", name, ErrInvalidParams, len(s.Center), dim)
		}
		if s.Generators < 0 || s.GenScale < 0 {
			return fmt.Errorf("%s: %w: negative scale or generator count", name, ErrInvalidParams)
		}
	}
	return nil
}

func (f Fixed) validate(dim int) error {
	if len(f.Center) != dim {
		return fmt.Errorf("%w: center length %d, want %d", ErrInvalidParams, len(f.Center), dim)
	}
	if f.Generators != nil {
		if r, _ := f.Generators.Dims(); r != dim {
			return fmt.Errorf("%w: generator rows %d, want %d", ErrInvalidParams, r, dim)
		}
	}
	return nil
}

// Generate produces the center and generator matrix of one uncertainty
// variable. The returned values are fresh copies. gens is nil for a point.
// Shape agreement with dim is checked by the caller when it builds the set.
func Generate(mode Mode, dim int, p Params, src Source) (center []float64, gens *mat.Dense, err error) {
	switch mode {
	case Standard:
		c, g := p.Standard.clone()
		return c, g, nil
	case Diag:
		if p.Diag == nil {
			return nil, nil, fmt.Errorf("%w: %s", ErrUnsupportedMode, mode)
		}
		if src == nil {
			return nil, nil, ErrNilSource
		}
		return diagonal(dim, *p.Diag, src)
	case Rand:
		if p.RandFixed != nil {
			c, g := p.RandFixed.clone()
			return c, g, nil
		}
		if p.Rand == nil {
			return nil, nil, fmt.Errorf("%w: %s", ErrUnsupportedMode, mode)
		}
		if src == nil {
			return nil, nil, ErrNilSource
		}
		return dense(dim, *p.Rand, src)
	}
	return nil, nil, fmt.Errorf("%w: %q", ErrUnknownMode, string(mode))
}

func (f Fixed) clone() ([]float64, *mat.Dense) {
	c := make([]float64, len(f.Center))
	copy(c, f.Center)
	if f.Generators == nil {
		return c, nil
	}
	return c, mat.DenseCopyOf(f.Generators)
}

func baseCenter(dim int, s Scaled) []float64 {
	c := make([]float64, dim)
	copy(c, s.Center)
	return c
}

// diagonal draws an axis-aligned box: uniform center offsets, then uniform
// diagonal magnitudes.
func diagonal(dim int, s Scaled, src Source) ([]float64, *mat.Dense, error) {
	if dim <= 0 {
		return nil, nil, fmt.Errorf("%w: dimension %d", ErrInvalidParams, dim)
	}
	c := baseCenter(dim, s)
	if s.CenterScale != 0 {
		for i := range c {
			c[i] += s.CenterScale * src.Float64()
		}
	}

	d := make([]float64, dim)
	for i := range d {
		d[i] = s.GenScale * src.Float64()
	}
	g := mat.NewDense(dim, dim, nil)
	for i, v := range d {
		g.Set(i, i, v)
	}
	return c, g, nil
}

// dense draws normal center offsets, then a dim×k generator matrix with
// uniform entries filled row by row.
func dense(dim int, s Scaled, src Source) ([]float64, *mat.Dense, error) {
	if dim <= 0 {
		return nil, nil, fmt.Errorf("%w: dimension %d", ErrInvalidParams, dim)
	}
	c := baseCenter(dim, s)
	if s.CenterScale != 0 {
		for i := range c {
			c[i] += s.CenterScale * src.NormFloat64()
		}
	}

	k := s.Generators
	if k == 0 {
		k = dim
	}
	data := make([]float64, dim*k)
	for i := range data {
		data[i] = s.GenScale * src.Float64()
	}
	return c, mat.NewDense(dim, k, data), nil
}
