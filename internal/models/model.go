package models

import (
	"errors"
	"fmt"

	"github.com/san-kum/dynsets/internal/dynamo"
	"gonum.org/v1/gonum/mat"
)

var ErrInvalidModel = errors.New("models: invalid model")

type Model struct {
	kind    Kind
	dt      float64
	nx      int // state dim; per-step output dim for ARX kinds
	nu      int
	ny      int
	history int

	a, b, c, d *mat.Dense

	f, h Dynamics

	outCoeffs []*mat.Dense
	inCoeffs  []*mat.Dense
}

// NewLinearDT builds x⁺ = Ax + Bu, y = Cx + Du. A nil C means y = x and a
// nil D means no feedthrough.
func NewLinearDT(dt float64, A, B, C, D mat.Matrix) (*Model, error) {
	if err := checkDt(dt); err != nil {
		return nil, err
	}
	if A == nil || B == nil {
		return nil, fmt.Errorf("%w: linear model needs A and B", ErrInvalidModel)
	}
	n, na := A.Dims()
	if n != na {
		return nil, dimErr("A columns", na, n)
	}
	nb, m := B.Dims()
	if nb != n {
		return nil, dimErr("B rows", nb, n)
	}

	model := &Model{kind: LinearDT, dt: dt, nx: n, nu: m, ny: n, a: mat.DenseCopyOf(A), b: mat.DenseCopyOf(B)}
	if C != nil {
		p, nc := C.Dims()
		if nc != n {
			return nil, dimErr("C columns", nc, n)
		}
		model.ny = p
		model.c = mat.DenseCopyOf(C)
	}
	if D != nil {
		p, md := D.Dims()
		if p != model.ny {
			return nil, dimErr("D rows", p, model.ny)
		}
		if md != m {
			return nil, dimErr("D columns", md, m)
		}
		model.d = mat.DenseCopyOf(D)
	}
	return model, nil
}

// NewNonlinearDT builds x⁺ = f(x, u), y = h(x, u). A nil h means y = x.
func NewNonlinearDT(dt float64, dims Dims, f, h Dynamics) (*Model, error) {
	if err := checkDt(dt); err != nil {
		return nil, err
	}
	if f == nil {
		return nil, fmt.Errorf("%w: nonlinear model needs a dynamics map", ErrInvalidModel)
	}
	if dims.State <= 0 || dims.Input <= 0 {
		return nil, fmt.Errorf("%w: state and input dimensions must be positive", ErrInvalidModel)
	}
	ny := dims.Output
	if h == nil {
		if ny != 0 && ny != dims.State {
			return nil, dimErr("identity output", ny, dims.State)
		}
		ny = dims.State
	} else if ny <= 0 {
		return nil, fmt.Errorf("%w: output dimension must be positive", ErrInvalidModel)
	}
	return &Model{kind: NonlinearDT, dt: dt, nx: dims.State, nu: dims.Input, ny: ny, f: f, h: h}, nil
}

// NewLinearARX builds y(k) = Σᵢ₌₁ⁿᵖ Aᵢ y(k-i) + Σᵢ₌₀ⁿᵖ Bᵢ u(k-i). The input
// sequence carries one more matrix than the output sequence; its length minus
// one is the history length n_p.
func NewLinearARX(dt float64, outCoeffs, inCoeffs []mat.Matrix) (*Model, error) {
	if err := checkDt(dt); err != nil {
		return nil, err
	}
	np := len(inCoeffs) - 1
	if np < 1 {
		return nil, fmt.Errorf("%w: ARX model needs at least two input coefficients", ErrInvalidModel)
	}
	if len(outCoeffs) != np {
		return nil, dimErr("output coefficient count", len(outCoeffs), np)
	}

	ny, nu := inCoeffs[0].Dims()
	model := &Model{kind: LinearARX, dt: dt, nx: ny, nu: nu, ny: ny, history: np}
	for i, a := range outCoeffs {
		r, c := a.Dims()
		if r != ny || c != ny {
			return nil, fmt.Errorf("%w: A%d is %dx%d, want %dx%d", dynamo.ErrDimensionMismatch, i+1, r, c, ny, ny)
		}
		model.outCoeffs = append(model.outCoeffs, mat.DenseCopyOf(a))
	}
	for i, b := range inCoeffs {
		r, c := b.Dims()
		if r != ny || c != nu {
			return nil, fmt.Errorf("%w: B%d is %dx%d, want %dx%d", dynamo.ErrDimensionMismatch, i, r, c, ny, nu)
		}
		model.inCoeffs = append(model.inCoeffs, mat.DenseCopyOf(b))
	}
	return model, nil
}

// NewNonlinearARX builds y(k) = f(output history, input window).
func NewNonlinearARX(dt float64, dimY, dimU, np int, f Dynamics) (*Model, error) {
	if err := checkDt(dt); err != nil {
		return nil, err
	}
	if f == nil {
		return nil, fmt.Errorf("%w: NARX model needs a dynamics map", ErrInvalidModel)
	}
	if dimY <= 0 || dimU <= 0 || np < 1 {
		return nil, fmt.Errorf("%w: NARX needs positive dimensions and history", ErrInvalidModel)
	}
	return &Model{kind: NonlinearARX, dt: dt, nx: dimY, nu: dimU, ny: dimY, history: np, f: f}, nil
}

func checkDt(dt float64) error {
	if !(dt > 0) {
		return fmt.Errorf("%w: sampling interval %v must be positive", ErrInvalidModel, dt)
	}
	return nil
}

func dimErr(what string, got, want int) error {
	return &dynamo.DimensionError{What: what, Got: got, Want: want}
}

func (m *Model) Kind() Kind     { return m.kind }
func (m *Model) Dt() float64    { return m.dt }
func (m *Model) History() int   { return m.history }
func (m *Model) InputDim() int  { return m.nu }
func (m *Model) OutputDim() int { return m.ny }

// StateDim is the physical state dimension, or dim_y·n_p for ARX kinds.
func (m *Model) StateDim() int {
	if m.kind.IsARX() {
		return m.nx * m.history
	}
	return m.nx
}

// InputWindowDim is the length of the input argument of Step.
func (m *Model) InputWindowDim() int {
	if m.kind.IsARX() {
		return m.nu * (m.history + 1)
	}
	return m.nu
}

func (m *Model) A() *mat.Dense { return copyOrNil(m.a) }
func (m *Model) B() *mat.Dense { return copyOrNil(m.b) }
func (m *Model) C() *mat.Dense { return copyOrNil(m.c) }
func (m *Model) D() *mat.Dense { return copyOrNil(m.d) }

// OutputCoeffs returns copies of A₁…A_{n_p}.
func (m *Model) OutputCoeffs() []*mat.Dense { return copyAll(m.outCoeffs) }

// InputCoeffs returns copies of B₀…B_{n_p}.
func (m *Model) InputCoeffs() []*mat.Dense { return copyAll(m.inCoeffs) }

// Dynamics returns the nonlinear map, or nil for linear kinds.
func (m *Model) Dynamics() Dynamics { return m.f }

func (m *Model) String() string {
	if m.kind.IsARX() {
		return fmt.Sprintf("%s(dt=%g, dim_y=%d, dim_u=%d, n_p=%d)", m.kind, m.dt, m.ny, m.nu, m.history)
	}
	return fmt.Sprintf("%s(dt=%g, dim_x=%d, dim_u=%d, dim_y=%d)", m.kind, m.dt, m.nx, m.nu, m.ny)
}

func copyOrNil(d *mat.Dense) *mat.Dense {
	if d == nil {
		return nil
	}
	return mat.DenseCopyOf(d)
}

func copyAll(ds []*mat.Dense) []*mat.Dense {
	out := make([]*mat.Dense, len(ds))
	for i, d := range ds {
		out[i] = mat.DenseCopyOf(d)
	}
	return out
}
