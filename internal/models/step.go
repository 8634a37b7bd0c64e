package models

import (
	"fmt"

	"github.com/san-kum/dynsets/internal/dynamo"
	"gonum.org/v1/gonum/mat"
)

// Step evaluates one step of the model. For state-space kinds it returns the
// next state; for ARX kinds x is the output history and u the input window,
// and it returns y(k).
func (m *Model) Step(x dynamo.State, u dynamo.Control) (dynamo.State, error) {
	if len(x) != m.StateDim() {
		return nil, dimErr("state", len(x), m.StateDim())
	}
	if len(u) != m.InputWindowDim() {
		return nil, dimErr("input", len(u), m.InputWindowDim())
	}

	var next dynamo.State
	want := m.nx
	switch m.kind {
	case LinearDT:
		next = affine(m.a, x, m.b, u)
	case LinearARX:
		next = m.arx(x, u)
	default:
		next = m.f.Apply(x, u)
	}
	if len(next) != want {
		return nil, dimErr("dynamics result", len(next), want)
	}
	if !next.IsValid() {
		return nil, fmt.Errorf("%w: %v", dynamo.ErrInvalidState, next)
	}
	return next, nil
}

// Output evaluates the output map of a state-space model.
func (m *Model) Output(x dynamo.State, u dynamo.Control) (dynamo.State, error) {
	if m.kind.IsARX() {
		if len(x) != m.StateDim() {
			return nil, dimErr("history", len(x), m.StateDim())
		}
		return x.Window(m.history-1, m.nx).Clone(), nil
	}
	if len(x) != m.nx {
		return nil, dimErr("state", len(x), m.nx)
	}
	if len(u) != m.nu {
		return nil, dimErr("input", len(u), m.nu)
	}

	switch {
	case m.kind == LinearDT && m.c != nil:
		return affine(m.c, x, m.d, u), nil
	case m.kind == LinearDT:
		return affine(nil, x, m.d, u), nil
	case m.h != nil:
		y := m.h.Apply(x, u)
		if len(y) != m.ny {
			return nil, dimErr("output result", len(y), m.ny)
		}
		return y, nil
	}
	return x.Clone(), nil
}

// Advance shifts an ARX output history by one step: the oldest block is
// dropped and y is appended.
func (m *Model) Advance(history dynamo.State, y dynamo.State) (dynamo.State, error) {
	if !m.kind.IsARX() {
		return y.Clone(), nil
	}
	if len(history) != m.StateDim() {
		return nil, dimErr("history", len(history), m.StateDim())
	}
	if len(y) != m.ny {
		return nil, dimErr("output", len(y), m.ny)
	}
	next := make(dynamo.State, 0, len(history))
	next = append(next, history[m.ny:]...)
	return append(next, y...), nil
}

func (m *Model) arx(x dynamo.State, u dynamo.Control) dynamo.State {
	np := m.history
	y := mat.NewVecDense(m.ny, nil)
	var term mat.VecDense
	for i, a := range m.outCoeffs {
		// A_{i+1} multiplies y(k-i-1), stored in block np-i-1.
		term.MulVec(a, mat.NewVecDense(m.ny, x.Window(np-i-1, m.ny)))
		y.AddVec(y, &term)
	}
	for i, b := range m.inCoeffs {
		term.MulVec(b, mat.NewVecDense(m.nu, u.Window(np-i, m.nu)))
		y.AddVec(y, &term)
	}
	return dynamo.State(y.RawVector().Data)
}

// affine computes Mx + Nu; a nil M is the identity, a nil N is zero.
func affine(M *mat.Dense, x dynamo.State, N *mat.Dense, u dynamo.Control) dynamo.State {
	var out mat.VecDense
	xv := mat.NewVecDense(len(x), x.Clone())
	if M != nil {
		out.MulVec(M, xv)
	} else {
		out.CloneFromVec(xv)
	}
	if N != nil {
		var nu mat.VecDense
		nu.MulVec(N, mat.NewVecDense(len(u), u))
		out.AddVec(&out, &nu)
	}
	return dynamo.State(out.RawVector().Data)
}
