package models

import "github.com/san-kum/dynsets/internal/dynamo"

type Kind int

const (
	LinearDT Kind = iota
	NonlinearDT
	LinearARX
	NonlinearARX
)

func (k Kind) String() string {
	switch k {
	case LinearDT:
		return "linearSysDT"
	case NonlinearDT:
		return "nonlinearSysDT"
	case LinearARX:
		return "linearARX"
	case NonlinearARX:
		return "nonlinearARX"
	}
	return "unknown"
}

// IsARX reports whether the model evolves a stacked output history.
func (k Kind) IsARX() bool {
	return k == LinearARX || k == NonlinearARX
}

// Dynamics maps a state (or output history) and an input (or input window)
// to the next state (or output).
type Dynamics interface {
	Apply(x dynamo.State, u dynamo.Control) dynamo.State
}

type DynamicsFunc func(x dynamo.State, u dynamo.Control) dynamo.State

func (f DynamicsFunc) Apply(x dynamo.State, u dynamo.Control) dynamo.State {
	return f(x, u)
}

// Dims declares the dimensions of a nonlinear state-space model. Output may
// be zero when the output map is the identity.
type Dims struct {
	State  int
	Input  int
	Output int
}
