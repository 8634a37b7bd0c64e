package physics

import (
	"fmt"

	"github.com/san-kum/dynsets/internal/dynamo"
)

// Lorenz is the Lorenz system with an additive input on every coordinate.
type Lorenz struct{ Sigma, Rho, Beta float64 }

func NewLorenz() *Lorenz          { return &Lorenz{10.0, 28.0, 8.0 / 3.0} }
func (l *Lorenz) StateDim() int   { return 3 }
func (l *Lorenz) ControlDim() int { return 3 }

// NewLorenzFromParams builds the system from [sigma, rho, beta].
func NewLorenzFromParams(p []float64) (*Lorenz, error) {
	if len(p) != 3 {
		return nil, fmt.Errorf("%w: lorenz expects 3 parameters, got %d", dynamo.ErrParameterBounds, len(p))
	}
	return &Lorenz{p[0], p[1], p[2]}, nil
}

// Derive calculates the Lorenz attractor derivatives.
func (l *Lorenz) Derive(s dynamo.State, u dynamo.Control, _ float64) dynamo.State {
	d := dynamo.State{l.Sigma * (s[1] - s[0]), s[0]*(l.Rho-s[2]) - s[1], s[0]*s[1] - l.Beta*s[2]}
	return d.Add(dynamo.State(u))
}

func (l *Lorenz) Params() []float64 { return []float64{l.Sigma, l.Rho, l.Beta} }

// Lorenz2D keeps the (x, y) pair of the Lorenz system with z slaved to x²/β.
type Lorenz2D struct{ Sigma, Rho, Beta float64 }

func NewLorenz2D() *Lorenz2D        { return &Lorenz2D{10.0, 28.0, 8.0 / 3.0} }
func (l *Lorenz2D) StateDim() int   { return 2 }
func (l *Lorenz2D) ControlDim() int { return 2 }

// NewLorenz2DFromParams builds the system from [sigma, rho, beta].
func NewLorenz2DFromParams(p []float64) (*Lorenz2D, error) {
	if len(p) != 3 {
		return nil, fmt.Errorf("%w: lorenz_2D expects 3 parameters, got %d", dynamo.ErrParameterBounds, len(p))
	}
	return &Lorenz2D{p[0], p[1], p[2]}, nil
}

func (l *Lorenz2D) Derive(s dynamo.State, u dynamo.Control, _ float64) dynamo.State {
	z := s[0] * s[0] / l.Beta
	d := dynamo.State{l.Sigma * (s[1] - s[0]), s[0]*(l.Rho-z) - s[1]}
	return d.Add(dynamo.State(u))
}

func (l *Lorenz2D) Params() []float64 { return []float64{l.Sigma, l.Rho, l.Beta} }
