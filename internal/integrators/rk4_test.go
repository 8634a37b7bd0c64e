package integrators

import (
	"math"
	"testing"

	"github.com/san-kum/dynsets/internal/dynamo"
)

type simpleDynamics struct{}

func (s *simpleDynamics) Derive(x dynamo.State, u dynamo.Control, t float64) dynamo.State {
	return dynamo.State{x[1], -x[0]}
}

func (s *simpleDynamics) StateDim() int   { return 2 }
func (s *simpleDynamics) ControlDim() int { return 0 }

type drivenDecay struct{}

func (d *drivenDecay) Derive(x dynamo.State, u dynamo.Control, t float64) dynamo.State {
	return dynamo.State{-x[0] + u[0]}
}

func (d *drivenDecay) StateDim() int   { return 1 }
func (d *drivenDecay) ControlDim() int { return 1 }

func TestRK4Accuracy(t *testing.T) {
	dyn := &simpleDynamics{}
	integ := NewRK4()

	x0 := dynamo.State{1.0, 0.0}
	u := dynamo.Control{}
	dt := 0.01
	steps := 100

	x := x0
	for i := 0; i < steps; i++ {
		x = integ.Step(dyn, x, u, float64(i)*dt, dt)
	}

	expectedX := math.Cos(float64(steps) * dt)
	expectedV := -math.Sin(float64(steps) * dt)

	if math.Abs(x[0]-expectedX) > 1e-4 {
		t.Errorf("position error too large: got %.6f, expected %.6f", x[0], expectedX)
	}

	if math.Abs(x[1]-expectedV) > 1e-4 {
		t.Errorf("velocity error too large: got %.6f, expected %.6f", x[1], expectedV)
	}
}

func TestEulerStep(t *testing.T) {
	x := NewEuler().Step(&drivenDecay{}, dynamo.State{1}, dynamo.Control{0.5}, 0, 0.1)
	if math.Abs(x[0]-0.95) > 1e-12 {
		t.Errorf("Euler step = %f, want 0.95", x[0])
	}
}

func TestDiscretize(t *testing.T) {
	step := Discretize(&drivenDecay{}, NewRK4(), 0.1)

	x := dynamo.State{1}
	next := step(x, dynamo.Control{1})
	if next[0] != 1 {
		t.Errorf("fixed point x = u should be preserved, got %f", next[0])
	}
	if x[0] != 1 {
		t.Error("Discretize mutated its input")
	}

	next = step(dynamo.State{1}, dynamo.Control{0})
	want := math.Exp(-0.1)
	if math.Abs(next[0]-want) > 1e-6 {
		t.Errorf("decay step = %.9f, want %.9f", next[0], want)
	}
}
