package physics

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/dynsets/internal/dynamo"
)

func TestLorenzEquilibrium(t *testing.T) {
	l := NewLorenz()
	dx := l.Derive(dynamo.State{0, 0, 0}, dynamo.Control{0, 0, 0}, 0)
	for i, v := range dx {
		if v != 0 {
			t.Errorf("expected zero derivative at origin, dx[%d] = %f", i, v)
		}
	}

	dx = l.Derive(dynamo.State{0, 0, 0}, dynamo.Control{1, 2, 3}, 0)
	if dx[0] != 1 || dx[1] != 2 || dx[2] != 3 {
		t.Errorf("input should enter additively, got %v", dx)
	}
}

func TestLorenzFromParams(t *testing.T) {
	l, err := NewLorenzFromParams([]float64{1, 2, 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p := l.Params(); p[0] != 1 || p[1] != 2 || p[2] != 3 {
		t.Errorf("Params() = %v, want [1 2 3]", p)
	}

	if _, err := NewLorenzFromParams([]float64{1}); !errors.Is(err, dynamo.ErrParameterBounds) {
		t.Errorf("expected ErrParameterBounds, got %v", err)
	}
}

func TestLorenz2DDimensions(t *testing.T) {
	l := NewLorenz2D()
	if l.StateDim() != 2 || l.ControlDim() != 2 {
		t.Errorf("expected 2/2 dims, got %d/%d", l.StateDim(), l.ControlDim())
	}
	dx := l.Derive(dynamo.State{1, 1}, dynamo.Control{0, 0}, 0)
	want := 1*(28-3.0/8.0) - 1
	if math.Abs(dx[1]-want) > 1e-12 {
		t.Errorf("dy = %f, want %f", dx[1], want)
	}
}

func TestBicycleStraightLine(t *testing.T) {
	b := NewBicycle()
	dx := b.Derive(dynamo.State{0, 0, 0, 5}, dynamo.Control{1, 0}, 0)

	if math.Abs(dx[0]-5) > 1e-12 || math.Abs(dx[1]) > 1e-12 || math.Abs(dx[2]) > 1e-12 {
		t.Errorf("zero steering should drive straight, got %v", dx)
	}
	if dx[3] != 1 {
		t.Errorf("expected dv = 1, got %f", dx[3])
	}
}

func TestBicycleHOActuators(t *testing.T) {
	b := NewBicycleHO()
	dx := b.Derive(dynamo.State{0, 0, 0, 5, 0.5, 0}, dynamo.Control{0.1, -0.2}, 0)
	if len(dx) != 6 {
		t.Fatalf("expected 6 derivatives, got %d", len(dx))
	}
	if dx[3] != 0.5 || dx[4] != 0.1 || dx[5] != -0.2 {
		t.Errorf("unexpected actuator derivatives %v", dx)
	}
}

func TestCSTRSteadyState(t *testing.T) {
	c := NewCSTR()
	dx := c.Derive(dynamo.State{0.5, 350}, nil, 0)

	// k(350 K) = 1/min for the nominal constants.
	if math.Abs(dx[0]) > 1e-3 {
		t.Errorf("expected ~0 concentration derivative, got %f", dx[0])
	}
	if math.Abs(dx[1]) > 0.1 {
		t.Errorf("expected ~0 temperature derivative, got %f", dx[1])
	}
}

func TestTankChainConservesFlow(t *testing.T) {
	tc := NewTankChain(4)
	x := dynamo.State{1, 2, 3, 4}
	dx := tc.Derive(x, dynamo.Control{0.2}, 0)

	total := 0.0
	for _, v := range dx {
		total += v
	}
	last := tc.Outflow[3] * math.Sqrt(2*tc.Gravity*x[3])
	if math.Abs(total-(0.2-last)) > 1e-12 {
		t.Errorf("net change %f, want inflow minus final outflow %f", total, 0.2-last)
	}

	dx = tc.Derive(dynamo.State{-1, 0, 0, 0}, dynamo.Control{0}, 0)
	for i, v := range dx {
		if math.IsNaN(v) {
			t.Errorf("negative level produced NaN at %d", i)
		}
	}
}
