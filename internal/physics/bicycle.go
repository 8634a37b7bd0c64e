package physics

import (
	"fmt"
	"math"

	"github.com/san-kum/dynsets/internal/dynamo"
)

// Bicycle is the kinematic single-track model.
// State: [px, py, heading, v]; control: [acceleration, steering angle].
type Bicycle struct {
	Lf, Lr float64 // distance from the center of mass to the front/rear axle
}

func NewBicycle() *Bicycle { return &Bicycle{Lf: 1.2, Lr: 1.5} }

// NewBicycleFromParams builds the model from [lf, lr].
func NewBicycleFromParams(p []float64) (*Bicycle, error) {
	if len(p) != 2 {
		return nil, fmt.Errorf("%w: bicycle expects 2 parameters, got %d", dynamo.ErrParameterBounds, len(p))
	}
	if p[0] <= 0 || p[1] <= 0 {
		return nil, fmt.Errorf("%w: axle distances must be positive", dynamo.ErrParameterBounds)
	}
	return &Bicycle{Lf: p[0], Lr: p[1]}, nil
}

func (b *Bicycle) StateDim() int     { return 4 }
func (b *Bicycle) ControlDim() int   { return 2 }
func (b *Bicycle) Params() []float64 { return []float64{b.Lf, b.Lr} }

func (b *Bicycle) Derive(x dynamo.State, u dynamo.Control, _ float64) dynamo.State {
	return b.kinematics(x[2], x[3], u[0], u[1])
}

func (b *Bicycle) kinematics(heading, v, accel, steer float64) dynamo.State {
	slip := math.Atan(b.Lr / (b.Lf + b.Lr) * math.Tan(steer))
	return dynamo.State{
		v * math.Cos(heading+slip),
		v * math.Sin(heading+slip),
		v / b.Lr * math.Sin(slip),
		accel,
	}
}

// BicycleHO extends the kinematic bicycle with the actuators as states.
// State: [px, py, heading, v, acceleration, steering angle];
// control: [jerk, steering rate].
type BicycleHO struct {
	Bicycle
}

func NewBicycleHO() *BicycleHO { return &BicycleHO{Bicycle: *NewBicycle()} }

// NewBicycleHOFromParams builds the model from [lf, lr].
func NewBicycleHOFromParams(p []float64) (*BicycleHO, error) {
	b, err := NewBicycleFromParams(p)
	if err != nil {
		return nil, err
	}
	return &BicycleHO{Bicycle: *b}, nil
}

func (b *BicycleHO) StateDim() int   { return 6 }
func (b *BicycleHO) ControlDim() int { return 2 }

func (b *BicycleHO) Derive(x dynamo.State, u dynamo.Control, _ float64) dynamo.State {
	d := b.kinematics(x[2], x[3], x[4], x[5])
	return append(d, u[0], u[1])
}
