package physics

import (
	"math"

	"github.com/san-kum/dynsets/internal/dynamo"
)

// TankChain is a cascade of tanks draining into each other under gravity.
// State: fluid levels [h1..hN]; control: [inflow into the first tank].
type TankChain struct {
	Outflow []float64 // outflow coefficient of each tank
	Gravity float64
}

func NewTankChain(n int) *TankChain {
	k := make([]float64, n)
	for i := range k {
		k[i] = 0.015
	}
	return &TankChain{Outflow: k, Gravity: DefaultGravity}
}

func (tc *TankChain) StateDim() int   { return len(tc.Outflow) }
func (tc *TankChain) ControlDim() int { return 1 }

func (tc *TankChain) Derive(x dynamo.State, u dynamo.Control, _ float64) dynamo.State {
	deriv := make(dynamo.State, len(tc.Outflow))

	inflow := 0.0
	if len(u) > 0 {
		inflow = u[0]
	}
	for i, k := range tc.Outflow {
		out := k * math.Sqrt(2*tc.Gravity*math.Max(x[i], 0))
		deriv[i] = inflow - out
		inflow = out
	}
	return deriv
}
