package physics

import (
	"math"

	"github.com/san-kum/dynsets/internal/dynamo"
)

// CSTR is a first-order exothermic reaction in a cooled stirred tank.
// State: [concentration (mol/L), temperature (K)]; control: [coolant temperature (K)].
// Without a control input the coolant stays at its nominal temperature.
type CSTR struct {
	Flow, Volume       float64 // L/min, L
	FeedConc, FeedTemp float64 // mol/L, K
	Density, HeatCap   float64 // g/L, J/(g K)
	ReactionHeat       float64 // -ΔH, J/mol
	ActivationTemp     float64 // E/R, K
	RateConst          float64 // 1/min
	HeatTransfer       float64 // UA, J/(min K)
	CoolantTemp        float64 // K
}

func NewCSTR() *CSTR {
	return &CSTR{
		Flow:           100,
		Volume:         100,
		FeedConc:       1,
		FeedTemp:       350,
		Density:        1000,
		HeatCap:        0.239,
		ReactionHeat:   5e4,
		ActivationTemp: 8750,
		RateConst:      7.2e10,
		HeatTransfer:   5e4,
		CoolantTemp:    300,
	}
}

func (c *CSTR) StateDim() int   { return 2 }
func (c *CSTR) ControlDim() int { return 1 }

func (c *CSTR) Derive(x dynamo.State, u dynamo.Control, _ float64) dynamo.State {
	conc, temp := x[0], x[1]
	coolant := c.CoolantTemp
	if len(u) > 0 {
		coolant = u[0]
	}

	rate := c.RateConst * math.Exp(-c.ActivationTemp/temp) * conc
	dilution := c.Flow / c.Volume
	rhoCp := c.Density * c.HeatCap

	return dynamo.State{
		dilution*(c.FeedConc-conc) - rate,
		dilution*(c.FeedTemp-temp) + c.ReactionHeat/rhoCp*rate + c.HeatTransfer/(c.Volume*rhoCp)*(coolant-temp),
	}
}
