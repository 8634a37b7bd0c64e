package dynamo

import "math"

type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (s State) Add(other State) State {
	result := make(State, len(s))
	for i := range s {
		if i < len(other) {
			result[i] = s[i] + other[i]
		} else {
			result[i] = s[i]
		}
	}
	return result
}

// Window returns the i-th block of width w, as a view into s.
func (s State) Window(i, w int) State {
	return s[i*w : (i+1)*w]
}

type Control []float64

// Window returns the i-th block of width w, as a view into u.
func (u Control) Window(i, w int) Control {
	return u[i*w : (i+1)*w]
}

// System is a continuous-time vector field dX/dt = f(X, u, t).
type System interface {
	Derive(x State, u Control, t float64) State
	StateDim() int
	ControlDim() int
}

type Integrator interface {
	Step(dyn System, x State, u Control, t float64, dt float64) State
}
