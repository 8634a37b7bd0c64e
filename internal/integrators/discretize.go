package integrators

import "github.com/san-kum/dynsets/internal/dynamo"

// Discretize returns the sampled map x⁺ = Φ(x, u) obtained by one
// integrator step of length dt with the input held constant.
func Discretize(sys dynamo.System, integ dynamo.Integrator, dt float64) func(x dynamo.State, u dynamo.Control) dynamo.State {
	return func(x dynamo.State, u dynamo.Control) dynamo.State {
		return integ.Step(sys, x, u, 0, dt)
	}
}
