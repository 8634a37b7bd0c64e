// Package physics provides the continuous-time vector fields behind the
// nonlinear catalog entries.
//
// Each model implements [dynamo.System]. Catalog entries discretize them with
// an integrator from the integrators package:
//
//   - [Lorenz]: butterfly attractor driven by an additive input
//   - [Lorenz2D]: planar reduction of the Lorenz system
//   - [Bicycle]: kinematic single-track vehicle
//   - [BicycleHO]: kinematic bicycle with integrated actuator states
//   - [CSTR]: exothermic continuous stirred tank reactor
//   - [TankChain]: cascade of gravity-drained tanks
//
// Parametric models can be built from a parameter vector and report it back
// through Params, so catalog entries can thread a ground-truth vector through.
package physics
