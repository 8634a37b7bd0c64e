// Package dynamo provides the shared primitives for discrete-time system fixtures.
//
// The package defines the small vocabulary the rest of the module builds on:
//
//   - [State]: vector representing a system state or a stacked output history
//   - [Control]: vector representing a (possibly stacked) input
//   - [System]: continuous vector field dX/dt = f(X, u, t), discretized by the integrators
//   - [Integrator]: one-step numerical map used to turn a [System] into a discrete-time model
//
// # Example
//
//	field := physics.NewLorenz()
//	step := integrators.Discretize(field, integrators.NewRK4(), 0.01)
//	next := step(x, u)
//
// # Thread Safety
//
// States and controls are plain slices. Everything built on top of them in this
// module is immutable after construction and safe for concurrent use.
package dynamo
