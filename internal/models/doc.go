// Package models describes discrete-time system models: linear and nonlinear
// state-space maps and linear and nonlinear ARX models.
//
// A [Model] is built once by one of the constructors, which check that every
// matrix and dimension agrees, and is immutable afterwards. ARX models carry a
// history length n_p; their "state" is the stacked output history
// [y(k-n_p); ...; y(k-1)] (oldest first) and their input window is
// [u(k-n_p); ...; u(k)].
package models
