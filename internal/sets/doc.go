// Package sets provides the zonotope and matrix zonotope primitives used to
// describe bounded uncertainty.
//
// A [Zonotope] is the set {c + Gβ : β ∈ [-1,1]^g} for a center c ∈ ℝⁿ and a
// generator matrix G ∈ ℝⁿˣᵍ. A [MatrixZonotope] is the matrix-valued analogue
// {C + Σ βᵢGᵢ}. Both are immutable: constructors copy their inputs and
// accessors return copies.
//
// gonum does not allow zero-sized dense matrices, so a zonotope without
// generators (a point) stores a nil generator matrix, and a matrix zonotope
// with zero columns stores a nil center with its shape tracked separately.
//
// No primitive performs order reduction.
package sets
