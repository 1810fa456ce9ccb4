// Package kinetic provides closed-form kinetic factors for reaction-rate
// modeling.
//
// Each factor implements the [Factor] interface, defining one multiplicative
// term of a reaction rate as a function of a single solute concentration,
// together with its first derivative (needed by implicit ODE solvers):
//
//   - [Haldane]: saturation with substrate self-inhibition
//   - [Monod]: classic saturation kinetics
//   - [SimpleInhibition]: non-competitive inhibition
//   - [Hill]: cooperative saturation
//   - [Linear]: rate proportional to solute with a gain
//   - [FirstOrder]: rate equal to solute, no parameters
//
// # Storage Modes
//
// Every factor evaluates in two interchangeable parameter-storage modes;
// see [Factor]. The array-mode methods read parameters into locals and
// delegate to the same formula as the instance-mode methods, so the two
// paths are bit-for-bit identical.
//
// # Numeric Policy
//
// Evaluation is pure float64 arithmetic with no guards: a zero inhibition
// constant or a zero denominator yields Inf/NaN per IEEE semantics, to be
// handled by the calling solver. Rejecting non-positive constants is the
// configuration validator's job, upstream of this package.
package kinetic
