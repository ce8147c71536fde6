// Package dual implements forward-mode automatic differentiation through
// dual numbers: float64 values carrying one derivative slot per named axis,
// propagated through arithmetic and elementary functions without building a
// computation graph.
//
// A Schema fixes the ordered axis set of one family at setup time and never
// changes afterward. Numbers of a family are created from the schema
// (constants, seeded variables, explicit derivatives) and combined exactly
// like plain scalars:
//
//	s := dual.MustSchema("x", "y")
//	x := s.Var("x", 5)
//	y := s.Var("y", 7)
//	z := x.Pow(2).Add(y.Mul(y.Sin()))
//	z.Deriv("x") // 10
//	z.Deriv("y") // y*cos(y) + sin(y) at y=7
//
// Built on gonum.org/v1/gonum/floats for the slot-vector arithmetic.
//
// Error policy:
//   - Invalid axis lists fail once, at NewSchema, with *SchemaError.
//   - Numeric-domain conditions (division by zero, fractional powers of
//     negative bases, tangent at a singularity) are not errors: NaN and Inf
//     propagate through every kernel per IEEE 754, with no guards.
//   - Mixing Numbers of different schemas panics with ErrMismatchedFamily.
//
// All operations are pure; Numbers are safe for concurrent use once their
// schema is established.
package dual
