// Package common provides shared helpers for the calculus provider modules.
//
// The calculus provider exposes forward-mode automatic differentiation over
// named-axis dual numbers:
//   - construct: family definition, value construction, derivative extraction
//   - operations: arithmetic (add, subtract, multiply, divide, negate) and
//     elementary functions (pow, invert, sin, cos, tan)
//
// Built on the internal/dual engine. Dual values cross the tool boundary as
//
//	{"real": 2.5, "derivatives": {"x": 1, "y": 0}}
//
// Bare numbers lift to constants of the target family (every derivative
// slot zero) wherever a dual value is expected. Numeric-domain conditions
// are never tool failures: NaN and Inf encode as the strings "NaN", "+Inf"
// and "-Inf", since JSON has no literals for them.
package common
