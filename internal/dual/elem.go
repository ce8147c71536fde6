package dual

import (
	gomath "math"

	"gonum.org/v1/gonum/floats"
)

// Pow returns u raised to the scalar power p. The power rule scales every
// slot by p * u.real^(p-1), with the factor computed from the real part
// before it is replaced. Domain edge cases (zero base with a fractional or
// negative exponent) are not guarded: whatever math.Pow returns, including
// NaN or Inf, flows into the slots as-is.
func (u Number) Pow(p float64) Number {
	r := u.real
	factor := p * gomath.Pow(r, p-1)

	eps := make([]float64, len(u.eps))
	floats.ScaleTo(eps, factor, u.eps)
	return Number{schema: u.schema, real: gomath.Pow(r, p), eps: eps}
}

// Inv returns the reciprocal of u, defined as u.Pow(-1). A zero real part
// surfaces as Inf/NaN per IEEE 754, propagated through the power rule.
func (u Number) Inv() Number {
	return u.Pow(-1)
}

// Sin returns the sine of u; every slot is scaled by cos of the original
// real part.
func (u Number) Sin() Number {
	r := gomath.Sin(u.real)
	dr := gomath.Cos(u.real)

	eps := make([]float64, len(u.eps))
	floats.ScaleTo(eps, dr, u.eps)
	return Number{schema: u.schema, real: r, eps: eps}
}

// Cos returns the cosine of u; every slot is scaled by -sin of the original
// real part.
func (u Number) Cos() Number {
	r := gomath.Cos(u.real)
	dr := -gomath.Sin(u.real)

	eps := make([]float64, len(u.eps))
	floats.ScaleTo(eps, dr, u.eps)
	return Number{schema: u.schema, real: r, eps: eps}
}

// Tan returns the tangent of u, recomposed as Sin/Cos rather than a
// closed-form sec² derivative. Near a singularity the result inherits the
// Inf/NaN behavior of the reciprocal path inside Div.
func (u Number) Tan() Number {
	return u.Sin().Div(u.Cos())
}
