package dual

import "gonum.org/v1/gonum/floats"

// Add returns u + v. Real parts add and every derivative slot adds
// independently: d(u+v) = du + dv.
func (u Number) Add(v Number) Number {
	u.check(v)
	eps := make([]float64, len(u.eps))
	copy(eps, u.eps)
	floats.Add(eps, v.eps)
	return Number{schema: u.schema, real: u.real + v.real, eps: eps}
}

// Sub returns u - v, defined as u + (-v).
func (u Number) Sub(v Number) Number {
	return u.Add(v.Neg())
}

// Mul returns u * v. Each slot applies the product rule against the
// original real parts of both operands:
//
//	slot i = u.eps[i]*v.real + v.eps[i]*u.real
func (u Number) Mul(v Number) Number {
	u.check(v)
	eps := make([]float64, len(u.eps))
	floats.ScaleTo(eps, v.real, u.eps)
	floats.AddScaled(eps, u.real, v.eps)
	return Number{schema: u.schema, real: u.real * v.real, eps: eps}
}

// Div returns u / v, defined as u * v.Inv(). Division and multiplication by
// a reciprocal are bit-identical by construction; a zero real part in v
// surfaces as Inf/NaN through the reciprocal, never as an error.
func (u Number) Div(v Number) Number {
	return u.Mul(v.Inv())
}

// Neg returns -u, defined as multiplication by the scalar -1.
func (u Number) Neg() Number {
	return u.MulReal(-1)
}

// AddReal returns u + c. The scalar is lifted to a constant of u's family
// and the Dual-Dual rule applies; the same holds for every scalar form
// below, in both operand orders.
func (u Number) AddReal(c float64) Number {
	return u.Add(u.schema.Constant(c))
}

// SubReal returns u - c.
func (u Number) SubReal(c float64) Number {
	return u.Sub(u.schema.Constant(c))
}

// MulReal returns u * c.
func (u Number) MulReal(c float64) Number {
	return u.Mul(u.schema.Constant(c))
}

// DivReal returns u / c.
func (u Number) DivReal(c float64) Number {
	return u.Div(u.schema.Constant(c))
}

// RealAdd returns c + u.
func RealAdd(c float64, u Number) Number {
	return u.schema.Constant(c).Add(u)
}

// RealSub returns c - u.
func RealSub(c float64, u Number) Number {
	return u.schema.Constant(c).Sub(u)
}

// RealMul returns c * u.
func RealMul(c float64, u Number) Number {
	return u.schema.Constant(c).Mul(u)
}

// RealDiv returns c / u.
func RealDiv(c float64, u Number) Number {
	return u.schema.Constant(c).Div(u)
}

// The Assign forms replace the whole value with the out-of-place result.
// They are notation, not an optimization.

// AddAssign sets *u = *u + v.
func (u *Number) AddAssign(v Number) { *u = u.Add(v) }

// SubAssign sets *u = *u - v.
func (u *Number) SubAssign(v Number) { *u = u.Sub(v) }

// MulAssign sets *u = *u * v.
func (u *Number) MulAssign(v Number) { *u = u.Mul(v) }

// DivAssign sets *u = *u / v.
func (u *Number) DivAssign(v Number) { *u = u.Div(v) }

// AddRealAssign sets *u = *u + c.
func (u *Number) AddRealAssign(c float64) { *u = u.AddReal(c) }

// SubRealAssign sets *u = *u - c.
func (u *Number) SubRealAssign(c float64) { *u = u.SubReal(c) }

// MulRealAssign sets *u = *u * c.
func (u *Number) MulRealAssign(c float64) { *u = u.MulReal(c) }

// DivRealAssign sets *u = *u / c.
func (u *Number) DivRealAssign(c float64) { *u = u.DivReal(c) }
