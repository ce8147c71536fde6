package dual

// Number is a dual value: a real part plus one derivative slot per axis of
// its schema. Slot i holds the partial derivative of the value with respect
// to axis i. Numbers are value types; every operation returns a fresh Number
// and never touches an operand's slots, so sharing across goroutines is safe
// once the schema exists.
type Number struct {
	schema *Schema
	real   float64
	eps    []float64
}

// Constant builds a Number independent of every tracked axis: the given real
// part, all derivative slots zero. Bare scalars are lifted through Constant
// at every operator boundary.
func (s *Schema) Constant(real float64) Number {
	return Number{
		schema: s,
		real:   real,
		eps:    make([]float64, len(s.axes)),
	}
}

// Var seeds a fresh independent variable on the named axis: the derivative
// of the variable with respect to itself is 1, every other slot is 0.
// It panics if the axis is not part of the schema.
func (s *Schema) Var(axis string, real float64) Number {
	return s.WithDeriv(axis, real, 1)
}

// WithDeriv builds a Number with an explicit derivative on one axis. All
// other slots start from zero; it never merges onto an existing value.
// It panics if the axis is not part of the schema.
func (s *Schema) WithDeriv(axis string, real, deriv float64) Number {
	n := s.Constant(real)
	n.eps[s.mustIndex(axis)] = deriv
	return n
}

// Schema returns the family this Number belongs to.
func (n Number) Schema() *Schema {
	return n.schema
}

// Real returns the real part.
func (n Number) Real() float64 {
	return n.real
}

// Deriv returns the derivative slot for the named axis. It panics if the
// axis is not part of the schema.
func (n Number) Deriv(axis string) float64 {
	return n.eps[n.schema.mustIndex(axis)]
}

// DerivAt returns the derivative slot at index i in schema order.
func (n Number) DerivAt(i int) float64 {
	return n.eps[i]
}

// Derivs returns a copy of the derivative slots in schema order.
func (n Number) Derivs() []float64 {
	out := make([]float64, len(n.eps))
	copy(out, n.eps)
	return out
}

// Cmp orders two Numbers by real part only; derivative slots never
// participate. It reports ok=false exactly when the underlying float64
// comparison is undefined, i.e. when either real part is NaN.
func (n Number) Cmp(m Number) (int, bool) {
	n.check(m)
	switch {
	case n.real != n.real || m.real != m.real:
		return 0, false
	case n.real < m.real:
		return -1, true
	case n.real > m.real:
		return 1, true
	}
	return 0, true
}

// Less reports whether n orders before m by real part. NaN compares as
// incomparable and yields false.
func (n Number) Less(m Number) bool {
	c, ok := n.Cmp(m)
	return ok && c < 0
}

// Equal reports exact equality of the real part and every derivative slot.
func (n Number) Equal(m Number) bool {
	n.check(m)
	if n.real != m.real {
		return false
	}
	for i, e := range n.eps {
		if e != m.eps[i] {
			return false
		}
	}
	return true
}

// check panics with ErrMismatchedFamily when m belongs to a different
// schema. Arithmetic across families has no meaning; the panic mirrors
// gonum's shape-mismatch convention.
func (n Number) check(m Number) {
	if n.schema != m.schema {
		panic(ErrMismatchedFamily)
	}
}
