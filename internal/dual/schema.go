package dual

import (
	"errors"
	"fmt"
)

// ErrMismatchedFamily is the panic value raised when an operation combines
// Numbers that belong to different schemas.
var ErrMismatchedFamily = errors.New("dual: mismatched families")

// SchemaError describes an invalid axis list passed to NewSchema.
type SchemaError struct {
	Axis   string // offending axis name, empty for an empty axis list
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Axis == "" {
		return fmt.Sprintf("dual: invalid schema: %s", e.Reason)
	}
	return fmt.Sprintf("dual: invalid schema: %s: %q", e.Reason, e.Axis)
}

// Schema is the fixed, ordered set of differentiation axes shared by every
// Number of one family. It is immutable after construction; schema identity
// (pointer equality) is family identity.
type Schema struct {
	axes  []string
	index map[string]int
}

// NewSchema defines a family over the given axis names. It fails with a
// *SchemaError when the list is empty or contains a duplicate name. This
// check runs once, here, never per value.
func NewSchema(axes ...string) (*Schema, error) {
	if len(axes) == 0 {
		return nil, &SchemaError{Reason: "no axes"}
	}

	s := &Schema{
		axes:  make([]string, len(axes)),
		index: make(map[string]int, len(axes)),
	}
	copy(s.axes, axes)

	for i, name := range axes {
		if _, dup := s.index[name]; dup {
			return nil, &SchemaError{Axis: name, Reason: "duplicate axis"}
		}
		s.index[name] = i
	}
	return s, nil
}

// MustSchema is like NewSchema but panics on an invalid axis list. Intended
// for package-level family definitions established at setup time.
func MustSchema(axes ...string) *Schema {
	s, err := NewSchema(axes...)
	if err != nil {
		panic(err)
	}
	return s
}

// Len returns the number of axes.
func (s *Schema) Len() int {
	return len(s.axes)
}

// Axes returns a copy of the ordered axis names.
func (s *Schema) Axes() []string {
	out := make([]string, len(s.axes))
	copy(out, s.axes)
	return out
}

// Index returns the slot index for the named axis.
func (s *Schema) Index(axis string) (int, bool) {
	i, ok := s.index[axis]
	return i, ok
}

// mustIndex resolves an axis name or panics. Passing an axis that is not part
// of the schema is a usage violation, same as mixing families.
func (s *Schema) mustIndex(axis string) int {
	i, ok := s.index[axis]
	if !ok {
		panic(fmt.Sprintf("dual: unknown axis %q", axis))
	}
	return i
}
