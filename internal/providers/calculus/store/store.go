// Package store keeps the runtime registry of dual-number families defined
// through the calculus provider. Axis lists validate once, at definition,
// through dual.NewSchema; every later tool call resolves its family by ID.
package store

import (
	"sync"

	"github.com/google/uuid"

	"github.com/calder-math/dualgrad/internal/dual"
)

// Families is a thread-safe registry of defined schemas keyed by family ID.
type Families struct {
	schemas sync.Map
}

// New creates an empty family registry.
func New() *Families {
	return &Families{}
}

// Define validates the axis list and registers a new family, returning its
// generated ID. Definition is the only point where an axis list can fail.
func (f *Families) Define(axes []string) (string, *dual.Schema, error) {
	schema, err := dual.NewSchema(axes...)
	if err != nil {
		return "", nil, err
	}

	id := uuid.New().String()
	f.schemas.Store(id, schema)
	return id, schema, nil
}

// Get resolves a family ID to its schema.
func (f *Families) Get(id string) (*dual.Schema, bool) {
	val, ok := f.schemas.Load(id)
	if !ok {
		return nil, false
	}
	return val.(*dual.Schema), true
}

// Count returns the number of defined families.
func (f *Families) Count() int {
	n := 0
	f.schemas.Range(func(_, _ interface{}) bool {
		n++
		return true
	})
	return n
}
