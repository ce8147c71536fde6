//go:generate go run github.com/calder-math/dualgrad/cmd/dualgen -schema families.yaml -o families.go

// Package families holds the checked-in sample family XYZ, generated by
// dualgen from families.yaml. It doubles as the reference consumer of the
// generator: its tests cross-check the generated kernels against the
// runtime engine in internal/dual.
package families
