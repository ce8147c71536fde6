// Command dualgen generates dual-number family types from a schema file.
//
// A schema file (YAML or JSON) declares a target package and one or more
// families, each an ordered list of axis names:
//
//	package: families
//	families:
//	  - name: XYZ
//	    axes: [x, y, z]
//
// Every family becomes a self-contained Go type with named derivative
// fields, constructors, extractors, and the full arithmetic and elementary
// function surface. Intended to be driven by go:generate.
package main

import (
	"flag"
	"log"
	"path/filepath"

	"github.com/calder-math/dualgrad/internal/dual/gen"
)

func main() {
	schema := flag.String("schema", "", "Schema file declaring the families (YAML or JSON)")
	out := flag.String("o", "", "Output file for the generated Go source")
	flag.Parse()

	if *schema == "" || *out == "" {
		log.Fatal("dualgen: -schema and -o are required")
	}

	cfg, err := gen.LoadConfig(*schema)
	if err != nil {
		log.Fatalf("dualgen: %v", err)
	}

	if err := gen.GenerateFile(cfg, filepath.Base(*schema), *out); err != nil {
		log.Fatalf("dualgen: %v", err)
	}
}
