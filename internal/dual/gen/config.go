package gen

import (
	"fmt"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/bytedance/sonic"
	"github.com/goccy/go-yaml"

	"github.com/calder-math/dualgrad/internal/dual"
)

// Config describes the dual-number families to generate into one package.
type Config struct {
	Package  string   `json:"package" yaml:"package"`
	Families []Family `json:"families" yaml:"families"`
}

// Family is one named axis set. Every family becomes a distinct Go type, so
// arithmetic across families cannot compile.
type Family struct {
	Name string   `json:"name" yaml:"name"`
	Axes []string `json:"axes" yaml:"axes"`
}

// LoadConfig reads a schema file. The format follows the extension: .yaml
// or .yml parse as YAML, .json as JSON.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema: %w", err)
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse schema %s: %w", path, err)
		}
	case ".json":
		if err := sonic.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse schema %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported schema format: %s", ext)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the package name, family names, and every axis list. Axis
// lists go through dual.NewSchema, so an empty or duplicated list fails here
// with the same SchemaError the runtime engine reports.
func (c *Config) Validate() error {
	if !token.IsIdentifier(c.Package) {
		return fmt.Errorf("invalid package name %q", c.Package)
	}
	if len(c.Families) == 0 {
		return fmt.Errorf("schema declares no families")
	}

	seen := make(map[string]bool, len(c.Families))
	for _, f := range c.Families {
		if !isExportedIdent(f.Name) {
			return fmt.Errorf("family name %q is not an exported Go identifier", f.Name)
		}
		if seen[f.Name] {
			return fmt.Errorf("duplicate family %q", f.Name)
		}
		seen[f.Name] = true

		if _, err := dual.NewSchema(f.Axes...); err != nil {
			return fmt.Errorf("family %q: %w", f.Name, err)
		}
		for _, axis := range f.Axes {
			if !token.IsIdentifier(axis) {
				return fmt.Errorf("family %q: axis %q is not a Go identifier", f.Name, axis)
			}
		}
	}
	return nil
}

func isExportedIdent(name string) bool {
	if !token.IsIdentifier(name) {
		return false
	}
	return unicode.IsUpper([]rune(name)[0])
}

// export turns an axis name into its exported field suffix: "x" becomes
// "X", "theta" becomes "Theta".
func export(axis string) string {
	r := []rune(axis)
	return string(unicode.ToUpper(r[0])) + string(r[1:])
}
