package gen

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calder-math/dualgrad/internal/dual"
)

func writeSchema(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Run("YAML", func(t *testing.T) {
		path := writeSchema(t, "families.yaml", `
package: families
families:
  - name: UV
    axes: [u, v]
`)
		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "families", cfg.Package)
		require.Len(t, cfg.Families, 1)
		assert.Equal(t, "UV", cfg.Families[0].Name)
		assert.Equal(t, []string{"u", "v"}, cfg.Families[0].Axes)
	})

	t.Run("JSON", func(t *testing.T) {
		path := writeSchema(t, "families.json",
			`{"package": "families", "families": [{"name": "UV", "axes": ["u", "v"]}]}`)
		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "UV", cfg.Families[0].Name)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := writeSchema(t, "families.toml", `package = "families"`)
		_, err := LoadConfig(path)
		assert.Error(t, err)
	})
}

func TestConfigValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Package:  "families",
			Families: []Family{{Name: "UV", Axes: []string{"u", "v"}}},
		}
	}

	t.Run("accepts valid config", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("rejects bad package name", func(t *testing.T) {
		cfg := valid()
		cfg.Package = "my-package"
		assert.Error(t, cfg.Validate())
	})

	t.Run("rejects no families", func(t *testing.T) {
		cfg := valid()
		cfg.Families = nil
		assert.Error(t, cfg.Validate())
	})

	t.Run("rejects unexported family name", func(t *testing.T) {
		cfg := valid()
		cfg.Families[0].Name = "uv"
		assert.Error(t, cfg.Validate())
	})

	t.Run("rejects duplicate family", func(t *testing.T) {
		cfg := valid()
		cfg.Families = append(cfg.Families, cfg.Families[0])
		assert.Error(t, cfg.Validate())
	})

	t.Run("empty axis list is a SchemaError", func(t *testing.T) {
		cfg := valid()
		cfg.Families[0].Axes = nil

		var schemaErr *dual.SchemaError
		require.ErrorAs(t, cfg.Validate(), &schemaErr)
	})

	t.Run("duplicate axis is a SchemaError", func(t *testing.T) {
		cfg := valid()
		cfg.Families[0].Axes = []string{"u", "u"}

		var schemaErr *dual.SchemaError
		require.ErrorAs(t, cfg.Validate(), &schemaErr)
		assert.Equal(t, "u", schemaErr.Axis)
	})
}

func TestGenerate(t *testing.T) {
	cfg := &Config{
		Package:  "families",
		Families: []Family{{Name: "UV", Axes: []string{"u", "v"}}},
	}

	src, err := Generate(cfg, "families.yaml")
	require.NoError(t, err)

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "families.go", src, parser.ParseComments)
	require.NoError(t, err, "generated source must parse:\n%s", src)
	assert.Equal(t, "families", file.Name.Name)

	funcs := make(map[string]bool)
	types := make(map[string]bool)
	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			funcs[d.Name.Name] = true
		case *ast.GenDecl:
			for _, spec := range d.Specs {
				if ts, ok := spec.(*ast.TypeSpec); ok {
					types[ts.Name.Name] = true
				}
			}
		}
	}

	assert.True(t, types["UV"])
	for _, name := range []string{
		"UVFromReal", "UVEpsU", "UVEpsV", "UVU", "UVV", "DU", "DV",
		"Cmp", "Add", "Sub", "Mul", "Div", "Neg",
		"AddReal", "SubReal", "MulReal", "DivReal",
		"UVRealAdd", "UVRealSub", "UVRealMul", "UVRealDiv",
		"AddAssign", "SubAssign", "MulAssign", "DivAssign",
		"AddRealAssign", "SubRealAssign", "MulRealAssign", "DivRealAssign",
		"Pow", "Inv", "Sin", "Cos", "Tan",
	} {
		assert.True(t, funcs[name], "missing %s", name)
	}
}

func TestGenerateFile(t *testing.T) {
	cfg := &Config{
		Package:  "families",
		Families: []Family{{Name: "UV", Axes: []string{"u", "v"}}},
	}

	out := filepath.Join(t.TempDir(), "families.go")
	require.NoError(t, GenerateFile(cfg, "families.yaml", out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Code generated by dualgen")
}

func TestExport(t *testing.T) {
	assert.Equal(t, "X", export("x"))
	assert.Equal(t, "Theta", export("theta"))
	assert.Equal(t, "T2", export("t2"))
}
