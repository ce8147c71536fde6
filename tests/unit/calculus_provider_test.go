package unit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calder-math/dualgrad/internal/providers/calculus"
	"github.com/calder-math/dualgrad/tests/helpers/testutil"
)

func defineFamily(t *testing.T, p *calculus.Provider, axes ...interface{}) string {
	t.Helper()
	result, err := p.Execute(context.Background(), "calculus.define", map[string]interface{}{
		"axes": axes,
	}, nil)
	require.NoError(t, err)
	testutil.AssertSuccess(t, result)
	id, ok := result.Data["family_id"].(string)
	require.True(t, ok)
	return id
}

func TestCalculusProvider(t *testing.T) {
	provider := calculus.NewProvider()
	ctx := context.Background()

	t.Run("Definition", func(t *testing.T) {
		def := provider.Definition()
		assert.Equal(t, "calculus", def.ID)
		assert.NotEmpty(t, def.Tools)

		seen := make(map[string]bool)
		for _, tool := range def.Tools {
			assert.False(t, seen[tool.ID], "duplicate tool ID %s", tool.ID)
			seen[tool.ID] = true
		}
		for _, id := range []string{
			"calculus.define", "calculus.variable", "calculus.multiply",
			"calculus.pow", "calculus.tan", "calculus.compare",
		} {
			assert.True(t, seen[id], "missing tool %s", id)
		}
	})

	t.Run("Family Definition", func(t *testing.T) {
		t.Run("Define", func(t *testing.T) {
			result, err := provider.Execute(ctx, "calculus.define", map[string]interface{}{
				"axes": []interface{}{"x", "y"},
			}, nil)
			require.NoError(t, err)
			testutil.AssertSuccess(t, result)
			assert.NotEmpty(t, result.Data["family_id"])
			assert.Equal(t, 2, result.Data["axis_count"])
		})

		t.Run("Define with empty axes", func(t *testing.T) {
			result, err := provider.Execute(ctx, "calculus.define", map[string]interface{}{
				"axes": []interface{}{},
			}, nil)
			require.NoError(t, err)
			testutil.AssertError(t, result)
		})

		t.Run("Define with duplicate axes", func(t *testing.T) {
			result, err := provider.Execute(ctx, "calculus.define", map[string]interface{}{
				"axes": []interface{}{"x", "x"},
			}, nil)
			require.NoError(t, err)
			testutil.AssertError(t, result)
		})

		t.Run("Define without axes", func(t *testing.T) {
			result, err := provider.Execute(ctx, "calculus.define", map[string]interface{}{}, nil)
			require.NoError(t, err)
			testutil.AssertError(t, result)
		})

		t.Run("Describe", func(t *testing.T) {
			id := defineFamily(t, provider, "a", "b", "c")
			result, err := provider.Execute(ctx, "calculus.describe", map[string]interface{}{
				"family_id": id,
			}, nil)
			require.NoError(t, err)
			testutil.AssertSuccess(t, result)
			assert.Equal(t, []string{"a", "b", "c"}, result.Data["axes"])
			assert.Equal(t, 3, result.Data["axis_count"])
		})

		t.Run("Describe unknown family", func(t *testing.T) {
			result, err := provider.Execute(ctx, "calculus.describe", map[string]interface{}{
				"family_id": "no-such-family",
			}, nil)
			require.NoError(t, err)
			testutil.AssertError(t, result)
		})
	})

	t.Run("Value Construction", func(t *testing.T) {
		id := defineFamily(t, provider, "x", "y")

		t.Run("Constant", func(t *testing.T) {
			result, err := provider.Execute(ctx, "calculus.constant", map[string]interface{}{
				"family_id": id,
				"real":      3.5,
			}, nil)
			require.NoError(t, err)
			real, derivs := testutil.ExtractDual(t, result)
			assert.Equal(t, 3.5, real)
			assert.Equal(t, 0.0, derivs["x"])
			assert.Equal(t, 0.0, derivs["y"])
		})

		t.Run("Variable", func(t *testing.T) {
			result, err := provider.Execute(ctx, "calculus.variable", map[string]interface{}{
				"family_id": id,
				"axis":      "x",
				"real":      5.0,
			}, nil)
			require.NoError(t, err)
			real, derivs := testutil.ExtractDual(t, result)
			assert.Equal(t, 5.0, real)
			assert.Equal(t, 1.0, derivs["x"])
			assert.Equal(t, 0.0, derivs["y"])
		})

		t.Run("Variable with unknown axis", func(t *testing.T) {
			result, err := provider.Execute(ctx, "calculus.variable", map[string]interface{}{
				"family_id": id,
				"axis":      "z",
				"real":      5.0,
			}, nil)
			require.NoError(t, err)
			testutil.AssertError(t, result)
		})

		t.Run("WithDerivative", func(t *testing.T) {
			result, err := provider.Execute(ctx, "calculus.with_derivative", map[string]interface{}{
				"family_id":  id,
				"axis":       "y",
				"real":       2.0,
				"derivative": -4.0,
			}, nil)
			require.NoError(t, err)
			real, derivs := testutil.ExtractDual(t, result)
			assert.Equal(t, 2.0, real)
			assert.Equal(t, 0.0, derivs["x"])
			assert.Equal(t, -4.0, derivs["y"])
		})

		t.Run("Derivative extraction", func(t *testing.T) {
			result, err := provider.Execute(ctx, "calculus.derivative", map[string]interface{}{
				"family_id": id,
				"value": map[string]interface{}{
					"real":        7.0,
					"derivatives": map[string]interface{}{"x": 2.5},
				},
				"axis": "x",
			}, nil)
			require.NoError(t, err)
			testutil.AssertSuccess(t, result)
			assert.Equal(t, 2.5, result.Data["result"])
		})

		t.Run("Real extraction", func(t *testing.T) {
			result, err := provider.Execute(ctx, "calculus.real", map[string]interface{}{
				"family_id": id,
				"value":     7.25,
			}, nil)
			require.NoError(t, err)
			testutil.AssertSuccess(t, result)
			assert.Equal(t, 7.25, result.Data["result"])
		})
	})

	t.Run("Arithmetic", func(t *testing.T) {
		id := defineFamily(t, provider, "x", "y")

		variable := func(axis string, real float64) map[string]interface{} {
			return map[string]interface{}{
				"real":        real,
				"derivatives": map[string]interface{}{axis: 1.0},
			}
		}

		t.Run("Add", func(t *testing.T) {
			result, err := provider.Execute(ctx, "calculus.add", map[string]interface{}{
				"family_id": id,
				"a":         variable("x", 5.0),
				"b":         variable("y", 7.0),
			}, nil)
			require.NoError(t, err)
			real, derivs := testutil.ExtractDual(t, result)
			assert.Equal(t, 12.0, real)
			assert.Equal(t, 1.0, derivs["x"])
			assert.Equal(t, 1.0, derivs["y"])
		})

		t.Run("Add lifts bare numbers", func(t *testing.T) {
			result, err := provider.Execute(ctx, "calculus.add", map[string]interface{}{
				"family_id": id,
				"a":         variable("x", 5.0),
				"b":         3.0,
			}, nil)
			require.NoError(t, err)
			real, derivs := testutil.ExtractDual(t, result)
			assert.Equal(t, 8.0, real)
			assert.Equal(t, 1.0, derivs["x"])
			assert.Equal(t, 0.0, derivs["y"])
		})

		t.Run("Subtract", func(t *testing.T) {
			result, err := provider.Execute(ctx, "calculus.subtract", map[string]interface{}{
				"family_id": id,
				"a":         variable("x", 10.0),
				"b":         variable("x", 4.0),
			}, nil)
			require.NoError(t, err)
			real, derivs := testutil.ExtractDual(t, result)
			assert.Equal(t, 6.0, real)
			assert.Equal(t, 0.0, derivs["x"])
		})

		t.Run("Multiply follows product rule", func(t *testing.T) {
			result, err := provider.Execute(ctx, "calculus.multiply", map[string]interface{}{
				"family_id": id,
				"a":         variable("x", 5.0),
				"b":         variable("x", 5.0),
			}, nil)
			require.NoError(t, err)
			real, derivs := testutil.ExtractDual(t, result)
			assert.Equal(t, 25.0, real)
			assert.Equal(t, 10.0, derivs["x"])
		})

		t.Run("Divide", func(t *testing.T) {
			result, err := provider.Execute(ctx, "calculus.divide", map[string]interface{}{
				"family_id": id,
				"a":         variable("x", 10.0),
				"b":         2.0,
			}, nil)
			require.NoError(t, err)
			real, derivs := testutil.ExtractDual(t, result)
			assert.Equal(t, 5.0, real)
			assert.Equal(t, 0.5, derivs["x"])
		})

		t.Run("Divide by zero propagates Inf", func(t *testing.T) {
			result, err := provider.Execute(ctx, "calculus.divide", map[string]interface{}{
				"family_id": id,
				"a":         2.0,
				"b":         0.0,
			}, nil)
			require.NoError(t, err)
			testutil.AssertSuccess(t, result)
			obj := result.Data["result"].(map[string]interface{})
			assert.Equal(t, "+Inf", obj["real"])
		})

		t.Run("Negate", func(t *testing.T) {
			result, err := provider.Execute(ctx, "calculus.negate", map[string]interface{}{
				"family_id": id,
				"a":         variable("y", 3.0),
			}, nil)
			require.NoError(t, err)
			real, derivs := testutil.ExtractDual(t, result)
			assert.Equal(t, -3.0, real)
			assert.Equal(t, -1.0, derivs["y"])
		})

		t.Run("Compare orders by real part", func(t *testing.T) {
			result, err := provider.Execute(ctx, "calculus.compare", map[string]interface{}{
				"family_id": id,
				"a":         variable("x", 1.0),
				"b":         variable("y", 2.0),
			}, nil)
			require.NoError(t, err)
			testutil.AssertSuccess(t, result)
			assert.Equal(t, true, result.Data["comparable"])
			assert.Equal(t, -1, result.Data["ordering"])
			assert.Equal(t, false, result.Data["equal"])
		})

		t.Run("Compare with NaN is incomparable", func(t *testing.T) {
			result, err := provider.Execute(ctx, "calculus.compare", map[string]interface{}{
				"family_id": id,
				"a":         "NaN",
				"b":         1.0,
			}, nil)
			require.NoError(t, err)
			testutil.AssertSuccess(t, result)
			assert.Equal(t, false, result.Data["comparable"])
		})

		t.Run("Unknown axis in operand", func(t *testing.T) {
			result, err := provider.Execute(ctx, "calculus.add", map[string]interface{}{
				"family_id": id,
				"a": map[string]interface{}{
					"real":        1.0,
					"derivatives": map[string]interface{}{"q": 1.0},
				},
				"b": 2.0,
			}, nil)
			require.NoError(t, err)
			testutil.AssertError(t, result)
		})
	})

	t.Run("Elementary Functions", func(t *testing.T) {
		id := defineFamily(t, provider, "x")

		variable := func(real float64) map[string]interface{} {
			return map[string]interface{}{
				"real":        real,
				"derivatives": map[string]interface{}{"x": 1.0},
			}
		}

		t.Run("Pow", func(t *testing.T) {
			result, err := provider.Execute(ctx, "calculus.pow", map[string]interface{}{
				"family_id": id,
				"a":         variable(3.0),
				"exponent":  2.0,
			}, nil)
			require.NoError(t, err)
			real, derivs := testutil.ExtractDual(t, result)
			assert.Equal(t, 9.0, real)
			assert.Equal(t, 6.0, derivs["x"])
		})

		t.Run("Pow outside real domain propagates NaN", func(t *testing.T) {
			result, err := provider.Execute(ctx, "calculus.pow", map[string]interface{}{
				"family_id": id,
				"a":         variable(-2.0),
				"exponent":  0.5,
			}, nil)
			require.NoError(t, err)
			testutil.AssertSuccess(t, result)
			obj := result.Data["result"].(map[string]interface{})
			assert.Equal(t, "NaN", obj["real"])
		})

		t.Run("Invert", func(t *testing.T) {
			result, err := provider.Execute(ctx, "calculus.invert", map[string]interface{}{
				"family_id": id,
				"a":         variable(10.0),
			}, nil)
			require.NoError(t, err)
			real, derivs := testutil.ExtractDual(t, result)
			assert.Equal(t, 0.1, real)
			assert.Equal(t, -0.01, derivs["x"])
		})

		t.Run("Sin at zero", func(t *testing.T) {
			result, err := provider.Execute(ctx, "calculus.sin", map[string]interface{}{
				"family_id": id,
				"a":         variable(0.0),
			}, nil)
			require.NoError(t, err)
			real, derivs := testutil.ExtractDual(t, result)
			assert.Equal(t, 0.0, real)
			assert.Equal(t, 1.0, derivs["x"])
		})

		t.Run("Cos at zero", func(t *testing.T) {
			result, err := provider.Execute(ctx, "calculus.cos", map[string]interface{}{
				"family_id": id,
				"a":         variable(0.0),
			}, nil)
			require.NoError(t, err)
			real, derivs := testutil.ExtractDual(t, result)
			assert.Equal(t, 1.0, real)
			assert.Equal(t, 0.0, derivs["x"])
		})

		t.Run("Tan at zero", func(t *testing.T) {
			result, err := provider.Execute(ctx, "calculus.tan", map[string]interface{}{
				"family_id": id,
				"a":         variable(0.0),
			}, nil)
			require.NoError(t, err)
			real, derivs := testutil.ExtractDual(t, result)
			assert.Equal(t, 0.0, real)
			assert.Equal(t, 1.0, derivs["x"])
		})
	})

	t.Run("Unknown tool", func(t *testing.T) {
		result, err := provider.Execute(ctx, "calculus.unknown", map[string]interface{}{}, nil)
		require.NoError(t, err)
		testutil.AssertError(t, result)
	})

	t.Run("FamilyCount", func(t *testing.T) {
		p := calculus.NewProvider()
		assert.Equal(t, 0, p.FamilyCount())
		defineFamily(t, p, "x")
		defineFamily(t, p, "u", "v")
		assert.Equal(t, 2, p.FamilyCount())
	})
}
