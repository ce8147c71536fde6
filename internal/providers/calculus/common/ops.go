package common

import (
	"fmt"
	gomath "math"

	"github.com/calder-math/dualgrad/internal/dual"
	"github.com/calder-math/dualgrad/internal/providers/calculus/store"
	"github.com/calder-math/dualgrad/internal/types"
)

// CalcOps provides common calculus provider helpers
type CalcOps struct{}

// Success creates a successful result
func Success(data map[string]interface{}) (*types.Result, error) {
	return &types.Result{Success: true, Data: data}, nil
}

// Failure creates a failed result
func Failure(message string) (*types.Result, error) {
	msg := message
	return &types.Result{Success: false, Error: &msg}, nil
}

// ResolveSchema resolves the family_id param against the registry. On
// failure the returned result/error pair is ready to hand back to the
// caller.
func ResolveSchema(params map[string]interface{}, families *store.Families) (*dual.Schema, *types.Result, error) {
	id, ok := GetString(params, "family_id")
	if !ok {
		res, err := Failure("family_id parameter required")
		return nil, res, err
	}
	schema, ok := families.Get(id)
	if !ok {
		res, err := Failure("unknown family: " + id)
		return nil, res, err
	}
	return schema, nil, nil
}

// GetNumber extracts float64 from params with validation. The string forms
// "NaN", "+Inf" and "-Inf" decode to their IEEE 754 values.
func GetNumber(params map[string]interface{}, key string) (float64, bool) {
	val, ok := params[key]
	if !ok {
		return 0, false
	}
	return toFloat(val)
}

// GetString extracts string from params
func GetString(params map[string]interface{}, key string) (string, bool) {
	val, ok := params[key].(string)
	return val, ok
}

// GetStrings extracts an array of strings (axis names) from params
func GetStrings(params map[string]interface{}, key string) ([]string, bool) {
	arr, ok := params[key].([]interface{})
	if !ok {
		return nil, false
	}

	out := make([]string, 0, len(arr))
	for _, v := range arr {
		s, ok := v.(string)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}

// GetDual extracts a dual value of the given family from params. A bare
// number lifts to a constant; an object carries a real part and an optional
// derivatives map keyed by axis name.
func GetDual(params map[string]interface{}, key string, schema *dual.Schema) (dual.Number, error) {
	val, ok := params[key]
	if !ok {
		return dual.Number{}, fmt.Errorf("%s parameter required", key)
	}

	if f, ok := toFloat(val); ok {
		return schema.Constant(f), nil
	}

	obj, ok := val.(map[string]interface{})
	if !ok {
		return dual.Number{}, fmt.Errorf("%s must be a number or a dual value object", key)
	}

	real, ok := toFloat(obj["real"])
	if !ok {
		return dual.Number{}, fmt.Errorf("%s.real must be a number", key)
	}

	n := schema.Constant(real)
	derivs, present := obj["derivatives"]
	if !present {
		return n, nil
	}

	derivMap, ok := derivs.(map[string]interface{})
	if !ok {
		return dual.Number{}, fmt.Errorf("%s.derivatives must be a map of axis to number", key)
	}
	for axis, raw := range derivMap {
		if _, ok := schema.Index(axis); !ok {
			return dual.Number{}, fmt.Errorf("%s.derivatives: unknown axis %q", key, axis)
		}
		d, ok := toFloat(raw)
		if !ok {
			return dual.Number{}, fmt.Errorf("%s.derivatives.%s must be a number", key, axis)
		}
		n.AddAssign(schema.WithDeriv(axis, 0, d))
	}
	return n, nil
}

// EncodeDual renders a dual value for a tool result.
func EncodeDual(n dual.Number) map[string]interface{} {
	derivs := make(map[string]interface{}, n.Schema().Len())
	for i, axis := range n.Schema().Axes() {
		derivs[axis] = EncodeNumber(n.DerivAt(i))
	}
	return map[string]interface{}{
		"real":        EncodeNumber(n.Real()),
		"derivatives": derivs,
	}
}

// EncodeNumber renders a float64, preserving NaN and Inf as strings.
func EncodeNumber(f float64) interface{} {
	switch {
	case gomath.IsNaN(f):
		return "NaN"
	case gomath.IsInf(f, 1):
		return "+Inf"
	case gomath.IsInf(f, -1):
		return "-Inf"
	}
	return f
}

func toFloat(val interface{}) (float64, bool) {
	switch v := val.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case float32:
		return float64(v), true
	case string:
		switch v {
		case "NaN":
			return gomath.NaN(), true
		case "+Inf", "Inf":
			return gomath.Inf(1), true
		case "-Inf":
			return gomath.Inf(-1), true
		}
	}
	return 0, false
}
