// Package construct implements family definition and dual value
// construction/extraction tools for the calculus provider.
package construct

import (
	"context"

	"github.com/calder-math/dualgrad/internal/providers/calculus/common"
	"github.com/calder-math/dualgrad/internal/providers/calculus/store"
	"github.com/calder-math/dualgrad/internal/types"
)

// ConstructOps handles family and value construction
type ConstructOps struct {
	*common.CalcOps
	Families *store.Families
}

// GetTools returns construction tool definitions
func (o *ConstructOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "calculus.define",
			Name:        "Define Family",
			Description: "Define a dual-number family over an ordered list of named axes",
			Parameters: []types.Parameter{
				{Name: "axes", Type: "array", Description: "Ordered, unique axis names", Required: true},
			},
			Returns: "object",
		},
		{
			ID:          "calculus.describe",
			Name:        "Describe Family",
			Description: "Return the axis list of a defined family",
			Parameters: []types.Parameter{
				{Name: "family_id", Type: "string", Description: "Family ID from calculus.define", Required: true},
			},
			Returns: "object",
		},
		{
			ID:          "calculus.constant",
			Name:        "Constant",
			Description: "Build a value independent of every axis (all derivatives zero)",
			Parameters: []types.Parameter{
				{Name: "family_id", Type: "string", Description: "Family ID", Required: true},
				{Name: "real", Type: "number", Description: "Real part", Required: true},
			},
			Returns: "dual",
		},
		{
			ID:          "calculus.variable",
			Name:        "Variable",
			Description: "Seed an independent variable (unit derivative on its own axis)",
			Parameters: []types.Parameter{
				{Name: "family_id", Type: "string", Description: "Family ID", Required: true},
				{Name: "axis", Type: "string", Description: "Axis to seed", Required: true},
				{Name: "real", Type: "number", Description: "Real part", Required: true},
			},
			Returns: "dual",
		},
		{
			ID:          "calculus.with_derivative",
			Name:        "With Derivative",
			Description: "Build a value with an explicit derivative on one axis, zero elsewhere",
			Parameters: []types.Parameter{
				{Name: "family_id", Type: "string", Description: "Family ID", Required: true},
				{Name: "axis", Type: "string", Description: "Axis carrying the derivative", Required: true},
				{Name: "real", Type: "number", Description: "Real part", Required: true},
				{Name: "derivative", Type: "number", Description: "Derivative value", Required: true},
			},
			Returns: "dual",
		},
		{
			ID:          "calculus.derivative",
			Name:        "Extract Derivative",
			Description: "Read the derivative of a value with respect to one axis",
			Parameters: []types.Parameter{
				{Name: "family_id", Type: "string", Description: "Family ID", Required: true},
				{Name: "value", Type: "dual", Description: "Dual value", Required: true},
				{Name: "axis", Type: "string", Description: "Axis to extract", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "calculus.real",
			Name:        "Real Part",
			Description: "Read the real part of a value",
			Parameters: []types.Parameter{
				{Name: "family_id", Type: "string", Description: "Family ID", Required: true},
				{Name: "value", Type: "dual", Description: "Dual value", Required: true},
			},
			Returns: "number",
		},
	}
}

// Define registers a new family from an axis list
func (o *ConstructOps) Define(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	axes, ok := common.GetStrings(params, "axes")
	if !ok {
		return common.Failure("axes parameter required")
	}

	id, schema, err := o.Families.Define(axes)
	if err != nil {
		return common.Failure(err.Error())
	}

	return common.Success(map[string]interface{}{
		"family_id":  id,
		"axes":       schema.Axes(),
		"axis_count": schema.Len(),
	})
}

// Describe returns the axis list of a family
func (o *ConstructOps) Describe(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	schema, res, err := common.ResolveSchema(params, o.Families)
	if schema == nil {
		return res, err
	}

	return common.Success(map[string]interface{}{
		"axes":       schema.Axes(),
		"axis_count": schema.Len(),
	})
}

// Constant builds a constant value
func (o *ConstructOps) Constant(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	schema, res, err := common.ResolveSchema(params, o.Families)
	if schema == nil {
		return res, err
	}
	real, ok := common.GetNumber(params, "real")
	if !ok {
		return common.Failure("real parameter required")
	}

	return common.Success(map[string]interface{}{"result": common.EncodeDual(schema.Constant(real))})
}

// Variable seeds an independent variable
func (o *ConstructOps) Variable(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	schema, res, err := common.ResolveSchema(params, o.Families)
	if schema == nil {
		return res, err
	}
	axis, ok := common.GetString(params, "axis")
	if !ok {
		return common.Failure("axis parameter required")
	}
	real, ok := common.GetNumber(params, "real")
	if !ok {
		return common.Failure("real parameter required")
	}
	if _, ok := schema.Index(axis); !ok {
		return common.Failure("unknown axis: " + axis)
	}

	return common.Success(map[string]interface{}{"result": common.EncodeDual(schema.Var(axis, real))})
}

// WithDerivative builds a value with one explicit derivative
func (o *ConstructOps) WithDerivative(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	schema, res, err := common.ResolveSchema(params, o.Families)
	if schema == nil {
		return res, err
	}
	axis, ok := common.GetString(params, "axis")
	if !ok {
		return common.Failure("axis parameter required")
	}
	real, ok := common.GetNumber(params, "real")
	if !ok {
		return common.Failure("real parameter required")
	}
	deriv, ok := common.GetNumber(params, "derivative")
	if !ok {
		return common.Failure("derivative parameter required")
	}
	if _, ok := schema.Index(axis); !ok {
		return common.Failure("unknown axis: " + axis)
	}

	return common.Success(map[string]interface{}{"result": common.EncodeDual(schema.WithDeriv(axis, real, deriv))})
}

// Derivative extracts one derivative slot
func (o *ConstructOps) Derivative(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	schema, res, err := common.ResolveSchema(params, o.Families)
	if schema == nil {
		return res, err
	}
	value, derr := common.GetDual(params, "value", schema)
	if derr != nil {
		return common.Failure(derr.Error())
	}
	axis, ok := common.GetString(params, "axis")
	if !ok {
		return common.Failure("axis parameter required")
	}
	if _, ok := schema.Index(axis); !ok {
		return common.Failure("unknown axis: " + axis)
	}

	return common.Success(map[string]interface{}{"result": common.EncodeNumber(value.Deriv(axis))})
}

// Real extracts the real part
func (o *ConstructOps) Real(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	schema, res, err := common.ResolveSchema(params, o.Families)
	if schema == nil {
		return res, err
	}
	value, derr := common.GetDual(params, "value", schema)
	if derr != nil {
		return common.Failure(derr.Error())
	}

	return common.Success(map[string]interface{}{"result": common.EncodeNumber(value.Real())})
}
