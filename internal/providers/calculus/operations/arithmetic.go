// Package operations implements the arithmetic and elementary function
// tools of the calculus provider.
package operations

import (
	"context"

	"github.com/calder-math/dualgrad/internal/dual"
	"github.com/calder-math/dualgrad/internal/providers/calculus/common"
	"github.com/calder-math/dualgrad/internal/providers/calculus/store"
	"github.com/calder-math/dualgrad/internal/types"
)

// ArithmeticOps handles dual-number arithmetic
type ArithmeticOps struct {
	*common.CalcOps
	Families *store.Families
}

// GetTools returns arithmetic tool definitions
func (o *ArithmeticOps) GetTools() []types.Tool {
	binary := []types.Parameter{
		{Name: "family_id", Type: "string", Description: "Family ID", Required: true},
		{Name: "a", Type: "dual", Description: "Left operand (number or dual object)", Required: true},
		{Name: "b", Type: "dual", Description: "Right operand (number or dual object)", Required: true},
	}
	unary := []types.Parameter{
		{Name: "family_id", Type: "string", Description: "Family ID", Required: true},
		{Name: "a", Type: "dual", Description: "Operand (number or dual object)", Required: true},
	}

	return []types.Tool{
		{
			ID:          "calculus.add",
			Name:        "Add",
			Description: "Add two values, summing derivatives per axis",
			Parameters:  binary,
			Returns:     "dual",
		},
		{
			ID:          "calculus.subtract",
			Name:        "Subtract",
			Description: "Subtract two values (addition of the negation)",
			Parameters:  binary,
			Returns:     "dual",
		},
		{
			ID:          "calculus.multiply",
			Name:        "Multiply",
			Description: "Multiply two values under the product rule",
			Parameters:  binary,
			Returns:     "dual",
		},
		{
			ID:          "calculus.divide",
			Name:        "Divide",
			Description: "Divide two values (multiplication by the reciprocal)",
			Parameters:  binary,
			Returns:     "dual",
		},
		{
			ID:          "calculus.negate",
			Name:        "Negate",
			Description: "Negate a value, flipping every derivative",
			Parameters:  unary,
			Returns:     "dual",
		},
		{
			ID:          "calculus.compare",
			Name:        "Compare",
			Description: "Compare two values by real part only",
			Parameters:  binary,
			Returns:     "object",
		},
	}
}

func (o *ArithmeticOps) operands(params map[string]interface{}) (dual.Number, dual.Number, *types.Result, error) {
	schema, res, err := common.ResolveSchema(params, o.Families)
	if schema == nil {
		return dual.Number{}, dual.Number{}, res, err
	}
	a, aerr := common.GetDual(params, "a", schema)
	if aerr != nil {
		res, err := common.Failure(aerr.Error())
		return dual.Number{}, dual.Number{}, res, err
	}
	b, berr := common.GetDual(params, "b", schema)
	if berr != nil {
		res, err := common.Failure(berr.Error())
		return dual.Number{}, dual.Number{}, res, err
	}
	return a, b, nil, nil
}

// Add performs dual addition
func (o *ArithmeticOps) Add(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	a, b, res, err := o.operands(params)
	if res != nil {
		return res, err
	}
	return common.Success(map[string]interface{}{"result": common.EncodeDual(a.Add(b))})
}

// Subtract performs dual subtraction
func (o *ArithmeticOps) Subtract(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	a, b, res, err := o.operands(params)
	if res != nil {
		return res, err
	}
	return common.Success(map[string]interface{}{"result": common.EncodeDual(a.Sub(b))})
}

// Multiply performs dual multiplication
func (o *ArithmeticOps) Multiply(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	a, b, res, err := o.operands(params)
	if res != nil {
		return res, err
	}
	return common.Success(map[string]interface{}{"result": common.EncodeDual(a.Mul(b))})
}

// Divide performs dual division
func (o *ArithmeticOps) Divide(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	a, b, res, err := o.operands(params)
	if res != nil {
		return res, err
	}
	return common.Success(map[string]interface{}{"result": common.EncodeDual(a.Div(b))})
}

// Negate negates a dual value
func (o *ArithmeticOps) Negate(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	schema, res, err := common.ResolveSchema(params, o.Families)
	if schema == nil {
		return res, err
	}
	a, aerr := common.GetDual(params, "a", schema)
	if aerr != nil {
		return common.Failure(aerr.Error())
	}
	return common.Success(map[string]interface{}{"result": common.EncodeDual(a.Neg())})
}

// Compare orders two values by real part
func (o *ArithmeticOps) Compare(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	a, b, res, err := o.operands(params)
	if res != nil {
		return res, err
	}
	ord, ok := a.Cmp(b)
	if !ok {
		return common.Success(map[string]interface{}{"comparable": false})
	}
	return common.Success(map[string]interface{}{
		"comparable": true,
		"ordering":   ord,
		"equal":      a.Equal(b),
	})
}
