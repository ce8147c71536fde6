package operations

import (
	"context"

	"github.com/calder-math/dualgrad/internal/dual"
	"github.com/calder-math/dualgrad/internal/providers/calculus/common"
	"github.com/calder-math/dualgrad/internal/providers/calculus/store"
	"github.com/calder-math/dualgrad/internal/types"
)

// ElementaryOps handles elementary functions over dual numbers
type ElementaryOps struct {
	*common.CalcOps
	Families *store.Families
}

// GetTools returns elementary function tool definitions
func (o *ElementaryOps) GetTools() []types.Tool {
	unary := []types.Parameter{
		{Name: "family_id", Type: "string", Description: "Family ID", Required: true},
		{Name: "a", Type: "dual", Description: "Operand (number or dual object)", Required: true},
	}

	return []types.Tool{
		{
			ID:          "calculus.pow",
			Name:        "Power",
			Description: "Raise a value to a real exponent under the power rule",
			Parameters: []types.Parameter{
				{Name: "family_id", Type: "string", Description: "Family ID", Required: true},
				{Name: "a", Type: "dual", Description: "Base (number or dual object)", Required: true},
				{Name: "exponent", Type: "number", Description: "Real exponent", Required: true},
			},
			Returns: "dual",
		},
		{
			ID:          "calculus.invert",
			Name:        "Invert",
			Description: "Reciprocal of a value (power with exponent -1)",
			Parameters:  unary,
			Returns:     "dual",
		},
		{
			ID:          "calculus.sin",
			Name:        "Sine",
			Description: "Sine of a value (radians)",
			Parameters:  unary,
			Returns:     "dual",
		},
		{
			ID:          "calculus.cos",
			Name:        "Cosine",
			Description: "Cosine of a value (radians)",
			Parameters:  unary,
			Returns:     "dual",
		},
		{
			ID:          "calculus.tan",
			Name:        "Tangent",
			Description: "Tangent of a value, sine divided by cosine",
			Parameters:  unary,
			Returns:     "dual",
		},
	}
}

func (o *ElementaryOps) operand(params map[string]interface{}) (dual.Number, *types.Result, error) {
	schema, res, err := common.ResolveSchema(params, o.Families)
	if schema == nil {
		return dual.Number{}, res, err
	}
	a, aerr := common.GetDual(params, "a", schema)
	if aerr != nil {
		res, err := common.Failure(aerr.Error())
		return dual.Number{}, res, err
	}
	return a, nil, nil
}

// Pow raises a value to a real exponent
func (o *ElementaryOps) Pow(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	a, res, err := o.operand(params)
	if res != nil {
		return res, err
	}
	exp, ok := common.GetNumber(params, "exponent")
	if !ok {
		return common.Failure("exponent parameter required")
	}
	return common.Success(map[string]interface{}{"result": common.EncodeDual(a.Pow(exp))})
}

// Invert takes the reciprocal of a value
func (o *ElementaryOps) Invert(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	a, res, err := o.operand(params)
	if res != nil {
		return res, err
	}
	return common.Success(map[string]interface{}{"result": common.EncodeDual(a.Inv())})
}

// Sin computes the sine of a value
func (o *ElementaryOps) Sin(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	a, res, err := o.operand(params)
	if res != nil {
		return res, err
	}
	return common.Success(map[string]interface{}{"result": common.EncodeDual(a.Sin())})
}

// Cos computes the cosine of a value
func (o *ElementaryOps) Cos(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	a, res, err := o.operand(params)
	if res != nil {
		return res, err
	}
	return common.Success(map[string]interface{}{"result": common.EncodeDual(a.Cos())})
}

// Tan computes the tangent of a value
func (o *ElementaryOps) Tan(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	a, res, err := o.operand(params)
	if res != nil {
		return res, err
	}
	return common.Success(map[string]interface{}{"result": common.EncodeDual(a.Tan())})
}
