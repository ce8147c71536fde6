// Package calculus implements forward-mode automatic differentiation
// tools over dual numbers.
package calculus

import (
	"context"
	"fmt"

	"github.com/calder-math/dualgrad/internal/providers/calculus/common"
	"github.com/calder-math/dualgrad/internal/providers/calculus/construct"
	"github.com/calder-math/dualgrad/internal/providers/calculus/operations"
	"github.com/calder-math/dualgrad/internal/providers/calculus/store"
	"github.com/calder-math/dualgrad/internal/types"
)

// Provider implements dual-number calculus operations
type Provider struct {
	// Module instances
	construct  *construct.ConstructOps
	arithmetic *operations.ArithmeticOps
	elementary *operations.ElementaryOps
}

// NewProvider creates a modular calculus provider
func NewProvider() *Provider {
	ops := &common.CalcOps{}
	families := store.New()

	return &Provider{
		construct:  &construct.ConstructOps{CalcOps: ops, Families: families},
		arithmetic: &operations.ArithmeticOps{CalcOps: ops, Families: families},
		elementary: &operations.ElementaryOps{CalcOps: ops, Families: families},
	}
}

// FamilyCount reports the number of defined families
func (p *Provider) FamilyCount() int {
	return p.construct.Families.Count()
}

// Definition returns service metadata with all module tools
func (p *Provider) Definition() types.Service {
	// Collect tools from all modules
	tools := []types.Tool{}
	tools = append(tools, p.construct.GetTools()...)
	tools = append(tools, p.arithmetic.GetTools()...)
	tools = append(tools, p.elementary.GetTools()...)

	return types.Service{
		ID:          "calculus",
		Name:        "Calculus Service",
		Description: "Forward-mode automatic differentiation over dual numbers",
		Category:    types.CategoryMath,
		Capabilities: []string{
			"families",
			"construction",
			"arithmetic",
			"elementary",
		},
		Tools: tools,
	}
}

// Execute routes to appropriate module
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	switch toolID {
	// Family and value construction
	case "calculus.define":
		return p.construct.Define(ctx, params, appCtx)
	case "calculus.describe":
		return p.construct.Describe(ctx, params, appCtx)
	case "calculus.constant":
		return p.construct.Constant(ctx, params, appCtx)
	case "calculus.variable":
		return p.construct.Variable(ctx, params, appCtx)
	case "calculus.with_derivative":
		return p.construct.WithDerivative(ctx, params, appCtx)
	case "calculus.derivative":
		return p.construct.Derivative(ctx, params, appCtx)
	case "calculus.real":
		return p.construct.Real(ctx, params, appCtx)

	// Arithmetic
	case "calculus.add":
		return p.arithmetic.Add(ctx, params, appCtx)
	case "calculus.subtract":
		return p.arithmetic.Subtract(ctx, params, appCtx)
	case "calculus.multiply":
		return p.arithmetic.Multiply(ctx, params, appCtx)
	case "calculus.divide":
		return p.arithmetic.Divide(ctx, params, appCtx)
	case "calculus.negate":
		return p.arithmetic.Negate(ctx, params, appCtx)
	case "calculus.compare":
		return p.arithmetic.Compare(ctx, params, appCtx)

	// Elementary functions
	case "calculus.pow":
		return p.elementary.Pow(ctx, params, appCtx)
	case "calculus.invert":
		return p.elementary.Invert(ctx, params, appCtx)
	case "calculus.sin":
		return p.elementary.Sin(ctx, params, appCtx)
	case "calculus.cos":
		return p.elementary.Cos(ctx, params, appCtx)
	case "calculus.tan":
		return p.elementary.Tan(ctx, params, appCtx)

	default:
		return common.Failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}
