package detect

import (
	"fmt"

	"github.com/hatchan/smellcop/internal/ast"
	"github.com/hatchan/smellcop/internal/config"
	ctx "github.com/hatchan/smellcop/internal/context"
)

// LongParameterList flags a Method context whose parameter count exceeds
// a configurable max_params, default 4.
type LongParameterList struct{}

func (LongParameterList) SmellClass() string    { return "LongParameterList" }
func (LongParameterList) SmellSubclass() string { return "" }

func (LongParameterList) AppliesTo(c *ctx.Context) bool {
	return c.Kind == ctx.KindMethod
}

func (LongParameterList) Examine(c *ctx.Context, cfg config.DetectorConfig) []Warning {
	maxParams := intParam(cfg, "max_params", 4)

	var params []ast.ArgLeaf
	switch n := c.Node.(type) {
	case *ast.DefNode:
		params = n.Parameters()
	case *ast.DefsNode:
		params = n.Parameters()
	default:
		return nil
	}

	if len(params) <= maxParams {
		return nil
	}

	return []Warning{{
		Message:    fmt.Sprintf("%s has %d parameters", c.SimpleName(), len(params)),
		Parameters: map[string]any{"count": len(params), "max_params": maxParams},
		Lines:      linesOf(c),
	}}
}
