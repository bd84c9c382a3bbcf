package detect

import (
	"fmt"

	"github.com/hatchan/smellcop/internal/ast"
	"github.com/hatchan/smellcop/internal/config"
	ctx "github.com/hatchan/smellcop/internal/context"
)

// NestedControlFlow flags a Method context whose body nests If/Case/And/Or
// branching deeper than a configurable max_depth, default 3 (reek calls
// this "Nested Iterators/ControlFlow").
type NestedControlFlow struct{}

func (NestedControlFlow) SmellClass() string    { return "NestedControlFlow" }
func (NestedControlFlow) SmellSubclass() string { return "" }

func (NestedControlFlow) AppliesTo(c *ctx.Context) bool {
	return c.Kind == ctx.KindMethod
}

func (NestedControlFlow) Examine(c *ctx.Context, cfg config.DetectorConfig) []Warning {
	maxDepth := intParam(cfg, "max_depth", 3)

	var body ast.Node
	switch n := c.Node.(type) {
	case *ast.DefNode:
		body = n.Body()
	case *ast.DefsNode:
		body = n.Body()
	default:
		return nil
	}

	depth := branchDepth(body, 0)
	if depth <= maxDepth {
		return nil
	}

	return []Warning{{
		Message:    fmt.Sprintf("%s nests control flow %d levels deep", c.SimpleName(), depth),
		Parameters: map[string]any{"depth": depth, "max_depth": maxDepth},
		Lines:      linesOf(c),
	}}
}

// branchDepth walks n, stopping at nested Def/Defs boundaries, and returns
// the deepest nesting of If/Case/And/Or reached below the starting depth.
func branchDepth(n ast.Node, depth int) int {
	if n == nil {
		return depth
	}

	switch n.(type) {
	case *ast.DefNode, *ast.DefsNode:
		return depth
	}

	next := depth
	switch n.(type) {
	case *ast.IfNode, *ast.CaseNode, *ast.AndNode, *ast.OrNode:
		next = depth + 1
	}

	deepest := next
	for _, child := range n.Children() {
		if d := branchDepth(child, next); d > deepest {
			deepest = d
		}
	}
	return deepest
}
