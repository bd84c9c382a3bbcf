package detect

import ctx "github.com/hatchan/smellcop/internal/context"

// linesOf returns the single source line a context's defining node starts
// at. Every built-in detector, NestedControlFlow included, reports just
// this one line.
func linesOf(c *ctx.Context) []int {
	if c.Node == nil {
		return nil
	}
	return []int{c.Node.Pos().Line}
}
