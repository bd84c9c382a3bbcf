package detect

import (
	"fmt"

	"github.com/hatchan/smellcop/internal/ast"
	"github.com/hatchan/smellcop/internal/config"
	ctx "github.com/hatchan/smellcop/internal/context"
)

// FeatureEnvy flags a Method context that sends more messages to a single
// non-self receiver identifier than it references self/instance state — a
// simplified version of reek's Feature Envy heuristic.
type FeatureEnvy struct{}

func (FeatureEnvy) SmellClass() string    { return "FeatureEnvy" }
func (FeatureEnvy) SmellSubclass() string { return "" }

func (FeatureEnvy) AppliesTo(c *ctx.Context) bool {
	if c.Kind != ctx.KindMethod || c.Singleton() {
		return false
	}
	_, isDef := c.Node.(*ast.DefNode)
	return isDef
}

func (FeatureEnvy) Examine(c *ctx.Context, _ config.DetectorConfig) []Warning {
	def, ok := c.Node.(*ast.DefNode)
	if !ok {
		return nil
	}

	tally := &receiverTally{counts: map[string]int{}}
	countReceiverSends(def.Body(), tally)

	envied, max := "", 0
	for _, recv := range tally.order {
		if n := tally.counts[recv]; n > max {
			envied, max = recv, n
		}
	}
	if envied == "" || max <= c.NumRefsToSelf() {
		return nil
	}

	return []Warning{{
		Message:    fmt.Sprintf("%s refers to %s more than self", c.SimpleName(), envied),
		Parameters: map[string]any{"receiver": envied, "count": max},
		Lines:      linesOf(c),
	}}
}

// receiverTally tallies send counts per receiver identifier while also
// recording the order receivers were first encountered in, so the max-count
// lookup can break ties deterministically instead of depending on Go's
// randomized map iteration order.
type receiverTally struct {
	counts map[string]int
	order  []string
}

// countReceiverSends tallies, per distinct local-variable/plain-identifier
// receiver name, how many messages a method body sends to it. Stops at
// nested Def/Defs boundaries, like the reference collector.
func countReceiverSends(n ast.Node, t *receiverTally) {
	if n == nil {
		return
	}
	switch n.(type) {
	case *ast.DefNode, *ast.DefsNode:
		return
	}
	if send, ok := n.(*ast.SendNode); ok {
		if name := receiverIdentifier(send.Receiver()); name != "" {
			if _, seen := t.counts[name]; !seen {
				t.order = append(t.order, name)
			}
			t.counts[name]++
		}
	}
	for _, child := range n.Children() {
		countReceiverSends(child, t)
	}
}

func receiverIdentifier(n ast.Node) string {
	switch v := n.(type) {
	case *ast.LVarNode:
		return v.Name()
	case *ast.ConstNode:
		return v.SimpleName()
	default:
		return ""
	}
}
