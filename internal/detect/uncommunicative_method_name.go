package detect

import (
	"fmt"
	"strings"

	"github.com/hatchan/smellcop/internal/ast"
	"github.com/hatchan/smellcop/internal/config"
	ctx "github.com/hatchan/smellcop/internal/context"
)

var defaultUncommunicativeNames = []string{"tmp", "temp", "x", "y", "z"}

// UncommunicativeMethodName flags a Method context whose simple name is a
// low-information name from a configurable deny-list or is at most one
// character long, and isn't itself marked unused by a leading underscore.
type UncommunicativeMethodName struct{}

func (UncommunicativeMethodName) SmellClass() string    { return "UncommunicativeName" }
func (UncommunicativeMethodName) SmellSubclass() string { return "Method" }

func (UncommunicativeMethodName) AppliesTo(c *ctx.Context) bool {
	return c.Kind == ctx.KindMethod
}

func (UncommunicativeMethodName) Examine(c *ctx.Context, cfg config.DetectorConfig) []Warning {
	denyList := stringSetParam(cfg, "names", defaultUncommunicativeNames)

	var name string
	switch n := c.Node.(type) {
	case *ast.DefNode:
		name = n.Name()
	case *ast.DefsNode:
		name = n.Name()
	default:
		return nil
	}

	if markedUnused(name) {
		return nil
	}
	if !denyList[name] && len(name) > 1 {
		return nil
	}

	return []Warning{{
		Message: fmt.Sprintf("%s is an uncommunicative method name", c.SimpleName()),
		Lines:   linesOf(c),
	}}
}

func markedUnused(name string) bool {
	return strings.HasPrefix(name, "_")
}
