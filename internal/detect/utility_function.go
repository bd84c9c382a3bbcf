package detect

import (
	"fmt"

	"github.com/hatchan/smellcop/internal/ast"
	"github.com/hatchan/smellcop/internal/config"
	ctx "github.com/hatchan/smellcop/internal/context"
)

// UtilityFunction flags a non-singleton Method context that never touches
// instance state: depends_on_instance? == false.
type UtilityFunction struct{}

func (UtilityFunction) SmellClass() string    { return "UtilityFunction" }
func (UtilityFunction) SmellSubclass() string { return "" }

func (UtilityFunction) AppliesTo(c *ctx.Context) bool {
	if c.Kind != ctx.KindMethod || c.Singleton() {
		return false
	}
	_, isDef := c.Node.(*ast.DefNode)
	return isDef
}

func (UtilityFunction) Examine(c *ctx.Context, _ config.DetectorConfig) []Warning {
	if c.DependsOnInstance() {
		return nil
	}
	return []Warning{{
		Message: fmt.Sprintf("%s doesn't depend on instance state and could be a module function", c.SimpleName()),
		Lines:   linesOf(c),
	}}
}
