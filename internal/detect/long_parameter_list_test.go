package detect

import (
	"testing"

	"github.com/hatchan/smellcop/internal/ast"
	"github.com/hatchan/smellcop/internal/config"
	ctx "github.com/hatchan/smellcop/internal/context"
)

func methodContext(t *testing.T, raw *ast.RawNode) *ctx.Context {
	t.Helper()
	root := ctx.Build(classify(t, raw))
	var method *ctx.Context
	root.Walk(func(c *ctx.Context) {
		if c.Kind == ctx.KindMethod {
			method = c
		}
	})
	if method == nil {
		t.Fatal("no Method context built")
	}
	return method
}

func defWithParams(names ...string) *ast.RawNode {
	argChildren := make([]*ast.RawNode, len(names))
	for i, n := range names {
		argChildren[i] = &ast.RawNode{Tag: "arg", Value: n}
	}
	return &ast.RawNode{Tag: "def", Value: "f", Children: []*ast.RawNode{
		{Tag: "args", Children: argChildren},
		{Tag: "int", Value: "1"},
	}}
}

func TestLongParameterListDefaultThreshold(t *testing.T) {
	m := methodContext(t, defWithParams("a", "b", "c", "d", "e"))
	d := LongParameterList{}
	warnings := d.Examine(m, config.DetectorConfig{Enabled: true, Params: map[string]any{}})
	if len(warnings) != 1 {
		t.Fatalf("got %d warnings, want 1", len(warnings))
	}
}

func TestLongParameterListWithinDefaultThreshold(t *testing.T) {
	m := methodContext(t, defWithParams("a", "b", "c", "d"))
	d := LongParameterList{}
	warnings := d.Examine(m, config.DetectorConfig{Enabled: true, Params: map[string]any{}})
	if len(warnings) != 0 {
		t.Fatalf("got %d warnings, want 0", len(warnings))
	}
}

func TestLongParameterListConfigurableThreshold(t *testing.T) {
	m := methodContext(t, defWithParams("a", "b"))
	d := LongParameterList{}
	warnings := d.Examine(m, config.DetectorConfig{Enabled: true, Params: map[string]any{"max_params": 1}})
	if len(warnings) != 1 {
		t.Fatalf("got %d warnings, want 1 with max_params=1", len(warnings))
	}
}
