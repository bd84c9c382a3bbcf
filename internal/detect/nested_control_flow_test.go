package detect

import (
	"testing"

	"github.com/hatchan/smellcop/internal/ast"
	"github.com/hatchan/smellcop/internal/config"
)

// nestedIfs builds a method whose body is `depth` nested `if true; ...; end`
// around `1`; nestedIfs(4) is one past the default max_depth of 3.
func nestedIfs(depth int) *ast.RawNode {
	node := &ast.RawNode{Tag: "int", Value: "1"}
	for i := 0; i < depth; i++ {
		node = &ast.RawNode{Tag: "if", Children: []*ast.RawNode{
			{Tag: "true"},
			node,
			nil,
		}}
	}
	return &ast.RawNode{Tag: "def", Value: "f", Children: []*ast.RawNode{
		{Tag: "args"},
		node,
	}}
}

func TestNestedControlFlowDefaultThreshold(t *testing.T) {
	m := methodContext(t, nestedIfs(4))
	d := NestedControlFlow{}
	warnings := d.Examine(m, config.DetectorConfig{Enabled: true, Params: map[string]any{}})
	if len(warnings) != 1 {
		t.Fatalf("got %d warnings, want 1", len(warnings))
	}
}

func TestNestedControlFlowWithinDefaultThreshold(t *testing.T) {
	m := methodContext(t, nestedIfs(2))
	d := NestedControlFlow{}
	warnings := d.Examine(m, config.DetectorConfig{Enabled: true, Params: map[string]any{}})
	if len(warnings) != 0 {
		t.Fatalf("got %d warnings, want 0", len(warnings))
	}
}
