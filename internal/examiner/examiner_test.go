package examiner

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/hatchan/smellcop/internal/ast"
	"github.com/hatchan/smellcop/internal/config"
	"github.com/hatchan/smellcop/internal/detect"
)

func TestExaminePipelineEndToEnd(t *testing.T) {
	raw := &ast.RawNode{Tag: "class", Value: "Widget", Children: []*ast.RawNode{
		nil,
		{Tag: "def", Value: "tmp", Children: []*ast.RawNode{
			{Tag: "args"},
			{Tag: "int", Value: "1"},
		}},
	}}

	result, err := Examine("widget.rb", raw, "", config.NewResolver())
	if err != nil {
		t.Fatalf("Examine: %v", err)
	}
	if !result.Smelly() {
		t.Fatal("expected at least one smell")
	}
	if result.Description() != "widget.rb" {
		t.Errorf("Description() = %q", result.Description())
	}

	classes := map[string]bool{}
	for _, w := range result.Smells() {
		classes[w.SmellClass] = true
	}
	for _, want := range []string{"UtilityFunction", "UncommunicativeName"} {
		if !classes[want] {
			t.Errorf("expected a %s warning, got %+v", want, result.Smells())
		}
	}
}

func TestExamineUnknownNodeRoleAbortsFileOnly(t *testing.T) {
	raw := &ast.RawNode{Tag: "frobnicate"}
	_, err := Examine("broken.rb", raw, "frobnicate", config.NewResolver())
	if err == nil {
		t.Fatal("expected an error for an unrecognised tag")
	}
	snaps.MatchSnapshot(t, "unknown_node_role_message", err.Error())
}

func TestShowAllStrategyRunsDisabledDetectors(t *testing.T) {
	raw := &ast.RawNode{Tag: "def", Value: "tmp", Children: []*ast.RawNode{
		{Tag: "args"},
		{Tag: "int", Value: "1"},
	}}

	layer, err := config.ParseLayer([]byte("UtilityFunction:\n  enabled: false\n"))
	if err != nil {
		t.Fatalf("ParseLayer: %v", err)
	}
	resolver := config.NewResolver(layer)

	activeOnly, err := Examine("widget.rb", raw, "", resolver)
	if err != nil {
		t.Fatalf("Examine: %v", err)
	}
	for _, w := range activeOnly.Smells() {
		if w.SmellClass == "UtilityFunction" {
			t.Error("ActiveSmellsOnly should not report a disabled detector")
		}
	}

	showAll, err := Examine("widget.rb", raw, "", resolver, WithStrategy(detect.ShowAll))
	if err != nil {
		t.Fatalf("Examine: %v", err)
	}
	found := false
	for _, w := range showAll.Smells() {
		if w.SmellClass == "UtilityFunction" {
			found = true
		}
	}
	if !found {
		t.Error("ShowAll should report a disabled detector")
	}
}
