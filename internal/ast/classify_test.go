package ast

import "testing"

func TestClassifyUnknownRole(t *testing.T) {
	_, err := Classify(&RawNode{Tag: "frobnicate", Pos: Position{Line: 3, Column: 1}})
	if err == nil {
		t.Fatal("expected an error for an unrecognised tag")
	}
	unknown, ok := err.(*UnknownNodeRole)
	if !ok {
		t.Fatalf("expected *UnknownNodeRole, got %T", err)
	}
	if unknown.Tag != "frobnicate" {
		t.Errorf("Tag = %q, want %q", unknown.Tag, "frobnicate")
	}
}

func TestClassifyLiteralsCollapseToLit(t *testing.T) {
	for _, tag := range []string{"str", "int", "float", "true", "false", "nil", "array", "hash"} {
		n, err := Classify(&RawNode{Tag: tag, Value: "x"})
		if err != nil {
			t.Fatalf("tag %q: %v", tag, err)
		}
		lit, ok := n.(*LitNode)
		if !ok {
			t.Fatalf("tag %q: got %T, want *LitNode", tag, n)
		}
		if lit.Kind != tag {
			t.Errorf("tag %q: Kind = %q", tag, lit.Kind)
		}
	}
}

// defNode builds `def <name>(<args>); <body>; end`.
func defNode(name string, argChildren []*RawNode, body *RawNode) *RawNode {
	children := []*RawNode{{Tag: "args", Children: argChildren}}
	if body != nil {
		children = append(children, body)
	}
	return &RawNode{Tag: "def", Value: name, Children: children}
}

func classifyOrFatal(t *testing.T, raw *RawNode) Node {
	t.Helper()
	n, err := Classify(raw)
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	return n
}

// TestArgsComponentsFlattening exercises E4: a single MLHS destructuring
// parameter flattens to its leaves without allocating extra Args/MLHS
// entries in the result.
func TestArgsComponentsFlattening(t *testing.T) {
	raw := defNode("mlhs", []*RawNode{
		{Tag: "mlhs", Children: []*RawNode{
			{Tag: "arg", Value: "a"},
			{Tag: "mlhs", Children: []*RawNode{
				{Tag: "arg", Value: "b"},
				{Tag: "arg", Value: "c"},
			}},
		}},
		{Tag: "arg", Value: "d"},
	}, nil)

	def := classifyOrFatal(t, raw).(*DefNode)
	leaves := def.Args().Components()
	if len(leaves) != 4 {
		t.Fatalf("got %d leaves, want 4", len(leaves))
	}
	names := make([]string, len(leaves))
	for i, l := range leaves {
		names[i] = l.Name()
		if l.Block() {
			t.Errorf("leaf %d (%s) unexpectedly marked Block", i, l.Name())
		}
	}
	want := []string{"a", "b", "c", "d"}
	for i, w := range want {
		if names[i] != w {
			t.Errorf("leaf %d = %q, want %q", i, names[i], w)
		}
	}
}

// TestAnonymousSplat exercises E6: `def f(*); end`.
func TestAnonymousSplat(t *testing.T) {
	raw := defNode("f", []*RawNode{{Tag: "restarg", Value: ""}}, nil)
	def := classifyOrFatal(t, raw).(*DefNode)
	leaves := def.Args().Components()
	if len(leaves) != 1 {
		t.Fatalf("got %d leaves, want 1", len(leaves))
	}
	if !leaves[0].AnonymousSplat() {
		t.Error("expected AnonymousSplat() to be true")
	}
	if leaves[0].Name() != "" {
		t.Errorf("Name() = %q, want empty", leaves[0].Name())
	}
}

// TestAttributeWriter exercises E5: `attr :x, true` inside class C.
func TestAttributeWriter(t *testing.T) {
	send := &RawNode{Tag: "send", Value: "attr", Children: []*RawNode{
		nil,
		{Tag: "sym", Value: "x"},
		{Tag: "true"},
	}}
	n := classifyOrFatal(t, send).(*SendNode)
	if !n.AttributeWriter() {
		t.Error("expected AttributeWriter() to be true")
	}
}

func TestDefsFullName(t *testing.T) {
	raw := &RawNode{Tag: "defs", Value: "bar", Children: []*RawNode{
		{Tag: "self"},
		{Tag: "args"},
		{Tag: "int", Value: "1"},
	}}
	n := classifyOrFatal(t, raw).(*DefsNode)
	if got, want := n.FullName("C"), "C#self.bar"; got != want {
		t.Errorf("FullName = %q, want %q", got, want)
	}
	if !n.Singleton() {
		t.Error("Defs should always be Singleton")
	}
}

// TestClassifyVariableAssignments exercises the write-side tags the
// `parser` gem emits as distinct from their read counterparts: a method
// body assigning a local, instance, class, or global variable must
// classify successfully rather than fall through to UnknownNodeRole.
func TestClassifyVariableAssignments(t *testing.T) {
	cases := []struct {
		tag  string
		want Role
	}{
		{"lvasgn", RoleLVAsgn},
		{"ivasgn", RoleIVAsgn},
		{"cvasgn", RoleCVAsgn},
		{"gvasgn", RoleGVAsgn},
	}
	for _, c := range cases {
		raw := &RawNode{Tag: c.tag, Value: "x", Children: []*RawNode{{Tag: "int", Value: "1"}}}
		n := classifyOrFatal(t, raw)
		if n.Role() != c.want {
			t.Errorf("tag %q: Role() = %v, want %v", c.tag, n.Role(), c.want)
		}
		named, ok := n.(interface{ Name() string })
		if !ok || named.Name() != "x" {
			t.Errorf("tag %q: Name() = %v, want %q", c.tag, named, "x")
		}
		if len(n.Children()) != 1 {
			t.Errorf("tag %q: got %d children, want 1 (the assigned value)", c.tag, len(n.Children()))
		}
	}
}

// TestClassifyBareVariableAssignments checks the no-value-child shape
// (e.g. a destructuring target) still classifies instead of panicking.
func TestClassifyBareVariableAssignments(t *testing.T) {
	n := classifyOrFatal(t, &RawNode{Tag: "lvasgn", Value: "x"})
	if len(n.Children()) != 0 {
		t.Errorf("got %d children, want 0", len(n.Children()))
	}
}

// TestCAsgnDefinesModule exercises E3: `Widget = Struct.new(:a)`.
func TestCAsgnDefinesModule(t *testing.T) {
	raw := &RawNode{Tag: "casgn", Value: "Widget", Children: []*RawNode{
		{Tag: "send", Value: "new", Children: []*RawNode{
			{Tag: "const", Value: "Struct"},
			{Tag: "sym", Value: "a"},
		}},
	}}
	n := classifyOrFatal(t, raw).(*CAsgnNode)
	if !n.DefinesModule() {
		t.Error("expected DefinesModule() to be true")
	}
}
