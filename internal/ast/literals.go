package ast

// YieldNode is `yield(args)`.
type YieldNode struct {
	base
	args []Node
}

func (y *YieldNode) Args() []Node      { return y.args }
func (y *YieldNode) MethodName() string { return "yield" }
func (y *YieldNode) ArgNames() []string { return argNames(y.args) }
func (y *YieldNode) Children() []Node   { return y.args }
func (y *YieldNode) String() string     { return "Yield(...)" }

// SuperNode is `super(args)` or bare `super`. MethodName is always the
// literal sentinel "super".
type SuperNode struct {
	base
	args []Node
}

func (s *SuperNode) Args() []Node      { return s.args }
func (s *SuperNode) MethodName() string { return "super" }
func (s *SuperNode) ArgNames() []string { return argNames(s.args) }
func (s *SuperNode) Children() []Node   { return s.args }
func (s *SuperNode) String() string     { return "Super(...)" }

func argNames(args []Node) []string {
	names := make([]string, 0, len(args))
	for _, a := range args {
		if named, ok := a.(interface{ Name() string }); ok {
			names = append(names, named.Name())
		}
	}
	return names
}

// namedLeaf factors the common Name()/Children()/String() shape shared by
// IVar, CVar, LVar and Sym — all of which are bare named leaves.
type namedLeaf struct {
	base
	name string
}

func (n namedLeaf) Name() string    { return n.name }
func (n namedLeaf) Children() []Node { return nil }

// IVarNode is an instance-variable reference (`@name`).
type IVarNode struct{ namedLeaf }

func (n *IVarNode) String() string { return "IVar(@" + n.name + ")" }

// CVarNode is a class-variable reference (`@@name`).
type CVarNode struct{ namedLeaf }

func (n *CVarNode) String() string { return "CVar(@@" + n.name + ")" }

// LVarNode is a local-variable reference (`name`).
type LVarNode struct{ namedLeaf }

func (n *LVarNode) String() string { return "LVar(" + n.name + ")" }

// SymNode is a symbol literal (`:name`).
type SymNode struct{ namedLeaf }

func (n *SymNode) String() string { return "Sym(:" + n.name + ")" }

// ConstNode is a (possibly namespaced) constant reference (`Foo::Bar`).
type ConstNode struct{ namedLeaf }

// SimpleName returns the last segment after "::".
func (n *ConstNode) SimpleName() string { return simpleName(n.name) }
func (n *ConstNode) String() string     { return "Const(" + n.name + ")" }

// SelfNode is the explicit `self` keyword reference.
type SelfNode struct{ base }

func (s *SelfNode) Children() []Node { return nil }
func (s *SelfNode) String() string   { return "Self" }

// LitNode is a catch-all scalar literal (str/int/float/true/false/nil/...).
// The engine only ever needs to walk past literals, never interpret their
// value, so a single role with a Kind discriminator suffices.
type LitNode struct {
	base
	Kind  string
	Value string
}

func (l *LitNode) Children() []Node { return nil }
func (l *LitNode) String() string   { return "Lit(" + l.Kind + ")" }

// BeginNode wraps an implicit multi-statement sequence (a method/class/
// block body with more than one statement).
type BeginNode struct {
	base
	statements []Node
}

func (b *BeginNode) Statements() []Node { return b.statements }
func (b *BeginNode) Children() []Node   { return b.statements }
func (b *BeginNode) String() string     { return "Begin(...)" }
