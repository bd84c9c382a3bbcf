package ast

// CAsgnNode is a constant assignment: `Name = value`.
type CAsgnNode struct {
	base
	name  string
	value Node
}

func (c *CAsgnNode) Name() string { return c.name }
func (c *CAsgnNode) Value() Node  { return c.value }

// DefinesModule reports whether the assigned value is, directly or through
// a block, a module-creation send (`Widget = Struct.new(:a)` or
// `Widget = Struct.new { ... }`).
func (c *CAsgnNode) DefinesModule() bool {
	switch v := c.value.(type) {
	case *SendNode:
		return v.ModuleCreationCall()
	case *BlockNode:
		send, ok := v.call.(*SendNode)
		return ok && send.ModuleCreationCall()
	default:
		return false
	}
}

func (c *CAsgnNode) Children() []Node {
	if c.value == nil {
		return nil
	}
	return []Node{c.value}
}

func (c *CAsgnNode) String() string { return "CAsgn(" + c.name + ")" }

// asgnBase factors the common Name()/Value()/Children() shape shared by the
// local/instance/class/global variable assignment write-leaves below.
type asgnBase struct {
	base
	name  string
	value Node
}

func (a asgnBase) Name() string { return a.name }
func (a asgnBase) Value() Node  { return a.value }
func (a asgnBase) Children() []Node {
	if a.value == nil {
		return nil
	}
	return []Node{a.value}
}

// LVAsgnNode is a local-variable assignment (`name = value`).
type LVAsgnNode struct{ asgnBase }

func (n *LVAsgnNode) String() string { return "LVAsgn(" + n.name + ")" }

// IVAsgnNode is an instance-variable assignment (`@name = value`). Like an
// IVarNode read, writing an ivar implies dependence on instance state.
type IVAsgnNode struct{ asgnBase }

func (n *IVAsgnNode) String() string { return "IVAsgn(@" + n.name + ")" }

// CVAsgnNode is a class-variable assignment (`@@name = value`).
type CVAsgnNode struct{ asgnBase }

func (n *CVAsgnNode) String() string { return "CVAsgn(@@" + n.name + ")" }

// GVAsgnNode is a global-variable assignment (`$name = value`).
type GVAsgnNode struct{ asgnBase }

func (n *GVAsgnNode) String() string { return "GVAsgn($" + n.name + ")" }
